package llm

import (
	"context"
	"fmt"
)

// Provider constants for client selection.
const (
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Config holds client configuration.
type Config struct {
	Provider   string // "anthropic" or "ollama"
	APIKey     string // Required for the Anthropic provider
	BaseURL    string // Optional: custom API endpoint
	OllamaHost string // Host for the Ollama provider
	Model      string // Model name
}

// Request carries one fully determined completion request. It is built once
// and never mutated afterwards.
type Request struct {
	System    string // System instruction (the framework document)
	Prompt    string // User payload (the aggregated code plus directive)
	MaxTokens int    // Response token budget
}

// Client sends a single completion request to a text-generation service.
// An empty returned text with a nil error means the service answered but
// produced no analysis; it is not a failure.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

// NewClient creates a Client for the configured provider. Defaults to
// Anthropic when no provider is specified.
func NewClient(cfg Config) (Client, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderAnthropic
	}

	switch provider {
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	case ProviderOllama:
		return newOllamaClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
