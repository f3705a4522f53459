package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(Config{Provider: "palm", APIKey: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewClient_AnthropicRequiresKey(t *testing.T) {
	_, err := NewClient(Config{Provider: ProviderAnthropic})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewClient_DefaultsToAnthropic(t *testing.T) {
	client, err := NewClient(Config{APIKey: "k", Model: "claude-3-sonnet-20240229"})
	require.NoError(t, err)
	assert.Equal(t, "claude-3-sonnet-20240229", client.Model())
}

func TestNewClient_Ollama(t *testing.T) {
	client, err := NewClient(Config{
		Provider:   ProviderOllama,
		OllamaHost: "http://127.0.0.1:11434",
		Model:      "gemma3:latest",
	})
	require.NoError(t, err)
	assert.Equal(t, "gemma3:latest", client.Model())
}
