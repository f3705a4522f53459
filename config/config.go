package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// APIKeyEnvVar is the environment variable holding the Anthropic API credential.
const APIKeyEnvVar = "ANTHROPIC_API_KEY"

const (
	defaultModel        = "claude-3-sonnet-20240229"
	defaultMaxTokens    = 4000
	defaultProvider     = "anthropic"
	defaultOllamaHost   = "http://127.0.0.1:11434"
	configFileName      = "codeway.yaml"
	frameworkFileName   = "codeway.md"
	frameworkPromptsDir = "prompts"
)

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Config holds the run configuration. It is built once by Load and passed
// explicitly to the components that need it.
type Config struct {
	Model         string        `yaml:"model"`
	MaxTokens     int           `yaml:"max_tokens"`
	Provider      string        `yaml:"provider"`
	BaseURL       string        `yaml:"base_url"`
	OllamaHost    string        `yaml:"ollama_host"`
	FrameworkPath string        `yaml:"framework_path"`
	Verbose       bool          `yaml:"-"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Load builds the configuration: defaults first, then an optional codeway.yaml
// overlay found next to the executable or in the working directory. A missing
// config file is not an error.
func Load() (*Config, error) {
	cfg := &Config{
		Model:         defaultModel,
		MaxTokens:     defaultMaxTokens,
		Provider:      defaultProvider,
		OllamaHost:    defaultOllamaHost,
		FrameworkPath: defaultFrameworkPath(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}

	path, err := findConfigFile()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile looks for codeway.yaml next to the executable, then in the
// working directory.
func findConfigFile() (string, error) {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), configFileName))
	}
	candidates = append(candidates, configFileName)

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}

// defaultFrameworkPath resolves the fixed framework document location relative
// to the tool's own executable, falling back to the working directory when the
// executable path cannot be determined.
func defaultFrameworkPath() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), frameworkPromptsDir, frameworkFileName)
	}
	return filepath.Join(frameworkPromptsDir, frameworkFileName)
}
