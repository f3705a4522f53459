package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which needs Go 1.24; this
// toolchain is pinned to 1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "claude-3-sonnet-20240229", cfg.Model)
	assert.Equal(t, 4000, cfg.MaxTokens)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Contains(t, cfg.FrameworkPath, "codeway.md")
}

func TestLoad_YAMLOverlay(t *testing.T) {
	chdir(t, t.TempDir())

	overlay := `
model: claude-3-opus-20240229
max_tokens: 2000
provider: ollama
base_url: http://proxy.internal:8080
logging:
  level: debug
`
	require.NoError(t, os.WriteFile("codeway.yaml", []byte(overlay), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "claude-3-opus-20240229", cfg.Model)
	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "http://proxy.internal:8080", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Keys absent from the overlay keep their defaults.
	assert.Equal(t, "http://127.0.0.1:11434", cfg.OllamaHost)
}

func TestLoad_MalformedYAML(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("codeway.yaml", []byte("model: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
