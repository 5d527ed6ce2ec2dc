package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProvidersConfig_MissingFileUsesDefault(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-default-test")

	config, err := LoadProvidersConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", config.DefaultProvider)
	provider, ok := config.Providers["openai"]
	require.True(t, ok)
	assert.Equal(t, "openai", provider.Type)
	assert.True(t, provider.Enabled)
	assert.Equal(t, "sk-default-test", provider.Auth["api_key"])
}

func TestLoadProvidersConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `
default_provider: "openai"
providers:
  openai:
    type: "openai"
    enabled: true
    auth:
      api_key: "sk-from-yaml"
    settings:
      model: "whisper-1"
      language: "en"
  local:
    type: "whisper_cpp"
    enabled: false
    settings:
      binary_path: "/usr/local/bin/whisper"
      model_path: "/models/ggml-base.bin"
`)

	config, err := LoadProvidersConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", config.DefaultProvider)
	assert.Len(t, config.Providers, 2)

	openaiProvider := config.Providers["openai"]
	assert.Equal(t, "sk-from-yaml", openaiProvider.Auth["api_key"])
	assert.Equal(t, "en", openaiProvider.Settings["language"])

	localProvider := config.Providers["local"]
	assert.Equal(t, "whisper_cpp", localProvider.Type)
	assert.False(t, localProvider.Enabled)
}

func TestLoadProvidersConfig_EnvironmentExpansion(t *testing.T) {
	t.Setenv("TEST_WHISPER_KEY", "sk-expanded")
	t.Setenv("TEST_WHISPER_MODEL", "whisper-1")

	path := writeConfigFile(t, `
default_provider: "openai"
providers:
  openai:
    type: "openai"
    enabled: true
    auth:
      api_key: "${TEST_WHISPER_KEY}"
    settings:
      model: "${TEST_WHISPER_MODEL}"
`)

	config, err := LoadProvidersConfig(path)
	require.NoError(t, err)

	provider := config.Providers["openai"]
	assert.Equal(t, "sk-expanded", provider.Auth["api_key"])
	assert.Equal(t, "whisper-1", provider.Settings["model"])
}

func TestLoadProvidersConfig_UnsetEnvExpandsToEmpty(t *testing.T) {
	path := writeConfigFile(t, `
default_provider: "openai"
providers:
  openai:
    type: "openai"
    enabled: true
    auth:
      api_key: "${TRUTHWEAVER_SURELY_UNSET_KEY}"
`)

	config, err := LoadProvidersConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "", config.Providers["openai"].Auth["api_key"])
}

func TestLoadProvidersConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "providers: [not: valid: yaml")

	_, err := LoadProvidersConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestProvidersConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      *ProvidersConfig
		wantErr     bool
		errContains string
	}{
		{
			name: "valid",
			config: &ProvidersConfig{
				DefaultProvider: "openai",
				Providers: map[string]ProviderConfig{
					"openai": {Type: "openai", Enabled: true},
				},
			},
		},
		{
			name:        "no providers",
			config:      &ProvidersConfig{},
			wantErr:     true,
			errContains: "no providers configured",
		},
		{
			name: "unknown default provider",
			config: &ProvidersConfig{
				DefaultProvider: "missing",
				Providers: map[string]ProviderConfig{
					"openai": {Type: "openai"},
				},
			},
			wantErr:     true,
			errContains: "not configured",
		},
		{
			name: "provider without type",
			config: &ProvidersConfig{
				Providers: map[string]ProviderConfig{
					"openai": {Enabled: true},
				},
			},
			wantErr:     true,
			errContains: "has no type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}
