package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig represents the overall configuration for all providers
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig represents configuration for a single provider
type ProviderConfig struct {
	Type     string                 `yaml:"type"`
	Enabled  bool                   `yaml:"enabled"`
	Auth     map[string]interface{} `yaml:"auth,omitempty"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

// DefaultProvidersConfig is used when no providers.yaml exists: the
// OpenAI Whisper API keyed from the environment.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		DefaultProvider: "openai",
		Providers: map[string]ProviderConfig{
			"openai": {
				Type:    "openai",
				Enabled: true,
				Auth: map[string]interface{}{
					"api_key": os.Getenv("OPENAI_API_KEY"),
				},
				Settings: map[string]interface{}{
					"model": "whisper-1",
				},
			},
		},
	}
}

// LoadProvidersConfig loads provider configuration from a YAML file.
// A missing file is not an error; the default configuration is returned.
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultProvidersConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ProvidersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for consistency
func (c *ProvidersConfig) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("no providers configured")
	}

	if c.DefaultProvider != "" {
		if _, ok := c.Providers[c.DefaultProvider]; !ok {
			return fmt.Errorf("default_provider '%s' is not configured", c.DefaultProvider)
		}
	}

	for name, provider := range c.Providers {
		if provider.Type == "" {
			return fmt.Errorf("provider '%s' has no type", name)
		}
	}

	return nil
}

// expandEnvironmentVariables expands ${VAR} references in auth and
// settings values so API keys never have to live in the YAML file.
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for _, provider := range c.Providers {
		for key, value := range provider.Auth {
			if strValue, ok := value.(string); ok {
				if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
					envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
					provider.Auth[key] = os.Getenv(envVar)
				}
			}
		}

		for key, value := range provider.Settings {
			if strValue, ok := value.(string); ok {
				if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
					envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
					provider.Settings[key] = os.Getenv(envVar)
				}
			}
		}
	}
}
