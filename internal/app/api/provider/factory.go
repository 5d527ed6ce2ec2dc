package provider

import (
	"fmt"
	"os"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
	appconfig "github.com/Taran-0107/VoiceDetectiveAI/internal/app/config"
)

// ConfigFileName is looked up in the working directory before falling
// back to the built-in default configuration.
const ConfigFileName = "providers.yaml"

// NewTranscriberFromConfig resolves a provider by name and builds it.
// Resolution order for the name: the explicit override, the
// TRUTHWEAVER_PROVIDER environment variable, then the config default.
func NewTranscriberFromConfig(config *appconfig.ProvidersConfig, override string) (api.Transcriber, error) {
	name := override
	if name == "" {
		name = os.Getenv("TRUTHWEAVER_PROVIDER")
	}
	if name == "" {
		name = config.DefaultProvider
	}
	if name == "" {
		name = "openai"
	}

	providerConfig, exists := config.Providers[name]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found in configuration", name)
	}
	if !providerConfig.Enabled {
		return nil, fmt.Errorf("provider '%s' is disabled", name)
	}

	creator, err := GetCreator(providerConfig.Type)
	if err != nil {
		return nil, err
	}

	return creator(map[string]interface{}{
		"auth":     providerConfig.Auth,
		"settings": providerConfig.Settings,
	})
}

// NewTranscriber loads providers.yaml (or the default configuration) and
// builds the selected transcriber.
func NewTranscriber(override string) (api.Transcriber, error) {
	config, err := appconfig.LoadProvidersConfig(ConfigFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider configuration: %w", err)
	}
	return NewTranscriberFromConfig(config, override)
}
