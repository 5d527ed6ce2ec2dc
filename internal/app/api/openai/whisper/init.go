package whisper

import (
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
	appopenai "github.com/Taran-0107/VoiceDetectiveAI/internal/app/api/openai"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api/provider"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/config"
)

func init() {
	provider.Register("openai", createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper provider from configuration
func createOpenAIProvider(cfg map[string]interface{}) (api.Transcriber, error) {
	settings, ok := cfg["settings"].(map[string]interface{})
	if !ok {
		settings = make(map[string]interface{})
	}

	auth, ok := cfg["auth"].(map[string]interface{})
	if !ok {
		auth = make(map[string]interface{})
	}

	var apiKey string
	if key, ok := auth["api_key"].(string); ok && key != "" {
		apiKey = key
	}
	if apiKey == "" {
		// No key in the config; fall back to the shared env-keyed client.
		apiKeys, err := config.GetAPIKeys()
		if err != nil {
			return nil, err
		}
		if err := config.RequireOpenAIKey(apiKeys); err != nil {
			return nil, err
		}
		return NewRemoteTranscriber(appopenai.GetClient()), nil
	}

	providerConfig := Config{
		APIKey: apiKey,
		Model:  "whisper-1",
	}

	if model, ok := settings["model"].(string); ok && model != "" {
		providerConfig.Model = model
	}
	if language, ok := settings["language"].(string); ok {
		providerConfig.Language = language
	}
	if prompt, ok := settings["prompt"].(string); ok {
		providerConfig.Prompt = prompt
	}
	if temperature, ok := settings["temperature"].(float64); ok {
		providerConfig.Temperature = float32(temperature)
	}
	if baseURL, ok := settings["base_url"].(string); ok {
		providerConfig.BaseURL = baseURL
	}

	return NewRemoteTranscriberWithConfig(providerConfig), nil
}
