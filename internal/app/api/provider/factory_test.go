package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
	appconfig "github.com/Taran-0107/VoiceDetectiveAI/internal/app/config"
)

type stubTranscriber struct {
	name string
}

func (s *stubTranscriber) Transcript(inputFilePath string) (string, error) {
	return s.name + ":" + inputFilePath, nil
}

func registerStub(t *testing.T, providerType string) *map[string]interface{} {
	t.Helper()

	var captured map[string]interface{}
	Register(providerType, func(config map[string]interface{}) (api.Transcriber, error) {
		captured = config
		return &stubTranscriber{name: providerType}, nil
	})
	return &captured
}

func testConfig() *appconfig.ProvidersConfig {
	return &appconfig.ProvidersConfig{
		DefaultProvider: "primary",
		Providers: map[string]appconfig.ProviderConfig{
			"primary": {
				Type:    "stub_primary",
				Enabled: true,
				Auth:    map[string]interface{}{"api_key": "sk-test"},
				Settings: map[string]interface{}{
					"model": "whisper-1",
				},
			},
			"secondary": {
				Type:    "stub_secondary",
				Enabled: true,
			},
			"disabled": {
				Type:    "stub_primary",
				Enabled: false,
			},
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registerStub(t, "stub_registry")

	creator, err := GetCreator("stub_registry")
	require.NoError(t, err)
	require.NotNil(t, creator)

	transcriber, err := creator(map[string]interface{}{})
	require.NoError(t, err)

	text, err := transcriber.Transcript("a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "stub_registry:a.mp3", text)
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := GetCreator("never_registered")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestRegistry_ListRegistered(t *testing.T) {
	registerStub(t, "stub_list")

	assert.Contains(t, ListRegistered(), "stub_list")
}

func TestNewTranscriberFromConfig_Default(t *testing.T) {
	captured := registerStub(t, "stub_primary")
	registerStub(t, "stub_secondary")
	t.Setenv("TRUTHWEAVER_PROVIDER", "")

	transcriber, err := NewTranscriberFromConfig(testConfig(), "")
	require.NoError(t, err)

	text, err := transcriber.Transcript("x.wav")
	require.NoError(t, err)
	assert.Equal(t, "stub_primary:x.wav", text)

	// The creator receives the provider's auth and settings sections.
	require.NotNil(t, *captured)
	auth, ok := (*captured)["auth"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "sk-test", auth["api_key"])
}

func TestNewTranscriberFromConfig_Override(t *testing.T) {
	registerStub(t, "stub_primary")
	registerStub(t, "stub_secondary")

	transcriber, err := NewTranscriberFromConfig(testConfig(), "secondary")
	require.NoError(t, err)

	text, err := transcriber.Transcript("x.wav")
	require.NoError(t, err)
	assert.Equal(t, "stub_secondary:x.wav", text)
}

func TestNewTranscriberFromConfig_EnvOverride(t *testing.T) {
	registerStub(t, "stub_primary")
	registerStub(t, "stub_secondary")
	t.Setenv("TRUTHWEAVER_PROVIDER", "secondary")

	transcriber, err := NewTranscriberFromConfig(testConfig(), "")
	require.NoError(t, err)

	text, err := transcriber.Transcript("x.wav")
	require.NoError(t, err)
	assert.Equal(t, "stub_secondary:x.wav", text)
}

func TestNewTranscriberFromConfig_ExplicitBeatsEnv(t *testing.T) {
	registerStub(t, "stub_primary")
	registerStub(t, "stub_secondary")
	t.Setenv("TRUTHWEAVER_PROVIDER", "secondary")

	transcriber, err := NewTranscriberFromConfig(testConfig(), "primary")
	require.NoError(t, err)

	text, err := transcriber.Transcript("x.wav")
	require.NoError(t, err)
	assert.Equal(t, "stub_primary:x.wav", text)
}

func TestNewTranscriberFromConfig_UnknownProvider(t *testing.T) {
	_, err := NewTranscriberFromConfig(testConfig(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in configuration")
}

func TestNewTranscriberFromConfig_DisabledProvider(t *testing.T) {
	registerStub(t, "stub_primary")

	_, err := NewTranscriberFromConfig(testConfig(), "disabled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}
