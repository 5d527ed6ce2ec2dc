package whisper_cpp

import (
	"fmt"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api/provider"
)

func init() {
	provider.Register("whisper_cpp", createWhisperCppProvider)
}

func createWhisperCppProvider(config map[string]interface{}) (api.Transcriber, error) {
	settings, ok := config["settings"].(map[string]interface{})
	if !ok {
		settings = make(map[string]interface{})
	}

	binaryPath, _ := settings["binary_path"].(string)
	if binaryPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'binary_path' in settings")
	}

	modelPath, _ := settings["model_path"].(string)
	if modelPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'model_path' in settings")
	}

	language, _ := settings["language"].(string)

	return NewLocalTranscriber(binaryPath, modelPath, language), nil
}
