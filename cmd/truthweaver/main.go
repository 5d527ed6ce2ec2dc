package main

import (
	"fmt"
	"os"

	"github.com/Taran-0107/VoiceDetectiveAI/cmd/truthweaver/cmd"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/config"

	// Import providers to register them
	_ "github.com/Taran-0107/VoiceDetectiveAI/internal/app/api/openai/whisper"
	_ "github.com/Taran-0107/VoiceDetectiveAI/internal/app/api/whisper_cpp"
)

func main() {
	// Initialize configuration (non-blocking - only warns about missing keys)
	apiKeys, err := config.InitializeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Copy .env.example to .env and add your API keys\n")
		// Continue execution - don't exit
	} else {
		if apiKeys.OpenAI != "" {
			os.Setenv("OPENAI_API_KEY", apiKeys.OpenAI)
		}
		if apiKeys.Gemini != "" {
			os.Setenv("GEMINI_API_KEY", apiKeys.Gemini)
		}
	}

	cmd.Execute()
}
