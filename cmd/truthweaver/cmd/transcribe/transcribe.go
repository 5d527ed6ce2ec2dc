package transcribe

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app"
)

var audioDir string
var transcriptLog string
var providerName string

func init() {
	Cmd.Flags().StringVarP(&audioDir, "audioDir", "d", "",
		"audioDir specifies the directory of testimony recordings, example: ./voices")
	Cmd.Flags().StringVarP(&transcriptLog, "transcriptLog", "l", "transcripts.txt",
		"path of the plain-text transcript log, one block per recording")
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "",
		"transcription provider to use (overrides providers.yaml default)")

	Cmd.MarkFlagRequired("audioDir")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Batch-transcribe the testimony recordings in the specified directory",
	Long: `Batch-transcribe the testimony recordings in the specified directory

- Iterate through the audio files (mp3/wav/m4a/mp4/ogg/flac)
- Derive shadow ID and session number from each file name
- Transcribe with the configured provider and record every session
- Append one block per recording to the transcript log`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := app.InitializePipeline(providerName)
		if err != nil {
			log.Fatalln(err)
		}
		defer p.Close()

		processed, err := p.Run(audioDir, transcriptLog)
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("transcription finished, %d recordings transcribed, log: %s\n", processed, transcriptLog)
	},
}
