package run

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/analyzer"
)

var audioDir string
var transcriptLog string
var reportPath string
var providerName string
var modelName string

func init() {
	Cmd.Flags().StringVarP(&audioDir, "audioDir", "d", "",
		"directory of testimony recordings")
	Cmd.Flags().StringVarP(&transcriptLog, "transcriptLog", "l", "transcripts.txt",
		"path of the plain-text transcript log")
	Cmd.Flags().StringVarP(&reportPath, "output", "o", "truth_weaver_analysis.json",
		"path of the JSON analysis report")
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "",
		"transcription provider to use")
	Cmd.Flags().StringVarP(&modelName, "model", "m", "",
		"Gemini model to use")

	Cmd.MarkFlagRequired("audioDir")
}

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Transcribe the recordings and analyze every shadow in one pass",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := app.InitializePipeline(providerName)
		if err != nil {
			log.Fatalln(err)
		}

		processed, err := p.Run(audioDir, transcriptLog)
		if err != nil {
			p.Close()
			log.Fatalln(err)
		}
		p.Close()
		fmt.Printf("transcription finished, %d recordings transcribed\n", processed)

		a, err := app.InitializeAnalyzer(modelName)
		if err != nil {
			log.Fatalln(err)
		}
		defer a.Close()

		analyses, err := a.AnalyzeAll(context.Background())
		if err != nil {
			log.Fatalln(err)
		}

		if err := analyzer.WriteReport(analyses, reportPath); err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("analysis finished, %d shadows analyzed, report: %s\n", len(analyses), reportPath)
	},
}
