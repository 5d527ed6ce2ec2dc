package analyze

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/analyzer"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

var reportPath string
var shadowID string
var modelName string

func init() {
	Cmd.Flags().StringVarP(&reportPath, "output", "o", "truth_weaver_analysis.json",
		"path of the JSON analysis report")
	Cmd.Flags().StringVarP(&shadowID, "shadow", "s", "",
		"analyze a single shadow instead of all of them")
	Cmd.Flags().StringVarP(&modelName, "model", "m", "",
		"Gemini model to use (default "+analyzer.DefaultModel+")")
}

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the Truth Weaver analysis over the stored transcripts",
	Long: `Run the Truth Weaver analysis over the stored transcripts

- Group sessions by shadow and aggregate each shadow's testimony
- Ask Gemini for the structured contradiction/deception record
- Write one JSON record per shadow to the report file`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.InitializeAnalyzer(modelName)
		if err != nil {
			log.Fatalln(err)
		}
		defer a.Close()

		ctx := context.Background()

		var analyses []model.ShadowAnalysis
		if shadowID != "" {
			analysis, err := a.AnalyzeShadow(ctx, shadowID)
			if err != nil {
				log.Fatalln(err)
			}
			analyses = []model.ShadowAnalysis{analysis}
		} else {
			analyses, err = a.AnalyzeAll(ctx)
			if err != nil {
				log.Fatalln(err)
			}
		}

		if err := analyzer.WriteReport(analyses, reportPath); err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("analysis finished, %d shadows analyzed, report: %s\n", len(analyses), reportPath)
	},
}
