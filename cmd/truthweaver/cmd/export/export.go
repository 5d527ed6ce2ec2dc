package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/export"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/repository/sqlite"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/util/files"
)

var outputFilePath string
var analysisReport string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().StringVarP(&analysisReport, "analysisReport", "a", "",
		"analysis report JSON to include in the workbook (optional)")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored sessions and analyses to excel",
	Run: func(cmd *cobra.Command, args []string) {
		projectRoot, err := files.GetProjectRoot()
		if err != nil {
			log.Fatalf("Failed to get project root: %v\n", err)
		}

		dbPath := filepath.Join(projectRoot, "data/sessions.db")
		db := sqlite.NewSQLiteDB(dbPath)
		defer db.Close()

		sessions, err := db.GetAll()
		if err != nil {
			log.Fatal(err)
		}

		var analyses []model.ShadowAnalysis
		if analysisReport != "" {
			data, err := os.ReadFile(analysisReport)
			if err != nil {
				log.Fatalf("Failed to read analysis report: %v\n", err)
			}
			if err := json.Unmarshal(data, &analyses); err != nil {
				log.Fatalf("Failed to parse analysis report: %v\n", err)
			}
		}

		if err := export.ToExcel(sessions, analyses, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
