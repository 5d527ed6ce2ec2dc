package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

// WriteReport writes the analysis records as an indented JSON array.
func WriteReport(analyses []model.ShadowAnalysis, outputPath string) error {
	if analyses == nil {
		analyses = []model.ShadowAnalysis{}
	}

	data, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
