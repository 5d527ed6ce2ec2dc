package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

// ToExcel writes sessions and analyses into one workbook, one sheet each.
func ToExcel(sessions []model.Session, analyses []model.ShadowAnalysis, outputFilePath string) error {
	file := xlsx.NewFile()

	if err := addSessionsSheet(file, sessions); err != nil {
		return err
	}
	if err := addAnalysesSheet(file, analyses); err != nil {
		return err
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func addSessionsSheet(file *xlsx.File, sessions []model.Session) error {
	sheet, err := file.AddSheet("Sessions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Shadow"
	headerRow.AddCell().Value = "Session"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Transcribed At"
	headerRow.AddCell().Value = "Transcription"

	for _, s := range sessions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(s.ID)
		row.AddCell().Value = s.ShadowID
		row.AddCell().Value = fmt.Sprint(s.SessionNo)
		row.AddCell().Value = s.FileName
		row.AddCell().Value = fmt.Sprint(s.AudioDuration)
		row.AddCell().Value = s.TranscribedAt.Format(time.RFC3339)
		row.AddCell().Value = s.Transcription
	}
	return nil
}

func addAnalysesSheet(file *xlsx.File, analyses []model.ShadowAnalysis) error {
	sheet, err := file.AddSheet("Analyses")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Shadow"
	headerRow.AddCell().Value = "Programming Experience"
	headerRow.AddCell().Value = "Programming Language"
	headerRow.AddCell().Value = "Skill Mastery"
	headerRow.AddCell().Value = "Leadership Claims"
	headerRow.AddCell().Value = "Team Experience"
	headerRow.AddCell().Value = "Skills / Keywords"
	headerRow.AddCell().Value = "Deception Patterns"

	for _, a := range analyses {
		row := sheet.AddRow()
		row.AddCell().Value = a.ShadowID
		row.AddCell().Value = a.RevealedTruth.ProgrammingExperience
		row.AddCell().Value = a.RevealedTruth.ProgrammingLanguage
		row.AddCell().Value = a.RevealedTruth.SkillMastery
		row.AddCell().Value = a.RevealedTruth.LeadershipClaims
		row.AddCell().Value = a.RevealedTruth.TeamExperience
		row.AddCell().Value = strings.Join(a.RevealedTruth.SkillsAndOtherKeywords, ", ")
		row.AddCell().Value = formatDeceptionPatterns(a.DeceptionPatterns)
	}
	return nil
}

func formatDeceptionPatterns(patterns []model.DeceptionPattern) string {
	parts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		parts = append(parts, fmt.Sprintf("%s: %s", p.LieType, strings.Join(p.ContradictoryClaims, " | ")))
	}
	return strings.Join(parts, "\n")
}
