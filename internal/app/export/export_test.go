package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

func TestToExcel(t *testing.T) {
	sessions := []model.Session{
		{
			ID:            1,
			ShadowID:      "phoenix_2024",
			SessionNo:     1,
			FileName:      "phoenix_2024_1.mp3",
			AudioDuration: 42,
			Transcription: "I led the whole team.",
			TranscribedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            2,
			ShadowID:      "willow",
			SessionNo:     1,
			FileName:      "willow_1.wav",
			AudioDuration: 17,
			Transcription: "I mostly watched.",
			TranscribedAt: time.Date(2026, 8, 30, 10, 5, 0, 0, time.UTC),
		},
	}

	analyses := []model.ShadowAnalysis{
		{
			ShadowID: "phoenix_2024",
			RevealedTruth: model.RevealedTruth{
				ProgrammingExperience:  "3-4 years",
				ProgrammingLanguage:    "python",
				SkillMastery:           "intermediate",
				LeadershipClaims:       "exaggerated",
				TeamExperience:         "individual contributor",
				SkillsAndOtherKeywords: []string{"debugging", "flask"},
			},
			DeceptionPatterns: []model.DeceptionPattern{
				{
					LieType:             "experience_inflation",
					ContradictoryClaims: []string{"10 years", "2 years"},
				},
			},
		},
	}

	outputPath := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, ToExcel(sessions, analyses, outputPath))

	workbook, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, workbook.Sheets, 2)

	sessionsSheet := workbook.Sheet["Sessions"]
	require.NotNil(t, sessionsSheet)
	require.Len(t, sessionsSheet.Rows, 3)
	assert.Equal(t, "Shadow", sessionsSheet.Rows[0].Cells[1].Value)
	assert.Equal(t, "phoenix_2024", sessionsSheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "I mostly watched.", sessionsSheet.Rows[2].Cells[6].Value)

	analysesSheet := workbook.Sheet["Analyses"]
	require.NotNil(t, analysesSheet)
	require.Len(t, analysesSheet.Rows, 2)
	row := analysesSheet.Rows[1]
	assert.Equal(t, "phoenix_2024", row.Cells[0].Value)
	assert.Equal(t, "3-4 years", row.Cells[1].Value)
	assert.Equal(t, "debugging, flask", row.Cells[6].Value)
	assert.Equal(t, "experience_inflation: 10 years | 2 years", row.Cells[7].Value)
}

func TestToExcel_EmptyInputs(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, nil, outputPath))

	workbook, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)

	// Header rows only.
	require.Len(t, workbook.Sheet["Sessions"].Rows, 1)
	require.Len(t, workbook.Sheet["Analyses"].Rows, 1)
}

func TestFormatDeceptionPatterns(t *testing.T) {
	assert.Equal(t, "", formatDeceptionPatterns(nil))

	got := formatDeceptionPatterns([]model.DeceptionPattern{
		{LieType: "skill_exaggeration", ContradictoryClaims: []string{"expert", "beginner"}},
		{LieType: "timeline_inconsistency", ContradictoryClaims: []string{"2019"}},
	})
	assert.Equal(t, "skill_exaggeration: expert | beginner\ntimeline_inconsistency: 2019", got)
}
