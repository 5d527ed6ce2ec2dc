package testutil

import (
	"context"
	"time"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

// SampleSessions returns two shadows' worth of transcribed sessions.
func SampleSessions() []model.Session {
	base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return []model.Session{
		{
			ID:            1,
			ShadowID:      "phoenix_2024",
			SessionNo:     1,
			FileName:      "phoenix_2024_1.mp3",
			AudioDuration: 92,
			Transcription: "I led the whole platform team for six years, everything shipped through me.",
			TranscribedAt: base,
		},
		{
			ID:            2,
			ShadowID:      "phoenix_2024",
			SessionNo:     2,
			FileName:      "phoenix_2024_2.mp3",
			AudioDuration: 75,
			Transcription: "Honestly I mostly owned one feature, the others were stitched together by the team.",
			TranscribedAt: base.Add(time.Hour),
		},
		{
			ID:            3,
			ShadowID:      "willow",
			SessionNo:     1,
			FileName:      "willow.mp3",
			AudioDuration: 60,
			Transcription: "I have written Go for about three years, mostly backend services.",
			TranscribedAt: base.Add(2 * time.Hour),
		},
	}
}

// SampleAnalysisJSON is a well-formed Truth Weaver reply for phoenix_2024.
const SampleAnalysisJSON = `{
    "shadow_id": "phoenix_2024",
    "revealed_truth": {
        "programming_experience": "4-6 years",
        "programming_language": "go",
        "skill_mastery": "intermediate",
        "leadership_claims": "fabricated",
        "team_experience": "individual contributor",
        "skills_and_other_keywords": ["backend", "platform", "feature ownership"]
    },
    "deception_patterns": [
        {
            "lie_type": "responsibility_embellishment",
            "contradictory_claims": [
                "led the whole platform team for six years",
                "mostly owned one feature"
            ]
        }
    ]
}`

// StaticGenerator returns a canned model reply regardless of prompt.
type StaticGenerator struct {
	Response string
	Err      error
	Prompts  []string
}

func (g *StaticGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.Prompts = append(g.Prompts, prompt)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}
