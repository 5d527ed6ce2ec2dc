package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/errors"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/repository"
)

// Analyzer runs the Truth Weaver step: per-shadow testimony aggregation,
// model call, and structured record parsing.
type Analyzer struct {
	db        repository.SessionDAO
	generator Generator
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewAnalyzer(sessionDAO repository.SessionDAO, generator Generator, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		db:        sessionDAO,
		generator: generator,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (a *Analyzer) Close() error {
	return a.db.Close()
}

// AnalyzeAll produces one analysis record per shadow that has at least
// one transcribed session. A model or parse failure never drops a
// shadow; it yields the fallback record instead.
func (a *Analyzer) AnalyzeAll(ctx context.Context) ([]model.ShadowAnalysis, error) {
	sessions, err := a.db.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sessions")
	}

	grouped := GroupSessionsByShadow(sessions)
	if len(grouped) == 0 {
		return []model.ShadowAnalysis{}, nil
	}

	shadowIDs := lo.Keys(grouped)
	sort.Strings(shadowIDs)

	analyses := make([]model.ShadowAnalysis, 0, len(shadowIDs))
	for _, shadowID := range shadowIDs {
		analyses = append(analyses, a.analyzeWithFallback(ctx, shadowID, grouped[shadowID]))
	}
	return analyses, nil
}

// AnalyzeShadow aggregates one shadow's sessions and asks the model for
// the Truth Weaver record. Only repository failures are returned as
// errors; analysis failures produce the fallback record.
func (a *Analyzer) AnalyzeShadow(ctx context.Context, shadowID string) (model.ShadowAnalysis, error) {
	sessions, err := a.db.GetByShadow(shadowID)
	if err != nil {
		return model.ShadowAnalysis{}, errors.Wrapf(err, "failed to load sessions for %s", shadowID)
	}
	if len(sessions) == 0 {
		return model.ShadowAnalysis{}, errors.Wrapf(errors.ErrNoSessions, "shadow %s", shadowID)
	}

	return a.analyzeWithFallback(ctx, shadowID, sessions), nil
}

func (a *Analyzer) analyzeWithFallback(ctx context.Context, shadowID string, sessions []model.Session) model.ShadowAnalysis {
	testimony := AggregateTestimony(sessions)
	a.logger.Info("analyzing shadow",
		zap.String("shadowID", shadowID),
		zap.Int("sessions", len(sessions)))

	analysis, err := a.analyzeTestimony(ctx, shadowID, testimony)
	if err != nil {
		a.logger.Error("analysis failed, using fallback record",
			zap.String("shadowID", shadowID),
			zap.Bool("retryable", errors.IsRetryable(err)),
			zap.Error(err))
		return FallbackAnalysis(shadowID)
	}

	return analysis
}

func (a *Analyzer) analyzeTestimony(ctx context.Context, shadowID, testimony string) (model.ShadowAnalysis, error) {
	prompt := BuildPrompt(shadowID, testimony)

	response, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return model.ShadowAnalysis{}, errors.Wrap(errors.ErrAnalysisFailed, err.Error())
	}

	var analysis model.ShadowAnalysis
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &analysis); err != nil {
		return model.ShadowAnalysis{}, errors.Wrapf(errors.ErrMalformedRecord, "json parse: %v", err)
	}

	// The model sometimes invents its own shadow_id; the file-derived one wins.
	analysis.ShadowID = shadowID

	if err := a.validate.Struct(&analysis); err != nil {
		return model.ShadowAnalysis{}, errors.Wrapf(errors.ErrMalformedRecord, "validation: %v", err)
	}

	return analysis, nil
}

// AggregateTestimony joins a shadow's session transcripts in session
// order with session markers, so the model sees which claims came from
// which sitting.
func AggregateTestimony(sessions []model.Session) string {
	blocks := lo.Map(sessions, func(s model.Session, _ int) string {
		return fmt.Sprintf("Session %d:\n%s", s.SessionNo, strings.TrimSpace(s.Transcription))
	})
	return strings.Join(blocks, "\n\n")
}

// GroupSessionsByShadow buckets sessions per shadow ID, preserving the
// repository's session ordering inside each bucket.
func GroupSessionsByShadow(sessions []model.Session) map[string][]model.Session {
	return lo.GroupBy(sessions, func(s model.Session) string {
		return s.ShadowID
	})
}

// FallbackAnalysis is the record a shadow gets when the model call or the
// response parsing fails, so the report always covers every shadow.
func FallbackAnalysis(shadowID string) model.ShadowAnalysis {
	return model.ShadowAnalysis{
		ShadowID: shadowID,
		RevealedTruth: model.RevealedTruth{
			ProgrammingExperience:  "analysis_failed",
			ProgrammingLanguage:    "not analyzed",
			SkillMastery:           "unknown",
			LeadershipClaims:       "not analyzed",
			TeamExperience:         "not analyzed",
			SkillsAndOtherKeywords: []string{"analysis_error"},
		},
		DeceptionPatterns: []model.DeceptionPattern{
			{
				LieType:             "analysis_unavailable",
				ContradictoryClaims: []string{"Could not analyze due to technical error"},
			},
		},
	}
}
