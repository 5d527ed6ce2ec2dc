//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/analyzer"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/pipeline"
)

// InitializePipeline builds the batch transcription pipeline with the
// selected provider (empty string picks the configured default).
func InitializePipeline(providerName string) (*pipeline.Pipeline, error) {
	wire.Build(pipeline.NewPipeline, provideTranscriber, provideSessionDAO, provideLogger)
	return nil, nil
}

// InitializeAnalyzer builds the Truth Weaver analyzer with the given
// Gemini model (empty string picks the default model).
func InitializeAnalyzer(modelName string) (*analyzer.Analyzer, error) {
	wire.Build(analyzer.NewAnalyzer, provideGenerator, provideSessionDAO, provideLogger)
	return nil, nil
}
