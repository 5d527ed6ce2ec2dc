package app

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/analyzer"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api/provider"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/logging"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/repository"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/repository/pg"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/repository/sqlite"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/util/files"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/config"
)

// provideTranscriber resolves the transcription provider from
// providers.yaml, honoring the command-line override.
func provideTranscriber(providerName string) (api.Transcriber, error) {
	return provider.NewTranscriber(providerName)
}

// provideSessionDAO picks the storage backend: SQLite under data/ by
// default, Postgres when TRUTHWEAVER_DB=postgres.
func provideSessionDAO() repository.SessionDAO {
	if os.Getenv("TRUTHWEAVER_DB") == "postgres" {
		dsn := os.Getenv("TRUTHWEAVER_PG_DSN")
		if dsn == "" {
			log.Fatal("TRUTHWEAVER_PG_DSN environment variable must be set when TRUTHWEAVER_DB=postgres")
		}
		db, err := pg.NewPostgresDB(dsn)
		if err != nil {
			log.Fatalf("Failed to open postgres database: %v\n", err)
		}
		return db
	}

	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	dataDir := filepath.Join(projectRoot, "data")
	files.CheckAndCreateDirectory(dataDir)

	return sqlite.NewSQLiteDB(filepath.Join(dataDir, "sessions.db"))
}

// provideGenerator builds the Gemini generator, requires GEMINI_API_KEY.
func provideGenerator(modelName string) (analyzer.Generator, error) {
	apiKeys, err := config.GetAPIKeys()
	if err != nil {
		return nil, err
	}
	if err := config.RequireGeminiKey(apiKeys); err != nil {
		return nil, err
	}
	return analyzer.NewGeminiGenerator(apiKeys.Gemini, modelName), nil
}

func provideLogger() *zap.Logger {
	return logging.MustNewLogger(os.Getenv("TRUTHWEAVER_ENV") != "production")
}
