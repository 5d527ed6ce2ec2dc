package pipeline

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/audio"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/repository"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/util/files"
)

// Pipeline runs the batch transcription step: every supported recording
// in the input directory becomes one session row and one transcript block.
type Pipeline struct {
	transcriber   api.Transcriber
	db            repository.SessionDAO
	logger        *zap.Logger
	progress      ProgressConfig
	probeDuration func(filePath string) (int, error)
}

func NewPipeline(transcriber api.Transcriber, sessionDAO repository.SessionDAO, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		transcriber:   transcriber,
		db:            sessionDAO,
		logger:        logger,
		progress:      ProgressConfig{Enabled: true},
		probeDuration: audio.GetAudioDuration,
	}
}

func (p *Pipeline) SetProgress(config ProgressConfig) {
	p.progress = config
}

func (p *Pipeline) Close() error {
	return p.db.Close()
}

// Run transcribes every unprocessed recording in inputDir and appends the
// results to transcriptLogPath. A failing file gets an error row and does
// not stop the batch. Returns the number of files transcribed.
func (p *Pipeline) Run(inputDir, transcriptLogPath string) (int, error) {
	fileInfos, err := files.GetAllAudioFiles(inputDir)
	if err != nil {
		return 0, err
	}
	if len(fileInfos) == 0 {
		p.logger.Warn("no audio files found", zap.String("inputDir", inputDir))
		return 0, nil
	}

	batchID := uuid.NewString()
	filesToProcess, err := p.filterUnprocessedFiles(fileInfos)
	if err != nil {
		return 0, err
	}
	p.logger.Info("starting transcription batch",
		zap.String("batchID", batchID),
		zap.Int("total", len(fileInfos)),
		zap.Int("pending", len(filesToProcess)))

	pm := NewProgressManager(p.progress)
	bar := pm.CreateBar(len(filesToProcess), "transcribing")

	processed := 0
	var failed int
	for _, file := range filesToProcess {
		if err := p.transcribeFile(batchID, inputDir, transcriptLogPath, file); err != nil {
			p.logger.Error("transcription failed",
				zap.String("file", file.Name),
				zap.Error(err))
			failed++
		} else {
			processed++
		}
		bar.Increment()
	}
	pm.Wait()

	shadowCount := 0
	if shadowIDs, err := p.db.GetShadowIDs(); err == nil {
		shadowCount = len(shadowIDs)
	} else {
		p.logger.Warn("failed to count shadows on record", zap.Error(err))
	}

	p.logger.Info("transcription batch finished",
		zap.String("batchID", batchID),
		zap.Int("transcribed", processed),
		zap.Int("failed", failed),
		zap.Int("shadowsOnRecord", shadowCount))

	if failed > 0 && processed == 0 {
		return 0, fmt.Errorf("all %d files failed to transcribe", failed)
	}
	return processed, nil
}

func (p *Pipeline) filterUnprocessedFiles(fileInfos []model.FileInfo) ([]model.FileInfo, error) {
	filesToProcess := make([]model.FileInfo, 0, len(fileInfos))

	for _, fileInfo := range fileInfos {
		id, err := p.db.CheckIfFileProcessed(fileInfo.Name)
		if err == nil {
			p.logger.Info("file already processed, skipping",
				zap.String("file", fileInfo.Name),
				zap.Int("sessionID", id))
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to check whether %s was processed: %w", fileInfo.Name, err)
		}

		filesToProcess = append(filesToProcess, fileInfo)
	}
	return filesToProcess, nil
}

func (p *Pipeline) transcribeFile(batchID, inputDir, transcriptLogPath string, file model.FileInfo) error {
	p.logger.Info("processing file",
		zap.String("file", file.Name),
		zap.String("shadowID", file.ShadowID),
		zap.Int("session", file.SessionNo))

	record := model.SessionRecord{
		ShadowID:      file.ShadowID,
		SessionNo:     file.SessionNo,
		BatchID:       batchID,
		InputDir:      inputDir,
		FileName:      file.Name,
		TranscribedAt: time.Now(),
	}

	duration, err := p.probeDuration(file.FullPath)
	if err != nil {
		record.HasError = true
		record.ErrorMessage = fmt.Sprintf("failed to get audio duration: %v", err)
		p.recordOrLog(record)
		return fmt.Errorf("failed to get audio duration: %w", err)
	}
	record.AudioDuration = duration

	transcription, err := p.transcriber.Transcript(file.FullPath)
	if err != nil {
		record.HasError = true
		record.ErrorMessage = fmt.Sprintf("transcription error: %v", err)
		p.recordOrLog(record)
		return fmt.Errorf("transcription error: %w", err)
	}
	record.Transcription = transcription

	// The transcript block lands before the session row. A failed append
	// leaves no error-free row behind, so the file is retried on the
	// next batch instead of being skipped with its block missing.
	if err := AppendTranscriptBlock(transcriptLogPath, file.Name, transcription); err != nil {
		record.HasError = true
		record.ErrorMessage = fmt.Sprintf("transcript log append failed: %v", err)
		p.recordOrLog(record)
		return err
	}

	if err := p.db.RecordSession(record); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	p.logger.Info("transcription completed", zap.String("file", file.Name))
	return nil
}

// recordOrLog persists an error row; a second failure is only logged so
// the original error stays the one reported.
func (p *Pipeline) recordOrLog(record model.SessionRecord) {
	if err := p.db.RecordSession(record); err != nil {
		p.logger.Error("failed to record error session",
			zap.String("file", record.FileName),
			zap.Error(err))
	}
}
