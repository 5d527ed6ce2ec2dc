package repository

import (
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

// SessionDAO persists transcribed testimony sessions.
type SessionDAO interface {
	Close() error

	// CheckIfFileProcessed returns the row id of an error-free session
	// for the file name, or an error when no such row exists.
	CheckIfFileProcessed(fileName string) (int, error)

	RecordSession(rec model.SessionRecord) error

	// GetByShadow returns the shadow's error-free sessions in session order.
	GetByShadow(shadowID string) ([]model.Session, error)

	// GetShadowIDs returns the distinct shadow IDs with at least one
	// error-free session, sorted.
	GetShadowIDs() ([]string, error)

	GetAll() ([]model.Session, error)
}
