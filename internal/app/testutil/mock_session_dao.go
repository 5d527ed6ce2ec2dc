package testutil

import (
	"database/sql"
	"sort"
	"sync"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

// MockSessionDAO is an in-memory implementation of repository.SessionDAO.
type MockSessionDAO struct {
	mu sync.RWMutex

	Sessions []model.Session
	nextID   int

	CloseError     error
	RecordError    error
	QueryError     error
	RecordedCalls  []model.SessionRecord
	CloseCallCount int
}

// NewMockSessionDAO creates an empty in-memory DAO.
func NewMockSessionDAO() *MockSessionDAO {
	return &MockSessionDAO{nextID: 1}
}

// WithCloseError configures Close to fail.
func (m *MockSessionDAO) WithCloseError(err error) *MockSessionDAO {
	m.CloseError = err
	return m
}

// WithRecordError configures RecordSession to fail.
func (m *MockSessionDAO) WithRecordError(err error) *MockSessionDAO {
	m.RecordError = err
	return m
}

// WithQueryError configures the read methods to fail.
func (m *MockSessionDAO) WithQueryError(err error) *MockSessionDAO {
	m.QueryError = err
	return m
}

// Seed adds sessions directly, bypassing RecordSession bookkeeping.
func (m *MockSessionDAO) Seed(sessions ...model.Session) *MockSessionDAO {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range sessions {
		if s.ID == 0 {
			s.ID = m.nextID
		}
		m.nextID = s.ID + 1
		m.Sessions = append(m.Sessions, s)
	}
	return m
}

func (m *MockSessionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCallCount++
	return m.CloseError
}

func (m *MockSessionDAO) CheckIfFileProcessed(fileName string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.QueryError != nil {
		return 0, m.QueryError
	}
	for _, s := range m.Sessions {
		if s.FileName == fileName && s.ErrorMessage == "" {
			return s.ID, nil
		}
	}
	return 0, sql.ErrNoRows
}

func (m *MockSessionDAO) RecordSession(rec model.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordError != nil {
		return m.RecordError
	}
	m.RecordedCalls = append(m.RecordedCalls, rec)
	if !rec.HasError {
		m.Sessions = append(m.Sessions, model.Session{
			ID:            m.nextID,
			ShadowID:      rec.ShadowID,
			SessionNo:     rec.SessionNo,
			BatchID:       rec.BatchID,
			FileName:      rec.FileName,
			WavFileName:   rec.WavFileName,
			AudioDuration: rec.AudioDuration,
			Transcription: rec.Transcription,
			TranscribedAt: rec.TranscribedAt,
		})
		m.nextID++
	}
	return nil
}

func (m *MockSessionDAO) GetByShadow(shadowID string) ([]model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var sessions []model.Session
	for _, s := range m.Sessions {
		if s.ShadowID == shadowID && s.ErrorMessage == "" {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].SessionNo < sessions[j].SessionNo
	})
	return sessions, nil
}

func (m *MockSessionDAO) GetShadowIDs() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	seen := make(map[string]bool)
	var ids []string
	for _, s := range m.Sessions {
		if s.ErrorMessage == "" && !seen[s.ShadowID] {
			seen[s.ShadowID] = true
			ids = append(ids, s.ShadowID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MockSessionDAO) GetAll() ([]model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var sessions []model.Session
	for _, s := range m.Sessions {
		if s.ErrorMessage == "" {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].ShadowID != sessions[j].ShadowID {
			return sessions[i].ShadowID < sessions[j].ShadowID
		}
		return sessions[i].SessionNo < sessions[j].SessionNo
	})
	return sessions, nil
}
