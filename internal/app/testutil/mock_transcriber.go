package testutil

import (
	"sync"
	"time"
)

// MockTranscriber is a configurable mock implementation of the
// api.Transcriber interface.
type MockTranscriber struct {
	mu sync.RWMutex

	DefaultResponse string
	DefaultError    error

	// Per-file overrides, keyed by the full input path.
	ResponseMap map[string]string
	ErrorMap    map[string]error

	CallCount   int
	CallHistory []TranscriptionCall
}

// TranscriptionCall represents a single transcription call for tracking
type TranscriptionCall struct {
	InputFilePath string
	Timestamp     time.Time
	Response      string
	Error         error
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

// WithResponse sets the response for a specific input path.
func (m *MockTranscriber) WithResponse(inputFilePath, response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseMap[inputFilePath] = response
	return m
}

// WithError sets the error for a specific input path.
func (m *MockTranscriber) WithError(inputFilePath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[inputFilePath] = err
	return m
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	response, hasResponse := m.ResponseMap[inputFilePath]
	if !hasResponse {
		response = m.DefaultResponse
	}
	err, hasErr := m.ErrorMap[inputFilePath]
	if !hasErr {
		err = m.DefaultError
	}
	if err != nil {
		response = ""
	}

	m.CallCount++
	m.CallHistory = append(m.CallHistory, TranscriptionCall{
		InputFilePath: inputFilePath,
		Timestamp:     time.Now(),
		Response:      response,
		Error:         err,
	})

	return response, err
}
