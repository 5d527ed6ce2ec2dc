package model

import "time"

// FileInfo describes one candidate recording found in the input directory.
type FileInfo struct {
	FullPath  string
	ModTime   time.Time
	Name      string
	ShadowID  string
	SessionNo int
}

// Session is one transcribed testimony recording.
type Session struct {
	ID            int
	ShadowID      string
	SessionNo     int
	BatchID       string
	FileName      string
	WavFileName   string
	AudioDuration int
	Transcription string
	TranscribedAt time.Time
	ErrorMessage  string
}

// SessionRecord carries everything the repository needs to persist one
// transcription attempt, including failed ones.
type SessionRecord struct {
	ShadowID      string
	SessionNo     int
	BatchID       string
	InputDir      string
	FileName      string
	WavFileName   string
	AudioDuration int
	Transcription string
	TranscribedAt time.Time
	HasError      bool
	ErrorMessage  string
}
