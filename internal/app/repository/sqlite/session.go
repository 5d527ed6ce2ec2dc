package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(dbFilePath string) *SQLiteDB {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Failed to create table: %v\n", err)
	}
	return &SQLiteDB{db: db}
}

// NewSQLiteDBFromConn wraps an existing connection, creating the schema
// if needed. Used by tests with an in-memory database.
func NewSQLiteDBFromConn(db *sql.DB) (*SQLiteDB, error) {
	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM sessions WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) RecordSession(rec model.SessionRecord) error {
	insertSQL := `INSERT INTO sessions (shadow_id, session_no, batch_id, input_dir, file_name, wav_file_name, audio_duration, transcription, transcribed_at, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	hasError := 0
	if rec.HasError {
		hasError = 1
	}
	_, err := sdb.db.Exec(insertSQL, rec.ShadowID, rec.SessionNo, rec.BatchID, rec.InputDir, rec.FileName,
		rec.WavFileName, rec.AudioDuration, rec.Transcription, rec.TranscribedAt, hasError, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetByShadow(shadowID string) ([]model.Session, error) {
	sqlStr := `
		SELECT id, shadow_id, session_no, batch_id, file_name, wav_file_name, audio_duration, transcription, transcribed_at, error_message
		FROM sessions
		WHERE has_error = 0
		  AND shadow_id = ?
		ORDER BY session_no, transcribed_at;`
	rows, err := sdb.db.Query(sqlStr, shadowID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (sdb *SQLiteDB) GetShadowIDs() ([]string, error) {
	rows, err := sdb.db.Query(`SELECT DISTINCT shadow_id FROM sessions WHERE has_error = 0 ORDER BY shadow_id;`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	shadowIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		shadowIDs = append(shadowIDs, id)
	}
	return shadowIDs, rows.Err()
}

func (sdb *SQLiteDB) GetAll() ([]model.Session, error) {
	sqlStr := `
		SELECT id, shadow_id, session_no, batch_id, file_name, wav_file_name, audio_duration, transcription, transcribed_at, error_message
		FROM sessions
		WHERE has_error = 0
		ORDER BY shadow_id, session_no;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]model.Session, error) {
	sessions := make([]model.Session, 0)

	for rows.Next() {
		var s model.Session
		var wavFileName, transcription, errorMessage sql.NullString
		err := rows.Scan(&s.ID, &s.ShadowID, &s.SessionNo, &s.BatchID, &s.FileName,
			&wavFileName, &s.AudioDuration, &transcription, &s.TranscribedAt, &errorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		s.WavFileName = wavFileName.String
		s.Transcription = transcription.String
		s.ErrorMessage = errorMessage.String

		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
