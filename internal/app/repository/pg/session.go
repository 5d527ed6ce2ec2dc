package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB opens a connection with a lib/pq connection string, e.g.
// "user=postgres password=... dbname=truthweaver sslmode=disable", and
// creates the sessions schema if it is missing.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBFromConn wraps an existing connection. Used by tests.
func NewPostgresDBFromConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM sessions WHERE file_name = $1 AND has_error = 0`
	row := pdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (pdb *PostgresDB) RecordSession(rec model.SessionRecord) error {
	insertSQL := `INSERT INTO sessions (shadow_id, session_no, batch_id, input_dir, file_name, wav_file_name, audio_duration, transcription, transcribed_at, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	hasError := 0
	if rec.HasError {
		hasError = 1
	}
	_, err := pdb.db.Exec(insertSQL, rec.ShadowID, rec.SessionNo, rec.BatchID, rec.InputDir, rec.FileName,
		rec.WavFileName, rec.AudioDuration, rec.Transcription, rec.TranscribedAt, hasError, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetByShadow(shadowID string) ([]model.Session, error) {
	query := `
		SELECT id, shadow_id, session_no, batch_id, file_name, wav_file_name, audio_duration, transcription, transcribed_at, error_message
		FROM sessions
		WHERE has_error = 0
		  AND shadow_id = $1
		ORDER BY session_no, transcribed_at`

	rows, err := pdb.db.Query(query, shadowID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (pdb *PostgresDB) GetShadowIDs() ([]string, error) {
	rows, err := pdb.db.Query(`SELECT DISTINCT shadow_id FROM sessions WHERE has_error = 0 ORDER BY shadow_id`)
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

func (pdb *PostgresDB) GetAll() ([]model.Session, error) {
	query := `
		SELECT id, shadow_id, session_no, batch_id, file_name, wav_file_name, audio_duration, transcription, transcribed_at, error_message
		FROM sessions
		WHERE has_error = 0
		ORDER BY shadow_id, session_no`

	rows, err := pdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]model.Session, error) {
	var sessions []model.Session

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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}

	return sessions, nil
}
