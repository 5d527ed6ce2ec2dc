package sqlite

const createTableSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    shadow_id TEXT NOT NULL,
    session_no INTEGER NOT NULL DEFAULT 1,
    batch_id TEXT NOT NULL DEFAULT '',
    input_dir TEXT,
    file_name TEXT NOT NULL,
    wav_file_name TEXT,
    audio_duration INTEGER DEFAULT 0,
    transcription TEXT,
    transcribed_at TIMESTAMP,
    has_error INTEGER DEFAULT 0,
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_sessions_shadow ON sessions(shadow_id, session_no);
CREATE INDEX IF NOT EXISTS idx_sessions_file ON sessions(file_name);
`
