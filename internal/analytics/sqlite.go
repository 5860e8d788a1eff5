package analytics

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	path       TEXT NOT NULL,
	format     TEXT NOT NULL,
	sentences  INTEGER NOT NULL,
	issues     INTEGER NOT NULL,
	unassigned INTEGER NOT NULL,
	score      INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
`

// SQLiteRecorder stores run summaries in a local SQLite database
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) the analytics database
func OpenSQLite(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init stats db: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

// Record inserts one run summary
func (r *SQLiteRecorder) Record(rec RunRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO runs (id, path, format, sentences, issues, unassigned, score, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.Path,
		rec.Format,
		rec.Sentences,
		rec.Issues,
		rec.Unassigned,
		rec.Score,
		rec.Duration.Milliseconds(),
		rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Close closes the database
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
