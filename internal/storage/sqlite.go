// Package storage keeps prompt history and high scores in a SQLite file,
// through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultHistoryCap is how many prompts are kept when no cap is configured.
const DefaultHistoryCap = 10

// ErrNotFound is returned when a requested history entry does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store is an open history and scores database.
type Store struct {
	db         *sql.DB
	historyCap int
}

// Open opens the database at path, creating it and its directory when
// missing, and brings the schema up to date. A leading ~ is the home
// directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	// one writer; keeps the history transaction from hitting SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: migrate: %w", err)
		}
	}
	return &Store{db: db, historyCap: DefaultHistoryCap}, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand ~: %w", err)
	}
	return filepath.Join(home, rest), nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS history (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		uid         TEXT NOT NULL,
		prompt      TEXT NOT NULL,
		title       TEXT NOT NULL,
		archetype   TEXT NOT NULL,
		theme       TEXT NOT NULL,
		difficulty  TEXT NOT NULL,
		config_yaml TEXT NOT NULL,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_prompt ON history(prompt)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		archetype  TEXT NOT NULL,
		title      TEXT NOT NULL,
		prompt     TEXT NOT NULL,
		score      INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(archetype, score DESC)`,
}

// SetHistoryCap changes how many history entries are kept. Values below one
// restore the default. The new cap applies on the next AddHistory.
func (s *Store) SetHistoryCap(n int) {
	if n < 1 {
		n = DefaultHistoryCap
	}
	s.historyCap = n
}

// HistoryCap returns the current history cap.
func (s *Store) HistoryCap() int {
	return s.historyCap
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime converts a created_at column, which the driver may return as
// either a time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
