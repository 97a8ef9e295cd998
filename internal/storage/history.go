package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// HistoryEntry is one previously generated game.
type HistoryEntry struct {
	ID         int64
	UID        string
	Prompt     string
	Title      string
	Archetype  core.Archetype
	Theme      core.Theme
	Difficulty core.Difficulty
	Config     core.GameConfig
	CreatedAt  time.Time
}

// AddHistory records a generated game at the front of the history.
// An identical prompt already in the history is moved instead of duplicated,
// and the oldest entries beyond the cap are evicted in the same transaction.
func (s *Store) AddHistory(prompt string, cfg core.GameConfig) (HistoryEntry, error) {
	prompt = strings.TrimSpace(prompt)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot encode config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history WHERE prompt = ?", prompt); err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot remove duplicate prompt: %w", err)
	}

	entry := HistoryEntry{
		UID:        uuid.NewString(),
		Prompt:     prompt,
		Title:      cfg.Title,
		Archetype:  cfg.Type,
		Theme:      cfg.Theme,
		Difficulty: cfg.Difficulty,
		Config:     cfg,
		CreatedAt:  time.Now().UTC(),
	}
	result, err := tx.Exec(
		`INSERT INTO history (uid, prompt, title, archetype, theme, difficulty, config_yaml)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.UID, entry.Prompt, entry.Title, string(entry.Archetype),
		string(entry.Theme), string(entry.Difficulty), string(data),
	)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot save history: %w", err)
	}
	if entry.ID, err = result.LastInsertId(); err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot get history id: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`,
		s.historyCap,
	)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot evict history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot commit history: %w", err)
	}
	return entry, nil
}

// History returns up to limit entries, newest first. A limit of zero or
// less returns every stored entry.
func (s *Store) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, uid, prompt, title, archetype, theme, difficulty, config_yaml, created_at
		 FROM history
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		e, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating history: %w", err)
	}
	return entries, nil
}

// HistoryAt returns the entry at a 1-based position, newest first.
func (s *Store) HistoryAt(n int) (HistoryEntry, error) {
	if n < 1 {
		return HistoryEntry{}, ErrNotFound
	}
	row := s.db.QueryRow(
		`SELECT id, uid, prompt, title, archetype, theme, difficulty, config_yaml, created_at
		 FROM history
		 ORDER BY id DESC
		 LIMIT 1 OFFSET ?`,
		n-1,
	)
	e, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return HistoryEntry{}, ErrNotFound
	}
	return e, err
}

// ClearHistory deletes every history entry.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(row scanner) (HistoryEntry, error) {
	var (
		e                           HistoryEntry
		archetype, theme, diff, raw string
		createdAt                   any
	)
	err := row.Scan(&e.ID, &e.UID, &e.Prompt, &e.Title, &archetype, &theme, &diff, &raw, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HistoryEntry{}, err
		}
		return HistoryEntry{}, fmt.Errorf("storage: cannot scan history: %w", err)
	}
	e.Archetype = core.Archetype(archetype)
	e.Theme = core.Theme(theme)
	e.Difficulty = core.Difficulty(diff)
	e.CreatedAt = parseTime(createdAt)

	if err := yaml.Unmarshal([]byte(raw), &e.Config); err != nil {
		return HistoryEntry{}, fmt.Errorf("storage: cannot decode config for %s: %w", e.UID, err)
	}
	return e, nil
}
