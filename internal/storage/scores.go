package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Archetype core.Archetype
	Title     string
	Prompt    string
	Score     int
	CreatedAt time.Time
}

// ArchetypeStats contains aggregated statistics for one archetype.
type ArchetypeStats struct {
	Archetype  core.Archetype
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// SaveScore records the final score of a game generated from cfg.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(cfg core.GameConfig, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (archetype, title, prompt, score) VALUES (?, ?, ?, ?)",
		string(cfg.Type), cfg.Title, cfg.Prompt, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get insert id: %w", err)
	}
	return id, nil
}

// TopScores returns the highest scores for an archetype, best first.
// Equal scores are ordered oldest first.
func (s *Store) TopScores(archetype core.Archetype, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, archetype, title, prompt, score, created_at
		 FROM scores
		 WHERE archetype = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		string(archetype), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var scores []ScoreEntry
	for rows.Next() {
		var (
			e         ScoreEntry
			arch      string
			createdAt any
		)
		if err := rows.Scan(&e.ID, &arch, &e.Title, &e.Prompt, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.Archetype = core.Archetype(arch)
		e.CreatedAt = parseTime(createdAt)
		scores = append(scores, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating scores: %w", err)
	}
	return scores, nil
}

// HighScore returns the best score for an archetype, or 0 if none exist.
func (s *Store) HighScore(archetype core.Archetype) (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE archetype = ?",
		string(archetype),
	).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	if !high.Valid {
		return 0, nil
	}
	return int(high.Int64), nil
}

// ClearScores removes all scores for an archetype.
func (s *Store) ClearScores(archetype core.Archetype) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE archetype = ?", string(archetype))
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetArchetypeStats returns statistics for a single archetype.
func (s *Store) GetArchetypeStats(archetype core.Archetype) (*ArchetypeStats, error) {
	stats := &ArchetypeStats{Archetype: archetype}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE archetype = ?`,
		string(archetype),
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get archetype stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE archetype = ? ORDER BY id DESC LIMIT 1`,
		string(archetype),
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetStats returns statistics for every archetype with at least one score.
func (s *Store) GetStats() (map[core.Archetype]*ArchetypeStats, error) {
	rows, err := s.db.Query("SELECT DISTINCT archetype FROM scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get archetypes: %w", err)
	}

	var archetypes []core.Archetype
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan archetype: %w", err)
		}
		archetypes = append(archetypes, core.Archetype(a))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating archetypes: %w", err)
	}

	result := make(map[core.Archetype]*ArchetypeStats, len(archetypes))
	for _, a := range archetypes {
		stats, err := s.GetArchetypeStats(a)
		if err != nil {
			return nil, err
		}
		result[a] = stats
	}
	return result, nil
}
