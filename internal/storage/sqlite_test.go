package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func interpret(text string) core.GameConfig {
	return prompt.Default().Interpret(text)
}

func TestStoreOpen(t *testing.T) {
	store := openTestStore(t)
	if store.HistoryCap() != DefaultHistoryCap {
		t.Errorf("HistoryCap() = %d, expected %d", store.HistoryCap(), DefaultHistoryCap)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.AddHistory("space shooter", interpret("space shooter")); err != nil {
		t.Fatalf("AddHistory() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() second time failed: %v", err)
	}
	defer store.Close()

	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry after reopen, got %d", len(entries))
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	store := openTestStore(t)
	cfg := interpret("A space shooter where I destroy asteroids")

	added, err := store.AddHistory("  A space shooter where I destroy asteroids ", cfg)
	if err != nil {
		t.Fatalf("AddHistory() failed: %v", err)
	}
	if added.UID == "" {
		t.Error("AddHistory() should assign a uid")
	}

	entries, err := store.History(10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.Prompt != "A space shooter where I destroy asteroids" {
		t.Errorf("Prompt = %q, expected trimmed prompt", got.Prompt)
	}
	if got.Archetype != core.ArchetypeShooter || got.Theme != core.ThemeSpace || got.Difficulty != core.DifficultyMedium {
		t.Errorf("classification = %s/%s/%s, expected shooter/space/medium", got.Archetype, got.Theme, got.Difficulty)
	}
	if got.Title != cfg.Title {
		t.Errorf("Title = %q, expected %q", got.Title, cfg.Title)
	}
	if got.Config != cfg {
		t.Errorf("Config did not survive storage:\n got %+v\nwant %+v", got.Config, cfg)
	}
	if got.UID != added.UID || got.ID != added.ID {
		t.Errorf("stored entry %d/%s, expected %d/%s", got.ID, got.UID, added.ID, added.UID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	store := openTestStore(t)
	prompts := []string{"catch stars", "race cars", "flappy bird"}
	for _, p := range prompts {
		if _, err := store.AddHistory(p, interpret(p)); err != nil {
			t.Fatalf("AddHistory(%q) failed: %v", p, err)
		}
	}

	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	want := []string{"flappy bird", "race cars", "catch stars"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Prompt != w {
			t.Errorf("entries[%d] = %q, expected %q", i, entries[i].Prompt, w)
		}
	}

	limited, err := store.History(2)
	if err != nil {
		t.Fatalf("History(2) failed: %v", err)
	}
	if len(limited) != 2 || limited[0].Prompt != "flappy bird" {
		t.Errorf("History(2) = %d entries, expected the 2 newest", len(limited))
	}
}

func TestHistoryDuplicateMovesToFront(t *testing.T) {
	store := openTestStore(t)
	for _, p := range []string{"catch stars", "race cars", "catch stars"} {
		if _, err := store.AddHistory(p, interpret(p)); err != nil {
			t.Fatalf("AddHistory(%q) failed: %v", p, err)
		}
	}

	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Prompt != "catch stars" || entries[1].Prompt != "race cars" {
		t.Errorf("order = %q, %q, expected catch stars first", entries[0].Prompt, entries[1].Prompt)
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	store := openTestStore(t)
	store.SetHistoryCap(3)

	prompts := []string{"one", "two", "three", "four", "five"}
	for _, p := range prompts {
		if _, err := store.AddHistory(p, interpret(p)); err != nil {
			t.Fatalf("AddHistory(%q) failed: %v", p, err)
		}
	}

	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries with cap, got %d", len(entries))
	}
	if entries[0].Prompt != "five" || entries[2].Prompt != "three" {
		t.Errorf("kept %q..%q, expected five..three", entries[0].Prompt, entries[2].Prompt)
	}
}

func TestHistoryDefaultCap(t *testing.T) {
	store := openTestStore(t)
	store.SetHistoryCap(0)

	for i := range DefaultHistoryCap + 4 {
		p := string(rune('a'+i)) + " game"
		if _, err := store.AddHistory(p, interpret(p)); err != nil {
			t.Fatalf("AddHistory(%q) failed: %v", p, err)
		}
	}

	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != DefaultHistoryCap {
		t.Errorf("Expected %d entries, got %d", DefaultHistoryCap, len(entries))
	}
}

func TestHistoryAt(t *testing.T) {
	store := openTestStore(t)
	for _, p := range []string{"catch stars", "race cars"} {
		if _, err := store.AddHistory(p, interpret(p)); err != nil {
			t.Fatalf("AddHistory(%q) failed: %v", p, err)
		}
	}

	tests := []struct {
		n      int
		prompt string
		err    error
	}{
		{1, "race cars", nil},
		{2, "catch stars", nil},
		{3, "", ErrNotFound},
		{0, "", ErrNotFound},
		{-1, "", ErrNotFound},
	}
	for _, tt := range tests {
		e, err := store.HistoryAt(tt.n)
		if !errors.Is(err, tt.err) {
			t.Errorf("HistoryAt(%d) error = %v, expected %v", tt.n, err, tt.err)
			continue
		}
		if e.Prompt != tt.prompt {
			t.Errorf("HistoryAt(%d) = %q, expected %q", tt.n, e.Prompt, tt.prompt)
		}
	}
}

func TestClearHistory(t *testing.T) {
	store := openTestStore(t)
	store.AddHistory("catch stars", interpret("catch stars"))
	store.AddHistory("race cars", interpret("race cars"))

	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history after clear, got %d", len(entries))
	}
}

func TestStoreSaveScore(t *testing.T) {
	store := openTestStore(t)
	cfg := interpret("space shooter")

	id, err := store.SaveScore(cfg, 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	scores, err := store.TopScores(core.ArchetypeShooter, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	if scores[0].Score != 100 || scores[0].Title != cfg.Title || scores[0].Prompt != cfg.Prompt {
		t.Errorf("stored score = %+v", scores[0])
	}

	racer, err := store.TopScores(core.ArchetypeRacer, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(racer) != 0 {
		t.Errorf("Expected no racer scores, got %d", len(racer))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	cfg := interpret("catch stars")

	for i := range 5 {
		store.SaveScore(cfg, (i+1)*100)
	}

	scores, err := store.TopScores(core.ArchetypeCatcher, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(core.ArchetypeFlappy)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty archetype, got %d", high)
	}

	cfg := interpret("flappy bird")
	store.SaveScore(cfg, 10)
	store.SaveScore(cfg, 30)
	store.SaveScore(cfg, 20)

	high, err = store.HighScore(core.ArchetypeFlappy)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(interpret("flappy bird"), 100)
	store.SaveScore(interpret("race cars"), 300)

	if err := store.ClearScores(core.ArchetypeFlappy); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappy, _ := store.TopScores(core.ArchetypeFlappy, 10)
	if len(flappy) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappy))
	}
	racer, _ := store.TopScores(core.ArchetypeRacer, 10)
	if len(racer) != 1 {
		t.Error("Racer scores should not be affected by clearing flappy")
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats on empty store, got %d", len(stats))
	}

	shooter := interpret("space shooter")
	store.SaveScore(shooter, 10)
	store.SaveScore(shooter, 20)
	store.SaveScore(interpret("pong"), 5)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 archetypes, got %d", len(stats))
	}

	s := stats[core.ArchetypeShooter]
	if s == nil {
		t.Fatal("missing shooter stats")
	}
	if s.GamesCount != 2 || s.HighScore != 20 || s.AvgScore != 15 {
		t.Errorf("shooter stats = %+v, expected 2 games, best 20, avg 15", s)
	}
	if s.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
	if p := stats[core.ArchetypePong]; p == nil || p.GamesCount != 1 {
		t.Errorf("pong stats = %+v, expected 1 game", p)
	}
}
