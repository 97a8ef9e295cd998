package tui

import (
	"testing"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

func pressPrompt(m PromptModel, k string) PromptModel {
	updated, _ := m.Update(keyMsg(k))
	return updated.(PromptModel)
}

func seedHistory(t *testing.T, store *storage.Store, prompts ...string) {
	t.Helper()
	for _, p := range prompts {
		if _, err := store.AddHistory(p, prompt.Default().Interpret(p)); err != nil {
			t.Fatalf("AddHistory(%q) failed: %v", p, err)
		}
	}
}

func TestPromptEnterIgnoresBlankInput(t *testing.T) {
	for _, text := range []string{"", "   "} {
		m := NewPromptModel(testEnv(nil))
		m.input.SetValue(text)
		m = pressPrompt(m, "enter")
		if m.Choice() != nil {
			t.Errorf("Enter on %q produced a choice", text)
		}
		if m.err != "" {
			t.Errorf("Enter on %q set error %q", text, m.err)
		}
	}
}

func TestPromptEnterGenerates(t *testing.T) {
	m := NewPromptModel(testEnv(nil))
	m.input.SetValue("  A space shooter where I destroy asteroids ")
	m = pressPrompt(m, "enter")

	c := m.Choice()
	if c == nil {
		t.Fatal("Enter should produce a choice")
	}
	if c.Replay {
		t.Error("typed prompt should not be a replay")
	}
	if c.Prompt != "A space shooter where I destroy asteroids" {
		t.Errorf("Prompt = %q, expected trimmed text", c.Prompt)
	}
	if c.Config.Type != core.ArchetypeShooter || c.Config.Theme != core.ThemeSpace {
		t.Errorf("Config = %s/%s, expected shooter/space", c.Config.Type, c.Config.Theme)
	}
}

func TestPromptTypingUpdatesInput(t *testing.T) {
	m := NewPromptModel(testEnv(nil))
	m = pressPrompt(m, "pong")
	if m.input.Value() != "pong" {
		t.Errorf("input = %q, expected pong", m.input.Value())
	}
	// typed q is text, not quit
	m = pressPrompt(m, "q")
	if m.IsQuitting() {
		t.Error("q in the text box should not quit")
	}
}

func TestPromptHistoryReplay(t *testing.T) {
	store := openStore(t)
	seedHistory(t, store, "catch stars", "race cars in the desert")

	m := NewPromptModel(testEnv(store))
	if n := len(m.history.Items()); n != 2 {
		t.Fatalf("history has %d items, expected 2", n)
	}

	m = pressPrompt(m, "tab")
	if m.focus != focusHistory {
		t.Fatal("tab should focus the history")
	}
	m = pressPrompt(m, "enter")

	c := m.Choice()
	if c == nil || !c.Replay {
		t.Fatalf("Choice() = %+v, expected a replay", c)
	}
	if c.Prompt != "race cars in the desert" || c.Config.Type != core.ArchetypeRacer {
		t.Errorf("replayed %q (%s), expected the newest entry", c.Prompt, c.Config.Type)
	}
}

func TestPromptTabWithoutHistoryKeepsInputFocus(t *testing.T) {
	m := NewPromptModel(testEnv(nil))
	m = pressPrompt(m, "tab")
	if m.focus != focusInput {
		t.Error("tab with empty history should keep focus on the input")
	}
}

func TestPromptClearHistory(t *testing.T) {
	store := openStore(t)
	seedHistory(t, store, "catch stars", "race cars")

	m := NewPromptModel(testEnv(store))
	m = pressPrompt(m, "ctrl+d")

	if n := len(m.history.Items()); n != 0 {
		t.Errorf("history has %d items after clear, expected 0", n)
	}
	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("store has %d entries after clear, expected 0", len(entries))
	}
}

func TestPromptScoresAndQuit(t *testing.T) {
	m := NewPromptModel(testEnv(nil))
	if m = pressPrompt(m, "ctrl+s"); !m.OpenScores() {
		t.Error("ctrl+s should open the scoreboard")
	}

	m = NewPromptModel(testEnv(nil))
	if m = pressPrompt(m, "esc"); !m.IsQuitting() {
		t.Error("esc should quit")
	}
}

func pressSession(m SessionModel, k string) SessionModel {
	updated, _ := m.Update(keyMsg(k))
	return updated.(SessionModel)
}

func TestSessionPromptGameFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(testEnv(store), "test")

	m.prompt.input.SetValue("flappy bird in the jungle")
	m = pressSession(m, "enter")
	if m.screen != screenGame || m.game == nil {
		t.Fatal("Enter should open the game")
	}
	if got := m.game.Config().Type; got != core.ArchetypeFlappy {
		t.Errorf("game type = %s, expected flappy", got)
	}

	entries, err := store.History(0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Prompt != "flappy bird in the jungle" {
		t.Fatalf("history = %+v, expected the played prompt", entries)
	}

	// not started yet, so N goes straight back
	m = pressSession(m, "n")
	if m.screen != screenPrompt {
		t.Fatal("N should return to the prompt")
	}
	if n := len(m.prompt.history.Items()); n != 1 {
		t.Errorf("prompt shows %d history items, expected 1", n)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testEnv(openStore(t)), "test")

	m = pressSession(m, "ctrl+s")
	if m.screen != screenScores {
		t.Fatal("ctrl+s should open the scoreboard")
	}
	m = pressSession(m, "tab")
	if m.scores.Archetype() != core.AllArchetypes()[1] {
		t.Errorf("tab should move to the next archetype, got %s", m.scores.Archetype())
	}
	m = pressSession(m, "esc")
	if m.screen != screenPrompt {
		t.Error("esc should return to the prompt")
	}
}

func TestSessionPlayStartsInGame(t *testing.T) {
	cfg := prompt.Default().Interpret("pong")
	m := NewSessionModel(testEnv(nil), "test").Play(Choice{Prompt: "pong", Config: cfg})
	if m.screen != screenGame {
		t.Fatal("Play() should switch to the game")
	}
	if m.Init() == nil {
		t.Error("Init() should start the frame loop")
	}

	updated, cmd := m.Update(keyMsg("ctrl+c"))
	m = updated.(SessionModel)
	if cmd == nil || !m.quitting {
		t.Error("ctrl+c should quit the session")
	}
}
