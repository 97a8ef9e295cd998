package engine

import (
	"testing"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
)

func TestRuntimeBeforeFirstGame(t *testing.T) {
	r := NewRuntime(testRuntime(1))
	if r.Session() != nil {
		t.Fatal("Session() should be nil before NewGame")
	}
	if res := r.Step(core.InputOf(core.ActionPrimary)); res.State != (core.GameState{}) {
		t.Errorf("Step() = %+v, expected zero state", res)
	}
	screen := core.NewScreen(20, 10)
	r.Render(screen)
}

func TestRuntimeNewGameReplacesSession(t *testing.T) {
	cfg := prompt.Default().Interpret("catch stars")
	cfg.Tuning.Lives = 1
	r := NewRuntime(testRuntime(1), WithAutoStart())

	first := r.NewGame(cfg)
	pb := first.PlayerBounds()
	first.entities = []Entity{{Kind: KindObstacle, X: pb.X, Y: pb.Y, W: 1, H: 1}}
	if st := r.Step(core.NewInputFrame()).State; !st.GameOver {
		t.Fatalf("State = %+v, expected game over", st)
	}

	second := r.Restart()
	if second == first {
		t.Fatal("Restart() should create a new session")
	}
	if first.Active() {
		t.Error("old session should be exited")
	}
	if r.State().GameOver {
		t.Error("new session should not start in game over")
	}
	if r.Config() != cfg.Normalized() {
		t.Error("Restart() should keep the config")
	}
	if r.Games() != 2 {
		t.Errorf("Games() = %d, expected 2", r.Games())
	}

	r.Step(core.NewInputFrame())
	if second.Ticks() != 1 || first.Ticks() != 1 {
		t.Errorf("ticks = %d/%d, expected only the new session to advance", first.Ticks(), second.Ticks())
	}
}

func TestRuntimeExtraOptions(t *testing.T) {
	r := NewRuntime(testRuntime(1))
	var finals int
	cfg := prompt.Default().Interpret("catch stars")
	cfg.Tuning.Lives = 1

	s := r.NewGame(cfg, WithAutoStart(), WithScoreFunc(func(_ int, final bool) {
		if final {
			finals++
		}
	}))
	pb := s.PlayerBounds()
	s.entities = []Entity{{Kind: KindObstacle, X: pb.X, Y: pb.Y, W: 1, H: 1}}
	r.Step(core.NewInputFrame())

	if finals != 1 {
		t.Errorf("final callbacks = %d, expected 1", finals)
	}
}

func TestRuntimeResize(t *testing.T) {
	r := NewRuntime(testRuntime(1))
	s := r.NewGame(prompt.Default().Interpret("catch stars"))
	r.Resize(40, 12)

	pb := s.PlayerBounds()
	if pb.Right() > 40 || pb.Bottom() > 11 {
		t.Errorf("player %+v outside the resized field", pb)
	}
	if got := r.NewGame(s.Config()).PlayerBounds(); got.Bottom() != 11 {
		t.Errorf("new game player bottom = %f, expected 11", got.Bottom())
	}
}
