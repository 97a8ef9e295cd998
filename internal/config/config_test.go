package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	embedded, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	builtin := DefaultTuningTable()

	for _, a := range core.AllArchetypes() {
		if embedded.Archetypes[a] != builtin.Archetypes[a] {
			t.Errorf("%s: embedded profile %+v differs from builtin %+v", a, embedded.Archetypes[a], builtin.Archetypes[a])
		}
	}
	for _, d := range core.AllDifficulties() {
		if embedded.Difficulties[d] != builtin.Difficulties[d] {
			t.Errorf("%s: embedded scale differs from builtin", d)
		}
	}
	if embedded.Limits != builtin.Limits {
		t.Errorf("limits = %+v, expected %+v", embedded.Limits, builtin.Limits)
	}
}

func TestDeriveScalesByDifficulty(t *testing.T) {
	table := DefaultTuningTable()

	for _, a := range core.AllArchetypes() {
		t.Run(string(a), func(t *testing.T) {
			easy := table.Derive(a, core.DifficultyEasy)
			medium := table.Derive(a, core.DifficultyMedium)
			hard := table.Derive(a, core.DifficultyHard)

			if !(easy.SpawnInterval > medium.SpawnInterval && medium.SpawnInterval > hard.SpawnInterval) {
				t.Errorf("spawn intervals not ordered: easy=%f medium=%f hard=%f",
					easy.SpawnInterval, medium.SpawnInterval, hard.SpawnInterval)
			}
			if !(easy.SpeedMultiplier < medium.SpeedMultiplier && medium.SpeedMultiplier < hard.SpeedMultiplier) {
				t.Errorf("speed multipliers not ordered: easy=%f medium=%f hard=%f",
					easy.SpeedMultiplier, medium.SpeedMultiplier, hard.SpeedMultiplier)
			}
			if easy.Lives < medium.Lives || medium.Lives < hard.Lives {
				t.Errorf("lives not ordered: easy=%d medium=%d hard=%d", easy.Lives, medium.Lives, hard.Lives)
			}
			if hard.Lives < 1 {
				t.Errorf("hard lives = %d, expected at least 1", hard.Lives)
			}
		})
	}
}

func TestDeriveIsPure(t *testing.T) {
	table := DefaultTuningTable()
	first := table.Derive(core.ArchetypeFlappy, core.DifficultyHard)
	for range 10 {
		if got := table.Derive(core.ArchetypeFlappy, core.DifficultyHard); got != first {
			t.Fatalf("Derive() = %+v, expected %+v", got, first)
		}
	}
}

func TestDeriveMissingEntries(t *testing.T) {
	table := TuningTable{}
	got := table.Derive(core.ArchetypeRacer, "unknown")
	want := DefaultTuningTable().Archetypes[core.ArchetypeRacer].Tuning

	if got.SpawnInterval != want.SpawnInterval {
		t.Errorf("SpawnInterval = %f, expected builtin %f", got.SpawnInterval, want.SpawnInterval)
	}
	if got.Lives != want.Lives {
		t.Errorf("Lives = %d, expected builtin %d", got.Lives, want.Lives)
	}
}

func TestDeriveClampsSpawnInterval(t *testing.T) {
	table := DefaultTuningTable()
	table.Difficulties[core.DifficultyHard] = DifficultyScale{SpawnMultiplier: 0.001, SpeedMultiplier: 1, GravityMultiplier: 1}

	got := table.Derive(core.ArchetypeRacer, core.DifficultyHard)
	if got.SpawnInterval < minSpawnInterval {
		t.Errorf("SpawnInterval = %f, expected at least %f", got.SpawnInterval, minSpawnInterval)
	}
}

func TestParsePartialFile(t *testing.T) {
	data := []byte(`
archetypes:
  catcher:
    tuning:
      spawn_interval: 0.3
      lives: 9
limits:
  history_cap: 4
`)
	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got := table.Profile(core.ArchetypeCatcher).Tuning.Lives; got != 9 {
		t.Errorf("catcher lives = %d, expected 9", got)
	}
	if _, ok := table.Archetypes[core.ArchetypePong]; !ok {
		t.Error("missing archetypes should be filled from defaults")
	}
	if table.HistoryCap() != 4 {
		t.Errorf("HistoryCap() = %d, expected 4", table.HistoryCap())
	}
	if table.Limits.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", table.Limits.TickRate)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	table := DefaultTuningTable()
	p := table.Archetypes[core.ArchetypeRunner]
	p.Tuning.Gravity = -1
	p.Tuning.JumpImpulse = 5
	p.Obstacle.MaxSpeed = 1
	table.Archetypes[core.ArchetypeRunner] = p
	table.Archetypes["golf"] = Profile{}

	err := table.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	for _, want := range []string{"gravity", "jump_impulse", "max_speed", "golf"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("limits:\n  history_cap: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if table.HistoryCap() != 3 {
		t.Errorf("HistoryCap() = %d, expected 3", table.HistoryCap())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("archetypes: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestDifficultyRamp(t *testing.T) {
	tuning := core.Tuning{RampSeconds: 10, RampSpeed: 1}
	ramp := NewDifficultyRamp(tuning, 60)

	if ramp.Level(0) != 0 {
		t.Errorf("Level(0) = %f, expected 0", ramp.Level(0))
	}
	if ramp.Level(300) != 0.5 {
		t.Errorf("Level(300) = %f, expected 0.5", ramp.Level(300))
	}
	if ramp.Level(6000) != 1 {
		t.Errorf("Level past ramp = %f, expected 1", ramp.Level(6000))
	}
	if got := ramp.Speed(10, 600); got != 20 {
		t.Errorf("Speed at full ramp = %f, expected 20", got)
	}
	if got := ramp.SpawnInterval(1, 600); got != 0.5 {
		t.Errorf("SpawnInterval at full ramp = %f, expected 0.5", got)
	}
	if got := ramp.SpawnInterval(0.1, 0); got != minSpawnInterval {
		t.Errorf("SpawnInterval floor = %f, expected %f", got, minSpawnInterval)
	}
}
