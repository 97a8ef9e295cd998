package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/prompt-arcade/internal/config"
	"github.com/vovakirdan/prompt-arcade/internal/core"
)

func TestInterpretSpaceShooter(t *testing.T) {
	cfg := Default().Interpret("A space shooter where I destroy asteroids")

	if cfg.Type != core.ArchetypeShooter {
		t.Errorf("Type = %s, expected shooter", cfg.Type)
	}
	if cfg.Theme != core.ThemeSpace {
		t.Errorf("Theme = %s, expected space", cfg.Theme)
	}
	if cfg.Difficulty != core.DifficultyMedium {
		t.Errorf("Difficulty = %s, expected medium", cfg.Difficulty)
	}
	if cfg.Title != "Space Shooter" {
		t.Errorf("Title = %q, expected %q", cfg.Title, "Space Shooter")
	}
	if !cfg.Player.CanShoot {
		t.Error("shooter player should be able to shoot")
	}
	if cfg.Obstacle.Good || !cfg.Target.Good {
		t.Error("obstacle should be bad and target good")
	}
}

func TestInterpretDefaults(t *testing.T) {
	in := Default()
	for _, text := range []string{"", "   ", "!!!", "qwerty zxcvb", "日本語"} {
		cfg := in.Interpret(text)
		if cfg.Type != core.ArchetypeCatcher || cfg.Theme != core.ThemeClassic || cfg.Difficulty != core.DifficultyMedium {
			t.Errorf("Interpret(%q) = %s/%s/%s, expected catcher/classic/medium", text, cfg.Type, cfg.Theme, cfg.Difficulty)
		}
		if cfg != cfg.Normalized() {
			t.Errorf("Interpret(%q) should return a normalized config", text)
		}
	}
	if got := in.Interpret("").Title; got != "Classic Catcher" {
		t.Errorf("empty title = %q, expected %q", got, "Classic Catcher")
	}
}

func TestInterpretIsDeterministic(t *testing.T) {
	in := Default()
	prompts := []string{
		"A space shooter where I destroy asteroids",
		"an easy underwater racing game with sharks",
		"impossible flappy bird in the snow",
		"",
	}
	for _, p := range prompts {
		first := in.Interpret(p)
		for range 20 {
			if got := in.Interpret(p); got != first {
				t.Fatalf("Interpret(%q) changed between calls", p)
			}
		}
		if other := New(config.DefaultTuningTable()).Interpret(p); other != first {
			t.Errorf("Interpret(%q) differs across interpreters", p)
		}
	}
}

func TestEveryArchetypeKeywordSelectsItsArchetype(t *testing.T) {
	in := Default()
	for _, e := range archetypeTable {
		for _, kw := range e.keywords {
			if got := in.Interpret(kw).Type; got != e.archetype {
				t.Errorf("Interpret(%q).Type = %s, expected %s", kw, got, e.archetype)
			}
		}
	}
}

func TestEveryThemeKeywordSelectsItsTheme(t *testing.T) {
	in := Default()
	for _, e := range themeTable {
		for _, kw := range e.keywords {
			if got := in.Interpret(kw).Theme; got != e.theme {
				t.Errorf("Interpret(%q).Theme = %s, expected %s", kw, got, e.theme)
			}
		}
	}
}

func TestInterpretTieBreak(t *testing.T) {
	tests := []struct {
		text string
		want core.Archetype
	}{
		{"shoot and catch", core.ArchetypeShooter},
		{"catch and shoot", core.ArchetypeShooter},
		{"run and fly", core.ArchetypeRunner},
		{"fly fly and run", core.ArchetypeFlappy},
		{"pong with bricks and paddles", core.ArchetypePong},
	}
	in := Default()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := in.Interpret(tt.text).Type; got != tt.want {
				t.Errorf("Type = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestInterpretDifficulty(t *testing.T) {
	tests := []struct {
		text string
		want core.Difficulty
	}{
		{"a shooter", core.DifficultyMedium},
		{"easy shooter for kids", core.DifficultyEasy},
		{"an impossible shooter", core.DifficultyHard},
		{"easy but hard", core.DifficultyEasy},
		{"insane extreme but easy", core.DifficultyHard},
	}
	in := Default()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cfg := in.Interpret(tt.text)
			if cfg.Difficulty != tt.want {
				t.Errorf("Difficulty = %s, expected %s", cfg.Difficulty, tt.want)
			}
		})
	}
}

func TestDifficultyChangesTuning(t *testing.T) {
	in := Default()
	easy := in.Interpret("easy racing")
	hard := in.Interpret("hard racing")

	if easy.Type != hard.Type {
		t.Fatalf("archetypes differ: %s vs %s", easy.Type, hard.Type)
	}
	if easy.Tuning.SpawnInterval <= hard.Tuning.SpawnInterval {
		t.Errorf("easy spawn %f should be slower than hard %f", easy.Tuning.SpawnInterval, hard.Tuning.SpawnInterval)
	}
	if easy.Tuning.Lives <= hard.Tuning.Lives {
		t.Errorf("easy lives %d should exceed hard %d", easy.Tuning.Lives, hard.Tuning.Lives)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		token, kw string
		want      bool
	}{
		{"shoot", "shoot", true},
		{"shoots", "shoot", true},
		{"shooting", "shoot", true},
		{"asteroids", "asteroid", true},
		{"shootings", "shoot", false},
		{"shot", "shoot", false},
		{"runner", "run", true},
		{"running", "run", true},
		{"raced", "race", true},
		{"races", "race", true},
		{"destroyed", "destroy", true},
		{"cars", "car", true},
		{"card", "car", false},
		{"start", "star", false},
		{"hardly", "hard", false},
		{"shootout", "shoot", false},
	}
	for _, tt := range tests {
		if got := matches(tt.token, tt.kw); got != tt.want {
			t.Errorf("matches(%q, %q) = %v, expected %v", tt.token, tt.kw, got, tt.want)
		}
	}
}

func TestLookalikeWordsDoNotClassify(t *testing.T) {
	in := Default()
	cfg := in.Interpret("press start to play the card game, hardly anything else")
	if cfg.Type != core.ArchetypeCatcher {
		t.Errorf("Type = %s, expected %s", cfg.Type, core.ArchetypeCatcher)
	}
	if cfg.Theme != core.ThemeClassic {
		t.Errorf("Theme = %s, expected %s", cfg.Theme, core.ThemeClassic)
	}
	if cfg.Difficulty != core.DifficultyMedium {
		t.Errorf("Difficulty = %s, expected %s", cfg.Difficulty, core.DifficultyMedium)
	}
}

func TestTitleSubject(t *testing.T) {
	in := Default()
	tests := []struct {
		text string
		want string
	}{
		{"A game about a ninja jumping on clouds", "Classic Platformer: Ninja"},
		{"race cars in the desert", "Desert Racer"},
		{"shoot the zombies in space", "Space Shooter: Zombies"},
	}
	for _, tt := range tests {
		if got := in.Interpret(tt.text).Title; got != tt.want {
			t.Errorf("Interpret(%q).Title = %q, expected %q", tt.text, got, tt.want)
		}
	}
}

func TestStructuralSprites(t *testing.T) {
	in := Default()

	pong := in.Interpret("ping pong in the ocean")
	if pong.Target.Name != "ball" || pong.Target.Sprite.Glyph != "●" {
		t.Errorf("pong target = %q %q, expected ball", pong.Target.Name, pong.Target.Sprite.Glyph)
	}
	if pong.Player.Axes != core.AxesVertical {
		t.Errorf("pong axes = %s, expected vertical", pong.Player.Axes)
	}

	flappy := in.Interpret("flappy bird")
	if flappy.Obstacle.Name != "pipe" {
		t.Errorf("flappy obstacle = %q, expected pipe", flappy.Obstacle.Name)
	}
	if !flappy.Player.CanJump || flappy.Player.Axes != core.AxesNone {
		t.Error("flappy player should flap and not steer")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("  \t\n"); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("Validate(blank) = %v, expected ErrEmptyPrompt", err)
	}
	if err := Validate(strings.Repeat("a", MaxPromptLength+1)); !errors.Is(err, ErrPromptTooLong) {
		t.Errorf("Validate(long) = %v, expected ErrPromptTooLong", err)
	}
	if err := Validate("space shooter"); err != nil {
		t.Errorf("Validate(ok) = %v, expected nil", err)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Space-Shooter!! with 3 LASERS")
	want := []string{"space", "shooter", "with", "3", "lasers"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Tokenize() = %v, expected %v", got, want)
	}
}
