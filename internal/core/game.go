package core

import (
	"strings"
	"unicode/utf8"
)

// Archetype is the game-mechanic category that decides movement, spawn and
// collision rules.
type Archetype string

const (
	ArchetypeShooter    Archetype = "shooter"
	ArchetypeCatcher    Archetype = "catcher"
	ArchetypeRunner     Archetype = "runner"
	ArchetypePlatformer Archetype = "platformer"
	ArchetypeRacer      Archetype = "racer"
	ArchetypeBreakout   Archetype = "breakout"
	ArchetypeFlappy     Archetype = "flappy"
	ArchetypePong       Archetype = "pong"
)

// DefaultArchetype is used when a prompt names no mechanic.
const DefaultArchetype = ArchetypeCatcher

// AllArchetypes lists every archetype in keyword-table order.
func AllArchetypes() []Archetype {
	return []Archetype{
		ArchetypeShooter,
		ArchetypeCatcher,
		ArchetypeRunner,
		ArchetypePlatformer,
		ArchetypeRacer,
		ArchetypeBreakout,
		ArchetypeFlappy,
		ArchetypePong,
	}
}

// Valid reports whether a is a known archetype.
func (a Archetype) Valid() bool {
	for _, known := range AllArchetypes() {
		if a == known {
			return true
		}
	}
	return false
}

// Title returns the capitalized display name.
func (a Archetype) Title() string {
	return titleCase(string(a))
}

// ParseArchetype parses a lowercase archetype name.
func ParseArchetype(s string) (Archetype, bool) {
	a := Archetype(strings.ToLower(strings.TrimSpace(s)))
	return a, a.Valid()
}

// Difficulty scales spawn rate, speed and lives.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties lists the difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// MoveAxes says which directions the player can steer in.
type MoveAxes string

const (
	AxesNone       MoveAxes = "none"
	AxesHorizontal MoveAxes = "horizontal"
	AxesVertical   MoveAxes = "vertical"
	AxesBoth       MoveAxes = "both"
)

// Horizontal reports whether left/right input moves the player.
func (m MoveAxes) Horizontal() bool {
	return m == AxesHorizontal || m == AxesBoth
}

// Vertical reports whether up/down input moves the player.
func (m MoveAxes) Vertical() bool {
	return m == AxesVertical || m == AxesBoth
}

// Sprite is the visual for an entity: a single-cell glyph for the grid, an
// emoji for titles and history, and a color.
type Sprite struct {
	Glyph string `yaml:"glyph"`
	Emoji string `yaml:"emoji,omitempty"`
	Color Color  `yaml:"color"`
}

// Rune returns the glyph drawn on screen.
func (s Sprite) Rune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// PlayerSpec describes the player's look and movement capabilities.
type PlayerSpec struct {
	Sprite   Sprite   `yaml:"sprite"`
	Axes     MoveAxes `yaml:"axes"`
	CanJump  bool     `yaml:"can_jump"`
	CanShoot bool     `yaml:"can_shoot"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
}

// EntitySpec describes spawned obstacles or targets.
type EntitySpec struct {
	Name     string  `yaml:"name"`
	Sprite   Sprite  `yaml:"sprite"`
	Good     bool    `yaml:"good"` // colliding scores instead of costing a life
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
}

// Tuning holds numeric parameters derived from archetype and difficulty.
// Speeds are in cells per second, intervals in seconds.
type Tuning struct {
	SpawnInterval   float64 `yaml:"spawn_interval"`
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"` // negative is up
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	PlayerSpeed     float64 `yaml:"player_speed"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	BallSpeed       float64 `yaml:"ball_speed"`
	Lives           int     `yaml:"lives"`
	WinScore        int     `yaml:"win_score"` // 0 means endless
	TargetRatio     float64 `yaml:"target_ratio"`
	RampSeconds     float64 `yaml:"ramp_seconds"`
	RampSpeed       float64 `yaml:"ramp_speed"`
}

// GameConfig is the fully resolved description of one generated game.
// It is a plain value: two configs compare equal with == when every field matches.
type GameConfig struct {
	Title      string     `yaml:"title"`
	Prompt     string     `yaml:"prompt"`
	Type       Archetype  `yaml:"type"`
	Theme      Theme      `yaml:"theme"`
	Difficulty Difficulty `yaml:"difficulty"`
	Player     PlayerSpec `yaml:"player"`
	Obstacle   EntitySpec `yaml:"obstacle"`
	Target     EntitySpec `yaml:"target"`
	Tuning     Tuning     `yaml:"tuning"`
}

// DefaultTuning is the last-resort tuning used to fill missing fields.
func DefaultTuning() Tuning {
	return Tuning{
		SpawnInterval:   1.0,
		Gravity:         60,
		JumpImpulse:     -22,
		MaxFallSpeed:    40,
		PlayerSpeed:     40,
		SpeedMultiplier: 1.0,
		ProjectileSpeed: 40,
		BallSpeed:       18,
		Lives:           3,
		TargetRatio:     0.5,
		RampSeconds:     90,
		RampSpeed:       0.5,
	}
}

// Normalized returns a copy with every missing or invalid field replaced by
// a safe default. The runtime calls this before using a config so a partial
// config never breaks the frame loop.
func (c GameConfig) Normalized() GameConfig {
	if !c.Type.Valid() {
		c.Type = DefaultArchetype
	}
	if !c.Theme.Valid() {
		c.Theme = ThemeClassic
	}
	if !c.Difficulty.Valid() {
		c.Difficulty = DifficultyMedium
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = c.Theme.Title() + " " + c.Type.Title()
	}

	if c.Player.Sprite.Glyph == "" {
		c.Player.Sprite.Glyph = "@"
	}
	if c.Player.Axes == "" {
		c.Player.Axes = AxesHorizontal
	}
	c.Player.Width = max(c.Player.Width, 1)
	c.Player.Height = max(c.Player.Height, 1)

	c.Obstacle = c.Obstacle.normalized("obstacle", "#", false)
	c.Target = c.Target.normalized("target", "*", true)

	def := DefaultTuning()
	t := &c.Tuning
	if t.SpawnInterval <= 0 {
		t.SpawnInterval = def.SpawnInterval
	}
	if t.Gravity < 0 {
		t.Gravity = def.Gravity
	}
	if t.JumpImpulse >= 0 {
		t.JumpImpulse = def.JumpImpulse
	}
	if t.MaxFallSpeed <= 0 {
		t.MaxFallSpeed = def.MaxFallSpeed
	}
	if t.PlayerSpeed <= 0 {
		t.PlayerSpeed = def.PlayerSpeed
	}
	if t.SpeedMultiplier <= 0 {
		t.SpeedMultiplier = def.SpeedMultiplier
	}
	if t.ProjectileSpeed <= 0 {
		t.ProjectileSpeed = def.ProjectileSpeed
	}
	if t.BallSpeed <= 0 {
		t.BallSpeed = def.BallSpeed
	}
	if t.Lives <= 0 {
		t.Lives = def.Lives
	}
	t.WinScore = max(t.WinScore, 0)
	t.TargetRatio = ClampF(t.TargetRatio, 0, 1)
	if t.RampSeconds <= 0 {
		t.RampSeconds = def.RampSeconds
	}
	t.RampSpeed = max(t.RampSpeed, 0)
	return c
}

func (e EntitySpec) normalized(name, glyph string, good bool) EntitySpec {
	if e.Name == "" {
		e.Name = name
		e.Good = good
	}
	if e.Sprite.Glyph == "" {
		e.Sprite.Glyph = glyph
	}
	e.Width = max(e.Width, 1)
	e.Height = max(e.Height, 1)
	if e.MinSpeed <= 0 {
		e.MinSpeed = 8
	}
	if e.MaxSpeed < e.MinSpeed {
		e.MaxSpeed = e.MinSpeed
	}
	return e
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
