// Package config provides the YAML tuning tables that turn an archetype and a
// difficulty into concrete numbers (spawn interval, gravity, speeds, lives).
package config

import (
	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// TuningTable is the root of tuning.yaml.
type TuningTable struct {
	Archetypes   map[core.Archetype]Profile          `yaml:"archetypes"`
	Difficulties map[core.Difficulty]DifficultyScale `yaml:"difficulties"`
	Limits       Limits                              `yaml:"limits"`
}

// Profile is the medium-difficulty baseline for one archetype.
type Profile struct {
	Tuning   core.Tuning `yaml:"tuning"`
	Player   Shape       `yaml:"player"`
	Obstacle Shape       `yaml:"obstacle"`
	Target   Shape       `yaml:"target"`
}

// Shape is the size and speed range of an entity in cells and cells per second.
type Shape struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyScale modifies a Profile for one difficulty.
type DifficultyScale struct {
	SpawnMultiplier   float64 `yaml:"spawn_multiplier"`   // multiplies spawn interval; below 1 spawns faster
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // multiplies entity speed
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // multiplies gravity
	LivesDelta        int     `yaml:"lives_delta"`
	RampSpeed         float64 `yaml:"ramp_speed"` // added to the in-session speed ramp ceiling
}

// Limits holds host-level knobs that live next to the tuning.
type Limits struct {
	HistoryCap int `yaml:"history_cap"`
	TickRate   int `yaml:"tick_rate"`
}

// minSpawnInterval keeps spawn rates playable however the scales combine.
const minSpawnInterval = 0.15

// Profile returns the profile for an archetype, falling back to the built-in
// table when the loaded table lacks it.
func (t TuningTable) Profile(a core.Archetype) Profile {
	if p, ok := t.Archetypes[a]; ok {
		return p
	}
	if p, ok := DefaultTuningTable().Archetypes[a]; ok {
		return p
	}
	return Profile{Tuning: core.DefaultTuning()}
}

// Scale returns the scale for a difficulty, or the identity scale.
func (t TuningTable) Scale(d core.Difficulty) DifficultyScale {
	if s, ok := t.Difficulties[d]; ok {
		return s
	}
	return DifficultyScale{SpawnMultiplier: 1, SpeedMultiplier: 1, GravityMultiplier: 1}
}

// Derive computes the tuning for an archetype at a difficulty.
// It is a pure function of the table and its arguments.
func (t TuningTable) Derive(a core.Archetype, d core.Difficulty) core.Tuning {
	tuning := t.Profile(a).Tuning
	scale := t.Scale(d)

	if tuning.SpeedMultiplier <= 0 {
		tuning.SpeedMultiplier = 1
	}
	if scale.SpawnMultiplier > 0 {
		tuning.SpawnInterval *= scale.SpawnMultiplier
	}
	if scale.SpeedMultiplier > 0 {
		tuning.SpeedMultiplier *= scale.SpeedMultiplier
		tuning.BallSpeed *= scale.SpeedMultiplier
	}
	if scale.GravityMultiplier > 0 {
		tuning.Gravity *= scale.GravityMultiplier
	}
	tuning.Lives = max(tuning.Lives+scale.LivesDelta, 1)
	tuning.RampSpeed = max(tuning.RampSpeed+scale.RampSpeed, 0)

	if tuning.SpawnInterval <= 0 {
		tuning.SpawnInterval = core.DefaultTuning().SpawnInterval
	}
	tuning.SpawnInterval = max(tuning.SpawnInterval, minSpawnInterval)
	return tuning
}

// HistoryCap returns the configured history cap or the default.
func (t TuningTable) HistoryCap() int {
	if t.Limits.HistoryCap > 0 {
		return t.Limits.HistoryCap
	}
	return DefaultTuningTable().Limits.HistoryCap
}

// withDefaults fills archetypes and difficulties missing from a loaded table.
func (t TuningTable) withDefaults() TuningTable {
	def := DefaultTuningTable()
	if t.Archetypes == nil {
		t.Archetypes = make(map[core.Archetype]Profile)
	}
	for a, p := range def.Archetypes {
		if _, ok := t.Archetypes[a]; !ok {
			t.Archetypes[a] = p
		}
	}
	if t.Difficulties == nil {
		t.Difficulties = make(map[core.Difficulty]DifficultyScale)
	}
	for d, s := range def.Difficulties {
		if _, ok := t.Difficulties[d]; !ok {
			t.Difficulties[d] = s
		}
	}
	if t.Limits.HistoryCap <= 0 {
		t.Limits.HistoryCap = def.Limits.HistoryCap
	}
	if t.Limits.TickRate <= 0 {
		t.Limits.TickRate = def.Limits.TickRate
	}
	return t
}
