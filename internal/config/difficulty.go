package config

import (
	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// DifficultyRamp raises obstacle speed and spawn frequency as a session goes
// on. It reads a config's tuning and never changes it.
type DifficultyRamp struct {
	rampTicks float64
	rampSpeed float64
}

// NewDifficultyRamp creates a ramp for the given tuning and tick rate.
func NewDifficultyRamp(t core.Tuning, tickRate int) *DifficultyRamp {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	seconds := t.RampSeconds
	if seconds <= 0 {
		seconds = core.DefaultTuning().RampSeconds
	}
	return &DifficultyRamp{
		rampTicks: seconds * float64(tickRate),
		rampSpeed: max(t.RampSpeed, 0),
	}
}

// Level returns the ramp progress (0.0 to 1.0) after the given ticks.
func (r *DifficultyRamp) Level(ticks int) float64 {
	if r.rampTicks <= 0 {
		return 1
	}
	return core.ClampF(float64(ticks)/r.rampTicks, 0, 1)
}

// Speed scales a base speed from base up to base * (1 + rampSpeed).
func (r *DifficultyRamp) Speed(base float64, ticks int) float64 {
	return base * (1 + r.Level(ticks)*r.rampSpeed)
}

// SpawnInterval shortens a base interval by the same factor speeds grow.
func (r *DifficultyRamp) SpawnInterval(base float64, ticks int) float64 {
	interval := base / (1 + r.Level(ticks)*r.rampSpeed)
	return max(interval, minSpawnInterval)
}
