package config

import (
	_ "embed"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}

// DefaultTuningTable returns the built-in tuning. It mirrors
// defaults/tuning.yaml and is used when the embedded file cannot be parsed.
func DefaultTuningTable() TuningTable {
	return TuningTable{
		Archetypes: map[core.Archetype]Profile{
			core.ArchetypeShooter: {
				Tuning:   core.Tuning{SpawnInterval: 0.9, PlayerSpeed: 45, SpeedMultiplier: 1, ProjectileSpeed: 40, Lives: 3, TargetRatio: 0, RampSeconds: 90, RampSpeed: 0.6},
				Player:   Shape{Width: 3, Height: 1},
				Obstacle: Shape{Width: 2, Height: 1, MinSpeed: 7, MaxSpeed: 12},
				Target:   Shape{Width: 1, Height: 1, MinSpeed: 7, MaxSpeed: 10},
			},
			core.ArchetypeCatcher: {
				Tuning:   core.Tuning{SpawnInterval: 0.7, PlayerSpeed: 45, SpeedMultiplier: 1, Lives: 3, TargetRatio: 0.7, RampSeconds: 90, RampSpeed: 0.6},
				Player:   Shape{Width: 5, Height: 1},
				Obstacle: Shape{Width: 1, Height: 1, MinSpeed: 8, MaxSpeed: 13},
				Target:   Shape{Width: 1, Height: 1, MinSpeed: 7, MaxSpeed: 12},
			},
			core.ArchetypeRunner: {
				Tuning:   core.Tuning{SpawnInterval: 1.4, Gravity: 90, JumpImpulse: -32, MaxFallSpeed: 60, PlayerSpeed: 0, SpeedMultiplier: 1, Lives: 3, TargetRatio: 0.3, RampSeconds: 120, RampSpeed: 0.8},
				Player:   Shape{Width: 2, Height: 2},
				Obstacle: Shape{Width: 2, Height: 2, MinSpeed: 22, MaxSpeed: 26},
				Target:   Shape{Width: 1, Height: 1, MinSpeed: 22, MaxSpeed: 26},
			},
			core.ArchetypePlatformer: {
				Tuning:   core.Tuning{SpawnInterval: 1.2, Gravity: 80, JumpImpulse: -34, MaxFallSpeed: 50, PlayerSpeed: 30, SpeedMultiplier: 1, Lives: 3, TargetRatio: 0.5, RampSeconds: 120, RampSpeed: 0.5},
				Player:   Shape{Width: 1, Height: 2},
				Obstacle: Shape{Width: 2, Height: 1, MinSpeed: 12, MaxSpeed: 18},
				Target:   Shape{Width: 1, Height: 1, MinSpeed: 10, MaxSpeed: 14},
			},
			core.ArchetypeRacer: {
				Tuning:   core.Tuning{SpawnInterval: 0.6, PlayerSpeed: 50, SpeedMultiplier: 1, Lives: 3, TargetRatio: 0.2, RampSeconds: 90, RampSpeed: 0.7},
				Player:   Shape{Width: 3, Height: 2},
				Obstacle: Shape{Width: 3, Height: 2, MinSpeed: 14, MaxSpeed: 20},
				Target:   Shape{Width: 1, Height: 1, MinSpeed: 14, MaxSpeed: 20},
			},
			core.ArchetypeBreakout: {
				Tuning:   core.Tuning{SpawnInterval: 1.0, PlayerSpeed: 60, SpeedMultiplier: 1, BallSpeed: 20, Lives: 3, TargetRatio: 1, RampSeconds: 180, RampSpeed: 0.4},
				Player:   Shape{Width: 9, Height: 1},
				Obstacle: Shape{Width: 1, Height: 1},
				Target:   Shape{Width: 4, Height: 1},
			},
			core.ArchetypeFlappy: {
				Tuning:   core.Tuning{SpawnInterval: 1.8, Gravity: 55, JumpImpulse: -18, MaxFallSpeed: 30, SpeedMultiplier: 1, Lives: 1, TargetRatio: 0.5, RampSeconds: 120, RampSpeed: 0.5},
				Player:   Shape{Width: 2, Height: 1},
				Obstacle: Shape{Width: 4, Height: 1, MinSpeed: 14, MaxSpeed: 14},
				Target:   Shape{Width: 1, Height: 1, MinSpeed: 14, MaxSpeed: 14},
			},
			core.ArchetypePong: {
				Tuning:   core.Tuning{SpawnInterval: 1.0, PlayerSpeed: 40, SpeedMultiplier: 1, BallSpeed: 22, Lives: 5, WinScore: 7, RampSeconds: 120, RampSpeed: 0.4},
				Player:   Shape{Width: 1, Height: 5},
				Obstacle: Shape{Width: 1, Height: 5, MinSpeed: 14, MaxSpeed: 14},
				Target:   Shape{Width: 1, Height: 1},
			},
		},
		Difficulties: map[core.Difficulty]DifficultyScale{
			core.DifficultyEasy:   {SpawnMultiplier: 1.4, SpeedMultiplier: 0.75, GravityMultiplier: 0.9, LivesDelta: 2, RampSpeed: -0.2},
			core.DifficultyMedium: {SpawnMultiplier: 1.0, SpeedMultiplier: 1.0, GravityMultiplier: 1.0, LivesDelta: 0, RampSpeed: 0},
			core.DifficultyHard:   {SpawnMultiplier: 0.65, SpeedMultiplier: 1.35, GravityMultiplier: 1.1, LivesDelta: -1, RampSpeed: 0.3},
		},
		Limits: Limits{
			HistoryCap: 10,
			TickRate:   60,
		},
	}
}
