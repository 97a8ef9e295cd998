package engine

import (
	"math"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

const (
	ledgeWidth  = 6
	ledgeHeight = 5 // rows above the ground
)

// spawn adds entities once the ramped spawn interval has elapsed.
func (s *Session) spawn() {
	if s.rules.spawn == spawnNone {
		return
	}
	s.spawnTimer += s.dt
	interval := s.ramp.SpawnInterval(s.cfg.Tuning.SpawnInterval, s.ticks)
	if s.spawnTimer < interval {
		return
	}
	s.spawnTimer -= interval
	if len(s.entities) >= maxEntities {
		return
	}

	switch s.rules.spawn {
	case spawnTop:
		s.spawnFalling()
	case spawnRight:
		s.spawnScrolling()
	case spawnPipes:
		s.spawnPipePair()
	}
}

// pickSpec rolls between the target and obstacle specs using TargetRatio.
func (s *Session) pickSpec() (core.EntitySpec, Kind) {
	spec := s.cfg.Obstacle
	if s.rng.Float64() < s.cfg.Tuning.TargetRatio {
		spec = s.cfg.Target
	}
	return spec, kindOf(spec)
}

// kindOf maps a spec's Good flag to the collision effect of its entities.
func kindOf(spec core.EntitySpec) Kind {
	if spec.Good {
		return KindTarget
	}
	return KindObstacle
}

func (s *Session) entitySpeed(spec core.EntitySpec) float64 {
	base := spec.MinSpeed + s.rng.Float64()*(spec.MaxSpeed-spec.MinSpeed)
	return s.ramp.Speed(base*s.cfg.Tuning.SpeedMultiplier, s.ticks)
}

func (s *Session) spawnFalling() {
	spec, kind := s.pickSpec()
	w, h := float64(spec.Width), float64(spec.Height)
	span := max(int(s.w-w), 0)
	s.entities = append(s.entities, Entity{
		ID:     s.newID(),
		Kind:   kind,
		X:      float64(s.rng.Intn(span + 1)),
		Y:      s.top,
		VY:     s.entitySpeed(spec),
		W:      w,
		H:      h,
		Sprite: spec.Sprite,
	})
}

func (s *Session) spawnScrolling() {
	spec, kind := s.pickSpec()
	speed := s.entitySpeed(spec)
	if kind == KindTarget && s.rules.platforms {
		s.spawnLedge(spec, speed)
		return
	}

	w, h := float64(spec.Width), float64(spec.Height)
	y := s.groundY - h
	if kind == KindTarget {
		// in the air, reachable with a jump
		y = s.groundY - s.player.h - 3
	}
	s.entities = append(s.entities, Entity{
		ID:     s.newID(),
		Kind:   kind,
		X:      s.w,
		Y:      y,
		VX:     -speed,
		W:      w,
		H:      h,
		Sprite: spec.Sprite,
	})
}

// spawnLedge adds a platform with a target resting above it.
func (s *Session) spawnLedge(target core.EntitySpec, speed float64) {
	ledgeY := max(s.groundY-ledgeHeight, s.top+2)
	s.entities = append(s.entities,
		Entity{
			ID:     s.newID(),
			Kind:   KindPlatform,
			X:      s.w,
			Y:      ledgeY,
			VX:     -speed,
			W:      ledgeWidth,
			H:      1,
			Sprite: core.Sprite{Glyph: string(s.pal.Ground), Color: s.pal.GroundColor},
		},
		Entity{
			ID:     s.newID(),
			Kind:   kindOf(target),
			X:      s.w + 2,
			Y:      ledgeY - 2,
			VX:     -speed,
			W:      float64(target.Width),
			H:      float64(target.Height),
			Sprite: target.Sprite,
		},
	)
}

// spawnPipePair adds a top and bottom obstacle with a gap between them.
// Only the top half counts when the player passes.
func (s *Session) spawnPipePair() {
	spec := s.cfg.Obstacle
	w := float64(spec.Width)
	field := s.groundY - s.top
	gap := min(math.Max(5, math.Round(field/3)), field-2)
	span := max(int(field-gap-2), 0)
	gapY := s.top + 1 + float64(s.rng.Intn(span+1))
	speed := s.entitySpeed(spec)
	kind := kindOf(spec)

	top := Entity{
		ID: s.newID(), Kind: kind, X: s.w, Y: s.top, VX: -speed,
		W: w, H: gapY - s.top, Sprite: spec.Sprite,
	}
	bottom := Entity{
		ID: s.newID(), Kind: kind, X: s.w, Y: gapY + gap, VX: -speed,
		W: w, H: s.groundY - (gapY + gap), Sprite: spec.Sprite, Passed: true,
	}
	for _, e := range []Entity{top, bottom} {
		if e.H > 0 {
			s.entities = append(s.entities, e)
		}
	}

	if s.rng.Float64() < s.cfg.Tuning.TargetRatio {
		t := s.cfg.Target
		s.entities = append(s.entities, Entity{
			ID:     s.newID(),
			Kind:   kindOf(t),
			X:      s.w + math.Floor(w/2),
			Y:      gapY + math.Floor(gap/2),
			VX:     -speed,
			W:      float64(t.Width),
			H:      float64(t.Height),
			Sprite: t.Sprite,
		})
	}
}
