package engine

import (
	"slices"
)

// collide resolves every contact for the frame.
func (s *Session) collide() {
	if s.rules.projectiles {
		s.collideProjectiles()
	}
	s.collidePlayer()
	if s.ball != nil && !s.stuck {
		s.collideBall()
	}
	if s.rules.passScoring {
		s.scorePasses()
	}
}

func (s *Session) collideProjectiles() {
	for i := range s.entities {
		shot := &s.entities[i]
		if shot.Kind != KindProjectile || shot.dead {
			continue
		}
		for j := range s.entities {
			e := &s.entities[j]
			if e.dead || (e.Kind != KindObstacle && e.Kind != KindTarget) {
				continue
			}
			if shot.Bounds().Intersects(e.Bounds()) {
				shot.dead = true
				e.dead = true
				s.addScore(1)
				break
			}
		}
	}
}

func (s *Session) collidePlayer() {
	pb := s.player.bounds()
	for i := range s.entities {
		e := &s.entities[i]
		if e.dead || !pb.Intersects(e.Bounds()) {
			continue
		}
		switch e.Kind {
		case KindTarget:
			e.dead = true
			s.addScore(1)
		case KindObstacle:
			if s.player.invulnerable > 0 {
				continue
			}
			e.dead = true
			s.loseLife()
			if s.phase == PhaseGameOver {
				return
			}
		}
	}
}

func (s *Session) collideBall() {
	b := s.ball
	pb := s.player.bounds()

	if s.rules.bricks {
		if b.VY > 0 && b.Bounds().Intersects(pb) {
			b.Y = pb.Y - b.H
			s.returnBall(pb, -1)
		}
		s.hitBrick()
		if b.Y >= s.h {
			s.ballLost()
		}
		return
	}

	if b.VX < 0 && b.Bounds().Intersects(pb) {
		b.X = pb.Right()
		s.returnBall(pb, 1)
	}
	if s.cpu != nil && b.VX > 0 && b.Bounds().Intersects(s.cpu.Bounds()) {
		b.X = s.cpu.X - b.W
		s.returnBall(s.cpu.Bounds(), -1)
	}

	switch {
	case b.X+b.W < 0:
		s.serveDir = -1
		s.ballLost()
	case b.X > s.w:
		s.serveDir = 1
		s.addScore(1)
		s.serveBall()
	}
}

// hitBrick breaks at most one brick per frame and reflects the ball off
// the side it came from.
func (s *Session) hitBrick() {
	b := s.ball
	for i := range s.entities {
		e := &s.entities[i]
		if e.Kind != KindBrick || e.dead || !b.Bounds().Intersects(e.Bounds()) {
			continue
		}
		e.dead = true
		s.bricks--
		s.addScore(1)

		brick := e.Bounds()
		if s.ballPrev.Right() <= brick.X || s.ballPrev.X >= brick.Right() {
			b.VX = -b.VX
		} else {
			b.VY = -b.VY
		}
		return
	}
}

func (s *Session) ballLost() {
	s.loseLife()
	if s.phase != PhaseGameOver {
		s.serveBall()
	}
}

// scorePasses gives a point for each obstacle that got past the player.
func (s *Session) scorePasses() {
	p := &s.player
	for i := range s.entities {
		e := &s.entities[i]
		if e.Kind != KindObstacle || e.Passed || e.dead {
			continue
		}
		passed := e.X+e.W <= p.x
		if s.rules.spawn == spawnTop {
			passed = e.Y >= p.y+p.h
		}
		if passed {
			e.Passed = true
			s.addScore(1)
		}
	}
}

// despawn drops removed entities and those that left the field.
func (s *Session) despawn() {
	s.entities = slices.DeleteFunc(s.entities, func(e Entity) bool {
		return e.dead || e.Y > s.h || e.Y+e.H < 0 || e.X+e.W < 0
	})
}
