package engine

import (
	"math"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

const (
	brickRows    = 4
	paddleSpread = 0.75 // share of ball speed turned sideways at a paddle edge
)

// applyInput turns the frame's actions into player intent.
func (s *Session) applyInput(in core.InputFrame) {
	p := &s.player
	hold := max(1, s.rt.TickRate/8)

	if s.cfg.Player.Axes.Horizontal() {
		if dx := in.Horizontal(); dx != 0 {
			p.moveDir, p.moveHold = dx, hold
		}
	}
	if s.cfg.Player.Axes.Vertical() {
		if dy := in.Vertical(); dy != 0 {
			p.moveDirY, p.moveHoldY = dy, hold
		}
	}

	primary := in.Has(core.ActionPrimary)
	if s.rules.gravity && in.Has(core.ActionUp) {
		primary = true
	}
	if primary {
		s.primary()
	}
}

// primary performs the archetype's action button.
func (s *Session) primary() {
	p := &s.player
	switch {
	case s.ball != nil && s.stuck:
		s.launchBall()
	case s.cfg.Player.CanShoot:
		s.fire()
	case s.rules.flap:
		p.vy = s.cfg.Tuning.JumpImpulse
	case s.cfg.Player.CanJump && p.grounded:
		p.vy = s.cfg.Tuning.JumpImpulse
		p.grounded = false
	}
}

func (s *Session) fire() {
	p := &s.player
	if p.fireCooldown > 0 || len(s.entities) >= maxEntities {
		return
	}
	p.fireCooldown = max(1, s.rt.TickRate/4)
	s.entities = append(s.entities, Entity{
		ID:     s.newID(),
		Kind:   KindProjectile,
		X:      math.Floor(p.x + p.w/2),
		Y:      p.y - 1,
		VY:     -s.cfg.Tuning.ProjectileSpeed,
		W:      1,
		H:      1,
		Sprite: core.Sprite{Glyph: "|", Color: s.pal.Accent},
	})
}

// integrate moves the player and every entity by one tick.
func (s *Session) integrate() {
	s.movePlayer()
	for i := range s.entities {
		if s.entities[i].Kind == KindBrick {
			continue
		}
		s.entities[i].move(s.dt)
	}
	if s.cpu != nil {
		s.moveCPU()
	}
	if s.ball != nil {
		s.moveBall()
	}
}

func (s *Session) movePlayer() {
	p := &s.player
	speed := s.cfg.Tuning.PlayerSpeed * s.dt

	if p.moveHold > 0 {
		p.x += p.moveDir * speed
		p.moveHold--
	}
	if p.moveHoldY > 0 {
		p.y += p.moveDirY * speed
		p.moveHoldY--
	}
	p.x = core.ClampF(p.x, 0, s.w-p.w)

	if !s.rules.gravity {
		p.y = core.ClampF(p.y, s.top, s.groundY-p.h)
		return
	}

	prevBottom := p.y + p.h
	p.vy = min(p.vy+s.cfg.Tuning.Gravity*s.dt, s.cfg.Tuning.MaxFallSpeed)
	p.y += p.vy * s.dt
	p.grounded = false

	if s.rules.platforms && p.vy >= 0 {
		for i := range s.entities {
			e := &s.entities[i]
			if e.Kind != KindPlatform || e.dead {
				continue
			}
			if prevBottom <= e.Y && p.y+p.h >= e.Y && p.x < e.X+e.W && e.X < p.x+p.w {
				p.y = e.Y - p.h
				p.vy = 0
				p.grounded = true
				break
			}
		}
	}

	if s.rules.ground && p.y+p.h >= s.groundY {
		p.y = s.groundY - p.h
		p.vy = 0
		p.grounded = true
	}

	if s.rules.edgesHurt && (p.y < s.top || p.y+p.h > s.groundY) {
		hit := s.loseLife()
		p.y = core.ClampF(p.y, s.top, s.groundY-p.h)
		p.vy = 0
		if hit && s.phase != PhaseGameOver {
			p.y = math.Floor((s.groundY + s.top - p.h) / 2)
		}
	}
}

// moveCPU tracks the ball while it approaches the opponent's side.
func (s *Session) moveCPU() {
	c := s.cpu
	if s.ball == nil || s.stuck || s.ball.VX <= 0 {
		return
	}
	target := s.ball.Bounds().CenterY() - c.H/2
	step := s.cfg.Obstacle.MaxSpeed * s.cfg.Tuning.SpeedMultiplier * s.dt
	diff := target - c.Y
	if math.Abs(diff) <= step {
		c.Y = target
	} else {
		c.Y += math.Copysign(step, diff)
	}
	c.Y = core.ClampF(c.Y, s.top, s.groundY-c.H)
}

func (s *Session) moveBall() {
	b := s.ball
	if s.stuck {
		s.placeBall()
		if s.serve > 0 {
			s.serve--
			if s.serve == 0 {
				s.launchBall()
			}
		}
		return
	}

	s.ballPrev = b.Bounds()
	b.move(s.dt)

	if b.Y < s.top {
		b.Y = s.top
		b.VY = math.Abs(b.VY)
	}
	if s.rules.bricks {
		if b.X < 0 {
			b.X = 0
			b.VX = math.Abs(b.VX)
		}
		if b.X+b.W > s.w {
			b.X = s.w - b.W
			b.VX = -math.Abs(b.VX)
		}
		return
	}
	if b.Y+b.H > s.groundY {
		b.Y = s.groundY - b.H
		b.VY = -math.Abs(b.VY)
	}
}

func (s *Session) ballSpeed() float64 {
	return s.ramp.Speed(s.cfg.Tuning.BallSpeed, s.ticks)
}

// serveBall puts the ball back in its waiting spot.
func (s *Session) serveBall() {
	if s.ball == nil {
		sprite := s.cfg.Target.Sprite
		if s.rules.bricks {
			sprite = core.Sprite{Glyph: "●", Color: s.pal.Accent}
		}
		s.ball = &Entity{ID: s.newID(), Kind: KindBall, W: 1, H: 1, Sprite: sprite}
	}
	s.stuck = true
	s.ball.VX, s.ball.VY = 0, 0
	s.serve = int(serveSeconds * float64(s.rt.TickRate))
	if s.rules.bricks {
		s.serve *= 2
	}
	s.placeBall()
}

func (s *Session) placeBall() {
	b := s.ball
	if s.rules.bricks {
		p := &s.player
		b.X = math.Floor(p.x + p.w/2)
		b.Y = p.y - b.H
		return
	}
	b.X = math.Floor(s.w / 2)
	b.Y = math.Floor((s.top + s.groundY) / 2)
}

func (s *Session) launchBall() {
	b := s.ball
	speed := s.ballSpeed()
	angle := (s.rng.Float64() - 0.5) * 0.6
	s.stuck = false
	s.serve = 0
	if s.rules.bricks {
		b.VX = speed * angle
		b.VY = -math.Sqrt(speed*speed - b.VX*b.VX)
		return
	}
	b.VY = speed * angle
	b.VX = s.serveDir * math.Sqrt(speed*speed-b.VY*b.VY)
}

// returnBall sends the ball back from a paddle, angled by where it hit.
func (s *Session) returnBall(paddle core.RectF, dir float64) {
	b := s.ball
	speed := s.ballSpeed()
	if s.rules.bricks {
		offset := core.ClampF((b.Bounds().CenterX()-paddle.CenterX())/(paddle.W/2), -1, 1)
		b.VX = speed * offset * paddleSpread
		b.VY = dir * math.Sqrt(speed*speed-b.VX*b.VX)
		return
	}
	offset := core.ClampF((b.Bounds().CenterY()-paddle.CenterY())/(paddle.H/2), -1, 1)
	b.VY = speed * offset * paddleSpread
	b.VX = dir * math.Sqrt(speed*speed-b.VY*b.VY)
}

func (s *Session) cpuX() float64 {
	return s.w - 2 - float64(s.cfg.Obstacle.Width)
}

func (s *Session) spawnCPU() {
	spec := s.cfg.Obstacle
	s.cpu = &Entity{
		ID:     s.newID(),
		Kind:   KindPaddle,
		W:      float64(spec.Width),
		H:      float64(spec.Height),
		Sprite: spec.Sprite,
	}
	s.cpu.X = s.cpuX()
	s.cpu.Y = math.Floor((s.top + s.groundY - s.cpu.H) / 2)
}

// buildBricks lays out the breakout wall below the HUD.
func (s *Session) buildBricks() {
	spec := s.cfg.Target
	bw, bh := float64(spec.Width), float64(spec.Height)
	step := bw + 1
	cols := int((s.w - 1) / step)
	startX := math.Floor((s.w - float64(cols)*step + 1) / 2)
	colors := []core.Color{spec.Sprite.Color, s.pal.Accent, s.cfg.Obstacle.Sprite.Color, s.cfg.Player.Sprite.Color}

	for row := range brickRows {
		for col := range cols {
			s.entities = append(s.entities, Entity{
				ID:     s.newID(),
				Kind:   KindBrick,
				X:      startX + float64(col)*step,
				Y:      s.top + 2 + float64(row)*bh,
				W:      bw,
				H:      bh,
				Sprite: core.Sprite{Glyph: spec.Sprite.Glyph, Color: colors[row%len(colors)]},
			})
		}
	}
	s.bricks = brickRows * cols
}
