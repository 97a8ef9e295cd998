package engine

import "github.com/vovakirdan/prompt-arcade/internal/core"

// Kind is the role an entity plays in collisions.
type Kind int

const (
	KindObstacle   Kind = iota // costs a life on contact
	KindTarget                 // scores on contact
	KindProjectile             // player shot, destroys obstacles
	KindBall                   // breakout and pong ball
	KindBrick                  // breakout wall piece
	KindPaddle                 // pong opponent
	KindPlatform               // platformer ledge, can be stood on
)

var kindNames = [...]string{"obstacle", "target", "projectile", "ball", "brick", "paddle", "platform"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Entity is anything on the field other than the player.
// Positions are in cells, velocities in cells per second.
type Entity struct {
	ID     int
	Kind   Kind
	X, Y   float64
	VX, VY float64
	W, H   float64
	Sprite core.Sprite
	Passed bool // already counted as passed by the player

	dead bool // removed at the end of the frame
}

// Bounds returns the entity's hitbox.
func (e *Entity) Bounds() core.RectF {
	return core.RectF{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

func (e *Entity) move(dt float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// player is the controllable hitbox.
type player struct {
	x, y   float64
	vy     float64
	w, h   float64
	sprite core.Sprite

	grounded bool

	// a key press keeps the player moving for a few ticks so terminal key
	// repeat produces continuous motion
	moveDir   float64
	moveHold  int
	moveDirY  float64
	moveHoldY int

	invulnerable int // ticks left
	fireCooldown int // ticks left
}

func (p *player) bounds() core.RectF {
	return core.RectF{X: p.x, Y: p.y, W: p.w, H: p.h}
}
