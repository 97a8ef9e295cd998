package core

// RuntimeConfig contains host settings passed to a session at creation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the platform picks a time-based seed
	}
}

// Normalized fills zero or out-of-range fields from DefaultConfig.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW < 20 {
		c.ScreenW = max(c.ScreenW, def.ScreenW)
	}
	if c.ScreenH < 10 {
		c.ScreenH = max(c.ScreenH, def.ScreenH)
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// DT returns the duration of one tick in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / float64(DefaultConfig().TickRate)
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the externally visible status of a session.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended
	Won      bool // Whether it ended by meeting the win condition
	Paused   bool // Whether the session is paused
	Running  bool // Whether the session has started and is not over
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventNone Event = iota
	EventScored
	EventLifeLost
	EventGameOver
	EventFrameSkipped
)

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
