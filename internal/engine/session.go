// Package engine runs a generated game: a fixed-tick simulation of one
// GameConfig driven by abstract input frames, rendered into a core.Screen.
// Every archetype goes through the same step functions; a rules table says
// which of them apply.
package engine

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prompt-arcade/internal/config"
	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// ScoreFunc observes score changes. It is called after every change with
// final=false and exactly once with final=true when the game ends.
type ScoreFunc func(score int, final bool)

// Option configures a session.
type Option func(*Session)

// WithScoreFunc registers a score observer.
func WithScoreFunc(f ScoreFunc) Option {
	return func(s *Session) { s.onScore = f }
}

// WithLogger sets the logger for lifecycle and recovered-panic messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAutoStart skips the idle phase.
func WithAutoStart() Option {
	return func(s *Session) { s.phase = PhaseRunning }
}

const (
	maxEntities  = 256
	hudRows      = 1
	serveSeconds = 1.0
)

// Session is one play-through of a GameConfig. It is not safe for
// concurrent use; the host drives it from a single loop.
type Session struct {
	cfg   core.GameConfig
	rt    core.RuntimeConfig
	rules rules
	pal   core.Palette
	rng   *rand.Rand
	ramp  *config.DifficultyRamp
	log   *log.Logger

	onScore   ScoreFunc
	finalSent bool

	phase  Phase
	active bool
	won    bool

	w, h    float64
	top     float64 // first playable row
	groundY float64 // row of the ground line; the field ends here
	dt      float64

	player   player
	entities []Entity
	ball     *Entity
	ballPrev core.RectF
	cpu      *Entity
	stuck    bool // ball waits on the paddle or at center
	serve    int  // ticks until an automatic launch
	serveDir float64
	bricks   int

	score      int
	lives      int
	ticks      int
	spawnTimer float64
	nextID     int
	events     []core.Event
}

// NewSession creates an idle session. The config is normalized first, so a
// partial config still produces a playable game.
func NewSession(cfg core.GameConfig, rt core.RuntimeConfig, opts ...Option) *Session {
	cfg = cfg.Normalized()
	rt = rt.Normalized()

	s := &Session{
		cfg:      cfg,
		rt:       rt,
		rules:    rulesFor(cfg.Type),
		pal:      core.PaletteFor(cfg.Theme),
		rng:      rand.New(rand.NewSource(rt.Seed)),
		ramp:     config.NewDifficultyRamp(cfg.Tuning, rt.TickRate),
		log:      log.New(io.Discard),
		phase:    PhaseIdle,
		active:   true,
		dt:       rt.DT(),
		lives:    cfg.Tuning.Lives,
		serveDir: -1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setField(rt.ScreenW, rt.ScreenH)
	s.resetPlayer()
	if s.rules.bricks {
		s.buildBricks()
	}
	if s.rules.cpuPaddle {
		s.spawnCPU()
	}
	if s.rules.ball {
		s.serveBall()
	}

	s.log.Debug("session created", "title", cfg.Title, "type", cfg.Type, "theme", cfg.Theme,
		"difficulty", cfg.Difficulty, "seed", rt.Seed)
	return s
}

// Config returns the normalized config the session plays.
func (s *Session) Config() core.GameConfig {
	return s.cfg
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Active reports whether the session still accepts frames.
func (s *Session) Active() bool {
	return s.active
}

// Ticks returns the number of simulated frames.
func (s *Session) Ticks() int {
	return s.ticks
}

// Entities returns a copy of every entity on the field, ball and opponent included.
func (s *Session) Entities() []Entity {
	out := slices.Clone(s.entities)
	if s.ball != nil {
		out = append(out, *s.ball)
	}
	if s.cpu != nil {
		out = append(out, *s.cpu)
	}
	return out
}

// PlayerBounds returns the player's hitbox.
func (s *Session) PlayerBounds() core.RectF {
	return s.player.bounds()
}

// State returns the externally visible status.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.phase == PhaseGameOver,
		Won:      s.won,
		Paused:   s.phase == PhasePaused,
		Running:  s.phase == PhaseRunning,
	}
}

// Start moves an idle session to running.
func (s *Session) Start() {
	if s.active && s.phase == PhaseIdle {
		s.phase = PhaseRunning
		s.log.Debug("session started", "title", s.cfg.Title)
	}
}

// Pause suspends a running session.
func (s *Session) Pause() {
	if s.active && s.phase == PhaseRunning {
		s.phase = PhasePaused
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.active && s.phase == PhasePaused {
		s.phase = PhaseRunning
	}
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.Pause()
	case PhasePaused:
		s.Resume()
	}
}

// Exit deactivates the session. Later Step calls are no-ops, which stops a
// frame loop that still holds a reference.
func (s *Session) Exit() {
	if s.active {
		s.active = false
		s.log.Debug("session exited", "title", s.cfg.Title, "score", s.score, "ticks", s.ticks)
	}
}

// Resize changes the field to a new screen size and keeps the player inside it.
func (s *Session) Resize(width, height int) {
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: s.rt.TickRate}.Normalized()
	s.rt.ScreenW, s.rt.ScreenH = rt.ScreenW, rt.ScreenH
	s.setField(rt.ScreenW, rt.ScreenH)

	p := &s.player
	p.x = core.ClampF(p.x, 0, s.w-p.w)
	switch s.rules.anchor {
	case anchorBottom:
		p.y = s.groundY - p.h
	default:
		p.y = core.ClampF(p.y, s.top, s.groundY-p.h)
	}
	if s.cpu != nil {
		s.cpu.X = s.cpuX()
		s.cpu.Y = core.ClampF(s.cpu.Y, s.top, s.groundY-s.cpu.H)
	}
}

// Step advances the session by one tick. It is the only entry point that
// mutates game state.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if !s.active {
		return core.StepResult{State: s.State()}
	}

	switch s.phase {
	case PhaseGameOver:
		return core.StepResult{State: s.State()}
	case PhaseIdle:
		if !startsGame(in) {
			return core.StepResult{State: s.State()}
		}
		s.Start()
	case PhasePaused:
		if in.Has(core.ActionPause) {
			s.Resume()
		}
		return core.StepResult{State: s.State()}
	case PhaseRunning:
		if in.Has(core.ActionPause) {
			s.Pause()
			return core.StepResult{State: s.State()}
		}
	}

	events := s.runFrame(in)
	return core.StepResult{State: s.State(), Events: events}
}

// runFrame executes one frame. A panic skips the rest of the frame; the
// session stays usable.
func (s *Session) runFrame(in core.InputFrame) (events []core.Event) {
	s.events = s.events[:0]
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("frame panicked, skipping", "tick", s.ticks, "title", s.cfg.Title, "panic", r)
			events = []core.Event{core.EventFrameSkipped}
		}
	}()

	s.ticks++
	if s.player.invulnerable > 0 {
		s.player.invulnerable--
	}
	if s.player.fireCooldown > 0 {
		s.player.fireCooldown--
	}

	s.applyInput(in)
	s.integrate()
	s.spawn()
	s.collide()
	s.despawn()
	s.checkTerminal()

	return slices.Clone(s.events)
}

// startsGame reports whether an input should leave the idle phase.
func startsGame(in core.InputFrame) bool {
	for a, on := range in.Actions {
		if on && a != core.ActionPause {
			return true
		}
	}
	return false
}

func (s *Session) setField(width, height int) {
	s.w = float64(width)
	s.h = float64(height)
	s.top = hudRows
	s.groundY = s.h - 1
}

func (s *Session) resetPlayer() {
	ps := s.cfg.Player
	p := player{
		w:      float64(ps.Width),
		h:      float64(ps.Height),
		sprite: ps.Sprite,
	}
	switch s.rules.anchor {
	case anchorBottom:
		p.x = float64(int((s.w - p.w) / 2))
		p.y = s.groundY - p.h
	case anchorGround:
		p.x = float64(int(s.w / 4))
		if s.cfg.Type == core.ArchetypeRunner {
			p.x = 6
		}
		p.y = s.groundY - p.h
		p.grounded = true
	case anchorFlyer:
		p.x = float64(int(min(10, s.w/4)))
		p.y = float64(int((s.groundY + s.top - p.h) / 2))
	case anchorLeftEdge:
		p.x = 2
		p.y = float64(int((s.groundY + s.top - p.h) / 2))
	}
	s.player = p
}

// addScore raises the score. The score never goes down.
func (s *Session) addScore(n int) {
	if n <= 0 || s.phase == PhaseGameOver {
		return
	}
	s.score += n
	s.events = append(s.events, core.EventScored)
	s.notify(false)
}

// loseLife costs a life unless the player is in a grace period.
func (s *Session) loseLife() bool {
	if s.player.invulnerable > 0 || s.phase == PhaseGameOver {
		return false
	}
	s.lives--
	s.events = append(s.events, core.EventLifeLost)
	s.log.Debug("life lost", "lives", s.lives, "tick", s.ticks)
	if s.lives <= 0 {
		s.lives = 0
		s.endGame(false)
		return true
	}
	s.player.invulnerable = int(s.rules.grace * float64(s.rt.TickRate))
	return true
}

// endGame moves to game over and fires the final score callback once.
func (s *Session) endGame(won bool) {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.won = won
	s.events = append(s.events, core.EventGameOver)
	s.log.Debug("game over", "title", s.cfg.Title, "score", s.score, "won", won, "ticks", s.ticks)
	if !s.finalSent {
		s.finalSent = true
		s.notify(true)
	}
}

func (s *Session) notify(final bool) {
	if s.onScore != nil {
		s.onScore(s.score, final)
	}
}

func (s *Session) checkTerminal() {
	if s.phase == PhaseGameOver {
		return
	}
	switch {
	case s.lives <= 0:
		s.endGame(false)
	case s.rules.bricks && s.bricks == 0:
		s.endGame(true)
	case s.cfg.Tuning.WinScore > 0 && s.score >= s.cfg.Tuning.WinScore:
		s.endGame(true)
	}
}

func (s *Session) newID() int {
	s.nextID++
	return s.nextID
}
