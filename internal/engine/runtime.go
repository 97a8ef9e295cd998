package engine

import (
	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// Runtime is the host-facing controller. It owns the current session and
// replaces it on every new game; a finished session is never revived.
type Runtime struct {
	rt      core.RuntimeConfig
	opts    []Option
	cfg     core.GameConfig
	session *Session
	games   int
}

// NewRuntime creates a runtime with no game loaded. The options are applied
// to every session it creates.
func NewRuntime(rt core.RuntimeConfig, opts ...Option) *Runtime {
	return &Runtime{rt: rt.Normalized(), opts: opts}
}

// NewGame exits the current session and starts a fresh idle one for cfg.
// Each game gets its own seed derived from the runtime seed.
func (r *Runtime) NewGame(cfg core.GameConfig, extra ...Option) *Session {
	if r.session != nil {
		r.session.Exit()
	}
	rt := r.rt
	rt.Seed = r.rt.Seed + int64(r.games)
	r.games++

	r.cfg = cfg.Normalized()
	opts := append(append([]Option(nil), r.opts...), extra...)
	r.session = NewSession(r.cfg, rt, opts...)
	return r.session
}

// Restart starts a new game with the current config.
func (r *Runtime) Restart() *Session {
	return r.NewGame(r.cfg)
}

// Exit stops the current session. Step becomes a no-op until NewGame.
func (r *Runtime) Exit() {
	if r.session != nil {
		r.session.Exit()
	}
}

// Session returns the current session, or nil before the first game.
func (r *Runtime) Session() *Session {
	return r.session
}

// Config returns the config of the current game.
func (r *Runtime) Config() core.GameConfig {
	return r.cfg
}

// Games returns how many sessions the runtime has created.
func (r *Runtime) Games() int {
	return r.games
}

// Resize updates the field size of the current and future sessions.
func (r *Runtime) Resize(width, height int) {
	r.rt.ScreenW, r.rt.ScreenH = width, height
	r.rt = r.rt.Normalized()
	if r.session != nil {
		r.session.Resize(width, height)
	}
}

// Step advances the current session by one tick.
func (r *Runtime) Step(in core.InputFrame) core.StepResult {
	if r.session == nil {
		return core.StepResult{}
	}
	return r.session.Step(in)
}

// Render draws the current session, or clears dst when there is none.
func (r *Runtime) Render(dst *core.Screen) {
	if r.session == nil {
		dst.Clear()
		return
	}
	r.session.Render(dst)
}

// State returns the current session's state.
func (r *Runtime) State() core.GameState {
	if r.session == nil {
		return core.GameState{}
	}
	return r.session.State()
}
