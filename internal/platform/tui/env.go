package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

// Env carries what every host model needs. Store may be nil, in which case
// history and scores are simply not kept.
type Env struct {
	Store       *storage.Store
	Interpreter *prompt.Interpreter
	Runtime     core.RuntimeConfig
	Logger      *log.Logger
}

// withDefaults fills a missing interpreter, logger and seed.
func (e Env) withDefaults() Env {
	if e.Interpreter == nil {
		e.Interpreter = prompt.Default()
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	e.Runtime = e.Runtime.Normalized()
	// Use time-based seed if not specified
	if e.Runtime.Seed == 0 {
		e.Runtime.Seed = time.Now().UnixNano()
	}
	return e
}

// resize returns a copy sized to the window.
func (e Env) resize(width, height int) Env {
	e.Runtime.ScreenW = width
	e.Runtime.ScreenH = height
	e.Runtime = e.Runtime.Normalized()
	return e
}
