package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

type screenKind int

const (
	screenPrompt screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: prompt -> game -> prompt, with the
// scoreboard one key away. It is the top-level model both locally and for
// SSH sessions.
type SessionModel struct {
	env      Env
	id       string
	logger   *log.Logger
	screen   screenKind
	prompt   PromptModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts on the prompt screen.
// The id only tags log lines.
func NewSessionModel(env Env, id string) SessionModel {
	env = env.withDefaults()
	return SessionModel{
		env:    env,
		id:     id,
		logger: env.Logger.With("session", id),
		prompt: NewPromptModel(env),
	}
}

// Play records c in the history and switches straight to its game.
func (m SessionModel) Play(c Choice) SessionModel {
	recordHistory(m.env.Store, m.logger, c)
	gm := NewGameModel(m.env, c.Config)
	m.game = &gm
	m.screen = screenGame
	m.logger.Info("game started", "title", c.Config.Title, "type", c.Config.Type, "replay", c.Replay)
	return m
}

func recordHistory(store *storage.Store, logger *log.Logger, c Choice) {
	if store == nil {
		return
	}
	entry, err := store.AddHistory(c.Prompt, c.Config)
	if err != nil {
		logger.Warn("could not record history", "error", err)
		return
	}
	logger.Debug("history recorded", "uid", entry.UID, "prompt", entry.Prompt)
}

// Init starts whichever screen is current.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return m.prompt.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.env = m.env.resize(wsm.Width, wsm.Height)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updatePrompt(msg)
}

func (m SessionModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.prompt.Update(msg)
	if pm, ok := updated.(PromptModel); ok {
		m.prompt = pm
	}

	switch {
	case m.prompt.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.prompt.OpenScores():
		m.scores = NewScoreboardModel(m.env.Store, m.env.Runtime.ScreenW, m.env.Runtime.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	case m.prompt.Choice() != nil:
		m = m.Play(*m.prompt.Choice())
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	if gm, ok := updated.(GameModel); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToPrompt():
		m.logger.Info("game left", "title", m.game.Config().Title, "score", m.game.State().Score)
		return m.backToPrompt()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	if sm, ok := updated.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToPrompt()
	}
	return m, cmd
}

// backToPrompt opens a fresh prompt screen so the history is reloaded.
func (m SessionModel) backToPrompt() (tea.Model, tea.Cmd) {
	m.game = nil
	m.prompt = NewPromptModel(m.env)
	m.screen = screenPrompt
	return m, m.prompt.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.prompt.View()
}
