package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/engine"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

// GameModel drives one generated game. R restarts it after game over and
// N, B or Esc go back to the prompt once the game is over, paused or not
// yet started.
type GameModel struct {
	runtime      *engine.Runtime
	env          Env
	screen       *core.Screen
	inputFrame   core.InputFrame
	keyMapper    *KeyMapper
	state        core.GameState
	quitting     bool
	backToPrompt bool
}

// NewGameModel creates a game model for cfg. The final score of every game
// it runs is saved to env.Store.
func NewGameModel(env Env, cfg core.GameConfig) GameModel {
	env = env.withDefaults()
	logger := env.Logger.WithPrefix("game")

	var rt *engine.Runtime
	rt = engine.NewRuntime(env.Runtime,
		engine.WithLogger(logger),
		engine.WithScoreFunc(func(score int, final bool) {
			if final {
				saveScore(env.Store, logger, rt.Config(), score)
			}
		}),
	)
	rt.NewGame(cfg)
	logger.Debug("game created", "title", cfg.Title, "type", cfg.Type, "seed", env.Runtime.Seed)

	return GameModel{
		runtime:    rt,
		env:        env,
		screen:     core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		state:      rt.State(),
	}
}

func saveScore(store *storage.Store, logger *log.Logger, cfg core.GameConfig, score int) {
	if store == nil {
		return
	}
	if _, err := store.SaveScore(cfg, score); err != nil {
		logger.Warn("could not save score", "error", err)
		return
	}
	logger.Debug("score saved", "type", cfg.Type, "score", score)
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate, m.runtime.Games())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.env = m.env.resize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		m.runtime.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.runtime.Exit()
		m.quitting = true
		return m, tea.Quit
	}

	action, _ := m.keyMapper.MapKey(msg)
	switch {
	case action == core.ActionRestart && m.state.GameOver:
		m.runtime.Restart()
		m.state = m.runtime.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.env.Runtime.TickRate, m.runtime.Games())

	case action == core.ActionBack && (m.state.GameOver || m.state.Paused || !m.state.Running):
		m.runtime.Exit()
		m.backToPrompt = true
		return m, nil
	}
	return m, nil
}

// handleTick runs one simulation step. Ticks from a replaced game or after
// the runtime was exited end the loop.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	session := m.runtime.Session()
	if msg.Game != m.runtime.Games() || session == nil || !session.Active() {
		return m, nil
	}

	result := m.runtime.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.env.Runtime.TickRate, msg.Game)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.runtime.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// Config returns the config of the running game.
func (m GameModel) Config() core.GameConfig {
	return m.runtime.Config()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToPrompt returns true if user requested to go back to the prompt.
func (m GameModel) BackToPrompt() bool {
	return m.backToPrompt
}
