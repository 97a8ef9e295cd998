package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

// Run starts the interactive session on the local terminal. When first is
// set the session opens straight into that game.
func Run(env Env, first *Choice) error {
	model := NewSessionModel(env, "local")
	if first != nil {
		model = model.Play(*first)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// RunScoreboard runs the scoreboard as its own program, opened on archetype
// when it is valid.
func RunScoreboard(store *storage.Store, width, height int, archetype core.Archetype) error {
	model := NewScoreboardModel(store, width, height)
	model.quitOnBack = true
	model.Select(archetype)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
