// Package tui hosts generated games in the terminal with Bubble Tea.
// It maps keys to actions, drives the runtime's frame loop and renders
// the cell grid, both locally and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Game is the id of the
// runtime game the tick belongs to, so ticks from a replaced game are dropped.
type TickMsg struct {
	Time time.Time
	Game int
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame
// interval at the given rate.
func tickCmd(tickRate, game int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Game: game}
	})
}
