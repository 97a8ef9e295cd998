package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

const (
	promptPlaceholder = "a space shooter where I destroy asteroids"
	minListHeight     = 4
	promptChrome      = 12 // rows used by title, input box, error line and help
)

// Choice is what the player picked on the prompt screen.
type Choice struct {
	Prompt string
	Config core.GameConfig
	Replay bool // picked from history rather than typed
}

// PromptKeyMap defines the key bindings shown on the prompt screen.
type PromptKeyMap struct {
	Generate     key.Binding
	Focus        key.Binding
	ClearHistory key.Binding
	Scores       key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Focus, k.ClearHistory, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPromptKeyMap returns default key bindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "clear history"),
		),
		Scores: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

type focusArea int

const (
	focusInput focusArea = iota
	focusHistory
)

// historyItem adapts a history entry to the list delegate.
type historyItem struct {
	entry storage.HistoryEntry
}

func (i historyItem) Title() string { return i.entry.Title }

func (i historyItem) Description() string {
	return fmt.Sprintf("%s · %s/%s/%s", i.entry.Prompt, i.entry.Archetype, i.entry.Theme, i.entry.Difficulty)
}

func (i historyItem) FilterValue() string { return i.entry.Prompt }

// PromptModel is the prompt screen: a text box plus recent history.
type PromptModel struct {
	env        Env
	input      textinput.Model
	history    list.Model
	keys       PromptKeyMap
	help       help.Model
	focus      focusArea
	width      int
	height     int
	err        string
	choice     *Choice
	openScores bool
	quitting   bool
}

// NewPromptModel creates a prompt screen and loads the history from env.Store.
func NewPromptModel(env Env) PromptModel {
	env = env.withDefaults()

	ti := textinput.New()
	ti.Placeholder = promptPlaceholder
	ti.CharLimit = prompt.MaxPromptLength
	ti.Prompt = "> "
	ti.Focus()

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := PromptModel{
		env:     env,
		input:   ti,
		history: l,
		keys:    DefaultPromptKeyMap(),
		help:    help.New(),
	}
	m.setSize(env.Runtime.ScreenW, env.Runtime.ScreenH)
	m.loadHistory()
	return m
}

func (m *PromptModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-10, 10)
	m.history.SetSize(max(width-4, 20), max(height-promptChrome, minListHeight))
	m.help.Width = width
}

// loadHistory reads the history. Storage failures leave it empty.
func (m *PromptModel) loadHistory() {
	if m.env.Store == nil {
		return
	}
	entries, err := m.env.Store.History(0)
	if err != nil {
		m.env.Logger.Warn("could not load history", "error", err)
		return
	}
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = historyItem{entry: e}
	}
	m.history.SetItems(items)
}

// Init makes the cursor blink.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt screen.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env = m.env.resize(msg.Width, msg.Height)
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ClearHistory):
			m.clearHistory()
			return m, nil
		case key.Matches(msg, m.keys.Scores):
			m.openScores = true
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.toggleFocus()
			return m, nil
		}
		if m.focus == focusHistory {
			return m.updateHistory(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "down":
		m.toggleFocus()
		return m, nil
	case "enter":
		m.submit()
		return m, nil
	}

	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.toggleFocus()
		return m, nil
	case "up", "k":
		if m.history.Index() == 0 {
			m.toggleFocus()
			return m, nil
		}
	case "enter":
		if item, ok := m.history.SelectedItem().(historyItem); ok {
			m.choice = &Choice{Prompt: item.entry.Prompt, Config: item.entry.Config, Replay: true}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// submit interprets the typed prompt. Blank input does nothing.
func (m *PromptModel) submit() {
	text := strings.TrimSpace(m.input.Value())
	if err := prompt.Validate(text); err != nil {
		if !errors.Is(err, prompt.ErrEmptyPrompt) {
			m.err = err.Error()
		}
		return
	}
	m.err = ""
	m.choice = &Choice{Prompt: text, Config: m.env.Interpreter.Interpret(text)}
}

func (m *PromptModel) toggleFocus() {
	if m.focus == focusInput && len(m.history.Items()) > 0 {
		m.focus = focusHistory
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *PromptModel) clearHistory() {
	if m.env.Store != nil {
		if err := m.env.Store.ClearHistory(); err != nil {
			m.env.Logger.Warn("could not clear history", "error", err)
			m.err = "could not clear history"
			return
		}
	}
	m.history.SetItems(nil)
	m.focus = focusInput
	m.input.Focus()
}

// View renders the prompt screen.
func (m PromptModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(centerText("PROMPT ARCADE", m.width)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(centerText("Describe a game and press Enter", m.width)))
	b.WriteString("\n\n")
	b.WriteString(panel(m.input.View(), m.focus == focusInput))
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
	}
	b.WriteString("\n")

	if len(m.history.Items()) == 0 {
		b.WriteString(emptyStyle.Render("No games yet. Your prompts will show up here."))
	} else {
		b.WriteString(m.history.View())
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Choice returns the picked game, or nil while the player is still typing.
func (m PromptModel) Choice() *Choice {
	return m.choice
}

// OpenScores returns true if the player asked for the scoreboard.
func (m PromptModel) OpenScores() bool {
	return m.openScores
}

// IsQuitting returns true if user wants to quit entirely.
func (m PromptModel) IsQuitting() bool {
	return m.quitting
}
