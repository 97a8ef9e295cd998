package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

const (
	typeListMinWidth = 80
	typeListWidth    = 16
	scoreRows        = 100
	dateLayout       = "Jan 02 15:04"
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Up, k.Down, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Up, k.Down}, {k.Back, k.Quit}}
}

func newScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	}
	return ScoreboardKeyMap{
		Up:   bind("up", "up", "k"),
		Down: bind("down", "down", "j"),
		Next: bind("next type", "tab", "right", "l"),
		Prev: bind("prev type", "shift+tab", "left", "h"),
		Back: bind("back", "esc", "b"),
		Quit: bind("quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel pages through archetypes, showing the best scores of one
// at a time.
type ScoreboardModel struct {
	store      *storage.Store
	archetypes []core.Archetype
	current    int

	scores []storage.ScoreEntry
	stats  *storage.ArchetypeStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int

	quitting   bool
	goingBack  bool
	quitOnBack bool
}

// NewScoreboardModel opens the scoreboard on the first archetype.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:      store,
		archetypes: core.AllArchetypes(),
		help:       help.New(),
		keys:       newScoreboardKeyMap(),
	}
	m.resize(width, height)
	m.reload()
	return m
}

// Select jumps to an archetype. Unknown archetypes are ignored.
func (m *ScoreboardModel) Select(a core.Archetype) {
	for i, known := range m.archetypes {
		if known == a {
			m.current = i
			m.reload()
			return
		}
	}
}

// Archetype returns the archetype being shown.
func (m ScoreboardModel) Archetype() core.Archetype {
	return m.archetypes[m.current]
}

func (m ScoreboardModel) wide() bool {
	return m.width >= typeListMinWidth
}

// resize rebuilds the table for a new window size, keeping its rows.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	inner := width - 6
	if m.wide() {
		inner -= typeListWidth + 3
	}
	rows := m.table.Rows()

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Prompt", Width: max(inner-28, 10)},
			{Title: "Date", Width: 14},
		}),
		table.WithRows(rows),
		table.WithHeight(max(height-10, 3)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderForeground(frame).BorderBottom(true)
	styles.Selected = styles.Selected.Bold(false).Foreground(accent).Background(highlight)
	m.table.SetStyles(styles)
}

// reload reads scores and stats of the current archetype from the store.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		a := m.Archetype()
		if scores, err := m.store.TopScores(a, scoreRows); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetArchetypeStats(a); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		label := s.Prompt
		if label == "" {
			label = s.Title
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			label,
			s.CreatedAt.Format(dateLayout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	n := len(m.archetypes)
	m.current = (m.current + delta + n) % n
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.quitOnBack {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	heading := "HIGH SCORES - " + m.Archetype().Title()
	parts := []string{
		headingStyle.Render(centerText(heading, m.width)),
		hintStyle.Render(centerText(m.summary(), m.width)),
		"",
	}
	if m.wide() {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, m.typeList(), "  ", panel(m.body(), false)))
	} else {
		tab := "< " + chipStyle.Render(m.Archetype().Title()) + " >"
		parts = append(parts, centerText(tab, m.width), "", panel(m.body(), false))
	}
	parts = append(parts, "", hintStyle.Render(m.help.View(m.keys)))
	return strings.Join(parts, "\n")
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%d games · best %d · avg %.1f · last %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format(dateLayout))
}

// typeList is the archetype column shown on wide terminals.
func (m ScoreboardModel) typeList() string {
	lines := []string{"Types", strings.Repeat("─", typeListWidth-4)}
	for i, a := range m.archetypes {
		if i == m.current {
			lines = append(lines, headingStyle.Render("▸ "+a.Title()))
			continue
		}
		lines = append(lines, "  "+a.Title())
	}
	return panel(lipgloss.NewStyle().Width(typeListWidth).Render(strings.Join(lines, "\n")), true)
}

func (m ScoreboardModel) body() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores for this type yet.\nFinish a game to get on the board.")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
