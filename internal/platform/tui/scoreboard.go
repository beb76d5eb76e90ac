package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "rounds"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists stored sessions and, on request, the rounds of one.
type ScoreboardModel struct {
	store    *storage.Store
	limit    int
	sessions []storage.Session
	rounds   []storage.RoundRecord
	totals   storage.Totals
	detail   bool // Showing the rounds of the selected session
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the latest limit sessions.
func NewScoreboardModel(store *storage.Store, limit, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		limit:  limit,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.sessionTable()
	return m
}

func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	if m.sessions, m.err = m.store.RecentSessions(m.limit); m.err != nil {
		return
	}
	m.totals, m.err = m.store.Totals()
}

func (m ScoreboardModel) styled(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// SessionRows formats sessions as table rows.
func SessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		state := "running"
		if s.Ended() {
			state = s.EndedAt.Local().Format("15:04")
		}
		rows[i] = table.Row{
			s.StartedAt.Local().Format("Jan 02 15:04"),
			s.Mode,
			fmt.Sprintf("%d : %d", s.Score1, s.Score2),
			fmt.Sprintf("%d", s.Rounds),
			state,
		}
	}
	return rows
}

func (m ScoreboardModel) sessionTable() table.Model {
	return m.styled([]table.Column{
		{Title: "Started", Width: 14},
		{Title: "Mode", Width: 8},
		{Title: "Score", Width: 9},
		{Title: "Rounds", Width: 7},
		{Title: "Ended", Width: 8},
	}, SessionRows(m.sessions))
}

func (m ScoreboardModel) roundTable() table.Model {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Round),
			r.Winner,
			fmt.Sprintf("%d : %d", r.Score1, r.Score2),
			fmt.Sprintf("%d", r.Tick),
		}
	}
	return m.styled([]table.Column{
		{Title: "Round", Width: 7},
		{Title: "Winner", Width: 8},
		{Title: "Score", Width: 9},
		{Title: "Frame", Width: 8},
	}, rows)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if !m.detail {
				m.quitting = true
				return m, tea.Quit
			}
			m.detail = false
			m.table = m.sessionTable()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.detail || m.store == nil {
				return m, nil
			}
			i := m.table.Cursor()
			if i < 0 || i >= len(m.sessions) {
				return m, nil
			}
			m.rounds, m.err = m.store.Rounds(m.sessions[i].ID)
			m.detail = true
			m.table = m.roundTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.detail {
			m.table = m.roundTable()
		} else {
			m.table = m.sessionTable()
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "SESSIONS"
	if m.detail {
		title = "ROUNDS"
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf(
		"%d sessions, %d rounds, left %d / right %d",
		m.totals.Sessions, m.totals.Rounds, m.totals.LeftWins, m.totals.RightWins)), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error())
	case len(m.sessions) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No sessions recorded yet.\nPlay a game to fill the board!")
	default:
		content = m.table.View()
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
