package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/periph"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures a table session.
type Options struct {
	Pong    config.PongConfig
	Runtime core.RuntimeConfig
	Mode    string         // Stored with the session; defaults from Runtime.Players
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional; logs are discarded when nil
	ShotDir string         // Screenshot directory; defaults to ~/.pong/screenshots
}

// Model is the Bubble Tea model for one table.
type Model struct {
	table    *Table
	latches  [2][2]*periph.Latch // [player][up, down]
	keys     KeyMap
	help     help.Model
	recorder *Recorder
	logger   *log.Logger
	frame    time.Duration
	shotDir  string
	mode     string
	paused   bool
	quitting bool
	status   string
}

// NewModel wires a table to keyboard latches and starts a session.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	players := max(1, min(2, rt.Players))
	hold := rt.Frames(millis(opts.Pong.Input.HoldMS))

	var latches [2][2]*periph.Latch
	var controls [2]pong.Controls
	var inputs []Ticker
	for p := 0; p < players; p++ {
		latches[p] = [2]*periph.Latch{periph.NewLatch(hold), periph.NewLatch(hold)}
		controls[p] = pong.Controls{Up: latches[p][0], Down: latches[p][1]}
		inputs = append(inputs, latches[p][0], latches[p][1])
	}

	table, err := NewTable(opts.Pong, rt, controls, inputs...)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mode := opts.Mode
	if mode == "" {
		mode = "solo"
		if players == 2 {
			mode = "versus"
		}
	}

	return Model{
		table:    table,
		latches:  latches,
		keys:     KeyMapFor(players),
		help:     help.New(),
		recorder: NewRecorder(opts.Store, logger, mode),
		logger:   logger,
		frame:    rt.FrameDuration(),
		shotDir:  opts.ShotDir,
		mode:     mode,
	}, nil
}

// Table returns the table the model drives.
func (m Model) Table() *Table {
	return m.table
}

// Recorder returns the session recorder.
func (m Model) Recorder() *Recorder {
	return m.recorder
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.recorder.End()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	// A player's up and down keys are independent; both may be held.
	switch {
	case key.Matches(msg, m.keys.LeftUp):
		m.latches[pong.Left][0].Press()
	case key.Matches(msg, m.keys.LeftDown):
		m.latches[pong.Left][1].Press()
	case key.Matches(msg, m.keys.RightUp):
		m.latches[pong.Right][0].Press()
	case key.Matches(msg, m.keys.RightDown):
		m.latches[pong.Right][1].Press()
	}
	return m, nil
}

// handleTick runs one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.paused {
		res := m.table.Frame()
		m.recorder.Observe(res, m.table.Game)
	}
	return m, tickCmd(m.frame)
}

// saveScreenshot writes the last committed frame as text and returns a
// status line describing the outcome.
func (m Model) saveScreenshot() string {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "screenshot failed: no home directory"
		}
		dir = filepath.Join(home, ".pong", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return "screenshot failed"
	}

	front := m.table.Canvas.Front()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))
	data := front.String() + "\n\n" + RenderField(front) + "\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderTable(m)
}

// Run starts the Bubble Tea program for a local table.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.recorder.End()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
