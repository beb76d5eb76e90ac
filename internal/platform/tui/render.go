package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	fieldStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ledOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	buzzerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// ledOnStyles colours a lit LED, indexed by player.
var ledOnStyles = [2]lipgloss.Style{
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
}

// RenderField converts a raster into braille text, one line per cell row.
func RenderField(r *core.Raster) string {
	cells := r.Braille()
	lines := make([]string, len(cells))
	for i, row := range cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// renderLED draws one player's indicator.
func renderLED(t *Table, p pong.Player) string {
	led := t.LEDs[p]
	if led.Lit() {
		return ledOnStyles[p].Render("● " + led.Name)
	}
	return ledOffStyle.Render("○ " + led.Name)
}

// renderTable lays out the header, the field and the footer.
func renderTable(m Model) string {
	t := m.table
	field := fieldStyle.Render(RenderField(t.Canvas.Front()))
	width := lipgloss.Width(field)

	header := titleStyle.Render("P O N G") + dimStyle.Render(fmt.Sprintf("  %s  round %d", m.mode, t.Game.Round()+1))

	tone := "  "
	if t.Buzzer.Sounding() {
		tone = buzzerStyle.Render("♪ ")
	}
	state := ""
	switch {
	case m.paused:
		state = pausedStyle.Render("PAUSED")
	case m.status != "":
		state = dimStyle.Render(m.status)
	}
	indicators := renderLED(t, pong.Left) + "  " + tone + renderLED(t, pong.Right)
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		indicators,
		strings.Repeat(" ", max(1, width-lipgloss.Width(indicators)-lipgloss.Width(state))),
		state,
	)

	var b strings.Builder
	b.WriteString(centerText(header, width))
	b.WriteString("\n")
	b.WriteString(field)
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// centerText centers each line of text in width columns.
func centerText(text string, width int) string {
	if width <= lipgloss.Width(text) {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
