package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderField(t *testing.T) {
	r := core.NewRaster(4, 8)
	r.Set(0, 0)
	r.Set(3, 7)

	lines := strings.Split(RenderField(r), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderField() produced %d lines, expected 2", len(lines))
	}
	expected := []string{"⠁ ", " ⢀"}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestKeyMaps(t *testing.T) {
	tests := []struct {
		name    string
		keys    KeyMap
		msg     tea.KeyMsg
		binding func(KeyMap) key.Binding
		matches bool
	}{
		{"solo w", SoloKeyMap(), runeKey('w'), func(k KeyMap) key.Binding { return k.LeftUp }, true},
		{"solo arrow", SoloKeyMap(), tea.KeyMsg{Type: tea.KeyDown}, func(k KeyMap) key.Binding { return k.LeftDown }, true},
		{"solo right disabled", SoloKeyMap(), tea.KeyMsg{Type: tea.KeyUp}, func(k KeyMap) key.Binding { return k.RightUp }, false},
		{"versus arrow is right", VersusKeyMap(), tea.KeyMsg{Type: tea.KeyUp}, func(k KeyMap) key.Binding { return k.RightUp }, true},
		{"versus arrow not left", VersusKeyMap(), tea.KeyMsg{Type: tea.KeyUp}, func(k KeyMap) key.Binding { return k.LeftUp }, false},
		{"quit", SoloKeyMap(), runeKey('q'), func(k KeyMap) key.Binding { return k.Quit }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Matches(tt.msg, tt.binding(tt.keys)); got != tt.matches {
				t.Errorf("key.Matches() = %v, expected %v", got, tt.matches)
			}
		})
	}
}

func TestKeyMapFor(t *testing.T) {
	if !KeyMapFor(2).RightUp.Enabled() {
		t.Error("two players should enable the right paddle keys")
	}
	if KeyMapFor(1).RightUp.Enabled() {
		t.Error("one player should leave the right paddle to the CPU")
	}
}
