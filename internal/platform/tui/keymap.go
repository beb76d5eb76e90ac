package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a table.
// Bindings for a CPU-driven paddle are disabled.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Pause, k.Screenshot, k.Help, k.Quit},
	}
}

func commonKeys() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SoloKeyMap returns bindings for one player against the CPU.
func SoloKeyMap() KeyMap {
	k := commonKeys()
	k.LeftUp = key.NewBinding(
		key.WithKeys("w", "up", "k"),
		key.WithHelp("w/up", "paddle up"),
	)
	k.LeftDown = key.NewBinding(
		key.WithKeys("s", "down", "j"),
		key.WithHelp("s/down", "paddle down"),
	)
	k.RightUp = key.NewBinding(key.WithDisabled())
	k.RightDown = key.NewBinding(key.WithDisabled())
	return k
}

// VersusKeyMap returns bindings for two players sharing a keyboard.
func VersusKeyMap() KeyMap {
	k := commonKeys()
	k.LeftUp = key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "left up"),
	)
	k.LeftDown = key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "left down"),
	)
	k.RightUp = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "right up"),
	)
	k.RightDown = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "right down"),
	)
	return k
}

// KeyMapFor returns the bindings for the given number of human players.
func KeyMapFor(players int) KeyMap {
	if players >= 2 {
		return VersusKeyMap()
	}
	return SoloKeyMap()
}
