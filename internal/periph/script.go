package periph

import (
	"fmt"
	"strings"
)

// Script drives a pair of buttons from a repeating pattern, one symbol per
// frame: 'u' up, 'd' down, 'b' both, '.' neither.
type Script struct {
	steps []byte
	pos   int
}

// ParseScript validates a pattern. An empty pattern never presses anything.
func ParseScript(pattern string) (*Script, error) {
	pattern = strings.TrimSpace(pattern)
	for i, c := range []byte(pattern) {
		switch c {
		case 'u', 'd', 'b', '.':
		default:
			return nil, fmt.Errorf("periph: invalid input symbol %q at %d (want u, d, b or .)", c, i)
		}
	}
	return &Script{steps: []byte(pattern)}, nil
}

func (s *Script) current() byte {
	if len(s.steps) == 0 {
		return '.'
	}
	return s.steps[s.pos]
}

// Up returns the up button.
func (s *Script) Up() ScriptButton {
	return ScriptButton{s: s, on: "ub"}
}

// Down returns the down button.
func (s *Script) Down() ScriptButton {
	return ScriptButton{s: s, on: "db"}
}

// Tick advances the pattern by one frame.
func (s *Script) Tick() {
	if len(s.steps) > 0 {
		s.pos = (s.pos + 1) % len(s.steps)
	}
}

// ScriptButton is one button of a Script.
type ScriptButton struct {
	s  *Script
	on string
}

// Pressed reports whether the current symbol asserts this button.
func (b ScriptButton) Pressed() bool {
	return strings.IndexByte(b.on, b.s.current()) >= 0
}
