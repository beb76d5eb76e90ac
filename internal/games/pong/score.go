package pong

import "github.com/vovakirdan/tui-pong/internal/core"

const digits = "0123456789ABCDEF"

// ScoreBoard counts rounds won. Counters wrap at 256 and are never reset.
type ScoreBoard struct {
	counts [2]uint8

	geom   Geometry
	alerts [2]Alert
}

// NewScoreBoard creates a board at 0-0.
func NewScoreBoard(geom Geometry, alerts [2]Alert) *ScoreBoard {
	for i, a := range alerts {
		if a == nil {
			alerts[i] = darkAlert{}
		}
	}
	return &ScoreBoard{geom: geom, alerts: alerts}
}

// Score flashes the winner's alert, then credits the round.
// The alert may block; nothing else runs until it returns.
func (s *ScoreBoard) Score(player Player) {
	s.alerts[player].Flash()
	s.counts[player]++
}

// Count returns a player's counter.
func (s *ScoreBoard) Count(player Player) uint8 {
	return s.counts[player]
}

// Counts returns both counters.
func (s *ScoreBoard) Counts() [2]uint8 {
	return s.counts
}

// Render draws each counter at its fixed position.
func (s *ScoreBoard) Render(d Display) {
	for _, player := range Players {
		pos := s.geom.ScorePos[player]
		d.DrawStr(pos[0], pos[1], FormatScore(s.counts[player], s.geom.ScoreBase))
	}
}

// FormatScore renders the two low digits of n in the given base.
// A leading zero is shown as a blank, so 5 in base 16 is " 5" and 0x1F is "1F".
func FormatScore(n uint8, base int) string {
	base = core.Clamp(base, 2, len(digits))
	v := int(n)
	lo := digits[v%base]
	hi := digits[(v/base)%base]
	if hi == '0' {
		hi = ' '
	}
	return string([]byte{hi, lo})
}
