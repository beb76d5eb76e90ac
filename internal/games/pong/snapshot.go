package pong

// Snapshot contains the complete state of a game.
// Uses primitive types only so it can be logged or compared directly.
type Snapshot struct {
	Tick    uint64
	Round   int
	BallX   int
	BallY   int
	BallVX  int
	BallVY  int
	Paddle1 int // Left paddle centre
	Paddle2 int // Right paddle centre
	Score1  uint8
	Score2  uint8
	Holding bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Round:   g.round,
		BallX:   int(g.ball.X),
		BallY:   int(g.ball.Y),
		BallVX:  int(g.ball.XDot),
		BallVY:  int(g.ball.YDot),
		Paddle1: int(g.paddles.y[Left]),
		Paddle2: int(g.paddles.y[Right]),
		Score1:  g.score.counts[Left],
		Score2:  g.score.counts[Right],
		Holding: g.hold > 0,
	}
}

// KeyVals flattens the snapshot into alternating keys and values for
// structured loggers.
func (s Snapshot) KeyVals() []any {
	return []any{
		"tick", s.Tick,
		"round", s.Round,
		"ball", [2]int{s.BallX, s.BallY},
		"vel", [2]int{s.BallVX, s.BallVY},
		"paddles", [2]int{s.Paddle1, s.Paddle2},
		"score", [2]uint8{s.Score1, s.Score2},
	}
}
