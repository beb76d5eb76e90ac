// Package pong implements the two-paddle bouncing-ball simulation.
//
// Everything here is deterministic integer arithmetic on a small raster.
// Buttons, alerts, the buzzer and the display are injected as interfaces, so
// the same game runs in a terminal, over SSH, headless, or against test doubles.
package pong

import (
	"errors"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// FrameResult describes what happened during one call to Frame.
type FrameResult struct {
	Tick      uint64   // Frame number, starting at 1
	Held      bool     // The frame was a post-round pause: no input, no physics
	RoundOver bool     // A round ended this frame
	Winner    Player   // Valid when RoundOver is set
	Scores    [2]uint8 // Counters after this frame
}

// Game runs one table: a ball, two paddles and a score board.
// It is not safe for concurrent use; one goroutine drives it frame by frame.
type Game struct {
	ball    *Ball
	paddles *Paddles
	score   *ScoreBoard
	display Display

	holdFrames int // Pause length after each round
	hold       int // Frames left in the current pause
	tick       uint64
	round      int
}

// New builds a game from a configuration and its peripherals.
// Only the display is required; missing alerts and buzzer are silent.
func New(cfg config.PongConfig, p Peripherals) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.Display == nil {
		return nil, errors.New("pong: a display is required")
	}

	geom := NewGeometry(cfg)
	return &Game{
		ball:    NewBall(geom, p.Buzzer),
		paddles: NewPaddles(geom, p.Buzzer, p.Controls),
		score:   NewScoreBoard(geom, p.Alerts),
		display: p.Display,
	}, nil
}

// SetHoldFrames sets how many frames the game pauses after a round.
// Use it when alerts return immediately but take time to show: during the
// pause the table is redrawn but buttons are not read and nothing moves.
// Leave it at zero when alerts block for their own duration.
func (g *Game) SetHoldFrames(n int) {
	g.holdFrames = max(0, n)
}

// Frame advances the simulation by one fixed step.
func (g *Game) Frame() FrameResult {
	g.tick++
	res := FrameResult{Tick: g.tick}

	if g.hold > 0 {
		g.hold--
		g.render()
		res.Held = true
		res.Scores = g.score.Counts()
		return res
	}

	g.ball.Tick()
	g.paddles.Tick(g.ball)
	g.render()

	// Checked last: scoring may block on the alert.
	if winner, ok := g.ball.RoundWinner(); ok {
		g.score.Score(winner)
		g.ball.Reset()
		g.paddles.Reset()
		g.round++
		g.hold = g.holdFrames

		res.RoundOver = true
		res.Winner = winner
	}

	res.Scores = g.score.Counts()
	return res
}

// render draws the whole table as one display transaction.
func (g *Game) render() {
	g.display.Begin()
	g.score.Render(g.display)
	g.ball.Render(g.display)
	g.paddles.Render(g.display)
	g.display.Commit()
}

// Ball returns the ball. Exposed for inspection; mutate it only in tests.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddles returns the paddle pair.
func (g *Game) Paddles() *Paddles {
	return g.paddles
}

// Scores returns both counters.
func (g *Game) Scores() [2]uint8 {
	return g.score.Counts()
}

// Round returns how many rounds have finished.
func (g *Game) Round() int {
	return g.round
}

// Tick returns the number of frames run so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Holding reports whether the game is in a post-round pause.
func (g *Game) Holding() bool {
	return g.hold > 0
}
