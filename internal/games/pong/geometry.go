package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Geometry holds the fixed dimensions of a table, in pixels and pixels per frame.
type Geometry struct {
	Width, Height core.Coord

	BallRadius core.Coord
	StartX     core.Coord
	StartY     core.Coord
	StartXDot  core.Coord
	StartYDot  core.Coord

	PaddleHalfHeight core.Coord
	PaddleWidth      core.Coord
	PaddleSpeed      core.Coord

	ScoreBase int
	ScorePos  [2][2]core.Coord // {x, y} per player

	Outline bool
}

// NewGeometry converts a validated config into table geometry.
func NewGeometry(cfg config.PongConfig) Geometry {
	c := func(v int) core.Coord { return core.Coord(v) }
	return Geometry{
		Width:            c(cfg.Field.Width),
		Height:           c(cfg.Field.Height),
		BallRadius:       c(cfg.Ball.Radius),
		StartX:           c(cfg.Ball.StartX),
		StartY:           c(cfg.Ball.StartY),
		StartXDot:        c(cfg.Ball.VelocityX),
		StartYDot:        c(cfg.Ball.VelocityY),
		PaddleHalfHeight: c(cfg.Paddles.HalfHeight),
		PaddleWidth:      c(cfg.Paddles.Width),
		PaddleSpeed:      c(cfg.Paddles.Speed),
		ScoreBase:        cfg.Score.Base,
		ScorePos: [2][2]core.Coord{
			{c(cfg.Score.Left.X), c(cfg.Score.Left.Y)},
			{c(cfg.Score.Right.X), c(cfg.Score.Right.Y)},
		},
		Outline: cfg.Render.Outline,
	}
}

// MaxX is the rightmost column of the field.
func (g Geometry) MaxX() core.Coord {
	return g.Width - 1
}

// MaxY is the bottom row of the field.
func (g Geometry) MaxY() core.Coord {
	return g.Height - 1
}

// CenterY is where paddles rest after a reset.
func (g Geometry) CenterY() core.Coord {
	return g.Height / 2
}

// ContactLine is how far from its own edge the ball's centre is when it
// touches a paddle face.
func (g Geometry) ContactLine() core.Coord {
	return core.Add(g.PaddleWidth, g.BallRadius)
}

// Reach is the largest vertical offset between ball and paddle centres that
// still counts as a hit.
func (g Geometry) Reach() core.Coord {
	return core.Add(g.PaddleHalfHeight, g.BallRadius)
}

// PaddleRange returns the legal span of a paddle centre.
func (g Geometry) PaddleRange() (lo, hi core.Coord) {
	return g.PaddleHalfHeight, core.Sub(g.MaxY(), g.PaddleHalfHeight)
}
