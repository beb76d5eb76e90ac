package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is the ball in play. Its fields are exported because paddles resolve
// contacts by mutating them directly.
type Ball struct {
	X, Y       core.Coord
	XDot, YDot core.Coord // Pixels per frame

	geom   Geometry
	buzzer Buzzer
}

// NewBall creates a ball ready to be served.
func NewBall(geom Geometry, buzzer Buzzer) *Ball {
	if buzzer == nil {
		buzzer = silentBuzzer{}
	}
	b := &Ball{geom: geom, buzzer: buzzer}
	b.Reset()
	return b
}

// Reset centres the ball and gives it the serve velocity.
func (b *Ball) Reset() {
	b.X = b.geom.StartX
	b.Y = b.geom.StartY
	b.XDot = b.geom.StartXDot
	b.YDot = b.geom.StartYDot
}

// Tick moves the ball one frame and bounces it off the top or bottom wall.
// Horizontal edges are left to the paddles.
func (b *Ball) Tick() {
	b.X = core.Add(b.X, b.XDot)
	b.Y = core.Add(b.Y, b.YDot)

	if bounce(&b.Y, &b.YDot, core.SideOf(b.YDot), b.geom.MaxY(), b.geom.BallRadius) {
		b.buzzer.Beep()
	}
}

// bounce resolves a collision with the boundary line that lies limit pixels
// inside the chosen edge of [0, max]. On overshoot the position is mirrored
// back across the line and the velocity is negated.
func bounce(pos, vel *core.Coord, side core.Side, max, limit core.Coord) bool {
	near := side.ToNear(*pos, max)
	if near >= limit {
		return false
	}
	*pos = side.FromNear(core.Reflect(near, limit), max)
	*vel = core.Neg(*vel)
	return true
}

// RoundWinner reports the player who kept the ball in, once the ball has left
// the field. A ball exactly on the first or last column is still in play.
func (b *Ball) RoundWinner() (Player, bool) {
	switch {
	case b.X < 0:
		return Right, true
	case b.X > b.geom.MaxX():
		return Left, true
	}
	return Left, false
}

// Render draws the ball.
func (b *Ball) Render(d Display) {
	if b.geom.Outline {
		d.DrawCircle(b.X, b.Y, b.geom.BallRadius)
		return
	}
	d.DrawDisc(b.X, b.Y, b.geom.BallRadius)
}
