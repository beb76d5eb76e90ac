package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddles holds both paddle centres and moves them each frame.
type Paddles struct {
	y [2]core.Coord

	geom     Geometry
	controls [2]Controls
	buzzer   Buzzer
}

// NewPaddles creates centred paddles. An empty Controls value for a side
// hands that paddle to the CPU.
func NewPaddles(geom Geometry, buzzer Buzzer, controls [2]Controls) *Paddles {
	if buzzer == nil {
		buzzer = silentBuzzer{}
	}
	p := &Paddles{geom: geom, controls: controls, buzzer: buzzer}
	p.Reset()
	return p
}

// Reset centres both paddles.
func (p *Paddles) Reset() {
	p.y[Left] = p.geom.CenterY()
	p.y[Right] = p.geom.CenterY()
}

// Y returns the centre of a player's paddle.
func (p *Paddles) Y(player Player) core.Coord {
	return p.y[player]
}

// Tick moves the paddles and resolves a ball contact.
func (p *Paddles) Tick(b *Ball) {
	for _, player := range Players {
		c := p.controls[player]
		if !c.Human() {
			p.chase(player, b)
			continue
		}
		// Both buttons are applied, so holding up and down together cancels out.
		// The steps are summed before clamping to keep that true at the edges.
		var step core.Coord
		if pressed(c.Up) {
			step = core.Sub(step, p.geom.PaddleSpeed)
		}
		if pressed(c.Down) {
			step = core.Add(step, p.geom.PaddleSpeed)
		}
		p.shift(player, step)
	}

	p.collide(b)
}

// shift moves a paddle by step pixels, clamped to its legal range.
// Screen y grows downward, so a negative step moves up.
func (p *Paddles) shift(player Player, step core.Coord) {
	lo, hi := p.geom.PaddleRange()
	p.y[player] = core.Clamp(core.Add(p.y[player], step), lo, hi)
}

// chase is the CPU: one step toward the ball's current height.
// A ball level with the paddle centre counts as below it.
func (p *Paddles) chase(player Player, b *Ball) {
	if b.Y < p.y[player] {
		p.shift(player, core.Neg(p.geom.PaddleSpeed))
	} else {
		p.shift(player, p.geom.PaddleSpeed)
	}
}

// collide checks the paddle the ball is heading toward. The far side is
// mirrored so the same routine serves both paddles.
func (p *Paddles) collide(b *Ball) {
	if b.XDot == 0 {
		return
	}
	side := core.SideOf(b.XDot)
	player := Left
	if side == core.Far {
		player = Right
	}

	maxX := p.geom.MaxX()
	face := p.geom.ContactLine()
	x := side.ToNear(b.X, maxX)

	// Only the frame that carries the ball across the contact line counts;
	// a ball that is already behind it has been missed.
	prev := core.Add(x, core.AbsCoord(b.XDot))
	if x >= face || prev < face {
		return
	}

	// Back off half a step to estimate where the ball was at contact.
	contactY := core.Sub(b.Y, core.Half(b.YDot))
	if core.AbsCoord(core.Sub(contactY, p.y[player])) > p.geom.Reach() {
		return
	}

	b.X = side.FromNear(core.Reflect(x, face), maxX)
	b.XDot = core.Neg(b.XDot)
	p.buzzer.Beep()
}

// Render draws both paddles at their edges.
func (p *Paddles) Render(d Display) {
	hh := p.geom.PaddleHalfHeight
	w := p.geom.PaddleWidth
	xs := [2]core.Coord{0, core.Sub(p.geom.Width, w)}

	for _, player := range Players {
		top := core.Sub(p.y[player], hh)
		if p.geom.Outline {
			d.DrawFrame(xs[player], top, w, 2*hh)
		} else {
			d.DrawBox(xs[player], top, w, 2*hh)
		}
	}
}
