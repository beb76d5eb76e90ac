package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// twoHumans returns paddles with four fake buttons: left up/down, right up/down.
func twoHumans(buzzer Buzzer) (*Paddles, [4]*fakeButton) {
	var b [4]*fakeButton
	for i := range b {
		b[i] = &fakeButton{}
	}
	p := NewPaddles(defaultGeometry(), buzzer, [2]Controls{
		{Up: b[0], Down: b[1]},
		{Up: b[2], Down: b[3]},
	})
	return p, b
}

// idleBall returns a ball in mid-field that no paddle will touch.
func idleBall() *Ball {
	b := NewBall(defaultGeometry(), nil)
	b.X, b.Y = 64, 64
	return b
}

func TestPaddlesReset(t *testing.T) {
	p, _ := twoHumans(nil)
	p.y[Left], p.y[Right] = 10, 100

	p.Reset()

	if p.Y(Left) != 64 || p.Y(Right) != 64 {
		t.Errorf("Y = (%d, %d), expected (64, 64)", p.Y(Left), p.Y(Right))
	}
}

func TestPaddleMovement(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Coord
		up, down bool
		expected core.Coord
	}{
		{"idle", 64, false, false, 64},
		{"up", 64, true, false, 57},
		{"down", 64, false, true, 71},
		{"both cancel", 64, true, true, 64},
		{"clamp at top", 12, true, false, 8},
		{"clamp at bottom", 115, false, true, 119},
		{"both cancel at top", 8, true, true, 8},
		{"both cancel at bottom", 119, true, true, 119},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, b := twoHumans(nil)
			p.y[Left] = tc.start
			b[0].down, b[1].down = tc.up, tc.down

			p.Tick(idleBall())

			if p.Y(Left) != tc.expected {
				t.Errorf("Y(Left) = %d, expected %d", p.Y(Left), tc.expected)
			}
			if p.Y(Right) != 64 {
				t.Errorf("Y(Right) = %d, right paddle should not move", p.Y(Right))
			}
		})
	}
}

func TestPaddleStaysInRange(t *testing.T) {
	p, b := twoHumans(nil)
	lo, hi := defaultGeometry().PaddleRange()
	rng := rand.New(rand.NewSource(7))
	ball := idleBall()

	for frame := 0; frame < 5000; frame++ {
		for _, btn := range b {
			btn.down = rng.Intn(2) == 0
		}
		p.Tick(ball)

		for _, player := range Players {
			if y := p.Y(player); y < lo || y > hi {
				t.Fatalf("frame %d: %v paddle at %d, outside [%d, %d]", frame, player, y, lo, hi)
			}
		}
	}
}

func TestButtonsPolledOncePerFrame(t *testing.T) {
	p, b := twoHumans(nil)
	p.Tick(idleBall())

	for i, btn := range b {
		if btn.polls != 1 {
			t.Errorf("button %d polled %d times, expected 1", i, btn.polls)
		}
	}
}

func TestCPUChasesBall(t *testing.T) {
	tests := []struct {
		name     string
		ballY    core.Coord
		start    core.Coord
		expected core.Coord
	}{
		{"ball above", 30, 64, 57},
		{"ball below", 100, 64, 71},
		{"ball level moves down", 64, 64, 71},
		{"clamped at top", 5, 10, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			up, down := &fakeButton{}, &fakeButton{}
			p := NewPaddles(defaultGeometry(), nil, [2]Controls{{Up: up, Down: down}})
			p.y[Right] = tc.start
			ball := idleBall()
			ball.Y = tc.ballY

			p.Tick(ball)

			if p.Y(Right) != tc.expected {
				t.Errorf("Y(Right) = %d, expected %d", p.Y(Right), tc.expected)
			}
			if p.Y(Left) != 64 {
				t.Errorf("Y(Left) = %d, idle human paddle moved", p.Y(Left))
			}
		})
	}
}

func TestPaddleCollision(t *testing.T) {
	// Paddles rest at 64. Contact line is 3+10 = 13 from each edge and the
	// reach is 8+10 = 18 pixels either side of the paddle centre.
	tests := []struct {
		name      string
		x, y      core.Coord
		xDot      core.Coord
		yDot      core.Coord
		hit       bool
		expectedX core.Coord
	}{
		{"left centre hit", 12, 64, -3, 0, true, 14},
		{"left reach boundary below", 12, 82, -3, 0, true, 14},
		{"left one past reach below", 12, 83, -3, 0, false, 12},
		{"left reach boundary above", 12, 46, -3, 0, true, 14},
		{"left one past reach above", 12, 45, -3, 0, false, 12},
		{"half step back off down", 12, 85, -3, 6, true, 14},
		{"half step back off truncates", 12, 80, -3, -5, true, 14},
		{"half step pushes out", 12, 80, -3, -6, false, 12},
		{"left not yet at line", 13, 64, -3, 0, false, 13},
		{"left already behind line", 9, 64, -3, 0, false, 9},
		{"right centre hit", 115, 64, 3, 0, true, 113},
		{"right reach boundary", 115, 82, 3, 0, true, 113},
		{"right one past reach", 115, 83, 3, 0, false, 115},
		{"moving away from left", 12, 64, 3, 0, false, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buzzer := &countingBuzzer{}
			p, _ := twoHumans(buzzer)
			ball := NewBall(defaultGeometry(), nil)
			ball.X, ball.Y, ball.XDot, ball.YDot = tc.x, tc.y, tc.xDot, tc.yDot

			p.Tick(ball)

			if ball.X != tc.expectedX {
				t.Errorf("X = %d, expected %d", ball.X, tc.expectedX)
			}
			expectedXDot := tc.xDot
			expectedBeeps := 0
			if tc.hit {
				expectedXDot = -tc.xDot
				expectedBeeps = 1
			}
			if ball.XDot != expectedXDot {
				t.Errorf("XDot = %d, expected %d", ball.XDot, expectedXDot)
			}
			if buzzer.beeps != expectedBeeps {
				t.Errorf("beeps = %d, expected %d", buzzer.beeps, expectedBeeps)
			}
			if ball.Y != tc.y || ball.YDot != tc.yDot {
				t.Errorf("vertical state changed to (%d, %d)", ball.Y, ball.YDot)
			}
		})
	}
}

func TestPaddlesRender(t *testing.T) {
	c := core.NewCanvas(128, 128)
	p, _ := twoHumans(nil)

	c.Begin()
	p.Render(c)
	c.Commit()

	r := c.Front()
	if r.Lit() != 2*3*16 {
		t.Errorf("Lit() = %d, expected %d", r.Lit(), 2*3*16)
	}
	for _, pt := range [][2]int{{0, 56}, {2, 71}, {125, 56}, {127, 71}} {
		if !r.Pixel(pt[0], pt[1]) {
			t.Errorf("pixel %v should be part of a paddle", pt)
		}
	}
	if r.Pixel(0, 55) || r.Pixel(0, 72) || r.Pixel(3, 64) || r.Pixel(124, 64) {
		t.Error("paddle drawn outside its box")
	}
}
