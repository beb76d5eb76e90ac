package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// fakeButton is a button the test holds down or releases.
type fakeButton struct {
	down  bool
	polls int
}

func (b *fakeButton) Pressed() bool {
	b.polls++
	return b.down
}

// countingBuzzer records how many tones were requested.
type countingBuzzer struct {
	beeps int
}

func (b *countingBuzzer) Beep() {
	b.beeps++
}

// recordingAlert records flashes and runs an optional hook while "blocking".
type recordingAlert struct {
	flashes int
	during  func()
}

func (a *recordingAlert) Flash() {
	a.flashes++
	if a.during != nil {
		a.during()
	}
}

// rig is a game wired to test doubles.
type rig struct {
	game   *Game
	canvas *core.Canvas
	buzzer *countingBuzzer
	alerts [2]*recordingAlert
	up     *fakeButton
	down   *fakeButton
}

// newRig builds a one-player game (CPU on the right) from cfg.
func newRig(t *testing.T, cfg config.PongConfig) *rig {
	t.Helper()

	r := &rig{
		canvas: core.NewCanvas(cfg.Field.Width, cfg.Field.Height),
		buzzer: &countingBuzzer{},
		alerts: [2]*recordingAlert{{}, {}},
		up:     &fakeButton{},
		down:   &fakeButton{},
	}

	g, err := New(cfg, Peripherals{
		Display: r.canvas,
		Buzzer:  r.buzzer,
		Alerts:  [2]Alert{r.alerts[Left], r.alerts[Right]},
		Controls: [2]Controls{
			Left: {Up: r.up, Down: r.down},
		},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r.game = g
	return r
}

func defaultGeometry() Geometry {
	return NewGeometry(config.DefaultPongConfig())
}
