package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/periph"
)

// Ticker is anything that advances once per frame, such as a key latch or
// a scripted input.
type Ticker interface {
	Tick()
}

// Table couples a game with the frame-driven peripherals that present it.
type Table struct {
	Game   *pong.Game
	Canvas *core.Canvas
	LEDs   [2]*periph.LED
	Buzzer *periph.Buzzer

	inputs []Ticker
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// NewTable builds a game drawn on a canvas, with one LED per player and a
// buzzer. Alerts never block, so the game holds the table still for as long
// as the LED pattern runs: the scoring frame shows the first frame of the
// pattern and the hold covers the rest. inputs are ticked after every frame.
func NewTable(cfg config.PongConfig, rt core.RuntimeConfig, controls [2]pong.Controls, inputs ...Ticker) (*Table, error) {
	cycles := cfg.Alerts.FlashCycles
	period := rt.Frames(millis(cfg.Alerts.FlashPeriodMS))

	t := &Table{
		Canvas: core.NewCanvas(cfg.Field.Width, cfg.Field.Height),
		LEDs:   [2]*periph.LED{periph.NewLED("L", cycles, period), periph.NewLED("R", cycles, period)},
		Buzzer: periph.NewBuzzer(rt.Frames(millis(cfg.Alerts.BeepMS))),
		inputs: inputs,
	}

	game, err := pong.New(cfg, pong.Peripherals{
		Display:  t.Canvas,
		Buzzer:   t.Buzzer,
		Alerts:   [2]pong.Alert{t.LEDs[pong.Left], t.LEDs[pong.Right]},
		Controls: controls,
	})
	if err != nil {
		return nil, err
	}
	game.SetHoldFrames(t.LEDs[pong.Left].Duration() - 1)
	t.Game = game
	return t, nil
}

// Frame ages the LEDs and the buzzer, runs one game frame, then ages inputs.
// An alert raised during the frame is still showing its first frame when
// Frame returns.
func (t *Table) Frame() pong.FrameResult {
	for _, led := range t.LEDs {
		led.Tick()
	}
	t.Buzzer.Tick()
	res := t.Game.Frame()
	for _, in := range t.inputs {
		in.Tick()
	}
	return res
}
