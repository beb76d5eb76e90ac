package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Button is a digital input polled once per frame.
// Debouncing is the implementation's job.
type Button interface {
	Pressed() bool
}

// Alert is a visual indication tied to one player, shown when a round ends.
// Implementations may block for the length of the indication.
type Alert interface {
	Flash()
}

// Buzzer emits a short tone on every ball contact. Fire and forget.
type Buzzer interface {
	Beep()
}

// Display is the drawing surface. Draws between Begin and Commit form one
// frame; Rollback abandons the frame.
type Display interface {
	Begin()
	Commit()
	Rollback()
	DrawDisc(x, y, r core.Coord)
	DrawCircle(x, y, r core.Coord)
	DrawBox(x, y, w, h core.Coord)
	DrawFrame(x, y, w, h core.Coord)
	DrawStr(x, y core.Coord, s string)
}

// Controls are the up and down buttons of one paddle.
// A paddle whose Controls have no buttons is driven by the CPU.
type Controls struct {
	Up   Button
	Down Button
}

// Human reports whether a person drives this paddle.
func (c Controls) Human() bool {
	return c.Up != nil || c.Down != nil
}

// Peripherals bundles every collaborator the simulation talks to.
type Peripherals struct {
	Display  Display
	Buzzer   Buzzer
	Alerts   [2]Alert    // Indexed by the player that won the round
	Controls [2]Controls // Leave Controls[Right] empty for a CPU opponent
}

// pressed treats a missing button as released.
func pressed(b Button) bool {
	return b != nil && b.Pressed()
}

type silentBuzzer struct{}

func (silentBuzzer) Beep() {}

type darkAlert struct{}

func (darkAlert) Flash() {}
