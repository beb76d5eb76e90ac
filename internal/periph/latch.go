// Package periph implements the game's buttons, alerts and buzzer for
// terminals and headless runs.
//
// Terminal peripherals are frame driven: the platform calls Tick once per
// simulation frame, so every duration here is counted in frames.
package periph

// Latch is a button fed by key presses.
// Terminals report presses and auto-repeats but never releases, so each
// press holds the button down for a fixed number of frames. Auto-repeat
// keeps re-arming it while the key is held.
type Latch struct {
	hold      int
	remaining int
}

// NewLatch creates a released button that stays down for hold frames per press.
func NewLatch(hold int) *Latch {
	return &Latch{hold: max(1, hold)}
}

// Press records a key press.
func (l *Latch) Press() {
	l.remaining = l.hold
}

// Release drops the button immediately.
func (l *Latch) Release() {
	l.remaining = 0
}

// Pressed reports whether the button is down this frame.
func (l *Latch) Pressed() bool {
	return l.remaining > 0
}

// Tick ages the last press by one frame.
func (l *Latch) Tick() {
	if l.remaining > 0 {
		l.remaining--
	}
}
