package periph

import "io"

// bell is the terminal BEL control character.
const bell = "\a"

// Buzzer shows a tone indicator for a few frames after each Beep.
// If Bell is set, every beep also writes a BEL there.
type Buzzer struct {
	Bell io.Writer

	length    int
	remaining int
	beeps     uint64
}

// NewBuzzer creates a buzzer whose tone lasts length frames.
func NewBuzzer(length int) *Buzzer {
	return &Buzzer{length: max(1, length)}
}

// Beep starts a tone. It never waits for the previous one to finish.
func (b *Buzzer) Beep() {
	b.remaining = b.length
	b.beeps++
	if b.Bell != nil {
		//nolint:errcheck // Best-effort, a missed bell is harmless
		io.WriteString(b.Bell, bell)
	}
}

// Sounding reports whether a tone is playing this frame.
func (b *Buzzer) Sounding() bool {
	return b.remaining > 0
}

// Beeps returns the number of tones requested so far.
func (b *Buzzer) Beeps() uint64 {
	return b.beeps
}

// Tick advances the tone by one frame.
func (b *Buzzer) Tick() {
	if b.remaining > 0 {
		b.remaining--
	}
}
