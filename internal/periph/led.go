package periph

// LED is a flashing indicator. Flash starts a pattern of on/off cycles and
// returns at once; the platform advances it with Tick and draws Lit.
type LED struct {
	Name string

	cycles int
	period int // Frames per on phase and per off phase
	frame  int // Frames left in the running pattern
	count  int
}

// NewLED creates an LED that blinks cycles times, each phase period frames long.
func NewLED(name string, cycles, period int) *LED {
	return &LED{Name: name, cycles: max(0, cycles), period: max(1, period)}
}

// Flash (re)starts the blink pattern.
func (l *LED) Flash() {
	l.frame = l.Duration()
	l.count++
}

// Duration returns the length of one full pattern in frames.
func (l *LED) Duration() int {
	return 2 * l.cycles * l.period
}

// Busy reports whether a pattern is running.
func (l *LED) Busy() bool {
	return l.frame > 0
}

// Lit reports whether the LED is on this frame.
// Each cycle starts with its on phase.
func (l *LED) Lit() bool {
	if l.frame <= 0 {
		return false
	}
	elapsed := l.Duration() - l.frame
	return (elapsed/l.period)%2 == 0
}

// Flashes returns how many times Flash was called.
func (l *LED) Flashes() int {
	return l.count
}

// Tick advances the pattern by one frame.
func (l *LED) Tick() {
	if l.frame > 0 {
		l.frame--
	}
}
