package core

import "time"

// RuntimeConfig contains settings the platform passes to a game session.
type RuntimeConfig struct {
	TickRate int // Simulation frames per second (default 30)
	Players  int // Human players: 1 plays the CPU, 2 share the keyboard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 30,
		Players:  1,
	}
}

// FrameDuration returns the wall-clock length of one frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// Frames converts a wall-clock duration into the nearest whole number of
// frames. Any non-zero duration lasts at least one frame.
func (c RuntimeConfig) Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	frame := c.FrameDuration()
	return max(1, int((d+frame/2)/frame))
}
