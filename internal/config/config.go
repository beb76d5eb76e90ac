// Package config provides YAML-based game configuration loading and
// difficulty presets for the pong simulation.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for the simulation and its peripherals.
type PongConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Ball    BallConfig    `yaml:"ball"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Score   ScoreConfig   `yaml:"score"`
	Alerts  AlertsConfig  `yaml:"alerts"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
}

// FieldConfig defines the raster the game is played on.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the ball size and its serve position and velocity.
type BallConfig struct {
	Radius    int `yaml:"radius"`
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
	VelocityX int `yaml:"velocity_x"` // Pixels per frame
	VelocityY int `yaml:"velocity_y"` // Pixels per frame
}

// PaddlesConfig defines paddle geometry and movement.
type PaddlesConfig struct {
	HalfHeight int `yaml:"half_height"`
	Width      int `yaml:"width"`
	Speed      int `yaml:"speed"` // Pixels per frame per button
}

// ScoreConfig defines where and how the counters are drawn.
type ScoreConfig struct {
	Base  int       `yaml:"base"` // 2..16, two digits are shown
	Left  PointYAML `yaml:"left"`
	Right PointYAML `yaml:"right"`
}

// PointYAML is a pixel position.
type PointYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// AlertsConfig defines the LED flash pattern and buzzer tone length.
type AlertsConfig struct {
	FlashCycles   int `yaml:"flash_cycles"`
	FlashPeriodMS int `yaml:"flash_period_ms"` // Length of each on and each off phase
	BeepMS        int `yaml:"beep_ms"`
}

// InputConfig defines how keyboard presses become button states.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press keeps a button asserted
}

// RenderConfig selects outline or filled shapes.
type RenderConfig struct {
	Outline bool `yaml:"outline"`
}

// maxField keeps every in-play sum far from the int16 limits.
const maxField = 4096

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c PongConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Width <= maxField, "field.width must be in 1..%d, got %d", maxField, c.Field.Width)
	check(c.Field.Height > 0 && c.Field.Height <= maxField, "field.height must be in 1..%d, got %d", maxField, c.Field.Height)
	check(c.Ball.Radius >= 0, "ball.radius must not be negative, got %d", c.Ball.Radius)
	check(c.Ball.VelocityX != 0, "ball.velocity_x must not be zero")
	check(c.Ball.StartX >= 0 && c.Ball.StartX < c.Field.Width, "ball.start_x %d is outside the field", c.Ball.StartX)
	check(c.Ball.StartY >= c.Ball.Radius && c.Ball.StartY <= c.Field.Height-1-c.Ball.Radius,
		"ball.start_y %d leaves the ball outside the walls", c.Ball.StartY)
	// One mirror across a wall or a paddle face must land back inside the field.
	maxVY := c.Field.Height - 1 - 2*c.Ball.Radius
	check(abs(c.Ball.VelocityY) <= maxVY, "ball.velocity_y must be within ±%d, got %d", maxVY, c.Ball.VelocityY)
	maxVX := c.Field.Width - 1 - 2*(c.Paddles.Width+c.Ball.Radius)
	check(abs(c.Ball.VelocityX) <= maxVX, "ball.velocity_x must be within ±%d, got %d", maxVX, c.Ball.VelocityX)
	check(c.Paddles.HalfHeight > 0, "paddles.half_height must be positive, got %d", c.Paddles.HalfHeight)
	check(2*c.Paddles.HalfHeight <= c.Field.Height-1, "paddles.half_height %d does not fit the field", c.Paddles.HalfHeight)
	check(c.Paddles.Width > 0 && c.Paddles.Width < c.Field.Width/2, "paddles.width must be in 1..%d, got %d", c.Field.Width/2-1, c.Paddles.Width)
	check(c.Paddles.Speed > 0, "paddles.speed must be positive, got %d", c.Paddles.Speed)
	check(c.Score.Base >= 2 && c.Score.Base <= 16, "score.base must be in 2..16, got %d", c.Score.Base)
	check(c.Alerts.FlashCycles >= 0, "alerts.flash_cycles must not be negative")
	check(c.Alerts.FlashPeriodMS >= 0, "alerts.flash_period_ms must not be negative")
	check(c.Alerts.BeepMS >= 0, "alerts.beep_ms must not be negative")
	check(c.Input.HoldMS >= 0, "input.hold_ms must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid pong config: %w", errors.Join(errs...))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
