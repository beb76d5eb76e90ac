package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration.
// It matches defaults/pong.yaml and is used when the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  128,
			Height: 128,
		},
		Ball: BallConfig{
			Radius:    10,
			StartX:    64,
			StartY:    64,
			VelocityX: -3,
			VelocityY: -5,
		},
		Paddles: PaddlesConfig{
			HalfHeight: 8,
			Width:      3,
			Speed:      7,
		},
		Score: ScoreConfig{
			Base:  16,
			Left:  PointYAML{X: 34, Y: 20},
			Right: PointYAML{X: 72, Y: 20},
		},
		Alerts: AlertsConfig{
			FlashCycles:   4,
			FlashPeriodMS: 150,
			BeepMS:        200,
		},
		Input: InputConfig{
			HoldMS: 120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
