package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// Bigger paddles are easier to place in front of the ball; the CPU opponent
// moves at paddle speed, so a faster paddle also means a stronger opponent.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddles.HalfHeight = 12
		cfg.Paddles.Speed = 6
	case DifficultyNormal:
		cfg.Paddles.HalfHeight = 8
		cfg.Paddles.Speed = 7
	case DifficultyHard:
		cfg.Paddles.HalfHeight = 6
		cfg.Paddles.Speed = 8
	}
}
