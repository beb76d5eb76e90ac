package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Ball.VelocityX = 0
	cfg.Paddles.Speed = 0
	cfg.Score.Base = 20

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected an error")
	}
	for _, field := range []string{"ball.velocity_x", "paddles.speed", "score.base"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestValidatePaddleMustFit(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Paddles.HalfHeight = 64

	if err := cfg.Validate(); err == nil {
		t.Error("a paddle taller than the field should be rejected")
	}
}

func TestValidateVelocityLimits(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy int
		field  string // Field named in the error, empty if valid
	}{
		{"defaults", -3, -5, ""},
		{"fastest vertical", -3, 107, ""},
		{"vertical too fast", -3, 300, "ball.velocity_y"},
		{"vertical too fast upward", -3, -108, "ball.velocity_y"},
		{"fastest horizontal", 101, -5, ""},
		{"horizontal too fast", -102, -5, "ball.velocity_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			cfg.Ball.VelocityX = tt.vx
			cfg.Ball.VelocityY = tt.vy

			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %v, expected an error naming %s", err, tt.field)
			}
		})
	}
}

func TestLoadPongCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("paddles:\n  speed: 4\nrender:\n  outline: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Paddles.Speed != 4 {
		t.Errorf("Paddles.Speed = %d, expected 4", cfg.Paddles.Speed)
	}
	if !cfg.Render.Outline {
		t.Error("Render.Outline should be true")
	}
	// Untouched keys keep their defaults
	if cfg.Paddles.HalfHeight != 8 || cfg.Ball.Radius != 10 {
		t.Errorf("defaults lost: half_height=%d radius=%d", cfg.Paddles.HalfHeight, cfg.Ball.Radius)
	}
}

func TestLoadPongCustomPathErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(path); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(invalid); err == nil {
		t.Error("invalid custom config should fail validation")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultPongConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "half_height: 8") {
		t.Errorf("Marshal() output missing yaml keys:\n%s", data)
	}
}

func TestApplyPongPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		halfHeight int
		speed      int
	}{
		{DifficultyEasy, 12, 6},
		{DifficultyNormal, 8, 7},
		{DifficultyHard, 6, 8},
		{"", 8, 7},
	}

	for _, tc := range tests {
		cfg := DefaultPongConfig()
		ApplyPongPreset(&cfg, tc.preset)
		if cfg.Paddles.HalfHeight != tc.halfHeight || cfg.Paddles.Speed != tc.speed {
			t.Errorf("preset %q: half_height=%d speed=%d, expected %d/%d",
				tc.preset, cfg.Paddles.HalfHeight, cfg.Paddles.Speed, tc.halfHeight, tc.speed)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid config: %v", tc.preset, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}
