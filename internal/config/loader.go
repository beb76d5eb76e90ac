package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPong loads the pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently.
func LoadPong(customPath string) (PongConfig, error) {
	cfg, err := decode(DefaultPongConfig(), defaultPongYAML)
	if err != nil {
		cfg = DefaultPongConfig()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		parsed, err := decode(cfg, data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return parsed, parsed.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, err := decode(cfg, data); err == nil {
				return parsed, parsed.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if parsed, err := decode(cfg, data); err == nil {
			return parsed, parsed.Validate()
		}
	}

	return cfg, cfg.Validate()
}

// decode unmarshals data on top of base.
func decode(base PongConfig, data []byte) (PongConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// Marshal renders a configuration as YAML, e.g. for `pong sim --print-config`.
func Marshal(cfg PongConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
