package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrogger loads the game configuration.
// Search order: customPath -> ~/.frogger/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default.
// Files may be partial; unset keys keep their default values.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseFrogger(data)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("frogger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFrogger(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "frogger.yaml")); err == nil {
		if cfg, err := ParseFrogger(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFrogger(defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFrogger decodes YAML over the default configuration and validates the result.
func ParseFrogger(data []byte) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", "configs", filename)
}
