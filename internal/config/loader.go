package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MaxLevelsLimit bounds session.max_levels.
const MaxLevelsLimit = 50

// Load loads the game configuration.
// Search order: customPath -> ~/.rush/configs/rush.yaml -> ./configs/rush.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped.
func Load(customPath string) (RushConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RushConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RushConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rush.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRushYAML)
	if err != nil {
		return DefaultRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RushConfig, error) {
	cfg := DefaultRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RushConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RushConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c RushConfig) Validate() error {
	if c.Session.MaxLevels < 1 || c.Session.MaxLevels > MaxLevelsLimit {
		return fmt.Errorf("config: session.max_levels must be between 1 and %d, got %d",
			MaxLevelsLimit, c.Session.MaxLevels)
	}
	if c.Session.Lives < 1 {
		return fmt.Errorf("config: session.lives must be positive, got %d", c.Session.Lives)
	}
	if c.Session.StartLevel < 1 || c.Session.StartLevel > c.Session.MaxLevels {
		return fmt.Errorf("config: session.start_level must be between 1 and %d, got %d",
			c.Session.MaxLevels, c.Session.StartLevel)
	}
	if c.Placement.MaxAttempts < 1 {
		return errors.New("config: placement.max_attempts must be positive")
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rush", "configs", filename)
}
