// Package config provides YAML-based configuration loading for Resource Rush.
package config

// RushConfig contains all configuration for the game.
type RushConfig struct {
	Session   SessionConfig   `yaml:"session"`
	Placement PlacementConfig `yaml:"placement"`
	Messages  Messages        `yaml:"messages"`
	Share     ShareConfig     `yaml:"share"`
}

// SessionConfig defines the run structure.
type SessionConfig struct {
	MaxLevels  int `yaml:"max_levels"`
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
}

// PlacementConfig defines the level generator's limits.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random samples per placed item before skipping it
}

// Notice is the text of one acknowledgement popup.
type Notice struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Button  string `yaml:"button"`
}

// Messages holds the popup texts. LevelComplete.Message receives the new
// level number and Retry.Message the remaining lives as %d.
type Messages struct {
	Mine          Notice `yaml:"mine"`
	Penalty       Notice `yaml:"penalty"`
	LevelComplete Notice `yaml:"level_complete"`
	Victory       Notice `yaml:"victory"`
	Retry         Notice `yaml:"retry"`
	GameOver      Notice `yaml:"game_over"`
}

// ShareConfig is the static payload handed to the sharing collaborator on victory.
type ShareConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	Text    string `yaml:"text"`
	URL     string `yaml:"url"`
}
