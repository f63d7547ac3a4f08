package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Session: SessionConfig{
			MaxLevels:  10,
			Lives:      3,
			StartLevel: 1,
		},
		Placement: PlacementConfig{
			MaxAttempts: 50,
		},
		Messages: Messages{
			Mine: Notice{
				Title:   "Hidden Mine!",
				Message: "You triggered a hidden mine! Lost 2 extra moves!",
				Button:  "OK",
			},
			Penalty: Notice{
				Title:   "Oops!",
				Message: "You hit an icy patch! Lost an extra move!",
				Button:  "OK",
			},
			LevelComplete: Notice{
				Title:   "Level Complete!",
				Message: "Great job! Ready for Level %d?",
				Button:  "Next Level",
			},
			Victory: Notice{
				Title:   "Congratulations!",
				Message: "You saved Christmas! Share your achievement with friends!",
				Button:  "Share",
			},
			Retry: Notice{
				Title:   "Out of Moves!",
				Message: "%d lives remaining. Try again!",
				Button:  "Retry Level",
			},
			GameOver: Notice{
				Title:   "Game Over",
				Message: "No more lives! Starting over from Level 1",
				Button:  "Start Over",
			},
		},
		Share: ShareConfig{
			Enabled: true,
			Title:   "Santa's Resource Rush",
			Text:    "Check out this new Christmas game! I saved Christmas, can you do it too?",
			URL:     "https://github.com/vovakirdan/resource-rush",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRushYAML
}
