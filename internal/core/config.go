package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform reads after every step.
type GameState struct {
	Level    int  // Current level, 1-indexed
	Lives    int  // Remaining lives
	Moves    int  // Remaining move budget for the level
	Blocked  bool // A notification is waiting for acknowledgement
	Finished bool // The run ended in victory; only restart is accepted
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State    GameState
	Accepted bool // Whether the frame changed the game
}
