package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic play.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    uint64 // Current score
	GameOver bool   // Whether the board is stuck
	Paused   bool   // Whether the game is paused (help overlay)
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
	// Changed is false when the input had no effect on the game,
	// e.g. a move into a wall or an undo with no history.
	Changed bool
}
