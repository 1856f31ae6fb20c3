package core

// Game is the interface the platform drives. Games contain pure logic with
// no Bubble Tea dependency; the platform handles input mapping and display.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step applies one input frame. Turn-based games only change state
	// when the frame carries an action.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}

// Resizable is implemented by games that can adapt to a new screen size
// without losing progress.
type Resizable interface {
	Resize(w, h int)
}
