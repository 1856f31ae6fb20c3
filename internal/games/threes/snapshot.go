package threes

import "github.com/vovakirdan/tui-threes/internal/games/threes/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateHelp        GameStateType = "help"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Seed    int64
	Round   int // 1 for the first board, +1 per restart
	Moves   int
	Score   uint64
	Board   engine.Grid
	Next    int
	MaxTile int
	CanUndo bool
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StateHelp
	case g.state.GameOver():
		state = StateGameOver
	}

	grid := g.state.Grid()
	return Snapshot{
		Seed:    g.seed,
		Round:   g.round,
		Moves:   g.state.Moves(),
		Score:   g.state.Score(),
		Board:   grid,
		Next:    g.state.Next(),
		MaxTile: grid.Max(),
		CanUndo: g.cfg.Controls.Undo && g.state.CanUndo(),
		State:   state,
	}
}
