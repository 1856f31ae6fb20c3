// Package threes adapts the Threes engine to the platform's Game interface.
package threes

import (
	"math/rand"

	"github.com/vovakirdan/tui-threes/internal/config"
	"github.com/vovakirdan/tui-threes/internal/core"
	"github.com/vovakirdan/tui-threes/internal/games/threes/engine"
)

// Game implements the Threes sliding puzzle.
type Game struct {
	cfg   config.ThreesConfig
	rng   *rand.Rand
	seed  int64
	state *engine.State

	// Games started since construction, counting restarts.
	round int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	lastDir  engine.Direction
	lastMove bool
}

// New creates a game with the given board and tile configuration.
// The configuration is assumed to be validated.
func New(cfg config.ThreesConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "threes"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Threes"
}

// Reset starts a new game from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.round = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newBoard()
}

// newBoard deals a fresh board from the current RNG.
func (g *Game) newBoard() {
	g.state = engine.NewState(g.rng, g.cfg.Board.BaseCounts, g.cfg.Tile.Bias)
	g.round++
	g.lastMove = false
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies one input frame. Moves, undo and restart are ignored while
// the help overlay is shown or the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHelp) {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	changed := false
	switch {
	case in.Has(core.ActionRestart):
		g.newBoard()
		changed = true
	case in.Has(core.ActionUndo):
		changed = g.Undo()
	default:
		if dir, ok := directionFor(in); ok {
			changed = g.Move(dir)
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor returns the direction carried by an input frame.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// Move plays dir and reports whether the game changed.
//
// A move that cannot slide anything never reaches the engine, so the
// undo snapshot still points before the last real move. On a stuck board
// it raises game over instead.
func (g *Game) Move(dir engine.Direction) bool {
	if g.state.GameOver() {
		return false
	}

	if !g.state.Grid().CanShift(dir) {
		return g.state.CheckStuck()
	}

	g.state.Shift(g.rng, dir)
	g.lastDir = dir
	g.lastMove = true
	return true
}

// Undo reverts the last move. It reports false when undo is disabled or
// there is nothing to revert.
func (g *Game) Undo() bool {
	if !g.cfg.Controls.Undo || !g.state.CanUndo() {
		return false
	}
	g.state.ShiftBack()
	g.lastMove = false
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Board returns the current grid.
func (g *Game) Board() engine.Grid {
	return g.state.Grid()
}

// Next returns the pending tile value.
func (g *Game) Next() int {
	return g.state.Next()
}

// Moves returns the number of moves that placed a tile this round.
func (g *Game) Moves() int {
	return g.state.Moves()
}

// Seed returns the seed the game was reset with.
func (g *Game) Seed() int64 {
	return g.seed
}

// LastMove returns the direction of the last applied move, if any since
// the last undo or restart.
func (g *Game) LastMove() (engine.Direction, bool) {
	return g.lastDir, g.lastMove
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.cfg.Controls.Undo {
		return "Arrows/WASD: Move | U: Undo | R: Restart | ?: Help | Q: Quit"
	}
	return "Arrows/WASD: Move | R: Restart | ?: Help | Q: Quit"
}
