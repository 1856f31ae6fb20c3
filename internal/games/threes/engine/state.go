package engine

// State is a game in progress: the grid, the pending tile and one step of
// undo history.
type State struct {
	grid     Grid
	tile     Tile
	prevGrid Grid
	prevTile Tile
	gameOver bool
	moves    int
	canUndo  bool

	prevGameOver bool
	prevMoves    int
}

// FromBaseValues creates a game whose grid holds at least baseCounts[i]
// cells of value i. The sum of baseCounts must not exceed Cells.
func FromBaseValues(r Rand, baseCounts []int) *State {
	return NewState(r, baseCounts, DefaultBias)
}

// NewState is FromBaseValues with a custom next-tile bias.
func NewState(r Rand, baseCounts []int, bias float64) *State {
	s := &State{
		grid: RandGrid(r, baseCounts),
		tile: NewBiasedTile(r, bias),
	}
	s.prevGrid = s.grid
	s.prevTile = s.tile
	return s
}

// Shift plays a move. The state before the move becomes the undo snapshot.
// The pending tile only advances if it was placed.
func (s *State) Shift(r Rand, dir Direction) {
	s.prevGrid = s.grid
	s.prevTile = s.tile
	s.prevGameOver = s.gameOver
	s.prevMoves = s.moves
	s.canUndo = true

	grid, placed, gameOver := s.grid.Shift(r, dir, s.tile.Current())
	s.grid = grid
	s.gameOver = gameOver

	if placed {
		s.tile.Next(r, s.grid.Max())
		s.moves++
	}
}

// ShiftBack restores the snapshot taken by the last Shift. Calling it
// again without a Shift in between reapplies the same snapshot.
func (s *State) ShiftBack() {
	s.grid = s.prevGrid
	s.tile = s.prevTile
	s.gameOver = s.prevGameOver
	s.moves = s.prevMoves
	s.canUndo = false
}

// CheckStuck raises the game-over flag if the board is full and nothing
// can combine. Unlike Shift it takes no snapshot, so undo still returns
// to the state before the last move.
func (s *State) CheckStuck() bool {
	if s.grid.IsTerminal() {
		s.gameOver = true
	}
	return s.gameOver
}

// Grid returns a copy of the board.
func (s *State) Grid() Grid {
	return s.grid
}

// Cell returns the value at row, col.
func (s *State) Cell(row, col int) int {
	return s.grid[row][col]
}

// Next returns the pending tile value.
func (s *State) Next() int {
	return s.tile.Current()
}

// GameOver reports whether the last move found the board stuck.
func (s *State) GameOver() bool {
	return s.gameOver
}

// Moves returns the number of moves that placed a tile.
func (s *State) Moves() int {
	return s.moves
}

// CanUndo reports whether a Shift has happened since creation or the last
// ShiftBack.
func (s *State) CanUndo() bool {
	return s.canUndo
}

// Score sums 3^(rank-1) over every cell holding 3 or more.
func (s *State) Score() uint64 {
	series := s.tile.series
	var total uint64
	for y := range Size {
		for x := range Size {
			v := s.grid[y][x]
			if v < seedTotal {
				continue
			}
			total += upow(3, series.N(v)-1)
		}
	}
	return total
}

func upow(base uint64, exp int) uint64 {
	result := uint64(1)
	for range exp {
		result *= base
	}
	return result
}
