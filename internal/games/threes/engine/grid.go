package engine

// Size is the board dimension.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// Merge thresholds for the seed values 1 and 2: a 1 and a 2 sum to 3,
// anything above 2 only combines with an equal value.
const (
	seedHigh  = 2
	seedTotal = 3
)

// Grid is the 4x4 board indexed [row][col]. Zero is an empty cell.
// Grid is an array, so assignment copies it.
type Grid [Size][Size]int

// RandGrid fills a grid with category indices drawn from buckets padded
// to the cell count. baseCounts[i] is the minimum number of cells holding
// value i; the sum of baseCounts must not exceed Cells.
func RandGrid(r Rand, baseCounts []int) Grid {
	var g Grid
	for i, v := range NewBuckets(r, baseCounts, Cells).Draw(r) {
		g[i/Size][i%Size] = v
	}
	return g
}

// Line returns row or column i.
func (g Grid) Line(dim Dimension, i int) [Size]int {
	if dim == DimRow {
		return g[i]
	}
	var line [Size]int
	for j := range Size {
		line[j] = g[j][i]
	}
	return line
}

// setLine writes row or column i.
func (g *Grid) setLine(dim Dimension, i int, line [Size]int) {
	if dim == DimRow {
		g[i] = line
		return
	}
	for j := range Size {
		g[j][i] = line[j]
	}
}

// Shift moves every line one step in dir and returns the resulting grid.
//
// The first line (in row/column order) whose move combined two tiles
// receives pending in the cell it vacated. If no line combined but
// something moved, pending goes to a random empty cell on the entry edge.
// placed reports whether pending landed anywhere; gameOver is only
// evaluated when it did not. A move that changes nothing returns g as is.
func (g Grid) Shift(r Rand, dir Direction, pending int) (next Grid, placed, gameOver bool) {
	next = g
	dim := dir.Dimension()
	moved := false

	for i := range Size {
		line := g.Line(dim, i)
		if dir.reversed() {
			line = reverseLine(line)
		}

		shifted, changed, combined := shiftLine(line)
		if !changed {
			continue
		}
		moved = true

		if combined && !placed {
			shifted[Size-1] = pending
			placed = true
		}

		if dir.reversed() {
			shifted = reverseLine(shifted)
		}
		next.setLine(dim, i, shifted)
	}

	if !placed && moved {
		placed = next.insert(r, dir, pending)
	}

	if placed {
		return next, true, false
	}
	return next, false, next.IsTerminal()
}

// CanShift reports whether a move in dir would slide or combine anything.
// It consumes no randomness.
func (g Grid) CanShift(dir Direction) bool {
	dim := dir.Dimension()
	for i := range Size {
		line := g.Line(dim, i)
		if dir.reversed() {
			line = reverseLine(line)
		}
		if _, changed, _ := shiftLine(line); changed {
			return true
		}
	}
	return false
}

// insert puts value into a random empty cell of the line on dir's entry
// edge. Returns false if that line is full.
func (g *Grid) insert(r Rand, dir Direction, value int) bool {
	dim := DimCol
	if dir.Dimension() == DimCol {
		dim = DimRow
	}
	idx := dir.entryIndex()

	line := g.Line(dim, idx)
	var empty []int
	for j, v := range line {
		if v == 0 {
			empty = append(empty, j)
		}
	}
	if len(empty) == 0 {
		return false
	}

	line[empty[r.Intn(len(empty))]] = value
	g.setLine(dim, idx, line)
	return true
}

// shiftLine moves a line one step towards index 0 and applies at most one
// combine. The last cell is left empty whenever the line changed.
func shiftLine(line [Size]int) (result [Size]int, changed, combined bool) {
	result = line

	for i := 0; i < Size-1; i++ {
		lead, trail := result[i], result[i+1]

		switch {
		case canCombine(lead, trail):
			// Equal tiles double and 1+2 gives 3; both are the sum.
			result[i] = lead + trail
			copy(result[i+1:], result[i+2:])
			result[Size-1] = 0
			return result, true, true
		case lead == 0:
			// Gap close: the trailing tile steps forward and scanning
			// continues from the cell it left.
			result[i] = trail
			result[i+1] = 0
		}
	}

	return result, result != line, false
}

// canCombine reports whether two adjacent values merge.
func canCombine(a, b int) bool {
	if a == b && a > seedHigh {
		return true
	}
	return a+b == seedTotal && a < seedTotal && b < seedTotal
}

// reverseLine reverses a line.
func reverseLine(line [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for y := range Size {
		for x := range Size {
			if g[y][x] == 0 {
				n++
			}
		}
	}
	return n
}

// HasPossibleMerge returns true if any adjacent pair in a row or column
// can combine.
func (g Grid) HasPossibleMerge() bool {
	for a := range Size {
		for b := range Size - 1 {
			if canCombine(g[a][b], g[a][b+1]) || canCombine(g[b][a], g[b+1][a]) {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true if the grid is full and nothing can combine.
func (g Grid) IsTerminal() bool {
	return g.EmptyCount() == 0 && !g.HasPossibleMerge()
}

// Max returns the highest value on the grid.
func (g Grid) Max() int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}
