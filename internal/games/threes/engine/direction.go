package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Dimension selects whether a move operates on rows or columns.
type Dimension int

const (
	DimRow Dimension = iota
	DimCol
)

// Dimension returns the kind of line the move slides along.
func (d Direction) Dimension() Dimension {
	if d == DirUp || d == DirDown {
		return DimCol
	}
	return DimRow
}

// reversed reports whether lines are read back to front so that index 0
// is the edge tiles move towards.
func (d Direction) reversed() bool {
	return d == DirDown || d == DirRight
}

// entryIndex is the index of the perpendicular line on the edge tiles move
// away from. Forced insertions land there.
func (d Direction) entryIndex() int {
	if d.reversed() {
		return 0
	}
	return Size - 1
}
