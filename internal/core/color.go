package core

// Color is a foreground color for a screen cell. The platform decides how
// each one looks in the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray          // frames, empty cells, hints
	ColorBlue          // ones
	ColorRed           // twos
	ColorWhite         // threes and up
	ColorYellow        // title and the highest tile
)
