package threes

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-threes/internal/core"
	"github.com/vovakirdan/tui-threes/internal/games/threes/engine"
)

const (
	cellWidth  = 6 // Width of each tile box
	cellHeight = 3 // Height of each tile box
	hudHeight  = 4

	boardW = engine.Size*cellWidth + 2
	boardH = engine.Size*cellHeight + 2

	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 2
)

// TileColor returns the color a value is drawn in: 1s are blue, 2s are
// red and everything from 3 up is white.
func TileColor(v int) core.Color {
	switch {
	case v == 1:
		return core.ColorBlue
	case v == 2:
		return core.ColorRed
	case v >= 3:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.state == nil {
		return
	}

	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)

	if g.screenH > board.Bottom()+1 {
		dst.DrawTextCenteredColored(board.Bottom()+1, g.Controls(), core.ColorGray)
	}

	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score, move count and the pending tile.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextInRect(core.NewRect(board.X, 0, board.W, 1), "THREES", core.ColorYellow)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.state.Score()))
	moves := fmt.Sprintf("Moves: %d", g.state.Moves())
	dst.DrawText(board.Right()-runewidth.StringWidth(moves), 1, moves)

	next := g.state.Next()
	x := board.X + dst.DrawText(board.X, 2, "Next: ")
	dst.DrawTextColored(x, 2, strconv.Itoa(next), TileColor(next))

	if dir, ok := g.LastMove(); ok {
		last := "Last: " + dir.String()
		dst.DrawText(board.Right()-runewidth.StringWidth(last), 2, last)
	}
}

// renderBoard draws the frame and one box per tile.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBoxColored(board, core.ColorGray)

	grid := g.state.Grid()
	top := grid.Max()
	inner := board.Inset(1)

	for row := range engine.Size {
		for col := range engine.Size {
			cell := core.NewRect(inner.X+col*cellWidth, inner.Y+row*cellHeight, cellWidth, cellHeight)
			v := grid[row][col]
			if v == 0 {
				dst.DrawTextInRect(cell, "·", core.ColorGray)
				continue
			}

			color := TileColor(v)
			if v == top && v >= 3 {
				color = core.ColorYellow
			}
			dst.DrawBoxColored(cell, color)
			dst.DrawTextInRect(cell.Inset(1), strconv.Itoa(v), color)
		}
	}
}

// renderOverlays draws help and game over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		lines := []string{"HOW TO PLAY", "Slide with arrows", "1 + 2 makes 3", "Equal tiles double", "? to resume"}
		drawOverlay(dst, board, lines...)
	case g.state.GameOver():
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.state.Score())}
		if g.cfg.Controls.Undo && g.state.CanUndo() {
			lines = append(lines, "U to undo, R to restart")
		} else {
			lines = append(lines, "Press R to restart")
		}
		drawOverlay(dst, board, lines...)
	}
}

// drawOverlay draws a centered text box over area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, runewidth.StringWidth(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextInRect(core.NewRect(box.X, box.Y+1+i, box.W, 1), line, core.ColorDefault)
	}
}
