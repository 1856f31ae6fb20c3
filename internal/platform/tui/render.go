package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-threes/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// Style returns the lipgloss style for c, falling back to the default style.
func Style(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run to keep the
// number of escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				// Rune 0 is the second column of a wide rune.
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
