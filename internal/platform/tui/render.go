package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-quest/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// cellStyle builds a lipgloss style for a cell's color pair. Zero colors
// stay unstyled so the terminal default shows through.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !c.Fg.IsZero() {
		style = style.Foreground(lipgloss.Color(c.Fg.Hex()))
	}
	if !c.Bg.IsZero() {
		style = style.Background(lipgloss.Color(c.Bg.Hex()))
	}
	return style
}
