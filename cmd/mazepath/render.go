package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazepath/solver"
)

// Overlay palette
var (
	wallColor  = lipgloss.Color("#2a3850") // muted dark blue
	cellColor  = lipgloss.Color("#8BC34A") // lime green
	routeColor = lipgloss.Color("#2196F3") // blue
)

// colorize styles rendered overlay lines for w. Writers that are not a
// colour terminal receive the plain text.
func colorize(w io.Writer, lines []string) string {
	r := lipgloss.NewRenderer(w)
	wall := r.NewStyle().Foreground(wallColor)
	cell := r.NewStyle().Foreground(cellColor).Bold(true)
	route := r.NewStyle().Foreground(routeColor).Bold(true)

	var b strings.Builder
	for _, line := range lines {
		for _, ch := range line {
			s := string(ch)
			switch ch {
			case solver.WallGlyph:
				b.WriteString(wall.Render(s))
			case solver.FloorGlyph:
				b.WriteString(s)
			case solver.CellGlyph:
				b.WriteString(cell.Render(s))
			default:
				b.WriteString(route.Render(s))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
