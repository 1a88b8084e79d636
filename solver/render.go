package solver

import "github.com/katalvlaran/mazepath/gridgraph"

// Overlay glyphs used by Render.
const (
	WallGlyph  = '#'
	FloorGlyph = '.'
	CellGlyph  = 'O'
)

// Render draws g one string per row with an overlay chosen by mode:
// RenderCells marks ans.Cells with CellGlyph, RenderPath marks one optimal
// route with the heading glyph of the first state visiting each cell.
// A nil or unreachable answer draws the bare grid.
func Render(g *gridgraph.Grid, ans *Answer, mode RenderMode) []string {
	if g == nil {
		return nil
	}

	canvas := make([][]rune, g.Rows)
	for r := range canvas {
		canvas[r] = make([]rune, g.Cols)
		for c := range canvas[r] {
			if g.Blocked(gridgraph.Cell{Row: r, Col: c}) {
				canvas[r][c] = WallGlyph
			} else {
				canvas[r][c] = FloorGlyph
			}
		}
	}

	if ans != nil && ans.Reachable {
		switch mode {
		case RenderCells:
			for _, cell := range ans.Cells {
				if g.InBounds(cell) {
					canvas[cell.Row][cell.Col] = CellGlyph
				}
			}
		case RenderPath:
			marked := make(map[gridgraph.Cell]bool)
			for _, s := range ans.Path() {
				if marked[s.Cell] || !g.InBounds(s.Cell) {
					continue
				}
				marked[s.Cell] = true
				canvas[s.Cell.Row][s.Cell.Col] = []rune(s.Dir.String())[0]
			}
		}
	}

	lines := make([]string, g.Rows)
	for r := range canvas {
		lines[r] = string(canvas[r])
	}

	return lines
}
