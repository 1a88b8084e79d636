// Package gridgraph provides an immutable obstacle grid that the
// oriented search walks one cell at a time. It supports:
//
//   - Construction from a boolean obstacle matrix (deep-copied)
//   - Bounds and obstacle checks, single-step moves per Direction
//   - Parsing of '#'/'S'/'E' maze text
//   - 4-connected open regions for cheap reachability checks
package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular obstacle matrix,
// where obstacles[row][col] is true when the cell cannot be occupied.
// The input is copied; later changes to it do not affect the grid.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(obstacles [][]bool) (*Grid, error) {
	if len(obstacles) == 0 || len(obstacles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(obstacles), len(obstacles[0])
	for _, row := range obstacles {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	blocked := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		copy(blocked[r*cols:(r+1)*cols], obstacles[r])
	}

	return &Grid{Rows: rows, Cols: cols, blocked: blocked}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Blocked reports whether c is an obstacle. Cells outside the grid
// are treated as blocked.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.blocked[g.Index(c)]
}

// Open reports whether c is inside the grid and free.
func (g *Grid) Open(c Cell) bool {
	return !g.Blocked(c)
}

// Step returns the cell adjacent to c in direction d, and whether
// moving there is legal (in bounds and not an obstacle).
// Complexity: O(1).
func (g *Grid) Step(c Cell, d Direction) (Cell, bool) {
	dr, dc := d.Delta()
	next := Cell{Row: c.Row + dr, Col: c.Col + dc}

	return next, g.Open(next)
}

// OpenCount returns the number of free cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}

	return n
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}
