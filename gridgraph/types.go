// Package gridgraph defines the cell, direction and state types
// shared by the oriented search and the path reconstructor.
package gridgraph

import (
	"fmt"
	"strings"
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as [col,row].
func (c Cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.Col, c.Row)
}

// Direction is one of the four compass headings.
type Direction uint8

const (
	// Up points to decreasing rows.
	Up Direction = iota
	// Down points to increasing rows.
	Down
	// Left points to decreasing columns.
	Left
	// Right points to increasing columns.
	Right
)

// Directions lists every heading in a fixed order. Callers iterate it
// whenever the result must not depend on map ordering.
var Directions = [4]Direction{Up, Down, Left, Right}

// TurnLeft rotates a quarter turn counter-clockwise: Up→Left→Down→Right→Up.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight rotates a quarter turn clockwise: Up→Right→Down→Left→Up.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// Delta returns the row and column offset of one step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns the arrow glyph used when rendering paths.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	}

	return "?"
}

// ParseDirection accepts a glyph (^ v < >), a relative name (up, down,
// left, right) or a compass name (north, south, west, east).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "^", "up", "north", "n":
		return Up, nil
	case "v", "down", "south", "s":
		return Down, nil
	case "<", "left", "west", "w":
		return Left, nil
	case ">", "right", "east", "e":
		return Right, nil
	}

	return Up, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// State is a cell together with the heading occupied there.
// It is the vertex type of the implicit search graph.
type State struct {
	Cell Cell
	Dir  Direction
}

// String renders the state as [col,row]>.
func (s State) String() string {
	return s.Cell.String() + s.Dir.String()
}

// Less orders states by row, column, then direction.
func (s State) Less(o State) bool {
	if s.Cell.Row != o.Cell.Row {
		return s.Cell.Row < o.Cell.Row
	}
	if s.Cell.Col != o.Cell.Col {
		return s.Cell.Col < o.Cell.Col
	}

	return s.Dir < o.Dir
}

// Grid is an immutable rectangular obstacle map.
// blocked is stored row-major: blocked[row*Cols+col].
type Grid struct {
	Rows, Cols int
	blocked    []bool
}

// Maze couples a grid with the start and end markers parsed from text.
type Maze struct {
	Grid  *Grid
	Start Cell
	End   Cell
}
