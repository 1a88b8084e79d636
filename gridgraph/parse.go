package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze text markers.
const (
	WallRune  = '#'
	StartRune = 'S'
	EndRune   = 'E'
)

// ParseMaze reads a rectangular maze where '#' is an obstacle, 'S' the
// start cell and 'E' the end cell; every other rune is open floor.
// Carriage returns and trailing blank lines are ignored.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrMissingEnd
// or ErrDuplicateMarker for malformed input, or the reader's error.
func ParseMaze(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	obstacles := make([][]bool, len(lines))
	var start, end *Cell
	for row, line := range lines {
		runes := []rune(line)
		obstacles[row] = make([]bool, len(runes))
		for col, ch := range runes {
			c := Cell{Row: row, Col: col}
			switch ch {
			case WallRune:
				obstacles[row][col] = true
			case StartRune:
				if start != nil {
					return nil, fmt.Errorf("%w: second %q at %v", ErrDuplicateMarker, ch, c)
				}
				start = &c
			case EndRune:
				if end != nil {
					return nil, fmt.Errorf("%w: second %q at %v", ErrDuplicateMarker, ch, c)
				}
				end = &c
			}
		}
	}

	g, err := NewGrid(obstacles)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if end == nil {
		return nil, ErrMissingEnd
	}

	return &Maze{Grid: g, Start: *start, End: *end}, nil
}

// ParseMazeString is ParseMaze over an in-memory string.
func ParseMazeString(s string) (*Maze, error) {
	return ParseMaze(strings.NewReader(s))
}
