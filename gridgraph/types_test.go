package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// TestTurnTables pins the two permutations and checks they are inverses.
func TestTurnTables(t *testing.T) {
	left := map[gridgraph.Direction]gridgraph.Direction{
		gridgraph.Up:    gridgraph.Left,
		gridgraph.Left:  gridgraph.Down,
		gridgraph.Down:  gridgraph.Right,
		gridgraph.Right: gridgraph.Up,
	}
	for _, d := range gridgraph.Directions {
		assert.Equal(t, left[d], d.TurnLeft(), "TurnLeft(%v)", d)
		assert.Equal(t, d, d.TurnLeft().TurnRight(), "TurnRight undoes TurnLeft for %v", d)
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight(), "four right turns from %v", d)
		dr, dc := d.Delta()
		assert.Equal(t, 1, abs(dr)+abs(dc), "Delta(%v) must be a unit step", d)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// TestParseDirection covers glyphs, names and rejection.
func TestParseDirection(t *testing.T) {
	cases := map[string]gridgraph.Direction{
		"^": gridgraph.Up, "north": gridgraph.Up, "Up": gridgraph.Up,
		"v": gridgraph.Down, "SOUTH": gridgraph.Down,
		"<": gridgraph.Left, "west": gridgraph.Left,
		">": gridgraph.Right, "east": gridgraph.Right, " right ": gridgraph.Right,
	}
	for in, want := range cases {
		got, err := gridgraph.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := gridgraph.ParseDirection("sideways")
	assert.True(t, errors.Is(err, gridgraph.ErrBadDirection))
}

// TestStateString checks the [col,row]glyph format and ordering.
func TestStateString(t *testing.T) {
	s := gridgraph.State{Cell: gridgraph.Cell{Row: 2, Col: 5}, Dir: gridgraph.Right}
	assert.Equal(t, "[5,2]>", s.String())

	a := gridgraph.State{Cell: gridgraph.Cell{Row: 1, Col: 9}, Dir: gridgraph.Right}
	b := gridgraph.State{Cell: gridgraph.Cell{Row: 2, Col: 0}, Dir: gridgraph.Up}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	c := gridgraph.State{Cell: a.Cell, Dir: gridgraph.Up}
	assert.True(t, c.Less(a))
}
