package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMissingStart indicates the maze text has no 'S' marker.
	ErrMissingStart = errors.New("gridgraph: maze has no start marker")
	// ErrMissingEnd indicates the maze text has no 'E' marker.
	ErrMissingEnd = errors.New("gridgraph: maze has no end marker")
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = errors.New("gridgraph: start or end marker appears more than once")
	// ErrBadDirection indicates a direction name that cannot be parsed.
	ErrBadDirection = errors.New("gridgraph: unknown direction")
)
