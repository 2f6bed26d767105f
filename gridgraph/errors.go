package gridgraph

import "errors"

var (
	// ErrInvalidConfiguration indicates a non-positive grid size or an obstacle outside the grid.
	ErrInvalidConfiguration = errors.New("gridgraph: invalid grid configuration")
	// ErrInvalidEndpoint indicates a start or end cell that is out of bounds or blocked.
	ErrInvalidEndpoint = errors.New("gridgraph: invalid endpoint")
)
