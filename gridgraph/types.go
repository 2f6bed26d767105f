// Package gridgraph defines the cell, configuration and grid types
// shared by every search strategy of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// DefaultSize is the side length of the reference grid.
const DefaultSize = 20

// MaxSize caps the side length so that N² cells always fit in memory and in an int.
const MaxSize = 1 << 12

// Cell is a single grid coordinate. Equality is by (X, Y).
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders cells by X, then Y.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Config describes a grid before validation.
// Obstacles may contain duplicates; they collapse into one blocked cell.
type Config struct {
	Size      int    `yaml:"size"`
	Obstacles []Cell `yaml:"obstacles"`
}

// referenceObstacles is the literal layout of the reference sandbox.
// (3,2) appears twice in it, so 37 entries describe 36 blocked cells.
var referenceObstacles = []Cell{
	{1, 2}, {0, 2}, {3, 2}, {4, 2}, {3, 2}, {6, 2}, {7, 2},
	{7, 3}, {0, 4}, {7, 5}, {7, 6}, {0, 6}, {5, 9}, {4, 6},
	{3, 6}, {2, 6}, {2, 8}, {2, 4}, {2, 3}, {0, 3}, {12, 9},
	{2, 17}, {0, 16}, {1, 19}, {3, 17}, {12, 19}, {5, 0}, {7, 1},
	{14, 11}, {11, 14}, {12, 12}, {5, 17}, {6, 15}, {9, 11},
	{15, 8}, {16, 6}, {12, 18},
}

// ReferenceObstacles returns the unique blocked cells of the reference layout,
// in first-seen order.
func ReferenceObstacles() []Cell {
	seen := make(map[Cell]struct{}, len(referenceObstacles))
	out := make([]Cell, 0, len(referenceObstacles))
	for _, c := range referenceObstacles {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// DefaultConfig returns the 20×20 reference layout.
func DefaultConfig() Config {
	return Config{
		Size:      DefaultSize,
		Obstacles: ReferenceObstacles(),
	}
}

// Grid is a validated, immutable square grid.
// blocked[y*size+x] is true for obstacle cells.
type Grid struct {
	size     int
	blocked  []bool
	nBlocked int
}
