// Package gridgraph provides the grid model used by the search strategies:
// bounds and obstacle queries, orthogonal neighbor expansion, and the
// Manhattan heuristic.
package gridgraph

import (
	"fmt"
	"sort"
)

// NewGrid validates cfg and builds an immutable Grid from it.
// Returns ErrInvalidConfiguration if cfg.Size is outside [1, MaxSize] or any obstacle lies outside
// [0,Size)×[0,Size). Duplicate obstacles are accepted and counted once.
// Complexity: O(N² + K) time, O(N²) memory.
func NewGrid(cfg Config) (*Grid, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfiguration, cfg.Size)
	}
	if cfg.Size > MaxSize {
		return nil, fmt.Errorf("%w: size %d exceeds maximum %d", ErrInvalidConfiguration, cfg.Size, MaxSize)
	}
	g := &Grid{
		size:    cfg.Size,
		blocked: make([]bool, cfg.Size*cfg.Size),
	}
	for _, c := range cfg.Obstacles {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: obstacle %v outside %dx%d grid", ErrInvalidConfiguration, c, cfg.Size, cfg.Size)
		}
		i := g.Index(c)
		if !g.blocked[i] {
			g.blocked[i] = true
			g.nBlocked++
		}
	}

	return g, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, N².
func (g *Grid) Len() int { return g.size * g.size }

// InBounds reports whether 0 ≤ c.X, c.Y < N.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// IsObstacle reports whether c is a blocked cell. Cells outside the grid are not obstacles.
// Complexity: O(1).
func (g *Grid) IsObstacle(c Cell) bool {
	return g.InBounds(c) && g.blocked[g.Index(c)]
}

// Passable reports whether c is in bounds and not blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.Index(c)]
}

// Obstacles returns the blocked cells sorted by Cell.Less.
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, g.nBlocked)
	for i, b := range g.blocked {
		if b {
			out = append(out, g.Coordinate(i))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Corners returns the top-left (0,0) and bottom-right (N−1,N−1) cells,
// the fixed start and end of the sandbox.
func (g *Grid) Corners() (start, end Cell) {
	return Cell{0, 0}, Cell{g.size - 1, g.size - 1}
}

// ValidateEndpoints returns ErrInvalidEndpoint if start or end is out of bounds
// or blocked.
func (g *Grid) ValidateEndpoints(start, end Cell) error {
	for _, c := range [2]Cell{start, end} {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidEndpoint, c, g.size, g.size)
		}
		if g.blocked[g.Index(c)] {
			return fmt.Errorf("%w: %v is an obstacle", ErrInvalidEndpoint, c)
		}
	}

	return nil
}

// Index maps c to its row-major index y*N + x. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.size, Y: idx / g.size}
}
