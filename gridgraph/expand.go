package gridgraph

// neighborOffsets is the enumeration order of orthogonal moves: +x, −x, +y, −y.
// Strategies inherit their tie-breaking from this order, so it must not change.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbors returns the in-bounds, non-obstacle orthogonal neighbors of c,
// in the order +x, −x, +y, −y. Visited filtering is left to the caller.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Manhattan returns |a.X−b.X| + |a.Y−b.Y|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
