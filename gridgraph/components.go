package gridgraph

// Reachable returns every passable cell connected to from, in breadth-first
// discovery order (from first). Returns nil if from is not passable.
//
// Time:   O(N²·4).
// Memory: O(N²) for seen flags and output.
func (g *Grid) Reachable(from Cell) []Cell {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, g.Len())
	seen[g.Index(from)] = true
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.Index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Connected reports whether a and b lie in the same passable component.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Passable(b) {
		return false
	}
	for _, c := range g.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}
