package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FollowParents rebuilds the start→end path from parent links recorded during
// the forward search (parent[v] == u means v was last improved from u).
// Returns ErrBrokenParentChain if the chain stops or loops before start.
// Complexity: O(L) for a path of L cells.
func FollowParents(parent map[gridgraph.Cell]gridgraph.Cell, start, end gridgraph.Cell) ([]gridgraph.Cell, error) {
	path := []gridgraph.Cell{end}
	for cur := end; cur != start; {
		prev, ok := parent[cur]
		if !ok || len(path) > len(parent) {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBrokenParentChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	reverse(path)

	return path, nil
}

// Descend walks from end towards start, each time stepping to the neighbor
// with the lowest recorded g-score (cells missing from gScore count as +inf;
// ties go to the first neighbor in +x, −x, +y, −y order). It stops when start
// is reached or after limit steps.
//
// This is a best-effort reconstruction: it does not follow real parent links.
// On a cap hit it returns the cells walked so far (ordered towards end, start
// absent) wrapped with ErrReconstructionTruncated. Repeated cells are kept once.
func Descend(g *gridgraph.Grid, gScore map[gridgraph.Cell]int, start, end gridgraph.Cell, limit int) ([]gridgraph.Cell, error) {
	if limit <= 0 {
		limit = DefaultReconstructionCap
	}
	seen := make(map[gridgraph.Cell]bool)
	var walk []gridgraph.Cell
	add := func(c gridgraph.Cell) {
		if !seen[c] {
			seen[c] = true
			walk = append(walk, c)
		}
	}

	cur := end
	steps := 0
	for cur != start && steps < limit {
		add(cur)
		best, bestG := cur, math.MaxInt
		for _, n := range g.Neighbors(cur) {
			v, ok := gScore[n]
			if !ok {
				v = math.MaxInt
			}
			if best == cur || v < bestG {
				best, bestG = n, v
			}
		}
		if best == cur {
			// isolated cell: nowhere to step
			break
		}
		cur = best
		steps++
	}
	if cur != start {
		reverse(walk)
		return walk, fmt.Errorf("%w: stopped at %v after %d steps", ErrReconstructionTruncated, cur, steps)
	}
	add(start)
	reverse(walk)

	return walk, nil
}

func reverse(s []gridgraph.Cell) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
