// Package bfs finds a fewest-moves route across a gridgraph.Grid with
// breadth-first search, recording a per-step trace.
//
// What
//
//   - FIFO frontier of entries (cost, cell, path-so-far).
//   - A popped cell already visited is skipped; otherwise it is marked
//     visited and (|visited|, cost) is appended to the trace.
//   - The search stops the moment the end cell is popped; the entry's
//     path-so-far plus the end cell is the result path.
//   - Neighbors are enqueued in the grid's fixed order (+x, −x, +y, −y), so the
//     trace and the path are reproducible bit for bit.
//
// Why
//
//   - With unit moves, the first time the end cell is popped its cost is the
//     shortest-path distance.
//
// Complexity (N = grid side)
//
//   - Time:   O(N²·4) pops.
//   - Memory: O(N²·L) where L is the carried path length (siblings share one copy).
//
// Usage
//
//	res, err := bfs.Search(g, start, end)
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation, ErrInvalidEndpoint, ctx or hook errors
//	}
//	if !res.Found {
//	    // no path: res.Trace still lists every reachable cell
//	}
package bfs
