// Package astar provides A* search over a gridgraph.Grid with the Manhattan
// heuristic.
//
// The open set is an indexed min-heap keyed by f = g + h; a cheaper route to
// an open cell updates it in place (decrease-key via heap.Fix). Each
// improvement records the parent cell, and the path is rebuilt by following
// parents back from the end cell.
//
// Manhattan distance is consistent for unit 4-way moves, so a closed cell is
// never reopened and the g-score at the goal is the shortest distance.
//
// search.WithDescentReconstruction switches to the legacy best-effort
// reconstruction that walks down recorded g-scores under an iteration cap;
// a cap hit is reported through Result.Truncated, not as an error.
package astar
