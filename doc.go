// Package gridpath is a sandbox for comparing shortest-path strategies on a
// square 4-connected grid with static obstacles.
//
// Subpackages:
//
//	gridgraph/  grid model, obstacle lookup, neighbor expansion, rendering, YAML config
//	search/     shared options, per-run tracker, trace and result types, path reconstruction
//	bfs/        breadth-first search
//	dfs/        depth-first search (finds a path, not necessarily the shortest)
//	dijkstra/   uniform-cost search with deterministic tie-breaking
//	astar/      A* with the Manhattan heuristic and an indexed open set
//	engine/     strategy selection by name, logging, comparison runs
//	cmd/gridpath  command-line front end
//
// Every search returns a *search.Result carrying the path, its cost and a
// trace of (|visited|, cost) pairs, one per visited cell.
package gridpath
