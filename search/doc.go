// Package search holds what the four grid strategies (bfs, dfs, dijkstra,
// astar) have in common: the per-step Trace, the Result, functional Options,
// the visited-set Tracker, and path reconstruction.
//
// What
//
//   - Trace: two parallel sequences, Iterations (size of the visited set at each
//     step) and Progress (cost at that step). Append-only; equal lengths.
//   - Result: the Trace plus the discovered Path (start→end), its Cost, and
//     whether the goal was reached.
//   - Tracker: visited bitmap + trace recording + hooks, one per invocation.
//   - FollowParents: authoritative reconstruction from parent links.
//   - Descend: legacy best-effort reconstruction that walks down recorded
//     g-scores, bounded by an iteration cap.
//
// Loop shape shared by every strategy
//
//	pop a frontier entry (selection rule differs per strategy)
//	skip it if already visited
//	mark visited, record (|visited|, cost), call OnVisit
//	stop if it is the goal
//	otherwise enqueue its unvisited neighbors
//
// An exhausted frontier is not an error: the Result carries the trace so far,
// Found=false and a nil Path.
//
// Options
//
//   - DefaultOptions(): background Context, no hook, no visit limit,
//     parent-link reconstruction.
//   - WithContext(ctx):              abort with ctx.Err() once ctx is done.
//   - WithOnVisit(fn):               hook per recorded step; an error aborts.
//   - WithMaxVisits(n):              stop after n recorded steps (n > 0).
//   - WithDescentReconstruction(c):  A* only; use Descend with cap c.
//
// Errors
//
//   - ErrGridNil                 if the grid pointer is nil.
//   - ErrOptionViolation         for invalid option values.
//   - ErrReconstructionTruncated when Descend hits its cap (non-fatal).
//   - ErrBrokenParentChain       when parent links do not lead back to start.
package search
