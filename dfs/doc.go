// Package dfs walks a gridgraph.Grid depth-first until it reaches the end
// cell, recording a per-step trace.
//
// Key features:
//   - Search(g, start, end, opts...): explicit LIFO stack, no recursion, so a
//     large grid cannot exhaust the goroutine stack.
//   - Entries carry (cost, cell, path-so-far); cost is the length of that path.
//   - Neighbors are pushed in +x, −x, +y, −y order, so −y is explored first.
//   - Cancellation via context.Context, OnVisit hook, MaxVisits limit.
//
// The returned path is a simple path from start to end but not necessarily a
// shortest one: on an open grid the LIFO order snakes down the first column.
//
// Complexity:
//
//   - Time:   O(N²·4) pops.
//   - Memory: O(N²·L) for stacked entries and their carried paths.
//
// Errors:
//
//   - search.ErrGridNil, search.ErrOptionViolation, gridgraph.ErrInvalidEndpoint.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
