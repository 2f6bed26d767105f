package search

import "github.com/katalvlaran/gridpath/gridgraph"

// Trace records a search's progress, one entry per visited cell.
// Iterations[i] is the size of the visited set after step i (always i+1);
// Progress[i] is the cost of the cell visited at step i.
type Trace struct {
	Iterations []int
	Progress   []int
}

// Len returns the number of recorded steps.
func (t Trace) Len() int { return len(t.Iterations) }

// Record appends one step.
func (t *Trace) Record(visited, cost int) {
	t.Iterations = append(t.Iterations, visited)
	t.Progress = append(t.Progress, cost)
}

// Result is the outcome of one search invocation. It is owned by the caller.
//   - Trace: per-step diagnostics, present even when no path exists.
//   - Path:  cells from start to end inclusive; nil if the goal was not reached.
//   - Cost:  number of steps on Path (the g-score at the goal for A*).
//   - Found: whether the goal was reached.
//   - Truncated: A* descent reconstruction hit its cap; Path is partial.
type Result struct {
	Trace     Trace
	Path      []gridgraph.Cell
	Cost      int
	Found     bool
	Truncated bool
}

// Steps returns the number of moves on Path, or 0 for an empty path.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Visited returns how many cells the search finalized.
func (r *Result) Visited() int { return r.Trace.Len() }

// Extend returns a fresh slice holding path followed by c.
// Frontier entries never share backing arrays.
func Extend(path []gridgraph.Cell, c gridgraph.Cell) []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(path)+1)
	copy(out, path)
	out[len(path)] = c

	return out
}
