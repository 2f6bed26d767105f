package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Tracker owns the visited set and the trace of a single search invocation.
// It is never shared across runs or strategies.
type Tracker struct {
	grid    *gridgraph.Grid
	opts    Options
	name    string // strategy name, used in wrapped hook errors
	visited []bool
	count   int
	res     *Result
}

// NewTracker prepares an empty visited set sized for g.
func NewTracker(name string, g *gridgraph.Grid, opts Options) *Tracker {
	return &Tracker{
		grid:    g,
		opts:    opts,
		name:    name,
		visited: make([]bool, g.Len()),
		res:     &Result{},
	}
}

// Result returns the result collector.
func (t *Tracker) Result() *Result { return t.res }

// Visited reports whether c is already finalized.
func (t *Tracker) Visited(c gridgraph.Cell) bool {
	return t.visited[t.grid.Index(c)]
}

// Count returns |visited|.
func (t *Tracker) Count() int { return t.count }

// Interrupted returns ctx.Err() once the context is done.
func (t *Tracker) Interrupted() error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
		return nil
	}
}

// Visit marks c visited, records (|visited|, cost) and calls OnVisit.
// c must not be visited yet.
func (t *Tracker) Visit(c gridgraph.Cell, cost int) error {
	t.visited[t.grid.Index(c)] = true
	t.count++
	t.res.Trace.Record(t.count, cost)
	if err := t.opts.OnVisit(c, t.count, cost); err != nil {
		return fmt.Errorf("%s: OnVisit error at %v: %w", t.name, c, err)
	}

	return nil
}

// LimitReached reports whether MaxVisits steps have been recorded.
func (t *Tracker) LimitReached() bool {
	return t.opts.MaxVisits > 0 && t.count >= t.opts.MaxVisits
}

// Finish marks the result found with the given path and cost.
func (t *Tracker) Finish(path []gridgraph.Cell, cost int) *Result {
	t.res.Path = path
	t.res.Cost = cost
	t.res.Found = true

	return t.res
}
