// Package dijkstra implements Dijkstra's shortest-path search on a gridgraph.Grid.
//
// Every move costs 1, so the cumulative cost of an entry is its step count.
// Entries are processed in increasing cost from a min-heap; the first time the
// end cell is popped, its cost is the shortest distance.
//
// Complexity:
//
//   - Time:  O(E log E), E ≤ 4·N² pushes.
//   - Space: O(E) heap entries, each carrying its path-so-far.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: every unvisited neighbor is pushed; stale entries are
//     skipped on pop via the visited set.
//   - Ties on cost are broken by cell, then by path-so-far, so two runs on the
//     same grid pop cells in exactly the same order.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search computes a shortest route from start to end on g.
//
// Returns:
//
//   - *search.Result: trace, path (start→end), cost; Found=false and nil path
//     if end is unreachable.
//   - err: search.ErrGridNil, search.ErrOptionViolation,
//     gridgraph.ErrInvalidEndpoint, ctx.Err(), or a wrapped OnVisit error.
func Search(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	// 1) Validate input and build options
	o, err := search.Prepare(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Initialize runner with the heap seeded by (0, start, [])
	r := &runner{
		g:   g,
		end: end,
		pq:  make(costPQ, 0, g.Len()),
		t:   search.NewTracker("dijkstra", g, o),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, pqItem{cost: 0, cell: start})

	// 3) Run main loop
	return r.t.Result(), r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g   *gridgraph.Grid
	end gridgraph.Cell
	pq  costPQ
	t   *search.Tracker
}

// process pops the cheapest entry until the goal is finalized, the heap
// empties, or the run is aborted.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.t.Interrupted(); err != nil {
			return err
		}

		// 1) Pop the cheapest entry
		item := heap.Pop(&r.pq).(pqItem)

		// 2) Skip stale entries for finalized cells
		if r.t.Visited(item.cell) {
			continue
		}

		// 3) Finalize and record
		if err := r.t.Visit(item.cell, item.cost); err != nil {
			return err
		}
		if item.cell == r.end {
			r.t.Finish(search.Extend(item.path, item.cell), item.cost)
			return nil
		}
		if r.t.LimitReached() {
			return nil
		}

		// 4) Relax outgoing moves
		r.relax(item)
	}

	return nil
}

// relax pushes (cost+1, neighbor, path+[cell]) for every unvisited neighbor.
func (r *runner) relax(item pqItem) {
	var next []gridgraph.Cell
	for _, nbr := range r.g.Neighbors(item.cell) {
		if r.t.Visited(nbr) {
			continue
		}
		if next == nil {
			next = search.Extend(item.path, item.cell)
		}
		heap.Push(&r.pq, pqItem{cost: item.cost + 1, cell: nbr, path: next})
	}
}
