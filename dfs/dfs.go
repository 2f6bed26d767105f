package dfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// stackItem is one frontier entry; path excludes cell.
type stackItem struct {
	cost int
	cell gridgraph.Cell
	path []gridgraph.Cell
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid  *gridgraph.Grid
	end   gridgraph.Cell
	stack []stackItem
	t     *search.Tracker
}

// Search performs depth-first search on g from start to end.
// Returns the Result (Found=false if end is unreachable) or an error if
// the input is invalid or the run is aborted by context or hook.
func Search(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	// 1. Validate input and apply options
	o, err := search.Prepare(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	// 2. Seed the stack with the start cell
	w := &dfsWalker{
		grid:  g,
		end:   end,
		stack: []stackItem{{cost: 0, cell: start}},
		t:     search.NewTracker("dfs", g, o),
	}

	// 3. Traverse
	return w.t.Result(), w.traverse()
}

// traverse pops until the goal, exhaustion, an error or the visit limit.
func (w *dfsWalker) traverse() error {
	for len(w.stack) > 0 {
		if err := w.t.Interrupted(); err != nil {
			return err
		}

		// most recently pushed first
		item := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.t.Visited(item.cell) {
			continue
		}
		if err := w.t.Visit(item.cell, item.cost); err != nil {
			return err
		}
		if item.cell == w.end {
			w.t.Finish(search.Extend(item.path, item.cell), item.cost)
			return nil
		}
		if w.t.LimitReached() {
			return nil
		}

		var next []gridgraph.Cell
		for _, nbr := range w.grid.Neighbors(item.cell) {
			if w.t.Visited(nbr) {
				continue
			}
			if next == nil {
				next = search.Extend(item.path, item.cell)
			}
			w.stack = append(w.stack, stackItem{cost: item.cost + 1, cell: nbr, path: next})
		}
	}

	return nil
}
