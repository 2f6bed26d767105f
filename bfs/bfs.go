// Package bfs provides breadth-first search over a gridgraph.Grid.
package bfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// queueItem pairs a cell with its cost and the path that led to it
// (the cell itself excluded).
type queueItem struct {
	cost int
	cell gridgraph.Cell
	path []gridgraph.Cell
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	end   gridgraph.Cell
	queue []queueItem
	head  int
	t     *search.Tracker
}

// Search runs breadth-first search on g from start to end.
// Returns ErrGridNil, ErrOptionViolation or gridgraph.ErrInvalidEndpoint for
// invalid input, ctx.Err() on cancellation, or a wrapped OnVisit error.
// An unreachable end is not an error: Result.Found is false.
func Search(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	o, err := search.Prepare(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	w := &walker{
		grid:  g,
		end:   end,
		queue: make([]queueItem, 0, g.Len()),
		t:     search.NewTracker("bfs", g, o),
	}
	w.queue = append(w.queue, queueItem{cost: 0, cell: start})

	return w.t.Result(), w.loop()
}

// loop processes the queue until the goal, exhaustion, an error, or the visit limit.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.t.Interrupted(); err != nil {
			return err
		}

		item := w.dequeue()
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
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the oldest item.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.queue[w.head] = queueItem{}
	w.head++
	return item
}

// enqueueNeighbors appends every unvisited neighbor with cost+1 and path+[cell].
func (w *walker) enqueueNeighbors(item queueItem) {
	var next []gridgraph.Cell
	for _, nbr := range w.grid.Neighbors(item.cell) {
		if w.t.Visited(nbr) {
			continue
		}
		if next == nil {
			next = search.Extend(item.path, item.cell)
		}
		w.queue = append(w.queue, queueItem{cost: item.cost + 1, cell: nbr, path: next})
	}
}
