package astar

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search executes A* from start to end on g.
// The trace records (|closed|, g) for every closed cell, the goal included.
func Search(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	o, err := search.Prepare(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	s := &solver{
		grid:    g,
		start:   start,
		end:     end,
		opts:    o,
		t:       search.NewTracker("astar", g, o),
		gScore:  map[gridgraph.Cell]int{start: 0},
		parent:  make(map[gridgraph.Cell]gridgraph.Cell),
		openMap: make(map[gridgraph.Cell]*openItem),
	}
	heap.Init(&s.open)
	s.push(start, 0)

	return s.t.Result(), s.run()
}

type solver struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Cell
	opts       search.Options
	t          *search.Tracker

	open    openPQ
	openMap map[gridgraph.Cell]*openItem
	gScore  map[gridgraph.Cell]int
	parent  map[gridgraph.Cell]gridgraph.Cell
	seq     int
}

func (s *solver) push(c gridgraph.Cell, gs int) {
	item := &openItem{cell: c, g: gs, f: gs + gridgraph.Manhattan(c, s.end), seq: s.seq}
	s.seq++
	heap.Push(&s.open, item)
	s.openMap[c] = item
}

func (s *solver) run() error {
	for s.open.Len() > 0 {
		if err := s.t.Interrupted(); err != nil {
			return err
		}

		current := heap.Pop(&s.open).(*openItem)
		delete(s.openMap, current.cell)
		if s.t.Visited(current.cell) {
			continue
		}
		if err := s.t.Visit(current.cell, current.g); err != nil {
			return err
		}
		if current.cell == s.end {
			return s.finish()
		}
		if s.t.LimitReached() {
			return nil
		}

		tentative := current.g + 1
		for _, nbr := range s.grid.Neighbors(current.cell) {
			if s.t.Visited(nbr) {
				continue
			}
			item, inOpen := s.openMap[nbr]
			switch {
			case !inOpen:
				s.gScore[nbr] = tentative
				s.parent[nbr] = current.cell
				s.push(nbr, tentative)
			case tentative < item.g:
				s.gScore[nbr] = tentative
				s.parent[nbr] = current.cell
				item.f -= item.g - tentative
				item.g = tentative
				heap.Fix(&s.open, item.index)
			}
		}
	}

	return nil
}

// finish rebuilds the path with the configured reconstruction.
func (s *solver) finish() error {
	cost := s.gScore[s.end]
	if s.opts.Reconstruction == search.Descent {
		path, err := search.Descend(s.grid, s.gScore, s.start, s.end, s.opts.ReconstructionCap)
		if errors.Is(err, search.ErrReconstructionTruncated) {
			s.t.Result().Truncated = true
		} else if err != nil {
			return err
		}
		s.t.Finish(path, cost)
		return nil
	}

	path, err := search.FollowParents(s.parent, s.start, s.end)
	if err != nil {
		return err
	}
	s.t.Finish(path, cost)

	return nil
}
