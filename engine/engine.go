// Package engine selects a search strategy by name and runs it on a grid
// built from a validated configuration.
//
// An Engine holds only its immutable grid and a logger, so one Engine may
// serve concurrent Run calls. Every call returns its own *search.Result.
package engine

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

type searchFunc func(*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell, ...search.Option) (*search.Result, error)

var searchers = map[Strategy]searchFunc{
	BFS:      bfs.Search,
	DFS:      dfs.Search,
	Dijkstra: dijkstra.Search,
	AStar:    astar.Search,
}

// Engine runs searches on one grid.
type Engine struct {
	grid   *gridgraph.Grid
	logger log.FieldLogger
	astar  []search.Option
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for run summaries and warnings.
func WithLogger(l log.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDescentReconstruction makes A* rebuild paths by g-score descent,
// bounded by limit iterations (0 selects search.DefaultReconstructionCap).
func WithDescentReconstruction(limit int) Option {
	return func(e *Engine) {
		e.astar = append(e.astar, search.WithDescentReconstruction(limit))
	}
}

// New builds the grid from cfg and checks that both corners are passable.
func New(cfg gridgraph.Config, opts ...Option) (*Engine, error) {
	g, err := gridgraph.NewGrid(cfg)
	if err != nil {
		return nil, err
	}
	start, end := g.Corners()
	if err = g.ValidateEndpoints(start, end); err != nil {
		return nil, err
	}

	e := &Engine{grid: g, logger: discardLogger()}
	for _, opt := range opts {
		opt(e)
	}
	e.logger.WithFields(log.Fields{
		"size":      g.Size(),
		"obstacles": len(g.Obstacles()),
	}).Debug("Grid ready.")

	return e, nil
}

// Grid returns the engine's immutable grid.
func (e *Engine) Grid() *gridgraph.Grid { return e.grid }

// Run parses name and runs that strategy from start to end.
func (e *Engine) Run(name string, start, end gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	s, err := ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return e.RunStrategy(s, start, end, opts...)
}

// RunCorners runs the named strategy from (0,0) to (N-1,N-1).
func (e *Engine) RunCorners(name string, opts ...search.Option) (*search.Result, error) {
	start, end := e.grid.Corners()
	return e.Run(name, start, end, opts...)
}

// RunStrategy runs s from start to end. Per-call options follow the
// engine-level ones, so they win on conflict.
func (e *Engine) RunStrategy(s Strategy, start, end gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	fn, ok := searchers[s]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
	if s == AStar && len(e.astar) > 0 {
		opts = append(append([]search.Option{}, e.astar...), opts...)
	}

	began := time.Now()
	res, err := fn(e.grid, start, end, opts...)
	logger := e.logger.WithFields(log.Fields{
		"strategy": s.String(),
		"start":    start,
		"end":      end,
	})
	if err != nil {
		logger.WithError(err).Warn("Search failed.")
		return res, err
	}

	logger = logger.WithFields(log.Fields{
		"found":   res.Found,
		"cost":    res.Cost,
		"visited": res.Visited(),
		"elapsed": time.Since(began),
	})
	if res.Truncated {
		logger.Warn("Path reconstruction truncated, path is partial.")
	} else {
		logger.Debug("Search finished.")
	}

	return res, nil
}

// Compare runs every strategy from start to end and returns the results in
// Strategies order. The first error stops the comparison.
func (e *Engine) Compare(start, end gridgraph.Cell, opts ...search.Option) ([]*search.Result, error) {
	all := Strategies()
	out := make([]*search.Result, 0, len(all))
	for _, s := range all {
		res, err := e.RunStrategy(s, start, end, opts...)
		if err != nil {
			return out, fmt.Errorf("engine: %v: %w", s, err)
		}
		out = append(out, res)
	}

	return out, nil
}
