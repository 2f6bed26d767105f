// Package search provides tunable options and error definitions
// shared by the grid search strategies.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// DefaultReconstructionCap bounds Descend when no cap is given.
const DefaultReconstructionCap = 1000

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrReconstructionTruncated reports that Descend stopped at its iteration cap.
	// The accompanying path is partial but usable.
	ErrReconstructionTruncated = errors.New("search: path reconstruction truncated")

	// ErrBrokenParentChain reports parent links that never reach the start cell.
	ErrBrokenParentChain = errors.New("search: parent chain does not reach start")
)

// Reconstruction selects how A* recovers its path.
type Reconstruction int

const (
	// ParentLinks follows the parent recorded on each improvement.
	ParentLinks Reconstruction = iota
	// Descent steps from end to the neighbor with the lowest g-score.
	Descent
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Prepare.
type Option func(*Options)

// Options holds parameters and callbacks for one search invocation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called after a cell is marked visited and recorded.
	// visited is |visited| after the step; cost is the step's cost.
	// A non-nil error aborts the search.
	OnVisit func(c gridgraph.Cell, visited, cost int) error

	// MaxVisits, if > 0, stops the search after that many recorded steps.
	MaxVisits int

	// Reconstruction and ReconstructionCap are honored by A* only.
	Reconstruction    Reconstruction
	ReconstructionCap int

	err error
}

// DefaultOptions returns Options with a background context, a no-op hook,
// no visit limit and parent-link reconstruction.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		OnVisit:           func(gridgraph.Cell, int, int) error { return nil },
		MaxVisits:         0,
		Reconstruction:    ParentLinks,
		ReconstructionCap: DefaultReconstructionCap,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every recorded step.
func WithOnVisit(fn func(c gridgraph.Cell, visited, cost int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxVisits stops the search after n recorded steps.
//
//	n > 0:  limit to n steps
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithDescentReconstruction makes A* rebuild its path with Descend, bounded by
// limit iterations (limit == 0 selects DefaultReconstructionCap).
func WithDescentReconstruction(limit int) Option {
	return func(o *Options) {
		switch {
		case limit < 0:
			o.err = fmt.Errorf("%w: reconstruction cap cannot be negative (%d)", ErrOptionViolation, limit)
		case limit == 0:
			o.Reconstruction = Descent
			o.ReconstructionCap = DefaultReconstructionCap
		default:
			o.Reconstruction = Descent
			o.ReconstructionCap = limit
		}
	}
}

// Prepare applies opts and validates the common preconditions of a search:
// non-nil grid, valid options, and endpoints that are in bounds and passable.
func Prepare(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if err := g.ValidateEndpoints(start, end); err != nil {
		return Options{}, err
	}

	return o, nil
}
