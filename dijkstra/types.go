package dijkstra

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/manhattan/grid"
)

// Sentinel errors returned by the engine. Invalid endpoints are reported
// with the grid sentinels (grid.ErrNilNode, grid.ErrNodeNotFound) wrapped
// with the endpoint they refer to.
var (
	// ErrNilGraph indicates that a nil *grid.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that the predecessor chain from the destination
	// ends at a node other than the origin. No partial path is returned.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from origin")
)

// Step describes one node leaving the frontier.
type Step struct {
	Ordinal  int        // 0 for the origin, then 1, 2, ...
	Node     *grid.Node // the settled node
	Distance int64      // its final tentative distance (grid.Infinity if never reached)
}

// Relabel describes one successful relaxation.
type Relabel struct {
	Node     *grid.Node     // the neighbor whose distance dropped
	Via      *grid.Node     // the current intersection, recorded as predecessor
	Link     grid.Direction // which link of Via leads to Node
	Weight   int64          // oracle answer for Via→Node
	Previous int64          // distance before the relaxation
	Distance int64          // distance after the relaxation
}

// Result is the outcome of a run that reached its destination.
type Result struct {
	// Path runs from origin to destination.
	Path grid.Path
	// Distance is the destination's settled tentative distance.
	Distance int64
	// Settled lists nodes in the order they left the frontier.
	Settled []*grid.Node
}

// Options configures a run.
//
// Logger    – receives Debug records for start, settle, relabel and outcome.
// OnSettle  – called after each node is marked visited.
// OnRelabel – called after each successful relaxation.
type Options struct {
	Logger    *slog.Logger
	OnSettle  func(Step)
	OnRelabel func(Relabel)
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithLogger routes Debug records of the run to logger.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnSettle registers a hook invoked each time a node is settled.
// Panics on nil.
func WithOnSettle(fn func(Step)) Option {
	if fn == nil {
		panic("dijkstra: WithOnSettle(nil)")
	}
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithOnRelabel registers a hook invoked after each successful relaxation.
// Panics on nil.
func WithOnRelabel(fn func(Relabel)) Option {
	if fn == nil {
		panic("dijkstra: WithOnRelabel(nil)")
	}
	return func(o *Options) {
		o.OnRelabel = fn
	}
}

// DefaultOptions returns Options with a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
