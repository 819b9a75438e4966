package dijkstra

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/manhattan/distance"
	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/label"
	"github.com/katalvlaran/manhattan/role"
)

// ShortestPath returns the shortest path from origin to destination in
// traversal order (origin first). See Run for errors.
func ShortestPath(g *grid.Graph, origin, destination *grid.Node, opts ...Option) (grid.Path, error) {
	res, err := Run(g, origin, destination, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// ShortestDistance returns the length of the shortest path from origin to
// destination. The path is computed by the engine and its length is summed
// independently by the distance package over the same weight table.
func ShortestDistance(g *grid.Graph, origin, destination *grid.Node, opts ...Option) (int64, error) {
	path, err := ShortestPath(g, origin, destination, opts...)
	if err != nil {
		return 0, err
	}

	return distance.Of(g, path)
}

// Solve runs from g.Root() to g.Destination().
func Solve(g *grid.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return Run(g, g.Root(), g.Destination(), opts...)
}

// Run computes the shortest path from origin to destination.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. origin and destination must be non-nil (grid.ErrNilNode).
//  3. origin and destination must belong to g (grid.ErrNodeNotFound).
//
// Returns ErrUnreachable when no path exists. When origin == destination the
// path holds the single node and the distance is 0.
//
// Complexity: O(V²) time, O(V) space.
func Run(g *grid.Graph, origin, destination *grid.Node, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := endpoint(g, "origin", origin); err != nil {
		return nil, err
	}
	if err := endpoint(g, "destination", destination); err != nil {
		return nil, err
	}

	// 3) Initialize: fresh labels, origin settled at distance 0.
	store, err := label.New(g, origin)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	r := &runner{
		options:     cfg,
		log:         cfg.Logger.With(slog.String("origin", origin.Name()), slog.String("destination", destination.Name())),
		nodes:       g.Nodes(),
		store:       store,
		roles:       role.NewDispatcher(store),
		origin:      origin,
		destination: destination,
		settled:     make([]*grid.Node, 0, g.Len()),
	}
	r.log.Debug("dijkstra: start", slog.Int("nodes", g.Len()))

	// 4) Relax / SelectNext until the frontier is empty.
	r.process()

	// 5) Terminate: walk predecessors back from the destination.
	path, err := r.backtrack()
	if err != nil {
		r.log.Debug("dijkstra: unreachable")
		return nil, err
	}
	dist := store.DistanceOf(destination)
	r.log.Debug("dijkstra: done", slog.Int64("distance", dist), slog.Int("hops", path.Len()-1))

	return &Result{Path: path, Distance: dist, Settled: r.settled}, nil
}

// endpoint validates one end of the requested route.
func endpoint(g *grid.Graph, which string, n *grid.Node) error {
	if n == nil {
		return fmt.Errorf("dijkstra: %s: %w", which, grid.ErrNilNode)
	}
	if !g.Has(n) {
		return fmt.Errorf("dijkstra: %s %q: %w", which, n.Name(), grid.ErrNodeNotFound)
	}

	return nil
}

// runner holds the mutable state of a single run.
type runner struct {
	options     Options
	log         *slog.Logger
	nodes       []*grid.Node     // graph order, scanned by nearest
	store       *label.Store     // owned by this run only
	roles       *role.Dispatcher // bound to store
	origin      *grid.Node
	destination *grid.Node
	settled     []*grid.Node
}

// process is the iterate-select-relax loop. The origin is already settled
// by label.New; it is still expanded first and reported as step 0.
func (r *runner) process() {
	cur := r.origin
	for {
		r.relax(cur)
		r.settle(cur)

		if r.store.FrontierLen() == 0 {
			return
		}
		cur = r.nearest()
	}
}

// relax attempts to improve the distance of every unvisited grid neighbor of u.
func (r *runner) relax(u *grid.Node) {
	current := r.roles.Current(u)
	oracle := r.roles.Oracle()
	base := r.store.DistanceOf(current.Node())
	east := r.store.Graph().EastOf(u)

	for _, v := range current.UnvisitedNeighbors() {
		nb := r.roles.Neighbor(v)
		before := r.store.DistanceOf(v)
		w := oracle.DistanceBetween(u, v)
		// base ≤ Infinity and w ≤ Infinity, so this cannot wrap.
		tentative := base + w
		if !nb.TryRelabel(tentative) {
			continue
		}
		r.store.Link(v, u)

		link := grid.South
		if v == east {
			link = grid.East
		}
		r.log.Debug("dijkstra: relabel",
			slog.String("role", role.KindNeighbor.String()),
			slog.String("node", v.Name()),
			slog.String("via", u.Name()),
			slog.String("link", link.String()),
			slog.Group(role.KindOracle.String(), slog.Int64("weight", w)),
			slog.Int64("from", before),
			slog.Int64("to", tentative),
		)
		if r.options.OnRelabel != nil {
			r.options.OnRelabel(Relabel{Node: v, Via: u, Link: link, Weight: w, Previous: before, Distance: tentative})
		}
	}
}

// settle marks u visited and records the step.
func (r *runner) settle(u *grid.Node) {
	r.store.MarkVisited(u)
	step := Step{Ordinal: len(r.settled), Node: u, Distance: r.store.DistanceOf(u)}
	r.settled = append(r.settled, u)

	r.log.Debug("dijkstra: settle",
		slog.String("role", role.KindCurrent.String()),
		slog.String("node", u.Name()),
		slog.Int("ordinal", step.Ordinal),
		slog.Int64("distance", step.Distance),
	)
	if r.options.OnSettle != nil {
		r.options.OnSettle(step)
	}
}

// nearest returns the unvisited node with the smallest tentative distance.
// Only a strictly smaller distance replaces the running minimum, so the
// first minimum in graph order wins. Must not be called on an empty frontier.
func (r *runner) nearest() *grid.Node {
	var selection *grid.Node
	var best int64
	for _, n := range r.nodes {
		if !r.store.InFrontier(n) {
			continue
		}
		if d := r.store.DistanceOf(n); selection == nil || d < best {
			selection, best = n, d
		}
	}

	return selection
}

// backtrack follows predecessor links from the destination. The chain must
// end at the origin; anything else means the destination was never reached.
func (r *runner) backtrack() (grid.Path, error) {
	var back grid.Path
	n := r.destination
	for {
		back = append(back, n)
		p, ok := r.store.Predecessor(n)
		if !ok {
			break
		}
		n = p
	}
	if n != r.origin {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, r.destination.Name(), r.origin.Name())
	}

	return back.Reversed(), nil
}
