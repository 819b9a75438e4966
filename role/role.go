package role

import (
	"errors"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/label"
)

// Kind names a role.
type Kind int

const (
	// KindCurrent is the node being expanded.
	KindCurrent Kind = iota
	// KindNeighbor is an unvisited grid neighbor under relaxation.
	KindNeighbor
	// KindOracle is the graph answering distance queries.
	KindOracle
)

// String returns the role name used in logs and traces.
func (k Kind) String() string {
	switch k {
	case KindCurrent:
		return "current"
	case KindNeighbor:
		return "neighbor"
	case KindOracle:
		return "oracle"
	default:
		return "unknown"
	}
}

// CurrentIntersection is the role of the node being expanded.
type CurrentIntersection interface {
	Node() *grid.Node
	// UnvisitedNeighbors returns the south and east links of the node,
	// in that order, that are still in the frontier.
	UnvisitedNeighbors() []*grid.Node
}

// Neighbor is the role of a node reached from the current intersection.
type Neighbor interface {
	Node() *grid.Node
	// TryRelabel lowers the node's tentative distance to candidate when it is
	// strictly smaller and reports whether it did.
	TryRelabel(candidate int64) bool
}

// DistanceOracle is the role of the graph answering distance queries.
type DistanceOracle interface {
	// DistanceBetween returns the weight of a→b, or grid.Infinity when there
	// is no direct edge.
	DistanceBetween(a, b *grid.Node) int64
}

// Dispatcher hands out role handles for one computation.
type Dispatcher struct {
	g     *grid.Graph
	store *label.Store
}

// NewDispatcher binds a Dispatcher to the store's graph and the store.
func NewDispatcher(store *label.Store) *Dispatcher {
	return &Dispatcher{g: store.Graph(), store: store}
}

// Current returns n in the CurrentIntersection role.
func (d *Dispatcher) Current(n *grid.Node) CurrentIntersection {
	return current{n: n, g: d.g, store: d.store}
}

// Neighbor returns n in the Neighbor role.
func (d *Dispatcher) Neighbor(n *grid.Node) Neighbor {
	return neighbor{n: n, store: d.store}
}

// Oracle returns the graph in the DistanceOracle role.
func (d *Dispatcher) Oracle() DistanceOracle {
	return GraphOracle(d.g)
}

// GraphOracle returns g in the DistanceOracle role without a label store.
func GraphOracle(g *grid.Graph) DistanceOracle {
	return oracle{g: g}
}

type current struct {
	n     *grid.Node
	g     *grid.Graph
	store *label.Store
}

func (c current) Node() *grid.Node { return c.n }

func (c current) UnvisitedNeighbors() []*grid.Node {
	links, err := c.g.Neighbors(c.n)
	if err != nil {
		panic("role: " + err.Error())
	}
	out := make([]*grid.Node, 0, 2)
	for _, nb := range [...]*grid.Node{links.South, links.East} {
		if nb != nil && c.store.InFrontier(nb) {
			out = append(out, nb)
		}
	}

	return out
}

type neighbor struct {
	n     *grid.Node
	store *label.Store
}

func (nb neighbor) Node() *grid.Node { return nb.n }

func (nb neighbor) TryRelabel(candidate int64) bool {
	return nb.store.Relabel(nb.n, candidate)
}

type oracle struct {
	g *grid.Graph
}

func (o oracle) DistanceBetween(a, b *grid.Node) int64 {
	w, err := o.g.Weight(a, b)
	if errors.Is(err, grid.ErrNoEdge) {
		return grid.Infinity
	}
	if err != nil {
		panic("role: " + err.Error())
	}

	return w
}
