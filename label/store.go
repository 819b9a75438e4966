package label

import (
	"fmt"

	"github.com/katalvlaran/manhattan/grid"
)

// Label is a read-only snapshot of one node's record.
type Label struct {
	Distance    int64
	Visited     bool
	Predecessor *grid.Node
}

// Store is the label store for one computation on one graph.
// Records are slice-backed and indexed by grid.Node.Index.
type Store struct {
	g        *grid.Graph
	origin   *grid.Node
	dist     []int64
	visited  []bool
	prev     []*grid.Node
	frontier int // number of unvisited nodes
}

// New initializes a Store for g: every node gets distance grid.Infinity and
// is unvisited, except origin, which gets distance 0 and is settled at once.
//
// Returns grid.ErrNilNode or grid.ErrNodeNotFound if origin is invalid.
// Complexity: O(V).
func New(g *grid.Graph, origin *grid.Node) (*Store, error) {
	if origin == nil {
		return nil, grid.ErrNilNode
	}
	if !g.Has(origin) {
		return nil, fmt.Errorf("%w: origin %q", grid.ErrNodeNotFound, origin.Name())
	}
	n := g.Len()
	s := &Store{
		g:        g,
		origin:   origin,
		dist:     make([]int64, n),
		visited:  make([]bool, n),
		prev:     make([]*grid.Node, n),
		frontier: n,
	}
	for i := range s.dist {
		s.dist[i] = grid.Infinity
	}
	s.dist[origin.Index()] = 0
	s.MarkVisited(origin)

	return s, nil
}

// Graph returns the graph the Store was built for.
func (s *Store) Graph() *grid.Graph { return s.g }

// Origin returns the node the computation started from.
func (s *Store) Origin() *grid.Node { return s.origin }

// DistanceOf returns the tentative distance of n.
func (s *Store) DistanceOf(n *grid.Node) int64 {
	return s.dist[s.index(n)]
}

// Relabel sets the tentative distance of n to d if and only if d is
// strictly smaller than the current one, and reports whether it did.
// Visited nodes are final and are never relabeled.
func (s *Store) Relabel(n *grid.Node, d int64) bool {
	i := s.index(n)
	if s.visited[i] || d >= s.dist[i] {
		return false
	}
	s.dist[i] = d

	return true
}

// Link records pred as the predecessor of n on the current best path.
// Callers link only after a successful Relabel.
func (s *Store) Link(n, pred *grid.Node) {
	s.index(pred)
	s.prev[s.index(n)] = pred
}

// Predecessor returns the recorded predecessor of n, if any.
func (s *Store) Predecessor(n *grid.Node) (*grid.Node, bool) {
	p := s.prev[s.index(n)]

	return p, p != nil
}

// MarkVisited settles n and removes it from the frontier. Idempotent.
func (s *Store) MarkVisited(n *grid.Node) {
	i := s.index(n)
	if s.visited[i] {
		return
	}
	s.visited[i] = true
	s.frontier--
}

// Visited reports whether n has been settled.
func (s *Store) Visited(n *grid.Node) bool {
	return s.visited[s.index(n)]
}

// InFrontier reports whether n is still unvisited.
func (s *Store) InFrontier(n *grid.Node) bool {
	return !s.Visited(n)
}

// FrontierLen returns the number of unvisited nodes.
func (s *Store) FrontierLen() int { return s.frontier }

// Frontier returns the unvisited nodes in graph order.
// Complexity: O(V).
func (s *Store) Frontier() []*grid.Node {
	out := make([]*grid.Node, 0, s.frontier)
	for _, n := range s.g.Nodes() {
		if !s.visited[n.Index()] {
			out = append(out, n)
		}
	}

	return out
}

// Label returns a snapshot of the record for n.
func (s *Store) Label(n *grid.Node) Label {
	i := s.index(n)

	return Label{Distance: s.dist[i], Visited: s.visited[i], Predecessor: s.prev[i]}
}

// index resolves n to its slot, panicking on contract violations.
func (s *Store) index(n *grid.Node) int {
	if !s.g.Has(n) {
		panic(fmt.Sprintf("label: %v: %v", grid.ErrNodeNotFound, n))
	}

	return n.Index()
}
