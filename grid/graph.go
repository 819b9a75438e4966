package grid

import "fmt"

// Graph is an immutable Manhattan-style graph. Obtain one from Builder.Build.
//
// east[i] and south[i] hold the links of nodes[i] (nil when absent);
// weights maps ordered node pairs to positive distances.
type Graph struct {
	nodes       []*Node
	east        []*Node
	south       []*Node
	weights     map[pair]int64
	root        *Node
	destination *Node
}

// Has reports whether n is a member of g.
// Complexity: O(1).
func (g *Graph) Has(n *Node) bool {
	return n != nil && n.index >= 0 && n.index < len(g.nodes) && g.nodes[n.index] == n
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the nodes in build order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Root returns the designated origin of the geometry.
func (g *Graph) Root() *Node { return g.root }

// Destination returns the designated destination of the geometry.
func (g *Graph) Destination() *Node { return g.destination }

// Neighbors returns the east and south links of n.
// Returns ErrNilNode or ErrNodeNotFound for invalid input.
// Complexity: O(1).
func (g *Graph) Neighbors(n *Node) (Neighbors, error) {
	if err := g.check(n); err != nil {
		return Neighbors{}, err
	}

	return Neighbors{East: g.east[n.index], South: g.south[n.index]}, nil
}

// EastOf returns the east neighbor of n, or nil when n has none or is not a member.
func (g *Graph) EastOf(n *Node) *Node {
	if !g.Has(n) {
		return nil
	}

	return g.east[n.index]
}

// SouthOf returns the south neighbor of n, or nil when n has none or is not a member.
func (g *Graph) SouthOf(n *Node) *Node {
	if !g.Has(n) {
		return nil
	}

	return g.south[n.index]
}

// Weight returns the distance of the directed edge a→b.
//
// Returns:
//   - ErrNilNode / ErrNodeNotFound if either endpoint is invalid.
//   - ErrNoEdge (wrapped with both names) if no weight was recorded for a→b.
//
// Complexity: O(1) expected.
func (g *Graph) Weight(a, b *Node) (int64, error) {
	if err := g.check(a); err != nil {
		return 0, err
	}
	if err := g.check(b); err != nil {
		return 0, err
	}
	w, ok := g.weights[pair{a, b}]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoEdge, a.name, b.name)
	}

	return w, nil
}

// HasEdge reports whether a weight is recorded for a→b.
func (g *Graph) HasEdge(a, b *Node) bool {
	_, ok := g.weights[pair{a, b}]

	return ok && g.Has(a) && g.Has(b)
}

// check validates membership of n.
func (g *Graph) check(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if !g.Has(n) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, n.name)
	}

	return nil
}
