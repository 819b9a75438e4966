package grid

import "fmt"

// Method tags used to give builder errors context.
const (
	methodAddNode     = "AddNode"
	methodEast        = "East"
	methodSouth       = "South"
	methodWeight      = "Weight"
	methodRoot        = "Root"
	methodDestination = "Destination"
	methodBuild       = "Build"
)

// Builder assembles a Graph. Methods chain and record only the first
// error; Build reports it. A Builder is single-use.
//
// Example:
//
//	b := grid.NewBuilder()
//	a, c := b.AddNode("a"), b.AddNode("c")
//	g, err := b.Street(a, c, 3).Root(a).Destination(c).Build()
type Builder struct {
	nodes       []*Node
	east        []*Node
	south       []*Node
	weights     map[pair]int64
	root        *Node
	destination *Node
	err         error
	built       bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{weights: make(map[pair]int64)}
}

// AddNode creates a node named name and appends it to the node order.
// Names need not be unique. Returns nil if the Builder was already built.
func (b *Builder) AddNode(name string) *Node {
	if b.built {
		b.fail(methodAddNode, ErrBuilt)
		return nil
	}
	n := &Node{name: name, index: len(b.nodes)}
	b.nodes = append(b.nodes, n)
	b.east = append(b.east, nil)
	b.south = append(b.south, nil)

	return n
}

// AddNodes creates one node per name, in order.
func (b *Builder) AddNodes(names ...string) []*Node {
	out := make([]*Node, len(names))
	for i, name := range names {
		out[i] = b.AddNode(name)
	}

	return out
}

// East records to as the east neighbor of from.
func (b *Builder) East(from, to *Node) *Builder {
	return b.link(methodEast, b.east, from, to)
}

// South records to as the south neighbor of from.
func (b *Builder) South(from, to *Node) *Builder {
	return b.link(methodSouth, b.south, from, to)
}

// Weight records the distance of the directed edge from→to.
// A later call for the same pair replaces the earlier weight.
func (b *Builder) Weight(from, to *Node, w int64) *Builder {
	if !b.usable(methodWeight, from, to) {
		return b
	}
	if w < MinWeight || w > MaxWeight {
		b.fail(methodWeight, fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from.name, to.name, w))
		return b
	}
	b.weights[pair{from, to}] = w

	return b
}

// Street links from→to eastward with weight w.
func (b *Builder) Street(from, to *Node, w int64) *Builder {
	return b.East(from, to).Weight(from, to, w)
}

// Avenue links from→to southward with weight w.
func (b *Builder) Avenue(from, to *Node, w int64) *Builder {
	return b.South(from, to).Weight(from, to, w)
}

// Root designates the origin of the geometry.
func (b *Builder) Root(n *Node) *Builder {
	if b.usable(methodRoot, n) {
		b.root = n
	}

	return b
}

// Destination designates the target of the geometry.
func (b *Builder) Destination(n *Node) *Builder {
	if b.usable(methodDestination, n) {
		b.destination = n
	}

	return b
}

// Build validates the accumulated description and returns the immutable Graph.
//
// Returns the first recorded error, or:
//   - ErrBuilt if Build was already called.
//   - ErrNoRoot / ErrNoDestination if either endpoint was never designated.
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	if b.built {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrBuilt)
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.root == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoRoot)
	}
	if b.destination == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoDestination)
	}

	weights := make(map[pair]int64, len(b.weights))
	var heaviest int64
	for k, w := range b.weights {
		weights[k] = w
		heaviest = max(heaviest, w)
	}
	// (V-1)·heaviest must stay below Infinity.
	if hops := int64(len(b.nodes) - 1); heaviest > 0 && hops > (Infinity-1)/heaviest {
		return nil, fmt.Errorf("%s: %w: %d hops of weight %d reach Infinity", methodBuild, ErrBadWeight, hops, heaviest)
	}
	b.built = true
	g := &Graph{
		nodes:       append([]*Node(nil), b.nodes...),
		east:        append([]*Node(nil), b.east...),
		south:       append([]*Node(nil), b.south...),
		weights:     weights,
		root:        b.root,
		destination: b.destination,
	}

	return g, nil
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error { return b.err }

// link stores to in the per-direction slot of from.
func (b *Builder) link(method string, slots []*Node, from, to *Node) *Builder {
	if !b.usable(method, from, to) {
		return b
	}
	if cur := slots[from.index]; cur != nil && cur != to {
		b.fail(method, fmt.Errorf("%w: %s already links to %s", ErrNeighborTaken, from.name, cur.name))
		return b
	}
	slots[from.index] = to

	return b
}

// usable reports whether the Builder can accept a call touching nodes,
// recording the reason when it cannot.
func (b *Builder) usable(method string, nodes ...*Node) bool {
	if b.err != nil {
		return false
	}
	if b.built {
		b.fail(method, ErrBuilt)
		return false
	}
	for _, n := range nodes {
		if n == nil {
			b.fail(method, ErrNilNode)
			return false
		}
		if !b.owns(n) {
			b.fail(method, fmt.Errorf("%w: %q", ErrNodeNotFound, n.name))
			return false
		}
	}
	if len(nodes) == 2 && nodes[0] == nodes[1] {
		b.fail(method, fmt.Errorf("%w: %s", ErrSelfLoop, nodes[0].name))
		return false
	}

	return true
}

// owns reports whether n was created by this Builder.
func (b *Builder) owns(n *Node) bool {
	return n.index >= 0 && n.index < len(b.nodes) && b.nodes[n.index] == n
}

// fail records err once, wrapped with the method tag.
func (b *Builder) fail(method string, err error) {
	if b.err == nil {
		b.err = fmt.Errorf("%s: %w", method, err)
	}
}
