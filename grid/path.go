package grid

import "strings"

// Path is an ordered node sequence in traversal order: origin first,
// destination last.
type Path []*Node

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p) }

// Origin returns the first node, or nil for an empty path.
func (p Path) Origin() *Node {
	if len(p) == 0 {
		return nil
	}

	return p[0]
}

// Destination returns the last node, or nil for an empty path.
func (p Path) Destination() *Node {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1]
}

// Reversed returns a new Path in backtrack order (destination first).
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, n := range p {
		out[len(p)-1-i] = n
	}

	return out
}

// Names returns the node names in path order.
func (p Path) Names() []string {
	out := make([]string, len(p))
	for i, n := range p {
		out[i] = n.Name()
	}

	return out
}

// String renders the path as "a -> d -> g".
func (p Path) String() string {
	return strings.Join(p.Names(), " -> ")
}
