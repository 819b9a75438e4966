package grid

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("grid: node is nil")

	// ErrNodeNotFound indicates the node is not a member of the graph.
	// Reaching it at run time is a programming error in graph construction.
	ErrNodeNotFound = errors.New("grid: node not found in graph")

	// ErrNoEdge indicates there is no direct edge between the ordered pair.
	ErrNoEdge = errors.New("grid: no edge between nodes")

	// ErrBadWeight indicates an edge weight outside [1, MaxWeight], or
	// weights heavy enough that a simple path could reach Infinity.
	ErrBadWeight = errors.New("grid: edge weight out of range")

	// ErrSelfLoop indicates an adjacency or weight from a node to itself.
	ErrSelfLoop = errors.New("grid: self-loop not allowed")

	// ErrNeighborTaken indicates a second east (or south) neighbor was assigned.
	ErrNeighborTaken = errors.New("grid: neighbor already assigned")

	// ErrNoRoot indicates Build was called before a root was designated.
	ErrNoRoot = errors.New("grid: root not set")

	// ErrNoDestination indicates Build was called before a destination was designated.
	ErrNoDestination = errors.New("grid: destination not set")

	// ErrBuilt indicates the Builder was used after Build.
	ErrBuilt = errors.New("grid: builder already built")
)

const (
	// Infinity is the sentinel tentative distance for nodes not yet reached
	// and the oracle distance for pairs without a direct edge.
	// Infinity + Infinity stays below math.MaxInt64.
	Infinity int64 = math.MaxInt64 >> 2

	// MaxWeight is the largest weight accepted by Builder. Any simple path
	// in a built Graph sums to less than Infinity (Build checks
	// (V-1)·max weight < Infinity), so a real edge is never mistaken for a
	// missing one.
	MaxWeight int64 = math.MaxInt32

	// MinWeight is the smallest weight accepted by Builder.
	MinWeight int64 = 1
)

// Direction names one of the two grid links a node may have.
type Direction int

const (
	// East links a node to the next intersection down the street.
	East Direction = iota
	// South links a node to the next intersection along the avenue.
	South
)

// String returns "east" or "south".
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Node is a street intersection. It is created by Builder.AddNode and is
// immutable afterwards. Compare nodes by pointer, not by Name.
type Node struct {
	name  string
	index int
}

// Name returns the human-readable label given at creation.
func (n *Node) Name() string { return n.name }

// Index returns the dense position of n in its graph's node order.
func (n *Node) Index() int { return n.index }

// String returns the node name; a nil node renders as "<nil>".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.name
}

// Neighbors holds the grid links of one node. Either field may be nil.
type Neighbors struct {
	East  *Node
	South *Node
}

// pair is an ordered (from, to) key into the weight mapping.
type pair struct {
	from, to *Node
}
