// Package grid defines the immutable graph model consumed by the manhattan
// shortest-path engine: nodes, east/south adjacency, directed edge weights,
// and a designated root and destination.
//
// What:
//
//   - Node is an identity-bearing intersection. Identity is the pointer, never
//     the name: two nodes may share a name and still be distinct.
//   - Graph is the ordered node collection plus two partial functions
//     ("east neighbor of", "south neighbor of") and a weight mapping over
//     ordered node pairs.
//   - Builder is the only way to obtain a Graph; Build validates every
//     invariant once, after which the Graph never changes.
//   - Path is an ordered node sequence produced by the engine.
//
// Sentinel distance:
//
//	Infinity stands in for "unreachable" and "no direct edge". It is
//	math.MaxInt64 >> 2, far above MaxWeight (math.MaxInt32). Build rejects a
//	graph whose V-1 heaviest hops could reach Infinity, so every real path
//	length stays strictly below it and every reachable node can be relabeled.
//	Stored distances and oracle answers are both ≤ Infinity, so d + w never
//	wraps; no runtime check is needed.
//
// Concurrency:
//
//	A built Graph is read-only and may be shared by any number of goroutines,
//	each running its own computation.
//
// Errors:
//
//   - ErrNilNode        a nil *Node was passed.
//   - ErrNodeNotFound   the node does not belong to this graph.
//   - ErrNoEdge         no direct edge between the ordered pair.
//   - ErrBadWeight      weight outside [1, MaxWeight], or (V-1)·max ≥ Infinity.
//   - ErrSelfLoop       adjacency or weight from a node to itself.
//   - ErrNeighborTaken  a node already has an east (or south) neighbor.
//   - ErrNoRoot         Build called without a root.
//   - ErrNoDestination  Build called without a destination.
//   - ErrBuilt          the Builder was used after Build.
package grid
