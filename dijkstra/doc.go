// Package dijkstra computes the shortest path between two intersections of
// a Manhattan grid (grid.Graph) with Dijkstra's algorithm.
//
// Overview:
//
//   - Initialize: a fresh label.Store gives every node distance grid.Infinity,
//     the origin distance 0, and settles the origin.
//   - Relax: the current node, in the role.CurrentIntersection role, lists its
//     unvisited south and east neighbors. For each, the graph in the
//     role.DistanceOracle role supplies the edge weight and the neighbor, in
//     the role.Neighbor role, tries to take current+weight. A successful
//     relabel links the current node as predecessor.
//   - SelectNext: the current node is settled; the next one is the unvisited
//     node with the smallest tentative distance, scanning in graph order and
//     replacing the running minimum only on strictly smaller values, so the
//     first-encountered minimum wins a tie.
//   - Terminate: once the frontier is empty the predecessor chain is walked
//     back from the destination. If it ends anywhere but the origin the
//     destination is unreachable and ErrUnreachable is returned.
//
// The loop is iterative; no recursion depth grows with the graph.
//
// Complexity:
//
//   - Time:  O(V²) (full frontier scan per selection; each node has ≤ 2 links).
//   - Space: O(V) for the label store.
//
// Tie handling:
//
//   - Relabeling uses strict "<": a later path of equal length never replaces
//     the recorded predecessor.
//   - Selection keeps the first minimum met in graph order.
//
// Both rules make every run on the same graph reproduce the same path.
//
// Errors:
//
//   - ErrNilGraph         graph pointer is nil.
//   - grid.ErrNilNode     origin or destination is nil (wrapped).
//   - grid.ErrNodeNotFound origin or destination is not in the graph (wrapped).
//   - ErrUnreachable      no path from origin to destination.
//
// Thread safety:
//
//   - The graph is only read. Every run owns its label store, so any number of
//     runs may share one graph concurrently.
//
// Example usage:
//
//	path, err := dijkstra.ShortestPath(g, g.Root(), g.Destination())
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // no route
//	}
//	dist, err := dijkstra.ShortestDistance(g, g.Root(), g.Destination())
package dijkstra
