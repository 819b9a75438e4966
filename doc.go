// Package manhattan finds shortest routes across Manhattan-style street
// grids, where every intersection has at most one neighbor to the east and
// one to the south.
//
// The engine is Dijkstra's algorithm driven through role handles: the same
// intersection is the "current" node in one step and a "neighbor" under
// relaxation in another, while the graph answers distance queries as an
// oracle. Nodes stay plain data; the behavior lives in the handles.
//
// Subpackages:
//
//	grid/      — immutable graph model: Node, Graph, Builder, Path, Infinity
//	label/     — per-run label store: tentative distance, visited, predecessor
//	role/      — role dispatcher: CurrentIntersection, Neighbor, DistanceOracle
//	dijkstra/  — the shortest-path engine (ShortestPath, ShortestDistance, Run)
//	distance/  — sums weights along a path through the oracle role
//	geometry/  — reference geometries, lattices, YAML descriptions
//
// Quick ASCII example (Manhattan1):
//
//	a - 2 - b - 3 - c
//	|       |       |
//	1       2       1
//	|       |       |
//	d - 1 - e - 1 - f
//	|               |
//	2               4
//	|               |
//	g - 1 - h - 2 - i
//
//	g := geometry.Manhattan1()
//	path, _ := dijkstra.ShortestPath(g, g.Root(), g.Destination()) // a d g h i
//	dist, _ := dijkstra.ShortestDistance(g, g.Root(), g.Destination()) // 6
package manhattan
