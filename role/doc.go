// Package role exposes, for one computation, exactly the operations a node
// needs for the role it currently plays in the shortest-path loop.
//
// Three contracts are defined over the single grid.Node type:
//
//   - CurrentIntersection: the node being expanded. It can list its grid
//     neighbors (south, then east) that are still in the frontier.
//   - Neighbor: a node reached from the current intersection. It can try to
//     take a smaller tentative distance.
//   - DistanceOracle: played by the graph, not by a node. It answers the
//     distance between two nodes so the engine never reaches into the
//     graph's weight table.
//
// A Dispatcher is bound to one graph and one label.Store. Each call to
// Current, Neighbor, or Oracle returns a fresh handle that carries no state
// of its own; handles are meant to be used within one step and dropped. The
// node itself stays plain data: the same *grid.Node can be a Neighbor in one
// step and the CurrentIntersection in the next.
//
// Handles assume their nodes belong to the bound graph. A foreign node is a
// contract violation in graph construction and panics.
package role
