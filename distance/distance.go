// Package distance sums edge weights along a path. It asks the graph for
// each hop through the role.DistanceOracle contract, the same weight source
// the engine relaxes with, so the total always agrees with the engine's
// relaxation history.
package distance

import (
	"fmt"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/role"
)

// Total walks path in traversal order and sums DistanceBetween(prev, curr)
// for each consecutive pair. Paths of zero or one node have total 0.
// A missing edge makes the total grid.Infinity; the sum saturates there and
// never wraps. Use Of to reject such paths instead.
// Complexity: O(len(path)).
func Total(oracle role.DistanceOracle, path grid.Path) int64 {
	var sum int64
	for i := 1; i < len(path); i++ {
		w := oracle.DistanceBetween(path[i-1], path[i])
		if w >= grid.Infinity-sum {
			return grid.Infinity
		}
		sum += w
	}

	return sum
}

// Of validates path against g and returns its total.
//
// Returns:
//   - grid.ErrNilNode / grid.ErrNodeNotFound if a node is invalid.
//   - grid.ErrNoEdge if a consecutive pair has no direct edge.
//
// Complexity: O(len(path)).
func Of(g *grid.Graph, path grid.Path) (int64, error) {
	for i, n := range path {
		if n == nil {
			return 0, fmt.Errorf("distance: hop %d: %w", i, grid.ErrNilNode)
		}
		if !g.Has(n) {
			return 0, fmt.Errorf("distance: hop %d %q: %w", i, n.Name(), grid.ErrNodeNotFound)
		}
		if i > 0 && !g.HasEdge(path[i-1], n) {
			return 0, fmt.Errorf("distance: hop %d: %w: %s→%s", i, grid.ErrNoEdge, path[i-1].Name(), n.Name())
		}
	}

	return Total(role.GraphOracle(g), path), nil
}
