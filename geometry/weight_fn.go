package geometry

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/manhattan/grid"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w is outside [grid.MinWeight, grid.MaxWeight].
func ConstantWeightFn(w int64) WeightFn {
	if w < grid.MinWeight || w > grid.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: weight must be in [%d, %d], got %d", grid.MinWeight, grid.MaxWeight, w))
	}

	return func(_ *rand.Rand) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics unless grid.MinWeight ≤ min ≤ max ≤ grid.MaxWeight.
// With a nil RNG it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < grid.MinWeight || max < min || max > grid.MaxWeight {
		panic(fmt.Sprintf("UniformWeightFn: require %d ≤ min ≤ max ≤ %d, got min=%d, max=%d",
			grid.MinWeight, grid.MaxWeight, min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
