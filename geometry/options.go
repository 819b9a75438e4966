// SPDX-License-Identifier: MIT
// Package: manhattan/geometry
//
// options.go — functional options for Lattice.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves return errors and never panic.
//   • Defaults are deterministic: no RNG, constant weight 1.

package geometry

import "math/rand"

// LatticeOption customizes Lattice by mutating a latticeConfig.
type LatticeOption func(*latticeConfig)

// latticeConfig aggregates the knobs used by Lattice. Passed by value.
type latticeConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn
}

// newLatticeConfig applies opts in order over deterministic defaults.
func newLatticeConfig(opts ...LatticeOption) latticeConfig {
	cfg := latticeConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) LatticeOption {
	if r == nil {
		panic("geometry: WithRand(nil)")
	}
	return func(c *latticeConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so weights are reproducible.
func WithSeed(seed int64) LatticeOption {
	return func(c *latticeConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) LatticeOption {
	if fn == nil {
		panic("geometry: WithWeightFn(nil)")
	}
	return func(c *latticeConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) LatticeOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max].
// Combine with WithSeed or WithRand; without an RNG every weight is min.
func WithUniformWeight(min, max int64) LatticeOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
