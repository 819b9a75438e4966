// SPDX-License-Identifier: MIT
// Package: manhattan/geometry
//
// Package geometry builds grid.Graph values for the shortest-path engine.
// It is the graph-construction side of the library: the engine itself never
// creates or prints graphs.
//
// Constructors:
//   • Manhattan1 — the 3×3 reference geometry, root "a", destination "i".
//   • Manhattan2 — the 11-node reference geometry, root "a", destination "k".
//   • Lattice(rows, cols, opts...) — a full rows×cols street grid with IDs
//     "r,c", root "0,0", destination "rows-1,cols-1", weights drawn from the
//     configured WeightFn.
//   • Decode / Parse — a YAML description (see Description).
//
// Helpers:
//   • Find — first node with a given name, in graph order.
//   • Describe — renders a path with the weight of every hop.
//
// Determinism:
//   • Node order is the declaration order (row-major for Lattice).
//   • Lattice weights are reproducible for a fixed WithSeed.
//
// Errors:
//   • ErrTooFewNodes — Lattice dimensions below 1.
//   • ErrDescription — malformed YAML description (wraps the cause).
//   • grid sentinels from Builder.Build are passed through wrapped.
package geometry
