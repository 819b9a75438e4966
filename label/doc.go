// Package label holds the per-computation state of one shortest-path run:
// tentative distance, visited flag, and predecessor for every node of a
// grid.Graph.
//
// A Store is created fresh by New at the start of a run, mutated only by
// relaxation, and dropped when the run ends. It is never shared between
// computations; two concurrent runs on the same graph use two Stores.
//
// Relabel applies a candidate distance only when it is strictly smaller
// than the current one. Ties never relabel, so the first predecessor that
// reached a node with a given distance is kept.
//
// All methods assume the node belongs to the Store's graph. Passing a
// foreign node is a programming error and panics.
package label
