// SPDX-License-Identifier: MIT
// Package: manhattan/geometry
//
// lattice.go — Lattice(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • Nodes in row-major order named "r,c".
//   • Each cell links east to (r, c+1) and south to (r+1, c) where they exist.
//   • Weight per link from cfg.weightFn(cfg.rng); streets are drawn before
//     avenues for each cell, so a fixed seed gives a fixed graph.
//   • Root "0,0", destination "rows-1,cols-1".

package geometry

import (
	"fmt"

	"github.com/katalvlaran/manhattan/grid"
)

const (
	methodLattice = "Lattice"
	minLatticeDim = 1
	latticeIDFmt  = "%d,%d"
)

// Lattice builds a rows×cols street grid.
// Complexity: O(rows*cols) time and space.
func Lattice(rows, cols int, opts ...LatticeOption) (*grid.Graph, error) {
	if rows < minLatticeDim || cols < minLatticeDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodLattice, rows, cols, minLatticeDim, ErrTooFewNodes)
	}
	cfg := newLatticeConfig(opts...)

	b := grid.NewBuilder()
	cells := make([]*grid.Node, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, b.AddNode(fmt.Sprintf(latticeIDFmt, r, c)))
		}
	}
	at := func(r, c int) *grid.Node { return cells[r*cols+c] }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := at(r, c)
			if c+1 < cols {
				b.Street(u, at(r, c+1), cfg.weightFn(cfg.rng))
			}
			if r+1 < rows {
				b.Avenue(u, at(r+1, c), cfg.weightFn(cfg.rng))
			}
		}
	}

	g, err := b.Root(at(0, 0)).Destination(at(rows-1, cols-1)).Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLattice, err)
	}

	return g, nil
}
