// SPDX-License-Identifier: MIT
// Package: manhattan/geometry
//
// errors.go — sentinel errors for the geometry package.
//
// Callers branch with errors.Is; context is attached with %w.

package geometry

import "errors"

// ErrTooFewNodes indicates a Lattice dimension smaller than 1.
var ErrTooFewNodes = errors.New("geometry: parameter too small")

// ErrDescription indicates a graph description that cannot be turned into a
// graph: bad YAML, unknown fields, duplicate or unknown names.
var ErrDescription = errors.New("geometry: invalid description")
