// SPDX-License-Identifier: MIT
// Package matrix provides a small dense reference surface used to cross-check
// sparse kernels: a read-only Matrix contract, a row-major Dense
// implementation and MatVec.
//
// Any type with Rows, Cols and a bounds-checked At satisfies Matrix, so a
// sparse store can be fed to MatVec directly (generic At path) or exported
// into a Dense first (flat fast path). Both paths visit entries in fixed
// i→j order, so results are deterministic for a given input.

package matrix

// Matrix is the read-only contract MatVec consumes.
//
// Contract:
//   - Rows() and Cols() are non-negative and stable for the value's lifetime.
//   - At(i, j) returns ErrOutOfRange (wrapped) for indices outside the shape.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or an error wrapping ErrOutOfRange.
	At(i, j int) (float64, error)
}

// Compile-time conformance.
var _ Matrix = (*Dense)(nil)
