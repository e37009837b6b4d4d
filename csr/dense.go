// SPDX-License-Identifier: MIT

// Package csr - element access and dense export.
package csr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsecsr/matrix"
)

const (
	ctxAt      = "At"
	ctxDense   = "Matrix.Dense"
	ctxToDense = "Matrix.ToDense"
)

var _ matrix.Matrix = (*Matrix)(nil)

// At returns the value at (row, col): the sum of every entry stored there, or
// zero when none is. It scans the stored entries of row, so it satisfies
// matrix.Matrix for reference checks; use Multiply for products.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.usable("Matrix." + ctxAt); err != nil {
		return 0, err
	}
	if err := m.checkIndex(row, col); err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}
	r, c := uint32(row), uint32(col)
	var sum float64
	for j, hi := m.offset(r), m.offset(r+1); j < hi; j++ {
		if m.colIndices[j] == c {
			sum += m.values[j]
		}
	}
	return sum, nil
}

// visit calls fn for every stored entry in row-major storage order.
func (m *Matrix) visit(fn func(row, col int, v float64) error) error {
	lo := m.offset(0)
	for r := uint32(0); r < m.rows; r++ {
		hi := m.offset(r + 1)
		for j := lo; j < hi; j++ {
			if err := fn(int(r), int(m.colIndices[j]), m.values[j]); err != nil {
				return err
			}
		}
		lo = hi
	}
	return nil
}

// Dense expands the matrix into a gonum *mat.Dense. Entries stored more than
// once at the same (row, col) are summed, matching Multiply.
// Memory is rows*cols*8 bytes; intended for small matrices and cross-checks.
func (m *Matrix) Dense() (*mat.Dense, error) {
	if err := m.usable(ctxDense); err != nil {
		return nil, err
	}
	d := mat.NewDense(int(m.rows), int(m.cols), nil)
	_ = m.visit(func(row, col int, v float64) error {
		d.Set(row, col, d.At(row, col)+v)
		return nil
	})
	return d, nil
}

// ToDense expands the matrix into a row-major *matrix.Dense, summing
// duplicates like Dense. A non-finite sum is reported as matrix.ErrNaNInf.
func (m *Matrix) ToDense() (*matrix.Dense, error) {
	if err := m.usable(ctxToDense); err != nil {
		return nil, err
	}
	d, err := matrix.NewDense(int(m.rows), int(m.cols))
	if err != nil {
		return nil, methodErrorf(ctxToDense, err)
	}
	if err := m.visit(d.Add); err != nil {
		return nil, methodErrorf(ctxToDense, err)
	}
	return d, nil
}
