// SPDX-License-Identifier: MIT
// Package matrix: reference matrix-vector kernels.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot-products.
const ZeroSum = 0.0

// Operation tags used in wrapped errors.
const (
	opMatVec      = "MatVec"
	opMaxAbsDelta = "MaxAbsDelta"
)

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Fallback: any other Matrix is read through At, so sparse stores work
// without conversion.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c) (plus the cost of At on the fallback), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MaxAbsDelta returns max_i |a[i]-b[i]|, the comparison used when checking a
// kernel against MatVec.
// Returns wrapped ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func MaxAbsDelta(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opMaxAbsDelta, ErrDimensionMismatch)
	}
	var worst float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
