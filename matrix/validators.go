// SPDX-License-Identifier: MIT
// Package matrix: argument validators shared by the algorithms.
// Validators return wrapped sentinels and never panic.

package matrix

// ValidateNotNil ensures m is a non-nil Matrix.
// Return: nil or wrapped ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Return: nil, wrapped ErrNilMatrix (nil vector) or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// A nil vector reuses the "nil argument" sentinel.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
