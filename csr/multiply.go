// SPDX-License-Identifier: MIT

// Package csr - sparse matrix-vector multiplication.
//
// For every row r: dst[r] = Σ values[j] * x[colIndices[j]], j ∈ [offset(r), offset(r+1)).
// The last row is bounded by offset(rows) == nnz like every other row.
//
// Complexity: O(rows + nnz) time, O(1) extra space (MultiplyTo).
package csr

const (
	ctxMultiply   = "Matrix.Multiply"
	ctxMultiplyTo = "Matrix.MultiplyTo"
)

// Multiply returns y = M·x. len(x) must equal Cols.
func (m *Matrix) Multiply(x []float64) ([]float64, error) {
	if err := m.usable(ctxMultiply); err != nil {
		return nil, err
	}
	dst := make([]float64, m.rows)
	if err := m.MultiplyTo(dst, x); err != nil {
		return nil, err
	}
	return dst, nil
}

// MultiplyTo writes M·x into dst. len(dst) must equal Rows and len(x) Cols.
// dst is fully overwritten; x is only read.
func (m *Matrix) MultiplyTo(dst, x []float64) error {
	if err := m.usable(ctxMultiplyTo); err != nil {
		return err
	}
	if len(x) != int(m.cols) || len(dst) != int(m.rows) {
		return methodErrorf(ctxMultiplyTo, ErrDimensionMismatch)
	}

	tok := m.opts.watch.Start()
	lo := m.offset(0)
	for r := uint32(0); r < m.rows; r++ {
		hi := m.offset(r + 1)
		var sum float64
		for j := lo; j < hi; j++ {
			sum += m.values[j] * x[m.colIndices[j]]
		}
		dst[r] = sum
		lo = hi
	}
	m.opts.watch.Stop("Multiplication computed in", tok)

	return nil
}
