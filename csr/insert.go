// SPDX-License-Identifier: MIT

// Package csr - element insertion.
//
// Two paths share one structural contract:
//   - AppendElement: O(1) amortized. Rows must be visited in non-decreasing order
//     relative to the last occupied row; columns inside a row are not sorted.
//   - InsertElement: O(nnz-pos + rows). Any row, any time; the entry lands at the
//     end of its row and everything behind it shifts right by one.
//
// Both reject invalid input without mutating the matrix and log the rejection at Warn.
// Capacity exhaustion follows the matrix GrowthPolicy.
package csr

import (
	"math"

	"github.com/katalvlaran/sparsecsr/arrayops"
)

const (
	ctxAppend = "AppendElement"
	ctxInsert = "InsertElement"
)

// AppendElement stores (row, col, value) behind the last entry.
func (m *Matrix) AppendElement(row, col int, value float64) error {
	if err := m.usable("Matrix." + ctxAppend); err != nil {
		return err
	}
	if err := m.checkIndex(row, col); err != nil {
		return m.reject(ctxAppend, row, col, err)
	}
	r := uint32(row)
	if r < m.lastRow {
		return m.reject(ctxAppend, row, col, ErrOutOfOrder)
	}
	if err := m.reserve(); err != nil {
		return m.reject(ctxAppend, row, col, err)
	}

	// Rows passed since the frontier are empty and start at the current nnz.
	for f := m.frontier + 1; f <= r; f++ {
		m.rowOffsets[f] = m.nnz
	}
	m.frontier = r

	m.colIndices[m.nnz] = uint32(col)
	m.values[m.nnz] = value
	m.nnz++
	m.lastRow = r

	return nil
}

// InsertElement stores (row, col, value) at the end of row's block,
// shifting every later entry right and bumping the offsets of all later rows.
func (m *Matrix) InsertElement(row, col int, value float64) error {
	if err := m.usable("Matrix." + ctxInsert); err != nil {
		return err
	}
	if err := m.checkIndex(row, col); err != nil {
		return m.reject(ctxInsert, row, col, err)
	}
	if err := m.reserve(); err != nil {
		return m.reject(ctxInsert, row, col, err)
	}

	m.materialize()
	r := uint32(row)
	pos := int(m.rowOffsets[r+1]) // rowOffsets[rows] == nnz for the last row
	size := int(m.nnz)

	if err := arrayops.Insert(m.colIndices, size, pos, uint32(col)); err != nil {
		return matrixErrorf(ctxInsert, row, col, err)
	}
	if err := arrayops.Insert(m.values, size, pos, value); err != nil {
		// colIndices already shifted; undo it so the arrays stay parallel.
		copy(m.colIndices[pos:size], m.colIndices[pos+1:size+1])
		return matrixErrorf(ctxInsert, row, col, err)
	}
	m.nnz++

	for i := r + 1; i <= m.rows; i++ {
		m.rowOffsets[i]++
	}
	if r > m.lastRow {
		m.lastRow = r
	}

	return nil
}

// checkIndex validates 0 <= row < rows and 0 <= col < cols.
func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || col < 0 || uint64(row) >= uint64(m.rows) || uint64(col) >= uint64(m.cols) {
		return ErrOutOfRange
	}
	return nil
}

// reserve guarantees one free slot, growing when the policy allows it.
func (m *Matrix) reserve() error {
	capacity := uint64(len(m.colIndices))
	if uint64(m.nnz) < capacity {
		return nil
	}
	if m.opts.growth != GrowDouble || capacity >= math.MaxUint32 {
		return ErrCapacityExceeded
	}

	next := capacity * 2
	if next == 0 {
		next = 1
	}
	if next > math.MaxUint32 {
		next = math.MaxUint32
	}

	cols, err := allocate[uint32]("colIndices", int(next), next*indexBytes)
	if err != nil {
		return err
	}
	vals, err := allocate[float64]("values", int(next), next*valueBytes)
	if err != nil {
		return err
	}
	copy(cols, m.colIndices[:m.nnz])
	copy(vals, m.values[:m.nnz])
	m.colIndices, m.values = cols, vals

	m.opts.logger.Debug("grew matrix capacity", "from", capacity, "to", next)
	return nil
}

// reject logs a refused insertion and wraps err with its coordinates.
func (m *Matrix) reject(method string, row, col int, err error) error {
	m.opts.logger.Warn("rejected insertion", "op", method, "row", row, "col", col, "error", err)
	return matrixErrorf(method, row, col, err)
}
