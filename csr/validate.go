// SPDX-License-Identifier: MIT

// Package csr - structural invariant checks.
//
// Validate checks, in order:
//  1. array shapes: len(rowOffsets) == rows+1, len(colIndices) == len(values);
//  2. 0 <= nnz <= capacity;
//  3. offset(0) == 0, offsets non-decreasing, offset(rows) == nnz;
//  4. every stored column index < cols;
//  5. the append cursor (last occupied row) matches the stored entries.
//
// Violations return ErrCorrupt wrapped with the failed check. O(rows + nnz).
package csr

import (
	"fmt"
)

const ctxValidate = "Matrix.Validate"

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", ctxValidate, fmt.Sprintf(format, args...), ErrCorrupt)
}

// Validate verifies the CSR invariants.
func (m *Matrix) Validate() error {
	if err := m.usable(ctxValidate); err != nil {
		return err
	}

	if uint64(len(m.rowOffsets)) != uint64(m.rows)+1 {
		return corruptf("len(rowOffsets)=%d, want %d", len(m.rowOffsets), uint64(m.rows)+1)
	}
	if len(m.colIndices) != len(m.values) {
		return corruptf("len(colIndices)=%d != len(values)=%d", len(m.colIndices), len(m.values))
	}
	if int(m.nnz) > len(m.colIndices) {
		return corruptf("nnz=%d exceeds capacity=%d", m.nnz, len(m.colIndices))
	}
	if m.frontier > m.rows {
		return corruptf("append frontier %d beyond rows %d", m.frontier, m.rows)
	}

	if first := m.offset(0); first != 0 {
		return corruptf("offset[0]=%d, want 0", first)
	}
	for r := uint32(0); r < m.rows; r++ {
		if lo, hi := m.offset(r), m.offset(r+1); lo > hi {
			return corruptf("offsets decrease at row %d (%d > %d)", r, lo, hi)
		}
	}
	if last := m.offset(m.rows); last != m.nnz {
		return corruptf("offset[rows]=%d, want nnz=%d", last, m.nnz)
	}

	for i, c := range m.colIndices[:m.nnz] {
		if c >= m.cols {
			return corruptf("colIndices[%d]=%d outside [0,%d)", i, c, m.cols)
		}
	}

	if m.nnz > 0 {
		if owner := m.rowOf(m.nnz - 1); uint32(owner) != m.lastRow {
			return corruptf("last occupied row %d, cursor says %d", owner, m.lastRow)
		}
	} else if m.lastRow != 0 {
		return corruptf("empty matrix with cursor at row %d", m.lastRow)
	}

	return nil
}
