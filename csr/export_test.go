// SPDX-License-Identifier: MIT

package csr

// Test-only bridges into private state, used to build corrupted matrices for Validate.

// SetColumnForTest overwrites colIndices[i].
func (m *Matrix) SetColumnForTest(i int, c uint32) { m.colIndices[i] = c }

// SetLastRowForTest overwrites the append cursor.
func (m *Matrix) SetLastRowForTest(r uint32) { m.lastRow = r }

// SetNNZForTest overwrites the stored entry count.
func (m *Matrix) SetNNZForTest(n uint32) { m.nnz = n }

// GapStepForTest exposes the populator's step computation.
func GapStepForTest(density float64) int { return gapStep(density) }
