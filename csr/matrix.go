// SPDX-License-Identifier: MIT

// Package csr - Matrix storage, allocation and lifecycle.
//
// Purpose:
//   - Hold a rows×cols sparse matrix as three parallel arrays: rowOffsets (rows+1),
//     colIndices and values (both sized to the reserved capacity).
//   - Keep rowOffsets[rows] == nnz as the single authoritative end of the last row.
//
// Append frontier:
//   - rowOffsets[0..frontier] are stored physically; rows after the frontier
//     logically start at nnz. Appends move the frontier forward and fill only the
//     rows they pass, which keeps AppendElement O(1) amortized.
//   - offset(r) is the only reader of rowOffsets; it returns the logical value.
//   - InsertElement materializes the whole array before shifting.
//
// Complexity quicksheet:
//   - New: O(rows + capacity) zero-init; offset: O(1); RowOffsets: O(rows).
package csr

import (
	"fmt"
	"log/slog"
)

// Matrix is a CSR sparse matrix with a fixed (or explicitly growable) capacity.
// A Matrix is owned by its creator and is not safe for concurrent mutation.
type Matrix struct {
	rows, cols uint32
	density    float64
	nnz        uint32

	rowOffsets []uint32  // len rows+1; authoritative up to frontier
	colIndices []uint32  // len capacity
	values     []float64 // len capacity

	frontier uint32 // last row whose offset is stored physically
	lastRow  uint32 // highest row holding an entry; 0 while empty
	released bool

	opts options
}

// New plans and allocates an empty rows×cols matrix for the given density.
// Capacity is floor(rows*cols*density). Allocation failures are returned as
// *AllocationError (KindFatal); the caller cannot proceed with this matrix.
func New(rows, cols int, density float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	tok := o.watch.Start()
	o.logger.Info("generating matrix", "rows", rows, "cols", cols, "density", density)

	p, err := plan(rows, cols, density, o)
	if err != nil {
		o.logger.Error("unable to plan matrix", "rows", rows, "cols", cols, "density", density, "error", err)
		return nil, err
	}

	offsets, err := allocate[uint32]("rowOffsets", int(p.Rows)+1, p.OffsetBytes)
	if err != nil {
		o.logger.Error("unable to allocate matrix", "error", err)
		return nil, err
	}
	cols32, err := allocate[uint32]("colIndices", int(p.Capacity), p.IndexBytes)
	if err != nil {
		o.logger.Error("unable to allocate matrix", "error", err)
		return nil, err
	}
	vals, err := allocate[float64]("values", int(p.Capacity), p.ValueBytes)
	if err != nil {
		o.logger.Error("unable to allocate matrix", "error", err)
		return nil, err
	}

	m := &Matrix{
		rows:       p.Rows,
		cols:       p.Cols,
		density:    density,
		rowOffsets: offsets,
		colIndices: cols32,
		values:     vals,
		opts:       o,
	}
	o.logger.Info("allocated matrix",
		"capacity", p.Capacity,
		"bytes", p.TotalBytes(),
		"gb", fmt.Sprintf("%.6f", float64(p.TotalBytes())/1e9),
	)
	o.watch.Stop("Matrix was generated in", tok)

	return m, nil
}

// allocate reserves n zeroed elements, converting a runtime allocation panic
// into an *AllocationError. Out-of-memory aborts the runtime and cannot be caught.
func allocate[T any](resource string, n int, bytes uint64) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = &AllocationError{Resource: resource, Bytes: bytes, Cause: fmt.Errorf("%v", r)}
		}
	}()
	if n < 0 {
		return nil, &AllocationError{Resource: resource, Bytes: bytes}
	}
	return make([]T, n), nil
}

// Release drops the backing arrays. Every later operation returns ErrReleased.
func (m *Matrix) Release() error {
	if err := m.usable("Matrix.Release"); err != nil {
		return err
	}
	m.opts.logger.Info("freeing matrix", "rows", m.rows, "cols", m.cols, "nnz", m.nnz)
	m.rowOffsets, m.colIndices, m.values = nil, nil, nil
	m.nnz, m.frontier, m.lastRow = 0, 0, 0
	m.released = true
	return nil
}

// usable rejects nil and released matrices.
func (m *Matrix) usable(method string) error {
	if m == nil {
		return methodErrorf(method, ErrNilMatrix)
	}
	if m.released {
		return methodErrorf(method, ErrReleased)
	}
	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return int(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return int(m.cols) }

// Density returns the density the matrix was planned with.
func (m *Matrix) Density() float64 { return m.density }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return int(m.nnz) }

// Capacity returns the number of reserved entry slots.
func (m *Matrix) Capacity() int { return len(m.colIndices) }

// Growth returns the capacity policy in effect.
func (m *Matrix) Growth() GrowthPolicy { return m.opts.growth }

// Released reports whether Release has been called.
func (m *Matrix) Released() bool { return m.released }

// Logger returns the logger the matrix reports through.
func (m *Matrix) Logger() *slog.Logger { return m.opts.logger }

// offset returns the logical rowOffsets[r].
func (m *Matrix) offset(r uint32) uint32 {
	if r > m.frontier {
		return m.nnz
	}
	return m.rowOffsets[r]
}

// materialize stores every logical offset physically.
func (m *Matrix) materialize() {
	for r := m.frontier + 1; r <= m.rows; r++ {
		m.rowOffsets[r] = m.nnz
	}
	m.frontier = m.rows
}

// RowOffsets returns a copy of the rows+1 logical row offsets.
func (m *Matrix) RowOffsets() []uint32 {
	if m.usable("Matrix.RowOffsets") != nil {
		return nil
	}
	out := make([]uint32, m.rows+1)
	for r := range out {
		out[r] = m.offset(uint32(r))
	}
	return out
}

// ColIndices returns a copy of the nnz stored column indices.
func (m *Matrix) ColIndices() []uint32 {
	if m.usable("Matrix.ColIndices") != nil {
		return nil
	}
	return append([]uint32(nil), m.colIndices[:m.nnz]...)
}

// Values returns a copy of the nnz stored values.
func (m *Matrix) Values() []float64 {
	if m.usable("Matrix.Values") != nil {
		return nil
	}
	return append([]float64(nil), m.values[:m.nnz]...)
}

// String summarizes shape and occupancy.
func (m *Matrix) String() string {
	if m == nil {
		return "csr.Matrix(nil)"
	}
	return fmt.Sprintf("csr.Matrix %dx%d nnz=%d capacity=%d density=%g",
		m.rows, m.cols, m.nnz, len(m.colIndices), m.density)
}
