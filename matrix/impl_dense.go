// SPDX-License-Identifier: MIT
// Package matrix: Dense row-major implementation.
//
// Dense keeps r*c values in one flat buffer (offset = i*c + j). Set rejects
// NaN/±Inf so a reference product is always computed over finite inputs.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Method tags used in wrapped errors.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxAdd = "Add"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero-filled rows×cols matrix.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Non-finite values are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Add accumulates v into (row, col); duplicate sparse coordinates fold this way.
// Complexity: O(1).
func (m *Dense) Add(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAdd, row, col, err)
	}
	sum := m.data[off] + v
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] = sum

	return nil
}

// Clone returns a deep copy with a new buffer.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String renders the matrix as "[[a, b], [c, d]]" using the shortest
// round-trip float formatting.
func (m *Dense) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
