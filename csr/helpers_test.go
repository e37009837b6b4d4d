// SPDX-License-Identifier: MIT

package csr_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecsr/csr"
	"github.com/katalvlaran/sparsecsr/logging"
)

// mustNew builds a matrix or fails the test.
func mustNew(tb testing.TB, rows, cols int, density float64, opts ...csr.Option) *csr.Matrix {
	tb.Helper()
	m, err := csr.New(rows, cols, density, opts...)
	require.NoError(tb, err)
	require.NotNil(tb, m)
	return m
}

// triple is a (row, col, value) fixture entry.
type triple struct {
	r, c int
	v    float64
}

// appendAll appends entries in order or fails the test.
func appendAll(tb testing.TB, m *csr.Matrix, entries ...triple) {
	tb.Helper()
	for _, e := range entries {
		require.NoError(tb, m.AppendElement(e.r, e.c, e.v), "append (%d,%d)", e.r, e.c)
	}
}

// bufferLogger returns a debug-level text logger writing into buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return logging.New(logging.Config{Level: slog.LevelDebug, Format: logging.FormatText, Output: buf})
}

// snapshot captures the observable state of a matrix.
type snapshot struct {
	nnz     int
	offsets []uint32
	cols    []uint32
	vals    []float64
}

func snap(m *csr.Matrix) snapshot {
	return snapshot{nnz: m.NNZ(), offsets: m.RowOffsets(), cols: m.ColIndices(), vals: m.Values()}
}

// failingSource errors on every draw.
type failingSource struct{}

var errDraw = errors.New("draw failed")

func (failingSource) RandInt(int, int) (int, error) { return 0, errDraw }
func (failingSource) Value() float64                { return 0 }

// fixedSource always draws the same gap and value.
type fixedSource struct {
	gap   int
	value float64
}

func (s fixedSource) RandInt(min, max int) (int, error) {
	if s.gap < min {
		return min, nil
	}
	if s.gap > max {
		return max, nil
	}
	return s.gap, nil
}
func (s fixedSource) Value() float64 { return s.value }
