// SPDX-License-Identifier: MIT

package csr_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecsr/csr"
)

func TestNew_EmptyMatrix(t *testing.T) {
	m := mustNew(t, 4, 7, 0.25)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 7, m.Cols())
	require.Equal(t, 0.25, m.Density())
	require.Equal(t, 7, m.Capacity()) // floor(28*0.25)
	require.Zero(t, m.NNZ())
	require.Equal(t, csr.GrowReject, m.Growth())
	require.Equal(t, []uint32{0, 0, 0, 0, 0}, m.RowOffsets())
	require.Empty(t, m.ColIndices())
	require.Empty(t, m.Values())
	require.NoError(t, m.Validate())
	require.Equal(t, "csr.Matrix 4x7 nnz=0 capacity=7 density=0.25", m.String())
}

func TestNew_LogsAllocation(t *testing.T) {
	var buf bytes.Buffer
	m := mustNew(t, 10, 10, 0.1, csr.WithLogger(bufferLogger(&buf)))
	require.NotNil(t, m.Logger())

	out := buf.String()
	require.Contains(t, out, "generating matrix")
	require.Contains(t, out, "allocated matrix")
	require.Contains(t, out, "capacity=10")
	require.Contains(t, out, "Matrix was generated in")
}

func TestRelease(t *testing.T) {
	var buf bytes.Buffer
	m := mustNew(t, 3, 3, 0.5, csr.WithLogger(bufferLogger(&buf)))
	appendAll(t, m, triple{0, 0, 1})

	require.NoError(t, m.Release())
	require.True(t, m.Released())
	require.Contains(t, buf.String(), "freeing matrix")

	require.ErrorIs(t, m.Release(), csr.ErrReleased)
	require.ErrorIs(t, m.AppendElement(0, 0, 1), csr.ErrReleased)
	require.ErrorIs(t, m.InsertElement(0, 0, 1), csr.ErrReleased)
	_, err := m.Multiply([]float64{1, 2, 3})
	require.ErrorIs(t, err, csr.ErrReleased)
	require.ErrorIs(t, m.Validate(), csr.ErrReleased)
	require.Nil(t, m.RowOffsets())
	require.Nil(t, m.Values())
	require.Zero(t, m.NNZ())
}

func TestNilMatrix(t *testing.T) {
	var m *csr.Matrix
	require.Equal(t, "csr.Matrix(nil)", m.String())
	require.ErrorIs(t, m.AppendElement(0, 0, 1), csr.ErrNilMatrix)
	require.ErrorIs(t, m.Validate(), csr.ErrNilMatrix)
	_, err := m.Populate(fixedSource{})
	require.ErrorIs(t, err, csr.ErrNilMatrix)
	require.Equal(t, csr.KindInvalidConfig, csr.KindOf(err))
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := mustNew(t, 2, 2, 0.5)
	appendAll(t, m, triple{0, 1, 5}, triple{1, 0, 6})

	cols := m.ColIndices()
	cols[0] = 99
	vals := m.Values()
	vals[0] = -1
	offs := m.RowOffsets()
	offs[1] = 42

	require.Equal(t, []uint32{1, 0}, m.ColIndices())
	require.Equal(t, []float64{5, 6}, m.Values())
	require.Equal(t, []uint32{0, 1, 2}, m.RowOffsets())
}
