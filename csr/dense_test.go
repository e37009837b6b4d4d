// SPDX-License-Identifier: MIT

package csr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecsr/csr"
	"github.com/katalvlaran/sparsecsr/matrix"
)

func TestAt(t *testing.T) {
	m := smallMatrix(t)
	want := [][]float64{{2, 0, 0}, {0, 3, 0}, {1, 0, 4}}
	for i, row := range want {
		for j, v := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, v, got, "At(%d,%d)", i, j)
		}
	}
}

func TestAt_RowsPastFrontier(t *testing.T) {
	m := mustNew(t, 3, 3, 0.5)
	appendAll(t, m, triple{0, 1, 5})

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	for _, row := range []int{1, 2} {
		v, err = m.At(row, 1)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestAt_SumsDuplicates(t *testing.T) {
	m := mustNew(t, 2, 2, 0.75)
	appendAll(t, m, triple{1, 0, 1.25}, triple{1, 0, 0.5})
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.75, v)
}

func TestAt_Errors(t *testing.T) {
	m := smallMatrix(t)
	_, err := m.At(3, 0)
	require.ErrorIs(t, err, csr.ErrOutOfRange)
	require.EqualError(t, err, "Matrix.At(3,0): csr: index out of range")
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, csr.ErrOutOfRange)

	var nilMatrix *csr.Matrix
	_, err = nilMatrix.At(0, 0)
	require.ErrorIs(t, err, csr.ErrNilMatrix)

	require.NoError(t, m.Release())
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, csr.ErrReleased)

	// MatVec surfaces the store's own sentinel through its At path.
	_, err = matrix.MatVec(m, []float64{1, 2, 3})
	require.ErrorIs(t, err, csr.ErrReleased)
}

func TestToDense(t *testing.T) {
	d, err := smallMatrix(t).ToDense()
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.Equal(t, "[[2, 0, 0], [0, 3, 0], [1, 0, 4]]", d.String())
}

func TestToDense_NonFiniteSum(t *testing.T) {
	m := mustNew(t, 1, 2, 0.99)
	appendAll(t, m, triple{0, 0, math.Inf(1)})
	_, err := m.ToDense()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "Matrix.ToDense: Dense.Add(0,0)")
}
