// SPDX-License-Identifier: MIT

package csr_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsecsr/csr"
	"github.com/katalvlaran/sparsecsr/matrix"
	"github.com/katalvlaran/sparsecsr/randint"
	"github.com/katalvlaran/sparsecsr/stopwatch"
)

// smallMatrix is the 3x3 fixture
//
//	[2 0 0]
//	[0 3 0]
//	[1 0 4]
func smallMatrix(tb testing.TB, opts ...csr.Option) *csr.Matrix {
	tb.Helper()
	m := mustNew(tb, 3, 3, 0.5, opts...) // capacity 4
	appendAll(tb, m, triple{0, 0, 2}, triple{1, 1, 3}, triple{2, 0, 1}, triple{2, 2, 4})
	return m
}

func TestMultiply_Small(t *testing.T) {
	m := smallMatrix(t)
	y, err := m.Multiply([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 6, 13}, y)
}

func TestMultiply_LastRowUsesSentinel(t *testing.T) {
	m := mustNew(t, 3, 3, 0.5)
	appendAll(t, m, triple{0, 1, 5})

	y, err := m.Multiply([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 0, 0}, y)

	require.NoError(t, m.InsertElement(2, 2, 7))
	y, err = m.Multiply([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 0, 7}, y)
}

func TestMultiplyTo_OverwritesDst(t *testing.T) {
	m := smallMatrix(t)
	dst := []float64{-1, -1, -1}
	require.NoError(t, m.MultiplyTo(dst, []float64{0, 0, 0}))
	require.Equal(t, []float64{0, 0, 0}, dst)
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	m := smallMatrix(t)
	_, err := m.Multiply([]float64{1, 2})
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
	require.Equal(t, csr.KindInvalidConfig, csr.KindOf(err))

	err = m.MultiplyTo(make([]float64, 2), []float64{1, 2, 3})
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
}

func TestMultiply_MatchesDense(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		src := randint.New(seed)
		m := mustNew(t, 37, 53, 0.2)
		_, err := m.Populate(src)
		require.NoError(t, err)

		x, err := csr.RandomVector(src, m.Cols())
		require.NoError(t, err)
		got, err := m.Multiply(x)
		require.NoError(t, err)

		d, err := m.Dense()
		require.NoError(t, err)
		var want mat.VecDense
		want.MulVec(d, mat.NewVecDense(len(x), x))

		require.InDeltaSlice(t, want.RawVector().Data, got, 1e-2, "seed %d", seed)

		// Same product through the reference kernel: the At path on the
		// sparse store itself and the flat path on its dense export.
		viaAt, err := matrix.MatVec(m, x)
		require.NoError(t, err)
		rd, err := m.ToDense()
		require.NoError(t, err)
		viaDense, err := matrix.MatVec(rd, x)
		require.NoError(t, err)

		delta, err := matrix.MaxAbsDelta(viaAt, got)
		require.NoError(t, err)
		require.LessOrEqual(t, delta, 1e-2, "seed %d", seed)
		require.InDeltaSlice(t, viaDense, got, 1e-2, "seed %d", seed)
	}
}

func TestMultiply_MatchesMatVecWithDuplicates(t *testing.T) {
	m := mustNew(t, 2, 3, 0.5, csr.WithGrowth(csr.GrowDouble))
	appendAll(t, m, triple{0, 2, 1}, triple{0, 2, 2}, triple{1, 0, -4})
	x := []float64{1, 5, 10}

	got, err := m.Multiply(x)
	require.NoError(t, err)
	require.Equal(t, []float64{30, -4}, got)

	want, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMultiply_TimedByStopwatch(t *testing.T) {
	var buf bytes.Buffer
	now := time.Unix(0, 0)
	sw := stopwatch.New(
		stopwatch.WithLogger(bufferLogger(&buf)),
		stopwatch.WithLevel(slog.LevelDebug),
		stopwatch.WithClock(func() time.Time {
			now = now.Add(2 * time.Millisecond)
			return now
		}),
	)
	m := smallMatrix(t, csr.WithStopwatch(sw))
	issued := sw.Issued()

	_, err := m.Multiply([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, issued+1, sw.Issued())
	require.Contains(t, buf.String(), "Multiplication computed in")
	require.Contains(t, buf.String(), "elapsed=2.0ms")
}
