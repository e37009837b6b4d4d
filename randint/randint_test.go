// SPDX-License-Identifier: MIT

package randint_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecsr/randint"
)

// TestRandIntClosedRange checks that both ends are reachable and nothing falls outside.
func TestRandIntClosedRange(t *testing.T) {
	g := randint.New(42)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v, err := g.RandInt(-2, 2)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	require.Len(t, seen, 5) // -2..2 all drawn
}

// TestRandIntWideRanges covers spans wider than the int64 range.
func TestRandIntWideRanges(t *testing.T) {
	g := randint.New(1)
	cases := []struct{ min, max int }{
		{math.MinInt, 0},
		{math.MinInt, math.MaxInt},
		{-1, math.MaxInt},
		{math.MinInt + 1, math.MaxInt - 1},
	}
	for _, tc := range cases {
		negative := false
		for i := 0; i < 200; i++ {
			var v int
			require.NotPanics(t, func() {
				var err error
				v, err = g.RandInt(tc.min, tc.max)
				require.NoError(t, err)
			})
			require.GreaterOrEqual(t, v, tc.min)
			require.LessOrEqual(t, v, tc.max)
			negative = negative || v < 0
		}
		if tc.min == math.MinInt {
			require.True(t, negative, "[%d, %d] never drew below zero", tc.min, tc.max)
		}
	}

	a, b := randint.New(5), randint.New(5)
	for i := 0; i < 50; i++ {
		va, _ := a.RandInt(math.MinInt, 0)
		vb, _ := b.RandInt(math.MinInt, 0)
		require.Equal(t, va, vb)
	}
}

// TestRandIntInvalidRange rejects min >= max.
func TestRandIntInvalidRange(t *testing.T) {
	g := randint.New(1)
	_, err := g.RandInt(3, 3)
	require.ErrorIs(t, err, randint.ErrInvalidRange)
	_, err = g.RandInt(4, 3)
	require.ErrorIs(t, err, randint.ErrInvalidRange)
}

// TestDeterministicStreams confirms equal seeds give equal streams and instances do not interfere.
func TestDeterministicStreams(t *testing.T) {
	a, b := randint.New(7), randint.New(7)
	other := randint.New(8)
	for i := 0; i < 100; i++ {
		_, _ = other.RandInt(0, 10) // draws on another instance must not shift a or b
		va, err := a.RandInt(0, 1000)
		require.NoError(t, err)
		vb, err := b.RandInt(0, 1000)
		require.NoError(t, err)
		require.Equal(t, va, vb)
		require.Equal(t, a.Value(), b.Value())
	}
}

// TestValueRange keeps Value non-negative and below 2^31/100.
func TestValueRange(t *testing.T) {
	g := randint.FromRand(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		v := g.Value()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, float64(1<<31)/100)
	}
}

func TestFromRandNilPanics(t *testing.T) {
	require.Panics(t, func() { randint.FromRand(nil) })
}
