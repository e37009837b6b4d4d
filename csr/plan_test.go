// SPDX-License-Identifier: MIT

package csr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecsr/csr"
)

func TestNewPlan_Footprint(t *testing.T) {
	p, err := csr.NewPlan(3, 3, 0.5)
	require.NoError(t, err)
	require.EqualValues(t, 4, p.Capacity) // floor(4.5)
	require.EqualValues(t, 16, p.OffsetBytes)
	require.EqualValues(t, 16, p.IndexBytes)
	require.EqualValues(t, 32, p.ValueBytes)
	require.EqualValues(t, 64, p.TotalBytes())
}

func TestNewPlan_ZeroDensity(t *testing.T) {
	p, err := csr.NewPlan(10, 10, 0)
	require.NoError(t, err)
	require.Zero(t, p.Capacity)
	require.EqualValues(t, 44, p.TotalBytes())
}

func TestNewPlan_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		rows    int
		cols    int
		density float64
		opts    []csr.Option
		want    error
		kind    csr.Kind
	}{
		{"zero rows", 0, 5, 0.1, nil, csr.ErrInvalidDimensions, csr.KindInvalidConfig},
		{"negative cols", 5, -1, 0.1, nil, csr.ErrInvalidDimensions, csr.KindInvalidConfig},
		{"rows above ceiling", 11, 5, 0.1, []csr.Option{csr.WithMaxDimension(10)}, csr.ErrInvalidDimensions, csr.KindInvalidConfig},
		{"density one", 5, 5, 1, nil, csr.ErrInvalidDensity, csr.KindInvalidConfig},
		{"negative density", 5, 5, -0.1, nil, csr.ErrInvalidDensity, csr.KindInvalidConfig},
		{"NaN density", 5, 5, math.NaN(), nil, csr.ErrInvalidDensity, csr.KindInvalidConfig},
		{"Inf density", 5, 5, math.Inf(1), nil, csr.ErrInvalidDensity, csr.KindInvalidConfig},
		{"capacity overflow", 2_000_000, 2_000_000, 0.5, nil, csr.ErrCapacityOverflow, csr.KindFatal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.NewPlan(tc.rows, tc.cols, tc.density, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, tc.kind, csr.KindOf(err))
		})
	}
}

func TestNewPlan_FootprintCeiling(t *testing.T) {
	p, err := csr.NewPlan(1000, 1000, 0.5, csr.WithMaxBytes(1024))
	require.ErrorIs(t, err, csr.ErrAllocationTooLarge)
	require.Equal(t, csr.KindFatal, csr.KindOf(err))

	var ae *csr.AllocationError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, "footprint", ae.Resource)
	require.Equal(t, p.TotalBytes(), ae.Bytes)
	require.EqualValues(t, 500_000, p.Capacity)
}

func TestNew_FootprintCeiling(t *testing.T) {
	m, err := csr.New(1000, 1000, 0.5, csr.WithMaxBytes(1024))
	require.Nil(t, m)
	require.ErrorIs(t, err, csr.ErrAllocationTooLarge)
}
