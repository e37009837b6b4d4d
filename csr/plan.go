// SPDX-License-Identifier: MIT

// Package csr: capacity planning.
//
// Purpose:
//   - Turn (rows, cols, density) into an expected non-zero capacity and the
//     byte footprint of the three backing arrays, before anything is allocated.
//
// Contract:
//   - 1 <= rows, cols <= maxDimension (ErrInvalidDimensions).
//   - 0 <= density < 1, finite (ErrInvalidDensity).
//   - capacity = floor(rows * cols * density) must fit uint32 (ErrCapacityOverflow).
//   - total bytes must not exceed maxBytes (*AllocationError, resource "footprint").
//
// Complexity: O(1).
package csr

import (
	"math"
)

// Element sizes of the backing arrays.
const (
	offsetBytes = 4 // uint32
	indexBytes  = 4 // uint32
	valueBytes  = 8 // float64
)

// Plan is the outcome of capacity planning.
type Plan struct {
	Rows, Cols uint32
	Density    float64
	Capacity   uint32 // floor(rows*cols*density)

	OffsetBytes uint64 // (rows+1) * 4
	IndexBytes  uint64 // capacity * 4
	ValueBytes  uint64 // capacity * 8
}

// TotalBytes is the combined footprint of the three arrays.
func (p Plan) TotalBytes() uint64 {
	return p.OffsetBytes + p.IndexBytes + p.ValueBytes
}

// NewPlan validates the shape and density and computes capacity and footprint.
func NewPlan(rows, cols int, density float64, opts ...Option) (Plan, error) {
	o := gatherOptions(opts...)
	return plan(rows, cols, density, o)
}

func plan(rows, cols int, density float64, o options) (Plan, error) {
	if rows < 1 || cols < 1 || uint64(rows) > o.maxDimension || uint64(cols) > o.maxDimension {
		return Plan{}, methodErrorf("NewPlan", ErrInvalidDimensions)
	}
	if math.IsNaN(density) || math.IsInf(density, 0) || density < 0 || density >= 1 {
		return Plan{}, methodErrorf("NewPlan", ErrInvalidDensity)
	}

	expected := math.Floor(float64(rows) * float64(cols) * density)
	if expected > math.MaxUint32 {
		return Plan{}, methodErrorf("NewPlan", ErrCapacityOverflow)
	}
	capacity := uint32(expected)

	p := Plan{
		Rows:        uint32(rows),
		Cols:        uint32(cols),
		Density:     density,
		Capacity:    capacity,
		OffsetBytes: (uint64(rows) + 1) * offsetBytes,
		IndexBytes:  uint64(capacity) * indexBytes,
		ValueBytes:  uint64(capacity) * valueBytes,
	}
	if total := p.TotalBytes(); total > o.maxBytes {
		return p, &AllocationError{Resource: "footprint", Bytes: total}
	}
	return p, nil
}

// targetCount is the populator's goal for a plan: floor(rows*cols*density).
func targetCount(rows, cols uint32, density float64) uint64 {
	return uint64(math.Floor(float64(rows) * float64(cols) * density))
}
