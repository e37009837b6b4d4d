// SPDX-License-Identifier: MIT

// Package csr - stochastic population.
//
// Canonical model:
//   - target = floor(rows*cols*density); step = floor(2/density).
//   - A (row, col) cursor starts at (0,0). Each of the target iterations advances
//     col by a uniform draw in [0, step] (mean step/2 ~ 1/density), wrapping into
//     the next row while col >= cols. The walk stops early once row >= rows.
//   - Every surviving cursor position receives src.Value().
//
// Behavior highlights:
//   - The achieved count is <= target and the achieved density is approximate;
//     rows can be skipped entirely when gaps are large.
//   - A gap of 0 repeats the previous column; such duplicates are kept and are
//     summed by Multiply and Dense.
//   - On a partially filled matrix, cursor rows before the last occupied row go
//     through InsertElement instead of AppendElement.
//
// Determinism:
//   - Fixed iteration order; outcomes are reproducible for a seeded Source.
package csr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsecsr/stopwatch"
)

const (
	ctxPopulate     = "Matrix.Populate"
	ctxRandomVector = "RandomVector"

	gapFactor       = 2.0 // compensates for the mean of a uniform [0, step] draw
	progressBuckets = 100 // progress is reported about every 1% of target
	vectorMin       = -1000
	vectorMax       = 1000
)

// Source supplies the randomness Populate and RandomVector consume.
// *randint.Generator satisfies it.
type Source interface {
	// RandInt returns a uniform integer in the closed range [min, max]; min < max.
	RandInt(min, max int) (int, error)
	// Value returns a non-negative pseudo-random value for a new entry.
	Value() float64
}

// PopulateReport summarizes a Populate call.
type PopulateReport struct {
	Target  uint64  // floor(rows*cols*density)
	Stored  uint64  // entries actually placed; <= Target
	Elapsed float64 // milliseconds
}

// Populate fills the matrix with about floor(rows*cols*density) random entries.
// A target below one is rejected with ErrEmptyTarget and leaves the matrix untouched.
// A rejected insertion (for example ErrCapacityExceeded under GrowReject) stops the
// walk; the report still counts what was stored.
func (m *Matrix) Populate(src Source) (PopulateReport, error) {
	if err := m.usable(ctxPopulate); err != nil {
		return PopulateReport{}, err
	}
	if src == nil {
		return PopulateReport{}, methodErrorf(ctxPopulate, ErrNilSource)
	}

	target := targetCount(m.rows, m.cols, m.density)
	rep := PopulateReport{Target: target}
	if target < 1 {
		m.opts.logger.Warn("unable to populate matrix with 0 values or less",
			"rows", m.rows, "cols", m.cols, "density", m.density)
		return rep, methodErrorf(ctxPopulate, ErrEmptyTarget)
	}

	step := gapStep(m.density)
	updateDelay := target / progressBuckets
	if updateDelay < 1 {
		updateDelay = 1
	}
	rows, cols := int(m.rows), int(m.cols)

	tok := m.opts.watch.Start()
	m.opts.logger.Info("attempting to populate matrix", "target", target)

	row, col := 0, 0
	for i := uint64(0); i < target; i++ {
		gap, err := src.RandInt(0, step)
		if err != nil {
			rep.Elapsed = m.opts.watch.Stop(stopwatch.Silent, tok)
			return rep, methodErrorf(ctxPopulate, err)
		}
		col += gap
		if col < 0 {
			col = 0
		}
		if col >= cols {
			// Equivalent to wrapping one row at a time while col >= cols.
			row += col / cols
			col %= cols
		}
		if row >= rows {
			break
		}

		if i%updateDelay == 0 {
			m.opts.logger.Debug("populating matrix",
				"progress", fmt.Sprintf("%.2f%%", float64(i)*100/float64(target)))
		}

		if err := m.place(row, col, src.Value()); err != nil {
			rep.Elapsed = m.opts.watch.Stop(stopwatch.Silent, tok)
			m.opts.logger.Warn("population stopped", "stored", rep.Stored, "target", target, "error", err)
			return rep, methodErrorf(ctxPopulate, err)
		}
		rep.Stored++
	}

	rep.Elapsed = m.opts.watch.Stop("Populated matrix in", tok)
	m.opts.logger.Info("successfully populated matrix",
		"stored", rep.Stored,
		"target", target,
		"elapsed", fmt.Sprintf("%.1fms", rep.Elapsed),
	)
	return rep, nil
}

// place appends when the cursor is at or past the last occupied row and
// falls back to the ordered insert otherwise.
func (m *Matrix) place(row, col int, value float64) error {
	if uint32(row) >= m.lastRow {
		return m.AppendElement(row, col, value)
	}
	return m.InsertElement(row, col, value)
}

// gapStep returns floor(2/density), clamped to the int32 range. density must be > 0.
func gapStep(density float64) int {
	s := math.Floor(gapFactor / density)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(s)
}

// RandomVector returns n integer-valued entries drawn uniformly from [-1000, 1000].
func RandomVector(src Source, n int) ([]float64, error) {
	if src == nil {
		return nil, methodErrorf(ctxRandomVector, ErrNilSource)
	}
	if n < 0 {
		return nil, methodErrorf(ctxRandomVector, ErrDimensionMismatch)
	}
	v := make([]float64, n)
	for i := range v {
		x, err := src.RandInt(vectorMin, vectorMax)
		if err != nil {
			return nil, methodErrorf(ctxRandomVector, err)
		}
		v[i] = float64(x)
	}
	return v, nil
}
