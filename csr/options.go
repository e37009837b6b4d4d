// SPDX-License-Identifier: MIT

// Package csr: functional configuration for matrix creation.
// This file defines:
//   - Option (functional options over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies options in order over the defaults.
//
// Notes:
//   - Options are resolved once in New and stored on the Matrix; later calls reuse them.
//   - The default growth policy is GrowReject: capacity never changes unless asked to.
//   - Logging and timing are injected; the defaults discard output.
package csr

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/sparsecsr/logging"
	"github.com/katalvlaran/sparsecsr/stopwatch"
)

// GrowthPolicy decides what an insertion does when nnz reaches capacity.
type GrowthPolicy int

const (
	// GrowReject rejects the insertion with ErrCapacityExceeded.
	GrowReject GrowthPolicy = iota
	// GrowDouble reallocates colIndices/values at twice the capacity (at least 1).
	GrowDouble
)

func (p GrowthPolicy) String() string {
	switch p {
	case GrowReject:
		return "reject"
	case GrowDouble:
		return "double"
	}
	return "unknown"
}

// ParseGrowthPolicy maps "reject" and "double" to a GrowthPolicy.
func ParseGrowthPolicy(s string) (GrowthPolicy, bool) {
	switch s {
	case "reject", "":
		return GrowReject, true
	case "double":
		return GrowDouble, true
	}
	return GrowReject, false
}

// Defaults.
const (
	// DefaultMaxDimension bounds rows and cols.
	DefaultMaxDimension = 2_000_000

	// DefaultGrowth is the capacity policy applied when none is given.
	DefaultGrowth = GrowReject
)

// DefaultMaxBytes is the footprint ceiling: the largest size the platform can address.
const DefaultMaxBytes uint64 = math.MaxInt

const (
	panicMaxDimension = "csr: WithMaxDimension: limit must be in [1, 4294967294]"
	panicMaxBytes     = "csr: WithMaxBytes: limit must be > 0"
	panicGrowth       = "csr: WithGrowth: unknown policy"
	panicNilLogger    = "csr: WithLogger(nil)"
	panicNilStopwatch = "csr: WithStopwatch(nil)"
)

// Option mutates the creation options.
type Option func(*options)

type options struct {
	maxDimension uint64
	maxBytes     uint64
	growth       GrowthPolicy
	logger       *slog.Logger
	watch        *stopwatch.Stopwatch
}

// WithMaxDimension overrides the per-axis ceiling.
func WithMaxDimension(limit int) Option {
	if limit < 1 || uint64(limit) >= math.MaxUint32 {
		panic(panicMaxDimension)
	}
	return func(o *options) { o.maxDimension = uint64(limit) }
}

// WithMaxBytes overrides the footprint ceiling used by the planner.
func WithMaxBytes(limit uint64) Option {
	if limit == 0 {
		panic(panicMaxBytes)
	}
	return func(o *options) { o.maxBytes = limit }
}

// WithGrowth selects the capacity policy for insertions.
func WithGrowth(p GrowthPolicy) Option {
	if p != GrowReject && p != GrowDouble {
		panic(panicGrowth)
	}
	return func(o *options) { o.growth = p }
}

// WithLogger routes allocation reports, rejections and progress to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = logger }
}

// WithStopwatch times creation, population and multiplication with sw.
func WithStopwatch(sw *stopwatch.Stopwatch) Option {
	if sw == nil {
		panic(panicNilStopwatch)
	}
	return func(o *options) { o.watch = sw }
}

// gatherOptions applies opts over the defaults, later options winning.
func gatherOptions(opts ...Option) options {
	o := options{
		maxDimension: DefaultMaxDimension,
		maxBytes:     DefaultMaxBytes,
		growth:       DefaultGrowth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.watch == nil {
		o.watch = stopwatch.New(stopwatch.WithLogger(o.logger))
	}
	return o
}
