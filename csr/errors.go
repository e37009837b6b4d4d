// SPDX-License-Identifier: MIT
// Package csr: sentinel error set and rejection kinds.
// Every operation on a Matrix reports failure through an explicit error. Callers
// branch with errors.Is on the sentinels below, or classify with KindOf when they
// only care whether a call was out of range, over capacity, misconfigured or fatal.
// No operation panics on user input; option constructors panic on programmer error.

package csr

import (
	"errors"
	"fmt"
)

// Sentinels carry the "csr: " prefix. Call sites wrap them with method context
// (see matrixErrorf) and never stringify parameters into the sentinel itself.
var (
	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrCapacityExceeded indicates an insertion into a full matrix under GrowReject.
	ErrCapacityExceeded = errors.New("csr: capacity exceeded")

	// ErrOutOfOrder indicates an append at a row before the last occupied row.
	ErrOutOfOrder = errors.New("csr: append row precedes last occupied row")

	// ErrInvalidDimensions indicates rows/cols outside [1, MaxDimension].
	ErrInvalidDimensions = errors.New("csr: invalid dimensions")

	// ErrInvalidDensity indicates a density outside [0, 1) or not finite.
	ErrInvalidDensity = errors.New("csr: density must be finite and in [0, 1)")

	// ErrCapacityOverflow indicates a planned capacity beyond the 32-bit index range.
	ErrCapacityOverflow = errors.New("csr: planned capacity exceeds 32-bit index range")

	// ErrEmptyTarget indicates Populate was asked for fewer than one entry.
	ErrEmptyTarget = errors.New("csr: target count below one")

	// ErrDimensionMismatch indicates an operand vector of the wrong length.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrNilSource indicates Populate or RandomVector was given a nil Source.
	ErrNilSource = errors.New("csr: nil random source")

	// ErrNilMatrix indicates a method call on a nil *Matrix.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = errors.New("csr: matrix released")

	// ErrAllocationTooLarge indicates that the backing arrays could not be reserved.
	// Returned wrapped in *AllocationError.
	ErrAllocationTooLarge = errors.New("csr: allocation failed")

	// ErrCorrupt indicates a structural invariant violation found by Validate.
	ErrCorrupt = errors.New("csr: invariant violated")
)

// AllocationError names the resource that could not be reserved and its size.
type AllocationError struct {
	Resource string // "footprint", "rowOffsets", "colIndices" or "values"
	Bytes    uint64 // requested size in bytes
	Cause    error  // underlying runtime failure, if any
}

func (e *AllocationError) Error() string {
	msg := fmt.Sprintf("csr: unable to allocate %d bytes (%.2f GB) for %s", e.Bytes, float64(e.Bytes)/1e9, e.Resource)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes ErrAllocationTooLarge to errors.Is.
func (e *AllocationError) Unwrap() error { return ErrAllocationTooLarge }

// Kind classifies an error returned by this package.
type Kind int

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota
	// KindOutOfRange: row/column outside the matrix.
	KindOutOfRange
	// KindCapacity: reserved capacity exhausted.
	KindCapacity
	// KindOrdering: append ordering contract broken.
	KindOrdering
	// KindInvalidConfig: bad dimensions, density, target, operand or matrix state.
	KindInvalidConfig
	// KindFatal: a footprint the platform cannot express or allocate, or a corrupted
	// structure; the caller cannot proceed.
	KindFatal
	// KindUnknown: an error not produced by this package.
	KindUnknown
)

var kindNames = [...]string{
	KindNone:          "none",
	KindOutOfRange:    "out-of-range",
	KindCapacity:      "capacity",
	KindOrdering:      "ordering",
	KindInvalidConfig: "invalid-config",
	KindFatal:         "fatal",
	KindUnknown:       "unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf classifies err. Wrapped errors are unwrapped with errors.Is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrCapacityExceeded):
		return KindCapacity
	case errors.Is(err, ErrOutOfOrder):
		return KindOrdering
	case errors.Is(err, ErrAllocationTooLarge),
		errors.Is(err, ErrCapacityOverflow),
		errors.Is(err, ErrCorrupt):
		return KindFatal
	case errors.Is(err, ErrInvalidDimensions),
		errors.Is(err, ErrInvalidDensity),
		errors.Is(err, ErrEmptyTarget),
		errors.Is(err, ErrDimensionMismatch),
		errors.Is(err, ErrNilSource),
		errors.Is(err, ErrNilMatrix),
		errors.Is(err, ErrReleased):
		return KindInvalidConfig
	}
	return KindUnknown
}

// matrixErrorf wraps err with the method name and the offending coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// methodErrorf wraps err with a method name only.
func methodErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
