// SPDX-License-Identifier: MIT

// Package csr stores sparse matrices in Compressed Sparse Row form and
// multiplies them by dense vectors.
//
// The csr package provides:
//
//   - NewPlan: capacity and byte-footprint planning for (rows, cols, density)
//     before anything is allocated.
//   - New: an empty Matrix with capacity floor(rows*cols*density).
//   - AppendElement (O(1) amortized, rows in non-decreasing order) and
//     InsertElement (any row, shifts later entries).
//   - Populate: a stochastic walk that scatters about density*rows*cols entries
//     using an injected Source (see package randint).
//   - Multiply / MultiplyTo: y = M·x over rows [offset(r), offset(r+1)).
//   - DumpRaw, DumpFormatted, Entries, At, Dense and ToDense for inspection
//     (At makes Matrix a matrix.Matrix for matrix.MatVec), plus Validate
//     for structural checks.
//
// Errors are sentinels (ErrOutOfRange, ErrCapacityExceeded, ...) wrapped with
// call context; KindOf maps any of them to a coarse Kind. Allocation failures
// surface as *AllocationError and, like capacities beyond the 32-bit index
// range, are KindFatal.
//
// Logging goes through an injected *slog.Logger and timing through an injected
// *stopwatch.Stopwatch; both default to silent. A Matrix is single-owner and
// not safe for concurrent mutation.
package csr
