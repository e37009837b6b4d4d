// Package sparsecsr is a compact engine for large sparse matrices stored in
// Compressed Sparse Row form: plan the footprint, allocate once, fill the
// matrix row by row or at random, and multiply it by dense vectors.
//
// 🚀 What is in the box?
//
//	• Capacity planning: rows × cols × density → capacity and byte footprint
//	• Insertion: O(1) amortized row-ordered appends, ordered inserts anywhere
//	• Population: seeded stochastic fill at an approximate target density
//	• SpMV: y = M·x over row ranges, no special cases
//	• Inspection: raw and formatted dumps, entry lists, At, gonum and matrix.Dense export
//	• Reference: matrix.MatVec rechecks SpMV on a dense copy (csrbench --verify)
//
// ✨ Design
//
//   - Explicit errors: sentinels + KindOf classification, nothing panics on input
//   - Injected services: *slog.Logger, stopwatch and random source per matrix
//   - Deterministic: the same seed yields the same matrix
//
// Layout:
//
//	csr/          Matrix, planner, insertion, population, SpMV, dumps
//	matrix/       dense reference: Matrix contract, Dense, MatVec
//	arrayops/     generic shift-right insertion into a fixed buffer
//	randint/      seeded uniform integers and entry values
//	stopwatch/    per-instance timers with optional Prometheus observers
//	logging/      slog construction (text/json, level parsing)
//	cmd/csrbench  benchmark driver (populate, multiply, insert)
//
// Quick start:
//
//	m, err := csr.New(1000, 1000, 0.01)
//	if err != nil { ... }
//	if _, err := m.Populate(randint.New(42)); err != nil { ... }
//	y, err := m.Multiply(x)
package sparsecsr
