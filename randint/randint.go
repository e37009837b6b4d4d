// SPDX-License-Identifier: MIT
// Package: sparsecsr/randint
//
// randint.go - per-instance uniform integer generator.
//
// Design:
//   - Every Generator owns its *rand.Rand; there is no package-level source.
//   - RandInt draws uniformly from the CLOSED range [min, max] and requires min < max.
//   - Value reproduces the classic rand()/100 magnitude: a non-negative 31-bit draw scaled by 1/100.
//
// AI-Hints:
//   - Use New(seed) in tests and benchmarks to lock outcomes.
//   - A Generator is not safe for concurrent use (neither is *rand.Rand); give each goroutine its own.

package randint

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// valueScale divides raw 31-bit draws in Value.
const valueScale = 100.0

// ErrInvalidRange indicates RandInt was called with min >= max.
var ErrInvalidRange = errors.New("randint: min must be less than max")

// Generator draws integers and values from its own random stream.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded deterministically with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand. Panics on nil (programmer error).
func FromRand(r *rand.Rand) *Generator {
	if r == nil {
		panic("randint: FromRand(nil)")
	}
	return &Generator{rng: r}
}

// RandInt returns a uniform integer in [min, max].
func (g *Generator) RandInt(min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("RandInt(%d,%d): %w", min, max, ErrInvalidRange)
	}
	// width = max - min, exact in uint64 for any min < max.
	width := uint64(max) - uint64(min)
	if width < math.MaxInt64 {
		return min + int(g.rng.Int63n(int64(width)+1)), nil
	}
	return int(uint64(min) + g.wide(width)), nil
}

// wide draws uniformly from [0, width] for spans Int63n cannot express.
// Draws at or above the largest multiple of width+1 are rejected.
func (g *Generator) wide(width uint64) uint64 {
	if width == math.MaxUint64 {
		return g.rng.Uint64()
	}
	n := width + 1
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		if u := g.rng.Uint64(); u < limit {
			return u % n
		}
	}
}

// Value returns a non-negative pseudo-random value in [0, 2^31/100).
func (g *Generator) Value() float64 {
	return float64(g.rng.Int31()) / valueScale
}
