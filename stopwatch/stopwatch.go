// SPDX-License-Identifier: MIT
// Package: sparsecsr/stopwatch
//
// stopwatch.go - named-tag start/stop timing with millisecond results.
//
// Design:
//   - A Stopwatch is an instance; tokens carry their own start instant, so
//     there is no shared clock table and no limit on outstanding tokens.
//   - Stop returns elapsed milliseconds and logs "<label>" with the elapsed
//     value unless the label is Silent.
//   - An optional prometheus.Observer receives every stop, in seconds.
//   - The clock is injectable (WithClock) for deterministic tests.

package stopwatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sparsecsr/logging"
)

// Silent is the label that suppresses logging in Stop.
const Silent = ""

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithLogger routes Stop reports to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("stopwatch: WithLogger(nil)")
	}
	return func(s *Stopwatch) { s.logger = logger }
}

// WithLevel sets the level Stop reports are logged at (default Info).
func WithLevel(level slog.Level) Option {
	return func(s *Stopwatch) { s.level = level }
}

// WithClock replaces time.Now. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("stopwatch: WithClock(nil)")
	}
	return func(s *Stopwatch) { s.now = now }
}

// WithObserver records every Stop into obs (seconds). Panics on nil.
func WithObserver(obs prometheus.Observer) Option {
	if obs == nil {
		panic("stopwatch: WithObserver(nil)")
	}
	return func(s *Stopwatch) { s.observer = obs }
}

// Stopwatch hands out tokens and measures the time since each one.
// Safe for concurrent use.
type Stopwatch struct {
	logger   *slog.Logger
	level    slog.Level
	now      func() time.Time
	observer prometheus.Observer
	issued   atomic.Uint64
}

// Token marks a start instant.
type Token struct {
	id    uint64
	start time.Time
}

// ID returns the sequence number of the token within its Stopwatch (1-based).
func (t Token) ID() uint64 { return t.id }

// New returns a Stopwatch with a discard logger and the wall clock.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{
		logger: logging.Discard(),
		level:  slog.LevelInfo,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start returns a token for the current instant.
func (s *Stopwatch) Start() Token {
	return Token{id: s.issued.Add(1), start: s.now()}
}

// Stop returns the milliseconds elapsed since t and reports them under label.
func (s *Stopwatch) Stop(label string, t Token) float64 {
	elapsed := s.now().Sub(t.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if s.observer != nil {
		s.observer.Observe(elapsed.Seconds())
	}

	ms := float64(elapsed) / float64(time.Millisecond)
	if label != Silent {
		s.logger.Log(context.Background(), s.level, label, "elapsed", fmt.Sprintf("%.1fms", ms))
	}
	return ms
}

// Issued returns how many tokens have been handed out.
func (s *Stopwatch) Issued() uint64 { return s.issued.Load() }

// Mean returns the arithmetic mean of samples, or 0 when there are none.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}
