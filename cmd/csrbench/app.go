// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/sparsecsr/csr"
	"github.com/katalvlaran/sparsecsr/logging"
	"github.com/katalvlaran/sparsecsr/matrix"
	"github.com/katalvlaran/sparsecsr/randint"
	"github.com/katalvlaran/sparsecsr/stopwatch"
)

// Operation labels on the duration histogram.
const (
	opCreate   = "create"
	opPopulate = "populate"
	opMultiply = "multiply"
	opInsert   = "insert"
)

// maxVerifyCells bounds the dense reference built by --verify (8 bytes per cell).
const maxVerifyCells = 4 << 20

// verifyTolerance is the allowed deviation relative to the largest reference component.
const verifyTolerance = 1e-9

// ErrVerifyFailed reports a product that disagrees with the dense reference.
var ErrVerifyFailed = errors.New("csrbench: product does not match dense reference")

// insertScale maps RandInt(-1000, 1000) to values in [-100, 100] with one decimal.
const insertScale = 10.0

// app holds the per-run services shared by every command.
type app struct {
	cfg       Config
	out       io.Writer
	logger    *slog.Logger
	runID     string
	src       *randint.Generator
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
}

func (a *app) init(cfg Config, out, logOut io.Writer) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.out = out
	a.runID = uuid.NewString()
	a.logger = logging.New(logging.Config{
		Level:   level,
		Format:  cfg.LogFormat,
		Output:  logOut,
		Service: "csrbench",
	}).With("run_id", a.runID)
	a.src = randint.New(cfg.Seed)

	a.registry = prometheus.NewRegistry()
	a.durations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "csrbench",
		Name:      "operation_duration_seconds",
		Help:      "Duration of matrix operations in seconds",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
	}, []string{"op"})
	if err := a.registry.Register(a.durations); err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	return nil
}

// watch returns a stopwatch feeding the histogram series for op.
func (a *app) watch(op string, level slog.Level) *stopwatch.Stopwatch {
	return stopwatch.New(
		stopwatch.WithLogger(a.logger),
		stopwatch.WithLevel(level),
		stopwatch.WithObserver(a.durations.WithLabelValues(op)),
	)
}

// matrixWatch is handed to the matrix for its own reports; it observes nothing
// so every histogram series counts each operation once.
func (a *app) matrixWatch() *stopwatch.Stopwatch {
	return stopwatch.New(stopwatch.WithLogger(a.logger), stopwatch.WithLevel(slog.LevelDebug))
}

// newMatrix plans, allocates and populates a matrix for the run configuration.
// Creation failures are logged and returned; the command exits non-zero.
func (a *app) newMatrix() (*csr.Matrix, error) {
	a.logger.Info("starting run",
		"rows", a.cfg.Rows, "cols", a.cfg.Cols, "density", a.cfg.Density,
		"seed", a.cfg.Seed, "growth", a.cfg.Growth)

	create := a.watch(opCreate, slog.LevelDebug)
	tok := create.Start()
	m, err := csr.New(a.cfg.Rows, a.cfg.Cols, a.cfg.Density,
		csr.WithGrowth(a.cfg.GrowthPolicy()),
		csr.WithLogger(a.logger),
		csr.WithStopwatch(a.matrixWatch()),
	)
	create.Stop(stopwatch.Silent, tok)
	if err != nil {
		a.logger.Error("unable to create matrix", "kind", csr.KindOf(err), "error", err)
		return nil, err
	}

	rep, err := m.Populate(a.src)
	if rep.Target > 0 {
		a.durations.WithLabelValues(opPopulate).Observe(rep.Elapsed / 1000)
	}
	switch {
	case err == nil:
	case csr.KindOf(err) == csr.KindInvalidConfig:
		// Nothing to place (target below one); the empty matrix is still usable.
		a.logger.Warn("matrix left empty", "error", err)
	default:
		a.logger.Warn("population stopped early", "stored", rep.Stored, "target", rep.Target, "error", err)
	}
	return m, nil
}

func (a *app) dump(m *csr.Matrix) error {
	switch a.cfg.Dump {
	case DumpRaw:
		return m.DumpRaw(a.out)
	case DumpFormatted:
		return m.DumpFormatted(a.out)
	}
	return nil
}

func (a *app) runPopulate() error {
	m, err := a.newMatrix()
	if err != nil {
		return err
	}
	defer m.Release()

	if err := a.dump(m); err != nil {
		return err
	}
	achieved := float64(m.NNZ()) / (float64(m.Rows()) * float64(m.Cols()))
	fmt.Fprintf(a.out, "Stored %d entries (density %.6f, planned %.6f)\n", m.NNZ(), achieved, m.Density())
	return a.finish()
}

// runMultiply repeats y = M·x with a new random operand each iteration.
func (a *app) runMultiply() error {
	m, err := a.newMatrix()
	if err != nil {
		return err
	}
	defer m.Release()

	sw := a.watch(opMultiply, slog.LevelDebug)
	y := make([]float64, m.Rows())
	var x []float64
	times := make([]float64, 0, a.cfg.Iterations)
	for i := 0; i < a.cfg.Iterations; i++ {
		if x, err = csr.RandomVector(a.src, m.Cols()); err != nil {
			return err
		}
		tok := sw.Start()
		if err := m.MultiplyTo(y, x); err != nil {
			return err
		}
		times = append(times, sw.Stop("Multiplication iteration", tok))
	}

	fmt.Fprintf(a.out, "Average product compute time %.3fms\n", stopwatch.Mean(times))
	if a.cfg.Verify {
		if err := a.verify(m, x, y); err != nil {
			return err
		}
	}
	return a.finish()
}

// verify recomputes y = M·x with matrix.MatVec over a dense export of m.
// Matrices above maxVerifyCells are skipped with a warning.
func (a *app) verify(m *csr.Matrix, x, y []float64) error {
	if cells := uint64(m.Rows()) * uint64(m.Cols()); cells > maxVerifyCells {
		a.logger.Warn("skipping verification", "cells", cells, "limit", maxVerifyCells)
		return nil
	}
	d, err := m.ToDense()
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	want, err := matrix.MatVec(d, x)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	delta, err := matrix.MaxAbsDelta(want, y)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	var scale float64
	for _, v := range want {
		scale = math.Max(scale, math.Abs(v))
	}
	if delta > verifyTolerance*(1+scale) {
		a.logger.Error("product mismatch", "max_delta", delta, "scale", scale)
		return fmt.Errorf("%w: max delta %g", ErrVerifyFailed, delta)
	}
	a.logger.Info("product verified", "max_delta", delta)
	fmt.Fprintf(a.out, "Verified product against dense reference (max delta %g)\n", delta)
	return nil
}

// runInsert times InsertElement at random coordinates. Rejections are counted
// and logged; anything fatal ends the run.
func (a *app) runInsert() error {
	m, err := a.newMatrix()
	if err != nil {
		return err
	}
	defer m.Release()

	sw := a.watch(opInsert, slog.LevelDebug)
	times := make([]float64, 0, a.cfg.Iterations)
	rejected := 0
	for i := 0; i < a.cfg.Iterations; i++ {
		row, err := a.drawIndex(m.Rows())
		if err != nil {
			return err
		}
		col, err := a.drawIndex(m.Cols())
		if err != nil {
			return err
		}
		v, err := a.src.RandInt(-1000, 1000)
		if err != nil {
			return err
		}

		tok := sw.Start()
		err = m.InsertElement(row, col, float64(v)/insertScale)
		times = append(times, sw.Stop("Insertion iteration", tok))
		if err != nil {
			if csr.KindOf(err) == csr.KindFatal {
				a.logger.Error("insertion failed", "error", err)
				return err
			}
			rejected++
		}
	}

	if err := a.dump(m); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Average insertion time %.2fms (%d rejected)\n", stopwatch.Mean(times), rejected)
	return a.finish()
}

// drawIndex returns a uniform index in [0, n).
func (a *app) drawIndex(n int) (int, error) {
	if n == 1 {
		return 0, nil
	}
	return a.src.RandInt(0, n-1)
}

// finish prints the gathered histograms when metrics are requested.
func (a *app) finish() error {
	if !a.cfg.Metrics {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
