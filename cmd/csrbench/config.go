// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsecsr/csr"
	"github.com/katalvlaran/sparsecsr/logging"
)

// Dump modes for Config.Dump.
const (
	DumpNone      = "none"
	DumpRaw       = "raw"
	DumpFormatted = "formatted"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("csrbench: invalid config")

// Config drives one benchmark run. Zero-valued fields in a YAML file keep their defaults.
type Config struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Density    float64 `yaml:"density"`
	Seed       int64   `yaml:"seed"`
	Growth     string  `yaml:"growth"`     // "reject" or "double"
	Iterations int     `yaml:"iterations"` // timed repetitions for multiply/insert
	LogLevel   string  `yaml:"log_level"`
	LogFormat  string  `yaml:"log_format"`
	Dump       string  `yaml:"dump"`    // none, raw or formatted
	Metrics    bool    `yaml:"metrics"` // print collected histograms after the run
	Verify     bool    `yaml:"verify"`  // recheck the last product against a dense reference
}

// DefaultConfig returns the settings used when neither a file nor flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Rows:       10_000,
		Cols:       10_000,
		Density:    0.001,
		Seed:       1,
		Growth:     csr.GrowReject.String(),
		Iterations: 100,
		LogLevel:   "info",
		LogFormat:  logging.FormatText,
		Dump:       DumpNone,
	}
}

// LoadConfig overlays the YAML file at path onto cfg.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every field before any matrix is planned.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: rows and cols must be >= 1 (got %dx%d)", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if !(c.Density >= 0 && c.Density < 1) {
		return fmt.Errorf("%w: density must be in [0, 1) (got %g)", ErrInvalidConfig, c.Density)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1 (got %d)", ErrInvalidConfig, c.Iterations)
	}
	if _, ok := csr.ParseGrowthPolicy(c.Growth); !ok {
		return fmt.Errorf("%w: unknown growth policy %q", ErrInvalidConfig, c.Growth)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := logging.ValidateFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Dump {
	case DumpNone, DumpRaw, DumpFormatted, "":
	default:
		return fmt.Errorf("%w: unknown dump mode %q", ErrInvalidConfig, c.Dump)
	}
	return nil
}

// GrowthPolicy returns the parsed growth policy. Call after Validate.
func (c Config) GrowthPolicy() csr.GrowthPolicy {
	p, _ := csr.ParseGrowthPolicy(c.Growth)
	return p
}

// bindFlags registers one persistent flag per Config field, defaulting to defaults.
func bindFlags(fs *pflag.FlagSet, dst *Config, defaults Config) {
	fs.IntVar(&dst.Rows, "rows", defaults.Rows, "number of matrix rows")
	fs.IntVar(&dst.Cols, "cols", defaults.Cols, "number of matrix columns")
	fs.Float64Var(&dst.Density, "density", defaults.Density, "fraction of non-zero entries, in [0, 1)")
	fs.Int64Var(&dst.Seed, "seed", defaults.Seed, "random seed")
	fs.StringVar(&dst.Growth, "growth", defaults.Growth, "capacity policy when full: reject or double")
	fs.IntVar(&dst.Iterations, "iterations", defaults.Iterations, "timed repetitions for multiply and insert")
	fs.StringVar(&dst.LogLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	fs.StringVar(&dst.LogFormat, "log-format", defaults.LogFormat, "text or json")
	fs.StringVar(&dst.Dump, "dump", defaults.Dump, "print the matrix after population: none, raw or formatted")
	fs.BoolVar(&dst.Metrics, "metrics", defaults.Metrics, "print timing histograms in Prometheus text format")
	fs.BoolVar(&dst.Verify, "verify", defaults.Verify, "recheck the last product of multiply against a dense reference")
}

// applyFlags copies every explicitly set flag from src into cfg.
func applyFlags(fs *pflag.FlagSet, src Config, cfg *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = src.Rows
		case "cols":
			cfg.Cols = src.Cols
		case "density":
			cfg.Density = src.Density
		case "seed":
			cfg.Seed = src.Seed
		case "growth":
			cfg.Growth = src.Growth
		case "iterations":
			cfg.Iterations = src.Iterations
		case "log-level":
			cfg.LogLevel = src.LogLevel
		case "log-format":
			cfg.LogFormat = src.LogFormat
		case "dump":
			cfg.Dump = src.Dump
		case "metrics":
			cfg.Metrics = src.Metrics
		case "verify":
			cfg.Verify = src.Verify
		}
	})
}
