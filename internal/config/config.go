// Package config defines the application configuration, flag parsing, and
// the environment/adaptive override chain.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/recipsum/internal/errors"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "RECIPSUM_"

// Default values applied before flags, environment, and adaptive overrides.
const (
	DefaultSize     = 1_000_000
	DefaultTimeout  = 5 * time.Minute
	DefaultDist     = "uniform"
	DefaultAlgo     = "all"
	DefaultSeed     = 1
	DefaultHTTPAddr = ":8080"
)

// AppConfig holds the complete runtime configuration. Resolution priority:
// CLI flags > environment variables > adaptive estimation > static defaults.
type AppConfig struct {
	// Size is the number of elements to generate when no input file is given.
	Size int
	// NumTasks is the fixed fan-out width. Zero means one task per CPU.
	NumTasks int
	// Threshold is the fork/join leaf size. Zero selects the engine default.
	Threshold int
	// Adaptive enables core-count based threshold estimation when Threshold
	// is left at zero.
	Adaptive bool
	// Workers bounds the scheduler's concurrent tasks. Zero selects the
	// unbounded per-goroutine scheduler.
	Workers int
	// Algo selects the strategy: sequential, forkjoin, fanout, or all.
	Algo string
	// Dist selects the generated input distribution: ones, uniform, ramp.
	Dist string
	// Seed seeds the input generator for reproducible runs.
	Seed int64
	// InputFile, when set, is read instead of generating an input.
	InputFile string
	// Strict pre-validates the input for zero elements instead of letting
	// them poison the sum.
	Strict bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// OutputFile, when set, receives the final result.
	OutputFile string
	// Serve switches to HTTP server mode.
	Serve bool
	// Addr is the HTTP listen address in server mode.
	Addr string
	// FileRoot is the directory served under /files/ in server mode.
	FileRoot string
	// Verbose enables detailed execution reporting.
	Verbose bool
	// Quiet suppresses everything except the final result.
	Quiet bool
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set, and
// validates the result.
//
// availableAlgos lists the strategy identifiers accepted by -algo, in
// addition to "all".
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Size, "size", DefaultSize, "number of elements to generate")
	fs.IntVar(&cfg.NumTasks, "tasks", 0, "fixed fan-out task count (0 = one per CPU)")
	fs.IntVar(&cfg.Threshold, "threshold", 0, "fork/join leaf threshold (0 = engine default)")
	fs.BoolVar(&cfg.Adaptive, "adaptive", false, "estimate the leaf threshold from the core count")
	fs.IntVar(&cfg.Workers, "workers", 0, "bound concurrent tasks (0 = unbounded goroutines)")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, fmt.Sprintf("strategy to run: all, %s", strings.Join(availableAlgos, ", ")))
	fs.StringVar(&cfg.Dist, "dist", DefaultDist, "generated distribution: ones, uniform, ramp")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSeed, "input generator seed")
	fs.StringVar(&cfg.InputFile, "input", "", "read input values from file (one per line)")
	fs.BoolVar(&cfg.Strict, "strict", false, "reject inputs containing zero elements")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "global execution timeout")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the final result to file")
	fs.BoolVar(&cfg.Serve, "serve", false, "run the HTTP server instead of a one-shot reduction")
	fs.StringVar(&cfg.Addr, "addr", DefaultHTTPAddr, "HTTP listen address in server mode")
	fs.StringVar(&cfg.FileRoot, "file-root", "", "directory served under /files/ in server mode")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose execution reporting")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the final result")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for user errors.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Size < 1 && c.InputFile == "" {
		return apperrors.NewConfigError("size must be at least 1, got %d", c.Size)
	}
	if c.NumTasks < 0 {
		return apperrors.NewConfigError("tasks must not be negative, got %d", c.NumTasks)
	}
	if c.Threshold < 0 {
		return apperrors.NewConfigError("threshold must not be negative, got %d", c.Threshold)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if !validAlgo(c.Algo, availableAlgos) {
		return apperrors.NewConfigError("unknown algo %q (available: all, %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	switch c.Dist {
	case "ones", "uniform", "ramp":
	default:
		return apperrors.NewConfigError("unknown dist %q (available: ones, uniform, ramp)", c.Dist)
	}
	return nil
}

func validAlgo(algo string, available []string) bool {
	if algo == "all" {
		return true
	}
	for _, a := range available {
		if algo == a {
			return true
		}
	}
	return false
}
