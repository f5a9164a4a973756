// SPDX-License-Identifier: MIT

// Package optimize: the algorithm surface shared by every optimizer —
// run states, configuration, the Algorithm interface and the io.Writer
// backed trace logger.
package optimize

import (
	"fmt"
	"io"

	"github.com/katalvlaran/numopt/matrix"
)

// Status is the lifecycle state of an optimizer run.
//
//   - StatusInitializing — configuration read, state being seeded.
//   - StatusIterating    — the main loop is (or was last) in progress.
//   - StatusConverged    — the step norm fell below epsilon.
//   - StatusDiverged     — the function value worsened against the best
//     seen; the run returned the last improving point.
type Status int

const (
	// StatusInitializing marks an algorithm that has not started iterating.
	StatusInitializing Status = iota

	// StatusIterating marks a run inside (or aborted inside) the main loop.
	StatusIterating

	// StatusConverged marks a run stopped by the epsilon test.
	StatusConverged

	// StatusDiverged marks a run stopped by the worsening-value test.
	StatusDiverged
)

// String implements fmt.Stringer for log lines and test failures.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusDiverged:
		return "diverged"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Config carries the inputs every optimizer consumes before Run: the
// starting point (a column vector; 1×1 for golden-section) and the
// convergence epsilon.
type Config struct {
	InitialPoint matrix.Matrix
	Epsilon      float64
}

// validate applies the shared contract: a point must be present and
// epsilon strictly positive.
func (c Config) validate() error {
	if c.InitialPoint == nil {
		return ErrNoInitialPoint
	}
	if c.Epsilon <= 0 {
		return ErrBadEpsilon
	}

	return nil
}

// Algorithm is the uniform surface of every optimizer in this package.
// Configure must be called before Run; Status and Iterations report on the
// most recent Run. Instances are single-goroutine; a Registry hands out a
// fresh instance per GetInstance call.
type Algorithm interface {
	// Name returns the registry key of the algorithm.
	Name() string

	// Configure installs the initial point and epsilon.
	// Errors: ErrNoInitialPoint, ErrBadEpsilon, ErrScalarPoint (golden-section).
	Configure(cfg Config) error

	// Run minimizes f and returns the best point found before any stopping
	// condition — never the possibly-worse final iterate.
	Run(f Function) (matrix.Matrix, error)

	// Status reports the lifecycle state after the most recent Run.
	Status() Status

	// Iterations reports the iteration count of the most recent Run.
	Iterations() int
}

// LogLevel controls the verbosity of the optimizer trace output.
type LogLevel int

const (
	// LogNoop produces no output.
	LogNoop LogLevel = iota

	// LogRun prints run-level events: degraded line-search mode, termination.
	LogRun

	// LogIter additionally prints one line per iteration (f and step norm).
	LogIter
)

// Logger handles optimizer trace output. The zero value and a nil pointer
// are both silent; Out must be set for anything to be written.
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

// enabled reports whether a message at the given level should be written.
func (l *Logger) enabled(level LogLevel) bool {
	return l != nil && l.Out != nil && l.Level >= level
}

// printf writes a formatted trace line when the level is enabled.
func (l *Logger) printf(level LogLevel, format string, a ...any) {
	if l.enabled(level) {
		_, _ = fmt.Fprintf(l.Out, format, a...)
	}
}
