// SPDX-License-Identifier: MIT

// Package optimize: the gcfg-backed configuration boundary. A run is
// described by the [optimizer] section of an INI-style file:
//
//	[optimizer]
//	algorithm     = NewtonRaphson
//	epsilon       = 1e-6
//	line-search   = true
//	initial-point = 0
//	initial-point = 0
//
// initial-point repeats once per coordinate, top row first.
package optimize

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/katalvlaran/numopt/matrix"
)

// Settings is the parsed [optimizer] section.
type Settings struct {
	// Algorithm is the registry key to instantiate.
	Algorithm string

	// Epsilon is the convergence tolerance.
	Epsilon float64

	// InitialPoint holds the starting coordinates, one per line in the file.
	InitialPoint []float64

	// LineSearch toggles the exact golden-section line search on the
	// gradient family.
	LineSearch bool
}

// optimizerFile mirrors the file layout for gcfg.
type optimizerFile struct {
	Optimizer struct {
		Algorithm    string
		Epsilon      float64
		InitialPoint []float64 `gcfg:"initial-point"`
		LineSearch   bool      `gcfg:"line-search"`
	}
}

// LoadConfig reads and parses the named configuration file.
// Errors: gcfg parse failures wrapped with the file name.
func LoadConfig(path string) (*Settings, error) {
	var raw optimizerFile
	if err := gcfg.ReadFileInto(&raw, path); err != nil {
		return nil, fmt.Errorf("optimize: config %s: %w", path, err)
	}

	return &Settings{
		Algorithm:    raw.Optimizer.Algorithm,
		Epsilon:      raw.Optimizer.Epsilon,
		InitialPoint: raw.Optimizer.InitialPoint,
		LineSearch:   raw.Optimizer.LineSearch,
	}, nil
}

// BuildAlgorithm instantiates and configures the algorithm a Settings
// describes: registry lookup, initial-point vector construction,
// Configure, and line-search wiring for the gradient family.
//
// Errors: ErrUnknownAlgorithm, matrix.ErrBadShape (no coordinates),
// ErrBadEpsilon and the algorithm's own Configure failures.
func BuildAlgorithm(reg *Registry, s *Settings) (Algorithm, error) {
	inst, err := reg.GetInstance(s.Algorithm)
	if err != nil {
		return nil, err
	}

	point, err := matrix.NewVector(s.InitialPoint...)
	if err != nil {
		return nil, fmt.Errorf("optimize: initial point: %w", err)
	}
	if err = inst.Configure(Config{InitialPoint: point, Epsilon: s.Epsilon}); err != nil {
		return nil, err
	}

	// Only the gradient family consumes a line search.
	if g, ok := inst.(interface {
		setLineSearch(reg *Registry, enabled bool)
	}); ok {
		g.setLineSearch(reg, s.LineSearch)
	}

	return inst, nil
}
