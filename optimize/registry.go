// SPDX-License-Identifier: MIT

// Package optimize: the name-keyed algorithm registry. The mapping is built
// once at setup time (process start or config load) and handed to whoever
// needs to instantiate algorithms by string key; optimizers consult it at
// most once per run, never inside the iteration loop.
package optimize

import (
	"fmt"
	"sort"
)

// Registry keys of the built-in algorithms.
const (
	// GoldenRatioName keys the golden-section 1-D line search.
	GoldenRatioName = "GoldenRatio"

	// NewtonRaphsonName keys the Hessian-driven optimizer.
	NewtonRaphsonName = "NewtonRaphson"

	// GradientDescentName keys the first-order optimizer.
	GradientDescentName = "GradientDescent"
)

// Registry maps algorithm names to factories. Every GetInstance call
// returns a fresh, unconfigured instance, so concurrent callers never share
// optimizer state. The zero value holds no registrations and fails every
// lookup; construct via NewRegistry for the built-in set.
type Registry struct {
	factories map[string]func() Algorithm
}

// NewRegistry builds a registry pre-populated with the built-in algorithms.
// The gradient-family instances it creates are wired back to the registry
// itself so they can obtain their golden-section line search by name.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]func() Algorithm)}
	r.Register(GoldenRatioName, func() Algorithm { return NewGoldenRatio() })
	r.Register(NewtonRaphsonName, func() Algorithm {
		n := NewNewtonRaphson()
		n.Registry = r

		return n
	})
	r.Register(GradientDescentName, func() Algorithm {
		g := NewGradientDescent()
		g.Registry = r

		return g
	})

	return r
}

// Register installs (or replaces) a factory under the given name.
func (r *Registry) Register(name string, factory func() Algorithm) {
	r.factories[name] = factory
}

// GetInstance returns a fresh instance of the named algorithm.
// Errors: ErrUnknownAlgorithm (wrapped with the offending name).
func (r *Registry) GetInstance(name string) (Algorithm, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}

	return factory(), nil
}

// Names lists the registered keys in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
