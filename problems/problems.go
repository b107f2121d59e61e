// Package problems provides a catalog of univariate test problems.
//
// Each [Problem] bundles a function, its analytic derivatives where
// available, a natural domain, and reference values, so the CLI and the
// test suites can exercise every solver against the same corpus. Problems
// are looked up by name through a [Registry].
package problems

import (
	"fmt"
	"sort"

	"github.com/san-kum/univar/solve"
)

// Problem is one named univariate function with its metadata.
type Problem struct {
	Name string
	Desc string

	F      solve.Func
	Deriv  solve.Deriv // nil when no analytic derivative is provided
	Deriv2 solve.Deriv // nil when no analytic second derivative is provided

	// Lo, Hi is the natural domain; for root problems it brackets every
	// listed root, for minimum problems it contains the minimum.
	Lo, Hi float64

	// Degree is the suggested Chebyshev degree on [Lo, Hi].
	Degree int

	// Roots lists reference roots inside the domain, ascending.
	Roots []float64

	// MinAt is the reference minimizer when HasMin is set.
	MinAt  float64
	HasMin bool
}

// HasDeriv reports whether an analytic first derivative is available.
func (p Problem) HasDeriv() bool { return p.Deriv != nil }

// Registry maps problem names to their definitions.
type Registry struct {
	problems map[string]Problem
}

// NewRegistry returns a registry pre-populated with the builtin catalog.
func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]Problem)}
	for _, p := range catalog() {
		r.problems[p.Name] = p
	}
	return r
}

// Register adds or replaces a problem.
func (r *Registry) Register(p Problem) {
	r.problems[p.Name] = p
}

// Get looks up a problem by name.
func (r *Registry) Get(name string) (Problem, error) {
	p, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s (available: %v)", name, r.List())
	}
	return p, nil
}

// List returns every registered name, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
