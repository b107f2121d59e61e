package solve

import (
	"fmt"
	"math"
)

// Func is a real-valued function of one real variable. It must be
// deterministic for a fixed input; non-finite outputs are treated as
// domain errors by the consuming solver.
type Func func(x float64) float64

// Deriv is the derivative of a Func, supplied by the caller.
// No differentiation is performed by this module.
type Deriv func(x float64) float64

// Status reports how a solver run ended.
type Status int

const (
	Converged Status = iota
	MaxIterations
	NotABracket
	SingularDerivative
	DomainError
)

var statusNames = map[Status]string{
	Converged:          "Converged",
	MaxIterations:      "MaxIterationsExceeded",
	NotABracket:        "NotABracket",
	SingularDerivative: "SingularDerivative",
	DomainError:        "DomainError",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return name
}

// Ok reports whether the run converged.
func (s Status) Ok() bool { return s == Converged }

// Err returns the sentinel error matching the status, or nil for Converged.
func (s Status) Err() error {
	switch s {
	case Converged:
		return nil
	case MaxIterations:
		return ErrMaxIterations
	case NotABracket:
		return ErrNotABracket
	case SingularDerivative:
		return ErrSingularDerivative
	default:
		return ErrDomain
	}
}

// Policy holds the convergence settings shared by every refiner.
type Policy struct {
	// Tolerance is the absolute stopping threshold, applied to the
	// bracket width (or step size) and to the residual.
	Tolerance float64

	// MaxIterations is the hard iteration cap.
	MaxIterations int

	// Observer, if set, receives every iterate.
	Observer Observer
}

// DefaultPolicy returns settings suitable for well-scaled problems.
func DefaultPolicy() Policy {
	return Policy{Tolerance: 1e-12, MaxIterations: 200}
}

// Validate checks the policy before any iteration starts.
func (p Policy) Validate() error {
	if math.IsNaN(p.Tolerance) || math.IsInf(p.Tolerance, 0) || p.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be finite and positive, got %v", ErrDomain, p.Tolerance)
	}
	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrDomain, p.MaxIterations)
	}
	return nil
}

// Observe forwards an iterate to the attached observer, if any.
func (p Policy) Observe(iter int, x, fx, width float64) {
	if p.Observer != nil {
		p.Observer.OnIteration(iter, x, fx, width)
	}
}

// Result is the uniform return shape of every refiner. The best estimate
// found so far is always populated, even when Status is a failure.
type Result struct {
	Estimate   float64
	Value      float64
	Iterations int
	Status     Status
}

// Observer receives one call per solver iteration.
type Observer interface {
	OnIteration(iter int, x, fx, width float64)
}

// Step is one recorded solver iteration.
type Step struct {
	Iter  int
	X     float64
	FX    float64
	Width float64
}

// Trace records every iteration it observes. The zero value is ready to use.
type Trace struct {
	Steps []Step
}

func (t *Trace) OnIteration(iter int, x, fx, width float64) {
	t.Steps = append(t.Steps, Step{Iter: iter, X: x, FX: fx, Width: width})
}

func (t *Trace) Reset() { t.Steps = t.Steps[:0] }

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
