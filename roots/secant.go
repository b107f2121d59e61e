package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/solve"
)

// Secant refines a root estimate from two distinct starting points,
// replacing Newton's derivative with the finite-difference slope between
// the two most recent iterates. Equal consecutive function values make
// the slope denominator vanish and fail the run with SingularDerivative.
func Secant(f solve.Func, x0, x1 float64, pol solve.Policy) (solve.Result, error) {
	if err := pol.Validate(); err != nil {
		return solve.Result{Status: solve.DomainError}, err
	}
	if x0 == x1 || !solve.IsFinite(x0) || !solve.IsFinite(x1) {
		return solve.Result{Status: solve.DomainError},
			fmt.Errorf("%w: starting points must be distinct and finite (%v, %v)", solve.ErrDomain, x0, x1)
	}

	f0, f1 := f(x0), f(x1)
	if !solve.IsFinite(f0) || !solve.IsFinite(f1) {
		return solve.Result{Estimate: x1, Status: solve.DomainError},
			fmt.Errorf("%w: non-finite function value at start", solve.ErrDomain)
	}
	if math.Abs(f1) <= pol.Tolerance {
		return solve.Result{Estimate: x1, Value: f1, Status: solve.Converged}, nil
	}

	for i := 1; i <= pol.MaxIterations; i++ {
		if f1 == f0 {
			return solve.Result{Estimate: x1, Value: f1, Iterations: i, Status: solve.SingularDerivative},
				fmt.Errorf("%w: f(%v) == f(%v)", solve.ErrSingularDerivative, x0, x1)
		}

		x := x1 - f1*(x1-x0)/(f1-f0)
		if !solve.IsFinite(x) || math.Abs(x) > sanityBound {
			return solve.Result{Estimate: x1, Value: f1, Iterations: i, Status: solve.MaxIterations},
				solve.ErrMaxIterations
		}
		x0, f0 = x1, f1
		x1 = x
		f1 = f(x1)
		if !solve.IsFinite(f1) {
			return solve.Result{Estimate: x1, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x1)
		}
		pol.Observe(i, x1, f1, math.Abs(x1-x0))

		if math.Abs(x1-x0) <= pol.Tolerance || math.Abs(f1) <= pol.Tolerance {
			return solve.Result{Estimate: x1, Value: f1, Iterations: i, Status: solve.Converged}, nil
		}
	}

	return solve.Result{Estimate: x1, Value: f1, Iterations: pol.MaxIterations, Status: solve.MaxIterations},
		solve.ErrMaxIterations
}
