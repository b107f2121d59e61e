package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/solve"
)

// sanityBound aborts open (bracket-free) iterations that have clearly
// diverged; the run then reports MaxIterationsExceeded with the last
// iterate rather than looping until the cap.
const sanityBound = 1e150

// Newton refines x0 with Newton's method using the caller-supplied
// derivative. The run fails with SingularDerivative when |df(x)| falls
// below a machine-epsilon threshold scaled by the magnitude of x. No
// bracket is maintained; divergence is caught by the iteration cap or the
// sanity bound.
func Newton(f solve.Func, df solve.Deriv, x0 float64, pol solve.Policy) (solve.Result, error) {
	if err := pol.Validate(); err != nil {
		return solve.Result{Status: solve.DomainError}, err
	}
	if !solve.IsFinite(x0) {
		return solve.Result{Status: solve.DomainError},
			fmt.Errorf("%w: starting point %v", solve.ErrDomain, x0)
	}

	x := x0
	fx := f(x)
	if !solve.IsFinite(fx) {
		return solve.Result{Estimate: x, Status: solve.DomainError},
			fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x)
	}
	if math.Abs(fx) <= pol.Tolerance {
		return solve.Result{Estimate: x, Value: fx, Status: solve.Converged}, nil
	}

	for i := 1; i <= pol.MaxIterations; i++ {
		g := df(x)
		if !solve.IsFinite(g) {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: f'(%v) is not finite", solve.ErrDomain, x)
		}
		if math.Abs(g) <= derivativeFloor(x) {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.SingularDerivative},
				fmt.Errorf("%w: f'(%v) = %v", solve.ErrSingularDerivative, x, g)
		}

		step := fx / g
		x -= step
		if !solve.IsFinite(x) || math.Abs(x) > sanityBound {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.MaxIterations},
				solve.ErrMaxIterations
		}
		fx = f(x)
		if !solve.IsFinite(fx) {
			return solve.Result{Estimate: x, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x)
		}
		pol.Observe(i, x, fx, math.Abs(step))

		if math.Abs(step) <= pol.Tolerance || math.Abs(fx) <= pol.Tolerance {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.Converged}, nil
		}
	}

	return solve.Result{Estimate: x, Value: fx, Iterations: pol.MaxIterations, Status: solve.MaxIterations},
		solve.ErrMaxIterations
}

// derivativeFloor is the numerical-stability threshold below which a
// derivative is treated as zero, tied to machine epsilon scaled by the
// current iterate's magnitude.
func derivativeFloor(x float64) float64 {
	scale := math.Abs(x)
	if scale < 1 {
		scale = 1
	}
	return 4 * epsFloat64 * scale
}

const epsFloat64 = 2.220446049250313e-16
