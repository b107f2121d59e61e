package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/solve"
)

// Laguerre refines x0 with Laguerre's method, which uses the first and
// second derivatives and an order hint (for a polynomial, its degree; 1 is
// a safe default for general functions). Real arithmetic only: a negative
// discriminant is clamped to zero, degrading the step to Newton-like
// behavior instead of leaving the real line.
func Laguerre(f solve.Func, df, ddf solve.Deriv, order float64, x0 float64, pol solve.Policy) (solve.Result, error) {
	if err := pol.Validate(); err != nil {
		return solve.Result{Status: solve.DomainError}, err
	}
	if order < 1 || !solve.IsFinite(order) || !solve.IsFinite(x0) {
		return solve.Result{Status: solve.DomainError},
			fmt.Errorf("%w: order %v, start %v", solve.ErrDomain, order, x0)
	}

	n := order
	x := x0
	fx := f(x)
	if !solve.IsFinite(fx) {
		return solve.Result{Estimate: x, Status: solve.DomainError},
			fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x)
	}

	for i := 1; i <= pol.MaxIterations; i++ {
		if math.Abs(fx) <= pol.Tolerance {
			return solve.Result{Estimate: x, Value: fx, Iterations: i - 1, Status: solve.Converged}, nil
		}

		g := df(x) / fx
		h := g*g - ddf(x)/fx
		if !solve.IsFinite(g) || !solve.IsFinite(h) {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: non-finite derivative near %v", solve.ErrDomain, x)
		}

		disc := (n - 1) * (n*h - g*g)
		root := math.Sqrt(math.Max(disc, 0))

		// Pick the sign that maximizes the denominator magnitude.
		denom := g + math.Copysign(root, g)
		if math.Abs(denom) <= derivativeFloor(x) {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.SingularDerivative},
				fmt.Errorf("%w: Laguerre denominator vanished at %v", solve.ErrSingularDerivative, x)
		}

		step := n / denom
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

		if math.Abs(step) <= pol.Tolerance {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.Converged}, nil
		}
	}

	return solve.Result{Estimate: x, Value: fx, Iterations: pol.MaxIterations, Status: solve.MaxIterations},
		solve.ErrMaxIterations
}
