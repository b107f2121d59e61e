package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/bracket"
	"github.com/san-kum/univar/solve"
)

// Bisect narrows a root bracket by interval halving until the width drops
// below pol.Tolerance. The iteration count to reach width tol from width w
// is exactly ceil(log2(w/tol)); an exact zero at a midpoint ends the run
// early, nothing else does.
func Bisect(f solve.Func, br bracket.Root, pol solve.Policy) (solve.Result, error) {
	if err := pol.Validate(); err != nil {
		return solve.Result{Status: solve.DomainError}, err
	}
	if res, done, err := checkBracket(br); done {
		return res, err
	}

	a, b := br.A, br.B
	neg := math.Signbit(br.FA)

	for i := 1; i <= pol.MaxIterations; i++ {
		x := 0.5 * (a + b)
		if x <= a || x >= b {
			// No representable point remains strictly inside.
			return finish(f, x, i-1), nil
		}
		fx := f(x)
		if !solve.IsFinite(fx) {
			return solve.Result{Estimate: x, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x)
		}
		if fx == 0 {
			pol.Observe(i, x, fx, b-a)
			return solve.Result{Estimate: x, Iterations: i, Status: solve.Converged}, nil
		}
		if math.Signbit(fx) == neg {
			a = x
		} else {
			b = x
		}
		pol.Observe(i, x, fx, b-a)
		if b-a <= pol.Tolerance {
			return finish(f, 0.5*(a+b), i), nil
		}
	}

	return solve.Result{
		Estimate:   0.5 * (a + b),
		Value:      f(0.5 * (a + b)),
		Iterations: pol.MaxIterations,
		Status:     solve.MaxIterations,
	}, solve.ErrMaxIterations
}

// checkBracket handles the shared entry validation of bracketed refiners.
// done is true when the caller should return immediately.
func checkBracket(br bracket.Root) (res solve.Result, done bool, err error) {
	if br.Degenerate() {
		return solve.Result{Estimate: br.A, Status: solve.Converged}, true, nil
	}
	if !br.Valid() {
		return solve.Result{Estimate: br.A, Status: solve.NotABracket}, true,
			fmt.Errorf("%w: [%v, %v]", solve.ErrNotABracket, br.A, br.B)
	}
	return solve.Result{}, false, nil
}

func finish(f solve.Func, x float64, iters int) solve.Result {
	return solve.Result{Estimate: x, Value: f(x), Iterations: iters, Status: solve.Converged}
}
