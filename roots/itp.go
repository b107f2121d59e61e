package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/bracket"
	"github.com/san-kum/univar/solve"
)

// ITPParams tunes the interpolate-truncate-project method. K1 scales the
// truncation radius, K2 its growth exponent (valid range [1, 1+phi)), and
// N0 the number of extra iterations allowed beyond bisection's worst case
// before the projection radius collapses onto the midpoint.
type ITPParams struct {
	K1 float64
	K2 float64
	N0 int
}

// DefaultITPParams returns the defaults validated against the worst-case
// bound: k1 = 0.2/width, k2 = 2, n0 = 5.
func DefaultITPParams(br bracket.Root) ITPParams {
	k1 := 0.2
	if w := br.Width(); w > 0 {
		k1 = 0.2 / w
	}
	return ITPParams{K1: k1, K2: 2, N0: 5}
}

// ITP narrows a root bracket with the ITP method using default parameters.
//
// The regula-falsi interpolation estimate is truncated toward the bisection
// midpoint and then projected into a shrinking radius around it, so the
// worst case matches bisection while well-behaved functions converge
// superlinearly.
func ITP(f solve.Func, br bracket.Root, pol solve.Policy) (solve.Result, error) {
	return ITPWith(f, br, pol, DefaultITPParams(br))
}

// ITPWith is ITP with explicit method parameters.
func ITPWith(f solve.Func, br bracket.Root, pol solve.Policy, params ITPParams) (solve.Result, error) {
	if err := pol.Validate(); err != nil {
		return solve.Result{Status: solve.DomainError}, err
	}
	if params.K1 <= 0 || params.K2 < 1 || params.K2 >= 1+goldenRatio || params.N0 < 0 {
		return solve.Result{Status: solve.DomainError},
			fmt.Errorf("%w: invalid ITP parameters k1=%v k2=%v n0=%d", solve.ErrDomain, params.K1, params.K2, params.N0)
	}
	if res, done, err := checkBracket(br); done {
		return res, err
	}

	a, b := br.A, br.B
	fa, fb := br.FA, br.FB

	halfTol := 0.5 * pol.Tolerance
	n12 := math.Max(math.Ceil(math.Log2((b-a)/halfTol))-1, 0)
	nMax := float64(params.N0) + n12
	scaledEps := halfTol * math.Exp2(nMax)

	// The truncation step assumes f(a) <= f(b); flip the comparison
	// when the bracket runs the other way.
	negate := fb < fa

	iters := 0
	for b-a > 2*halfTol {
		iters++
		i := iters
		if i > pol.MaxIterations {
			x := 0.5 * (a + b)
			return solve.Result{Estimate: x, Value: f(x), Iterations: pol.MaxIterations, Status: solve.MaxIterations},
				solve.ErrMaxIterations
		}

		x12 := 0.5 * (a + b)
		r := scaledEps - 0.5*(b-a)
		delta := params.K1 * math.Pow(b-a, params.K2)

		// Interpolation: the regula falsi estimate.
		xf := (fb*a - fa*b) / (fb - fa)

		// Truncation: pull the estimate toward the midpoint.
		sigma := x12 - xf
		xt := x12
		if delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}

		// Projection: keep the estimate within the minimum perturbation
		// radius of the midpoint.
		xITP := xt
		if math.Abs(xt-x12) > r {
			xITP = x12 - math.Copysign(r, sigma)
		}

		fITP := f(xITP)
		if !solve.IsFinite(fITP) {
			return solve.Result{Estimate: xITP, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, xITP)
		}
		pol.Observe(i, xITP, fITP, b-a)

		if fITP == 0 {
			return solve.Result{Estimate: xITP, Iterations: i, Status: solve.Converged}, nil
		}
		if negate != (fITP > 0) {
			b, fb = xITP, fITP
		} else {
			a, fa = xITP, fITP
		}

		scaledEps *= 0.5
	}

	x := 0.5 * (a + b)
	return solve.Result{Estimate: x, Value: f(x), Iterations: iters, Status: solve.Converged}, nil
}

const goldenRatio = 1.618033988749895
