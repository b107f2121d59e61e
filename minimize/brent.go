// Package minimize locates local minima of univariate functions.
package minimize

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/bracket"
	"github.com/san-kum/univar/solve"
)

const (
	// cgold is the golden-section step ratio (3 - sqrt(5)) / 2.
	cgold = 0.3819660112501052

	// zeps keeps the width tolerance meaningful when the minimum sits
	// at or near zero.
	zeps = 1e-10
)

// Brent narrows a minimum bracket with Brent's method: a parabolic
// interpolation step through the three best points, accepted only when it
// lands inside the bracket and improves sufficiently on the step before
// last, otherwise a golden-section step. Terminates when the bracket width
// drops below pol.Tolerance scaled by the magnitude of the current best
// point.
func Brent(f solve.Func, br bracket.Min, pol solve.Policy) (solve.Result, error) {
	if err := pol.Validate(); err != nil {
		return solve.Result{Status: solve.DomainError}, err
	}
	if !br.Valid() {
		return solve.Result{Estimate: br.B, Status: solve.NotABracket},
			fmt.Errorf("%w: (%v, %v, %v) is not a valley", solve.ErrNotABracket, br.A, br.B, br.C)
	}

	a, b := br.A, br.C
	x, w, v := br.B, br.B, br.B
	fx, fw, fv := br.FB, br.FB, br.FB
	var d, e float64

	for i := 1; i <= pol.MaxIterations; i++ {
		xm := 0.5 * (a + b)
		tol1 := pol.Tolerance*math.Abs(x) + zeps
		tol2 := 2 * tol1

		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return solve.Result{Estimate: x, Value: fx, Iterations: i - 1, Status: solve.Converged}, nil
		}

		if math.Abs(e) > tol1 {
			// Parabolic fit through x, w, v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			} else {
				q = -q
			}
			ePrev := e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*ePrev) || p <= q*(a-x) || p >= q*(b-x) {
				// Reject: fall back to golden section into the larger side.
				if x >= xm {
					e = a - x
				} else {
					e = b - x
				}
				d = cgold * e
			} else {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
			}
		} else {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}

		fu := f(u)
		if !solve.IsFinite(fu) {
			return solve.Result{Estimate: x, Value: fx, Iterations: i, Status: solve.DomainError},
				fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, u)
		}
		pol.Observe(i, u, fu, b-a)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return solve.Result{Estimate: x, Value: fx, Iterations: pol.MaxIterations, Status: solve.MaxIterations},
		solve.ErrMaxIterations
}
