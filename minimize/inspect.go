package minimize

import (
	"fmt"

	"github.com/san-kum/univar/solve"
)

// ByInspection samples n evenly spaced points on [a, b] and returns the
// one with the smallest function value. Useful for seeding a bracket when
// nothing is known about the function's shape.
func ByInspection(f solve.Func, a, b float64, n int) (x, fx float64, err error) {
	if !(a < b) || n < 2 {
		return 0, 0, fmt.Errorf("%w: need a < b and n >= 2", solve.ErrDomain)
	}

	step := (b - a) / float64(n-1)
	x, fx = a, f(a)
	if !solve.IsFinite(fx) {
		return 0, 0, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, a)
	}
	for i := 1; i < n; i++ {
		xi := a + float64(i)*step
		fi := f(xi)
		if !solve.IsFinite(fi) {
			return 0, 0, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, xi)
		}
		if fi < fx {
			x, fx = xi, fi
		}
	}
	return x, fx, nil
}
