package bracket

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/solve"
)

const (
	// goldenStretch is the default magnification for downhill steps.
	goldenStretch = 1.618033988749895

	// parabolaLimit caps how far a parabolic extrapolation may overshoot.
	parabolaLimit = 100.0

	tinyDenom = 1e-20
)

// FindRoot probes outward from x0 in the direction of step, growing the
// step by grow each probe, until consecutive probes change sign. The sign
// of step selects the search direction; grow must exceed 1. At most
// maxExpand probes are made before failing with NotABracket.
//
// If any probe evaluates to exactly zero a degenerate bracket is returned.
// A non-finite function value fails immediately with DomainError, since no
// bracketing reasoning survives one.
func FindRoot(f solve.Func, x0, step, grow float64, maxExpand int) (Root, error) {
	if step == 0 || !solve.IsFinite(step) || !(grow > 1) || !solve.IsFinite(x0) || maxExpand <= 0 {
		return Root{}, fmt.Errorf("%w: invalid search parameters (x0=%v step=%v grow=%v)", solve.ErrDomain, x0, step, grow)
	}

	x, fx := x0, f(x0)
	if !solve.IsFinite(fx) {
		return Root{}, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x0)
	}
	if fx == 0 {
		return Root{A: x0, B: x0}, nil
	}
	sign := math.Signbit(fx)

	for i := 0; i < maxExpand; i++ {
		nx := x + step
		if !solve.IsFinite(nx) {
			break
		}
		nfx := f(nx)
		if !solve.IsFinite(nfx) {
			return Root{}, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, nx)
		}
		if nfx == 0 {
			return Root{A: nx, B: nx}, nil
		}
		if math.Signbit(nfx) != sign {
			if x < nx {
				return Root{A: x, B: nx, FA: fx, FB: nfx}, nil
			}
			return Root{A: nx, B: x, FA: nfx, FB: fx}, nil
		}
		x, fx = nx, nfx
		step *= grow
	}

	return Root{}, fmt.Errorf("%w: no sign change within %d probes from %v", solve.ErrNotABracket, maxExpand, x0)
}

// FindMin expands a downhill pair into a minimum bracket. The pair (a, b)
// indicates the descent direction via f(a) > f(b); the points are swapped
// when it does not. Each expansion first tries a parabolic extrapolation
// through the current triple, bounded by parabolaLimit times the last
// interval, and falls back to a golden-ratio step when the parabolic guess
// is unusable.
func FindMin(f solve.Func, a, b float64, maxExpand int) (Min, error) {
	if a == b || !solve.IsFinite(a) || !solve.IsFinite(b) || maxExpand <= 0 {
		return Min{}, fmt.Errorf("%w: invalid seed pair (%v, %v)", solve.ErrDomain, a, b)
	}

	fa, fb := f(a), f(b)
	if !solve.IsFinite(fa) || !solve.IsFinite(fb) {
		return Min{}, fmt.Errorf("%w: non-finite function value at seed", solve.ErrDomain)
	}
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
	}

	c := b + goldenStretch*(b-a)
	fc, err := probe(f, c)
	if err != nil {
		return Min{}, err
	}

	for i := 0; fb > fc; i++ {
		if i >= maxExpand {
			return Min{}, fmt.Errorf("%w: no valley within %d expansions", solve.ErrNotABracket, maxExpand)
		}

		// Parabolic extrapolation from the triple (a, b, c).
		r := (b - a) * (fb - fc)
		q := (b - c) * (fb - fa)
		denom := 2 * math.Copysign(math.Max(math.Abs(q-r), tinyDenom), q-r)
		u := b - ((b-c)*q-(b-a)*r)/denom
		ulim := b + parabolaLimit*(c-b)

		var fu float64
		switch {
		case (b-u)*(u-c) > 0:
			// Parabolic u lies between b and c.
			fu, err = probe(f, u)
			if err != nil {
				return Min{}, err
			}
			if fu < fc {
				a, b, fa, fb = b, u, fb, fu
				continue
			}
			if fu > fb {
				c, fc = u, fu
				continue
			}
			// Parabolic step was useless, take the default magnification.
			u = c + goldenStretch*(c-b)
			fu, err = probe(f, u)
			if err != nil {
				return Min{}, err
			}
		case (c-u)*(u-ulim) > 0:
			// Parabolic u lies beyond c but within the allowed limit.
			fu, err = probe(f, u)
			if err != nil {
				return Min{}, err
			}
			if fu < fc {
				b, c = c, u
				fb, fc = fc, fu
				u = c + goldenStretch*(c-b)
				fu, err = probe(f, u)
				if err != nil {
					return Min{}, err
				}
			}
		case (u-ulim)*(ulim-c) >= 0:
			// Clamp the overshoot to the limit.
			u = ulim
			fu, err = probe(f, u)
			if err != nil {
				return Min{}, err
			}
		default:
			u = c + goldenStretch*(c-b)
			fu, err = probe(f, u)
			if err != nil {
				return Min{}, err
			}
		}

		a, b, c = b, c, u
		fa, fb, fc = fb, fc, fu
	}

	m := Min{A: a, B: b, C: c, FA: fa, FB: fb, FC: fc}
	if m.A > m.C {
		m.A, m.C = m.C, m.A
		m.FA, m.FC = m.FC, m.FA
	}
	if !m.Valid() {
		return Min{}, fmt.Errorf("%w: expansion produced no valley", solve.ErrNotABracket)
	}
	return m, nil
}

// FindNegative searches for any point with a negative function value,
// expanding downhill from x0 with geometrically growing steps bounded to
// [lo, hi]. If the expansion overshoots a valley without going negative,
// the valley interior is searched by golden section. Assumes f(x0) >= 0
// and that f decreases in the direction of step.
func FindNegative(f solve.Func, x0, step, lo, hi float64) (x, fx float64, err error) {
	if step == 0 || !solve.IsFinite(step) || !(lo < hi) {
		return 0, 0, fmt.Errorf("%w: invalid search parameters", solve.ErrDomain)
	}

	a, fa := x0, f(x0)
	if !solve.IsFinite(fa) {
		return 0, 0, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x0)
	}
	if fa < 0 {
		return a, fa, nil
	}

	b := a
	for {
		b += step
		if b < lo || b > hi {
			return 0, 0, fmt.Errorf("%w: reached boundary without a negative value", solve.ErrNotABracket)
		}
		fb := f(b)
		if !solve.IsFinite(fb) {
			return 0, 0, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, b)
		}
		if fb < 0 {
			return b, fb, nil
		}
		if fb > fa {
			// Overshot a valley; look inside it.
			a -= 0.5 * step
			return LocateNegative(f, math.Min(a, b), math.Max(a, b), 1e-15)
		}
		a, fa = b, fb
		step *= 2
	}
}

// LocateNegative searches [a, b] for a negative function value using
// golden-section narrowing, stopping once the interval shrinks below a
// width proportional to tol.
func LocateNegative(f solve.Func, a, b, tol float64) (x, fx float64, err error) {
	if !(a < b) {
		return 0, 0, fmt.Errorf("%w: invalid interval [%v, %v]", solve.ErrDomain, a, b)
	}

	fa := f(a)
	if fa < 0 {
		return a, fa, nil
	}
	fb := f(b)
	if fb < 0 {
		return b, fb, nil
	}

	eps := 2 * tol * math.Max(math.Abs(a), math.Abs(b))
	phiInv := 1 / goldenStretch

	c := b - (b-a)*phiInv
	d := a + (b-a)*phiInv

	for b-a > eps {
		fc := f(c)
		if fc < 0 {
			return c, fc, nil
		}
		fd := f(d)
		if fd < 0 {
			return d, fd, nil
		}
		if fc < fd {
			b = d
		} else {
			a = c
		}
		c = b - (b-a)*phiInv
		d = a + (b-a)*phiInv
	}

	return 0, 0, fmt.Errorf("%w: no negative value in the interval", solve.ErrNotABracket)
}

func probe(f solve.Func, x float64) (float64, error) {
	fx := f(x)
	if !solve.IsFinite(fx) {
		return 0, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x)
	}
	return fx, nil
}
