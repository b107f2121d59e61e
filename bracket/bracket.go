// Package bracket constructs verified root and minimum brackets.
//
// A [Root] holds two points with opposite-sign function values; by the
// intermediate value theorem a continuous function has a root between
// them. A [Min] holds an ordered triple a < b < c with f(b) no larger
// than either end, so a local minimum lies inside.
package bracket

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/solve"
)

// Root is a validated root bracket. Immutable once built: the invariant
// sign(FA) != sign(FB) is checked at construction and never re-checked
// by value holders, only by refiners on entry.
type Root struct {
	A, B   float64
	FA, FB float64
}

// NewRoot evaluates f at both endpoints and validates the bracket.
// If either endpoint evaluates to exactly zero, a degenerate bracket
// (x, x) is returned, signaling immediate convergence upstream.
func NewRoot(f solve.Func, a, b float64) (Root, error) {
	if !(a < b) || !solve.IsFinite(a) || !solve.IsFinite(b) {
		return Root{}, fmt.Errorf("%w: invalid interval [%v, %v]", solve.ErrDomain, a, b)
	}
	fa := f(a)
	fb := f(b)
	if !solve.IsFinite(fa) || !solve.IsFinite(fb) {
		return Root{}, fmt.Errorf("%w: non-finite function value on [%v, %v]", solve.ErrDomain, a, b)
	}
	if fa == 0 {
		return Root{A: a, B: a}, nil
	}
	if fb == 0 {
		return Root{A: b, B: b}, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return Root{}, fmt.Errorf("%w: f(%v)=%v and f(%v)=%v share a sign", solve.ErrNotABracket, a, fa, b, fb)
	}
	return Root{A: a, B: b, FA: fa, FB: fb}, nil
}

// Width returns the bracket width.
func (r Root) Width() float64 { return r.B - r.A }

// Degenerate reports whether the bracket collapsed onto an exact root.
func (r Root) Degenerate() bool { return r.A == r.B }

// Valid reports whether the bracket still satisfies its invariant.
// Refiners call this on entry so a hand-built bracket with same-sign
// endpoints fails with NotABracket instead of iterating.
func (r Root) Valid() bool {
	if r.Degenerate() {
		return true
	}
	if !(r.A < r.B) {
		return false
	}
	if r.FA == 0 || r.FB == 0 {
		return false
	}
	return math.Signbit(r.FA) != math.Signbit(r.FB)
}

// Min is a validated minimum bracket: A < B < C with FB <= FA and FB <= FC.
type Min struct {
	A, B, C    float64
	FA, FB, FC float64
}

// NewMin evaluates f at the three points and validates the valley shape.
func NewMin(f solve.Func, a, b, c float64) (Min, error) {
	if !(a < b && b < c) {
		return Min{}, fmt.Errorf("%w: points not strictly ordered (%v, %v, %v)", solve.ErrDomain, a, b, c)
	}
	fa, fb, fc := f(a), f(b), f(c)
	if !solve.IsFinite(fa) || !solve.IsFinite(fb) || !solve.IsFinite(fc) {
		return Min{}, fmt.Errorf("%w: non-finite function value on (%v, %v, %v)", solve.ErrDomain, a, b, c)
	}
	m := Min{A: a, B: b, C: c, FA: fa, FB: fb, FC: fc}
	if !m.Valid() {
		return Min{}, fmt.Errorf("%w: no valley at (%v, %v, %v)", solve.ErrNotABracket, a, b, c)
	}
	return m, nil
}

// Valid reports whether the triple still satisfies the valley invariant.
func (m Min) Valid() bool {
	return m.A < m.B && m.B < m.C && m.FB <= m.FA && m.FB <= m.FC
}

// Width returns the outer width of the triple.
func (m Min) Width() float64 { return m.C - m.A }
