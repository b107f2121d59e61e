// Package cheb approximates functions by truncated Chebyshev series.
//
// A [Series] is built once by sampling the function at Chebyshev nodes
// over a fixed domain, then queried arbitrarily often: [Series.Eval] uses
// the Clenshaw recurrence, and [Series.Roots] isolates sign changes of the
// series by interval subdivision and polishes each with the ITP refiner.
// A Series is immutable after construction and safe for concurrent reads.
package cheb

import (
	"fmt"
	"math"

	"github.com/san-kum/univar/solve"
)

// coeffNoiseFloor is the relative magnitude below which trailing
// coefficients are treated as rounding noise and trimmed.
const coeffNoiseFloor = 1e-14

// Series is a truncated Chebyshev approximation of a function on [lo, hi].
type Series struct {
	lo, hi float64
	coeffs []float64
}

// New samples f at the degree+1 Chebyshev nodes
//
//	x_k = lo + (hi-lo)/2 * (1 + cos(pi*k/degree)),  k = 0..degree
//
// and derives the series coefficients with a type-I discrete cosine
// transform. Trailing coefficients below a relative noise floor are
// trimmed, so the stored degree may be lower than requested. The function
// is invoked only here, never retained.
func New(f solve.Func, lo, hi float64, degree int) (*Series, error) {
	if !(lo < hi) || !solve.IsFinite(lo) || !solve.IsFinite(hi) {
		return nil, fmt.Errorf("%w: invalid domain [%v, %v]", solve.ErrDomain, lo, hi)
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be >= 1, got %d", solve.ErrDomain, degree)
	}

	n := degree
	samples := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		u := math.Cos(math.Pi * float64(k) / float64(n))
		x := lo + 0.5*(hi-lo)*(1+u)
		v := f(x)
		if !solve.IsFinite(v) {
			return nil, fmt.Errorf("%w: f(%v) is not finite", solve.ErrDomain, x)
		}
		samples[k] = v
	}

	return &Series{lo: lo, hi: hi, coeffs: trim(dctI(samples))}, nil
}

// dctI converts Lobatto-node samples into Chebyshev coefficients. The
// returned slice is already in plain-sum form: the half weights of the
// first and last cosine-transform terms are folded into the coefficients,
// so Eval can compute sum(c_j * T_j) directly.
func dctI(samples []float64) []float64 {
	n := len(samples) - 1
	coeffs := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		sum := 0.5 * (samples[0] + float64(parity(j))*samples[n])
		for k := 1; k < n; k++ {
			sum += samples[k] * math.Cos(math.Pi*float64(j)*float64(k)/float64(n))
		}
		coeffs[j] = 2 * sum / float64(n)
	}
	coeffs[0] *= 0.5
	coeffs[n] *= 0.5
	return coeffs
}

func parity(j int) int {
	if j%2 == 0 {
		return 1
	}
	return -1
}

// trim drops trailing coefficients below the relative noise floor,
// keeping at least one so the series stays evaluable.
func trim(coeffs []float64) []float64 {
	maxAbs := 0.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}
	floor := math.Max(coeffNoiseFloor*maxAbs, epsFloat64)
	last := 0
	for i, c := range coeffs {
		if math.Abs(c) >= floor {
			last = i
		}
	}
	return coeffs[:last+1]
}

const epsFloat64 = 2.220446049250313e-16

// Eval evaluates the series at x with the Clenshaw recurrence, which
// avoids forming monomial powers explicitly.
func (s *Series) Eval(x float64) float64 {
	u := (2*x - s.lo - s.hi) / (s.hi - s.lo)

	var d, dd float64
	for j := len(s.coeffs) - 1; j >= 1; j-- {
		d, dd = 2*u*d-dd+s.coeffs[j], d
	}
	return u*d - dd + s.coeffs[0]
}

// Domain returns the interval the series was built on.
func (s *Series) Domain() (lo, hi float64) { return s.lo, s.hi }

// Degree returns the degree after trimming.
func (s *Series) Degree() int { return len(s.coeffs) - 1 }

// Coeffs returns a copy of the coefficient sequence.
func (s *Series) Coeffs() []float64 {
	out := make([]float64, len(s.coeffs))
	copy(out, s.coeffs)
	return out
}

// scale is the magnitude reference for deciding when an evaluated value
// counts as zero during root isolation.
func (s *Series) scale() float64 {
	m := 0.0
	for _, c := range s.coeffs {
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return m
}
