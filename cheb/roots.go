package cheb

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/univar/bracket"
	"github.com/san-kum/univar/roots"
	"github.com/san-kum/univar/solve"
)

const (
	// rootSamples is the number of subintervals sampled per subdivision
	// level when isolating sign changes.
	rootSamples = 16

	// maxSubdivDepth caps the subdivision recursion. Roots spaced more
	// closely than the resulting resolution cannot be isolated; that is
	// an accuracy/performance trade-off, not a correctness guarantee.
	maxSubdivDepth = 12

	// zeroFraction of the series' coefficient scale decides when an
	// evaluated value counts as an exact root, so roots sitting on
	// sample points (domain boundaries included) are kept.
	zeroFraction = 1e-11
)

// span is one pending subinterval on the isolation worklist.
type span struct {
	lo, hi float64
	depth  int
}

// Roots returns the real roots of the series inside its domain, sorted
// ascending. Sign changes are isolated by subdividing the domain on an
// explicit worklist until each subinterval holds at most one, then each
// isolated bracket is polished with the ITP refiner against the series'
// own evaluation. Fails with DomainError when the subdivision depth cap
// is reached before isolation succeeds.
func (s *Series) Roots(pol solve.Policy) ([]float64, error) {
	if err := pol.Validate(); err != nil {
		return nil, err
	}
	return s.findRoots(pol, maxSubdivDepth)
}

// findRoots runs the isolation worklist with an explicit depth cap.
func (s *Series) findRoots(pol solve.Policy, maxDepth int) ([]float64, error) {
	n := len(s.coeffs)
	if n <= 1 {
		return nil, nil
	}
	if n == 2 {
		u := -s.coeffs[0] / s.coeffs[1]
		if math.Abs(u) > 1+1e-12 {
			return nil, nil
		}
		return []float64{s.fromUnit(u)}, nil
	}

	zeroTol := zeroFraction * s.scale()

	var found []float64
	work := []span{{lo: s.lo, hi: s.hi, depth: 0}}

	for len(work) > 0 {
		sp := work[len(work)-1]
		work = work[:len(work)-1]

		xs, vs := s.sample(sp.lo, sp.hi, rootSamples)

		// Samples indistinguishable from zero are roots themselves and
		// break the sign chain around them.
		pairs := make([][2]int, 0, 2)
		prev := -1 // index of the last sample with a definite sign
		for i := range xs {
			if math.Abs(vs[i]) <= zeroTol {
				found = append(found, xs[i])
				continue
			}
			if prev == i-1 && prev >= 0 && math.Signbit(vs[prev]) != math.Signbit(vs[i]) {
				pairs = append(pairs, [2]int{prev, i})
			}
			prev = i
		}

		switch {
		case len(pairs) == 0:
			// Nothing to do in this span.
		case len(pairs) == 1:
			lo, hi := pairs[0][0], pairs[0][1]
			br := bracket.Root{A: xs[lo], B: xs[hi], FA: vs[lo], FB: vs[hi]}
			res, err := roots.ITP(s.Eval, br, pol)
			if err != nil {
				return nil, err
			}
			found = append(found, res.Estimate)
		default:
			if sp.depth >= maxDepth {
				return nil, fmt.Errorf("%w: %d sign changes left unresolved in [%v, %v] at depth %d",
					solve.ErrDomain, len(pairs), sp.lo, sp.hi, sp.depth)
			}
			mid := 0.5 * (sp.lo + sp.hi)
			work = append(work,
				span{lo: sp.lo, hi: mid, depth: sp.depth + 1},
				span{lo: mid, hi: sp.hi, depth: sp.depth + 1},
			)
		}
	}

	return s.dedupe(found, pol.Tolerance), nil
}

// sample evaluates the series at m+1 evenly spaced points on [lo, hi].
func (s *Series) sample(lo, hi float64, m int) (xs, vs []float64) {
	xs = make([]float64, m+1)
	vs = make([]float64, m+1)
	step := (hi - lo) / float64(m)
	for i := 0; i <= m; i++ {
		x := lo + float64(i)*step
		if i == m {
			x = hi
		}
		xs[i] = x
		vs[i] = s.Eval(x)
	}
	return xs, vs
}

// dedupe sorts the candidates, clamps them to the domain, and merges
// neighbors closer than the merge tolerance (duplicates arise when a root
// sits on a shared sample point of adjacent spans).
func (s *Series) dedupe(candidates []float64, tol float64) []float64 {
	if len(candidates) == 0 {
		return nil
	}
	sort.Float64s(candidates)

	merge := math.Max(4*tol, (s.hi-s.lo)*1e-12)
	out := make([]float64, 0, len(candidates))
	for _, r := range candidates {
		r = math.Min(math.Max(r, s.lo), s.hi)
		if len(out) > 0 && r-out[len(out)-1] <= merge {
			continue
		}
		out = append(out, r)
	}
	return out
}

// fromUnit maps u in [-1, 1] back to the series domain.
func (s *Series) fromUnit(u float64) float64 {
	return 0.5 * (u*(s.hi-s.lo) + s.lo + s.hi)
}
