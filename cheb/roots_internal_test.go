package cheb

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/univar/solve"
)

func TestFindRootsDepthCap(t *testing.T) {
	// Two well separated sign changes in the top-level span force one
	// subdivision; with no depth budget isolation must fail rather than
	// refine a multi-root bracket.
	f := func(x float64) float64 { return math.Sin(3 * x) }
	s, err := New(f, 0.1, 3, 32)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	pol := solve.Policy{Tolerance: 1e-12, MaxIterations: 200}

	if _, err := s.findRoots(pol, 0); !errors.Is(err, solve.ErrDomain) {
		t.Errorf("depth cap 0: expected ErrDomain, got %v", err)
	}

	// One level of subdivision is enough to isolate each sign change.
	rs, err := s.findRoots(pol, 1)
	if err != nil {
		t.Fatalf("depth cap 1: %v", err)
	}
	if len(rs) != 2 {
		t.Errorf("expected 2 roots, got %d", len(rs))
	}
}
