package solve

import (
	"errors"
	"math"
	"testing"
)

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name string
		pol  Policy
		ok   bool
	}{
		{"default", DefaultPolicy(), true},
		{"tight", Policy{Tolerance: 1e-15, MaxIterations: 1000}, true},
		{"zero tolerance", Policy{Tolerance: 0, MaxIterations: 100}, false},
		{"negative tolerance", Policy{Tolerance: -1e-9, MaxIterations: 100}, false},
		{"nan tolerance", Policy{Tolerance: math.NaN(), MaxIterations: 100}, false},
		{"inf tolerance", Policy{Tolerance: math.Inf(1), MaxIterations: 100}, false},
		{"zero iterations", Policy{Tolerance: 1e-9, MaxIterations: 0}, false},
		{"negative iterations", Policy{Tolerance: 1e-9, MaxIterations: -5}, false},
	}

	for _, tt := range tests {
		err := tt.pol.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			} else if !errors.Is(err, ErrDomain) {
				t.Errorf("%s: expected ErrDomain, got %v", tt.name, err)
			}
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Converged, "Converged"},
		{MaxIterations, "MaxIterationsExceeded"},
		{NotABracket, "NotABracket"},
		{SingularDerivative, "SingularDerivative"},
		{DomainError, "DomainError"},
		{Status(99), "Status(99)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestStatusOk(t *testing.T) {
	if !Converged.Ok() {
		t.Error("Converged should be ok")
	}
	for _, s := range []Status{MaxIterations, NotABracket, SingularDerivative, DomainError} {
		if s.Ok() {
			t.Errorf("%v should not be ok", s)
		}
	}
}

func TestStatusErr(t *testing.T) {
	if err := Converged.Err(); err != nil {
		t.Errorf("Converged.Err() = %v, want nil", err)
	}
	tests := []struct {
		status Status
		want   error
	}{
		{MaxIterations, ErrMaxIterations},
		{NotABracket, ErrNotABracket},
		{SingularDerivative, ErrSingularDerivative},
		{DomainError, ErrDomain},
	}
	for _, tt := range tests {
		if err := tt.status.Err(); !errors.Is(err, tt.want) {
			t.Errorf("%v.Err() = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestTraceRecords(t *testing.T) {
	trace := &Trace{}
	pol := Policy{Tolerance: 1e-9, MaxIterations: 10, Observer: trace}

	pol.Observe(1, 0.5, -0.1, 1.0)
	pol.Observe(2, 0.75, 0.05, 0.5)

	if len(trace.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(trace.Steps))
	}
	if trace.Steps[0].Iter != 1 || trace.Steps[0].X != 0.5 {
		t.Errorf("first step wrong: %+v", trace.Steps[0])
	}
	if trace.Steps[1].Width != 0.5 {
		t.Errorf("second step width wrong: %+v", trace.Steps[1])
	}

	trace.Reset()
	if len(trace.Steps) != 0 {
		t.Errorf("reset should clear steps, got %d", len(trace.Steps))
	}
}

func TestObserveWithoutObserver(t *testing.T) {
	pol := DefaultPolicy()
	// Must not panic.
	pol.Observe(1, 0, 0, 0)
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(0) || !IsFinite(-1e300) || !IsFinite(1e-300) {
		t.Error("finite values misclassified")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("non-finite values misclassified")
	}
}
