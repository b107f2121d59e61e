package solve

import "errors"

// Terminal failure modes shared by every solver in the module.
var (
	// ErrDomain indicates a malformed interval, an invalid policy, or a
	// non-finite function output encountered while probing.
	ErrDomain = errors.New("solve: domain error")

	// ErrNotABracket indicates no sign change (roots) or no valley shape
	// (minima) was found within the expansion or iteration cap.
	ErrNotABracket = errors.New("solve: not a bracket")

	// ErrSingularDerivative indicates a derivative or finite-difference
	// slope numerically indistinguishable from zero.
	ErrSingularDerivative = errors.New("solve: derivative numerically zero")

	// ErrMaxIterations indicates the iteration cap was reached before the
	// tolerance was satisfied. The best estimate so far is still returned.
	ErrMaxIterations = errors.New("solve: maximum iterations exceeded")
)
