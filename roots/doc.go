// Package roots locates zeros of univariate functions.
//
// Bracketed refiners consume a [bracket.Root] and narrow it:
//
//   - [Bisect]: interval halving, worst case ceil(log2(width/tol)) steps
//   - [ITP]: interpolate-truncate-project, bisection's worst case with
//     superlinear behavior on well-behaved functions
//
// Open refiners start from a point (or pair) instead of a bracket:
//
//   - [Newton]: requires a caller-supplied derivative
//   - [Secant]: replaces the derivative with a finite-difference slope
//   - [Laguerre]: uses first and second derivatives, robust for
//     polynomial-like functions
package roots
