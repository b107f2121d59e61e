// Package solve provides the shared types for univariate numerical solvers.
//
// Every refiner in the module consumes a [Func] (and sometimes a [Deriv]),
// a [Policy] describing when to stop, and returns a [Result]:
//
//   - [Func]: a caller-supplied mapping from one real value to another
//   - [Policy]: absolute tolerance plus a hard iteration cap
//   - [Result]: estimate, residual, iteration count, and a [Status]
//
// # Observing iterations
//
// Attach an [Observer] to a Policy to record per-iteration progress:
//
//	var tr solve.Trace
//	pol := solve.DefaultPolicy()
//	pol.Observer = &tr
//
// # Thread Safety
//
// Solvers hold no state between calls. Concurrent solves are safe as long
// as the supplied Func is itself safe to invoke concurrently.
package solve
