// Package bisect detects candidate root locations by scanning a closed
// interval for sign changes.
//
// The scan partitions [low, high] into n equal subintervals, evaluates the
// function plainly at each boundary, and emits a Bracket for every adjacent
// pair with strictly opposite signs. Exact zeros at boundaries become
// zero-width brackets. The output is ordered low→high and deterministic.
//
// Usage:
//
//	import (
//	  "github.com/katalvlaran/rootfind/bisect"
//	  "github.com/katalvlaran/rootfind/dual"
//	)
//
//	sine := func(x dual.Real) dual.Real { return x.Sin() }
//
//	brs, err := bisect.FindBisections(sine, -5, 5, 1000)
//	// brs holds three brackets, around −π, 0 and π
//
// Each bracket then seeds a Newton refinement (package newton); the full
// pipeline lives in package rootsearch.
//
// Complexity: O(n) function evaluations, O(b) memory for b brackets.
//
// Limitation: resolution n is a detection-granularity knob, not a
// correctness guarantee. Roots separated by less than (high−low)/n can be
// merged or missed; raise n to separate them.
package bisect
