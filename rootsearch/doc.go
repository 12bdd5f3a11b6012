// Package rootsearch finds all roots of a differentiable scalar function
// over a bounded interval, combining a bisection scan with Newton
// refinement driven by forward-mode automatic differentiation.
//
// Pipeline:
//
//	scan      — partition [low, high] into Resolution subintervals and
//	            collect sign-change brackets (package bisect)
//	refine    — seed Newton from each bracket midpoint (package newton)
//	aggregate — deduplicate converged roots, record failed brackets
//
// Usage:
//
//	import (
//	  "github.com/katalvlaran/rootfind/dual"
//	  "github.com/katalvlaran/rootfind/rootsearch"
//	)
//
//	sine := func(x dual.Number) dual.Number { return x.Sin() }
//
//	res, err := rootsearch.Search(sine, -5, 5,
//	  rootsearch.WithResolution(2000),
//	  rootsearch.WithTolerance(1e-10),
//	)
//	// res.Roots ≈ {−π, 0, π}; res.Failed empty
//
// Partial success is explicit: every bracket whose refinement failed is
// returned in Result.Failed with its typed cause, alongside the roots
// that did converge. The search itself errors only on caller contract
// violations (invalid interval, invalid options) and on context
// cancellation.
//
// Determinism: brackets are scanned left to right and aggregated in that
// order; duplicate roots keep the first find. WithWorkers parallelizes
// only the independent refinements — outcomes land in scan-order slots,
// so the Result is identical to the sequential one.
//
// Limitation: the scan resolution bounds detection, not correctness.
// Roots separated by less than one subinterval width can merge or vanish;
// raise Resolution to separate them.
package rootsearch
