// Package rootfind locates every real root of a scalar function over a
// bounded interval — no hand-written derivatives, no single-root myopia.
//
// 🚀 What is rootfind?
//
//	A small, pure-Go numerical library combining:
//		• Forward-mode automatic differentiation via dual numbers
//		• Newton–Raphson refinement with exact derivatives
//		• A bisection scan that brackets every sign change in an interval
//		• An orchestrator returning the deduplicated set of all roots found,
//		  plus an inspectable record of brackets that failed to refine
//
// ✨ Why choose rootfind?
//
//   - Write the function once – one generic definition evaluates both
//     plainly (for scanning) and with derivatives (for refinement)
//   - Type-safe by construction – asking a plain value for its derivative
//     is a compile error, not a runtime surprise
//   - Partial success is visible – failed brackets are reported next to
//     the roots that converged, never hidden behind one hard error
//   - Deterministic – identical inputs give identical results, with or
//     without the bounded-parallel refinement mode
//
// Everything is organized under four subpackages:
//
//	dual/       — dual numbers, plain reals, and the shared arithmetic capabilities
//	newton/     — Newton–Raphson refinement with typed failure modes
//	bisect/     — uniform sign-change scanning into candidate brackets
//	rootsearch/ — the scan → refine → deduplicate pipeline
//
// Quick taste:
//
//	sine := func(x dual.Number) dual.Number { return x.Sin() }
//	res, _ := rootsearch.Search(sine, -5, 5)
//	// res.Roots ≈ [−π, 0, π]
//
// Dive into the examples/ directory for full scenario programs.
//
//	go get github.com/katalvlaran/rootfind
package rootfind
