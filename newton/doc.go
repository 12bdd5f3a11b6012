// Package newton implements Newton–Raphson root refinement driven by
// forward-mode automatic differentiation.
//
// The classic iteration
//
//	x_{k+1} = x_k − f(x_k) / f'(x_k)
//
// normally requires the caller to supply f' by hand. Here the function
// under test is written generically over dual.Differentiable, so one
// evaluation at a seeded dual number yields both f(x) and f'(x) exactly —
// no derivative formulas, no finite-difference noise.
//
// Usage:
//
//	import (
//	  "github.com/katalvlaran/rootfind/dual"
//	  "github.com/katalvlaran/rootfind/newton"
//	)
//
//	// f(x) = x² − 2
//	f := func(x dual.Number) dual.Number { return x.Mul(x).Shift(-2) }
//
//	res, err := newton.Newton(f, 1.0,
//	  newton.WithMaxIter(50),
//	  newton.WithTolerance(1e-12),
//	)
//	// res.Root ≈ √2
//
// Failure modes are typed sentinels checked with errors.Is:
//   - ErrNoConvergence      — iteration budget exhausted
//   - ErrSingularDerivative — f'(x) vanished mid-iteration
//   - ErrOptionViolation    — invalid MaxIter/Tol supplied
//
// Convergence is quadratic near a simple root; a bad starting guess can
// diverge or cycle, which the iteration cap converts into
// ErrNoConvergence. Pair with package bisect to obtain good seeds.
//
// Complexity: O(MaxIter) evaluations of f; O(1) memory.
package newton
