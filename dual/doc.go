// Package dual provides forward-mode automatic differentiation for scalar
// functions, built on dual numbers.
//
// A dual number pairs a primal value with a derivative component; every
// arithmetic operation propagates both, so evaluating a function at
// dual.Var(x) yields the function value and its exact first derivative in
// one pass — no symbolic work, no finite differences.
//
// Two concrete types share one generic arithmetic surface:
//
//   - Number — dual number, implements Differentiable (derivative capable)
//   - Real   — plain float64, implements Arith only (no derivative)
//
// Write the function under test once, generically:
//
//	// f(x) = x² − 2
//	func f[N dual.Arith[N]](x N) N {
//		return x.Mul(x).Shift(-2)
//	}
//
//	y := f(dual.Var(1.5))
//	fmt.Println(y.Value()) // f(1.5)  = 0.25
//	fmt.Println(y.Deriv()) // f'(1.5) = 3
//
// The same f evaluates with dual.Real wherever only plain values are
// needed (e.g. sign scanning), and with dual.Number wherever derivatives
// drive the computation (e.g. Newton refinement). Handing a Real to code
// that requires Differentiable does not compile — the absence of a
// derivative is a type-level fact, not a runtime surprise.
//
// All operations are pure value arithmetic: no allocation, no shared
// state, safe for concurrent use.
package dual
