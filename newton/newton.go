package newton

import (
	"math"

	"github.com/katalvlaran/rootfind/dual"
)

// derivEps is the zero-derivative guard: IEEE-754 double machine epsilon.
const derivEps = 0x1p-52

// Newton refines a root of f starting from the plain guess x0, applying any
// number of functional Options.
//
// Each iteration seeds the current point into the differentiable domain
// (dual.Var), evaluates f once to obtain both f(x) and f'(x), declares
// convergence when |f(x)| < Tol, and otherwise applies the update
// x ← x − f(x)/f'(x). The derivative is checked against machine epsilon
// before dividing.
//
// Returns ErrOptionViolation for bad options, ErrSingularDerivative when
// the update is undefined, and ErrNoConvergence when MaxIter updates did
// not bring the residual below Tol. A failure is always a typed error —
// never a panic, never a silently wrong root.
func Newton[N dual.Differentiable[N]](f func(N) N, x0 float64, opts ...Option) (Result, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	var seed N // zero value; Seed is constructor-shaped
	x := x0
	for i := 1; i <= o.MaxIter; i++ {
		z := f(seed.Seed(x))
		fx, dfx := z.Value(), z.Deriv()
		o.OnIterate(i, x, fx, dfx)

		if math.Abs(fx) < o.Tol {
			return Result{Root: x, Iterations: i - 1}, nil
		}
		// Guard the division: a vanishing derivative makes the update undefined.
		if math.Abs(dfx) <= derivEps || math.IsNaN(dfx) {
			return Result{Iterations: i - 1}, ErrSingularDerivative
		}
		x -= fx / dfx
	}

	// One last residual check: the final update may have landed on the root.
	if z := f(seed.Seed(x)); math.Abs(z.Value()) < o.Tol {
		return Result{Root: x, Iterations: o.MaxIter}, nil
	}

	return Result{Iterations: o.MaxIter}, ErrNoConvergence
}
