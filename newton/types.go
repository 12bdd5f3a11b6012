// Package newton provides tunable options and error definitions for
// Newton–Raphson root refinement over a differentiable value type.
package newton

import (
	"errors"
	"fmt"
)

// Default option values; see DefaultOptions.
const (
	// DefaultMaxIter caps the number of Newton updates per run.
	DefaultMaxIter = 100

	// DefaultTolerance is the residual threshold |f(x)| < tol for convergence.
	DefaultTolerance = 1e-9
)

// Sentinel errors for Newton execution.
var (
	// ErrNoConvergence is returned when the iteration budget is exhausted
	// before the residual drops below the tolerance.
	ErrNoConvergence = errors.New("newton: did not converge within iteration budget")

	// ErrSingularDerivative is returned when the derivative at the current
	// point is zero (within machine epsilon), making the update undefined.
	ErrSingularDerivative = errors.New("newton: singular derivative, cannot proceed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("newton: invalid option supplied")
)

// Option configures Newton behavior via functional arguments.
// An invalid Option (e.g. non-positive tolerance) is recorded internally
// and surfaced as ErrOptionViolation when Newton is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Newton run.
type Options struct {
	// MaxIter caps the number of Newton updates. Must be ≥ 1.
	MaxIter int

	// Tol is the convergence tolerance on the residual |f(x)|. Must be > 0.
	Tol float64

	// OnIterate is called once per iteration, before the convergence and
	// singularity checks, with the iteration number (1-based), the current
	// point, and the evaluated value and derivative. Useful for tracing a
	// stubborn refinement.
	OnIterate func(iter int, x, fx, dfx float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxIter = DefaultMaxIter
//   - Tol     = DefaultTolerance
//   - no-op OnIterate hook.
func DefaultOptions() Options {
	return Options{
		MaxIter:   DefaultMaxIter,
		Tol:       DefaultTolerance,
		OnIterate: func(int, float64, float64, float64) {},
		err:       nil,
	}
}

// WithMaxIter caps the number of Newton updates.
//
//	k ≥ 1: limit to k updates
//	k < 1: invalid option → ErrOptionViolation
func WithMaxIter(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIter = k
	}
}

// WithTolerance sets the residual convergence threshold.
//
//	tol > 0: converge when |f(x)| < tol
//	tol ≤ 0: invalid option → ErrOptionViolation
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tol must be > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tol = tol
	}
}

// WithOnIterate registers a per-iteration trace callback.
func WithOnIterate(fn func(iter int, x, fx, dfx float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}

// Result holds the outcome of a converged Newton run:
//   - Root: the refined point with |f(Root)| < Tol.
//   - Iterations: Newton updates applied before convergence. A linear
//     function refines in exactly one update.
type Result struct {
	Root       float64
	Iterations int
}
