package rootsearch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rootfind/bisect"
)

// Default option values; see DefaultOptions.
const (
	// DefaultResolution is the number of scan subdivisions.
	DefaultResolution = 1000

	// DefaultMaxIter caps Newton updates per bracket.
	DefaultMaxIter = 100

	// DefaultTolerance is the Newton residual threshold; it also serves as
	// the dedup tolerance unless WithDedupTolerance overrides it.
	DefaultTolerance = 1e-9

	// DefaultWorkers runs the refinement phase sequentially.
	DefaultWorkers = 1
)

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Search run.
type Options struct {
	// Ctx allows cancellation; checked once per bracket refinement.
	Ctx context.Context

	// Resolution is the number of scan subdivisions. Must be ≥ 1.
	Resolution int

	// MaxIter caps Newton updates per bracket. Must be ≥ 1.
	MaxIter int

	// Tol is the Newton residual tolerance. Must be > 0.
	Tol float64

	// DedupTol is the root-identity threshold: two converged roots closer
	// than this are the same root. Zero means "use Tol".
	DedupTol float64

	// SeedRetries, when > 0, retries a failed bracket from up to that many
	// additional seeds spaced uniformly inside the bracket, and requires
	// the accepted root to lie inside the bracket (ErrBracketEscaped
	// otherwise). Zero keeps the single midpoint seed.
	SeedRetries int

	// Workers bounds the number of concurrent bracket refinements.
	// 1 means fully sequential; the result is identical either way.
	Workers int

	// OnRoot is called for each root that survives deduplication, with the
	// bracket that produced it. Always invoked sequentially, in scan order,
	// even under WithWorkers.
	OnRoot func(root float64, br bisect.Bracket)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Resolution = DefaultResolution
//   - MaxIter    = DefaultMaxIter
//   - Tol        = DefaultTolerance, dedup follows Tol
//   - single midpoint seed, sequential refinement, no-op OnRoot hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Resolution:  DefaultResolution,
		MaxIter:     DefaultMaxIter,
		Tol:         DefaultTolerance,
		DedupTol:    0,
		SeedRetries: 0,
		Workers:     DefaultWorkers,
		OnRoot:      func(float64, bisect.Bracket) {},
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithResolution sets the number of scan subdivisions.
//
//	n ≥ 1: partition into n subintervals
//	n < 1: invalid option → ErrOptionViolation
func WithResolution(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Resolution must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Resolution = n
	}
}

// WithMaxIter caps Newton updates per bracket.
func WithMaxIter(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIter = k
	}
}

// WithTolerance sets the Newton residual tolerance (and, unless overridden,
// the dedup tolerance).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tol must be > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tol = tol
	}
}

// WithDedupTolerance overrides the root-identity threshold.
func WithDedupTolerance(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: DedupTol must be > 0 (%g)", ErrOptionViolation, d)
			return
		}
		o.DedupTol = d
	}
}

// WithSeedRetries enables in-bracket retry seeding for failed refinements.
//
//	k ≥ 0: up to k extra seeds per bracket, in-bracket acceptance enforced
//	k < 0: invalid option → ErrOptionViolation
func WithSeedRetries(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: SeedRetries cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.SeedRetries = k
	}
}

// WithWorkers bounds concurrent bracket refinements.
//
//	k == 1: sequential (default)
//	k > 1:  up to k refinements in flight; output is unchanged
//	k < 1:  invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithOnRoot registers a callback fired for each deduplicated root.
func WithOnRoot(fn func(root float64, br bisect.Bracket)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRoot = fn
		}
	}
}

// dedupTol resolves the effective root-identity threshold.
func (o *Options) dedupTol() float64 {
	if o.DedupTol > 0 {
		return o.DedupTol
	}
	return o.Tol
}
