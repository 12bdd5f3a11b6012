package rootsearch

import (
	"math"

	"github.com/katalvlaran/rootfind/bisect"
	"github.com/katalvlaran/rootfind/dual"
	"github.com/katalvlaran/rootfind/newton"
)

// outcome is the per-bracket refinement record, index-aligned with the
// bracket sequence so aggregation stays in scan order.
type outcome struct {
	root float64
	err  error
	done bool // refinement was attempted (false after cancellation)
}

// Search finds the roots of f over [low, high]: a bisection scan detects
// sign-change brackets, each bracket seeds a Newton refinement from its
// midpoint, and converged roots are deduplicated (first found in scan
// order wins).
//
// Per-bracket failures never abort the search; they are returned in
// Result.Failed with their typed cause. Only caller contract violations
// abort the whole call: bisect.ErrInvalidInterval when low > high, and
// ErrOptionViolation for bad options.
//
// The search is deterministic: identical inputs produce identical Results,
// with or without WithWorkers. On context cancellation the brackets
// refined so far are aggregated and returned together with the context's
// error.
//
// Completeness tracks the scan resolution: roots closer together than
// (high−low)/Resolution can be merged or missed, and a refinement seeded
// at a bracket of a function that is wild at that scale may converge to a
// root outside its bracket (use WithSeedRetries for in-bracket
// acceptance).
func Search[N dual.Differentiable[N]](f func(N) N, low, high float64, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	brs, err := bisect.FindBisections(f, low, high, o.Resolution)
	if err != nil {
		return nil, err
	}

	// Refine every bracket independently; outcomes land in scan-order slots.
	outcomes := make([]outcome, len(brs))
	var runErr error
	if o.Workers > 1 {
		runErr = refineParallel(f, brs, &o, outcomes)
	} else {
		runErr = refineSequential(f, brs, &o, outcomes)
	}

	// Aggregate sequentially in scan order: dedup, hooks, failure records.
	res := &Result{}
	dtol := o.dedupTol()
	for i, oc := range outcomes {
		if !oc.done {
			continue
		}
		if oc.err != nil {
			res.Failed = append(res.Failed, Failure{Bracket: brs[i], Err: oc.err})
			continue
		}
		if containsRoot(res.Roots, oc.root, dtol) {
			continue // duplicate: the earlier find is kept
		}
		res.Roots = append(res.Roots, oc.root)
		o.OnRoot(oc.root, brs[i])
	}

	return res, runErr
}

// refineSequential walks the brackets one by one, honoring cancellation
// between refinements.
func refineSequential[N dual.Differentiable[N]](f func(N) N, brs []bisect.Bracket, o *Options, out []outcome) error {
	for i, br := range brs {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		out[i] = refineBracket(f, br, o)
	}
	return nil
}

// refineBracket runs Newton from the bracket midpoint, optionally retrying
// from additional in-bracket seeds (WithSeedRetries).
func refineBracket[N dual.Differentiable[N]](f func(N) N, br bisect.Bracket, o *Options) outcome {
	nopts := []newton.Option{
		newton.WithMaxIter(o.MaxIter),
		newton.WithTolerance(o.Tol),
	}

	res, err := newton.Newton(f, br.Mid(), nopts...)
	if err == nil && acceptable(res.Root, br, o) {
		return outcome{root: res.Root, done: true}
	}
	if err == nil {
		err = ErrBracketEscaped
	}

	// Retry seeds sweep the bracket interior left to right, skipping the
	// midpoint already tried.
	width := br.Hi - br.Lo
	for j := 1; j <= o.SeedRetries && width > 0; j++ {
		seed := br.Lo + width*float64(j)/float64(o.SeedRetries+1)
		res, rerr := newton.Newton(f, seed, nopts...)
		if rerr == nil && acceptable(res.Root, br, o) {
			return outcome{root: res.Root, done: true}
		}
		if rerr != nil {
			err = rerr
		} else {
			err = ErrBracketEscaped
		}
	}

	return outcome{err: err, done: true}
}

// acceptable applies in-bracket acceptance only when retry seeding is on;
// the plain midpoint path accepts any converged root.
func acceptable(root float64, br bisect.Bracket, o *Options) bool {
	if o.SeedRetries == 0 {
		return true
	}
	return br.Lo <= root && root <= br.Hi
}

// containsRoot reports whether r duplicates an already accepted root.
func containsRoot(roots []float64, r, tol float64) bool {
	for _, have := range roots {
		if math.Abs(have-r) < tol {
			return true
		}
	}
	return false
}
