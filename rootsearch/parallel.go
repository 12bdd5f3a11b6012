package rootsearch

import (
	"github.com/katalvlaran/rootfind/bisect"
	"github.com/katalvlaran/rootfind/dual"
	"golang.org/x/sync/errgroup"
)

// refineParallel fans bracket refinements out over an errgroup bounded by
// o.Workers. Every refinement is independent; each goroutine writes only
// its own scan-order slot of out, so no locking is needed and the
// aggregated result is identical to the sequential run.
//
// Cancellation of o.Ctx stops scheduling new refinements; slots never
// started keep done == false and are skipped during aggregation.
func refineParallel[N dual.Differentiable[N]](f func(N) N, brs []bisect.Bracket, o *Options, out []outcome) error {
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)

	for i, br := range brs {
		if err := ctx.Err(); err != nil {
			break
		}
		i, br := i, br
		g.Go(func() error {
			out[i] = refineBracket(f, br, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return o.Ctx.Err()
}
