package rootsearch_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/rootfind/dual"
	"github.com/katalvlaran/rootfind/rootsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestSearch_ParallelMatchesSequential requires the parallel refinement to
// produce a bitwise-identical Result, and to leak no goroutines.
func TestSearch_ParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	sine := func(x dual.Number) dual.Number { return x.Sin() }

	seq, err := rootsearch.Search(sine, -20, 20, rootsearch.WithResolution(4000))
	require.NoError(t, err)
	require.Len(t, seq.Roots, 13, "sin has 13 roots in [−20, 20]")

	for _, workers := range []int{2, 4, 8} {
		par, err := rootsearch.Search(sine, -20, 20,
			rootsearch.WithResolution(4000),
			rootsearch.WithWorkers(workers),
		)
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d must not change the result", workers)
	}
}

// TestSearch_ParallelFailuresPreserved keeps failed brackets in scan order
// under concurrency.
func TestSearch_ParallelFailuresPreserved(t *testing.T) {
	defer goleak.VerifyNone(t)

	inverse := func(x dual.Number) dual.Number { return x.Pow(-1) }

	seq, err := rootsearch.Search(inverse, -1, 1,
		rootsearch.WithResolution(101),
		rootsearch.WithMaxIter(25),
	)
	require.NoError(t, err)

	par, err := rootsearch.Search(inverse, -1, 1,
		rootsearch.WithResolution(101),
		rootsearch.WithMaxIter(25),
		rootsearch.WithWorkers(4),
	)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

// TestSearch_ParallelCancellation stops scheduling on an expired context
// without leaking the workers already in flight.
func TestSearch_ParallelCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	sine := func(x dual.Number) dual.Number { return x.Sin() }

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond) // let the deadline pass

	res, err := rootsearch.Search(sine, -20, 20,
		rootsearch.WithResolution(4000),
		rootsearch.WithWorkers(4),
		rootsearch.WithContext(ctx),
	)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, res, "a partial result is still returned")
}
