// Package rootsearch provides result types and error definitions for the
// combined scan-and-refine root search.
package rootsearch

import (
	"errors"

	"github.com/katalvlaran/rootfind/bisect"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rootsearch: invalid option supplied")

	// ErrBracketEscaped records a refinement that converged outside its
	// bracket while in-bracket acceptance was requested (WithSeedRetries).
	ErrBracketEscaped = errors.New("rootsearch: refinement escaped its bracket")
)

// Failure records one bracket whose refinement did not produce a root,
// together with the typed cause (newton.ErrNoConvergence,
// newton.ErrSingularDerivative, or ErrBracketEscaped).
//
// Failures are reported, not raised: a failed bracket never aborts the
// surrounding search.
type Failure struct {
	Bracket bisect.Bracket
	Err     error
}

// Result holds the outcome of a Search:
//   - Roots: converged, deduplicated roots, ordered by first discovery in
//     the left-to-right bracket scan. No two entries lie within the dedup
//     tolerance of each other; when two refinements land on the same root,
//     the first found in scan order is kept.
//   - Failed: brackets whose refinement failed, in scan order.
type Result struct {
	Roots  []float64
	Failed []Failure
}
