// Package bisect provides the bracket type and error definitions for
// sign-change scanning over a closed interval.
package bisect

import "errors"

// Sentinel errors for scan invocation. Both are caller contract
// violations and abort the scan immediately.
var (
	// ErrInvalidInterval is returned when low > high.
	ErrInvalidInterval = errors.New("bisect: invalid interval, low must not exceed high")

	// ErrInvalidResolution is returned when the subdivision count is < 1.
	ErrInvalidResolution = errors.New("bisect: resolution must be ≥ 1")
)

// Bracket is a candidate root location: a pair of adjacent scan boundaries
// whose function values carry strictly opposite signs, so a root lies
// between them by the intermediate value theorem.
//
// A zero-width bracket (Lo == Hi) marks a boundary point where the
// function evaluated to exactly zero — the point itself is a root.
// Otherwise Lo < Hi and both bounds come from the same uniform partition.
type Bracket struct {
	Lo float64
	Hi float64
}

// Mid returns the bracket midpoint, the natural refinement seed.
// For a zero-width bracket this is the exact root itself.
func (b Bracket) Mid() float64 { return b.Lo + (b.Hi-b.Lo)/2 }

// ZeroWidth reports whether the bracket marks an exact boundary root.
func (b Bracket) ZeroWidth() bool { return b.Lo == b.Hi }
