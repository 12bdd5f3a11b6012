package bisect_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/bisect"
	"github.com/katalvlaran/rootfind/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(x dual.Real) dual.Real   { return x.Sin() }
func cosine(x dual.Real) dual.Real { return x.Cos() }

// TestFindBisections_SineThreeBrackets reproduces the canonical scan:
// sin over [−5, 5] holds exactly three sign regions around −π, 0, π.
func TestFindBisections_SineThreeBrackets(t *testing.T) {
	brs, err := bisect.FindBisections(sine, -5, 5, 1000)
	require.NoError(t, err)
	require.Len(t, brs, 3)

	wants := []float64{-math.Pi, 0, math.Pi}
	for i, br := range brs {
		assert.LessOrEqual(t, br.Lo, br.Hi)
		assert.InDelta(t, wants[i], br.Mid(), 10.0/1000, "bracket %d should straddle %v", i, wants[i])
	}
}

// TestFindBisections_CosineFourBrackets mirrors the cosine scenario:
// cos over [−5, 5] changes sign at ±π/2 and ±3π/2.
func TestFindBisections_CosineFourBrackets(t *testing.T) {
	brs, err := bisect.FindBisections(cosine, -5, 5, 1000)
	require.NoError(t, err)
	assert.Len(t, brs, 4)
}

// TestFindBisections_Ordered verifies low→high emission order.
func TestFindBisections_Ordered(t *testing.T) {
	brs, err := bisect.FindBisections(sine, -5, 5, 777)
	require.NoError(t, err)
	for i := 1; i < len(brs); i++ {
		assert.LessOrEqual(t, brs[i-1].Hi, brs[i].Lo, "brackets must be ordered low→high")
	}
}

// TestFindBisections_NoSignChange returns an empty sequence, not an error,
// for a constant positive function.
func TestFindBisections_NoSignChange(t *testing.T) {
	one := func(x dual.Real) dual.Real { return x.Mul(x).Shift(1) }

	brs, err := bisect.FindBisections(one, -3, 3, 100)
	require.NoError(t, err)
	assert.Empty(t, brs, "no sign change means no brackets, silently")
}

// TestFindBisections_ExactBoundaryZero captures a root sitting exactly on
// a scan boundary as one zero-width bracket, never zero or two.
func TestFindBisections_ExactBoundaryZero(t *testing.T) {
	// f(x) = x over [−1, 1] with even n puts the boundary x=0 on the grid.
	ident := func(x dual.Real) dual.Real { return x }

	brs, err := bisect.FindBisections(ident, -1, 1, 10)
	require.NoError(t, err)
	require.Len(t, brs, 1, "exactly one capture of the boundary root")
	assert.True(t, brs[0].ZeroWidth())
	assert.Equal(t, 0.0, brs[0].Lo)
}

// TestFindBisections_ZeroAtEndpoints captures exact zeros at low and high.
func TestFindBisections_ZeroAtEndpoints(t *testing.T) {
	// f(x) = x(x−1) is zero at both ends of [0, 1].
	f := func(x dual.Real) dual.Real { return x.Mul(x.Shift(-1)) }

	brs, err := bisect.FindBisections(f, 0, 1, 7)
	require.NoError(t, err)
	require.Len(t, brs, 2)
	assert.Equal(t, bisect.Bracket{Lo: 0, Hi: 0}, brs[0])
	assert.Equal(t, bisect.Bracket{Lo: 1, Hi: 1}, brs[1])
}

// TestFindBisections_DegenerateInterval treats low == high as a one-point scan.
func TestFindBisections_DegenerateInterval(t *testing.T) {
	brs, err := bisect.FindBisections(sine, 0, 0, 5)
	require.NoError(t, err)
	require.Len(t, brs, 1, "sin(0) == 0 must be detected at the single point")
	assert.True(t, brs[0].ZeroWidth())

	brs, err = bisect.FindBisections(cosine, 0, 0, 5)
	require.NoError(t, err)
	assert.Empty(t, brs, "cos(0) == 1, nothing to detect")
}

// TestFindBisections_InvalidInput rejects contract violations up front.
func TestFindBisections_InvalidInput(t *testing.T) {
	_, err := bisect.FindBisections(sine, 1, -1, 10)
	assert.ErrorIs(t, err, bisect.ErrInvalidInterval)

	_, err = bisect.FindBisections(sine, -1, 1, 0)
	assert.ErrorIs(t, err, bisect.ErrInvalidResolution)

	_, err = bisect.FindBisections(sine, -1, 1, -3)
	assert.ErrorIs(t, err, bisect.ErrInvalidResolution)
}

// TestFindBisections_ResolutionMerging documents the granularity limit:
// two nearby roots inside one subinterval cancel out.
func TestFindBisections_ResolutionMerging(t *testing.T) {
	// (x−0.4)(x−0.6) dips below zero only on (0.4, 0.6).
	f := func(x dual.Real) dual.Real { return x.Shift(-0.4).Mul(x.Shift(-0.6)) }

	// Coarse: the single cell spans both roots — no sign change at all.
	coarse, err := bisect.FindBisections(f, 0, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, coarse, "both roots inside one cell go undetected")

	// Fine: both sign changes resolved. A prime resolution keeps the grid
	// off the exact roots.
	fine, err := bisect.FindBisections(f, 0, 1, 97)
	require.NoError(t, err)
	assert.Len(t, fine, 2)
}

// TestFindBisections_DualNumberPrimalOnly confirms the scan works
// identically through a Differentiable type's primal view.
func TestFindBisections_DualNumberPrimalOnly(t *testing.T) {
	sineDual := func(x dual.Number) dual.Number { return x.Sin() }

	got, err := bisect.FindBisections(sineDual, -5, 5, 1000)
	require.NoError(t, err)
	want, err2 := bisect.FindBisections(sine, -5, 5, 1000)
	require.NoError(t, err2)
	assert.Equal(t, want, got, "plain and dual scans must agree exactly")
}
