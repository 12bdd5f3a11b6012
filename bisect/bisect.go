package bisect

import (
	"math"

	"github.com/katalvlaran/rootfind/dual"
)

// FindBisections partitions [low, high] into n equal subintervals,
// evaluates f plainly at the n+1 boundary points, and returns every
// adjacent pair whose values have strictly opposite signs, ordered from
// low to high.
//
// Exact zero is its own sign class: a boundary where f evaluates to
// exactly zero is emitted once as a zero-width Bracket and takes part in
// no sign comparison, so it cannot be missed or double-counted. NaN
// values match nothing.
//
// f is used only through its plain value; no derivative is computed.
// Evaluating with N = dual.Real keeps the scan free of dual arithmetic,
// while any Differentiable N works identically through its primal.
//
// An empty result is not an error — it means no sign change was detected
// at this resolution. Resolution is detection granularity, not a
// completeness guarantee: two roots closer together than one subinterval
// width can merge into one sign change or vanish entirely.
//
// Returns ErrInvalidInterval when low > high and ErrInvalidResolution
// when n < 1.
func FindBisections[N dual.Arith[N]](f func(N) N, low, high float64, n int) ([]Bracket, error) {
	if low > high {
		return nil, ErrInvalidInterval
	}
	if n < 1 {
		return nil, ErrInvalidResolution
	}

	var lift N // zero value; Lift is constructor-shaped

	// Degenerate interval: a single point, evaluated once.
	if low == high {
		if signClass(f(lift.Lift(low)).Value()) == 0 {
			return []Bracket{{Lo: low, Hi: low}}, nil
		}
		return nil, nil
	}

	step := (high - low) / float64(n)
	var brackets []Bracket

	prevX := low
	prevS := signClass(f(lift.Lift(low)).Value())
	if prevS == 0 {
		brackets = append(brackets, Bracket{Lo: low, Hi: low})
	}
	for i := 1; i <= n; i++ {
		x := low + step*float64(i)
		if i == n {
			x = high // pin the last boundary against accumulation drift
		}
		s := signClass(f(lift.Lift(x)).Value())
		switch {
		case s == 0:
			brackets = append(brackets, Bracket{Lo: x, Hi: x})
		case prevS*s == -1:
			brackets = append(brackets, Bracket{Lo: prevX, Hi: x})
		}
		prevX, prevS = x, s
	}

	return brackets, nil
}

// signClass maps a value onto its sign class: −1, 0 (exact zero), +1.
// NaN maps to a class that pairs with nothing.
func signClass(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	case math.IsNaN(v):
		return 2
	default:
		return 0
	}
}
