package bisect_test

import (
	"fmt"

	"github.com/katalvlaran/rootfind/bisect"
	"github.com/katalvlaran/rootfind/dual"
)

// ExampleFindBisections scans sin over [−5, 5] and reports the candidate
// locations; the midpoints straddle −π, 0 and π.
func ExampleFindBisections() {
	sine := func(x dual.Real) dual.Real { return x.Sin() }

	brs, err := bisect.FindBisections(sine, -5, 5, 1000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("candidates:", len(brs))
	for _, br := range brs {
		fmt.Printf("mid ≈ %.3f\n", br.Mid())
	}
	// Output:
	// candidates: 3
	// mid ≈ -3.145
	// mid ≈ 0.000
	// mid ≈ 3.145
}

// ExampleFindBisections_noRoots shows that a sign-change-free interval
// yields an empty candidate list, not an error.
func ExampleFindBisections_noRoots() {
	positive := func(x dual.Real) dual.Real { return x.Mul(x).Shift(1) }

	brs, err := bisect.FindBisections(positive, -3, 3, 100)
	fmt.Println("candidates:", len(brs), "err:", err)
	// Output:
	// candidates: 0 err: <nil>
}
