package newton_test

import (
	"fmt"

	"github.com/katalvlaran/rootfind/dual"
	"github.com/katalvlaran/rootfind/newton"
)

// ExampleNewton refines √2 from a rough guess; the derivative of x² − 2
// is obtained automatically through dual numbers.
func ExampleNewton() {
	f := func(x dual.Number) dual.Number { return x.Mul(x).Shift(-2) }

	res, err := newton.Newton(f, 1.0, newton.WithTolerance(1e-12))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("root ≈ %.10f\n", res.Root)
	// Output:
	// root ≈ 1.4142135624
}

// ExampleNewton_linear shows the exactness of Newton on a straight line:
// one update lands on the root.
func ExampleNewton_linear() {
	f := func(x dual.Number) dual.Number { return x.Shift(-5) }

	res, err := newton.Newton(f, 0.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("root:", res.Root)
	fmt.Println("updates:", res.Iterations)
	// Output:
	// root: 5
	// updates: 1
}

// ExampleNewton_noRealRoot demonstrates the typed failure on a function
// with no real root: the search reports, it does not crash.
func ExampleNewton_noRealRoot() {
	f := func(x dual.Number) dual.Number { return x.Mul(x).Shift(1) }

	_, err := newton.Newton(f, 0.0, newton.WithMaxIter(25))
	fmt.Println("error:", err)
	// Output:
	// error: newton: singular derivative, cannot proceed
}
