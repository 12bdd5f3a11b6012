package dual

import "math"

// Number is a forward-mode dual number: a primal value Re paired with the
// derivative Dx propagated alongside it. Evaluating a function under test
// at Var(x) yields a Number whose Re is f(x) and whose Dx is f'(x).
//
// Number is a small value type; all operations return a new Number and
// never mutate the receiver.
type Number struct {
	Re float64 // primal component
	Dx float64 // first-derivative component
}

// Var returns x as a variable: primal x, unit derivative.
// This is the forward-mode seeding convention (d x / d x = 1).
func Var(x float64) Number { return Number{Re: x, Dx: 1} }

// Const returns c as a constant: primal c, zero derivative.
func Const(c float64) Number { return Number{Re: c} }

// Add returns the sum a+b; derivatives add.
func (a Number) Add(b Number) Number {
	return Number{Re: a.Re + b.Re, Dx: a.Dx + b.Dx}
}

// Sub returns the difference a−b; derivatives subtract.
func (a Number) Sub(b Number) Number {
	return Number{Re: a.Re - b.Re, Dx: a.Dx - b.Dx}
}

// Mul returns the product a·b using the product rule.
func (a Number) Mul(b Number) Number {
	return Number{Re: a.Re * b.Re, Dx: a.Dx*b.Re + a.Re*b.Dx}
}

// Div returns the quotient a/b using the quotient rule.
// Division by a zero primal follows IEEE-754 (±Inf/NaN), as with plain floats.
func (a Number) Div(b Number) Number {
	return Number{
		Re: a.Re / b.Re,
		Dx: (a.Dx*b.Re - a.Re*b.Dx) / (b.Re * b.Re),
	}
}

// Neg returns −a.
func (a Number) Neg() Number { return Number{Re: -a.Re, Dx: -a.Dx} }

// Scale returns c·a for a plain constant c.
func (a Number) Scale(c float64) Number { return Number{Re: c * a.Re, Dx: c * a.Dx} }

// Shift returns a+c for a plain constant c; the derivative is unchanged.
func (a Number) Shift(c float64) Number { return Number{Re: a.Re + c, Dx: a.Dx} }

// Sin returns sin(a); chain rule with cos.
func (a Number) Sin() Number {
	return Number{Re: math.Sin(a.Re), Dx: a.Dx * math.Cos(a.Re)}
}

// Cos returns cos(a); chain rule with −sin.
func (a Number) Cos() Number {
	return Number{Re: math.Cos(a.Re), Dx: -a.Dx * math.Sin(a.Re)}
}

// Exp returns e^a.
func (a Number) Exp() Number {
	e := math.Exp(a.Re)
	return Number{Re: e, Dx: a.Dx * e}
}

// Log returns the natural logarithm of a.
// Non-positive primals follow math.Log (−Inf/NaN).
func (a Number) Log() Number {
	return Number{Re: math.Log(a.Re), Dx: a.Dx / a.Re}
}

// Sqrt returns √a.
func (a Number) Sqrt() Number {
	s := math.Sqrt(a.Re)
	return Number{Re: s, Dx: a.Dx / (2 * s)}
}

// Pow returns a^p for a plain exponent p.
// The derivative is p·a^(p−1)·a'; domain corner cases follow math.Pow.
func (a Number) Pow(p float64) Number {
	return Number{
		Re: math.Pow(a.Re, p),
		Dx: a.Dx * p * math.Pow(a.Re, p-1),
	}
}

// Lift embeds the plain constant c. The receiver is ignored.
func (Number) Lift(c float64) Number { return Const(c) }

// Value reports the primal component.
func (a Number) Value() float64 { return a.Re }

// Seed embeds x as a variable with unit derivative. The receiver is ignored.
func (Number) Seed(x float64) Number { return Var(x) }

// Deriv reports the propagated first derivative.
func (a Number) Deriv() float64 { return a.Dx }
