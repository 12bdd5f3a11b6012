// Package dual defines the numeric capabilities shared by plain and
// derivative-carrying values, and the two concrete types implementing them.
package dual

// Arith is the closed arithmetic surface a function under test is written
// against. Any function expressed as
//
//	func f[N dual.Arith[N]](x N) N
//
// can be evaluated both with plain values (dual.Real) and with
// derivative-propagating values (dual.Number) from a single definition.
//
// Lift and Value bridge the plain float64 domain:
//   - Lift embeds a float64 constant into N (derivative-free image).
//   - Value reports the primal (plain) component of N.
//
// Lift is constructor-shaped: implementations must not read the receiver,
// so it is safe to call on the zero value of N.
type Arith[N any] interface {
	Add(N) N
	Sub(N) N
	Mul(N) N
	Div(N) N
	Neg() N

	// Scale multiplies by a plain constant; Shift adds one.
	Scale(c float64) N
	Shift(c float64) N

	Sin() N
	Cos() N
	Exp() N
	Log() N
	Sqrt() N
	Pow(p float64) N

	// Lift embeds a plain constant into N. Must not read the receiver.
	Lift(c float64) N

	// Value reports the primal component as a plain float64.
	Value() float64
}

// Differentiable extends Arith with the derivative capability:
// seeding a variable and extracting the propagated derivative.
//
// It is implemented by dual.Number and deliberately NOT by dual.Real —
// a plain value has no derivative to extract, and asking for one is a
// compile-time error, not a runtime failure.
//
// Seed follows the standard forward-mode convention: the result has
// primal = x and derivative = 1 (a variable positioned at x,
// differentiated with respect to itself). Like Lift, Seed must not read
// the receiver.
type Differentiable[N any] interface {
	Arith[N]

	// Seed embeds x as a variable with unit derivative. Must not read
	// the receiver.
	Seed(x float64) N

	// Deriv reports the propagated first derivative.
	Deriv() float64
}
