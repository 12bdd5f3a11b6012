package dual

import "math"

// Real is a plain float64 carrying no derivative information. It satisfies
// Arith, so any function under test can be evaluated "plainly" with Real —
// this is what the bisection scanner does. Real intentionally does not
// satisfy Differentiable: passing it where a derivative is required fails
// at compile time.
type Real float64

// Add returns r+b.
func (r Real) Add(b Real) Real { return r + b }

// Sub returns r−b.
func (r Real) Sub(b Real) Real { return r - b }

// Mul returns r·b.
func (r Real) Mul(b Real) Real { return r * b }

// Div returns r/b, following IEEE-754 for b == 0.
func (r Real) Div(b Real) Real { return r / b }

// Neg returns −r.
func (r Real) Neg() Real { return -r }

// Scale returns c·r.
func (r Real) Scale(c float64) Real { return Real(c) * r }

// Shift returns r+c.
func (r Real) Shift(c float64) Real { return r + Real(c) }

// Sin returns sin(r).
func (r Real) Sin() Real { return Real(math.Sin(float64(r))) }

// Cos returns cos(r).
func (r Real) Cos() Real { return Real(math.Cos(float64(r))) }

// Exp returns e^r.
func (r Real) Exp() Real { return Real(math.Exp(float64(r))) }

// Log returns the natural logarithm of r.
func (r Real) Log() Real { return Real(math.Log(float64(r))) }

// Sqrt returns √r.
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }

// Pow returns r^p.
func (r Real) Pow(p float64) Real { return Real(math.Pow(float64(r), p)) }

// Lift embeds the plain constant c. The receiver is ignored.
func (Real) Lift(c float64) Real { return Real(c) }

// Value reports r as a plain float64.
func (r Real) Value() float64 { return float64(r) }
