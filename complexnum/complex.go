// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the componentwise tolerance used by Equal.
const DefaultEpsilon = 1e-9

// InvSqrt2 is 1/√2, the amplitude of an equal superposition.
const InvSqrt2 = 1 / math.Sqrt2

// Well-known values.
var (
	Zero = Complex{}
	One  = Complex{Re: 1}
	I    = Complex{Im: 1}
)

// Complex is an immutable complex number (Re + Im·i).
// The zero value is 0+0i.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

var _ fmt.Stringer = Complex{}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Complex128 converts c to the builtin complex128.
func (c Complex) Complex128() complex128 { return complex(c.Re, c.Im) }

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex{Re: -c.Re, Im: -c.Im} }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex { return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im} }

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex { return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im} }

// Mul returns the complex product c·o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Im*o.Re + c.Re*o.Im,
	}
}

// Scale returns c·r for a real scalar r.
func (c Complex) Scale(r float64) Complex { return Complex{Re: c.Re * r, Im: c.Im * r} }

// ScaleBy returns r·c. It is Scale with the scalar written first.
func ScaleBy(r float64, c Complex) Complex { return c.Scale(r) }

// Div returns c / o using the conjugate-denominator rule:
//
//	(a+bi)/(x+yi) = ((ax+by) + (bx-ay)i) / (x²+y²)
//
// Returns ErrDivisionByZero when o is exactly 0+0i.
func (c Complex) Div(o Complex) (Complex, error) {
	den := o.Re*o.Re + o.Im*o.Im
	if den == 0 {
		return Zero, ErrDivisionByZero
	}

	return Complex{
		Re: (c.Re*o.Re + c.Im*o.Im) / den,
		Im: (c.Im*o.Re - c.Re*o.Im) / den,
	}, nil
}

// DivReal returns c / r. Returns ErrDivisionByZero when r == 0.
func (c Complex) DivReal(r float64) (Complex, error) {
	if r == 0 {
		return Zero, ErrDivisionByZero
	}

	return Complex{Re: c.Re / r, Im: c.Im / r}, nil
}

// Abs returns the magnitude sqrt(re²+im²).
func (c Complex) Abs() float64 { return math.Hypot(c.Re, c.Im) }

// Conj returns the complex conjugate (imaginary part negated).
func (c Complex) Conj() Complex { return Complex{Re: c.Re, Im: -c.Im} }

// Probability returns |c|², the measurement weight of an amplitude.
func (c Complex) Probability() float64 { return c.Re*c.Re + c.Im*c.Im }

// IsFinite reports whether neither component is NaN or ±Inf.
func (c Complex) IsFinite() bool {
	return !math.IsNaN(c.Re) && !math.IsInf(c.Re, 0) &&
		!math.IsNaN(c.Im) && !math.IsInf(c.Im, 0)
}

// ApproxEqual reports whether both components of c and o agree within eps,
// absolute or relative (relative matters for large magnitudes only).
func (c Complex) ApproxEqual(o Complex, eps float64) bool {
	return scalar.EqualWithinAbsOrRel(c.Re, o.Re, eps, eps) &&
		scalar.EqualWithinAbsOrRel(c.Im, o.Im, eps, eps)
}

// Equal is ApproxEqual with DefaultEpsilon.
func (c Complex) Equal(o Complex) bool { return c.ApproxEqual(o, DefaultEpsilon) }

// String formats c as "re+imi", e.g. "0.5-1i".
func (c Complex) String() string {
	return fmt.Sprintf("%g%+gi", c.Re, c.Im)
}
