package cplx

import "math"

// Number is an immutable complex number re + im·i over float64 components.
//
// The zero value is 0+0i and is ready to use. Number is a small value type:
// pass it by value, compare it with Equal.
type Number struct {
	re float64
	im float64
}

// FromRealImag returns re + im·i.
func FromRealImag(re, im float64) Number {
	return Number{re: re, im: im}
}

// FromReal returns x + 0i.
func FromReal(x float64) Number {
	return Number{re: x}
}

// FromComplex128 converts a Go builtin complex value.
func FromComplex128(c complex128) Number {
	return Number{re: real(c), im: imag(c)}
}

// Real returns the real component.
func (z Number) Real() float64 { return z.re }

// Imag returns the imaginary component.
func (z Number) Imag() float64 { return z.im }

// Complex128 returns z as a Go builtin complex value.
func (z Number) Complex128() complex128 { return complex(z.re, z.im) }

// Abs returns the magnitude |z| computed with math.Hypot, which avoids
// overflow and underflow of the intermediate squares.
func (z Number) Abs() float64 {
	return math.Hypot(z.re, z.im)
}

// Arg returns the argument atan2(im, re) in (−π, π].
func (z Number) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

// IsReal reports whether the imaginary component is exactly zero.
func (z Number) IsReal() bool {
	return z.im == 0
}

// IsImaginary reports whether z is purely imaginary: im != 0 and re == 0.
// Zero is real, not imaginary.
func (z Number) IsImaginary() bool {
	return z.im != 0 && z.re == 0
}

// IsZero reports whether |z| == 0.
func (z Number) IsZero() bool {
	return z.Abs() == 0
}

// IsNaN reports whether the magnitude is NaN, i.e. at least one component
// is NaN and the other is not infinite (Hypot(±Inf, NaN) is +Inf).
func (z Number) IsNaN() bool {
	return math.IsNaN(z.Abs())
}

// IsInf reports whether either component is infinite.
func (z Number) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}

// Equal reports exact equality of both components.
//
// No tolerance is applied and NaN is never equal to anything, including
// itself. Results of different but mathematically equivalent computations
// will often compare unequal; see ApproxEqual.
func (z Number) Equal(w Number) bool {
	return z.re == w.re && z.im == w.im
}

// ApproxEqual reports whether |z − w| ≤ eps.
func (z Number) ApproxEqual(w Number, eps float64) bool {
	return z.Sub(w).Abs() <= eps
}
