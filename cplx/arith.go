package cplx

// Add returns z + w.
func (z Number) Add(w Number) Number {
	return Number{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z − w.
func (z Number) Sub(w Number) Number {
	return Number{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z · w.
func (z Number) Mul(w Number) Number {
	return Number{
		re: z.re*w.re - z.im*w.im,
		im: z.im*w.re + z.re*w.im,
	}
}

// Div returns z / w.
//
// The divisor is |w|² and both components are divided by it. When w is
// zero the divisor is 0 and the components become ±Inf or NaN following
// IEEE-754; this is not special-cased. (1,0)/(0,0) is (NaN, NaN), while
// (1,0)/(1e-200,0), whose |w|² underflows to 0, is (+Inf, NaN).
func (z Number) Div(w Number) Number {
	divisor := w.Abs()
	divisor *= divisor

	return Number{
		re: (z.re*w.re + z.im*w.im) / divisor,
		im: (z.im*w.re - z.re*w.im) / divisor,
	}
}

// Neg returns −z.
func (z Number) Neg() Number {
	return Number{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate re − im·i.
func (z Number) Conj() Number {
	return Number{re: z.re, im: -z.im}
}

// Scale returns z·k for a real k.
func (z Number) Scale(k float64) Number {
	return Number{re: z.re * k, im: z.im * k}
}
