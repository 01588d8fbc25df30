package cplx

import "math"

// Exp returns e^z = e^re · (cos im + i·sin im).
func (z Number) Exp() Number {
	mag := math.Exp(z.re)

	return Number{
		re: mag * math.Cos(z.im),
		im: mag * math.Sin(z.im),
	}
}

// Ln returns the principal natural logarithm ln|z| + i·arg z.
// Ln(0) is (−Inf, 0).
func (z Number) Ln() Number {
	return Number{re: math.Log(z.Abs()), im: z.Arg()}
}

// Pow returns z^w on the principal branch.
//
// When z is zero and w is not purely imaginary the result follows the
// 0^0 = 1, 0^w = 0 convention. Otherwise Pow computes exp(w · ln z), which
// carries the discontinuity of Ln across the negative real axis; results
// just above and just below the cut differ and that is expected.
func (z Number) Pow(w Number) Number {
	if z.IsZero() && !w.IsImaginary() {
		if w.IsZero() {
			return One()
		}

		return Zero()
	}

	return z.Ln().Mul(w).Exp()
}

// Sqrt returns the principal square root z^½.
func (z Number) Sqrt() Number {
	return z.Pow(Half())
}

// Root returns the w-th root of z, z^(1/w).
func (z Number) Root(w Number) Number {
	return z.Pow(One().Div(w))
}

// LogBase returns the logarithm of z in base w, ln z / ln w.
func (z Number) LogBase(w Number) Number {
	return z.Ln().Div(w.Ln())
}
