package cplx

import "math"

// Sin returns sin z = sin re·cosh im + i·cos re·sinh im.
func (z Number) Sin() Number {
	return Number{
		re: math.Sin(z.re) * math.Cosh(z.im),
		im: math.Cos(z.re) * math.Sinh(z.im),
	}
}

// Cos returns cos z = cos re·cosh im − i·sin re·sinh im.
func (z Number) Cos() Number {
	return Number{
		re: math.Cos(z.re) * math.Cosh(z.im),
		im: -math.Sin(z.re) * math.Sinh(z.im),
	}
}

// Tan returns sin z / cos z. Poles of tan produce huge or non-finite
// components through Div.
func (z Number) Tan() Number {
	return z.Sin().Div(z.Cos())
}

// Asin returns the principal inverse sine −i·ln(iz + √(1 − z²)).
func (z Number) Asin() Number {
	root := One().Sub(z.Pow(Two())).Pow(Half())

	return I().Mul(z).Add(root).Ln().Mul(I()).Neg()
}

// Acos returns the principal inverse cosine −i·ln(z + i·√(1 − z²)).
func (z Number) Acos() Number {
	root := One().Sub(z.Pow(Two())).Pow(Half())

	return z.Add(I().Mul(root)).Ln().Mul(I()).Neg()
}

// Atan returns the principal inverse tangent (i/2)·ln((i + z)/(i − z)).
// Atan(±i) is non-finite.
func (z Number) Atan() Number {
	halfI := Number{im: 0.5}

	return halfI.Mul(I().Add(z).Div(I().Sub(z)).Ln())
}
