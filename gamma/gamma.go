package gamma

import "github.com/katalvlaran/cplane/cplx"

// Gamma approximates Γ(z) with the configured method (Lanczos by default).
//
// Example:
//
//	v := Gamma(cplx.FromReal(5))                          // ≈ 24
//	s := Gamma(cplx.FromReal(5), WithMethod(MethodSeries)) // ≈ 24, slower
func Gamma(z cplx.Number, opts ...Option) cplx.Number {
	o := Resolve(opts...)
	if o.method == MethodSeries {
		return Series(z, opts...)
	}

	return Lanczos(z)
}
