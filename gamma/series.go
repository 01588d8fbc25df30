package gamma

import "github.com/katalvlaran/cplane/cplx"

// Series approximates Γ(z) from the Weierstrass product in log form:
//
//	ln Γ(z) = −γz − ln z + Σ_{k=1..K} (z/k − ln(1 + z/k))
//
// K comes from WithTerms (DefaultSeriesTerms otherwise); any method option
// is ignored. The omitted tail is about z²/2K, so the result is slightly
// small for real z > 0. Non-positive integers hit ln 0 and yield
// non-finite components.
// Complexity: O(K) complex logarithms.
func Series(z cplx.Number, opts ...Option) cplx.Number {
	terms := Resolve(opts...).terms

	sum := cplx.Zero()
	for k := 1; k <= terms; k++ {
		prime := z.Div(cplx.FromReal(float64(k)))
		sum = sum.Add(prime.Sub(cplx.One().Add(prime).Ln()))
	}

	return cplx.EulerGamma().
		Mul(cplx.NegOne()).
		Mul(z).
		Sub(z.Ln()).
		Add(sum).
		Exp()
}
