// Package gamma approximates the complex Gamma function Γ(z) for cplx.Number
// inputs.
//
// 🚀 Two strategies:
//
//	• Lanczos (default): Γ(z) = √(2π)·t^{z'+½}·e^{−t}·A(z'), z' = z−1,
//	  t = z' + g + ½, with A(z') = c₀ + Σ cᵢ/(z'+i). The coefficients are
//	  derived at first use from the Chebyshev triangle and cached for the
//	  process lifetime. Inputs with Re z < ½ go through the reflection
//	  formula Γ(z) = π / (sin(πz)·Γ(1−z)).
//	• Series: the Weierstrass product in log form,
//	  Γ(z) = exp(−γz − ln z + Σ_{k=1..K} (z/k − ln(1+z/k))).
//	  It converges slowly (relative error ≈ |z|²/2K) and exists as a
//	  reference and fallback; K is tunable with WithTerms.
//
// ✨ Coefficient table:
//
//	C[n,m] is the Chebyshev triangle
//	  C[1,1] = 1, C[2,2] = 1,
//	  C[n+1,1]   = −C[n−1,1],
//	  C[n+1,n+1] = 2·C[n,n],
//	  C[n+1,m+1] = 2·C[n,m] − C[n−1,m+1].
//	pᵢ = (√2/π)·Σ_{l=0..i} C[2i+1,2l+1]·Γ(l+½)·e^{l+g+½}/(l+g+½)^{l+½},
//	with Γ(l+½) = √π·(2l−1)!!/2^l. The pᵢ multiply the rational terms
//	z'(z'−1)…/((z'+1)(z'+2)…) of the Lanczos series; expanding those in
//	partial fractions yields the cᵢ used by the closed form above. For
//	g = 5 they reproduce the familiar 76.18009…, −86.50532… values.
//
// ⚙️ Usage:
//
//	g := gamma.Gamma(cplx.FromRealImag(1, 1))                      // Lanczos
//	s := gamma.Gamma(z, gamma.WithMethod(gamma.MethodSeries), gamma.WithTerms(1e5))
//
// Both the triangle and the coefficient table are built exactly once
// behind sync.Once and are read-only afterwards, so every function in this
// package is safe for concurrent use.
package gamma
