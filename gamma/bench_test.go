package gamma_test

import (
	"testing"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/gamma"
)

var sink cplx.Number

// BenchmarkLanczos measures the cached closed form.
func BenchmarkLanczos(b *testing.B) {
	z := cplx.FromRealImag(2.5, 1.5)
	for i := 0; i < b.N; i++ {
		sink = gamma.Lanczos(z)
	}
}

// BenchmarkLanczosReflection measures the Re z < ½ path.
func BenchmarkLanczosReflection(b *testing.B) {
	z := cplx.FromRealImag(-2.5, 1.5)
	for i := 0; i < b.N; i++ {
		sink = gamma.Lanczos(z)
	}
}

// BenchmarkSeries10k measures the brute-force series with 10,000 terms.
func BenchmarkSeries10k(b *testing.B) {
	z := cplx.FromRealImag(2.5, 1.5)
	opt := gamma.WithTerms(10_000)
	for i := 0; i < b.N; i++ {
		sink = gamma.Series(z, opt)
	}
}

// BenchmarkComputeCoefficients measures an uncached table build.
func BenchmarkComputeCoefficients(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gamma.ComputeCoefficients(gamma.PrecisionModifier, 12); err != nil {
			b.Fatalf("ComputeCoefficients failed: %v", err)
		}
	}
}
