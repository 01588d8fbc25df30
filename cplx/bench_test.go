package cplx_test

import (
	"testing"

	"github.com/katalvlaran/cplane/cplx"
)

var sink cplx.Number

// BenchmarkMul measures plain multiplication.
func BenchmarkMul(b *testing.B) {
	z, w := cplx.FromRealImag(3, -4), cplx.FromRealImag(0.5, 1.5)
	for i := 0; i < b.N; i++ {
		sink = z.Mul(w)
	}
}

// BenchmarkDiv measures hypot-based division.
func BenchmarkDiv(b *testing.B) {
	z, w := cplx.FromRealImag(3, -4), cplx.FromRealImag(0.5, 1.5)
	for i := 0; i < b.N; i++ {
		sink = z.Div(w)
	}
}

// BenchmarkPow measures exp(w·ln z).
func BenchmarkPow(b *testing.B) {
	z, w := cplx.FromRealImag(3, -4), cplx.FromRealImag(0.5, 1.5)
	for i := 0; i < b.N; i++ {
		sink = z.Pow(w)
	}
}

// BenchmarkAsin measures the logarithmic inverse sine.
func BenchmarkAsin(b *testing.B) {
	z := cplx.FromRealImag(0.3, 0.4)
	for i := 0; i < b.N; i++ {
		sink = z.Asin()
	}
}

// BenchmarkParse measures the regexp-based parser.
func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = cplx.Parse("-1.5e2-0.5i")
	}
}
