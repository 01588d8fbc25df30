package gamma

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/internal/dense"
)

// Lanczos parameters of the shared coefficient table.
const (
	// PrecisionModifier is the Lanczos g.
	PrecisionModifier = 5.0

	// CoefficientCount is the number N of table entries.
	CoefficientCount = 5

	// MaxCoefficientCount bounds ComputeCoefficients so the Chebyshev rows
	// it needs (up to 2n−1) stay exact in int64.
	MaxCoefficientCount = (maxChebyshevRow + 1) / 2
)

const opComputeCoefficients = "ComputeCoefficients"

// ShiftedG returns g + ½ as a Number, the shift applied to z' in the
// Lanczos factor.
func ShiftedG() cplx.Number {
	return cplx.FromReal(PrecisionModifier + 0.5)
}

// table holds the Chebyshev-form coefficients p and their partial-fraction
// form c. Both are written once and never mutated afterwards.
type table struct {
	p []float64
	c []float64
}

var (
	tableOnce sync.Once
	shared    table
)

// defaultTable returns the process-wide table, computing it on first use.
func defaultTable() table {
	tableOnce.Do(func() {
		p, err := ComputeCoefficients(PrecisionModifier, CoefficientCount)
		if err != nil {
			// Constants above are valid; reaching this is a programming error.
			panic(err)
		}
		shared = table{p: p, c: PartialFractions(p)}
	})

	return shared
}

// Coefficients returns a copy of the cached coefficient table p₀…p_{N−1}
// for g = PrecisionModifier, N = CoefficientCount.
func Coefficients() []float64 {
	return append([]float64(nil), defaultTable().p...)
}

// ClosedFormCoefficients returns a copy of the cached c₀…c_{N−1} used in
// A(z') = c₀ + Σ cᵢ/(z'+i).
func ClosedFormCoefficients() []float64 {
	return append([]float64(nil), defaultTable().c...)
}

// ComputeCoefficients derives n Lanczos coefficients for precision
// modifier g from the Chebyshev triangle, without caching:
//
//	pᵢ = (√2/π) · Σ_{l=0..i} C[2i+1, 2l+1] · F(l)
//	F(l) = √π·(2l−1)!!/2^l · e^{l+g+½} / (l+g+½)^{l+½}
//
// Stage 1 (Validate): 1 ≤ n ≤ MaxCoefficientCount, g finite and ≥ 0.
// Stage 2 (Prepare): Chebyshev rows (cached up to 2·CoefficientCount+1)
// and the n half-integer terms F(l).
// Stage 3 (Execute): lower-triangular weights · F, scaled by √2/π.
// Complexity: O(n²) time and memory.
func ComputeCoefficients(g float64, n int) ([]float64, error) {
	if n < 1 || n > MaxCoefficientCount {
		return nil, fmt.Errorf("%w: %d", ErrCoefficientCount, n)
	}
	if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, fmt.Errorf("%w: %v", ErrPrecisionModifier, g)
	}

	rows := 2*n - 1
	var cheb [][]int64
	if rows <= cachedRows {
		cheb = chebyshevTable()
	} else {
		cheb = buildChebyshev(rows)
	}

	f := make([]float64, n)
	for l := range f {
		shift := float64(l) + g + 0.5
		halfGamma := math.SqrtPi * DoubleFactorial(2*l-1) / math.Pow(2, float64(l))
		f[l] = halfGamma * math.Exp(shift) / math.Pow(shift, float64(l)+0.5)
	}

	// Odd-odd Chebyshev entries, lower triangular.
	weights, err := dense.New(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComputeCoefficients, err)
	}
	for i := 0; i < n; i++ {
		for l := 0; l <= i; l++ {
			if err = weights.Set(i, l, float64(cheb[2*i+1][2*l+1])); err != nil {
				return nil, fmt.Errorf("%s: %w", opComputeCoefficients, err)
			}
		}
	}

	p, err := weights.MulVec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComputeCoefficients, err)
	}
	for i := range p {
		p[i] *= math.Sqrt2 / math.Pi
	}

	return p, nil
}

// PartialFractions rewrites the Lanczos series
//
//	A(z) = ½p₀ + Σ_{k≥1} p_k · z(z−1)…(z−k+1) / ((z+1)(z+2)…(z+k))
//
// as c₀ + Σ_{i≥1} cᵢ/(z+i). Each rational term expands to
// 1 + Σ_{i=1..k} r_{k,i}/(z+i) with
// r_{k,i} = (−1)^{k−i+1}·(i+k−1)! / ((i−1)!²·(k−i)!).
// Complexity: O(n²).
func PartialFractions(p []float64) []float64 {
	if len(p) == 0 {
		return nil
	}
	c := make([]float64, len(p))
	c[0] = p[0] / 2
	for k := 1; k < len(p); k++ {
		c[0] += p[k]
	}
	for i := 1; i < len(p); i++ {
		for k := i; k < len(p); k++ {
			r := factorial(i+k-1) / (factorial(i-1) * factorial(i-1) * factorial(k-i))
			if (k-i+1)%2 != 0 {
				r = -r
			}
			c[i] += p[k] * r
		}
	}

	return c
}

// Lanczos approximates Γ(z) with the cached table.
//
// For Re z ≥ ½: with z' = z − 1 and t = z' + g + ½,
//
//	Γ(z) = √(2π) · t^{z'+½} · e^{−t} · (c₀ + Σ_{i=1}^{N−1} cᵢ/(z'+i)).
//
// For Re z < ½ the reflection Γ(z) = π / (sin(πz)·Γ(1−z)) is used. Poles
// at the non-positive integers come out as huge or non-finite values
// (Γ(0) is NaN+NaNi through Div).
// Complexity: O(N) with N = CoefficientCount.
func Lanczos(z cplx.Number) cplx.Number {
	if z.Real() < 0.5 {
		pi := cplx.FromReal(math.Pi)
		return pi.Div(z.Scale(math.Pi).Sin().Mul(Lanczos(cplx.One().Sub(z))))
	}

	c := defaultTable().c
	zp := z.Sub(cplx.One())

	sum := cplx.FromReal(c[0])
	for i := 1; i < len(c); i++ {
		sum = sum.Add(cplx.FromReal(c[i]).Div(zp.Add(cplx.FromReal(float64(i)))))
	}

	t := zp.Add(ShiftedG())
	factor := cplx.Sqrt2Pi().
		Mul(t.Pow(zp.Add(cplx.Half()))).
		Mul(t.Neg().Exp())

	return factor.Mul(sum)
}
