package cplx

import "math"

// Real-valued constants shared by the elementary and Gamma code paths.
const (
	// EulerMascheroni is γ, the Euler–Mascheroni constant.
	EulerMascheroni = 0.5772156649015329

	// sqrt2Pi is √(2π).
	sqrt2Pi = 2.5066282746310002

	// sqrt2OverPi is √2/π.
	sqrt2OverPi = math.Sqrt2 / math.Pi
)

// Zero returns 0+0i.
func Zero() Number { return Number{} }

// One returns 1+0i.
func One() Number { return Number{re: 1} }

// Two returns 2+0i.
func Two() Number { return Number{re: 2} }

// Half returns 0.5+0i.
func Half() Number { return Number{re: 0.5} }

// NegOne returns -1+0i.
func NegOne() Number { return Number{re: -1} }

// I returns the imaginary unit 0+1i.
func I() Number { return Number{im: 1} }

// EulerGamma returns γ as a real Number.
func EulerGamma() Number { return Number{re: EulerMascheroni} }

// Ln2 returns ln 2 as a real Number.
func Ln2() Number { return Number{re: math.Ln2} }

// Sqrt2Pi returns √(2π) as a real Number.
func Sqrt2Pi() Number { return Number{re: sqrt2Pi} }

// Sqrt2OverPi returns √2/π as a real Number.
func Sqrt2OverPi() Number { return Number{re: sqrt2OverPi} }
