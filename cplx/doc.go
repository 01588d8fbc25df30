// Package cplx implements an immutable complex-number value type together
// with its arithmetic and elementary transcendental functions.
//
// 🚀 What is cplx?
//
//	A small, dependency-light engine for double-precision complex numbers:
//	  • Arithmetic: Add, Sub, Mul, Div, Neg, Conj
//	  • Exponential & logarithmic: Exp, Ln, LogBase, Pow, Root
//	  • Trigonometric: Sin, Cos, Tan and their principal inverses
//	  • Text form "3-4i" (String / Parse) and structured RE/IM records
//	    for JSON, YAML and TOML.
//
// ✨ Numeric policy:
//   - Every operation returns a new Number; operands are never mutated.
//   - No operation returns an error. Degenerate input (division by zero,
//     logarithm of zero) propagates IEEE-754 NaN/±Inf transparently, and a
//     NaN may live in only one component.
//   - Equal is exact component-wise equality with no tolerance, so
//     (1,2) and (1,2.0000001) are different numbers. Use ApproxEqual when
//     a tolerance is wanted.
//   - Multi-valued functions (Ln, Pow, Root, Asin, Acos, Atan) return the
//     principal branch, arg ∈ (−π, π]. Pow goes through exp(w·ln z) and so
//     inherits the branch cut of Ln along the negative real axis.
//
// ⚙️ Usage:
//
//	z := cplx.FromRealImag(3, -4)
//	w := z.Mul(cplx.I()).Add(cplx.One())
//	fmt.Println(w)            // 5+3i
//	fmt.Println(z.Abs())      // 5
//	back := cplx.Parse("3-4i") // (3, -4)
//
// Input coming from a loosely typed host goes through Complexify, which
// turns numbers into real values, strings into parsed values and anything
// else into zero.
package cplx
