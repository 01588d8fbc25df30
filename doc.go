// Package cplane is a complex-plane arithmetic and Gamma engine: an
// immutable complex value type, the elementary functions over it, and two
// Gamma approximations (Lanczos and the Weierstrass product series).
//
// 🚀 What is cplane?
//
//	A pure-Go numeric toolkit organized in small packages:
//		• cplx : the Number value type, arithmetic, exp/ln/pow, trig and
//		          inverse trig, "3-4i" text form, RE/IM records (JSON/YAML/TOML)
//		• gamma: Chebyshev triangle, Lanczos coefficients (g = 5, N = 5),
//		          Lanczos Γ(z) with reflection, truncated series Γ(z)
//		• plane: the block surface for a host program: Define, binary ops,
//		          the unary function menu, comparison, constants π, e, i
//		• grid : concurrent sampling of any function over a rectangle
//
// ✨ Why cplane?
//
//   - Never fails: arithmetic returns NaN/±Inf instead of errors
//   - Safe to share: every value is immutable, the cached tables are built once
//   - Tagged dispatch: functions and operations are enums, not strings
//
// ⚙️ Command line:
//
//	go install github.com/katalvlaran/cplane/cmd/cplane@latest
//	cplane eval 3+4i x 1-2i        # 11-2i
//	cplane gamma 1+1i              # 0.49801566...-0.15494982...i
//	cplane grid gamma --size 41 -o json
package cplane
