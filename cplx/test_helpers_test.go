package cplx_test

import (
	"testing"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/stretchr/testify/assert"
)

// tol is the absolute tolerance used for results that go through
// transcendental functions.
const tol = 1e-12

// samples is a fixed set of finite, non-zero operands covering all four
// quadrants, both axes and a few magnitudes.
var samples = []cplx.Number{
	cplx.FromRealImag(1, 0),
	cplx.FromRealImag(0, 1),
	cplx.FromRealImag(-3, 0),
	cplx.FromRealImag(0, -2.5),
	cplx.FromRealImag(3, -4),
	cplx.FromRealImag(-0.75, 0.5),
	cplx.FromRealImag(-2, -7),
	cplx.FromRealImag(12.5, 3.25),
	cplx.FromRealImag(1e-3, 2e-3),
}

// assertClose fails when got and want differ by more than eps in either
// component.
func assertClose(t *testing.T, want, got cplx.Number, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.Real(), got.Real(), eps, msgAndArgs...)
	assert.InDelta(t, want.Imag(), got.Imag(), eps, msgAndArgs...)
}
