package plane_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/gamma"
	"github.com/katalvlaran/cplane/plane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinary_DefaultBlocks replays the default operands of every block.
func TestBinary_DefaultBlocks(t *testing.T) {
	c := plane.New()
	cases := []struct {
		op   plane.BinaryOp
		a, b any
		want cplx.Number
	}{
		{plane.OpAdd, -3, 4, cplx.FromReal(1)},
		{plane.OpSub, 1, 4, cplx.FromReal(-3)},
		{plane.OpMul, 5, 2, cplx.FromReal(10)},
		{plane.OpDiv, 10, 5, cplx.FromReal(2)},
		{plane.OpPow, 2, 4, cplx.FromReal(16)},
		{plane.OpRoot, 16, 4, cplx.FromReal(2)},
		{plane.OpLog, 16, 2, cplx.FromReal(4)},
		{plane.OpMul, "0+1i", "0+1i", cplx.FromReal(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, err := c.Binary(tc.op, tc.a, tc.b)
			require.NoError(t, err)
			assert.True(t, got.ApproxEqual(tc.want, 1e-12), "got %v want %v", got, tc.want)
		})
	}

	_, err := c.Binary(plane.BinaryOp(42), 1, 2)
	assert.ErrorIs(t, err, plane.ErrUnknownOp)
}

// TestApply_Menu evaluates every menu entry once.
func TestApply_Menu(t *testing.T) {
	c := plane.New()
	z := cplx.FromRealImag(3, -4)
	want := map[plane.Func]cplx.Number{
		plane.FuncAbs:   cplx.FromReal(5),
		plane.FuncArg:   cplx.FromReal(math.Atan2(-4, 3)),
		plane.FuncConj:  z.Conj(),
		plane.FuncExp:   z.Exp(),
		plane.FuncLn:    z.Ln(),
		plane.FuncSin:   z.Sin(),
		plane.FuncCos:   z.Cos(),
		plane.FuncTan:   z.Tan(),
		plane.FuncAsin:  z.Asin(),
		plane.FuncAcos:  z.Acos(),
		plane.FuncAtan:  z.Atan(),
		plane.FuncReal:  cplx.FromReal(3),
		plane.FuncImag:  cplx.FromReal(-4),
		plane.FuncGamma: gamma.Lanczos(z),
	}
	require.Len(t, want, len(plane.Funcs()))
	for f, w := range want {
		got, err := c.Apply(f, z)
		require.NoError(t, err, f.String())
		assert.True(t, got.Equal(w), "%s: got %v want %v", f, got, w)
	}

	_, err := c.Apply(plane.Func(-1), z)
	assert.ErrorIs(t, err, plane.ErrUnknownFunc)
}

// TestApply_GammaOptions verifies the Calculator forwards gamma options.
func TestApply_GammaOptions(t *testing.T) {
	z := cplx.FromRealImag(2, 0.5)
	c := plane.New(gamma.WithMethod(gamma.MethodSeries), gamma.WithTerms(200))
	got, err := c.Apply(plane.FuncGamma, z)
	require.NoError(t, err)
	assert.True(t, got.Equal(gamma.Series(z, gamma.WithTerms(200))))
}

// TestParseFunc maps menu keywords and aliases.
func TestParseFunc(t *testing.T) {
	for _, f := range plane.Funcs() {
		got, err := plane.ParseFunc(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	aliases := map[string]plane.Func{
		"conjugate": plane.FuncConj,
		"E^":        plane.FuncExp,
		"asin":      plane.FuncAsin,
		" ATAN ":    plane.FuncAtan,
		"re":        plane.FuncReal,
		"im":        plane.FuncImag,
	}
	for name, f := range aliases {
		got, err := plane.ParseFunc(name)
		require.NoError(t, err, name)
		assert.Equal(t, f, got, name)
	}

	_, err := plane.ParseFunc("sinh")
	assert.ErrorIs(t, err, plane.ErrUnknownFunc)
	assert.Equal(t, "Func(99)", plane.Func(99).String())
}

// TestParseOp maps keywords and symbols.
func TestParseOp(t *testing.T) {
	for _, op := range plane.Ops() {
		got, err := plane.ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	for sym, op := range map[string]plane.BinaryOp{"+": plane.OpAdd, "-": plane.OpSub, "*": plane.OpMul, "/": plane.OpDiv, "^": plane.OpPow} {
		got, err := plane.ParseOp(sym)
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := plane.ParseOp("mod")
	assert.ErrorIs(t, err, plane.ErrUnknownOp)
}

// TestDefineCompare covers complex_define, comp and the constants.
func TestDefineCompare(t *testing.T) {
	c := plane.New()
	z := c.Define(3, -4)
	assert.True(t, z.Equal(cplx.FromRealImag(3, -4)))
	// A complex imaginary operand is rotated by i.
	assert.True(t, c.Define(1, "0+1i").Equal(cplx.FromReal(0)))

	assert.True(t, c.Compare("1+2i", cplx.FromRealImag(1, 2)))
	assert.False(t, c.Compare(cplx.FromRealImag(1, 2), cplx.FromRealImag(1, 2.0000001)))
	assert.True(t, c.Compare("garbage", 0))

	assert.Equal(t, math.Pi, plane.Pi().Real())
	assert.Equal(t, math.E, plane.E().Real())
	assert.True(t, plane.I().Equal(cplx.FromRealImag(0, 1)))
}
