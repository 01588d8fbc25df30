package gamma_test

import (
	"testing"

	"github.com/katalvlaran/cplane/gamma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_Defaults checks the documented defaults.
func TestResolve_Defaults(t *testing.T) {
	o := gamma.Resolve()
	assert.Equal(t, gamma.DefaultMethod, o.Method())
	assert.Equal(t, gamma.DefaultSeriesTerms, o.Terms())

	o = gamma.Resolve(nil, gamma.WithTerms(10), gamma.WithMethod(gamma.MethodSeries))
	assert.Equal(t, gamma.MethodSeries, o.Method())
	assert.Equal(t, 10, o.Terms())
}

// TestOptions_Panics covers programmer-error values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { gamma.WithTerms(0) })
	assert.Panics(t, func() { gamma.WithMethod(gamma.Method(7)) })
}

// TestParseMethod maps names to methods.
func TestParseMethod(t *testing.T) {
	m, err := gamma.ParseMethod("Series")
	require.NoError(t, err)
	assert.Equal(t, gamma.MethodSeries, m)

	m, err = gamma.ParseMethod(" lanczos ")
	require.NoError(t, err)
	assert.Equal(t, gamma.MethodLanczos, m)
	assert.Equal(t, "lanczos", m.String())
	assert.Equal(t, "Method(9)", gamma.Method(9).String())

	_, err = gamma.ParseMethod("stirling")
	assert.ErrorIs(t, err, gamma.ErrUnknownMethod)
}
