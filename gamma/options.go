package gamma

import (
	"fmt"
	"strings"
)

// Method selects the Gamma approximation strategy.
type Method int

const (
	// MethodLanczos evaluates the cached Lanczos closed form.
	MethodLanczos Method = iota

	// MethodSeries evaluates the truncated Weierstrass series.
	MethodSeries
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case MethodLanczos:
		return "lanczos"
	case MethodSeries:
		return "series"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "lanczos" or "series" (case-insensitive) to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lanczos":
		return MethodLanczos, nil
	case "series":
		return MethodSeries, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Defaults.
const (
	// DefaultMethod is used when WithMethod is not given.
	DefaultMethod = MethodLanczos

	// DefaultSeriesTerms is the number K of series terms. Far below the
	// brute-force 10,000,000 of the first prototype: the relative error is
	// about |z|²/2K, so 1e6 terms already give ~1e-5 at |z| = 5 in a
	// fraction of the time.
	DefaultSeriesTerms = 1_000_000
)

const (
	panicTermsInvalid  = "gamma: WithTerms: terms must be >= 1"
	panicMethodInvalid = "gamma: WithMethod: unknown method"
)

// Option configures Gamma and Series.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	method Method
	terms  int
}

// Method returns the configured strategy.
func (o Options) Method() Method { return o.method }

// Terms returns the configured number of series terms.
func (o Options) Terms() int { return o.terms }

// WithMethod selects the approximation strategy.
// Panics on a value outside the declared constants.
func WithMethod(m Method) Option {
	if m != MethodLanczos && m != MethodSeries {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithTerms sets the number of series terms K. Panics when k < 1.
func WithTerms(k int) Option {
	if k < 1 {
		panic(panicTermsInvalid)
	}

	return func(o *Options) { o.terms = k }
}

// Resolve applies opts on top of the defaults.
func Resolve(opts ...Option) Options {
	o := Options{method: DefaultMethod, terms: DefaultSeriesTerms}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
