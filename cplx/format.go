package cplx

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Bounds of the plain decimal notation used by String. Components outside
// [plainMin, plainMax) are rendered in exponent form.
const (
	plainMin = 1e-6
	plainMax = 1e21
)

// numberPattern is an optional sign, digits with an optional fractional
// part (or a bare fraction), and an optional exponent.
const numberPattern = `[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`

// textPattern matches "<real><op><imag>i". The imaginary part may carry its
// own sign so the legacy "3+-4i" spelling is accepted next to "3-4i".
var textPattern = regexp.MustCompile(`^(` + numberPattern + `)([+-])(` + numberPattern + `)i$`)

// String renders z as "<re><sign><|im|>i", e.g. "3-4i", "0+1i", "-2.5+0i".
// The sign is "+" when im ≥ 0 (including −0) and "-" otherwise.
func (z Number) String() string {
	var b strings.Builder
	b.WriteString(formatComponent(z.re))
	if z.im >= 0 || math.IsNaN(z.im) {
		b.WriteByte('+')
	} else {
		b.WriteByte('-')
	}
	b.WriteString(formatComponent(math.Abs(z.im)))
	b.WriteByte('i')

	return b.String()
}

// Format implements fmt.Formatter. The 'v' and 's' verbs print String();
// float verbs ('e', 'f', 'g') are applied to each component, honoring
// width-free precision, e.g. fmt.Sprintf("%.3f", z) → "1.000+2.500i".
func (z Number) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec := -1
		if p, ok := f.Precision(); ok {
			prec = p
		}
		// strconv has no 'F'; it prints the same as 'f'.
		if verb == 'F' {
			verb = 'f'
		}
		sign := byte('+')
		if z.im < 0 {
			sign = '-'
		}
		fmt.Fprintf(f, "%s%c%si",
			strconv.FormatFloat(z.re, byte(verb), prec, 64),
			sign,
			strconv.FormatFloat(math.Abs(z.im), byte(verb), prec, 64))
	default:
		fmt.Fprint(f, z.String())
	}
}

// formatComponent prints the shortest decimal that round-trips through
// strconv.ParseFloat, switching to exponent form outside the plain range.
func formatComponent(x float64) string {
	ax := math.Abs(x)
	if x == 0 || (ax >= plainMin && ax < plainMax) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Parse reads "<real><+|-><imag>i" (see String). Any text that does not
// match yields Zero() and no error is signaled; callers that need to tell
// "0+0i" from garbage use ParseStrict.
func Parse(text string) Number {
	z, err := ParseStrict(text)
	if err != nil {
		return Zero()
	}

	return z
}

// ParseStrict is Parse with failures reported as ErrSyntax.
// Surrounding whitespace is ignored.
func ParseStrict(text string) (Number, error) {
	parts := textPattern.FindStringSubmatch(strings.TrimSpace(text))
	if parts == nil {
		return Zero(), fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	re, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Zero(), fmt.Errorf("%w: real part %q", ErrSyntax, parts[1])
	}
	im, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return Zero(), fmt.Errorf("%w: imaginary part %q", ErrSyntax, parts[3])
	}
	if parts[2] == "-" {
		im = -im
	}

	return Number{re: re, im: im}, nil
}
