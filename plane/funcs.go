package plane

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/gamma"
)

// Func tags a unary function of the host menu.
type Func int

const (
	FuncAbs Func = iota
	FuncArg
	FuncConj
	FuncExp
	FuncLn
	FuncSin
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncReal
	FuncImag
	FuncGamma
	funcCount
)

// funcNames are the host menu keywords, indexed by Func.
var funcNames = [funcCount]string{
	FuncAbs:   "abs",
	FuncArg:   "arg",
	FuncConj:  "conj",
	FuncExp:   "exp",
	FuncLn:    "ln",
	FuncSin:   "sin",
	FuncCos:   "cos",
	FuncTan:   "tan",
	FuncAsin:  "arcsin",
	FuncAcos:  "arccos",
	FuncAtan:  "arctan",
	FuncReal:  "real",
	FuncImag:  "imag",
	FuncGamma: "gamma",
}

// unary is the dispatch table for every Func except FuncGamma, whose
// implementation depends on the Calculator's gamma options.
var unary = [funcCount]func(cplx.Number) cplx.Number{
	FuncAbs:  func(z cplx.Number) cplx.Number { return cplx.FromReal(z.Abs()) },
	FuncArg:  func(z cplx.Number) cplx.Number { return cplx.FromReal(z.Arg()) },
	FuncConj: cplx.Number.Conj,
	FuncExp:  cplx.Number.Exp,
	FuncLn:   cplx.Number.Ln,
	FuncSin:  cplx.Number.Sin,
	FuncCos:  cplx.Number.Cos,
	FuncTan:  cplx.Number.Tan,
	FuncAsin: cplx.Number.Asin,
	FuncAcos: cplx.Number.Acos,
	FuncAtan: cplx.Number.Atan,
	FuncReal: func(z cplx.Number) cplx.Number { return cplx.FromReal(z.Real()) },
	FuncImag: func(z cplx.Number) cplx.Number { return cplx.FromReal(z.Imag()) },
}

// String returns the menu keyword of f.
func (f Func) String() string {
	if f.valid() {
		return funcNames[f]
	}

	return fmt.Sprintf("Func(%d)", int(f))
}

func (f Func) valid() bool { return f >= 0 && f < funcCount }

// Funcs lists every Func in menu order.
func Funcs() []Func {
	out := make([]Func, funcCount)
	for i := range out {
		out[i] = Func(i)
	}

	return out
}

// ParseFunc maps a menu keyword to its Func. The aliases "conjugate",
// "asin", "acos", "atan", "re", "im" and "e^" are accepted too.
func ParseFunc(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range funcNames {
		if n == key {
			return Func(i), nil
		}
	}
	switch key {
	case "conjugate":
		return FuncConj, nil
	case "e^":
		return FuncExp, nil
	case "asin":
		return FuncAsin, nil
	case "acos":
		return FuncAcos, nil
	case "atan":
		return FuncAtan, nil
	case "re":
		return FuncReal, nil
	case "im":
		return FuncImag, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
}

// Unary returns the implementation of f bound to the given gamma options.
func Unary(f Func, opts ...gamma.Option) (func(cplx.Number) cplx.Number, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFunc, f)
	}
	if f == FuncGamma {
		return func(z cplx.Number) cplx.Number { return gamma.Gamma(z, opts...) }, nil
	}

	return unary[f], nil
}
