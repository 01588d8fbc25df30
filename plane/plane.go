package plane

import (
	"math"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/gamma"
)

// Calculator evaluates host blocks. It is immutable after New and safe for
// concurrent use.
type Calculator struct {
	gammaOpts []gamma.Option
}

// New returns a Calculator whose FuncGamma uses the given options.
func New(opts ...gamma.Option) *Calculator {
	return &Calculator{gammaOpts: append([]gamma.Option(nil), opts...)}
}

// Define returns re + im·i. Both operands are coerced, so a complex im
// rotates into the real axis the same way the host block does.
func (c *Calculator) Define(re, im any) cplx.Number {
	return cplx.Complexify(re).Add(cplx.Complexify(im).Mul(cplx.I()))
}

// Binary applies op to the coerced operands.
func (c *Calculator) Binary(op BinaryOp, a, b any) (cplx.Number, error) {
	fn, err := Binary(op)
	if err != nil {
		return cplx.Zero(), err
	}

	return fn(cplx.Complexify(a), cplx.Complexify(b)), nil
}

// Apply evaluates the unary function f on the coerced operand.
func (c *Calculator) Apply(f Func, z any) (cplx.Number, error) {
	fn, err := Unary(f, c.gammaOpts...)
	if err != nil {
		return cplx.Zero(), err
	}

	return fn(cplx.Complexify(z)), nil
}

// Compare reports exact equality of the coerced operands (see cplx.Number.Equal).
func (c *Calculator) Compare(a, b any) bool {
	return cplx.Complexify(a).Equal(cplx.Complexify(b))
}

// Pi returns π as a real Number.
func Pi() cplx.Number { return cplx.FromReal(math.Pi) }

// E returns Euler's number e as a real Number.
func E() cplx.Number { return cplx.FromReal(math.E) }

// I returns the imaginary unit.
func I() cplx.Number { return cplx.I() }
