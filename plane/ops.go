package plane

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cplane/cplx"
)

// BinaryOp tags a two-operand block.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpRoot // b-th root of a
	OpLog  // log base b of a
	opCount
)

var opNames = [opCount]string{
	OpAdd:  "add",
	OpSub:  "sub",
	OpMul:  "mul",
	OpDiv:  "div",
	OpPow:  "pow",
	OpRoot: "root",
	OpLog:  "log",
}

var binary = [opCount]func(a, b cplx.Number) cplx.Number{
	OpAdd:  cplx.Number.Add,
	OpSub:  cplx.Number.Sub,
	OpMul:  cplx.Number.Mul,
	OpDiv:  cplx.Number.Div,
	OpPow:  cplx.Number.Pow,
	OpRoot: cplx.Number.Root,
	OpLog:  cplx.Number.LogBase,
}

// String returns the operation keyword.
func (op BinaryOp) String() string {
	if op.valid() {
		return opNames[op]
	}

	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

func (op BinaryOp) valid() bool { return op >= 0 && op < opCount }

// Ops lists every BinaryOp.
func Ops() []BinaryOp {
	out := make([]BinaryOp, opCount)
	for i := range out {
		out[i] = BinaryOp(i)
	}

	return out
}

// ParseOp maps a keyword ("add", "sub", ...) or its symbol ("+", "-", "*",
// "/", "^") to a BinaryOp.
func ParseOp(name string) (BinaryOp, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == key {
			return BinaryOp(i), nil
		}
	}
	switch key {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*", "x":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	case "^", "**":
		return OpPow, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Binary returns the implementation of op.
func Binary(op BinaryOp) (func(a, b cplx.Number) cplx.Number, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}

	return binary[op], nil
}
