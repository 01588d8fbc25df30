package plane

import "errors"

var (
	// ErrUnknownFunc indicates a unary function name or tag outside the menu.
	ErrUnknownFunc = errors.New("plane: unknown function")

	// ErrUnknownOp indicates a binary operation name or tag outside the menu.
	ErrUnknownOp = errors.New("plane: unknown operation")
)
