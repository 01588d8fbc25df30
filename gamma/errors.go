package gamma

import "errors"

var (
	// ErrChebyshevIndex indicates C[n,m] was requested outside 1 ≤ m ≤ n.
	ErrChebyshevIndex = errors.New("gamma: chebyshev index out of range")

	// ErrCoefficientCount indicates a coefficient count outside [1, MaxCoefficientCount].
	ErrCoefficientCount = errors.New("gamma: coefficient count out of range")

	// ErrPrecisionModifier indicates a negative or non-finite g.
	ErrPrecisionModifier = errors.New("gamma: precision modifier must be finite and >= 0")

	// ErrUnknownMethod indicates an unrecognized approximation method name.
	ErrUnknownMethod = errors.New("gamma: unknown method")
)
