package grid

import "errors"

var (
	// ErrBadShape indicates a lattice dimension below 1.
	ErrBadShape = errors.New("grid: lattice dimensions must be >= 1")

	// ErrBadRect indicates non-finite or inverted rectangle bounds.
	ErrBadRect = errors.New("grid: invalid rectangle")

	// ErrNilFunc indicates a nil sampled function.
	ErrNilFunc = errors.New("grid: nil function")
)
