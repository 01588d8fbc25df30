package cplx

import "errors"

// Sentinel errors. Arithmetic never fails; these are returned only by the
// strict text parser and the structured codecs.
var (
	// ErrSyntax indicates text that does not match "<real><+|-><imag>i".
	ErrSyntax = errors.New("cplx: invalid complex number syntax")

	// ErrUnknownFormat indicates an unsupported structured encoding.
	ErrUnknownFormat = errors.New("cplx: unknown encoding format")
)
