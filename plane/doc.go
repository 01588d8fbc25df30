// Package plane is the host-facing operation surface of the complex-plane
// engine.
//
// A host (a block editor, a REPL, the cplane CLI) hands over loosely typed
// operands and an operation tag; plane coerces the operands with
// cplx.Complexify, looks the implementation up in a fixed table and returns
// a cplx.Number. Unary functions are selected by the Func tag, whose names
// match the host menu keywords ("abs", "conj", "exp", "gamma", ...), and
// binary operations by the BinaryOp tag.
//
// Nothing here renders or persists values; hosts format results with
// Number.String or the cplx codecs.
package plane
