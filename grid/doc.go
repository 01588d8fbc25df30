// Package grid samples a complex function over a rectangle of the complex
// plane, e.g. to tabulate Γ or to feed a plotting tool.
//
// The lattice has nRe columns spanning [ReMin, ReMax] and nIm rows spanning
// [ImMin, ImMax]; both ends are included and a single sample sits at the
// lower bound. Rows are evaluated concurrently on a bounded errgroup and
// every row writes only its own slice, so the sampled function must be
// safe for concurrent use (every cplx, gamma and plane function is).
//
// Usage:
//
//	rect := grid.Rect{ReMin: -2, ImMin: -2, ReMax: 2, ImMax: 2}
//	out, err := grid.Sample(ctx, gamma.Lanczos, rect, grid.WithSize(81, 81))
//	// out[j][i] = f(re_i + im_j·i)
package grid
