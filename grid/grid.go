package grid

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cplane/cplx"
)

// Rect is an axis-aligned rectangle of the complex plane.
type Rect struct {
	ReMin, ImMin float64
	ReMax, ImMax float64
}

// Validate reports ErrBadRect for NaN/±Inf bounds or Min > Max.
func (r Rect) Validate() error {
	for _, v := range []float64{r.ReMin, r.ImMin, r.ReMax, r.ImMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %+v", ErrBadRect, r)
		}
	}
	if r.ReMin > r.ReMax || r.ImMin > r.ImMax {
		return fmt.Errorf("%w: inverted bounds in %+v", ErrBadRect, r)
	}

	return nil
}

// Point returns the lattice point (i, j) for an nRe×nIm lattice over r.
func (r Rect) Point(i, j, nRe, nIm int) cplx.Number {
	return cplx.FromRealImag(axis(r.ReMin, r.ReMax, i, nRe), axis(r.ImMin, r.ImMax, j, nIm))
}

// axis returns the k-th of n evenly spaced values on [lo, hi].
func axis(lo, hi float64, k, n int) float64 {
	if n == 1 {
		return lo
	}

	return lo + (hi-lo)*float64(k)/float64(n-1)
}

// Sample evaluates f on the lattice over r and returns out[j][i] =
// f(Point(i, j)), rows indexed by the imaginary coordinate.
//
// Rows run concurrently, at most WithWorkers at a time. When ctx is
// cancelled no further rows start and ctx.Err() is returned with a nil
// result.
//
// Stage 1 (Validate): f non-nil, r finite and ordered, nRe, nIm ≥ 1.
// Stage 2 (Execute): one errgroup task per row, each writing only out[j].
// Stage 3 (Finalize): wait, then report cancellation or log a summary.
// Complexity: O(nRe·nIm) evaluations of f, spread over the workers.
func Sample(ctx context.Context, f func(cplx.Number) cplx.Number, r Rect, opts ...Option) ([][]cplx.Number, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if o.nRe < 1 || o.nIm < 1 {
		return nil, ErrBadShape
	}

	start := time.Now()
	out := make([][]cplx.Number, o.nIm)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for j := 0; j < o.nIm; j++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := make([]cplx.Number, o.nRe)
			for i := range row {
				row[i] = f(r.Point(i, j, o.nRe, o.nIm))
			}
			out[j] = row
			o.logger.WithField("row", j).Debug("grid row sampled")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.logger.WithFields(logrus.Fields{
		"columns": o.nRe,
		"rows":    o.nIm,
		"workers": o.workers,
		"elapsed": time.Since(start),
	}).Info("grid sampled")

	return out, nil
}
