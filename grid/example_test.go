package grid_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/grid"
)

// ExampleSample squares every point of a 3×2 lattice.
func ExampleSample() {
	square := func(z cplx.Number) cplx.Number { return z.Mul(z) }
	r := grid.Rect{ReMin: 0, ImMin: 0, ReMax: 2, ImMax: 1}

	out, err := grid.Sample(context.Background(), square, r, grid.WithSize(3, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range out {
		fmt.Println(row)
	}
	// Output:
	// [0+0i 1+0i 4+0i]
	// [-1+0i 0+2i 3+4i]
}
