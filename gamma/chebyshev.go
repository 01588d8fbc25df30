package gamma

import (
	"fmt"
	"sync"
)

// cachedRows covers every C[2i+1, 2l+1] needed by the default table.
const cachedRows = 2*CoefficientCount + 1

// maxChebyshevRow is the last row whose entries all fit in int64. The
// diagonal 2^(n−2) is not the bound: interior entries are larger, and row
// 54 already holds |C[54,34]| ≈ 1.0e19 > 2^63.
const maxChebyshevRow = 53

var (
	chebOnce  sync.Once
	chebCache [][]int64
)

// Chebyshev returns the triangle entry C[n,m] (1-based, 1 ≤ m ≤ n).
// Entries with n−m odd are zero. Rows up to 2·CoefficientCount+1 are served
// from a table built once; larger rows are computed on demand.
// Complexity: O(1) for cached rows, O(n²) otherwise.
func Chebyshev(n, m int) (int64, error) {
	if n < 1 || m < 1 || m > n || n > maxChebyshevRow {
		return 0, fmt.Errorf("%w: C[%d,%d]", ErrChebyshevIndex, n, m)
	}
	if n <= cachedRows {
		return chebyshevTable()[n][m], nil
	}

	return buildChebyshev(n)[n][m], nil
}

// chebyshevTable returns the shared read-only triangle.
func chebyshevTable() [][]int64 {
	chebOnce.Do(func() {
		chebCache = buildChebyshev(cachedRows)
	})

	return chebCache
}

// buildChebyshev fills rows 1..rows of the triangle bottom-up. Index 0 of
// every row and row 0 stay unused so that t[n][m] reads as C[n,m].
func buildChebyshev(rows int) [][]int64 {
	t := make([][]int64, rows+1)
	for n := range t {
		t[n] = make([]int64, n+1)
	}
	t[1][1] = 1
	if rows >= 2 {
		t[2][2] = 1
	}
	for n := 3; n <= rows; n++ {
		t[n][1] = -t[n-2][1]
		t[n][n] = 2 * t[n-1][n-1]
		for m := 2; m < n; m++ {
			// t[n-2] has only n-1 columns; its entry past the diagonal is 0.
			var prev int64
			if m <= n-2 {
				prev = t[n-2][m]
			}
			t[n][m] = 2*t[n-1][m-1] - prev
		}
	}

	return t
}
