// Package dense provides the small row-major float64 matrix used to derive
// Lanczos coefficients: the Chebyshev weights form a lower-triangular
// matrix that is applied to a vector of Gamma half-integer terms.
package dense

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when rows or cols is not positive.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates a vector whose length differs from Cols.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")
)

// denseErrorf wraps err with the method name and the offending indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major matrix of float64 values; data holds r*c elements.
type Matrix struct {
	r, c int
	data []float64
}

// New creates an r×c matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols)
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// Set assigns v at (row, col).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// MulVec returns y = m·x.
// Complexity: O(r*c).
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("Dense.MulVec: %w: len(x)=%d, cols=%d", ErrDimensionMismatch, len(x), m.c)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var acc float64
		for j, xv := range x {
			acc += m.data[base+j] * xv
		}
		y[i] = acc
	}

	return y, nil
}
