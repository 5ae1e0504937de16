// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major float64 store behind every weight matrix.
//
// Layout: element (i,j) lives at data[i*c+j]. Public accessors return errors
// rather than panicking; kernels in impl_linear_algebra.go read data directly
// once they have validated shapes.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	tagAt  = "At"
	tagSet = "Set"
	tagRow = "Row"
)

const (
	rowOpen  = "["
	rowClose = "]\n"
	cellSep  = ", "
)

// denseErrorf formats "Dense.<method>(i,j): <err>".
func denseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c   int       // shape, both > 0
	data   []float64 // len == r*c
	finite bool      // reject NaN/±Inf in Set
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an r×c zero matrix, or ErrInvalidDimensions when either
// side is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), finite: DefaultValidateNaNInf}, nil
}

// NewSquare returns an n×n zero matrix, the shape of a recurrent weight matrix.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewDenseFrom copies a row-major literal into a new rows×cols matrix.
// Every value passes through Set, so NaN/Inf are rejected with ErrNaNInf;
// len(vals) != rows*cols yields ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: %d values for %dx%d: %w", len(vals), rows, cols, ErrDimensionMismatch)
	}
	for k, v := range vals {
		if err = m.Set(k/cols, k%cols, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// offset maps (i,j) to its position in data; ok is false out of bounds.
func (m *Dense) offset(i, j int) (int, bool) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, false
	}

	return i*m.c + j, true
}

// At returns m[i,j]; out-of-bounds indices yield ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	off, ok := m.offset(i, j)
	if !ok {
		return 0, denseErrorf(tagAt, i, j, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set writes v to m[i,j].
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf for a non-finite v (the cell is left untouched).
func (m *Dense) Set(i, j int, v float64) error {
	off, ok := m.offset(i, j)
	if !ok {
		return denseErrorf(tagSet, i, j, ErrOutOfRange)
	}
	if m.finite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(tagSet, i, j, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(tagRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Clone returns an independent deep copy.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense is Clone with the concrete return type.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) CloneDense() *Dense {
	return &Dense{
		r:      m.r,
		c:      m.c,
		data:   append([]float64(nil), m.data...),
		finite: m.finite,
	}
}

// String renders one bracketed row per line, e.g. "[0, -1]\n[-1, 0]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(rowOpen)
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(cellSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(rowClose)
	}

	return b.String()
}
