// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by recurrent
// networks: matrix-vector products, single-row dot products, quadratic forms,
// in-place rank-one (outer product) accumulation, diagonal clearing, scaling
// and tolerance comparison. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Every kernel has a *Dense fast path over the flat buffer and a fixed-order
//     At/Set fallback, so results never depend on the dynamic type.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for every accumulation in this file.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opRowDot       = "RowDot"
	opQuadForm     = "QuadForm"
	opAddOuter     = "AddOuter"
	opZeroDiagonal = "ZeroDiagonal"
	opScale        = "Scale"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			y[i] = d.rowDot(i, x)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// rowDot is the flat-buffer kernel Σ_j data[i*c+j]*x[j]; callers validate.
func (m *Dense) rowDot(i int, x []float64) float64 {
	acc := ZeroSum
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if x[j] != 0 { // skip zero multiplications
			acc += m.data[base+j] * x[j]
		}
	}

	return acc
}

// RowDot computes Σ_j m[i,j]*x[j], the i-th entry of m*x, without
// materializing the whole product.
// Implementation:
//   - Stage 1: validate m non-nil, 0 ≤ i < Rows, len(x) == Cols.
//   - Stage 2: single pass over row i (flat on *Dense, At otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch (wrapped with opRowDot).
//
// Complexity:
//   - Time O(c), Space O(1).
//
// Notes:
//   - This is the "local field" of neuron i in a recurrent network.
func RowDot(m Matrix, i int, x []float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRowDot, err)
	}
	if i < 0 || i >= m.Rows() {
		return 0, matrixErrorf(opRowDot, ErrOutOfRange)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return 0, matrixErrorf(opRowDot, err)
	}

	if d, ok := m.(*Dense); ok {
		return d.rowDot(i, x), nil
	}

	acc := ZeroSum
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(i, j)
		if err != nil {
			return 0, matrixErrorf(opRowDot, err)
		}
		acc += v * x[j]
	}

	return acc, nil
}

// QuadForm computes the quadratic form xᵀ m x = Σ_i Σ_j x[i]*m[i,j]*x[j].
// Implementation:
//   - Stage 1: ValidateSquare(m); ValidateVecLen(x, n).
//   - Stage 2: accumulate row by row: Σ_i x[i] * (Σ_j m[i,j]*x[j]).
//
// Behavior highlights:
//   - Pure: neither m nor x is mutated; no allocation on the *Dense path.
//   - Values of x are not policed; NaN/Inf in x propagate into the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opQuadForm).
//
// Complexity:
//   - Time O(n²), Space O(1) on *Dense, O(n) on the fallback.
func QuadForm(m Matrix, x []float64) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	acc := ZeroSum
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			if x[i] != 0 {
				acc += x[i] * d.rowDot(i, x)
			}
		}

		return acc, nil
	}

	// Fallback: one MatVec then a dot product.
	y, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	for i := range y {
		acc += x[i] * y[i]
	}

	return acc, nil
}

// AddOuter performs the in-place rank-one update m += alpha * x xᵀ.
// Implementation:
//   - Stage 1: ValidateSquare(m); ValidateVecLen(x, n); x must be finite.
//   - Stage 2: for every (i,j) in i→j order add alpha*x[i]*x[j].
//
// Behavior highlights:
//   - Symmetric by construction: m[i,j] and m[j,i] receive the same increment.
//   - Diagonal entries receive alpha*x[i]²; clear them with ZeroDiagonal if needed.
//   - On error nothing has been written.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (wrapped with opAddOuter).
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// Notes:
//   - With alpha = 1 and bipolar x this is the Hebbian imprint of one pattern.
func AddOuter(m Matrix, x []float64, alpha float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opAddOuter, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(x, n); err != nil {
		return matrixErrorf(opAddOuter, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return matrixErrorf(opAddOuter, ErrNaNInf)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrixErrorf(opAddOuter, ErrNaNInf)
		}
	}

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var ax float64
		for i = 0; i < n; i++ {
			ax = alpha * x[i] // hoist the row factor
			base = i * n
			for j = 0; j < n; j++ {
				d.data[base+j] += ax * x[j]
			}
		}

		return nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opAddOuter, err)
			}
			if err = m.Set(i, j, v+alpha*x[i]*x[j]); err != nil {
				return matrixErrorf(opAddOuter, err)
			}
		}
	}

	return nil
}

// ZeroDiagonal overwrites m[i,i] with 0 for every i (in place).
// Idempotent: applying it twice equals applying it once.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opZeroDiagonal).
//
// Complexity:
//   - Time O(n), Space O(1).
func ZeroDiagonal(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opZeroDiagonal, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			d.data[i*d.c+i] = 0
		}

		return nil
	}

	for i := 0; i < m.Rows(); i++ {
		if err := m.Set(i, i, 0); err != nil {
			return matrixErrorf(opZeroDiagonal, err)
		}
	}

	return nil
}

// Scale returns a new Dense with elements alpha*m[i,j]; m is not mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil); allocation errors (from NewDense).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// AllClose reports whether |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]| for all (i,j).
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = normalizeTol(opAllClose, rtol); err != nil {
		return false, err
	}
	if atol, err = normalizeTol(opAllClose, atol); err != nil {
		return false, err
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path over flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
