// SPDX-License-Identifier: MIT
// Package: matrix
//
// Shared precondition checks. Kernels call these first and wrap the result
// with their own tag, so a failure reads "QuadForm: ValidateSquare: ...".
// Composite checks run in a fixed order: nil, then shape, then values.

package matrix

import (
	"fmt"
	"math"
)

const (
	vNotNil    = "ValidateNotNil"
	vSameShape = "ValidateSameShape"
	vSquare    = "ValidateSquare"
	vVecLen    = "ValidateVecLen"
	vSymmetric = "ValidateSymmetric"
	vZeroDiag  = "ValidateZeroDiagonal"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil interface or a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if d, ok := m.(*Dense); m == nil || (ok && d == nil) {
		return validatorErrorf(vNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires two non-nil matrices of identical shape.
func ValidateSameShape(a, b Matrix) error {
	for _, m := range [2]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf(vSameShape, err)
		}
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(vSameShape, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare requires a non-nil matrix with Rows == Cols.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(vSquare, err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(vSquare, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen requires a non-nil vector of length n.
// A nil vector reports ErrNilMatrix, the package's "nil operand" sentinel.
func ValidateVecLen(x []float64, n int) error {
	switch {
	case x == nil:
		return validatorErrorf(vVecLen, ErrNilMatrix)
	case len(x) != n:
		return validatorErrorf(vVecLen, fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// normalizeTol returns |tol|, or ErrNaNInf for a non-finite tolerance.
func normalizeTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| ≤ |tol| over the strict upper
// triangle, returning ErrAsymmetry on the first violation.
//
// Complexity: Time O(n²), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(vSymmetric, err)
	}
	tol, err := normalizeTol(vSymmetric, tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // in range after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(vSymmetric, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i,i]| ≤ |tol| for every i.
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(vZeroDiag, err)
	}
	tol, err := normalizeTol(vZeroDiag, tol)
	if err != nil {
		return err
	}

	for i := 0; i < m.Rows(); i++ {
		if v, _ := m.At(i, i); math.Abs(v) > tol {
			return validatorErrorf(vZeroDiag, fmt.Errorf("(%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateHollowSymmetric is ValidateSymmetric followed by ValidateZeroDiagonal:
// exactly the shape invariant of a Hebbian weight matrix.
func ValidateHollowSymmetric(m Matrix, tol float64) error {
	if err := ValidateSymmetric(m, tol); err != nil {
		return err
	}

	return ValidateZeroDiagonal(m, tol)
}
