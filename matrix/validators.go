// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape checks callers run on
//    coefficient matrices before handing them to a consumer.
//  - Return sentinels wrapped with the validator tag so call sites can match
//    with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateUpperTriangular checks that m is square and every entry strictly
// below the diagonal is within tol of zero. A negative tol is treated as its
// absolute value.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (tol not finite),
// ErrNotUpperTriangular.
// Complexity: O(n²) over the strict lower triangle.
func ValidateUpperTriangular(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateUpperTriangular", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j int
		v    float64
	)
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			v, _ = m.At(i, j) // in range after ValidateSquare
			if math.Abs(v) > tol {
				return validatorErrorf("ValidateUpperTriangular", ErrNotUpperTriangular)
			}
		}
	}

	return nil
}
