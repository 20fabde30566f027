package linalg

import (
	"math"

	"achronyme/types"
)

// IsSymmetric reports whether A equals its transpose within tol.
func IsSymmetric(a types.Matrix, tol float64) bool {
	if a.Rows != a.Cols {
		return false
	}
	for i := 0; i < a.Rows; i++ {
		for j := i + 1; j < a.Cols; j++ {
			if math.Abs(a.At(i, j)-a.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// IsPositiveDefinite reports whether A is symmetric positive definite,
// determined by attempting its Cholesky factorization.
func IsPositiveDefinite(a types.Matrix, tol float64) bool {
	if !IsSymmetric(a, tol) {
		return false
	}
	_, errCode := Cholesky(a)
	return errCode == types.ErrNone
}
