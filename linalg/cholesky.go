package linalg

import (
	"math"

	"achronyme/types"
)

// Cholesky computes the lower-triangular L such that A = L*L^T, failing
// with NotPositiveDefinite the moment a diagonal pivot is non-positive.
func Cholesky(a types.Matrix) (l types.Matrix, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return types.Matrix{}, types.ErrShape
	}

	lMat := types.NewZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := 0.0
			for k := 0; k < j; k++ {
				sum += lMat.At(i, k) * lMat.At(j, k)
			}
			if i == j {
				diag := a.At(i, i) - sum
				if diag <= 0 {
					return types.Matrix{}, types.ErrNotPositiveDefinite
				}
				lMat.Set(i, j, math.Sqrt(diag))
			} else {
				lMat.Set(i, j, (a.At(i, j)-sum)/lMat.At(j, j))
			}
		}
	}
	return lMat, types.ErrNone
}
