package linalg

import (
	"math"

	"achronyme/types"
)

// QR computes the Householder QR decomposition A = Q*R for an m x n
// matrix with m >= n. Q is m x m and orthonormal; R is m x n and upper
// triangular, via a Householder loop generalized to the rectangular
// case (m >= n) rather than only square matrices.
func QR(a types.Matrix) (q, r types.Matrix, errCode types.ErrorCode) {
	m, n := a.Rows, a.Cols
	if m < n {
		return types.Matrix{}, types.Matrix{}, types.ErrShape
	}

	r = a.Clone()
	qMat := types.NewIdentityMatrix(m)
	v := make([]float64, m)

	for k := 0; k < n; k++ {
		norm := 0.0
		for i := k; i < m; i++ {
			x := r.At(i, k)
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}

		alpha := -math.Copysign(norm, r.At(k, k))
		for i := range v {
			v[i] = 0
		}
		for i := k; i < m; i++ {
			v[i] = r.At(i, k)
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		// Apply the reflection to R: R := R - tau*v*(v^T R).
		for j := k; j < n; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * r.At(i, j)
			}
			for i := k; i < m; i++ {
				r.Set(i, j, r.At(i, j)-tau*v[i]*sum)
			}
		}

		// Accumulate the same reflection into Q (applied on the right
		// since we're building Q = H1*H2*...*Hn incrementally).
		for j := 0; j < m; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * qMat.At(j, i)
			}
			for i := k; i < m; i++ {
				qMat.Set(j, i, qMat.At(j, i)-tau*v[i]*sum)
			}
		}
	}

	return qMat, r, types.ErrNone
}
