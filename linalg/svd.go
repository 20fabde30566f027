package linalg

import (
	"math"

	"achronyme/types"
)

// SVD computes a thin singular value decomposition A = U*S*V^T for an
// m x n matrix with m >= n, via one-sided Jacobi: repeatedly rotate
// pairs of columns of a working copy of A until they're numerically
// orthogonal, accumulating the rotations into V. Column norms of the
// converged working matrix are the singular values, and normalizing
// those columns gives U. Singular values are returned sorted
// descending, matching EigenSymmetric's ordering convention.
func SVD(a types.Matrix, maxSweeps int, tol float64) (u types.Matrix, s types.Vector, v types.Matrix, errCode types.ErrorCode) {
	m, n := a.Rows, a.Cols
	if m < n {
		return types.Matrix{}, types.Vector{}, types.Matrix{}, types.ErrShape
	}

	work := a.Clone()
	vMat := types.NewIdentityMatrix(n)

	for sweep := 0; sweep < maxSweeps; sweep++ {
		offDiag := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				colP := work.Col(p)
				colQ := work.Col(q)

				alpha := dotSlices(colP, colP)
				beta := dotSlices(colQ, colQ)
				gamma := dotSlices(colP, colQ)

				offDiag += gamma * gamma
				if math.Abs(gamma) < tol*math.Sqrt(alpha*beta+1e-300) {
					continue
				}

				zeta := (beta - alpha) / (2 * gamma)
				t := math.Copysign(1.0/(math.Abs(zeta)+math.Sqrt(1+zeta*zeta)), zeta)
				c := 1.0 / math.Sqrt(1+t*t)
				sRot := c * t

				for r := 0; r < m; r++ {
					vp, vq := work.At(r, p), work.At(r, q)
					work.Set(r, p, c*vp-sRot*vq)
					work.Set(r, q, sRot*vp+c*vq)
				}
				for r := 0; r < n; r++ {
					vp, vq := vMat.At(r, p), vMat.At(r, q)
					vMat.Set(r, p, c*vp-sRot*vq)
					vMat.Set(r, q, sRot*vp+c*vq)
				}
			}
		}
		if offDiag < tol*tol {
			break
		}
	}

	sigmas := make([]float64, n)
	uMat := types.NewZeroMatrix(m, n)
	for j := 0; j < n; j++ {
		col := work.Col(j)
		norm := math.Sqrt(dotSlices(col, col))
		sigmas[j] = norm
		if norm < 1e-300 {
			continue
		}
		for r := 0; r < m; r++ {
			uMat.Set(r, j, col[r]/norm)
		}
	}

	order := argsortDescending(sigmas)
	sortedSigmas := make([]float64, n)
	sortedU := types.NewZeroMatrix(m, n)
	sortedV := types.NewZeroMatrix(n, n)
	for newCol, oldCol := range order {
		sortedSigmas[newCol] = sigmas[oldCol]
		for r := 0; r < m; r++ {
			sortedU.Set(r, newCol, uMat.At(r, oldCol))
		}
		for r := 0; r < n; r++ {
			sortedV.Set(r, newCol, vMat.At(r, oldCol))
		}
	}

	return sortedU, types.NewVector(sortedSigmas), sortedV, types.ErrNone
}
