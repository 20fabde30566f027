// Package linalg implements the dense linear-algebra kernels: LU with
// partial pivoting, Householder QR, Cholesky, one-sided Jacobi SVD,
// symmetric eigendecomposition (classical Jacobi and power iteration), and
// the inverse/determinant/predicate routines built on top of them. The
// algorithms are grounded on katalvlaran/lvlath's matrix package (same
// Doolittle/Householder/Jacobi formulations), adapted from its
// Matrix-interface + *Dense fast path to operate directly on
// achronyme/types.Matrix's flat row-major storage, and extended with
// the partial pivoting and SPD/singularity thresholds this engine's
// kernels require.
package linalg

import (
	"math"

	"achronyme/types"
)

// PivotThreshold is the minimum pivot magnitude LU/inverse/det will
// accept before reporting SingularMatrix, scaled by the matrix's
// largest entry.
const PivotThreshold = 1e-12

// LU decomposes A into P*A = L*U via Doolittle elimination with partial
// pivoting (the row of maximum absolute value in the current column is
// swapped to the pivot position). Returns L (unit lower triangular), U (upper triangular),
// and P (the permutation matrix such that P*A = L*U).
func LU(a types.Matrix) (l, u, p types.Matrix, err types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return types.Matrix{}, types.Matrix{}, types.Matrix{}, types.ErrShape
	}

	work := a.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	lMat := types.NewZeroMatrix(n, n)
	threshold := PivotThreshold * maxAbsOrOne(a)

	for k := 0; k < n; k++ {
		// Partial pivoting: find the row with the largest |value| in column k.
		maxRow, maxVal := k, math.Abs(work.At(k, k))
		for i := k + 1; i < n; i++ {
			v := math.Abs(work.At(i, k))
			if v > maxVal {
				maxVal, maxRow = v, i
			}
		}
		if maxVal < threshold {
			return types.Matrix{}, types.Matrix{}, types.Matrix{}, types.ErrSingularMatrix
		}
		if maxRow != k {
			swapRows(&work, k, maxRow)
			swapRows(&lMat, k, maxRow)
			perm[k], perm[maxRow] = perm[maxRow], perm[k]
		}

		lMat.Set(k, k, 1)
		pivot := work.At(k, k)
		for i := k + 1; i < n; i++ {
			factor := work.At(i, k) / pivot
			lMat.Set(i, k, factor)
			for j := k; j < n; j++ {
				work.Set(i, j, work.At(i, j)-factor*work.At(k, j))
			}
		}
	}

	pMat := types.NewZeroMatrix(n, n)
	for i, src := range perm {
		pMat.Set(i, src, 1)
	}

	return lMat, work, pMat, types.ErrNone
}

func swapRows(m *types.Matrix, r1, r2 int) {
	if r1 == r2 {
		return
	}
	for c := 0; c < m.Cols; c++ {
		m.Data[r1*m.Cols+c], m.Data[r2*m.Cols+c] = m.Data[r2*m.Cols+c], m.Data[r1*m.Cols+c]
	}
}

func maxAbsOrOne(m types.Matrix) float64 {
	v := m.MaxAbs()
	if v == 0 {
		return 1
	}
	return v
}
