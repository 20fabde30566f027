package linalg

import "achronyme/types"

// Inverse computes A^-1 via the LU decomposition already built by LU,
// solving L*U*x_i = P*e_i for each column by forward then backward
// substitution against flat types.Matrix storage and the partial-pivoted
// LU above.
func Inverse(a types.Matrix) (inv types.Matrix, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return types.Matrix{}, types.ErrShape
	}

	l, u, p, errCode := LU(a)
	if errCode != types.ErrNone {
		return types.Matrix{}, errCode
	}

	inv = types.NewZeroMatrix(n, n)
	for col := 0; col < n; col++ {
		// b = P * e_col
		b := make([]float64, n)
		for i := 0; i < n; i++ {
			b[i] = p.At(i, col)
		}

		y := forwardSubstitute(l, b)
		x := backwardSubstitute(u, y)
		for i := 0; i < n; i++ {
			inv.Set(i, col, x[i])
		}
	}

	return inv, types.ErrNone
}

// forwardSubstitute solves L*y = b for unit lower-triangular L.
func forwardSubstitute(l types.Matrix, b []float64) []float64 {
	n := l.Rows
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= l.At(i, j) * y[j]
		}
		y[i] = sum / l.At(i, i)
	}
	return y
}

// backwardSubstitute solves U*x = y for upper-triangular U.
func backwardSubstitute(u types.Matrix, y []float64) []float64 {
	n := u.Rows
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= u.At(i, j) * x[j]
		}
		x[i] = sum / u.At(i, i)
	}
	return x
}

// Solve solves A*x = b for a general non-singular square A, reusing the
// same LU factorization path as Inverse without materializing A^-1.
func Solve(a types.Matrix, b []float64) (x []float64, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols || len(b) != n {
		return nil, types.ErrShape
	}

	l, u, p, errCode := LU(a)
	if errCode != types.ErrNone {
		return nil, errCode
	}

	pb := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += p.At(i, j) * b[j]
		}
		pb[i] = sum
	}

	y := forwardSubstitute(l, pb)
	return backwardSubstitute(u, y), types.ErrNone
}
