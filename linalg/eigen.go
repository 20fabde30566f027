package linalg

import (
	"math"

	"achronyme/types"
)

// EigenSymmetric diagonalizes a symmetric matrix via the classical Jacobi
// rotation method (each rotation zeroes the largest off-diagonal entry),
// stopping at either convergence or maxIter, and
// reports eigenpairs sorted by descending eigenvalue.
func EigenSymmetric(a types.Matrix, maxIter int, tol float64) (values types.Vector, vectors types.Matrix, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return types.Vector{}, types.Matrix{}, types.ErrShape
	}

	work := a.Clone()
	vecs := types.NewIdentityMatrix(n)

	for iter := 0; iter < maxIter; iter++ {
		p, q, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off := math.Abs(work.At(i, j))
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := work.At(p, p), work.At(q, q), work.At(p, q)
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := work.At(i, p), work.At(i, q)
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			work.Set(i, p, newIP)
			work.Set(p, i, newIP)
			work.Set(i, q, newIQ)
			work.Set(q, i, newIQ)
		}
		work.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		work.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		work.Set(p, q, 0)
		work.Set(q, p, 0)

		for i := 0; i < n; i++ {
			vip, viq := vecs.At(i, p), vecs.At(i, q)
			vecs.Set(i, p, c*vip-s*viq)
			vecs.Set(i, q, s*vip+c*viq)
		}
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = work.At(i, i)
	}

	order := argsortDescending(eigs)
	sortedVals := make([]float64, n)
	sortedVecs := types.NewZeroMatrix(n, n)
	for newCol, oldCol := range order {
		sortedVals[newCol] = eigs[oldCol]
		for r := 0; r < n; r++ {
			sortedVecs.Set(r, newCol, vecs.At(r, oldCol))
		}
	}

	return types.NewVector(sortedVals), sortedVecs, types.ErrNone
}

// QREigenvalues computes the eigenvalues of a symmetric matrix via the
// unshifted QR algorithm: repeatedly factor A = Q*R and reassign
// A := R*Q, which converges to (quasi-)triangular form whose diagonal
// holds the eigenvalues.
func QREigenvalues(a types.Matrix, maxIter int, tol float64) (values types.Vector, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return types.Vector{}, types.ErrShape
	}

	work := a.Clone()
	for iter := 0; iter < maxIter; iter++ {
		q, r, ec := QR(work)
		if ec != types.ErrNone {
			return types.Vector{}, ec
		}
		work = matMul(r, q)

		offDiag := 0.0
		for i := 1; i < n; i++ {
			v := math.Abs(work.At(i, i-1))
			if v > offDiag {
				offDiag = v
			}
		}
		if offDiag < tol {
			break
		}
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = work.At(i, i)
	}
	return types.NewVector(eigs), types.ErrNone
}

// PowerIteration approximates the dominant eigenpair (lambda, v) of A,
// terminating when consecutive eigenvalue estimates differ by less
// than tol or maxIter is reached.
func PowerIteration(a types.Matrix, maxIter int, tol float64) (lambda float64, v types.Vector, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return 0, types.Vector{}, types.ErrShape
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	normalize(x)

	lambdaPrev := 0.0
	for iter := 0; iter < maxIter; iter++ {
		y := matVec(a, x)
		lambda = dotSlices(x, y)
		normalize(y)
		x = y
		if iter > 0 && math.Abs(lambda-lambdaPrev) < tol {
			break
		}
		lambdaPrev = lambda
	}

	return lambda, types.NewVector(x), types.ErrNone
}

func matVec(a types.Matrix, x []float64) []float64 {
	out := make([]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		sum := 0.0
		for j := 0; j < a.Cols; j++ {
			sum += a.At(i, j) * x[j]
		}
		out[i] = sum
	}
	return out
}

func matMul(a, b types.Matrix) types.Matrix {
	out := types.NewZeroMatrix(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			v := a.At(i, k)
			if v == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				out.Set(i, j, out.At(i, j)+v*b.At(k, j))
			}
		}
	}
	return out
}

func dotSlices(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func normalize(x []float64) {
	norm := math.Sqrt(dotSlices(x, x))
	if norm == 0 {
		return
	}
	for i := range x {
		x[i] /= norm
	}
}

// argsortDescending returns the indices of vals sorted by descending
// value, using a simple insertion sort (n here is a matrix dimension,
// never large enough to need anything fancier).
func argsortDescending(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && vals[order[j-1]] < vals[order[j]] {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
	return order
}
