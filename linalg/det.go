package linalg

import "achronyme/types"

// Determinant computes det(A) via LU: det(A) = (-1)^swaps * product(diag(U)).
// The swap count is recovered by comparing the permutation LU returned
// against the identity ordering, since LU doesn't expose a raw swap
// tally directly.
func Determinant(a types.Matrix) (det float64, errCode types.ErrorCode) {
	n := a.Rows
	if n != a.Cols {
		return 0, types.ErrShape
	}
	if n == 0 {
		return 1, types.ErrNone
	}

	_, u, p, errCode := LU(a)
	if errCode == types.ErrSingularMatrix {
		return 0, types.ErrNone
	}
	if errCode != types.ErrNone {
		return 0, errCode
	}

	product := 1.0
	for i := 0; i < n; i++ {
		product *= u.At(i, i)
	}

	return product * permutationSign(p), types.ErrNone
}

// permutationSign returns +1/-1 for an even/odd permutation matrix,
// computed by counting transpositions needed to sort it back to the
// identity (cycle decomposition parity).
func permutationSign(p types.Matrix) float64 {
	n := p.Rows
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if p.At(i, j) == 1 {
				perm[i] = j
				break
			}
		}
	}

	visited := make([]bool, n)
	sign := 1.0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !visited[j] {
			visited[j] = true
			j = perm[j]
			cycleLen++
		}
		if cycleLen > 0 && cycleLen%2 == 0 {
			sign = -sign
		}
	}
	return sign
}
