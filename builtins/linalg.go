package builtins

import (
	"achronyme/linalg"
	"achronyme/types"
)

func (r *Registry) registerLinalg() {
	r.Register("lu", builtinLU)
	r.Register("qr", builtinQR)
	r.Register("cholesky", builtinCholesky)
	r.Register("svd", builtinSVD)
	r.Register("inverse", builtinInverse)
	r.Register("det", builtinDet)
	r.Register("power_iteration", builtinPowerIteration)
	r.Register("qr_eigenvalues", builtinQREigenvalues)
	r.Register("eigen_symmetric", builtinEigenSymmetric)
	r.Register("is_symmetric", builtinIsSymmetric)
	r.Register("is_positive_definite", builtinIsPositiveDefinite)
	r.Register("linspace", builtinLinspace)
	r.Register("identity", builtinIdentity)
}

func toMatrix(v types.Value) (types.Matrix, types.ErrorCode) {
	m, ok := v.(types.Matrix)
	if !ok {
		return types.Matrix{}, types.ErrType
	}
	return m, types.ErrNone
}

func toIterParams(args []types.Value, from int) (maxIter int, tol float64, errCode types.ErrorCode) {
	maxIterScalar, ok := args[from].(types.Scalar)
	if !ok {
		return 0, 0, types.ErrType
	}
	tolScalar, ok := args[from+1].(types.Scalar)
	if !ok {
		return 0, 0, types.ErrType
	}
	return int(maxIterScalar.Val), tolScalar.Val, types.ErrNone
}

func builtinLU(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	l, u, p, errCode := linalg.LU(a)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewTuple(l, u, p))
}

func builtinQR(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	q, r, errCode := linalg.QR(a)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewTuple(q, r))
}

func builtinCholesky(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	l, errCode := linalg.Cholesky(a)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(l)
}

func builtinSVD(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	u, s, v, errCode := linalg.SVD(a, 60, 1e-14)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewTuple(u, s, v))
}

func builtinInverse(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	inv, errCode := linalg.Inverse(a)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(inv)
}

func builtinDet(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	det, errCode := linalg.Determinant(a)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.Scalar{Val: det})
}

func builtinPowerIteration(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	maxIter, tol, errCode := toIterParams(args, 1)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	lambda, v, errCode := linalg.PowerIteration(a, maxIter, tol)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewTuple(types.Scalar{Val: lambda}, v))
}

func builtinQREigenvalues(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	maxIter, tol, errCode := toIterParams(args, 1)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	values, errCode := linalg.QREigenvalues(a, maxIter, tol)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(values)
}

func builtinEigenSymmetric(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	maxIter, tol, errCode := toIterParams(args, 1)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	values, vectors, errCode := linalg.EigenSymmetric(a, maxIter, tol)
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewTuple(values, vectors))
}

func builtinIsSymmetric(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	tol, ok := args[1].(types.Scalar)
	if !ok {
		return types.Err(types.ErrType)
	}
	return types.Ok(types.NewBoolean(linalg.IsSymmetric(a, tol.Val)))
}

func builtinIsPositiveDefinite(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	a, errCode := toMatrix(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewBoolean(linalg.IsPositiveDefinite(a, 1e-9)))
}

func builtinLinspace(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Err(types.ErrArity)
	}
	a, ok := args[0].(types.Scalar)
	if !ok {
		return types.Err(types.ErrType)
	}
	b, ok := args[1].(types.Scalar)
	if !ok {
		return types.Err(types.ErrType)
	}
	nScalar, ok := args[2].(types.Scalar)
	if !ok {
		return types.Err(types.ErrType)
	}
	n := int(nScalar.Val)
	if n <= 0 {
		return types.Ok(types.NewVector(nil))
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = a.Val
		return types.Ok(types.NewVector(out))
	}
	step := (b.Val - a.Val) / float64(n-1)
	for i := range out {
		out[i] = a.Val + step*float64(i)
	}
	return types.Ok(types.NewVector(out))
}

func builtinIdentity(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	nScalar, ok := args[0].(types.Scalar)
	if !ok {
		return types.Err(types.ErrType)
	}
	return types.Ok(types.NewIdentityMatrix(int(nScalar.Val)))
}
