package builtins

import "achronyme/types"

// registerElementwise installs vadd/vsub/vmul/vdiv: the fast path's
// element-wise kernels, registered under the same names the abi
// package's handle-based entry points use. These are
// deliberately distinct from the `+ - * /` operators the evaluator
// dispatches for vectors: eval() syntax treats Vector * Vector as an
// inner product (see eval/operators.go), but the fast path's vmul is
// always the element-wise (Hadamard) product, per the element-wise
// kernel contract. Registering them here also makes them reachable from
// eval() source under their own names, which is harmless and avoids a
// second, separately-tested implementation of the same broadcast rules.
func (r *Registry) registerElementwise() {
	r.Register("vadd", elementwise(func(a, b float64) float64 { return a + b }))
	r.Register("vsub", elementwise(func(a, b float64) float64 { return a - b }))
	r.Register("vmul", elementwise(func(a, b float64) float64 { return a * b }))
	r.Register("vdiv", elementwise(func(a, b float64) float64 { return a / b }))
}

// asVectorOrScalar reduces a Scalar or a length-1 Vector to a plain
// float64 plus an "is a broadcast scalar" flag, and a Vector of any
// other length to its data slice directly.
func asVectorOrScalar(v types.Value) (scalar float64, isScalar bool, data []float64, errCode types.ErrorCode) {
	switch x := v.(type) {
	case types.Scalar:
		return x.Val, true, nil, types.ErrNone
	case types.Vector:
		if len(x.Data) == 1 {
			return x.Data[0], true, nil, types.ErrNone
		}
		return 0, false, x.Data, types.ErrNone
	default:
		return 0, false, nil, types.ErrType
	}
}

// elementwise lifts a binary float64 op to a Func implementing the
// element-wise kernel contract: two equal-length vectors combine
// position-wise; a scalar (or length-1 vector) broadcasts against a
// vector of any length; mismatched lengths are a ShapeError.
func elementwise(op func(a, b float64) float64) Func {
	return func(args []types.Value) types.Result {
		if len(args) != 2 {
			return types.Err(types.ErrArity)
		}
		aScalar, aIsScalar, aData, errCode := asVectorOrScalar(args[0])
		if errCode != types.ErrNone {
			return types.Err(errCode)
		}
		bScalar, bIsScalar, bData, errCode := asVectorOrScalar(args[1])
		if errCode != types.ErrNone {
			return types.Err(errCode)
		}

		switch {
		case aIsScalar && bIsScalar:
			return types.Ok(types.NewScalar(op(aScalar, bScalar)))
		case aIsScalar && !bIsScalar:
			out := make([]float64, len(bData))
			for i, d := range bData {
				out[i] = op(aScalar, d)
			}
			return types.Ok(types.NewVector(out))
		case !aIsScalar && bIsScalar:
			out := make([]float64, len(aData))
			for i, d := range aData {
				out[i] = op(d, bScalar)
			}
			return types.Ok(types.NewVector(out))
		default:
			if len(aData) != len(bData) {
				return types.Err(types.ErrShape)
			}
			out := make([]float64, len(aData))
			for i := range aData {
				out[i] = op(aData[i], bData[i])
			}
			return types.Ok(types.NewVector(out))
		}
	}
}
