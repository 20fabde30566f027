package builtins

import (
	"math"

	"achronyme/types"
)

// registerTranscendentals installs the unary element-wise kernels:
// sin, cos, tan, exp, ln, sqrt, abs. Each accepts a Scalar or Vector
// (applied element-wise); abs additionally accepts Complex, returning
// its magnitude, per the element-wise kernel contract.
func (r *Registry) registerTranscendentals() {
	r.Register("sin", unary(math.Sin))
	r.Register("cos", unary(math.Cos))
	r.Register("tan", unary(math.Tan))
	r.Register("exp", unary(math.Exp))
	r.Register("ln", unaryChecked(func(x float64) (float64, bool) {
		if x <= 0 {
			return math.NaN(), true
		}
		return math.Log(x), true
	}))
	r.Register("sqrt", unaryChecked(func(x float64) (float64, bool) {
		if x < 0 {
			return math.NaN(), true
		}
		return math.Sqrt(x), true
	}))
	r.Register("abs", builtinAbs)
}

// unary lifts a plain float64 -> float64 function to a Func operating
// element-wise over Scalar or Vector.
func unary(f func(float64) float64) Func {
	return unaryChecked(func(x float64) (float64, bool) { return f(x), true })
}

// unaryChecked is like unary but f reports whether its result is
// well-formed; false currently never surfaces (every registered
// transcendental always returns a float, possibly NaN) but keeps the
// door open for an operator that legitimately fails on some inputs.
func unaryChecked(f func(float64) (float64, bool)) Func {
	return func(args []types.Value) types.Result {
		if len(args) != 1 {
			return types.Err(types.ErrArity)
		}
		switch v := args[0].(type) {
		case types.Scalar:
			y, ok := f(v.Val)
			if !ok {
				return types.Err(types.ErrType)
			}
			return types.Ok(types.NewScalar(y))
		case types.Vector:
			out := make([]float64, len(v.Data))
			for i, x := range v.Data {
				y, ok := f(x)
				if !ok {
					return types.Err(types.ErrType)
				}
				out[i] = y
			}
			return types.Ok(types.NewVector(out))
		default:
			return types.Err(types.ErrType)
		}
	}
}

// builtinAbs handles the one kernel with a Complex-specific rule: abs
// of a complex value is its magnitude, not an element-wise transform of
// its components.
func builtinAbs(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	switch v := args[0].(type) {
	case types.Scalar:
		return types.Ok(types.NewScalar(math.Abs(v.Val)))
	case types.Complex:
		return types.Ok(types.NewScalar(v.Magnitude()))
	case types.Vector:
		out := make([]float64, len(v.Data))
		for i, x := range v.Data {
			out[i] = math.Abs(x)
		}
		return types.Ok(types.NewVector(out))
	default:
		return types.Err(types.ErrType)
	}
}
