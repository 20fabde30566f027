package builtins

import (
	"math"

	"achronyme/types"
)

// registerStatistics installs the vector reduction kernels: sum, mean,
// std (population by default, optional ddof argument), min, max, norm
// (L2), norm_l1 (L1), and dot (inner product of two vectors).
func (r *Registry) registerStatistics() {
	r.Register("sum", reduceVector(sum))
	r.Register("mean", reduceVector(mean))
	r.Register("std", builtinStd)
	r.Register("min", reduceVector(vmin))
	r.Register("max", reduceVector(vmax))
	r.Register("norm", reduceVector(norm2))
	r.Register("norm_l1", reduceVector(norm1))
	r.Register("dot", builtinDot)
}

// reduceVector lifts a []float64 -> float64 reduction to a one-argument
// Func that requires a non-empty Vector.
func reduceVector(f func([]float64) float64) Func {
	return func(args []types.Value) types.Result {
		if len(args) != 1 {
			return types.Err(types.ErrArity)
		}
		v, ok := args[0].(types.Vector)
		if !ok {
			return types.Err(types.ErrType)
		}
		if len(v.Data) == 0 {
			return types.Err(types.ErrShape)
		}
		return types.Ok(types.NewScalar(f(v.Data)))
	}
}

func sum(data []float64) float64 {
	var s float64
	for _, x := range data {
		s += x
	}
	return s
}

func mean(data []float64) float64 {
	return sum(data) / float64(len(data))
}

func vmin(data []float64) float64 {
	m := data[0]
	for _, x := range data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func vmax(data []float64) float64 {
	m := data[0]
	for _, x := range data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func norm2(data []float64) float64 {
	var s float64
	for _, x := range data {
		s += x * x
	}
	return math.Sqrt(s)
}

func norm1(data []float64) float64 {
	var s float64
	for _, x := range data {
		s += math.Abs(x)
	}
	return s
}

// builtinStd computes the population standard deviation by default
// (ddof=0); a second scalar argument overrides ddof, matching the
// optional-ddof contract in the statistics kernel spec.
func builtinStd(args []types.Value) types.Result {
	if len(args) < 1 || len(args) > 2 {
		return types.Err(types.ErrArity)
	}
	v, ok := args[0].(types.Vector)
	if !ok {
		return types.Err(types.ErrType)
	}
	n := len(v.Data)
	if n == 0 {
		return types.Err(types.ErrShape)
	}
	ddof := 0.0
	if len(args) == 2 {
		s, ok := args[1].(types.Scalar)
		if !ok {
			return types.Err(types.ErrType)
		}
		ddof = s.Val
	}
	denom := float64(n) - ddof
	if denom <= 0 {
		return types.Err(types.ErrShape)
	}
	m := mean(v.Data)
	var sq float64
	for _, x := range v.Data {
		d := x - m
		sq += d * d
	}
	return types.Ok(types.NewScalar(math.Sqrt(sq / denom)))
}

// builtinDot computes the inner product of two equal-length vectors.
func builtinDot(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Err(types.ErrArity)
	}
	a, ok1 := args[0].(types.Vector)
	b, ok2 := args[1].(types.Vector)
	if !ok1 || !ok2 {
		return types.Err(types.ErrType)
	}
	if len(a.Data) != len(b.Data) {
		return types.Err(types.ErrShape)
	}
	var s float64
	for i := range a.Data {
		s += a.Data[i] * b.Data[i]
	}
	return types.Ok(types.NewScalar(s))
}
