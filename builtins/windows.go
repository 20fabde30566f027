package builtins

import (
	"math"

	"achronyme/types"
)

// registerWindows installs the three symmetric window generators. Each
// takes a single scalar N (cast to int) and returns a length-N vector.
func (r *Registry) registerWindows() {
	r.Register("hann", windowFunc(hannSample))
	r.Register("hamming", windowFunc(hammingSample))
	r.Register("blackman", windowFunc(blackmanSample))
}

func windowFunc(sample func(n, i int) float64) Func {
	return func(args []types.Value) types.Result {
		if len(args) != 1 {
			return types.Err(types.ErrArity)
		}
		s, ok := args[0].(types.Scalar)
		if !ok {
			return types.Err(types.ErrType)
		}
		n := int(s.Val)
		if n <= 0 || float64(n) != s.Val {
			return types.Err(types.ErrType)
		}
		if n == 1 {
			return types.Ok(types.NewVector([]float64{1}))
		}
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = sample(n, i)
		}
		return types.Ok(types.NewVector(out))
	}
}

func hannSample(n, i int) float64 {
	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func hammingSample(n, i int) float64 {
	return 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

func blackmanSample(n, i int) float64 {
	x := 2 * math.Pi * float64(i) / float64(n-1)
	return 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
}
