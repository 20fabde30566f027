package builtins

import (
	"math"

	"achronyme/fft"
	"achronyme/types"
)

func (r *Registry) registerFFT() {
	r.Register("fft", builtinFFT)
	r.Register("ifft", builtinIFFT)
	r.Register("fft_mag", builtinFFTMag)
	r.Register("conv", builtinConv)
	r.Register("conv_fft", builtinConvFFT)
}

func toComplexSlice(v types.Value) ([]complex128, types.ErrorCode) {
	switch x := v.(type) {
	case types.Vector:
		out := make([]complex128, len(x.Data))
		for i, d := range x.Data {
			out[i] = complex(d, 0)
		}
		return out, types.ErrNone
	case types.ComplexVector:
		return x.Data, types.ErrNone
	default:
		return nil, types.ErrType
	}
}

func builtinFFT(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	data, errCode := toComplexSlice(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewComplexVector(fft.Forward(data)))
}

// builtinIFFT returns a real Vector when every imaginary component is
// below 1e-10 * max|re|, otherwise NonRealResult — the strict of two
// reasonable choices for a round-trip that should be real (see
// DESIGN.md).
func builtinIFFT(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	data, errCode := toComplexSlice(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	out := fft.Inverse(data)

	maxRe := 0.0
	for _, c := range out {
		a := math.Abs(real(c))
		if a > maxRe {
			maxRe = a
		}
	}
	threshold := 1e-10 * maxRe

	out64 := make([]float64, len(out))
	for i, c := range out {
		if math.Abs(imag(c)) > threshold {
			return types.Err(types.ErrNonRealResult)
		}
		out64[i] = real(c)
	}
	return types.Ok(types.NewVector(out64))
}

func builtinFFTMag(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Err(types.ErrArity)
	}
	data, errCode := toComplexSlice(args[0])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}
	return types.Ok(types.NewVector(fft.Magnitude(data)))
}

func toRealSlice(v types.Value) ([]float64, types.ErrorCode) {
	vec, ok := v.(types.Vector)
	if !ok {
		return nil, types.ErrType
	}
	return vec.Data, types.ErrNone
}

func builtinConv(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Err(types.ErrArity)
	}
	a, errA := toRealSlice(args[0])
	b, errB := toRealSlice(args[1])
	if errA != types.ErrNone {
		return types.Err(errA)
	}
	if errB != types.ErrNone {
		return types.Err(errB)
	}
	return types.Ok(types.NewVector(fft.Direct(a, b)))
}

func builtinConvFFT(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Err(types.ErrArity)
	}
	a, errA := toRealSlice(args[0])
	b, errB := toRealSlice(args[1])
	if errA != types.ErrNone {
		return types.Err(errA)
	}
	if errB != types.ErrNone {
		return types.Err(errB)
	}
	return types.Ok(types.NewVector(fft.ViaFFT(a, b)))
}
