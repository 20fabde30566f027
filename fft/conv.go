package fft

// Direct computes the convolution of a and b by direct summation:
// O(N*M), output length len(a)+len(b)-1.
func Direct(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// ViaFFT computes the same convolution as Direct by zero-padding both
// inputs to the next power of two at or above the output length,
// multiplying their spectra, and inverse-transforming.
func ViaFFT(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	outLen := len(a) + len(b) - 1
	n := NextPow2(outLen)

	ac := make([]complex128, n)
	bc := make([]complex128, n)
	for i, v := range a {
		ac[i] = complex(v, 0)
	}
	for i, v := range b {
		bc[i] = complex(v, 0)
	}

	af := ac
	bf := bc
	if n > 1 {
		fftRadix2(af, false)
		fftRadix2(bf, false)
	}
	prod := make([]complex128, n)
	for i := range prod {
		prod[i] = af[i] * bf[i]
	}
	if n > 1 {
		fftRadix2(prod, true)
		scale := 1 / float64(n)
		for i := range prod {
			prod[i] *= complex(scale, 0)
		}
	}

	out := make([]float64, outLen)
	for i := 0; i < outLen; i++ {
		out[i] = real(prod[i])
	}
	return out
}
