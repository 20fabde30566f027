package fft

import "math"

// bluestein computes the DFT of a, whose length n need not be a power
// of two, via the chirp-z transform: it rewrites the DFT as a
// convolution and evaluates that convolution with a power-of-two FFT of
// size >= 2n-1, per the design's algorithm choice.
func bluestein(a []complex128, inverse bool) []complex128 {
	n := len(a)
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	// Precompute the chirp w[k] = exp(sign * i * pi * k^2 / n).
	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		// k^2 mod 2n avoids loss of precision for large k.
		kk := (int64(k) * int64(k)) % int64(2*n)
		angle := sign * math.Pi * float64(kk) / float64(n)
		chirp[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	m := NextPow2(2*n - 1)
	af := make([]complex128, m)
	bf := make([]complex128, m)
	for k := 0; k < n; k++ {
		af[k] = a[k] * chirp[k]
	}
	bf[0] = conj(chirp[0])
	for k := 1; k < n; k++ {
		c := conj(chirp[k])
		bf[k] = c
		bf[m-k] = c
	}

	fftRadix2(af, false)
	fftRadix2(bf, false)
	for i := range af {
		af[i] *= bf[i]
	}
	fftRadix2(af, true)
	scale := 1 / float64(m)

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = af[k] * complex(scale, 0) * chirp[k]
	}
	return out
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
