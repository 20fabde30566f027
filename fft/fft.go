// Package fft implements the discrete Fourier transform kernels: an
// in-place radix-2 Cooley-Tukey FFT for power-of-two lengths, a
// Bluestein chirp-z fallback for arbitrary lengths, and direct/FFT-based
// convolution built on top of both. There is no example in the
// reference corpus for this subsystem; the algorithms follow the
// standard formulations named in the design notes (see DESIGN.md).
package fft

import "math"

// NextPow2 returns the smallest power of two that is >= n. n == 0
// returns 1, matching the convention that a zero-length transform still
// has a well-defined (trivial) padded size.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Forward computes the unscaled forward DFT of data, zero-padding to
// the next power of two when data's length is not already one. The
// input is never mutated.
func Forward(data []complex128) []complex128 {
	n := NextPow2(len(data))
	buf := make([]complex128, n)
	copy(buf, data)
	if isPowerOfTwo(n) && n > 1 {
		fftRadix2(buf, false)
		return buf
	}
	if n <= 1 {
		return buf
	}
	return bluestein(buf, false)
}

// Inverse computes the inverse DFT, dividing by N. The input length is
// assumed to already be a valid transform size (the caller is expected
// to have produced it via Forward).
func Inverse(data []complex128) []complex128 {
	n := len(data)
	buf := make([]complex128, n)
	copy(buf, data)
	if n <= 1 {
		return buf
	}
	if isPowerOfTwo(n) {
		fftRadix2(buf, true)
	} else {
		buf = bluestein(buf, true)
	}
	scale := 1 / float64(n)
	for i := range buf {
		buf[i] *= complex(scale, 0)
	}
	return buf
}

// Magnitude returns |Forward(data)| — the magnitude spectrum — in one
// pass over the transform result.
func Magnitude(data []complex128) []float64 {
	spectrum := Forward(data)
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		out[i] = cAbs(c)
	}
	return out
}

func cAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// fftRadix2 performs an in-place decimation-in-time FFT on a buffer
// whose length is a power of two. inverse selects the sign of the
// twiddle exponent; the 1/N scaling is applied by the caller.
func fftRadix2(a []complex128, inverse bool) {
	n := len(a)
	bitReverse(a)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		angleStep := sign * 2 * math.Pi / float64(size)
		wStep := complex(math.Cos(angleStep), math.Sin(angleStep))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := a[start+k]
				v := a[start+k+half] * w
				a[start+k] = u + v
				a[start+k+half] = u - v
				w *= wStep
			}
		}
	}
}

// bitReverse permutes a in place so that a[i] and a[reverse(i)] swap,
// the standard precomputed-bit-reversal step ahead of the butterfly
// passes.
func bitReverse(a []complex128) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j &^= bit
		}
		j |= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
