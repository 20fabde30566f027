package types

import (
	"math"
	"strconv"
)

// Complex is a fixed re/im pair. The engine keeps Complex distinct from
// Scalar (rather than promoting everything to complex128 internally) so
// that element-wise kernels can special-case the common real-only path.
type Complex struct {
	Re, Im float64
}

func NewComplex(re, im float64) Complex { return Complex{Re: re, Im: im} }

func (c Complex) Type() TypeCode { return TYPE_COMPLEX }

// String renders "a + bi" / "a - bi", using "i" alone when a == 0, per
// the stringification rules in the external-interface spec.
func (c Complex) String() string {
	reStr := formatComponent(c.Re)
	imAbs := math.Abs(c.Im)
	imStr := formatComponent(imAbs)
	sign := "+"
	if c.Im < 0 {
		sign = "-"
	}
	if c.Re == 0 {
		if c.Im < 0 {
			return "-" + imStr + "i"
		}
		return imStr + "i"
	}
	return reStr + " " + sign + " " + imStr + "i"
}

func formatComponent(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 0) {
		if f < 0 {
			return "-Infinity"
		}
		return "Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (c Complex) Equal(other Value) bool {
	o, ok := other.(Complex)
	if !ok {
		return false
	}
	if math.IsNaN(c.Re) || math.IsNaN(c.Im) || math.IsNaN(o.Re) || math.IsNaN(o.Im) {
		return false
	}
	return c.Re == o.Re && c.Im == o.Im
}

func (c Complex) Truthy() bool {
	return c.Re != 0 || c.Im != 0
}

// Magnitude returns |c|.
func (c Complex) Magnitude() float64 {
	return math.Hypot(c.Re, c.Im)
}

// AsComplex128 converts to the standard library's complex128, for
// handing off to the FFT/linalg kernels that operate in that domain.
func (c Complex) AsComplex128() complex128 {
	return complex(c.Re, c.Im)
}

// FromComplex128 builds a Complex from a complex128.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}
