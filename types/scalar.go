package types

import (
	"math"
	"strconv"
)

// Scalar is an IEEE-754 double, the engine's only numeric leaf type.
// Integers are not a distinct variant — a whole-number result is still a
// Scalar, formatted without a forced decimal point.
type Scalar struct {
	Val float64
}

func NewScalar(v float64) Scalar { return Scalar{Val: v} }

func (s Scalar) Type() TypeCode { return TYPE_SCALAR }

// String formats with up to 15 significant digits, matching the
// ECMAScript default used by the host binding's number-to-string path.
func (s Scalar) String() string {
	if math.IsNaN(s.Val) {
		return "NaN"
	}
	if math.IsInf(s.Val, 1) {
		return "Infinity"
	}
	if math.IsInf(s.Val, -1) {
		return "-Infinity"
	}
	out := strconv.FormatFloat(s.Val, 'g', -1, 64)
	if len(significantDigits(out)) > 15 {
		out = strconv.FormatFloat(s.Val, 'g', 15, 64)
	}
	return out
}

// significantDigits strips sign, decimal point, and exponent suffix to
// count the digits that matter for the 15-digit cap above.
func significantDigits(s string) string {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'e' || c == 'E' {
			break
		}
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	// Strip leading zeros (not significant).
	start := 0
	for start < len(digits)-1 && digits[start] == '0' {
		start++
	}
	return string(digits[start:])
}

// Equal uses exact bit equality; NaN is never equal to anything,
// including itself. Epsilon-based comparison belongs in user code.
func (s Scalar) Equal(other Value) bool {
	o, ok := other.(Scalar)
	if !ok {
		return false
	}
	if math.IsNaN(s.Val) || math.IsNaN(o.Val) {
		return false
	}
	return s.Val == o.Val
}

// Truthy follows ordinary numeric truthiness: any nonzero value is true.
func (s Scalar) Truthy() bool {
	return s.Val != 0
}
