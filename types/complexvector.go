package types

import "strings"

// ComplexVector holds the complex output of an FFT (or any operation
// that must keep phase information). Internally it is a slice of
// complex128 pairs; an interleaved re/im, even-length wire encoding is
// an on-the-wire detail for a host binding to handle, not something
// this in-process representation needs to care about.
type ComplexVector struct {
	Data []complex128
}

func NewComplexVector(data []complex128) ComplexVector {
	return ComplexVector{Data: data}
}

func (c ComplexVector) Type() TypeCode { return TYPE_COMPLEX_VECTOR }

func (c ComplexVector) Len() int { return len(c.Data) }

func (c ComplexVector) String() string {
	if len(c.Data) == 0 {
		return "[]"
	}
	parts := make([]string, len(c.Data))
	for i, x := range c.Data {
		parts[i] = FromComplex128(x).String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (c ComplexVector) Equal(other Value) bool {
	o, ok := other.(ComplexVector)
	if !ok || len(c.Data) != len(o.Data) {
		return false
	}
	for i := range c.Data {
		if !FromComplex128(c.Data[i]).Equal(FromComplex128(o.Data[i])) {
			return false
		}
	}
	return true
}

func (c ComplexVector) Truthy() bool {
	return len(c.Data) > 0
}

// Clone returns a complex vector with its own backing array.
func (c ComplexVector) Clone() ComplexVector {
	out := make([]complex128, len(c.Data))
	copy(out, c.Data)
	return ComplexVector{Data: out}
}
