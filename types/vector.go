package types

import "strings"

// Vector is a dense 1-D sequence of doubles, backed by a single
// contiguous slice (no nested allocations), length >= 0.
type Vector struct {
	Data []float64
}

func NewVector(data []float64) Vector {
	return Vector{Data: data}
}

func (v Vector) Type() TypeCode { return TYPE_VECTOR }

func (v Vector) Len() int { return len(v.Data) }

func (v Vector) String() string {
	if len(v.Data) == 0 {
		return "[]"
	}
	parts := make([]string, len(v.Data))
	for i, x := range v.Data {
		parts[i] = Scalar{Val: x}.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v Vector) Equal(other Value) bool {
	o, ok := other.(Vector)
	if !ok || len(v.Data) != len(o.Data) {
		return false
	}
	for i := range v.Data {
		if !(Scalar{Val: v.Data[i]}).Equal(Scalar{Val: o.Data[i]}) {
			return false
		}
	}
	return true
}

// Truthy: a vector is truthy when non-empty; an empty container is
// falsy.
func (v Vector) Truthy() bool {
	return len(v.Data) > 0
}

// Clone returns a vector with its own backing array.
func (v Vector) Clone() Vector {
	out := make([]float64, len(v.Data))
	copy(out, v.Data)
	return Vector{Data: out}
}
