package types

import "strings"

// Tuple is a fixed-size ordered group of values, used by multi-output
// kernels (lu, qr, svd, eigen_symmetric, power_iteration) to return more
// than one Value from eval() syntax. It mirrors the fast path's
// "compound handle" concept (see the external-interface table) in the
// in-process value domain: indexing a Tuple with `result[0]` selects
// its first element.
type Tuple struct {
	Elems []Value
}

func NewTuple(elems ...Value) Tuple { return Tuple{Elems: elems} }

func (t Tuple) Type() TypeCode { return TYPE_TUPLE }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Equal(other Value) bool {
	o, ok := other.(Tuple)
	if !ok || len(t.Elems) != len(o.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

func (t Tuple) Truthy() bool { return len(t.Elems) > 0 }
