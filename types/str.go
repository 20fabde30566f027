package types

// Str is a string literal's value. It carries no arithmetic operators —
// the language has no string concatenation or formatting operators —
// it exists only so string literals evaluate to something and
// round-trip through eval()'s stringification unchanged.
type Str struct {
	Val string
}

func NewStr(s string) Str { return Str{Val: s} }

func (s Str) Type() TypeCode { return TYPE_STRING }

func (s Str) String() string { return s.Val }

func (s Str) Equal(other Value) bool {
	o, ok := other.(Str)
	return ok && o.Val == s.Val
}

func (s Str) Truthy() bool { return s.Val != "" }
