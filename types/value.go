package types

// Value is the interface every value in the engine's type domain
// implements: scalars, complex numbers, vectors, complex vectors,
// matrices, closures, and the transient Boolean produced by comparisons.
type Value interface {
	Type() TypeCode
	String() string   // textual form used by eval and error messages
	Equal(Value) bool // bit-exact equality (see Scalar.Equal)
	Truthy() bool      // used by &&, ||, ternary-free conditionals in HOFs
}

// Boolean is produced only by comparison operators. It is coerced to
// Scalar(0|1) the moment it crosses a user-visible boundary (returned
// from eval, stored in a handle, or combined with a non-boolean operand)
// — see CoerceBoolean.
type Boolean struct {
	Val bool
}

func NewBoolean(b bool) Boolean { return Boolean{Val: b} }

func (b Boolean) Type() TypeCode { return TYPE_BOOLEAN }

func (b Boolean) String() string {
	if b.Val {
		return "1"
	}
	return "0"
}

func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	if !ok {
		return false
	}
	return b.Val == o.Val
}

func (b Boolean) Truthy() bool { return b.Val }

// CoerceBoolean rewrites a Boolean into its Scalar(0|1) form and leaves
// every other Value untouched. Called at the handle-arena boundary, at
// eval's top level, and wherever a Boolean might otherwise leak into
// code that only understands the six structural variants.
func CoerceBoolean(v Value) Value {
	if b, ok := v.(Boolean); ok {
		if b.Val {
			return Scalar{Val: 1}
		}
		return Scalar{Val: 0}
	}
	return v
}
