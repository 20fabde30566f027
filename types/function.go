package types

import "achronyme/parser"

// Function is a closure: a parameter list, a body expression, and the
// environment that was live at the point the lambda literal was
// evaluated. Lookups inside Body walk Captured first, never the
// caller's frame — this is what makes it a closure rather than a
// dynamically scoped macro.
//
// Native, when set, marks a host-composed function (the result of
// compose()) that has no source-level body: applying it calls Native
// directly instead of binding Params in a child of Captured. Params and
// Body are unused for a Native function.
type Function struct {
	Params   []string
	Body     parser.Expr
	Captured *Environment
	Native   func(args []Value) Result
}

// NewFunction builds a Function value.
func NewFunction(params []string, body parser.Expr, captured *Environment) *Function {
	return &Function{Params: params, Body: body, Captured: captured}
}

// NewNativeFunction wraps a host function (e.g. a compose() chain) as a
// Function value so it composes with map/filter/reduce/pipe/compose the
// same way a source-level lambda does.
func NewNativeFunction(arity int, native func(args []Value) Result) *Function {
	return &Function{Params: make([]string, arity), Native: native}
}

func (f *Function) Type() TypeCode { return TYPE_FUNCTION }

func (f *Function) String() string { return "function" }

// Equal treats functions as equal only by identity; structurally equal
// closures captured in different environments are not interchangeable.
func (f *Function) Equal(other Value) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	return f == o
}

func (f *Function) Truthy() bool { return true }

// Arity reports the number of parameters this closure expects.
func (f *Function) Arity() int { return len(f.Params) }
