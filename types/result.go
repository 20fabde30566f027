package types

// Result unifies the outcome of evaluating an expression or running a
// kernel: either a normal Value, or a failure carrying an ErrorCode.
// There are no control-flow variants — this language has no statements
// to break out of, since `let` is itself an expression.
type Result struct {
	Val Value
	Err ErrorCode
}

// Ok creates a Result for normal execution with a value.
func Ok(v Value) Result {
	return Result{Val: v, Err: ErrNone}
}

// Err creates a Result for a failed operation.
func Err(e ErrorCode) Result {
	return Result{Err: e}
}

// IsNormal reports whether the Result carries a usable value.
func (r Result) IsNormal() bool {
	return r.Err == ErrNone
}

// IsError reports whether the Result carries a failure.
func (r Result) IsError() bool {
	return r.Err != ErrNone
}
