package eval

import (
	"testing"

	"achronyme/types"
)

func evalSrc(t *testing.T, src string) types.Result {
	t.Helper()
	e := NewEvaluator()
	ctx := types.NewContext(1000)
	return e.EvalSource(src, ctx)
}

func TestSeedScenarioArithmeticPrecedence(t *testing.T) {
	res := evalSrc(t, "2 + 3 * 4")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "14" {
		t.Errorf("got %q, want %q", got, "14")
	}
}

func TestSeedScenarioLambdaBinding(t *testing.T) {
	e := NewEvaluator()
	ctx := types.NewContext(1000)

	res := e.EvalSource("let sq = n => n ^ 2", ctx)
	if res.IsError() {
		t.Fatalf("unexpected error binding sq: %v", res.Err)
	}

	res = e.EvalSource("sq(5)", ctx)
	if res.IsError() {
		t.Fatalf("unexpected error calling sq(5): %v", res.Err)
	}
	if got := res.Val.String(); got != "25" {
		t.Errorf("got %q, want %q", got, "25")
	}
}

func TestSeedScenarioReduce(t *testing.T) {
	res := evalSrc(t, "reduce((a,b) => a+b, 0, [1,2,3,4,5])")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "15" {
		t.Errorf("got %q, want %q", got, "15")
	}
}

func TestSeedScenarioFilter(t *testing.T) {
	res := evalSrc(t, "filter(n => n > 2, [1,2,3,4])")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "[3, 4]" {
		t.Errorf("got %q, want %q", got, "[3, 4]")
	}
}

func TestMapOverMultipleVectors(t *testing.T) {
	res := evalSrc(t, "map((a,b) => a*b, [1,2,3], [4,5,6])")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "[4, 10, 18]" {
		t.Errorf("got %q, want %q", got, "[4, 10, 18]")
	}
}

func TestPipeThreadsLeftToRight(t *testing.T) {
	res := evalSrc(t, "pipe(2, n => n + 1, n => n * 10)")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "30" {
		t.Errorf("got %q, want %q", got, "30")
	}
}

func TestComposeAppliesRightToLeft(t *testing.T) {
	res := evalSrc(t, "compose(n => n + 1, n => n * 10)(2)")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "21" {
		t.Errorf("got %q, want %q", got, "21")
	}
}

func TestUnaryMinusBindsLooserThanPower(t *testing.T) {
	res := evalSrc(t, "-2^2")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "-4" {
		t.Errorf("got %q, want %q (unary minus should bind looser than ^)", got, "-4")
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	res := evalSrc(t, "2^3^2")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "512" {
		t.Errorf("got %q, want %q (2^(3^2))", got, "512")
	}
}

func TestUnboundIdentifierIsNameError(t *testing.T) {
	res := evalSrc(t, "undefined_var")
	if res.Err != types.ErrName {
		t.Errorf("got %v, want ErrName", res.Err)
	}
}

func TestArityMismatchIsArityError(t *testing.T) {
	e := NewEvaluator()
	ctx := types.NewContext(1000)
	e.EvalSource("let add = (a,b) => a+b", ctx)
	res := e.EvalSource("add(1)", ctx)
	if res.Err != types.ErrArity {
		t.Errorf("got %v, want ErrArity", res.Err)
	}
}

func TestVectorShapeMismatchIsShapeError(t *testing.T) {
	res := evalSrc(t, "[1,2,3] + [1,2]")
	if res.Err != types.ErrShape {
		t.Errorf("got %v, want ErrShape", res.Err)
	}
}

func TestShortCircuitAndSkipsRight(t *testing.T) {
	e := NewEvaluator()
	ctx := types.NewContext(1000)
	e.EvalSource("let called = 0", ctx)
	// A let inside mark() would bind in mark's own call frame, not the
	// root, so mark's body reads an unbound name instead: running it
	// would turn the result into a NameError.
	e.EvalSource("let mark = () => unbound_marker", ctx)
	res := e.EvalSource("0 && mark()", ctx)
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "0" {
		t.Errorf("got %q, want %q", got, "0")
	}
	res = e.EvalSource("called", ctx)
	if got := res.Val.String(); got != "0" {
		t.Errorf("mark() should not have run, called = %q", got)
	}
}

func TestLetMutatesCurrentFrameAndReturnsValue(t *testing.T) {
	e := NewEvaluator()
	ctx := types.NewContext(1000)
	res := e.EvalSource("let x = 10", ctx)
	if got := res.Val.String(); got != "10" {
		t.Errorf("got %q, want %q", got, "10")
	}
	res = e.EvalSource("x", ctx)
	if got := res.Val.String(); got != "10" {
		t.Errorf("got %q, want %q", got, "10")
	}
}

func TestMatrixMultiplication(t *testing.T) {
	res := evalSrc(t, "[[1,2],[3,4]] * [[5,6],[7,8]]")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "[[19, 22], [43, 50]]" {
		t.Errorf("got %q, want %q", got, "[[19, 22], [43, 50]]")
	}
}

func TestVectorDotProductViaStar(t *testing.T) {
	res := evalSrc(t, "[1,2,3] * [4,5,6]")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "32" {
		t.Errorf("got %q, want %q", got, "32")
	}
}

func TestMatrixDivisionIsUnsupported(t *testing.T) {
	res := evalSrc(t, "[[1,2],[3,4]] / [[1,0],[0,1]]")
	if res.Err != types.ErrType {
		t.Errorf("got %v, want ErrType (matrix / left unsupported)", res.Err)
	}
}

func TestComplexLiteralArithmetic(t *testing.T) {
	res := evalSrc(t, "(2 + 3i) + (1 + 1i)")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "3 + 4i" {
		t.Errorf("got %q, want %q", got, "3 + 4i")
	}
}

func TestFFTMagOfImpulse(t *testing.T) {
	res := evalSrc(t, "fft_mag([1,0,0,0])")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "[1, 1, 1, 1]" {
		t.Errorf("got %q, want %q", got, "[1, 1, 1, 1]")
	}
}

func TestConvSeedScenario(t *testing.T) {
	res := evalSrc(t, "conv([1,2,3], [1,1])")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "[1, 3, 5, 3]" {
		t.Errorf("got %q, want %q", got, "[1, 3, 5, 3]")
	}
}

func TestParseErrorSurfacesAsErrParse(t *testing.T) {
	res := evalSrc(t, "1 + ")
	if res.Err != types.ErrParse {
		t.Errorf("got %v, want ErrParse", res.Err)
	}
}

func TestIndexExpression(t *testing.T) {
	res := evalSrc(t, "[10,20,30][1]")
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := res.Val.String(); got != "20" {
		t.Errorf("got %q, want %q", got, "20")
	}
}

func TestRecursiveLambdaDepthLimit(t *testing.T) {
	e := NewEvaluator()
	ctx := types.NewContext(5)
	e.EvalSource("let loop = n => loop(n)", ctx)
	res := e.EvalSource("loop(1)", ctx)
	if res.Err != types.ErrOverflow {
		t.Errorf("got %v, want ErrOverflow", res.Err)
	}
}
