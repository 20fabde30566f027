package parser

import "testing"

func parseOrFail(t *testing.T, input string) Expr {
	t.Helper()
	p := NewParser(input)
	expr, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram(%q) error: %v", input, err)
	}
	return expr
}

func TestParserArithmeticPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"1 - 2 - 3", "1 - 2 - 3"},
		{"2 ^ 3 ^ 2", "2 ^ 3 ^ 2"},
		{"-2 ^ 2", "-2 ^ 2"},
		{"1 + 2 == 3", "1 + 2 == 3"},
		{"1 < 2 && 3 > 4", "1 < 2 && 3 > 4"},
		{"1 == 1 || 2 == 3", "1 == 1 || 2 == 3"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseOrFail(t, tt.input)
			if got := Unparse(expr); got != tt.want {
				t.Errorf("Unparse(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParserRightAssociativePower(t *testing.T) {
	expr := parseOrFail(t, "2 ^ 3 ^ 2")
	bin, ok := expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("top-level expr = %T, want *BinaryExpr", expr)
	}
	if bin.Operator != TOKEN_CARET {
		t.Fatalf("operator = %s, want ^", bin.Operator)
	}
	// Right associativity means the right child is itself "3 ^ 2", and
	// the left child is the bare literal "2".
	if _, ok := bin.Left.(*NumberExpr); !ok {
		t.Errorf("left = %T, want *NumberExpr", bin.Left)
	}
	right, ok := bin.Right.(*BinaryExpr)
	if !ok || right.Operator != TOKEN_CARET {
		t.Errorf("right = %T, want nested *BinaryExpr(^)", bin.Right)
	}
}

func TestParserLet(t *testing.T) {
	expr := parseOrFail(t, "let x = 5")
	let, ok := expr.(*LetExpr)
	if !ok {
		t.Fatalf("expr = %T, want *LetExpr", expr)
	}
	if let.Name != "x" {
		t.Errorf("name = %q, want x", let.Name)
	}
	if _, ok := let.Value.(*NumberExpr); !ok {
		t.Errorf("value = %T, want *NumberExpr", let.Value)
	}
}

func TestParserBareAssignment(t *testing.T) {
	expr := parseOrFail(t, "x = 5")
	let, ok := expr.(*LetExpr)
	if !ok {
		t.Fatalf("expr = %T, want *LetExpr", expr)
	}
	if let.Name != "x" {
		t.Errorf("name = %q, want x", let.Name)
	}
}

func TestParserLambdaSingleParam(t *testing.T) {
	expr := parseOrFail(t, "n => n ^ 2")
	lam, ok := expr.(*LambdaExpr)
	if !ok {
		t.Fatalf("expr = %T, want *LambdaExpr", expr)
	}
	if len(lam.Params) != 1 || lam.Params[0] != "n" {
		t.Errorf("params = %v, want [n]", lam.Params)
	}
}

func TestParserLambdaMultiParam(t *testing.T) {
	expr := parseOrFail(t, "(a, b) => a + b")
	lam, ok := expr.(*LambdaExpr)
	if !ok {
		t.Fatalf("expr = %T, want *LambdaExpr", expr)
	}
	if len(lam.Params) != 2 || lam.Params[0] != "a" || lam.Params[1] != "b" {
		t.Errorf("params = %v, want [a b]", lam.Params)
	}
}

func TestParserLambdaZeroParam(t *testing.T) {
	expr := parseOrFail(t, "() => 42")
	lam, ok := expr.(*LambdaExpr)
	if !ok {
		t.Fatalf("expr = %T, want *LambdaExpr", expr)
	}
	if len(lam.Params) != 0 {
		t.Errorf("params = %v, want []", lam.Params)
	}
}

func TestParserCallAndIndex(t *testing.T) {
	expr := parseOrFail(t, "sin(x)[0]")
	idx, ok := expr.(*IndexExpr)
	if !ok {
		t.Fatalf("expr = %T, want *IndexExpr", expr)
	}
	call, ok := idx.Expr.(*CallExpr)
	if !ok {
		t.Fatalf("idx.Expr = %T, want *CallExpr", idx.Expr)
	}
	callee, ok := call.Callee.(*IdentifierExpr)
	if !ok || callee.Name != "sin" {
		t.Errorf("callee = %v, want sin", call.Callee)
	}
	if len(call.Args) != 1 {
		t.Fatalf("args = %d, want 1", len(call.Args))
	}
}

func TestParserCallMultipleArgs(t *testing.T) {
	expr := parseOrFail(t, "map(v, n => n * 2)")
	call, ok := expr.(*CallExpr)
	if !ok {
		t.Fatalf("expr = %T, want *CallExpr", expr)
	}
	if len(call.Args) != 2 {
		t.Fatalf("args = %d, want 2", len(call.Args))
	}
	if _, ok := call.Args[1].(*LambdaExpr); !ok {
		t.Errorf("args[1] = %T, want *LambdaExpr", call.Args[1])
	}
}

func TestParserVectorLiteral(t *testing.T) {
	expr := parseOrFail(t, "[1, 2, 3]")
	vec, ok := expr.(*VectorLitExpr)
	if !ok {
		t.Fatalf("expr = %T, want *VectorLitExpr", expr)
	}
	if len(vec.Elems) != 3 {
		t.Errorf("elems = %d, want 3", len(vec.Elems))
	}
}

func TestParserEmptyVectorLiteral(t *testing.T) {
	expr := parseOrFail(t, "[]")
	vec, ok := expr.(*VectorLitExpr)
	if !ok {
		t.Fatalf("expr = %T, want *VectorLitExpr", expr)
	}
	if len(vec.Elems) != 0 {
		t.Errorf("elems = %d, want 0", len(vec.Elems))
	}
}

func TestParserMatrixLiteral(t *testing.T) {
	expr := parseOrFail(t, "[[1, 2], [3, 4]]")
	mat, ok := expr.(*MatrixLitExpr)
	if !ok {
		t.Fatalf("expr = %T, want *MatrixLitExpr", expr)
	}
	if len(mat.Rows) != 2 || len(mat.Rows[0]) != 2 {
		t.Errorf("rows = %v, want 2x2", mat.Rows)
	}
}

func TestParserImaginaryLiteralCombination(t *testing.T) {
	expr := parseOrFail(t, "2 + 3i")
	bin, ok := expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("expr = %T, want *BinaryExpr", expr)
	}
	if _, ok := bin.Right.(*ImaginaryExpr); !ok {
		t.Errorf("right = %T, want *ImaginaryExpr", bin.Right)
	}
}

func TestParserUnaryNot(t *testing.T) {
	expr := parseOrFail(t, "!x")
	un, ok := expr.(*UnaryExpr)
	if !ok {
		t.Fatalf("expr = %T, want *UnaryExpr", expr)
	}
	if un.Operator != TOKEN_NOT {
		t.Errorf("operator = %s, want !", un.Operator)
	}
}

func TestParserTrailingTokenIsError(t *testing.T) {
	p := NewParser("1 + 2 3")
	if _, err := p.ParseProgram(); err == nil {
		t.Error("expected error for trailing token, got nil")
	}
}

func TestParserLambdaRequiresIdentifierParams(t *testing.T) {
	p := NewParser("(1, 2) => 3")
	if _, err := p.ParseProgram(); err == nil {
		t.Error("expected error for non-identifier lambda parameter, got nil")
	}
}

func TestParserUnexpectedCommaInParens(t *testing.T) {
	p := NewParser("(1, 2)")
	if _, err := p.ParseProgram(); err == nil {
		t.Error("expected error for bare tuple expression, got nil")
	}
}
