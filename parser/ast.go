package parser

// Node is the base interface for every AST node.
type Node interface {
	Position() Position
}

// Expr is an expression node. The language has no statements — `let` is
// itself an expression, so every top-level construct implements Expr.
type Expr interface {
	Node
	exprNode()
}

// NumberExpr is a real numeric literal (integer or float lexeme).
type NumberExpr struct {
	Pos   Position
	Value float64
}

func (e *NumberExpr) Position() Position { return e.Pos }
func (e *NumberExpr) exprNode()          {}

// ImaginaryExpr is a pure-imaginary literal such as "3i"; combined with
// a real term via BinaryExpr(+) to write a general complex literal
// ("2 + 3i").
type ImaginaryExpr struct {
	Pos Position
	Im  float64
}

func (e *ImaginaryExpr) Position() Position { return e.Pos }
func (e *ImaginaryExpr) exprNode()          {}

// StringExpr is a string literal. Strings are lexed and parsed but carry
// no arithmetic operators in the value domain.
type StringExpr struct {
	Pos   Position
	Value string
}

func (e *StringExpr) Position() Position { return e.Pos }
func (e *StringExpr) exprNode()          {}

// IdentifierExpr is a variable reference.
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) exprNode()          {}

// UnaryExpr is a prefix operator applied to one operand: -x, !x.
type UnaryExpr struct {
	Pos      Position
	Operator TokenType
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// LetExpr binds Name to the value of Value in the current frame; the
// expression's own value is Value's value.
type LetExpr struct {
	Pos   Position
	Name  string
	Value Expr
}

func (e *LetExpr) Position() Position { return e.Pos }
func (e *LetExpr) exprNode()          {}

// LambdaExpr is an anonymous function literal: params => body.
type LambdaExpr struct {
	Pos    Position
	Params []string
	Body   Expr
}

func (e *LambdaExpr) Position() Position { return e.Pos }
func (e *LambdaExpr) exprNode()          {}

// CallExpr invokes Callee (a closure, or one of the five built-in
// higher-order functions resolved by name) with Args.
type CallExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// IndexExpr is a single-element index: expr[index].
type IndexExpr struct {
	Pos   Position
	Expr  Expr
	Index Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// VectorLitExpr is a bracketed, comma-separated vector literal: [1,2,3].
type VectorLitExpr struct {
	Pos   Position
	Elems []Expr
}

func (e *VectorLitExpr) Position() Position { return e.Pos }
func (e *VectorLitExpr) exprNode()          {}

// MatrixLitExpr is a vector-of-vectors literal: [[1,2],[3,4]].
type MatrixLitExpr struct {
	Pos  Position
	Rows [][]Expr
}

func (e *MatrixLitExpr) Position() Position { return e.Pos }
func (e *MatrixLitExpr) exprNode()          {}

// ParenExpr preserves an explicit parenthesization (kept only so
// Unparse can round-trip source faithfully; evaluation just recurses
// into Expr).
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (e *ParenExpr) Position() Position { return e.Pos }
func (e *ParenExpr) exprNode()          {}
