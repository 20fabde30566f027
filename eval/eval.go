// Package eval implements the tree-walking evaluator: it walks the AST
// produced by the parser package and produces types.Result values,
// consulting a builtins.Registry for transcendentals, statistics,
// windows, FFT, and linear algebra functions reachable from expression
// syntax.
package eval

import (
	"achronyme/builtins"
	"achronyme/config"
	"achronyme/parser"
	"achronyme/trace"
	"achronyme/types"
)

// Evaluator walks parser.Expr trees against a root types.Environment,
// dispatching named calls either to a user-defined closure, a built-in
// higher-order function, or an entry in the builtins registry.
type Evaluator struct {
	Root     *types.Environment
	Builtins *builtins.Registry
	Limits   *config.Limits
}

// NewEvaluator creates an evaluator with a fresh root environment, the
// default builtin registry (transcendentals, statistics, windows, FFT,
// and linear algebra), and config.Default() limits.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithLimits(config.Default())
}

// NewEvaluatorWithLimits is like NewEvaluator but lets the host override
// recursion depth and the other process-wide tunables in config.Limits —
// used by the arena/abi layer, which loads limits once at startup.
func NewEvaluatorWithLimits(limits *config.Limits) *Evaluator {
	if limits == nil {
		limits = config.Default()
	}
	return &Evaluator{
		Root:     types.NewEnvironment(),
		Builtins: builtins.NewRegistry(),
		Limits:   limits,
	}
}

// NewContext builds a Context sized to this evaluator's recursion
// budget, for callers (the abi dispatcher, the CLI) that do not want to
// know the config field name.
func (e *Evaluator) NewContext() *types.Context {
	return types.NewContext(e.Limits.MaxRecursionDepth)
}

// EvalSource parses src and evaluates it against the evaluator's root
// environment — the slow path for evaluating a full expression string
// from source. A parse failure surfaces as ErrParse.
func (e *Evaluator) EvalSource(src string, ctx *types.Context) types.Result {
	p := parser.NewParser(src)
	node, err := p.ParseProgram()
	if err != nil {
		return types.Err(types.ErrParse)
	}
	return e.Eval(node, e.Root, ctx)
}

// Eval evaluates a single AST node against env. Boolean results are
// coerced to Scalar(0|1) only at the outermost call (see CoerceBoolean),
// so nested comparisons can still short-circuit and compare as Boolean.
func (e *Evaluator) Eval(node parser.Expr, env *types.Environment, ctx *types.Context) types.Result {
	if !ctx.ConsumeDepth() {
		return types.Err(types.ErrOverflow)
	}
	return e.eval(node, env, ctx)
}

func (e *Evaluator) eval(node parser.Expr, env *types.Environment, ctx *types.Context) types.Result {
	switch n := node.(type) {
	case *parser.NumberExpr:
		return types.Ok(types.Scalar{Val: n.Value})

	case *parser.ImaginaryExpr:
		return types.Ok(types.Complex{Re: 0, Im: n.Im})

	case *parser.StringExpr:
		return types.Ok(types.NewStr(n.Value))

	case *parser.IdentifierExpr:
		if v, ok := env.Get(n.Name); ok {
			return types.Ok(v)
		}
		return types.Err(types.ErrName)

	case *parser.LetExpr:
		res := e.Eval(n.Value, env, ctx)
		if res.IsError() {
			return res
		}
		v := types.CoerceBoolean(res.Val)
		env.Set(n.Name, v)
		return types.Ok(v)

	case *parser.LambdaExpr:
		return types.Ok(types.NewFunction(n.Params, n.Body, env))

	case *parser.UnaryExpr:
		return e.evalUnary(n, env, ctx)

	case *parser.BinaryExpr:
		return e.evalBinary(n, env, ctx)

	case *parser.CallExpr:
		return e.evalCall(n, env, ctx)

	case *parser.IndexExpr:
		return e.evalIndex(n, env, ctx)

	case *parser.VectorLitExpr:
		return e.evalVectorLit(n, env, ctx)

	case *parser.MatrixLitExpr:
		return e.evalMatrixLit(n, env, ctx)

	case *parser.ParenExpr:
		return e.Eval(n.Expr, env, ctx)

	default:
		return types.Err(types.ErrType)
	}
}

func (e *Evaluator) evalUnary(n *parser.UnaryExpr, env *types.Environment, ctx *types.Context) types.Result {
	operand := e.Eval(n.Operand, env, ctx)
	if operand.IsError() {
		return operand
	}
	return applyUnary(n.Operator, operand.Val)
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpr, env *types.Environment, ctx *types.Context) types.Result {
	if n.Operator == parser.TOKEN_AND || n.Operator == parser.TOKEN_OR {
		return e.evalShortCircuit(n, env, ctx)
	}

	left := e.Eval(n.Left, env, ctx)
	if left.IsError() {
		return left
	}
	right := e.Eval(n.Right, env, ctx)
	if right.IsError() {
		return right
	}
	return applyBinary(n.Operator, left.Val, right.Val)
}

func (e *Evaluator) evalShortCircuit(n *parser.BinaryExpr, env *types.Environment, ctx *types.Context) types.Result {
	left := e.Eval(n.Left, env, ctx)
	if left.IsError() {
		return left
	}
	leftTruthy := left.Val.Truthy()

	if n.Operator == parser.TOKEN_AND && !leftTruthy {
		return types.Ok(types.NewBoolean(false))
	}
	if n.Operator == parser.TOKEN_OR && leftTruthy {
		return types.Ok(types.NewBoolean(true))
	}

	right := e.Eval(n.Right, env, ctx)
	if right.IsError() {
		return right
	}
	return types.Ok(types.NewBoolean(right.Val.Truthy()))
}

func (e *Evaluator) evalVectorLit(n *parser.VectorLitExpr, env *types.Environment, ctx *types.Context) types.Result {
	data := make([]float64, len(n.Elems))
	for i, el := range n.Elems {
		res := e.Eval(el, env, ctx)
		if res.IsError() {
			return res
		}
		s, ok := types.CoerceBoolean(res.Val).(types.Scalar)
		if !ok {
			return types.Err(types.ErrType)
		}
		data[i] = s.Val
	}
	return types.Ok(types.NewVector(data))
}

func (e *Evaluator) evalMatrixLit(n *parser.MatrixLitExpr, env *types.Environment, ctx *types.Context) types.Result {
	rows := len(n.Rows)
	if rows == 0 {
		return types.Ok(types.NewZeroMatrix(0, 0))
	}
	cols := len(n.Rows[0])
	data := make([]float64, 0, rows*cols)
	for _, row := range n.Rows {
		if len(row) != cols {
			return types.Err(types.ErrShape)
		}
		for _, el := range row {
			res := e.Eval(el, env, ctx)
			if res.IsError() {
				return res
			}
			s, ok := types.CoerceBoolean(res.Val).(types.Scalar)
			if !ok {
				return types.Err(types.ErrType)
			}
			data = append(data, s.Val)
		}
	}
	return types.Ok(types.NewMatrix(rows, cols, data))
}

func (e *Evaluator) evalIndex(n *parser.IndexExpr, env *types.Environment, ctx *types.Context) types.Result {
	target := e.Eval(n.Expr, env, ctx)
	if target.IsError() {
		return target
	}
	idx := e.Eval(n.Index, env, ctx)
	if idx.IsError() {
		return idx
	}
	idxScalar, ok := idx.Val.(types.Scalar)
	if !ok {
		return types.Err(types.ErrType)
	}
	i := int(idxScalar.Val)

	switch v := target.Val.(type) {
	case types.Vector:
		if i < 0 || i >= len(v.Data) {
			return types.Err(types.ErrShape)
		}
		return types.Ok(types.Scalar{Val: v.Data[i]})
	case types.ComplexVector:
		if i < 0 || i >= len(v.Data) {
			return types.Err(types.ErrShape)
		}
		return types.Ok(types.FromComplex128(v.Data[i]))
	case types.Matrix:
		if i < 0 || i >= v.Rows {
			return types.Err(types.ErrShape)
		}
		return types.Ok(types.NewVector(v.Row(i)))
	case types.Tuple:
		if i < 0 || i >= len(v.Elems) {
			return types.Err(types.ErrShape)
		}
		return types.Ok(v.Elems[i])
	default:
		return types.Err(types.ErrType)
	}
}
