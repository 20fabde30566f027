package eval

import (
	"math"
	"math/cmplx"

	"achronyme/parser"
	"achronyme/types"
)

// ApplyBinary and ApplyUnary expose the operator dispatch tables to
// callers outside the evaluator's tree-walk, without going through the
// parser. The abi package's vadd/vsub/vmul/vdiv fast-path entries do not
// use them: those run the builtins registry's element-wise kernels, where
// vmul of two vectors is the element-wise product rather than the inner
// product that `*` gives here.
func ApplyBinary(op parser.TokenType, l, r types.Value) types.Result {
	return applyBinary(op, l, r)
}

func ApplyUnary(op parser.TokenType, v types.Value) types.Result {
	return applyUnary(op, v)
}

// applyUnary implements the two prefix operators: numeric negation and
// logical not.
func applyUnary(op parser.TokenType, v types.Value) types.Result {
	switch op {
	case parser.TOKEN_MINUS:
		switch x := v.(type) {
		case types.Scalar:
			return types.Ok(types.Scalar{Val: -x.Val})
		case types.Complex:
			return types.Ok(types.Complex{Re: -x.Re, Im: -x.Im})
		case types.Vector:
			out := make([]float64, len(x.Data))
			for i, d := range x.Data {
				out[i] = -d
			}
			return types.Ok(types.NewVector(out))
		case types.Matrix:
			out := make([]float64, len(x.Data))
			for i, d := range x.Data {
				out[i] = -d
			}
			return types.Ok(types.NewMatrix(x.Rows, x.Cols, out))
		default:
			return types.Err(types.ErrType)
		}
	case parser.TOKEN_NOT:
		return types.Ok(types.NewBoolean(!v.Truthy()))
	default:
		return types.Err(types.ErrType)
	}
}

// applyBinary dispatches a binary operator across the promotion rules:
// Scalar <-> Complex promotes the scalar to complex with zero imaginary
// part; a Scalar broadcasts element-wise against a Vector or Matrix, and
// a Complex against a real Vector (giving a ComplexVector); same-shape
// Vector/Matrix pairs combine element-wise except that `*` between two
// vectors is the inner product and between two matrices is matrix
// multiplication. Every other pairing, including Complex with Matrix and
// any ComplexVector operand, reports ErrType.
func applyBinary(op parser.TokenType, l, r types.Value) types.Result {
	switch op {
	case parser.TOKEN_EQ, parser.TOKEN_NE, parser.TOKEN_LT, parser.TOKEN_LE, parser.TOKEN_GT, parser.TOKEN_GE:
		return applyComparison(op, l, r)
	}

	switch lv := l.(type) {
	case types.Scalar:
		switch rv := r.(type) {
		case types.Scalar:
			return scalarOp(op, lv.Val, rv.Val)
		case types.Complex:
			return complexOp(op, complex(lv.Val, 0), complex(rv.Re, rv.Im))
		case types.Vector:
			return broadcastScalarVector(op, lv.Val, rv, true)
		case types.Matrix:
			return broadcastScalarMatrix(op, lv.Val, rv, true)
		}
	case types.Complex:
		switch rv := r.(type) {
		case types.Scalar:
			return complexOp(op, complex(lv.Re, lv.Im), complex(rv.Val, 0))
		case types.Complex:
			return complexOp(op, complex(lv.Re, lv.Im), complex(rv.Re, rv.Im))
		case types.Vector:
			return broadcastComplexVector(op, lv, rv, true)
		}
	case types.Vector:
		switch rv := r.(type) {
		case types.Scalar:
			return broadcastScalarVector(op, rv.Val, lv, false)
		case types.Complex:
			return broadcastComplexVector(op, rv, lv, false)
		case types.Vector:
			return vectorVectorOp(op, lv, rv)
		}
	case types.Matrix:
		switch rv := r.(type) {
		case types.Scalar:
			return broadcastScalarMatrix(op, rv.Val, lv, false)
		case types.Matrix:
			return matrixMatrixOp(op, lv, rv)
		}
	}
	return types.Err(types.ErrType)
}

func applyComparison(op parser.TokenType, l, r types.Value) types.Result {
	if op == parser.TOKEN_EQ {
		return types.Ok(types.NewBoolean(l.Equal(r)))
	}
	if op == parser.TOKEN_NE {
		return types.Ok(types.NewBoolean(!l.Equal(r)))
	}

	ls, lok := l.(types.Scalar)
	rs, rok := r.(types.Scalar)
	if !lok || !rok {
		return types.Err(types.ErrType)
	}
	var result bool
	switch op {
	case parser.TOKEN_LT:
		result = ls.Val < rs.Val
	case parser.TOKEN_LE:
		result = ls.Val <= rs.Val
	case parser.TOKEN_GT:
		result = ls.Val > rs.Val
	case parser.TOKEN_GE:
		result = ls.Val >= rs.Val
	default:
		return types.Err(types.ErrType)
	}
	return types.Ok(types.NewBoolean(result))
}

// scalarOp implements +, -, *, /, %, ^ between two doubles. Division by
// zero and similar conditions follow IEEE-754 (±Infinity or NaN), never
// an error — only the matrix inverse path raises SingularMatrix.
func scalarOp(op parser.TokenType, a, b float64) types.Result {
	switch op {
	case parser.TOKEN_PLUS:
		return types.Ok(types.Scalar{Val: a + b})
	case parser.TOKEN_MINUS:
		return types.Ok(types.Scalar{Val: a - b})
	case parser.TOKEN_STAR:
		return types.Ok(types.Scalar{Val: a * b})
	case parser.TOKEN_SLASH:
		return types.Ok(types.Scalar{Val: a / b})
	case parser.TOKEN_PERCENT:
		return types.Ok(types.Scalar{Val: math.Mod(a, b)})
	case parser.TOKEN_CARET:
		return types.Ok(types.Scalar{Val: math.Pow(a, b)})
	default:
		return types.Err(types.ErrType)
	}
}

func complexOp(op parser.TokenType, a, b complex128) types.Result {
	switch op {
	case parser.TOKEN_PLUS:
		return types.Ok(types.FromComplex128(a + b))
	case parser.TOKEN_MINUS:
		return types.Ok(types.FromComplex128(a - b))
	case parser.TOKEN_STAR:
		return types.Ok(types.FromComplex128(a * b))
	case parser.TOKEN_SLASH:
		return types.Ok(types.FromComplex128(a / b))
	case parser.TOKEN_CARET:
		return types.Ok(types.FromComplex128(cmplx.Pow(a, b)))
	default:
		return types.Err(types.ErrType)
	}
}

// broadcastScalarVector applies op between a scalar and every element
// of v. scalarOnLeft preserves operand order for non-commutative
// operators (-, /, %, ^).
func broadcastScalarVector(op parser.TokenType, scalar float64, v types.Vector, scalarOnLeft bool) types.Result {
	out := make([]float64, len(v.Data))
	for i, d := range v.Data {
		var res types.Result
		if scalarOnLeft {
			res = scalarOp(op, scalar, d)
		} else {
			res = scalarOp(op, d, scalar)
		}
		if res.IsError() {
			return res
		}
		out[i] = res.Val.(types.Scalar).Val
	}
	return types.Ok(types.NewVector(out))
}

func broadcastScalarMatrix(op parser.TokenType, scalar float64, m types.Matrix, scalarOnLeft bool) types.Result {
	out := make([]float64, len(m.Data))
	for i, d := range m.Data {
		var res types.Result
		if scalarOnLeft {
			res = scalarOp(op, scalar, d)
		} else {
			res = scalarOp(op, d, scalar)
		}
		if res.IsError() {
			return res
		}
		out[i] = res.Val.(types.Scalar).Val
	}
	return types.Ok(types.NewMatrix(m.Rows, m.Cols, out))
}

// broadcastComplexVector promotes every element of v to Complex and
// combines it with c, producing a ComplexVector.
func broadcastComplexVector(op parser.TokenType, c types.Complex, v types.Vector, complexOnLeft bool) types.Result {
	out := make([]complex128, len(v.Data))
	cv := complex(c.Re, c.Im)
	for i, d := range v.Data {
		var res types.Result
		if complexOnLeft {
			res = complexOp(op, cv, complex(d, 0))
		} else {
			res = complexOp(op, complex(d, 0), cv)
		}
		if res.IsError() {
			return res
		}
		out[i] = res.Val.(types.Complex).AsComplex128()
	}
	return types.Ok(types.NewComplexVector(out))
}

// vectorVectorOp implements +, -, / and % element-wise (equal length
// required), and * as the inner product (dot) rather than element-wise
// multiplication — the one operator with a non-obvious vector meaning.
func vectorVectorOp(op parser.TokenType, l, r types.Vector) types.Result {
	if op == parser.TOKEN_STAR {
		if len(l.Data) != len(r.Data) {
			return types.Err(types.ErrShape)
		}
		sum := 0.0
		for i := range l.Data {
			sum += l.Data[i] * r.Data[i]
		}
		return types.Ok(types.Scalar{Val: sum})
	}

	if len(l.Data) != len(r.Data) {
		return types.Err(types.ErrShape)
	}
	out := make([]float64, len(l.Data))
	for i := range l.Data {
		res := scalarOp(op, l.Data[i], r.Data[i])
		if res.IsError() {
			return res
		}
		out[i] = res.Val.(types.Scalar).Val
	}
	return types.Ok(types.NewVector(out))
}

// matrixMatrixOp implements +, -, % element-wise (identical dimensions
// required) and * as matrix multiplication (inner dimensions must
// match). Matrix/matrix division is left unsupported per the open
// design question — TypeMismatch rather than a silently wrong
// interpretation of A/B.
func matrixMatrixOp(op parser.TokenType, l, r types.Matrix) types.Result {
	switch op {
	case parser.TOKEN_STAR:
		if l.Cols != r.Rows {
			return types.Err(types.ErrShape)
		}
		out := types.NewZeroMatrix(l.Rows, r.Cols)
		for i := 0; i < l.Rows; i++ {
			for k := 0; k < l.Cols; k++ {
				lv := l.At(i, k)
				if lv == 0 {
					continue
				}
				for j := 0; j < r.Cols; j++ {
					out.Set(i, j, out.At(i, j)+lv*r.At(k, j))
				}
			}
		}
		return types.Ok(out)
	case parser.TOKEN_SLASH:
		return types.Err(types.ErrType)
	case parser.TOKEN_PLUS, parser.TOKEN_MINUS, parser.TOKEN_PERCENT:
		if l.Rows != r.Rows || l.Cols != r.Cols {
			return types.Err(types.ErrShape)
		}
		out := make([]float64, len(l.Data))
		for i := range l.Data {
			res := scalarOp(op, l.Data[i], r.Data[i])
			if res.IsError() {
				return res
			}
			out[i] = res.Val.(types.Scalar).Val
		}
		return types.Ok(types.NewMatrix(l.Rows, l.Cols, out))
	default:
		return types.Err(types.ErrType)
	}
}
