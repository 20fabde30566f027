package parser

import (
	"strconv"
	"strings"
)

// Unparse renders an AST back to source text. It is used by the CLI's
// -explain mode; it is
// not guaranteed to reproduce the original source byte-for-byte (e.g.
// redundant parentheses may be dropped), only to reproduce an
// equivalent parse.
func Unparse(e Expr) string {
	var sb strings.Builder
	unparse(&sb, e, PREC_LOWEST)
	return sb.String()
}

// unparse writes e into sb, wrapping it in parentheses only when its
// own precedence is lower than the precedence demanded by its parent.
func unparse(sb *strings.Builder, e Expr, parentPrec int) {
	switch n := e.(type) {
	case *NumberExpr:
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *ImaginaryExpr:
		sb.WriteString(strconv.FormatFloat(n.Im, 'g', -1, 64))
		sb.WriteByte('i')
	case *StringExpr:
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(n.Value, `"`, `\"`))
		sb.WriteByte('"')
	case *IdentifierExpr:
		sb.WriteString(n.Name)
	case *UnaryExpr:
		needParen := PREC_UNARY < parentPrec
		if needParen {
			sb.WriteByte('(')
		}
		sb.WriteString(n.Operator.String())
		unparse(sb, n.Operand, PREC_UNARY)
		if needParen {
			sb.WriteByte(')')
		}
	case *BinaryExpr:
		prec := precedences[n.Operator]
		needParen := prec < parentPrec
		if needParen {
			sb.WriteByte('(')
		}
		leftPrec, rightPrec := prec, prec+1
		if rightAssoc[n.Operator] {
			leftPrec, rightPrec = prec+1, prec
		}
		unparse(sb, n.Left, leftPrec)
		sb.WriteByte(' ')
		sb.WriteString(n.Operator.String())
		sb.WriteByte(' ')
		unparse(sb, n.Right, rightPrec)
		if needParen {
			sb.WriteByte(')')
		}
	case *LetExpr:
		needParen := PREC_ASSIGN < parentPrec
		if needParen {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(n.Name)
		sb.WriteString(" = ")
		unparse(sb, n.Value, PREC_ASSIGN)
		if needParen {
			sb.WriteByte(')')
		}
	case *LambdaExpr:
		needParen := PREC_ARROW < parentPrec
		if needParen {
			sb.WriteByte('(')
		}
		if len(n.Params) == 1 {
			sb.WriteString(n.Params[0])
		} else {
			sb.WriteByte('(')
			sb.WriteString(strings.Join(n.Params, ", "))
			sb.WriteByte(')')
		}
		sb.WriteString(" => ")
		unparse(sb, n.Body, PREC_ARROW-1)
		if needParen {
			sb.WriteByte(')')
		}
	case *CallExpr:
		unparse(sb, n.Callee, PREC_CALL)
		sb.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			unparse(sb, arg, PREC_LOWEST)
		}
		sb.WriteByte(')')
	case *IndexExpr:
		unparse(sb, n.Expr, PREC_CALL)
		sb.WriteByte('[')
		unparse(sb, n.Index, PREC_LOWEST)
		sb.WriteByte(']')
	case *VectorLitExpr:
		sb.WriteByte('[')
		for i, el := range n.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			unparse(sb, el, PREC_LOWEST)
		}
		sb.WriteByte(']')
	case *MatrixLitExpr:
		sb.WriteByte('[')
		for i, row := range n.Rows {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('[')
			for j, el := range row {
				if j > 0 {
					sb.WriteString(", ")
				}
				unparse(sb, el, PREC_LOWEST)
			}
			sb.WriteByte(']')
		}
		sb.WriteByte(']')
	case *ParenExpr:
		unparse(sb, n.Expr, parentPrec)
	default:
		sb.WriteString("<?>")
	}
}
