package sqlparse

import "strings"

// formatExpr dispatches expression formatting by type.
func (f *formatter) formatExpr(e Expr) {
	if e == nil {
		return
	}

	switch expr := e.(type) {
	case *Literal:
		f.formatLiteral(expr)
	case *Identifier:
		f.write(expr.Name)
	case *ColumnRef:
		f.formatColumnRef(expr)
	case *BinaryExpr:
		f.formatBinaryExpr(expr)
	case *UnaryExpr:
		f.formatUnaryExpr(expr)
	case *ParenExpr:
		f.write("(")
		f.formatExpr(expr.Expr)
		f.write(")")
	case *BetweenExpr:
		f.formatBetweenExpr(expr)
	case *InExpr:
		f.formatInExpr(expr)
	case *LikeExpr:
		f.formatExpr(expr.Expr)
		f.write(" LIKE ")
		f.formatExpr(expr.Pattern)
	case *IsNullExpr:
		f.formatIsNullExpr(expr)
	case *FuncCall:
		f.formatFuncCall(expr)
	case *SubqueryExpr:
		f.write("(")
		f.formatStmt(expr.Select)
		f.write(")")
	}
}

func (f *formatter) formatLiteral(lit *Literal) {
	switch lit.Type {
	case LiteralString:
		f.write("'")
		f.write(lit.Value)
		f.write("'")
	case LiteralBool:
		f.write(strings.ToUpper(lit.Value))
	case LiteralNull:
		f.write("NULL")
	default:
		f.write(lit.Value)
	}
}

func (f *formatter) formatColumnRef(ref *ColumnRef) {
	if ref.Schema != "" {
		f.write(ref.Schema)
		f.write(".")
	}
	f.write(ref.Table)
	f.write(".")
	f.write(ref.Column)
}

func (f *formatter) formatBinaryExpr(expr *BinaryExpr) {
	f.formatExpr(expr.Left)
	f.space()
	f.write(expr.Op.String())
	f.space()
	f.formatExpr(expr.Right)
}

func (f *formatter) formatUnaryExpr(expr *UnaryExpr) {
	f.write(expr.Op.String())
	if expr.Op == TOKEN_NOT {
		f.space()
	} else if inner, ok := expr.Expr.(*UnaryExpr); ok && expr.Op == TOKEN_MINUS && inner.Op == TOKEN_MINUS {
		// Adjacent minus signs would lex as a line comment.
		f.space()
	}
	f.formatExpr(expr.Expr)
}

func (f *formatter) formatBetweenExpr(expr *BetweenExpr) {
	f.formatExpr(expr.Expr)
	f.write(" BETWEEN ")
	f.formatExpr(expr.Low)
	f.write(" AND ")
	f.formatExpr(expr.High)
}

func (f *formatter) formatInExpr(expr *InExpr) {
	f.formatExpr(expr.Expr)
	f.write(" IN (")
	if expr.Query != nil {
		f.formatStmt(expr.Query)
	} else {
		f.commaSep(len(expr.Values), func(i int) {
			f.formatExpr(expr.Values[i])
		})
	}
	f.write(")")
}

func (f *formatter) formatIsNullExpr(expr *IsNullExpr) {
	f.formatExpr(expr.Expr)
	if expr.Not {
		f.write(" IS NOT NULL")
	} else {
		f.write(" IS NULL")
	}
}

func (f *formatter) formatFuncCall(call *FuncCall) {
	f.write(call.Name)
	f.write("(")
	if call.Star {
		f.write("*")
	} else {
		f.commaSep(len(call.Args), func(i int) {
			f.formatExpr(call.Args[i])
		})
	}
	f.write(")")
}
