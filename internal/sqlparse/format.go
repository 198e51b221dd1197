package sqlparse

import "strings"

// Format formats a statement AST back to a SQL string. The output is flat,
// keywords are uppercased, and identifiers stay bare in their original
// casing. Formatting a parsed statement and reparsing the output yields a
// structurally identical tree.
func Format(stmt Stmt) string {
	f := &formatter{}
	f.formatStmt(stmt)
	return strings.TrimSpace(f.buf.String())
}

// FormatStatements formats a statement list, one statement per line, each
// terminated with a semicolon.
func FormatStatements(stmts []Stmt) string {
	var b strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Format(stmt))
		b.WriteByte(';')
	}
	return b.String()
}

// FormatExpr formats an expression AST back to a SQL string.
func FormatExpr(expr Expr) string {
	f := &formatter{}
	f.formatExpr(expr)
	return strings.TrimSpace(f.buf.String())
}

// formatter is a simple SQL string builder. No indentation or
// pretty-printing.
type formatter struct {
	buf strings.Builder
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}

func (f *formatter) space() {
	f.buf.WriteByte(' ')
}

// commaSep writes items separated by ", ".
func (f *formatter) commaSep(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			f.write(", ")
		}
		fn(i)
	}
}
