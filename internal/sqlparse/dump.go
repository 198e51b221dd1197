package sqlparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a statement AST as an indented tree, one node per line.
// Intended for debugging and CLI inspection, not for machine parsing.
func Dump(stmt Stmt) string {
	d := &dumper{}
	d.stmt(stmt)
	return d.buf.String()
}

type dumper struct {
	buf   strings.Builder
	depth int
}

func (d *dumper) line(format string, args ...any) {
	d.buf.WriteString(strings.Repeat("  ", d.depth))
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

// nested runs fn one indent level deeper.
func (d *dumper) nested(fn func()) {
	d.depth++
	fn()
	d.depth--
}

func (d *dumper) stmt(s Stmt) {
	switch stmt := s.(type) {
	case *SelectStmt:
		d.selectStmt(stmt)
	case *InsertStmt:
		d.line("Insert table=%s columns=%v", stmt.Table.Name, stmt.Columns)
		d.nested(func() {
			for i, row := range stmt.Rows {
				d.line("Row %d (%d values)", i, len(row))
				d.nested(func() {
					for _, e := range row {
						d.expr(e)
					}
				})
			}
			if stmt.Query != nil {
				d.selectStmt(stmt.Query)
			}
		})
	case *UpdateStmt:
		d.line("Update table=%s", stmt.Table.Name)
		d.nested(func() {
			for _, set := range stmt.Sets {
				d.line("Set %s", set.Column)
				d.nested(func() { d.expr(set.Value) })
			}
			if stmt.Where != nil {
				d.line("Where")
				d.nested(func() { d.expr(stmt.Where) })
			}
		})
	case *DeleteStmt:
		d.line("Delete table=%s", stmt.Table.Name)
		if stmt.Where != nil {
			d.nested(func() {
				d.line("Where")
				d.nested(func() { d.expr(stmt.Where) })
			})
		}
	case *CreateTableStmt:
		d.line("CreateTable table=%s ifNotExists=%t", stmt.Table.Name, stmt.IfNotExists)
		d.nested(func() {
			for _, def := range stmt.Columns {
				d.columnDef(def)
			}
		})
	case *DropTableStmt:
		d.line("DropTable table=%s ifExists=%t", stmt.Table.Name, stmt.IfExists)
	case *AlterTableStmt:
		d.line("AlterTable table=%s", stmt.Table.Name)
		d.nested(func() { d.alterAction(stmt.Action) })
	}
}

func (d *dumper) selectStmt(stmt *SelectStmt) {
	d.line("Select star=%t", stmt.Star)
	d.nested(func() {
		for _, item := range stmt.Items {
			if item.Alias != "" {
				d.line("Item alias=%s", item.Alias)
			} else {
				d.line("Item")
			}
			d.nested(func() { d.expr(item.Expr) })
		}
		if stmt.From != nil {
			d.line("From")
			d.nested(func() { d.tableRef(stmt.From) })
		}
		if stmt.Where != nil {
			d.line("Where")
			d.nested(func() { d.expr(stmt.Where) })
		}
		if len(stmt.GroupBy) > 0 {
			d.line("GroupBy")
			d.nested(func() {
				for _, e := range stmt.GroupBy {
					d.expr(e)
				}
			})
		}
		if stmt.Having != nil {
			d.line("Having")
			d.nested(func() { d.expr(stmt.Having) })
		}
		if len(stmt.OrderBy) > 0 {
			d.line("OrderBy")
			d.nested(func() {
				for _, item := range stmt.OrderBy {
					dir := "asc"
					if item.Desc {
						dir = "desc"
					}
					d.line("Order %s", dir)
					d.nested(func() { d.expr(item.Expr) })
				}
			})
		}
		if stmt.Limit != nil {
			if stmt.Limit.Offset != nil {
				d.line("Limit %d offset=%d", stmt.Limit.Count, *stmt.Limit.Offset)
			} else {
				d.line("Limit %d", stmt.Limit.Count)
			}
		}
	})
}

func (d *dumper) tableRef(ref TableRef) {
	switch t := ref.(type) {
	case *TableName:
		if t.Alias != "" {
			d.line("Table %s alias=%s", t.Name, t.Alias)
		} else {
			d.line("Table %s", t.Name)
		}
	case *JoinTable:
		if t.Type == JoinComma {
			d.line("Join comma")
		} else {
			d.line("Join %s", t.Type)
		}
		d.nested(func() {
			d.tableRef(t.Left)
			d.tableRef(t.Right)
			if t.On != nil {
				d.line("On")
				d.nested(func() { d.expr(t.On) })
			}
		})
	}
}

func (d *dumper) expr(e Expr) {
	switch expr := e.(type) {
	case *Literal:
		switch expr.Type {
		case LiteralString:
			d.line("Literal string %q", expr.Value)
		case LiteralNull:
			d.line("Literal null")
		default:
			d.line("Literal %s %s", expr.Type, expr.Value)
		}
	case *Identifier:
		d.line("Ident %s", expr.Name)
	case *ColumnRef:
		parts := []string{expr.Table, expr.Column}
		if expr.Schema != "" {
			parts = append([]string{expr.Schema}, parts...)
		}
		d.line("Column %s", strings.Join(parts, "."))
	case *BinaryExpr:
		d.line("Binary %s", expr.Op)
		d.nested(func() {
			d.expr(expr.Left)
			d.expr(expr.Right)
		})
	case *UnaryExpr:
		d.line("Unary %s", expr.Op)
		d.nested(func() { d.expr(expr.Expr) })
	case *ParenExpr:
		d.line("Paren")
		d.nested(func() { d.expr(expr.Expr) })
	case *BetweenExpr:
		d.line("Between")
		d.nested(func() {
			d.expr(expr.Expr)
			d.expr(expr.Low)
			d.expr(expr.High)
		})
	case *InExpr:
		d.line("In")
		d.nested(func() {
			d.expr(expr.Expr)
			for _, v := range expr.Values {
				d.expr(v)
			}
			if expr.Query != nil {
				d.selectStmt(expr.Query)
			}
		})
	case *LikeExpr:
		d.line("Like")
		d.nested(func() {
			d.expr(expr.Expr)
			d.expr(expr.Pattern)
		})
	case *IsNullExpr:
		d.line("IsNull not=%t", expr.Not)
		d.nested(func() { d.expr(expr.Expr) })
	case *FuncCall:
		d.line("Call %s star=%t", expr.Name, expr.Star)
		d.nested(func() {
			for _, a := range expr.Args {
				d.expr(a)
			}
		})
	case *SubqueryExpr:
		d.line("Subquery")
		d.nested(func() { d.selectStmt(expr.Select) })
	}
}

func (d *dumper) columnDef(def *ColumnDef) {
	typ := def.Type.Name
	if len(def.Type.Args) > 0 {
		args := make([]string, len(def.Type.Args))
		for i, a := range def.Type.Args {
			args[i] = strconv.FormatInt(a, 10)
		}
		typ += "(" + strings.Join(args, ",") + ")"
	}
	d.line("Column %s %s", def.Name, typ)
	d.nested(func() {
		for _, c := range def.Constraints {
			d.constraint(c)
		}
	})
}

func (d *dumper) constraint(c Constraint) {
	switch con := c.(type) {
	case *PrimaryKeyConstraint:
		d.line("PrimaryKey")
	case *NotNullConstraint:
		d.line("NotNull")
	case *NullConstraint:
		d.line("Null")
	case *UniqueConstraint:
		d.line("Unique")
	case *AutoIncrementConstraint:
		d.line("AutoIncrement")
	case *DefaultConstraint:
		d.line("Default")
		d.nested(func() { d.expr(con.Value) })
	case *CheckConstraint:
		d.line("Check")
		d.nested(func() { d.expr(con.Expr) })
	case *ReferencesConstraint:
		d.line("References %s(%s)", con.Table, con.Column)
	}
}

func (d *dumper) alterAction(a AlterAction) {
	switch act := a.(type) {
	case *AddColumnAction:
		d.line("AddColumn")
		d.nested(func() { d.columnDef(act.Def) })
	case *DropColumnAction:
		d.line("DropColumn %s", act.Name)
	case *ModifyColumnAction:
		d.line("ModifyColumn")
		d.nested(func() { d.columnDef(act.Def) })
	case *RenameToAction:
		d.line("RenameTo %s", act.NewName)
	}
}
