package sqlparse

import "strconv"

// formatStmt dispatches statement formatting by type.
func (f *formatter) formatStmt(s Stmt) {
	if s == nil {
		return
	}

	switch stmt := s.(type) {
	case *SelectStmt:
		f.formatSelectStmt(stmt)
	case *InsertStmt:
		f.formatInsertStmt(stmt)
	case *UpdateStmt:
		f.formatUpdateStmt(stmt)
	case *DeleteStmt:
		f.formatDeleteStmt(stmt)
	case *CreateTableStmt:
		f.formatCreateTableStmt(stmt)
	case *DropTableStmt:
		f.formatDropTableStmt(stmt)
	case *AlterTableStmt:
		f.formatAlterTableStmt(stmt)
	}
}

func (f *formatter) formatSelectStmt(stmt *SelectStmt) {
	f.write("SELECT ")
	if stmt.Star {
		f.write("*")
	} else {
		f.commaSep(len(stmt.Items), func(i int) {
			item := stmt.Items[i]
			f.formatExpr(item.Expr)
			if item.Alias != "" {
				f.write(" AS ")
				f.write(item.Alias)
			}
		})
	}

	if stmt.From != nil {
		f.write(" FROM ")
		f.formatTableRef(stmt.From)
	}
	if stmt.Where != nil {
		f.write(" WHERE ")
		f.formatExpr(stmt.Where)
	}
	if len(stmt.GroupBy) > 0 {
		f.write(" GROUP BY ")
		f.commaSep(len(stmt.GroupBy), func(i int) {
			f.formatExpr(stmt.GroupBy[i])
		})
	}
	if stmt.Having != nil {
		f.write(" HAVING ")
		f.formatExpr(stmt.Having)
	}
	if len(stmt.OrderBy) > 0 {
		f.write(" ORDER BY ")
		f.commaSep(len(stmt.OrderBy), func(i int) {
			item := stmt.OrderBy[i]
			f.formatExpr(item.Expr)
			if item.Desc {
				f.write(" DESC")
			}
		})
	}
	if stmt.Limit != nil {
		f.write(" LIMIT ")
		f.write(strconv.FormatInt(stmt.Limit.Count, 10))
		if stmt.Limit.Offset != nil {
			f.write(" OFFSET ")
			f.write(strconv.FormatInt(*stmt.Limit.Offset, 10))
		}
	}
}

// formatTableRef formats a table reference, flattening nested joins in
// left-to-right source order.
func (f *formatter) formatTableRef(ref TableRef) {
	switch t := ref.(type) {
	case *TableName:
		f.write(t.Name)
		if t.Alias != "" {
			f.write(" AS ")
			f.write(t.Alias)
		}
	case *JoinTable:
		f.formatTableRef(t.Left)
		if t.Type == JoinComma {
			f.write(", ")
			f.formatTableRef(t.Right)
			return
		}
		f.space()
		f.write(string(t.Type))
		f.write(" JOIN ")
		f.formatTableRef(t.Right)
		f.write(" ON ")
		f.formatExpr(t.On)
	}
}

func (f *formatter) formatInsertStmt(stmt *InsertStmt) {
	f.write("INSERT INTO ")
	f.write(stmt.Table.Name)
	if len(stmt.Columns) > 0 {
		f.write(" (")
		f.commaSep(len(stmt.Columns), func(i int) {
			f.write(stmt.Columns[i])
		})
		f.write(")")
	}
	if stmt.Query != nil {
		f.space()
		f.formatSelectStmt(stmt.Query)
		return
	}
	f.write(" VALUES ")
	f.commaSep(len(stmt.Rows), func(i int) {
		f.write("(")
		f.commaSep(len(stmt.Rows[i]), func(j int) {
			f.formatExpr(stmt.Rows[i][j])
		})
		f.write(")")
	})
}

func (f *formatter) formatUpdateStmt(stmt *UpdateStmt) {
	f.write("UPDATE ")
	f.write(stmt.Table.Name)
	f.write(" SET ")
	f.commaSep(len(stmt.Sets), func(i int) {
		f.write(stmt.Sets[i].Column)
		f.write(" = ")
		f.formatExpr(stmt.Sets[i].Value)
	})
	if stmt.Where != nil {
		f.write(" WHERE ")
		f.formatExpr(stmt.Where)
	}
}

func (f *formatter) formatDeleteStmt(stmt *DeleteStmt) {
	f.write("DELETE FROM ")
	f.write(stmt.Table.Name)
	if stmt.Where != nil {
		f.write(" WHERE ")
		f.formatExpr(stmt.Where)
	}
}

func (f *formatter) formatCreateTableStmt(stmt *CreateTableStmt) {
	f.write("CREATE TABLE ")
	if stmt.IfNotExists {
		f.write("IF NOT EXISTS ")
	}
	f.write(stmt.Table.Name)
	f.write(" (")
	f.commaSep(len(stmt.Columns), func(i int) {
		f.formatColumnDef(stmt.Columns[i])
	})
	f.write(")")
}

func (f *formatter) formatColumnDef(def *ColumnDef) {
	f.write(def.Name)
	f.space()
	f.formatDataType(def.Type)
	for _, c := range def.Constraints {
		f.space()
		f.formatConstraint(c)
	}
}

func (f *formatter) formatDataType(dt DataType) {
	f.write(dt.Name)
	if len(dt.Args) > 0 {
		f.write("(")
		f.commaSep(len(dt.Args), func(i int) {
			f.write(strconv.FormatInt(dt.Args[i], 10))
		})
		f.write(")")
	}
}

func (f *formatter) formatConstraint(c Constraint) {
	switch con := c.(type) {
	case *PrimaryKeyConstraint:
		f.write("PRIMARY KEY")
	case *NotNullConstraint:
		f.write("NOT NULL")
	case *NullConstraint:
		f.write("NULL")
	case *UniqueConstraint:
		f.write("UNIQUE")
	case *AutoIncrementConstraint:
		f.write("AUTO_INCREMENT")
	case *DefaultConstraint:
		f.write("DEFAULT ")
		f.formatLiteral(con.Value)
	case *CheckConstraint:
		f.write("CHECK (")
		f.formatExpr(con.Expr)
		f.write(")")
	case *ReferencesConstraint:
		f.write("REFERENCES ")
		f.write(con.Table)
		f.write(" (")
		f.write(con.Column)
		f.write(")")
	}
}

func (f *formatter) formatAlterTableStmt(stmt *AlterTableStmt) {
	f.write("ALTER TABLE ")
	f.write(stmt.Table.Name)
	f.space()
	switch act := stmt.Action.(type) {
	case *AddColumnAction:
		f.write("ADD COLUMN ")
		f.formatColumnDef(act.Def)
	case *DropColumnAction:
		f.write("DROP COLUMN ")
		f.write(act.Name)
	case *ModifyColumnAction:
		f.write("MODIFY COLUMN ")
		f.formatColumnDef(act.Def)
	case *RenameToAction:
		f.write("RENAME TO ")
		f.write(act.NewName)
	}
}

func (f *formatter) formatDropTableStmt(stmt *DropTableStmt) {
	f.write("DROP TABLE ")
	if stmt.IfExists {
		f.write("IF EXISTS ")
	}
	f.write(stmt.Table.Name)
}
