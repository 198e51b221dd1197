package sqlparse

// Walk traverses the AST rooted at node in depth-first order, calling fn
// for each node. If fn returns false the node's children are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *SelectStmt:
		for i := range n.Items {
			Walk(n.Items[i].Expr, fn)
		}
		if n.From != nil {
			Walk(n.From, fn)
		}
		Walk(n.Where, fn)
		for _, e := range n.GroupBy {
			Walk(e, fn)
		}
		Walk(n.Having, fn)
		for i := range n.OrderBy {
			Walk(n.OrderBy[i].Expr, fn)
		}

	case *InsertStmt:
		Walk(n.Table, fn)
		for _, row := range n.Rows {
			for _, e := range row {
				Walk(e, fn)
			}
		}
		if n.Query != nil {
			Walk(n.Query, fn)
		}

	case *UpdateStmt:
		Walk(n.Table, fn)
		for i := range n.Sets {
			Walk(n.Sets[i].Value, fn)
		}
		Walk(n.Where, fn)

	case *DeleteStmt:
		Walk(n.Table, fn)
		Walk(n.Where, fn)

	case *CreateTableStmt:
		Walk(n.Table, fn)
		for _, def := range n.Columns {
			Walk(def, fn)
		}

	case *DropTableStmt:
		Walk(n.Table, fn)

	case *AlterTableStmt:
		Walk(n.Table, fn)
		Walk(n.Action, fn)

	case *AddColumnAction:
		Walk(n.Def, fn)
	case *ModifyColumnAction:
		Walk(n.Def, fn)

	case *ColumnDef:
		for _, c := range n.Constraints {
			Walk(c, fn)
		}
	case *DefaultConstraint:
		Walk(n.Value, fn)
	case *CheckConstraint:
		Walk(n.Expr, fn)

	case *JoinTable:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
		Walk(n.On, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *UnaryExpr:
		Walk(n.Expr, fn)
	case *ParenExpr:
		Walk(n.Expr, fn)
	case *BetweenExpr:
		Walk(n.Expr, fn)
		Walk(n.Low, fn)
		Walk(n.High, fn)
	case *InExpr:
		Walk(n.Expr, fn)
		for _, e := range n.Values {
			Walk(e, fn)
		}
		if n.Query != nil {
			Walk(n.Query, fn)
		}
	case *LikeExpr:
		Walk(n.Expr, fn)
		Walk(n.Pattern, fn)
	case *IsNullExpr:
		Walk(n.Expr, fn)
	case *FuncCall:
		for _, e := range n.Args {
			Walk(e, fn)
		}
	case *SubqueryExpr:
		Walk(n.Select, fn)
	}
}

// StatementKind labels a statement for reporting.
type StatementKind string

// Statement kinds returned by Classify.
const (
	KindSelect      StatementKind = "select"
	KindInsert      StatementKind = "insert"
	KindUpdate      StatementKind = "update"
	KindDelete      StatementKind = "delete"
	KindCreateTable StatementKind = "create_table"
	KindDropTable   StatementKind = "drop_table"
	KindAlterTable  StatementKind = "alter_table"
)

// Classify returns the kind of a statement.
func Classify(stmt Stmt) StatementKind {
	switch stmt.(type) {
	case *InsertStmt:
		return KindInsert
	case *UpdateStmt:
		return KindUpdate
	case *DeleteStmt:
		return KindDelete
	case *CreateTableStmt:
		return KindCreateTable
	case *DropTableStmt:
		return KindDropTable
	case *AlterTableStmt:
		return KindAlterTable
	default:
		return KindSelect
	}
}

// CollectTableNames returns the names of all tables referenced by the
// statement, including subqueries, deduplicated in first-seen order.
func CollectTableNames(stmt Stmt) []string {
	var names []string
	seen := make(map[string]struct{})
	Walk(stmt, func(n Node) bool {
		if t, ok := n.(*TableName); ok {
			if _, dup := seen[t.Name]; !dup {
				seen[t.Name] = struct{}{}
				names = append(names, t.Name)
			}
		}
		return true
	})
	return names
}
