package sqlparse

// Node is the base interface for all AST nodes. Every node records the
// source position of its leading token for diagnostics.
type Node interface {
	node()
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// TableRef is a marker interface for table reference nodes.
type TableRef interface {
	Node
	tableRefNode()
}

// Constraint is a marker interface for column constraint nodes.
type Constraint interface {
	Node
	constraintNode()
}

// AlterAction is a marker interface for ALTER TABLE action nodes.
type AlterAction interface {
	Node
	alterActionNode()
}
