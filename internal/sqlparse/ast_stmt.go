package sqlparse

// === Statement Nodes ===

// SelectStmt represents a SELECT statement. Star is set for SELECT * and is
// distinct from an explicit select-item list; the two are not
// interchangeable downstream. Clauses must appear in declaration order:
// FROM, WHERE, GROUP BY, HAVING, ORDER BY, LIMIT.
type SelectStmt struct {
	Pos     Position
	Star    bool
	Items   []SelectItem
	From    TableRef // nil when there is no FROM clause
	Where   Expr
	GroupBy []Expr
	Having  Expr
	OrderBy []OrderItem
	Limit   *LimitClause
}

func (*SelectStmt) node()     {}
func (*SelectStmt) stmtNode() {}

// SelectItem represents one item of an explicit select list: an expression
// with an optional AS alias.
type SelectItem struct {
	Pos   Position
	Expr  Expr
	Alias string
}

// OrderItem represents an item in ORDER BY.
type OrderItem struct {
	Pos  Position
	Expr Expr
	Desc bool
}

// LimitClause represents LIMIT count [OFFSET offset].
type LimitClause struct {
	Pos    Position
	Count  int64
	Offset *int64
}

// === DML Statement Nodes ===

// InsertStmt represents an INSERT statement. Exactly one of Rows and Query
// is set. Each row keeps its own element count; arity checking against
// Columns is deferred to a semantic pass.
type InsertStmt struct {
	Pos     Position
	Table   *TableName
	Columns []string
	Rows    [][]Expr
	Query   *SelectStmt
}

func (*InsertStmt) node()     {}
func (*InsertStmt) stmtNode() {}

// SetClause represents column = value in UPDATE.
type SetClause struct {
	Pos    Position
	Column string
	Value  Expr
}

// UpdateStmt represents an UPDATE statement. A nil Where is syntactically
// legal and means "all rows" downstream.
type UpdateStmt struct {
	Pos   Position
	Table *TableName
	Sets  []SetClause
	Where Expr
}

func (*UpdateStmt) node()     {}
func (*UpdateStmt) stmtNode() {}

// DeleteStmt represents a DELETE statement.
type DeleteStmt struct {
	Pos   Position
	Table *TableName
	Where Expr
}

func (*DeleteStmt) node()     {}
func (*DeleteStmt) stmtNode() {}

// === DDL Statement Nodes ===

// DataType represents a column data type with optional numeric parameters:
// VARCHAR(n) and CHAR(n) require one, DECIMAL takes optional (precision[,
// scale]), all other types take none. Name is the normalized keyword.
type DataType struct {
	Pos  Position
	Name string
	Args []int64
}

// ColumnDef represents a column definition in CREATE TABLE or ALTER TABLE.
// Constraints may repeat and combine; contradictory combinations (NULL NOT
// NULL) are grammatically legal and left to a semantic pass.
type ColumnDef struct {
	Pos         Position
	Name        string
	Type        DataType
	Constraints []Constraint
}

func (*ColumnDef) node() {}

// CreateTableStmt represents CREATE TABLE [IF NOT EXISTS] name (columns).
type CreateTableStmt struct {
	Pos         Position
	IfNotExists bool
	Table       *TableName
	Columns     []*ColumnDef
}

func (*CreateTableStmt) node()     {}
func (*CreateTableStmt) stmtNode() {}

// DropTableStmt represents DROP TABLE [IF EXISTS] name.
type DropTableStmt struct {
	Pos      Position
	IfExists bool
	Table    *TableName
}

func (*DropTableStmt) node()     {}
func (*DropTableStmt) stmtNode() {}

// AlterTableStmt represents ALTER TABLE name action.
type AlterTableStmt struct {
	Pos    Position
	Table  *TableName
	Action AlterAction
}

func (*AlterTableStmt) node()     {}
func (*AlterTableStmt) stmtNode() {}

// AddColumnAction represents ADD COLUMN col_def.
type AddColumnAction struct {
	Pos Position
	Def *ColumnDef
}

func (*AddColumnAction) node()            {}
func (*AddColumnAction) alterActionNode() {}

// DropColumnAction represents DROP COLUMN name.
type DropColumnAction struct {
	Pos  Position
	Name string
}

func (*DropColumnAction) node()            {}
func (*DropColumnAction) alterActionNode() {}

// ModifyColumnAction represents MODIFY COLUMN col_def.
type ModifyColumnAction struct {
	Pos Position
	Def *ColumnDef
}

func (*ModifyColumnAction) node()            {}
func (*ModifyColumnAction) alterActionNode() {}

// RenameToAction represents RENAME TO name.
type RenameToAction struct {
	Pos     Position
	NewName string
}

func (*RenameToAction) node()            {}
func (*RenameToAction) alterActionNode() {}

// === Column Constraint Nodes ===

// PrimaryKeyConstraint represents PRIMARY KEY.
type PrimaryKeyConstraint struct {
	Pos Position
}

func (*PrimaryKeyConstraint) node()           {}
func (*PrimaryKeyConstraint) constraintNode() {}

// NotNullConstraint represents NOT NULL.
type NotNullConstraint struct {
	Pos Position
}

func (*NotNullConstraint) node()           {}
func (*NotNullConstraint) constraintNode() {}

// NullConstraint represents an explicit NULL.
type NullConstraint struct {
	Pos Position
}

func (*NullConstraint) node()           {}
func (*NullConstraint) constraintNode() {}

// UniqueConstraint represents UNIQUE.
type UniqueConstraint struct {
	Pos Position
}

func (*UniqueConstraint) node()           {}
func (*UniqueConstraint) constraintNode() {}

// AutoIncrementConstraint represents AUTO_INCREMENT.
type AutoIncrementConstraint struct {
	Pos Position
}

func (*AutoIncrementConstraint) node()           {}
func (*AutoIncrementConstraint) constraintNode() {}

// DefaultConstraint represents DEFAULT literal.
type DefaultConstraint struct {
	Pos   Position
	Value *Literal
}

func (*DefaultConstraint) node()           {}
func (*DefaultConstraint) constraintNode() {}

// CheckConstraint represents CHECK (expr).
type CheckConstraint struct {
	Pos  Position
	Expr Expr
}

func (*CheckConstraint) node()           {}
func (*CheckConstraint) constraintNode() {}

// ReferencesConstraint represents REFERENCES table (column).
type ReferencesConstraint struct {
	Pos    Position
	Table  string
	Column string
}

func (*ReferencesConstraint) node()           {}
func (*ReferencesConstraint) constraintNode() {}
