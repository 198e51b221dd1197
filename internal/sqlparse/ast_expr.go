package sqlparse

// === Expression Nodes ===

// Identifier represents a bare (unqualified) identifier used as an
// expression, typically a column name.
type Identifier struct {
	Pos  Position
	Name string
}

func (*Identifier) node()     {}
func (*Identifier) exprNode() {}

// ColumnRef represents a qualified column reference: table.column or
// schema.table.column. Schema is empty for the two-part form.
type ColumnRef struct {
	Pos    Position
	Schema string
	Table  string
	Column string
}

func (*ColumnRef) node()     {}
func (*ColumnRef) exprNode() {}

// LiteralType represents the type of a literal.
type LiteralType int

// LiteralNumber and friends classify literal values.
const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
	LiteralNull
)

// String returns the literal type name.
func (t LiteralType) String() string {
	switch t {
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralNull:
		return "null"
	default:
		return "number"
	}
}

// Literal represents a literal value. Value holds the literal text for
// numbers (conversion is the consumer's job), the unquoted content for
// strings, and "true"/"false" for booleans.
type Literal struct {
	Pos   Position
	Type  LiteralType
	Value string
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}

// BinaryExpr represents a binary expression (left op right): OR, AND,
// comparisons, and arithmetic, tagged by Op. Logical and arithmetic
// operators are left-associative; comparison operators are non-associative
// and the parser rejects chains like a = b = c.
type BinaryExpr struct {
	Pos   Position
	Left  Expr
	Op    TokenType
	Right Expr
}

func (*BinaryExpr) node()     {}
func (*BinaryExpr) exprNode() {}

// UnaryExpr represents a prefix expression: NOT x, -x, +x.
type UnaryExpr struct {
	Pos  Position
	Op   TokenType
	Expr Expr
}

func (*UnaryExpr) node()     {}
func (*UnaryExpr) exprNode() {}

// BetweenExpr represents expr BETWEEN low AND high.
type BetweenExpr struct {
	Pos  Position
	Expr Expr
	Low  Expr
	High Expr
}

func (*BetweenExpr) node()     {}
func (*BetweenExpr) exprNode() {}

// InExpr represents expr IN (values) or expr IN (subquery). Exactly one of
// Values and Query is set.
type InExpr struct {
	Pos    Position
	Expr   Expr
	Values []Expr
	Query  *SelectStmt
}

func (*InExpr) node()     {}
func (*InExpr) exprNode() {}

// LikeExpr represents expr LIKE pattern.
type LikeExpr struct {
	Pos     Position
	Expr    Expr
	Pattern Expr
}

func (*LikeExpr) node()     {}
func (*LikeExpr) exprNode() {}

// IsNullExpr represents expr IS [NOT] NULL.
type IsNullExpr struct {
	Pos  Position
	Expr Expr
	Not  bool
}

func (*IsNullExpr) node()     {}
func (*IsNullExpr) exprNode() {}

// FuncCall represents a function call: name(args), name(*) or name().
type FuncCall struct {
	Pos  Position
	Name string // stored in original case
	Star bool   // COUNT(*)
	Args []Expr
}

func (*FuncCall) node()     {}
func (*FuncCall) exprNode() {}

// SubqueryExpr represents a parenthesized SELECT used as an expression
// (scalar subquery).
type SubqueryExpr struct {
	Pos    Position
	Select *SelectStmt
}

func (*SubqueryExpr) node()     {}
func (*SubqueryExpr) exprNode() {}

// ParenExpr represents a parenthesized expression. The node is kept so the
// formatter reproduces the grouping.
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (*ParenExpr) node()     {}
func (*ParenExpr) exprNode() {}
