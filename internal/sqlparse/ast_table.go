package sqlparse

// === Table Reference Nodes ===

// TableName represents a table name in FROM with an optional alias.
type TableName struct {
	Pos   Position
	Name  string
	Alias string
}

func (*TableName) node()         {}
func (*TableName) tableRefNode() {}

// JoinType represents the type of join.
type JoinType string

// JoinInner and friends classify SQL JOIN types. JoinComma is a
// comma-separated cross product in the FROM list.
const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
	JoinCross JoinType = "CROSS"
	JoinComma JoinType = ","
)

// JoinTable represents a join of two table references. Chains are
// left-associative: a JOIN b JOIN c parses as (a JOIN b) JOIN c, so Left
// holds the deeper chain. On is mandatory for keyword joins and nil for
// comma joins.
type JoinTable struct {
	Pos   Position
	Left  TableRef
	Type  JoinType
	Right TableRef
	On    Expr
}

func (*JoinTable) node()         {}
func (*JoinTable) tableRefNode() {}

// tableRefPos returns the position of a table reference's leading token.
func tableRefPos(t TableRef) Position {
	switch ref := t.(type) {
	case *TableName:
		return ref.Pos
	case *JoinTable:
		return ref.Pos
	default:
		return Position{}
	}
}
