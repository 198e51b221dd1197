// Package sqlparse provides a SQL lexer, parser, AST, and formatter for a
// compact SQL dialect: SELECT, INSERT, UPDATE, DELETE, CREATE TABLE,
// DROP TABLE, and ALTER TABLE, with a full expression sub-grammar.
//
// The package is a pure front-end: Parse verifies grammatical
// well-formedness and produces a typed AST for a downstream planner or
// interpreter. It never checks semantic properties (existence of tables,
// constraint consistency, value ranges). Parsing is a single forward pass
// with no shared state, so concurrent callers may parse independently.
package sqlparse

import "fmt"

// Position is a location in the source text. Line and Column are 1-based,
// Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as "line L, column C".
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// TokenType represents the type of a lexical token.
type TokenType int

// TOKEN_EOF and friends enumerate all token types produced by the lexer.
const (
	TOKEN_EOF     TokenType = iota // end of input
	TOKEN_ILLEGAL                  // unrecognized input, see Lexer.Err

	TOKEN_IDENT  // identifier
	TOKEN_NUMBER // 123, 45.67
	TOKEN_STRING // 'hello'

	TOKEN_PLUS      // +
	TOKEN_MINUS     // -
	TOKEN_STAR      // *
	TOKEN_SLASH     // /
	TOKEN_MOD       // %
	TOKEN_EQ        // =
	TOKEN_NE        // != or <>
	TOKEN_LT        // <
	TOKEN_GT        // >
	TOKEN_LE        // <=
	TOKEN_GE        // >=
	TOKEN_DOT       // .
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )

	// TOKEN_ADD and below are SQL keywords (alphabetical).
	TOKEN_ADD
	TOKEN_ALTER
	TOKEN_AND
	TOKEN_AS
	TOKEN_ASC
	TOKEN_AUTO_INCREMENT
	TOKEN_BETWEEN
	TOKEN_BY
	TOKEN_CHECK
	TOKEN_COLUMN
	TOKEN_CREATE
	TOKEN_CROSS
	TOKEN_DEFAULT
	TOKEN_DELETE
	TOKEN_DESC
	TOKEN_DROP
	TOKEN_EXISTS
	TOKEN_FALSE
	TOKEN_FROM
	TOKEN_FULL
	TOKEN_GROUP
	TOKEN_HAVING
	TOKEN_IF
	TOKEN_IN
	TOKEN_INNER
	TOKEN_INSERT
	TOKEN_INTO
	TOKEN_IS
	TOKEN_JOIN
	TOKEN_KEY
	TOKEN_LEFT
	TOKEN_LIKE
	TOKEN_LIMIT
	TOKEN_MODIFY
	TOKEN_NOT
	TOKEN_NULL
	TOKEN_OFFSET
	TOKEN_ON
	TOKEN_OR
	TOKEN_ORDER
	TOKEN_PRIMARY
	TOKEN_REFERENCES
	TOKEN_RENAME
	TOKEN_RIGHT
	TOKEN_SELECT
	TOKEN_SET
	TOKEN_TABLE
	TOKEN_TO
	TOKEN_TRUE
	TOKEN_UNIQUE
	TOKEN_UPDATE
	TOKEN_VALUES
	TOKEN_WHERE

	// TOKEN_BIGINT and below are data type keywords.
	TOKEN_BIGINT
	TOKEN_BLOB
	TOKEN_BOOL
	TOKEN_BOOLEAN
	TOKEN_CHAR
	TOKEN_DATE
	TOKEN_DATETIME
	TOKEN_DECIMAL
	TOKEN_DOUBLE
	TOKEN_FLOAT
	TOKEN_INT
	TOKEN_INTEGER
	TOKEN_REAL
	TOKEN_SMALLINT
	TOKEN_TEXT
	TOKEN_TIME
	TOKEN_TIMESTAMP
	TOKEN_VARCHAR
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_IDENT:   "IDENT",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_STRING:  "STRING",

	TOKEN_PLUS:      "+",
	TOKEN_MINUS:     "-",
	TOKEN_STAR:      "*",
	TOKEN_SLASH:     "/",
	TOKEN_MOD:       "%",
	TOKEN_EQ:        "=",
	TOKEN_NE:        "<>",
	TOKEN_LT:        "<",
	TOKEN_GT:        ">",
	TOKEN_LE:        "<=",
	TOKEN_GE:        ">=",
	TOKEN_DOT:       ".",
	TOKEN_COMMA:     ",",
	TOKEN_SEMICOLON: ";",
	TOKEN_LPAREN:    "(",
	TOKEN_RPAREN:    ")",

	TOKEN_ADD:            "ADD",
	TOKEN_ALTER:          "ALTER",
	TOKEN_AND:            "AND",
	TOKEN_AS:             "AS",
	TOKEN_ASC:            "ASC",
	TOKEN_AUTO_INCREMENT: "AUTO_INCREMENT",
	TOKEN_BETWEEN:        "BETWEEN",
	TOKEN_BY:             "BY",
	TOKEN_CHECK:          "CHECK",
	TOKEN_COLUMN:         "COLUMN",
	TOKEN_CREATE:         "CREATE",
	TOKEN_CROSS:          "CROSS",
	TOKEN_DEFAULT:        "DEFAULT",
	TOKEN_DELETE:         "DELETE",
	TOKEN_DESC:           "DESC",
	TOKEN_DROP:           "DROP",
	TOKEN_EXISTS:         "EXISTS",
	TOKEN_FALSE:          "FALSE",
	TOKEN_FROM:           "FROM",
	TOKEN_FULL:           "FULL",
	TOKEN_GROUP:          "GROUP",
	TOKEN_HAVING:         "HAVING",
	TOKEN_IF:             "IF",
	TOKEN_IN:             "IN",
	TOKEN_INNER:          "INNER",
	TOKEN_INSERT:         "INSERT",
	TOKEN_INTO:           "INTO",
	TOKEN_IS:             "IS",
	TOKEN_JOIN:           "JOIN",
	TOKEN_KEY:            "KEY",
	TOKEN_LEFT:           "LEFT",
	TOKEN_LIKE:           "LIKE",
	TOKEN_LIMIT:          "LIMIT",
	TOKEN_MODIFY:         "MODIFY",
	TOKEN_NOT:            "NOT",
	TOKEN_NULL:           "NULL",
	TOKEN_OFFSET:         "OFFSET",
	TOKEN_ON:             "ON",
	TOKEN_OR:             "OR",
	TOKEN_ORDER:          "ORDER",
	TOKEN_PRIMARY:        "PRIMARY",
	TOKEN_REFERENCES:     "REFERENCES",
	TOKEN_RENAME:         "RENAME",
	TOKEN_RIGHT:          "RIGHT",
	TOKEN_SELECT:         "SELECT",
	TOKEN_SET:            "SET",
	TOKEN_TABLE:          "TABLE",
	TOKEN_TO:             "TO",
	TOKEN_TRUE:           "TRUE",
	TOKEN_UNIQUE:         "UNIQUE",
	TOKEN_UPDATE:         "UPDATE",
	TOKEN_VALUES:         "VALUES",
	TOKEN_WHERE:          "WHERE",

	TOKEN_BIGINT:    "BIGINT",
	TOKEN_BLOB:      "BLOB",
	TOKEN_BOOL:      "BOOL",
	TOKEN_BOOLEAN:   "BOOLEAN",
	TOKEN_CHAR:      "CHAR",
	TOKEN_DATE:      "DATE",
	TOKEN_DATETIME:  "DATETIME",
	TOKEN_DECIMAL:   "DECIMAL",
	TOKEN_DOUBLE:    "DOUBLE",
	TOKEN_FLOAT:     "FLOAT",
	TOKEN_INT:       "INT",
	TOKEN_INTEGER:   "INTEGER",
	TOKEN_REAL:      "REAL",
	TOKEN_SMALLINT:  "SMALLINT",
	TOKEN_TEXT:      "TEXT",
	TOKEN_TIME:      "TIME",
	TOKEN_TIMESTAMP: "TIMESTAMP",
	TOKEN_VARCHAR:   "VARCHAR",
}

// keywords maps lowercase keyword strings to their token types. Keywords are
// matched case-insensitively against a fully scanned identifier (longest
// match, never prefix-matched).
var keywords = map[string]TokenType{
	"add":            TOKEN_ADD,
	"alter":          TOKEN_ALTER,
	"and":            TOKEN_AND,
	"as":             TOKEN_AS,
	"asc":            TOKEN_ASC,
	"auto_increment": TOKEN_AUTO_INCREMENT,
	"between":        TOKEN_BETWEEN,
	"by":             TOKEN_BY,
	"check":          TOKEN_CHECK,
	"column":         TOKEN_COLUMN,
	"create":         TOKEN_CREATE,
	"cross":          TOKEN_CROSS,
	"default":        TOKEN_DEFAULT,
	"delete":         TOKEN_DELETE,
	"desc":           TOKEN_DESC,
	"drop":           TOKEN_DROP,
	"exists":         TOKEN_EXISTS,
	"false":          TOKEN_FALSE,
	"from":           TOKEN_FROM,
	"full":           TOKEN_FULL,
	"group":          TOKEN_GROUP,
	"having":         TOKEN_HAVING,
	"if":             TOKEN_IF,
	"in":             TOKEN_IN,
	"inner":          TOKEN_INNER,
	"insert":         TOKEN_INSERT,
	"into":           TOKEN_INTO,
	"is":             TOKEN_IS,
	"join":           TOKEN_JOIN,
	"key":            TOKEN_KEY,
	"left":           TOKEN_LEFT,
	"like":           TOKEN_LIKE,
	"limit":          TOKEN_LIMIT,
	"modify":         TOKEN_MODIFY,
	"not":            TOKEN_NOT,
	"null":           TOKEN_NULL,
	"offset":         TOKEN_OFFSET,
	"on":             TOKEN_ON,
	"or":             TOKEN_OR,
	"order":          TOKEN_ORDER,
	"primary":        TOKEN_PRIMARY,
	"references":     TOKEN_REFERENCES,
	"rename":         TOKEN_RENAME,
	"right":          TOKEN_RIGHT,
	"select":         TOKEN_SELECT,
	"set":            TOKEN_SET,
	"table":          TOKEN_TABLE,
	"to":             TOKEN_TO,
	"true":           TOKEN_TRUE,
	"unique":         TOKEN_UNIQUE,
	"update":         TOKEN_UPDATE,
	"values":         TOKEN_VALUES,
	"where":          TOKEN_WHERE,

	"bigint":    TOKEN_BIGINT,
	"blob":      TOKEN_BLOB,
	"bool":      TOKEN_BOOL,
	"boolean":   TOKEN_BOOLEAN,
	"char":      TOKEN_CHAR,
	"date":      TOKEN_DATE,
	"datetime":  TOKEN_DATETIME,
	"decimal":   TOKEN_DECIMAL,
	"double":    TOKEN_DOUBLE,
	"float":     TOKEN_FLOAT,
	"int":       TOKEN_INT,
	"integer":   TOKEN_INTEGER,
	"real":      TOKEN_REAL,
	"smallint":  TOKEN_SMALLINT,
	"text":      TOKEN_TEXT,
	"time":      TOKEN_TIME,
	"timestamp": TOKEN_TIMESTAMP,
	"varchar":   TOKEN_VARCHAR,
}

// lookupKeyword returns the token type for the given lowercase identifier.
// Returns TOKEN_IDENT if it's not a keyword.
func lookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

// Token represents a lexical token with its literal value and source
// position. Keyword tokens preserve the original casing in Literal; the
// Type tag is what the grammar compares, so SELECT, Select, and select are
// equal at the grammar level.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Precedence constants for operator precedence parsing (Pratt parser).
// Comparison is non-associative: at most one comparison form per level.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 1
	PrecedenceAnd        = 2
	PrecedenceNot        = 3 // prefix NOT, right-associative
	PrecedenceComparison = 4 // =, <>, <, >, <=, >=, BETWEEN, IN, LIKE, IS
	PrecedenceAddition   = 5 // +, -
	PrecedenceMultiply   = 6 // *, /, %
	PrecedenceUnary      = 7 // prefix -, +
)
