package sqlparse

import (
	"fmt"
	"strings"
)

// LexErrorKind classifies lexical errors.
type LexErrorKind int

// UnexpectedCharacter and UnterminatedString are the only lexical failure
// modes: every other input reaches EOF.
const (
	UnexpectedCharacter LexErrorKind = iota
	UnterminatedString
)

// LexError is returned when the input contains a character sequence the
// lexer cannot tokenize. Pos points at the offending character (for
// UnterminatedString, at the opening quote).
type LexError struct {
	Kind LexErrorKind
	Pos  Position
	Char byte // offending character for UnexpectedCharacter
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnterminatedString:
		return fmt.Sprintf("%s: unterminated string literal", e.Pos)
	default:
		return fmt.Sprintf("%s: unexpected character %q", e.Pos, rune(e.Char))
	}
}

// SyntaxErrorKind classifies syntax errors.
type SyntaxErrorKind int

// UnexpectedToken and friends classify grammar violations.
const (
	UnexpectedToken SyntaxErrorKind = iota
	UnknownStatement
	OutOfOrderClause
)

// SyntaxError is returned on the first grammar violation. Parsing aborts
// immediately: no partial AST is produced. Expected lists the token kinds
// that would have been accepted at Pos (may be empty when the violation is
// structural rather than a simple token mismatch).
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Pos      Position
	Expected []TokenType
	Found    Token
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnknownStatement:
		return fmt.Sprintf("%s: %s cannot start a statement", e.Pos, describeToken(e.Found))
	case OutOfOrderClause:
		return fmt.Sprintf("%s: %s clause out of order", e.Pos, e.Found.Type)
	default:
		if len(e.Expected) == 0 {
			return fmt.Sprintf("%s: unexpected %s", e.Pos, describeToken(e.Found))
		}
		names := make([]string, len(e.Expected))
		for i, t := range e.Expected {
			names[i] = t.String()
		}
		return fmt.Sprintf("%s: unexpected %s, expected %s",
			e.Pos, describeToken(e.Found), strings.Join(names, " or "))
	}
}

// describeToken renders a token for error messages, including the lexeme
// where the type alone is not self-describing.
func describeToken(tok Token) string {
	switch tok.Type {
	case TOKEN_EOF:
		return "end of input"
	case TOKEN_IDENT, TOKEN_NUMBER:
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	case TOKEN_STRING:
		return fmt.Sprintf("string %q", tok.Literal)
	default:
		return fmt.Sprintf("%q", tok.Type.String())
	}
}
