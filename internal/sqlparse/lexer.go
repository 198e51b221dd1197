package sqlparse

import "strings"

// Lexer tokenizes SQL input. It is a single forward pass over a byte
// buffer; positions are tracked for error reporting and AST nodes.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // 1-based line of current char
	col     int  // 1-based column of current char
	err     *LexError
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// Tokenize converts the input into the complete token sequence, ending with
// an EOF token. It is total: it either reaches EOF or returns a LexError at
// the first unrecognized character.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		if tok.Type == TOKEN_ILLEGAL {
			return nil, l.Err()
		}
		toks = append(toks, tok)
		if tok.Type == TOKEN_EOF {
			return toks, nil
		}
	}
}

// Err returns the lexical error after NextToken produced TOKEN_ILLEGAL.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// readChar advances to the next character, updating line/column tracking.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// position returns the position of the current character.
func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// NextToken returns the next token from the input. On unrecognizable input
// it returns a TOKEN_ILLEGAL token and records the LexError (see Err).
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	start := l.position()
	tok := Token{Pos: start}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
		return tok
	case '+':
		tok.Type, tok.Literal = TOKEN_PLUS, "+"
	case '-':
		tok.Type, tok.Literal = TOKEN_MINUS, "-"
	case '*':
		tok.Type, tok.Literal = TOKEN_STAR, "*"
	case '/':
		tok.Type, tok.Literal = TOKEN_SLASH, "/"
	case '%':
		tok.Type, tok.Literal = TOKEN_MOD, "%"
	case '=':
		tok.Type, tok.Literal = TOKEN_EQ, "="
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok.Type, tok.Literal = TOKEN_LE, "<="
		case '>':
			l.readChar()
			tok.Type, tok.Literal = TOKEN_NE, "<>"
		default:
			tok.Type, tok.Literal = TOKEN_LT, "<"
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type, tok.Literal = TOKEN_GE, ">="
		} else {
			tok.Type, tok.Literal = TOKEN_GT, ">"
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type, tok.Literal = TOKEN_NE, "!="
		} else {
			return l.illegal(start)
		}
	case '.':
		tok.Type, tok.Literal = TOKEN_DOT, "."
	case ',':
		tok.Type, tok.Literal = TOKEN_COMMA, ","
	case ';':
		tok.Type, tok.Literal = TOKEN_SEMICOLON, ";"
	case '(':
		tok.Type, tok.Literal = TOKEN_LPAREN, "("
	case ')':
		tok.Type, tok.Literal = TOKEN_RPAREN, ")"
	case '\'':
		lit, ok := l.readString()
		if !ok {
			l.err = &LexError{Kind: UnterminatedString, Pos: start}
			return Token{Type: TOKEN_ILLEGAL, Pos: start}
		}
		return Token{Type: TOKEN_STRING, Literal: lit, Pos: start}
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			lit := l.readIdentifier()
			// Keyword lookup happens after the full identifier is scanned:
			// the tag is normalized, the lexeme keeps the original casing.
			return Token{Type: lookupKeyword(strings.ToLower(lit)), Literal: lit, Pos: start}
		case isDigit(l.ch):
			return Token{Type: TOKEN_NUMBER, Literal: l.readNumber(), Pos: start}
		default:
			return l.illegal(start)
		}
	}

	l.readChar()
	return tok
}

// illegal records an UnexpectedCharacter error at start.
func (l *Lexer) illegal(start Position) Token {
	l.err = &LexError{Kind: UnexpectedCharacter, Pos: start, Char: l.ch}
	return Token{Type: TOKEN_ILLEGAL, Literal: string(l.ch), Pos: start}
}

// skipWhitespaceAndComments skips whitespace and -- line comments. The
// dialect has no block comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

// readString reads a single-quoted string literal. There is no escape
// processing: the literal ends at the next single quote. The content is
// copied out of the input buffer. Reports ok=false at EOF before the
// closing quote.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // skip opening quote
	start := l.pos
	for l.ch != '\'' {
		if l.ch == 0 {
			return "", false
		}
		l.readChar()
	}
	lit := strings.Clone(l.input[start:l.pos])
	l.readChar() // skip closing quote
	return lit, true
}

// readIdentifier reads an identifier: [A-Za-z_][A-Za-z0-9_]*.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads an integer or decimal literal. The literal text is
// preserved; numeric conversion happens at AST-construction time.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip .
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
