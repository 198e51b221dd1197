package sqlparse

// Parser parses SQL text into an AST. The first lexical or syntax
// violation aborts the parse; no partial AST is returned.
type Parser struct {
	lexer *Lexer
	token Token // current token
	peek  Token // lookahead token
	err   error
}

// NewParser creates a new parser for the given SQL input.
func NewParser(sql string) *Parser {
	p := &Parser{
		lexer: NewLexer(sql),
	}
	// Initialize two-token lookahead
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses sql as a sequence of statements separated by single
// semicolons. A trailing semicolon is optional; input with no statements
// at all produces an empty slice and no error, but an empty statement
// between separators is rejected.
func Parse(sql string) ([]Stmt, error) {
	p := NewParser(sql)
	stmts := p.parseStatements()
	if p.err != nil {
		return nil, p.err
	}
	return stmts, nil
}

// ParseExpr parses sql as a standalone expression. The whole input must
// be consumed.
func ParseExpr(sql string) (Expr, error) {
	p := NewParser(sql)
	expr := p.parseExpression()
	if p.err != nil {
		return nil, p.err
	}
	if !p.check(TOKEN_EOF) {
		return nil, &SyntaxError{
			Kind:     UnexpectedToken,
			Pos:      p.token.Pos,
			Expected: []TokenType{TOKEN_EOF},
			Found:    p.token,
		}
	}
	return expr, nil
}

// parseStatements parses the top-level statement list.
func (p *Parser) parseStatements() []Stmt {
	var stmts []Stmt
	for p.err == nil && !p.check(TOKEN_EOF) {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		stmts = append(stmts, stmt)
		if p.check(TOKEN_EOF) {
			break
		}
		if !p.expect(TOKEN_SEMICOLON) {
			return nil
		}
	}
	return stmts
}

// parseStatement dispatches on the first token of a statement.
func (p *Parser) parseStatement() Stmt {
	switch p.token.Type {
	case TOKEN_SELECT:
		return p.parseSelectStatement()
	case TOKEN_INSERT:
		return p.parseInsertStatement()
	case TOKEN_UPDATE:
		return p.parseUpdateStatement()
	case TOKEN_DELETE:
		return p.parseDeleteStatement()
	case TOKEN_CREATE:
		return p.parseCreateTableStatement()
	case TOKEN_DROP:
		return p.parseDropTableStatement()
	case TOKEN_ALTER:
		return p.parseAlterTableStatement()
	default:
		p.err = &SyntaxError{
			Kind:  UnknownStatement,
			Pos:   p.token.Pos,
			Found: p.token,
			Expected: []TokenType{
				TOKEN_SELECT, TOKEN_INSERT, TOKEN_UPDATE, TOKEN_DELETE,
				TOKEN_CREATE, TOKEN_DROP, TOKEN_ALTER,
			},
		}
		return nil
	}
}

// === Token Helpers ===

// nextToken advances to the next token and surfaces lexer errors.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
	if p.peek.Type == TOKEN_ILLEGAL && p.err == nil {
		p.err = p.lexer.Err()
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise records a
// syntax error and returns false.
func (p *Parser) expect(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.errExpected(t)
	return false
}

// expectIdent consumes an identifier token and returns its literal.
func (p *Parser) expectIdent() string {
	if p.check(TOKEN_IDENT) {
		name := p.token.Literal
		p.nextToken()
		return name
	}
	p.errExpected(TOKEN_IDENT)
	return ""
}

// errExpected records an UnexpectedToken error for the current token.
// Only the first error is kept.
func (p *Parser) errExpected(expected ...TokenType) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Kind:     UnexpectedToken,
		Pos:      p.token.Pos,
		Expected: expected,
		Found:    p.token,
	}
}
