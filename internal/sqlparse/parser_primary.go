package sqlparse

// Primary expression parsing: literals, identifiers, column references,
// function calls, and parenthesized expressions or subqueries.

// parsePrimary parses a primary expression.
func (p *Parser) parsePrimary() Expr {
	switch p.token.Type {
	case TOKEN_NUMBER:
		lit := &Literal{Pos: p.token.Pos, Type: LiteralNumber, Value: p.token.Literal}
		p.nextToken()
		return lit

	case TOKEN_STRING:
		lit := &Literal{Pos: p.token.Pos, Type: LiteralString, Value: p.token.Literal}
		p.nextToken()
		return lit

	case TOKEN_TRUE:
		lit := &Literal{Pos: p.token.Pos, Type: LiteralBool, Value: "true"}
		p.nextToken()
		return lit

	case TOKEN_FALSE:
		lit := &Literal{Pos: p.token.Pos, Type: LiteralBool, Value: "false"}
		p.nextToken()
		return lit

	case TOKEN_NULL:
		lit := &Literal{Pos: p.token.Pos, Type: LiteralNull}
		p.nextToken()
		return lit

	case TOKEN_IDENT:
		if p.checkPeek(TOKEN_LPAREN) {
			return p.parseFuncCall()
		}
		if p.checkPeek(TOKEN_DOT) {
			return p.parseColumnRef()
		}
		ident := &Identifier{Pos: p.token.Pos, Name: p.token.Literal}
		p.nextToken()
		return ident

	case TOKEN_LPAREN:
		return p.parseParenOrSubquery()

	default:
		p.errExpected(TOKEN_IDENT, TOKEN_NUMBER, TOKEN_STRING, TOKEN_LPAREN)
		return nil
	}
}

// parseFuncCall parses name(), name(*), or name(args). The current token is
// the function name, the peek token is (.
func (p *Parser) parseFuncCall() Expr {
	call := &FuncCall{Pos: p.token.Pos, Name: p.token.Literal}
	p.nextToken() // function name
	p.nextToken() // (

	switch {
	case p.check(TOKEN_RPAREN):
		// no arguments
	case p.check(TOKEN_STAR):
		// * is only valid as the sole argument
		call.Star = true
		p.nextToken()
	default:
		call.Args = p.parseExpressionList()
	}
	if !p.expect(TOKEN_RPAREN) {
		return nil
	}
	return call
}

// parseColumnRef parses table.column or schema.table.column. The current
// token is the first identifier, the peek token is a dot.
func (p *Parser) parseColumnRef() Expr {
	ref := &ColumnRef{Pos: p.token.Pos}
	first := p.expectIdent()
	p.nextToken() // .
	second := p.expectIdent()
	if p.err != nil {
		return nil
	}

	if p.match(TOKEN_DOT) {
		third := p.expectIdent()
		if p.err != nil {
			return nil
		}
		ref.Schema = first
		ref.Table = second
		ref.Column = third
	} else {
		ref.Table = first
		ref.Column = second
	}
	return ref
}

// parseParenOrSubquery parses (expr) or (SELECT ...). The current token
// is (.
func (p *Parser) parseParenOrSubquery() Expr {
	pos := p.token.Pos
	p.nextToken() // (

	if p.check(TOKEN_SELECT) {
		sel := p.parseSelectStatement()
		if !p.expect(TOKEN_RPAREN) {
			return nil
		}
		return &SubqueryExpr{Pos: pos, Select: sel}
	}

	expr := p.parseExpression()
	if !p.expect(TOKEN_RPAREN) {
		return nil
	}
	return &ParenExpr{Pos: pos, Expr: expr}
}
