package sqlparse

// Expression parsing using precedence climbing (Pratt parser).
//
// OR < AND < NOT < comparison < additive < multiplicative < unary. The
// comparison tier is non-associative: a = b = c is a syntax error, and so
// is mixing two comparison forms (a = b BETWEEN x AND y).

// parseExpression parses an expression at the lowest precedence level.
func (p *Parser) parseExpression() Expr {
	return p.parseExpressionWithPrecedence(PrecedenceOr)
}

// parseExpressionWithPrecedence implements the climbing loop.
func (p *Parser) parseExpressionWithPrecedence(minPrecedence int) Expr {
	start := p.token.Pos
	left := p.parsePrefixExpr()
	if p.err != nil {
		return nil
	}

	sawComparison := false
	for {
		prec := p.infixPrecedence()
		if prec < minPrecedence {
			break
		}
		if prec == PrecedenceComparison {
			if sawComparison {
				// Comparison does not chain; only a logical
				// connective may follow a completed comparison.
				p.errExpected(TOKEN_AND, TOKEN_OR)
				return nil
			}
			sawComparison = true
		}
		left = p.parseInfixExpr(left, prec, start)
		if p.err != nil {
			return nil
		}
	}

	return left
}

// parsePrefixExpr parses prefix operators and primary expressions.
func (p *Parser) parsePrefixExpr() Expr {
	switch p.token.Type {
	case TOKEN_NOT:
		pos := p.token.Pos
		p.nextToken()
		expr := p.parseExpressionWithPrecedence(PrecedenceNot)
		return &UnaryExpr{Pos: pos, Op: TOKEN_NOT, Expr: expr}

	case TOKEN_MINUS:
		pos := p.token.Pos
		p.nextToken()
		expr := p.parseExpressionWithPrecedence(PrecedenceUnary)
		return &UnaryExpr{Pos: pos, Op: TOKEN_MINUS, Expr: expr}

	case TOKEN_PLUS:
		pos := p.token.Pos
		p.nextToken()
		expr := p.parseExpressionWithPrecedence(PrecedenceUnary)
		return &UnaryExpr{Pos: pos, Op: TOKEN_PLUS, Expr: expr}

	default:
		return p.parsePrimary()
	}
}

// infixPrecedence returns the precedence of the current token as an infix
// operator, or PrecedenceNone if it is not one.
func (p *Parser) infixPrecedence() int {
	switch p.token.Type {
	case TOKEN_OR:
		return PrecedenceOr
	case TOKEN_AND:
		return PrecedenceAnd
	case TOKEN_EQ, TOKEN_NE, TOKEN_LT, TOKEN_GT, TOKEN_LE, TOKEN_GE:
		return PrecedenceComparison
	case TOKEN_BETWEEN, TOKEN_IN, TOKEN_LIKE, TOKEN_IS:
		return PrecedenceComparison
	case TOKEN_PLUS, TOKEN_MINUS:
		return PrecedenceAddition
	case TOKEN_STAR, TOKEN_SLASH, TOKEN_MOD:
		return PrecedenceMultiply
	default:
		return PrecedenceNone
	}
}

// parseInfixExpr parses an infix expression given the left operand. start
// is the source position where the left operand began.
func (p *Parser) parseInfixExpr(left Expr, prec int, start Position) Expr {
	switch p.token.Type {
	case TOKEN_BETWEEN:
		p.nextToken()
		return p.parseBetweenExpr(left, start)
	case TOKEN_IN:
		p.nextToken()
		return p.parseInExpr(left, start)
	case TOKEN_LIKE:
		p.nextToken()
		return p.parseLikeExpr(left, start)
	case TOKEN_IS:
		p.nextToken()
		return p.parseIsExpr(left, start)
	default:
		op := p.token.Type
		p.nextToken()
		right := p.parseExpressionWithPrecedence(prec + 1)
		return &BinaryExpr{Pos: start, Left: left, Op: op, Right: right}
	}
}

// parseBetweenExpr parses BETWEEN low AND high. Both bounds are additive
// expressions, so AND always closes the range rather than binding lower.
func (p *Parser) parseBetweenExpr(left Expr, start Position) Expr {
	between := &BetweenExpr{Pos: start, Expr: left}
	between.Low = p.parseExpressionWithPrecedence(PrecedenceAddition)
	if !p.expect(TOKEN_AND) {
		return nil
	}
	between.High = p.parseExpressionWithPrecedence(PrecedenceAddition)
	return between
}

// parseInExpr parses IN (values) or IN (subquery).
func (p *Parser) parseInExpr(left Expr, start Position) Expr {
	in := &InExpr{Pos: start, Expr: left}
	if !p.expect(TOKEN_LPAREN) {
		return nil
	}
	if p.check(TOKEN_SELECT) {
		in.Query = p.parseSelectStatement()
	} else {
		in.Values = p.parseExpressionList()
	}
	if !p.expect(TOKEN_RPAREN) {
		return nil
	}
	return in
}

// parseLikeExpr parses LIKE pattern. The pattern is an additive expression;
// LIKE cannot chain.
func (p *Parser) parseLikeExpr(left Expr, start Position) Expr {
	return &LikeExpr{
		Pos:     start,
		Expr:    left,
		Pattern: p.parseExpressionWithPrecedence(PrecedenceAddition),
	}
}

// parseIsExpr parses IS [NOT] NULL.
func (p *Parser) parseIsExpr(left Expr, start Position) Expr {
	isNot := p.match(TOKEN_NOT)
	if !p.expect(TOKEN_NULL) {
		return nil
	}
	return &IsNullExpr{Pos: start, Expr: left, Not: isNot}
}

// parseExpressionList parses a comma-separated list of expressions.
func (p *Parser) parseExpressionList() []Expr {
	var exprs []Expr
	for {
		expr := p.parseExpression()
		if p.err != nil {
			return nil
		}
		exprs = append(exprs, expr)
		if !p.match(TOKEN_COMMA) {
			break
		}
	}
	return exprs
}
