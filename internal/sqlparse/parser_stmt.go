package sqlparse

import "strconv"

// parseSelectStatement parses a SELECT statement. The current token is
// SELECT. Clauses must appear in grammar order; a clause keyword left over
// after the ladder is reported as out of order.
func (p *Parser) parseSelectStatement() *SelectStmt {
	sel := &SelectStmt{Pos: p.token.Pos}
	p.nextToken() // SELECT

	if p.match(TOKEN_STAR) {
		sel.Star = true
	} else {
		sel.Items = p.parseSelectItems()
	}
	if p.err != nil {
		return nil
	}

	if p.match(TOKEN_FROM) {
		sel.From = p.parseTableRefs()
	}
	if p.err == nil && p.match(TOKEN_WHERE) {
		sel.Where = p.parseExpression()
	}
	if p.err == nil && p.check(TOKEN_GROUP) {
		p.nextToken()
		p.expect(TOKEN_BY)
		sel.GroupBy = p.parseExpressionList()
	}
	if p.err == nil && p.match(TOKEN_HAVING) {
		sel.Having = p.parseExpression()
	}
	if p.err == nil && p.check(TOKEN_ORDER) {
		p.nextToken()
		p.expect(TOKEN_BY)
		sel.OrderBy = p.parseOrderItems()
	}
	if p.err == nil && p.check(TOKEN_LIMIT) {
		sel.Limit = p.parseLimitClause()
	}
	if p.err != nil {
		return nil
	}

	p.checkClauseOrder()
	return sel
}

// checkClauseOrder reports a clause keyword that survived the clause
// ladder. Each clause is attempted exactly once in grammar order, so a
// remaining clause keyword means it appeared after a later clause.
func (p *Parser) checkClauseOrder() {
	switch p.token.Type {
	case TOKEN_FROM, TOKEN_WHERE, TOKEN_GROUP, TOKEN_HAVING,
		TOKEN_ORDER, TOKEN_LIMIT, TOKEN_OFFSET:
		if p.err == nil {
			p.err = &SyntaxError{
				Kind:  OutOfOrderClause,
				Pos:   p.token.Pos,
				Found: p.token,
			}
		}
	}
}

// parseSelectItems parses the explicit select list. An alias requires AS.
func (p *Parser) parseSelectItems() []SelectItem {
	var items []SelectItem
	for {
		item := SelectItem{Pos: p.token.Pos}
		item.Expr = p.parseExpression()
		if p.err != nil {
			return nil
		}
		if p.match(TOKEN_AS) {
			item.Alias = p.expectIdent()
		}
		items = append(items, item)
		if !p.match(TOKEN_COMMA) {
			break
		}
	}
	return items
}

// parseOrderItems parses the ORDER BY item list.
func (p *Parser) parseOrderItems() []OrderItem {
	var items []OrderItem
	for {
		item := OrderItem{Pos: p.token.Pos}
		item.Expr = p.parseExpression()
		if p.err != nil {
			return nil
		}
		if p.match(TOKEN_DESC) {
			item.Desc = true
		} else {
			p.match(TOKEN_ASC)
		}
		items = append(items, item)
		if !p.match(TOKEN_COMMA) {
			break
		}
	}
	return items
}

// parseLimitClause parses LIMIT count [OFFSET offset]. The current token
// is LIMIT. Both counts must be integer literals.
func (p *Parser) parseLimitClause() *LimitClause {
	limit := &LimitClause{Pos: p.token.Pos}
	p.nextToken() // LIMIT

	count, ok := p.parseIntLiteral()
	if !ok {
		return nil
	}
	limit.Count = count

	if p.match(TOKEN_OFFSET) {
		offset, ok := p.parseIntLiteral()
		if !ok {
			return nil
		}
		limit.Offset = &offset
	}
	return limit
}

// parseIntLiteral consumes an integer NUMBER token. A decimal literal is
// rejected here even though the lexer accepts it as a NUMBER.
func (p *Parser) parseIntLiteral() (int64, bool) {
	if !p.check(TOKEN_NUMBER) {
		p.errExpected(TOKEN_NUMBER)
		return 0, false
	}
	n, err := strconv.ParseInt(p.token.Literal, 10, 64)
	if err != nil {
		p.errExpected(TOKEN_NUMBER)
		return 0, false
	}
	p.nextToken()
	return n, true
}

// parseInsertStatement parses INSERT INTO table [(columns)] followed by
// VALUES rows or a SELECT. The current token is INSERT.
func (p *Parser) parseInsertStatement() Stmt {
	ins := &InsertStmt{Pos: p.token.Pos}
	p.nextToken() // INSERT
	if !p.expect(TOKEN_INTO) {
		return nil
	}
	ins.Table = p.parseTableName()
	if p.err != nil {
		return nil
	}

	if p.match(TOKEN_LPAREN) {
		for {
			col := p.expectIdent()
			if p.err != nil {
				return nil
			}
			ins.Columns = append(ins.Columns, col)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
		if !p.expect(TOKEN_RPAREN) {
			return nil
		}
	}

	switch {
	case p.match(TOKEN_VALUES):
		// Each row keeps its own length for a later arity check.
		for {
			if !p.expect(TOKEN_LPAREN) {
				return nil
			}
			row := p.parseExpressionList()
			if p.err != nil {
				return nil
			}
			if !p.expect(TOKEN_RPAREN) {
				return nil
			}
			ins.Rows = append(ins.Rows, row)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	case p.check(TOKEN_SELECT):
		ins.Query = p.parseSelectStatement()
	default:
		p.errExpected(TOKEN_VALUES, TOKEN_SELECT)
		return nil
	}
	if p.err != nil {
		return nil
	}
	return ins
}

// parseUpdateStatement parses UPDATE table SET assignments [WHERE expr].
// The current token is UPDATE.
func (p *Parser) parseUpdateStatement() Stmt {
	upd := &UpdateStmt{Pos: p.token.Pos}
	p.nextToken() // UPDATE
	upd.Table = p.parseTableName()
	if p.err != nil {
		return nil
	}
	if !p.expect(TOKEN_SET) {
		return nil
	}

	for {
		set := SetClause{Pos: p.token.Pos}
		set.Column = p.expectIdent()
		if !p.expect(TOKEN_EQ) {
			return nil
		}
		set.Value = p.parseExpression()
		if p.err != nil {
			return nil
		}
		upd.Sets = append(upd.Sets, set)
		if !p.match(TOKEN_COMMA) {
			break
		}
	}

	if p.match(TOKEN_WHERE) {
		upd.Where = p.parseExpression()
		if p.err != nil {
			return nil
		}
	}
	return upd
}

// parseDeleteStatement parses DELETE FROM table [WHERE expr]. The current
// token is DELETE.
func (p *Parser) parseDeleteStatement() Stmt {
	del := &DeleteStmt{Pos: p.token.Pos}
	p.nextToken() // DELETE
	if !p.expect(TOKEN_FROM) {
		return nil
	}
	del.Table = p.parseTableName()
	if p.err != nil {
		return nil
	}
	if p.match(TOKEN_WHERE) {
		del.Where = p.parseExpression()
		if p.err != nil {
			return nil
		}
	}
	return del
}
