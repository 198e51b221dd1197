package sqlparse

// FROM clause parsing: table references, comma joins, and explicit JOIN
// chains.

// parseTableRefs parses the FROM item list. Comma-separated references
// fold left into JoinTable nodes with the comma join type.
func (p *Parser) parseTableRefs() TableRef {
	left := p.parseTableRef()
	for p.err == nil && p.check(TOKEN_COMMA) {
		p.nextToken()
		right := p.parseTableRef()
		if p.err != nil {
			return nil
		}
		left = &JoinTable{Pos: tableRefPos(left), Left: left, Type: JoinComma, Right: right}
	}
	if p.err != nil {
		return nil
	}
	return left
}

// parseTableRef parses one table reference with any trailing JOIN chain,
// nesting left-associatively. ON is mandatory for every explicit join,
// CROSS included.
func (p *Parser) parseTableRef() TableRef {
	left := p.parseTableAtom()

	for p.err == nil {
		joinType, isJoin := p.peekJoinType()
		if !isJoin {
			break
		}
		if !p.check(TOKEN_JOIN) {
			p.nextToken() // explicit join type keyword
		}
		if !p.expect(TOKEN_JOIN) {
			return nil
		}
		right := p.parseTableAtom()
		if !p.expect(TOKEN_ON) {
			return nil
		}
		on := p.parseExpression()
		if p.err != nil {
			return nil
		}
		left = &JoinTable{Pos: tableRefPos(left), Left: left, Type: joinType, Right: right, On: on}
	}
	if p.err != nil {
		return nil
	}
	return left
}

// peekJoinType reports whether the current token starts a join and which
// join type it denotes. A bare JOIN keyword means INNER.
func (p *Parser) peekJoinType() (JoinType, bool) {
	switch p.token.Type {
	case TOKEN_JOIN:
		return JoinInner, true
	case TOKEN_INNER:
		return JoinInner, true
	case TOKEN_LEFT:
		return JoinLeft, true
	case TOKEN_RIGHT:
		return JoinRight, true
	case TOKEN_FULL:
		return JoinFull, true
	case TOKEN_CROSS:
		return JoinCross, true
	default:
		return "", false
	}
}

// parseTableAtom parses a table name with an optional alias. The AS is
// optional for table aliases, unlike select-item aliases.
func (p *Parser) parseTableAtom() TableRef {
	table := p.parseTableName()
	if p.err != nil {
		return nil
	}
	if p.match(TOKEN_AS) {
		table.Alias = p.expectIdent()
	} else if p.check(TOKEN_IDENT) {
		table.Alias = p.token.Literal
		p.nextToken()
	}
	return table
}

// parseTableName parses a bare table name.
func (p *Parser) parseTableName() *TableName {
	pos := p.token.Pos
	name := p.expectIdent()
	if p.err != nil {
		return nil
	}
	return &TableName{Pos: pos, Name: name}
}
