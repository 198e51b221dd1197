package sqlparse

// DDL parsing: CREATE TABLE, DROP TABLE, ALTER TABLE, column definitions,
// data types, and column constraints.

// parseCreateTableStatement parses CREATE TABLE [IF NOT EXISTS] name
// (column_defs). The current token is CREATE.
func (p *Parser) parseCreateTableStatement() Stmt {
	create := &CreateTableStmt{Pos: p.token.Pos}
	p.nextToken() // CREATE
	if !p.expect(TOKEN_TABLE) {
		return nil
	}

	if p.check(TOKEN_IF) {
		p.nextToken()
		if !p.expect(TOKEN_NOT) || !p.expect(TOKEN_EXISTS) {
			return nil
		}
		create.IfNotExists = true
	}

	create.Table = p.parseTableName()
	if p.err != nil {
		return nil
	}
	if !p.expect(TOKEN_LPAREN) {
		return nil
	}
	for {
		def := p.parseColumnDef()
		if p.err != nil {
			return nil
		}
		create.Columns = append(create.Columns, def)
		if !p.match(TOKEN_COMMA) {
			break
		}
	}
	if !p.expect(TOKEN_RPAREN) {
		return nil
	}
	return create
}

// parseDropTableStatement parses DROP TABLE [IF EXISTS] name. The current
// token is DROP.
func (p *Parser) parseDropTableStatement() Stmt {
	drop := &DropTableStmt{Pos: p.token.Pos}
	p.nextToken() // DROP
	if !p.expect(TOKEN_TABLE) {
		return nil
	}
	if p.check(TOKEN_IF) {
		p.nextToken()
		if !p.expect(TOKEN_EXISTS) {
			return nil
		}
		drop.IfExists = true
	}
	drop.Table = p.parseTableName()
	if p.err != nil {
		return nil
	}
	return drop
}

// parseAlterTableStatement parses ALTER TABLE name action. The current
// token is ALTER.
func (p *Parser) parseAlterTableStatement() Stmt {
	alter := &AlterTableStmt{Pos: p.token.Pos}
	p.nextToken() // ALTER
	if !p.expect(TOKEN_TABLE) {
		return nil
	}
	alter.Table = p.parseTableName()
	if p.err != nil {
		return nil
	}

	pos := p.token.Pos
	switch p.token.Type {
	case TOKEN_ADD:
		p.nextToken()
		if !p.expect(TOKEN_COLUMN) {
			return nil
		}
		def := p.parseColumnDef()
		if p.err != nil {
			return nil
		}
		alter.Action = &AddColumnAction{Pos: pos, Def: def}
	case TOKEN_DROP:
		p.nextToken()
		if !p.expect(TOKEN_COLUMN) {
			return nil
		}
		name := p.expectIdent()
		if p.err != nil {
			return nil
		}
		alter.Action = &DropColumnAction{Pos: pos, Name: name}
	case TOKEN_MODIFY:
		p.nextToken()
		if !p.expect(TOKEN_COLUMN) {
			return nil
		}
		def := p.parseColumnDef()
		if p.err != nil {
			return nil
		}
		alter.Action = &ModifyColumnAction{Pos: pos, Def: def}
	case TOKEN_RENAME:
		p.nextToken()
		if !p.expect(TOKEN_TO) {
			return nil
		}
		name := p.expectIdent()
		if p.err != nil {
			return nil
		}
		alter.Action = &RenameToAction{Pos: pos, NewName: name}
	default:
		p.errExpected(TOKEN_ADD, TOKEN_DROP, TOKEN_MODIFY, TOKEN_RENAME)
		return nil
	}
	return alter
}

// parseColumnDef parses name data_type constraint*.
func (p *Parser) parseColumnDef() *ColumnDef {
	def := &ColumnDef{Pos: p.token.Pos}
	def.Name = p.expectIdent()
	if p.err != nil {
		return nil
	}
	def.Type = p.parseDataType()
	if p.err != nil {
		return nil
	}
	def.Constraints = p.parseColumnConstraints()
	if p.err != nil {
		return nil
	}
	return def
}

// parseDataType parses a data type. VARCHAR and CHAR require a length
// parameter, DECIMAL takes an optional (precision[, scale]), the rest take
// none.
func (p *Parser) parseDataType() DataType {
	dt := DataType{Pos: p.token.Pos}
	switch p.token.Type {
	case TOKEN_VARCHAR, TOKEN_CHAR:
		dt.Name = p.token.Type.String()
		p.nextToken()
		if !p.expect(TOKEN_LPAREN) {
			return dt
		}
		n, ok := p.parseIntLiteral()
		if !ok {
			return dt
		}
		dt.Args = []int64{n}
		p.expect(TOKEN_RPAREN)

	case TOKEN_DECIMAL:
		dt.Name = p.token.Type.String()
		p.nextToken()
		if p.match(TOKEN_LPAREN) {
			prec, ok := p.parseIntLiteral()
			if !ok {
				return dt
			}
			dt.Args = []int64{prec}
			if p.match(TOKEN_COMMA) {
				scale, ok := p.parseIntLiteral()
				if !ok {
					return dt
				}
				dt.Args = append(dt.Args, scale)
			}
			p.expect(TOKEN_RPAREN)
		}

	case TOKEN_INT, TOKEN_INTEGER, TOKEN_BIGINT, TOKEN_SMALLINT,
		TOKEN_TEXT, TOKEN_FLOAT, TOKEN_DOUBLE, TOKEN_REAL,
		TOKEN_DATE, TOKEN_TIME, TOKEN_TIMESTAMP, TOKEN_DATETIME,
		TOKEN_BOOLEAN, TOKEN_BOOL, TOKEN_BLOB:
		dt.Name = p.token.Type.String()
		p.nextToken()

	default:
		p.errExpected(TOKEN_INT, TOKEN_INTEGER, TOKEN_BIGINT, TOKEN_SMALLINT,
			TOKEN_VARCHAR, TOKEN_CHAR, TOKEN_TEXT, TOKEN_DECIMAL,
			TOKEN_FLOAT, TOKEN_DOUBLE, TOKEN_REAL,
			TOKEN_DATE, TOKEN_TIME, TOKEN_TIMESTAMP, TOKEN_DATETIME,
			TOKEN_BOOLEAN, TOKEN_BOOL, TOKEN_BLOB)
	}
	return dt
}

// parseColumnConstraints parses zero or more column constraints. Any
// combination is grammatically legal; conflict detection is a semantic
// concern.
func (p *Parser) parseColumnConstraints() []Constraint {
	var constraints []Constraint
	for p.err == nil {
		pos := p.token.Pos
		switch p.token.Type {
		case TOKEN_PRIMARY:
			p.nextToken()
			if !p.expect(TOKEN_KEY) {
				return nil
			}
			constraints = append(constraints, &PrimaryKeyConstraint{Pos: pos})
		case TOKEN_NOT:
			p.nextToken()
			if !p.expect(TOKEN_NULL) {
				return nil
			}
			constraints = append(constraints, &NotNullConstraint{Pos: pos})
		case TOKEN_NULL:
			p.nextToken()
			constraints = append(constraints, &NullConstraint{Pos: pos})
		case TOKEN_UNIQUE:
			p.nextToken()
			constraints = append(constraints, &UniqueConstraint{Pos: pos})
		case TOKEN_AUTO_INCREMENT:
			p.nextToken()
			constraints = append(constraints, &AutoIncrementConstraint{Pos: pos})
		case TOKEN_DEFAULT:
			p.nextToken()
			lit := p.parseLiteral()
			if p.err != nil {
				return nil
			}
			constraints = append(constraints, &DefaultConstraint{Pos: pos, Value: lit})
		case TOKEN_CHECK:
			p.nextToken()
			if !p.expect(TOKEN_LPAREN) {
				return nil
			}
			expr := p.parseExpression()
			if p.err != nil {
				return nil
			}
			if !p.expect(TOKEN_RPAREN) {
				return nil
			}
			constraints = append(constraints, &CheckConstraint{Pos: pos, Expr: expr})
		case TOKEN_REFERENCES:
			p.nextToken()
			table := p.expectIdent()
			if !p.expect(TOKEN_LPAREN) {
				return nil
			}
			column := p.expectIdent()
			if !p.expect(TOKEN_RPAREN) {
				return nil
			}
			constraints = append(constraints, &ReferencesConstraint{Pos: pos, Table: table, Column: column})
		default:
			return constraints
		}
	}
	return constraints
}

// parseLiteral parses a bare literal token, as required by DEFAULT.
func (p *Parser) parseLiteral() *Literal {
	lit := &Literal{Pos: p.token.Pos}
	switch p.token.Type {
	case TOKEN_NUMBER:
		lit.Type = LiteralNumber
		lit.Value = p.token.Literal
	case TOKEN_STRING:
		lit.Type = LiteralString
		lit.Value = p.token.Literal
	case TOKEN_TRUE:
		lit.Type = LiteralBool
		lit.Value = "true"
	case TOKEN_FALSE:
		lit.Type = LiteralBool
		lit.Value = "false"
	case TOKEN_NULL:
		lit.Type = LiteralNull
	default:
		p.errExpected(TOKEN_NUMBER, TOKEN_STRING, TOKEN_TRUE, TOKEN_FALSE, TOKEN_NULL)
		return nil
	}
	p.nextToken()
	return lit
}
