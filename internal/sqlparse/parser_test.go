package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOne parses sql and requires exactly one statement.
func parseOne(t *testing.T, sql string) Stmt {
	t.Helper()
	stmts, err := Parse(sql)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

// firstItem returns the first select-item expression of a parsed SELECT.
func firstItem(t *testing.T, sql string) Expr {
	t.Helper()
	sel := parseOne(t, sql).(*SelectStmt)
	require.NotEmpty(t, sel.Items)
	return sel.Items[0].Expr
}

// === Parse entry point ===

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t", "-- only a comment"} {
		stmts, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, stmts, "input %q", input)
	}
}

func TestParse_EmptyStatementRejected(t *testing.T) {
	for _, input := range []string{";", ";;", ";SELECT 1", "SELECT 1;;SELECT 2"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)

		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr)
		assert.Equal(t, UnknownStatement, synErr.Kind, "input %q", input)
		assert.Equal(t, TOKEN_SEMICOLON, synErr.Found.Type, "input %q", input)
	}
}

func TestParse_MultiStatement(t *testing.T) {
	stmts, err := Parse("SELECT 1; SELECT 2; DELETE FROM t")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.IsType(t, &SelectStmt{}, stmts[0])
	assert.IsType(t, &SelectStmt{}, stmts[1])
	assert.IsType(t, &DeleteStmt{}, stmts[2])
}

func TestParse_TrailingSemicolonOptional(t *testing.T) {
	for _, sql := range []string{"SELECT 1", "SELECT 1;"} {
		stmts, err := Parse(sql)
		require.NoError(t, err)
		assert.Len(t, stmts, 1)
	}
}

func TestParse_MissingSemicolonBetweenStatements(t *testing.T) {
	_, err := Parse("SELECT 1 SELECT 2")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, UnexpectedToken, synErr.Kind)
	assert.Equal(t, TOKEN_SELECT, synErr.Found.Type)
}

func TestParse_UnknownStatement(t *testing.T) {
	_, err := Parse("EXPLAIN SELECT 1")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, UnknownStatement, synErr.Kind)
	assert.Equal(t, "EXPLAIN", synErr.Found.Literal)
}

func TestParse_LexErrorAborts(t *testing.T) {
	_, err := Parse("SELECT a FROM t WHERE x = @")
	require.Error(t, err)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnexpectedCharacter, lexErr.Kind)
}

// === Keyword case-insensitivity ===

func TestParse_KeywordCaseInsensitive(t *testing.T) {
	lower, err := Parse("select * from T")
	require.NoError(t, err)
	upper, err := Parse("SELECT * FROM T")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

// === Expression precedence and associativity ===

func TestParse_MultiplicationBindsTighter(t *testing.T) {
	expr := firstItem(t, "SELECT 1+2*3")
	add, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_PLUS, add.Op)

	mul, ok := add.Right.(*BinaryExpr)
	require.True(t, ok, "* must be the deeper node")
	assert.Equal(t, TOKEN_STAR, mul.Op)
}

func TestParse_LeftAssociativity(t *testing.T) {
	expr := firstItem(t, "SELECT 10 - 4 - 3")
	outer, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_MINUS, outer.Op)

	inner, ok := outer.Left.(*BinaryExpr)
	require.True(t, ok, "chain must group as (10-4)-3")
	assert.Equal(t, TOKEN_MINUS, inner.Op)
	assert.Equal(t, "3", outer.Right.(*Literal).Value)
}

func TestParse_LogicalPrecedence(t *testing.T) {
	// OR binds loosest: a AND b OR c is (a AND b) OR c.
	expr := firstItem(t, "SELECT a AND b OR c")
	or, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_OR, or.Op)
	and, ok := or.Left.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_AND, and.Op)
}

func TestParse_NotBindsLooserThanComparison(t *testing.T) {
	// NOT a = b is NOT (a = b).
	expr := firstItem(t, "SELECT NOT a = b")
	not, ok := expr.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_NOT, not.Op)
	cmp, ok := not.Expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_EQ, cmp.Op)
}

func TestParse_ComparisonNonAssociative(t *testing.T) {
	tests := []string{
		"SELECT a = b = c",
		"SELECT a < b < c",
		"SELECT a = b BETWEEN 1 AND 2",
		"SELECT a BETWEEN 1 AND 2 = b",
	}
	for _, sql := range tests {
		_, err := Parse(sql)
		require.Error(t, err, "sql %q", sql)

		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr)
		assert.Equal(t, UnexpectedToken, synErr.Kind)
		assert.ElementsMatch(t, []TokenType{TOKEN_AND, TOKEN_OR}, synErr.Expected, "sql %q", sql)
	}
}

func TestParse_UnaryMinus(t *testing.T) {
	expr := firstItem(t, "SELECT -x * y")
	mul, ok := expr.(*BinaryExpr)
	require.True(t, ok, "unary minus binds tighter than *")
	assert.Equal(t, TOKEN_STAR, mul.Op)
	neg, ok := mul.Left.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_MINUS, neg.Op)
}

func TestParse_ParenthesesOverridePrecedence(t *testing.T) {
	expr := firstItem(t, "SELECT (1+2)*3")
	mul, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_STAR, mul.Op)

	paren, ok := mul.Left.(*ParenExpr)
	require.True(t, ok, "grouping is preserved in the tree")
	add := paren.Expr.(*BinaryExpr)
	assert.Equal(t, TOKEN_PLUS, add.Op)
}

// === Expression forms ===

func TestParse_Between(t *testing.T) {
	expr := firstItem(t, "SELECT x BETWEEN 1 AND 10 FROM t")
	between, ok := expr.(*BetweenExpr)
	require.True(t, ok)
	assert.Equal(t, "1", between.Low.(*Literal).Value)
	assert.Equal(t, "10", between.High.(*Literal).Value)
}

// AND inside BETWEEN closes the range; a surrounding AND still parses.
func TestParse_BetweenInsideAnd(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM t WHERE x BETWEEN 1 AND 10 AND y = 2").(*SelectStmt)
	and, ok := sel.Where.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_AND, and.Op)
	assert.IsType(t, &BetweenExpr{}, and.Left)
}

func TestParse_InValues(t *testing.T) {
	expr := firstItem(t, "SELECT x IN (1, 2, 3)")
	in, ok := expr.(*InExpr)
	require.True(t, ok)
	assert.Len(t, in.Values, 3)
	assert.Nil(t, in.Query)
}

func TestParse_InSubquery(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM t WHERE id IN (SELECT id FROM u)").(*SelectStmt)
	in, ok := sel.Where.(*InExpr)
	require.True(t, ok)
	assert.Nil(t, in.Values)
	require.NotNil(t, in.Query)
	assert.Equal(t, "u", in.Query.From.(*TableName).Name)
}

func TestParse_Like(t *testing.T) {
	expr := firstItem(t, "SELECT name LIKE 'A%' FROM t")
	like, ok := expr.(*LikeExpr)
	require.True(t, ok)
	assert.Equal(t, "A%", like.Pattern.(*Literal).Value)
}

func TestParse_IsNull(t *testing.T) {
	expr := firstItem(t, "SELECT x IS NULL")
	isNull, ok := expr.(*IsNullExpr)
	require.True(t, ok)
	assert.False(t, isNull.Not)

	expr = firstItem(t, "SELECT x IS NOT NULL")
	isNull = expr.(*IsNullExpr)
	assert.True(t, isNull.Not)
}

func TestParse_Literals(t *testing.T) {
	tests := []struct {
		sql      string
		wantType LiteralType
		wantVal  string
	}{
		{"SELECT 42", LiteralNumber, "42"},
		{"SELECT 3.14", LiteralNumber, "3.14"},
		{"SELECT 'hi'", LiteralString, "hi"},
		{"SELECT TRUE", LiteralBool, "true"},
		{"SELECT false", LiteralBool, "false"},
		{"SELECT NULL", LiteralNull, ""},
	}
	for _, tc := range tests {
		lit, ok := firstItem(t, tc.sql).(*Literal)
		require.True(t, ok, "sql %q", tc.sql)
		assert.Equal(t, tc.wantType, lit.Type, "sql %q", tc.sql)
		assert.Equal(t, tc.wantVal, lit.Value, "sql %q", tc.sql)
	}
}

func TestParse_ColumnRef(t *testing.T) {
	ref, ok := firstItem(t, "SELECT t.x FROM t").(*ColumnRef)
	require.True(t, ok)
	assert.Empty(t, ref.Schema)
	assert.Equal(t, "t", ref.Table)
	assert.Equal(t, "x", ref.Column)

	ref = firstItem(t, "SELECT s.t.x FROM t").(*ColumnRef)
	assert.Equal(t, "s", ref.Schema)
	assert.Equal(t, "t", ref.Table)
	assert.Equal(t, "x", ref.Column)
}

func TestParse_FuncCall(t *testing.T) {
	call, ok := firstItem(t, "SELECT count(*) FROM t").(*FuncCall)
	require.True(t, ok)
	assert.Equal(t, "count", call.Name)
	assert.True(t, call.Star)
	assert.Empty(t, call.Args)

	call = firstItem(t, "SELECT max(a, b + 1) FROM t").(*FuncCall)
	assert.False(t, call.Star)
	assert.Len(t, call.Args, 2)

	call = firstItem(t, "SELECT now()").(*FuncCall)
	assert.False(t, call.Star)
	assert.Empty(t, call.Args)
}

func TestParse_ScalarSubquery(t *testing.T) {
	sub, ok := firstItem(t, "SELECT (SELECT max(x) FROM t)").(*SubqueryExpr)
	require.True(t, ok)
	require.NotNil(t, sub.Select)
	assert.Equal(t, "t", sub.Select.From.(*TableName).Name)
}

// === SELECT ===

func TestParse_SelectStar(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM t").(*SelectStmt)
	assert.True(t, sel.Star)
	assert.Empty(t, sel.Items)
}

func TestParse_SelectItems(t *testing.T) {
	sel := parseOne(t, "SELECT a, b + 1 AS c FROM t").(*SelectStmt)
	assert.False(t, sel.Star)
	require.Len(t, sel.Items, 2)
	assert.Empty(t, sel.Items[0].Alias)
	assert.Equal(t, "c", sel.Items[1].Alias)
}

// A select-item alias requires AS; a bare identifier after the expression
// is a syntax error.
func TestParse_SelectItemAliasRequiresAS(t *testing.T) {
	_, err := Parse("SELECT a b FROM t")
	require.Error(t, err)
}

func TestParse_SelectWithoutFrom(t *testing.T) {
	sel := parseOne(t, "SELECT 1+2*3").(*SelectStmt)
	assert.Nil(t, sel.From)
	require.Len(t, sel.Items, 1)
}

func TestParse_FullSelect(t *testing.T) {
	sql := "SELECT dept, count(*) AS n FROM emp WHERE salary > 100 " +
		"GROUP BY dept HAVING count(*) > 5 ORDER BY n DESC, dept LIMIT 10 OFFSET 20"
	sel := parseOne(t, sql).(*SelectStmt)

	require.Len(t, sel.Items, 2)
	assert.NotNil(t, sel.Where)
	require.Len(t, sel.GroupBy, 1)
	assert.NotNil(t, sel.Having)
	require.Len(t, sel.OrderBy, 2)
	assert.True(t, sel.OrderBy[0].Desc)
	assert.False(t, sel.OrderBy[1].Desc)
	require.NotNil(t, sel.Limit)
	assert.Equal(t, int64(10), sel.Limit.Count)
	require.NotNil(t, sel.Limit.Offset)
	assert.Equal(t, int64(20), *sel.Limit.Offset)
}

func TestParse_OrderByAscExplicit(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM t ORDER BY x ASC").(*SelectStmt)
	require.Len(t, sel.OrderBy, 1)
	assert.False(t, sel.OrderBy[0].Desc)
}

func TestParse_ClauseOutOfOrder(t *testing.T) {
	tests := []struct {
		sql       string
		wantFound TokenType
	}{
		{"SELECT * FROM t LIMIT 1 WHERE x=1", TOKEN_WHERE},
		{"SELECT * FROM t ORDER BY x GROUP BY y", TOKEN_GROUP},
		{"SELECT * FROM t HAVING x WHERE y", TOKEN_WHERE},
		{"SELECT * WHERE x = 1 FROM t", TOKEN_FROM},
	}
	for _, tc := range tests {
		_, err := Parse(tc.sql)
		require.Error(t, err, "sql %q", tc.sql)

		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr, "sql %q", tc.sql)
		assert.Equal(t, OutOfOrderClause, synErr.Kind, "sql %q", tc.sql)
		assert.Equal(t, tc.wantFound, synErr.Found.Type, "sql %q", tc.sql)
	}
}

func TestParse_LimitRequiresInteger(t *testing.T) {
	_, err := Parse("SELECT * FROM t LIMIT 1.5")
	require.Error(t, err)
}

// === Joins ===

func TestParse_JoinDefaultsToInner(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM a JOIN b ON a.id=b.id").(*SelectStmt)
	join, ok := sel.From.(*JoinTable)
	require.True(t, ok)
	assert.Equal(t, JoinInner, join.Type)
	assert.NotNil(t, join.On)
}

func TestParse_JoinTypes(t *testing.T) {
	tests := []struct {
		keyword  string
		wantType JoinType
	}{
		{"INNER", JoinInner},
		{"LEFT", JoinLeft},
		{"RIGHT", JoinRight},
		{"FULL", JoinFull},
		{"CROSS", JoinCross},
	}
	for _, tc := range tests {
		sql := "SELECT * FROM a " + tc.keyword + " JOIN b ON a.id = b.id"
		sel := parseOne(t, sql).(*SelectStmt)
		join := sel.From.(*JoinTable)
		assert.Equal(t, tc.wantType, join.Type, "keyword %s", tc.keyword)
	}
}

func TestParse_JoinRequiresOn(t *testing.T) {
	for _, sql := range []string{
		"SELECT * FROM a JOIN b",
		"SELECT * FROM a CROSS JOIN b",
	} {
		_, err := Parse(sql)
		require.Error(t, err, "sql %q", sql)

		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr)
		assert.Contains(t, synErr.Expected, TOKEN_ON)
	}
}

func TestParse_JoinChainLeftAssociative(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM a JOIN b ON a.x=b.x LEFT JOIN c ON b.y=c.y").(*SelectStmt)
	outer, ok := sel.From.(*JoinTable)
	require.True(t, ok)
	assert.Equal(t, JoinLeft, outer.Type)
	assert.Equal(t, "c", outer.Right.(*TableName).Name)

	inner, ok := outer.Left.(*JoinTable)
	require.True(t, ok)
	assert.Equal(t, JoinInner, inner.Type)
}

func TestParse_CommaJoin(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM a, b, c").(*SelectStmt)
	outer, ok := sel.From.(*JoinTable)
	require.True(t, ok)
	assert.Equal(t, JoinComma, outer.Type)
	assert.Nil(t, outer.On)
	assert.Equal(t, "c", outer.Right.(*TableName).Name)

	inner := outer.Left.(*JoinTable)
	assert.Equal(t, JoinComma, inner.Type)
}

func TestParse_TableAlias(t *testing.T) {
	sel := parseOne(t, "SELECT * FROM orders AS o").(*SelectStmt)
	assert.Equal(t, "o", sel.From.(*TableName).Alias)

	sel = parseOne(t, "SELECT * FROM orders o").(*SelectStmt)
	assert.Equal(t, "o", sel.From.(*TableName).Alias)
}

// === INSERT ===

func TestParse_InsertValues(t *testing.T) {
	ins := parseOne(t, "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')").(*InsertStmt)
	assert.Equal(t, "t", ins.Table.Name)
	assert.Equal(t, []string{"a", "b"}, ins.Columns)
	require.Len(t, ins.Rows, 2)
	assert.Len(t, ins.Rows[0], 2)
	assert.Len(t, ins.Rows[1], 2)
	assert.Nil(t, ins.Query)
}

// Row arity is recorded, not validated: the tuple lengths may disagree
// with the column list and with each other.
func TestParse_InsertRecordsRowArity(t *testing.T) {
	ins := parseOne(t, "INSERT INTO t (a, b) VALUES (1), (2, 3, 4)").(*InsertStmt)
	require.Len(t, ins.Rows, 2)
	assert.Len(t, ins.Rows[0], 1)
	assert.Len(t, ins.Rows[1], 3)
}

func TestParse_InsertWithoutColumns(t *testing.T) {
	ins := parseOne(t, "INSERT INTO t VALUES (1, 2)").(*InsertStmt)
	assert.Empty(t, ins.Columns)
	require.Len(t, ins.Rows, 1)
}

func TestParse_InsertSelect(t *testing.T) {
	ins := parseOne(t, "INSERT INTO archive (id) SELECT id FROM live WHERE old = TRUE").(*InsertStmt)
	assert.Empty(t, ins.Rows)
	require.NotNil(t, ins.Query)
	assert.Equal(t, "live", ins.Query.From.(*TableName).Name)
}

func TestParse_InsertRequiresSource(t *testing.T) {
	_, err := Parse("INSERT INTO t (a)")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.ElementsMatch(t, []TokenType{TOKEN_VALUES, TOKEN_SELECT}, synErr.Expected)
}

// === UPDATE / DELETE ===

func TestParse_Update(t *testing.T) {
	upd := parseOne(t, "UPDATE t SET a = 1, b = b + 1 WHERE id = 7").(*UpdateStmt)
	assert.Equal(t, "t", upd.Table.Name)
	require.Len(t, upd.Sets, 2)
	assert.Equal(t, "a", upd.Sets[0].Column)
	assert.Equal(t, "b", upd.Sets[1].Column)
	assert.NotNil(t, upd.Where)
}

func TestParse_UpdateWithoutWhere(t *testing.T) {
	upd := parseOne(t, "UPDATE t SET a = 1").(*UpdateStmt)
	assert.Nil(t, upd.Where)
}

func TestParse_Delete(t *testing.T) {
	del := parseOne(t, "DELETE FROM t WHERE x < 0").(*DeleteStmt)
	assert.Equal(t, "t", del.Table.Name)
	assert.NotNil(t, del.Where)

	del = parseOne(t, "DELETE FROM t").(*DeleteStmt)
	assert.Nil(t, del.Where)
}

// === Error reporting ===

func TestParse_SyntaxErrorCarriesPositionAndExpectations(t *testing.T) {
	_, err := Parse("SELECT a FROM")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, UnexpectedToken, synErr.Kind)
	assert.Equal(t, TOKEN_EOF, synErr.Found.Type)
	assert.Contains(t, synErr.Expected, TOKEN_IDENT)
	assert.Equal(t, 1, synErr.Pos.Line)
	assert.Equal(t, 14, synErr.Pos.Column)
}

func TestParse_FirstErrorWins(t *testing.T) {
	// Both FROM and WHERE are malformed; only the first is reported.
	_, err := Parse("SELECT a FROM WHERE +")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, TOKEN_WHERE, synErr.Found.Type)
}

// === ParseExpr ===

func TestParseExpr_Simple(t *testing.T) {
	expr, err := ParseExpr("price * quantity > 100")
	require.NoError(t, err)

	cmp, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_GT, cmp.Op)
	assert.IsType(t, &BinaryExpr{}, cmp.Left)
}

func TestParseExpr_TrailingGarbage(t *testing.T) {
	_, err := ParseExpr("1 + 2 3")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, []TokenType{TOKEN_EOF}, synErr.Expected)
}

func TestParseExpr_Empty(t *testing.T) {
	_, err := ParseExpr("")
	require.Error(t, err)
}

// === Positions on nodes ===

func TestParse_NodePositions(t *testing.T) {
	sel := parseOne(t, "SELECT a\nFROM t\nWHERE a > 1").(*SelectStmt)
	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, sel.Pos)

	cmp := sel.Where.(*BinaryExpr)
	assert.Equal(t, 3, cmp.Pos.Line)
	assert.Equal(t, 7, cmp.Pos.Column)
}
