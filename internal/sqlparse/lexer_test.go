package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Punctuation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType TokenType
		wantLit  string
	}{
		{"plus", "+", TOKEN_PLUS, "+"},
		{"minus", "-", TOKEN_MINUS, "-"},
		{"star", "*", TOKEN_STAR, "*"},
		{"slash", "/", TOKEN_SLASH, "/"},
		{"mod", "%", TOKEN_MOD, "%"},
		{"eq", "=", TOKEN_EQ, "="},
		{"ne_bang", "!=", TOKEN_NE, "!="},
		{"ne_diamond", "<>", TOKEN_NE, "<>"},
		{"lt", "<", TOKEN_LT, "<"},
		{"gt", ">", TOKEN_GT, ">"},
		{"le", "<=", TOKEN_LE, "<="},
		{"ge", ">=", TOKEN_GE, ">="},
		{"dot", ".", TOKEN_DOT, "."},
		{"comma", ",", TOKEN_COMMA, ","},
		{"semicolon", ";", TOKEN_SEMICOLON, ";"},
		{"lparen", "(", TOKEN_LPAREN, "("},
		{"rparen", ")", TOKEN_RPAREN, ")"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			tok := l.NextToken()
			assert.Equal(t, tc.wantType, tok.Type, "token type")
			assert.Equal(t, tc.wantLit, tok.Literal, "token literal")
			assert.Equal(t, TOKEN_EOF, l.NextToken().Type)
		})
	}
}

// Multi-character operators must win over their single-character prefixes.
func TestLexer_GreedyOperators(t *testing.T) {
	toks, err := Tokenize("<= >= != <> < =")
	require.NoError(t, err)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{TOKEN_LE, TOKEN_GE, TOKEN_NE, TOKEN_NE, TOKEN_LT, TOKEN_EQ, TOKEN_EOF}, types)
}

func TestLexer_Keywords(t *testing.T) {
	tests := []struct {
		input    string
		wantType TokenType
	}{
		{"SELECT", TOKEN_SELECT},
		{"select", TOKEN_SELECT},
		{"SeLeCt", TOKEN_SELECT},
		{"FROM", TOKEN_FROM},
		{"auto_increment", TOKEN_AUTO_INCREMENT},
		{"varchar", TOKEN_VARCHAR},
		{"TRUE", TOKEN_TRUE},
	}

	for _, tc := range tests {
		l := NewLexer(tc.input)
		tok := l.NextToken()
		assert.Equal(t, tc.wantType, tok.Type, "input %q", tc.input)
		assert.Equal(t, tc.input, tok.Literal, "literal keeps original casing")
	}
}

// A keyword prefix inside a longer identifier must not produce a keyword
// token: the lookup happens after the full identifier is scanned.
func TestLexer_KeywordPrefixIdentifiers(t *testing.T) {
	tests := []string{"selection", "fromage", "wherever", "order_id", "int_value"}
	for _, input := range tests {
		l := NewLexer(input)
		tok := l.NextToken()
		assert.Equal(t, TOKEN_IDENT, tok.Type, "input %q", input)
		assert.Equal(t, input, tok.Literal)
	}
}

func TestLexer_Identifiers(t *testing.T) {
	tests := []string{"x", "_x", "_", "col1", "a_b_c", "T", "CamelCase"}
	for _, input := range tests {
		l := NewLexer(input)
		tok := l.NextToken()
		assert.Equal(t, TOKEN_IDENT, tok.Type, "input %q", input)
		assert.Equal(t, input, tok.Literal)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input   string
		wantLit string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"100.001", "100.001"},
	}
	for _, tc := range tests {
		l := NewLexer(tc.input)
		tok := l.NextToken()
		assert.Equal(t, TOKEN_NUMBER, tok.Type)
		assert.Equal(t, tc.wantLit, tok.Literal)
	}
}

// "1.x" is a number followed by a dot and an identifier, not a decimal.
func TestLexer_NumberDotIdent(t *testing.T) {
	toks, err := Tokenize("1.x")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, TOKEN_NUMBER, toks[0].Type)
	assert.Equal(t, "1", toks[0].Literal)
	assert.Equal(t, TOKEN_DOT, toks[1].Type)
	assert.Equal(t, TOKEN_IDENT, toks[2].Type)
}

func TestLexer_Strings(t *testing.T) {
	l := NewLexer("'hello world'")
	tok := l.NextToken()
	require.Equal(t, TOKEN_STRING, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)

	l = NewLexer("''")
	tok = l.NextToken()
	require.Equal(t, TOKEN_STRING, tok.Type)
	assert.Equal(t, "", tok.Literal)
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := Tokenize("SELECT 'abc")
	require.Error(t, err)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnterminatedString, lexErr.Kind)
	assert.Equal(t, 1, lexErr.Pos.Line)
	assert.Equal(t, 8, lexErr.Pos.Column)
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	tests := []string{"@", "#", "$", "&", "!", "?"}
	for _, input := range tests {
		_, err := Tokenize("SELECT " + input)
		require.Error(t, err, "input %q", input)

		var lexErr *LexError
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, UnexpectedCharacter, lexErr.Kind)
		assert.Equal(t, input[0], lexErr.Char)
	}
}

func TestLexer_CommentsAndWhitespace(t *testing.T) {
	input := "SELECT -- trailing comment\n  -- full line comment\n\t42"
	toks, err := Tokenize(input)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, TOKEN_SELECT, toks[0].Type)
	assert.Equal(t, TOKEN_NUMBER, toks[1].Type)
	assert.Equal(t, TOKEN_EOF, toks[2].Type)
}

// A comment running to EOF without a trailing newline must terminate.
func TestLexer_CommentAtEOF(t *testing.T) {
	toks, err := Tokenize("SELECT 1 -- done")
	require.NoError(t, err)
	assert.Equal(t, TOKEN_EOF, toks[len(toks)-1].Type)
}

func TestLexer_Positions(t *testing.T) {
	toks, err := Tokenize("SELECT x\nFROM t")
	require.NoError(t, err)
	require.Len(t, toks, 5)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
	assert.Equal(t, Position{Line: 1, Column: 8, Offset: 7}, toks[1].Pos)
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 9}, toks[2].Pos)
	assert.Equal(t, Position{Line: 2, Column: 6, Offset: 14}, toks[3].Pos)
}

func TestLexer_EmptyInput(t *testing.T) {
	toks, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TOKEN_EOF, toks[0].Type)

	toks, err = Tokenize("   \n\t  ")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TOKEN_EOF, toks[0].Type)
}

// The string literal must not alias the input buffer.
func TestLexer_StringContentIsCopied(t *testing.T) {
	input := "'abc'"
	toks, err := Tokenize(input)
	require.NoError(t, err)
	assert.Equal(t, "abc", toks[0].Literal)
}
