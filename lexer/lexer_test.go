/*
File   : cloudy/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []*Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	tokens, err := NewLexer("<test>", "2 + 3 * 4").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []Kind{INT, PLUS, INT, MULT, INT, EOF}, kinds(tokens))
	assert.Equal(t, int64(2), tokens[0].Value)
	assert.Equal(t, int64(4), tokens[4].Value)
}

func TestTokenizeFloat(t *testing.T) {
	tokens, err := NewLexer("<test>", "3.5").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, FLOAT, tokens[0].Kind)
	assert.Equal(t, 3.5, tokens[0].Value)
}

func TestTokenizeKeywordVsIdentifier(t *testing.T) {
	tokens, err := NewLexer("<test>", "var xvar = 1").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, KEYWORD, tokens[0].Kind)
	assert.Equal(t, "var", tokens[0].Value)
	assert.Equal(t, IDENTIFIER, tokens[1].Kind)
	assert.Equal(t, "xvar", tokens[1].Value)
}

func TestTokenizeBooleans(t *testing.T) {
	tokens, err := NewLexer("<test>", "true false").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, BOOL, tokens[0].Kind)
	assert.Equal(t, true, tokens[0].Value)
	assert.Equal(t, BOOL, tokens[1].Kind)
	assert.Equal(t, false, tokens[1].Value)
}

func TestTokenizeStringWithEscapes(t *testing.T) {
	tokens, err := NewLexer("<test>", `"a\nb"`).Tokenize()
	require.Nil(t, err)
	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, "a\nb", tokens[0].Value)
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	_, err := NewLexer("<test>", `"unterminated`).Tokenize()
	require.NotNil(t, err)
}

func TestTokenizeComparisonOperators(t *testing.T) {
	tokens, err := NewLexer("<test>", "== != <= >= < >").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []Kind{EE, NE, LTE, GTE, LT, GT, EOF}, kinds(tokens))
}

func TestTokenizeBangAloneErrors(t *testing.T) {
	_, err := NewLexer("<test>", "!").Tokenize()
	require.NotNil(t, err)
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := NewLexer("<test>", "@").Tokenize()
	require.NotNil(t, err)
}

func TestTokenizeIndentAsSpace(t *testing.T) {
	tokens, err := NewLexer("<test>", "if true:\n    1").Tokenize()
	require.Nil(t, err)
	var found bool
	for _, tok := range tokens {
		if tok.Kind == SPACE {
			found = true
			assert.Equal(t, 4, tok.Value)
		}
	}
	assert.True(t, found, "expected a SPACE token for the indented line")
}

func TestTokenizeSkipsComments(t *testing.T) {
	tokens, err := NewLexer("<test>", "1 # a comment\n2").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []Kind{INT, NEWLINE, INT, EOF}, kinds(tokens))
}

func TestTokenMatches(t *testing.T) {
	tok := NewToken(KEYWORD, "and", NewPosition("<test>", "and"), nil)
	assert.True(t, tok.Matches(KEYWORD, "and"))
	assert.False(t, tok.Matches(KEYWORD, "or"))
}
