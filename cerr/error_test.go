/*
File   : cloudy/cerr/error_test.go
Package: cerr
*/
package cerr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandu-not-bot/cloudy/lexer"
)

func TestErrorStringIncludesKindAndDetails(t *testing.T) {
	pos := lexer.NewPosition("<test>", "1 + ")
	pos.Advance('1')
	e := New(IllegalChar, pos, pos, "'@'")
	s := e.String()
	assert.Contains(t, s, string(IllegalChar))
	assert.Contains(t, s, "'@'")
}

func TestErrorSatisfiesGoErrorInterface(t *testing.T) {
	var err error = New(Runtime, nil, nil, "boom")
	assert.Contains(t, err.Error(), "boom")
}

func TestWithKindPreservesOtherFields(t *testing.T) {
	base := NewRuntime(nil, nil, "bad index", nil)
	specific := base.WithKind(IndexOutOfRange)
	assert.Equal(t, IndexOutOfRange, specific.Kind)
	assert.Equal(t, "bad index", specific.Details)
	assert.Equal(t, Runtime, base.Kind, "WithKind must not mutate the receiver")
}

func TestGenerateTracebackOrdersOutermostFirst(t *testing.T) {
	innerPos := lexer.NewPosition("<test>", "x")
	innerPos.Advance('x')
	outerPos := lexer.NewPosition("<test>", "y")
	outerPos.Advance('y')

	trace := []TraceFrame{
		{Pos: innerPos, DisplayName: "inner"},
		{Pos: outerPos, DisplayName: "outer"},
	}
	e := NewRuntime(nil, nil, "failure", trace)
	s := e.String()

	outerIdx := strings.Index(s, "outer")
	innerIdx := strings.Index(s, "inner")
	assert.True(t, outerIdx < innerIdx, "outermost frame must be printed before innermost")
}

func TestStringWithArrowsUnderlinesSingleLineSpan(t *testing.T) {
	text := "1 + @"
	posStart := lexer.NewPosition("<test>", text)
	for i := 0; i < 4; i++ {
		posStart.Advance(text[i])
	}
	posEnd := posStart.Copy()
	posEnd.Advance('@')

	out := StringWithArrows(text, posStart, posEnd)
	lines := strings.Split(out, "\n")
	assert.Equal(t, text, lines[0])
	assert.True(t, strings.Contains(lines[1], "^"))
}
