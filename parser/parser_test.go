/*
File   : cloudy/parser/parser_test.go
Package: parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/lexer"
)

func parseSource(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, lexErr := lexer.NewLexer("<test>", src).Tokenize()
	require.Nil(t, lexErr)
	res := NewParser(tokens).Parse()
	require.Nil(t, res.Error, "unexpected parse error for %q: %v", src, res.Error)
	return res.Node
}

func firstStmt(t *testing.T, src string) ast.Node {
	t.Helper()
	list, ok := parseSource(t, src).(*ast.ListNode)
	require.True(t, ok)
	require.NotEmpty(t, list.Elements)
	return list.Elements[0]
}

func TestParseVarKeywordDeclaration(t *testing.T) {
	stmt := firstStmt(t, "var x = 2 + 3 * 4")
	assign, ok := stmt.(*ast.VarAssignNode)
	require.True(t, ok)
	assert.Equal(t, "x", assign.NameTok.Value)
	_, ok = assign.ValueNode.(*ast.BinOpNode)
	assert.True(t, ok)
}

func TestParsePlainReassignment(t *testing.T) {
	stmt := firstStmt(t, "i = i + 1")
	assign, ok := stmt.(*ast.VarAssignNode)
	require.True(t, ok)
	assert.Equal(t, "i", assign.NameTok.Value)
}

func TestParseIndexAssignment(t *testing.T) {
	stmt := firstStmt(t, "l[0] = 9")
	assign, ok := stmt.(*ast.IndexAssignNode)
	require.True(t, ok)
	assert.Equal(t, "l", assign.NameTok.Value)
}

func TestParseBareIndexExpressionIsNotAssignment(t *testing.T) {
	stmt := firstStmt(t, "l[0]")
	_, ok := stmt.(*ast.IndexNode)
	assert.True(t, ok)
}

func TestParseIfElifElse(t *testing.T) {
	node := firstStmt(t, "if x > 10: 1\nelif x > 3: 2\nelse: 3")
	ifNode, ok := node.(*ast.IfNode)
	require.True(t, ok)
	assert.Len(t, ifNode.Cases, 2)
	assert.NotNil(t, ifNode.ElseCase)
}

func TestParseForLoopWithStep(t *testing.T) {
	node := firstStmt(t, "for i = 0 to 10 step 2: i")
	forNode, ok := node.(*ast.ForNode)
	require.True(t, ok)
	assert.NotNil(t, forNode.StepNode)
}

func TestParseWhileLoop(t *testing.T) {
	node := firstStmt(t, "while i < 10: i = i + 1")
	_, ok := node.(*ast.WhileNode)
	assert.True(t, ok)
}

func TestParseFuncDefWithName(t *testing.T) {
	node := firstStmt(t, "func add(a, b): a + b")
	fn, ok := node.(*ast.FuncDefNode)
	require.True(t, ok)
	require.NotNil(t, fn.NameTok)
	assert.Equal(t, "add", fn.NameTok.Value)
	assert.Len(t, fn.ArgNameToks, 2)
}

func TestParseAnonymousFuncExpression(t *testing.T) {
	node := firstStmt(t, "var f = func (x): x * x")
	assign := node.(*ast.VarAssignNode)
	fn, ok := assign.ValueNode.(*ast.FuncDefNode)
	require.True(t, ok)
	assert.Nil(t, fn.NameTok)
}

func TestParseMembershipOperators(t *testing.T) {
	node := firstStmt(t, "3 in [1, 2, 3]")
	bin, ok := node.(*ast.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, "in", bin.OpTok.Value)

	node = firstStmt(t, "3 not in [1, 2, 3]")
	bin, ok = node.(*ast.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, "not_in", bin.OpTok.Value)
}

func TestParseUnexpectedIndentAtTopLevelErrors(t *testing.T) {
	tokens, lexErr := lexer.NewLexer("<test>", "    1").Tokenize()
	require.Nil(t, lexErr)
	res := NewParser(tokens).Parse()
	require.NotNil(t, res.Error)
}

func TestParseUnevenIndentErrors(t *testing.T) {
	tokens, lexErr := lexer.NewLexer("<test>", "if true:\n  1\n   2").Tokenize()
	require.Nil(t, lexErr)
	res := NewParser(tokens).Parse()
	require.NotNil(t, res.Error)
}

func TestParseDictLiteralAcrossLines(t *testing.T) {
	node := firstStmt(t, "{\n  \"a\": 1,\n  \"b\": 2\n}")
	dict, ok := node.(*ast.DictNode)
	require.True(t, ok)
	assert.Len(t, dict.Pairs, 2)
}

func TestParseDelStatement(t *testing.T) {
	node := firstStmt(t, "del x")
	del, ok := node.(*ast.DelNode)
	require.True(t, ok)
	assert.NotNil(t, del.Target)
}
