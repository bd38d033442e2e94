/*
File   : cloudy/interp/interp_test.go
Package: interp
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-not-bot/cloudy/builtins"
	"github.com/nandu-not-bot/cloudy/function"
	"github.com/nandu-not-bot/cloudy/lexer"
	"github.com/nandu-not-bot/cloudy/parser"
	"github.com/nandu-not-bot/cloudy/value"
)

func evalSource(t *testing.T, src string) *RTResult {
	t.Helper()
	lex := lexer.NewLexer("<test>", src)
	tokens, err := lex.Tokenize()
	require.Nil(t, err)

	p := parser.NewParser(tokens)
	res := p.Parse()
	require.Nil(t, res.Error)

	ctx := value.NewContext("<test>", nil, nil)
	ctx.SymbolTable = value.NewSymbolTable(nil)
	for _, name := range builtins.Names() {
		ctx.SymbolTable.Set(name, function.NewBuiltinFunction(name).SetContext(ctx))
	}

	in := NewInterpreter()
	return in.VisitProgram(res.Node, ctx)
}

func TestBinOpKeepsBothOperandsEvaluated(t *testing.T) {
	rt := evalSource(t, "true or 1 / 0")
	// `or` never short-circuits in this language, so the division by
	// zero on the right operand must still surface as an error.
	require.NotNil(t, rt.Error)
}

func TestMembershipDispatchesOnRightOperand(t *testing.T) {
	rt := evalSource(t, "2 in [1, 2, 3]")
	require.Nil(t, rt.Error)
	assert.True(t, rt.Value.IsTrue())
}

func TestIllegalOperationBetweenIncompatibleTypes(t *testing.T) {
	rt := evalSource(t, `1 + "a"`)
	require.NotNil(t, rt.Error)
}

func TestDoubleNotYieldsOperandTruthiness(t *testing.T) {
	rt := evalSource(t, "not not 0")
	require.Nil(t, rt.Error)
	assert.False(t, rt.Value.IsTrue())
}

func TestIndexOutOfRangeReportsRuntimeError(t *testing.T) {
	rt := evalSource(t, "[1, 2][10]")
	require.NotNil(t, rt.Error)
}
