/*
File   : cloudy/cloudy_test.go
Package: cloudy
*/
package cloudy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-not-bot/cloudy/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	result, err := Run("<test>", src, nil)
	require.Nil(t, err, "expected no error running %q", src)
	return result
}

func TestArithmeticPrecedence(t *testing.T) {
	result := run(t, "2 + 3 * 4")
	assert.Equal(t, int64(14), result.(*value.Int).Val)
}

func TestVariableAssignmentAndReuse(t *testing.T) {
	result := run(t, "var x = 10\nvar y = x * 2\ny")
	assert.Equal(t, int64(20), result.(*value.Int).Val)
}

func TestIfElseChain(t *testing.T) {
	result := run(t, "var x = 5\nif x > 10: 1\nelif x > 3: 2\nelse: 3")
	assert.Equal(t, int64(2), result.(*value.Int).Val)
}

func TestForLoopAccumulatesList(t *testing.T) {
	result := run(t, "for i = 0 to 5: i * i")
	list, ok := result.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 5, list.Len())
	last, _ := list.Get(-1)
	assert.Equal(t, int64(16), last.(*value.Int).Val)
}

func TestWhileLoopWithBreakContinue(t *testing.T) {
	src := "var i = 0\nvar total = 0\nwhile i < 10:\n    i = i + 1\n    if i % 2 == 0: continue\n    if i > 7: break\n    total = total + i\ntotal"
	result := run(t, src)
	assert.Equal(t, int64(16), result.(*value.Int).Val)
}

func TestFunctionDefAndCallClosure(t *testing.T) {
	src := "var makeAdder = func (n): func (x): x + n\nvar addFive = makeAdder(5)\naddFive(10)"
	result := run(t, src)
	assert.Equal(t, int64(15), result.(*value.Int).Val)
}

func TestRecursiveFunction(t *testing.T) {
	src := "func fact(n):\n    if n <= 1: return 1\n    return n * fact(n - 1)\nfact(5)"
	result := run(t, src)
	assert.Equal(t, int64(120), result.(*value.Int).Val)
}

func TestListAndDictLiterals(t *testing.T) {
	result := run(t, `var d = {"a": 1, "b": 2}
d["a"] + d["b"]`)
	assert.Equal(t, int64(3), result.(*value.Int).Val)
}

func TestMembershipOperators(t *testing.T) {
	assert.True(t, run(t, `3 in [1, 2, 3]`).IsTrue())
	assert.True(t, run(t, `"ell" in "hello"`).IsTrue())
	assert.True(t, run(t, `4 not in [1, 2, 3]`).IsTrue())
}

func TestBuiltinAppendMutatesSharedList(t *testing.T) {
	result := run(t, "var l = [1, 2]\nappend(l, 3)\nl")
	list := result.(*value.List)
	assert.Equal(t, 3, list.Len())
}

func TestUndefinedNameIsRuntimeError(t *testing.T) {
	_, err := Run("<test>", "missing_name", nil)
	require.NotNil(t, err)
}

func TestEmptySourceReturnsEmptyString(t *testing.T) {
	result := run(t, "")
	assert.Equal(t, "", result.(*value.String).Val)
}

func TestProgramYieldsLastStatementValueNotAWrapperList(t *testing.T) {
	result := run(t, "1\n2\n3")
	assert.Equal(t, int64(3), result.(*value.Int).Val)
}
