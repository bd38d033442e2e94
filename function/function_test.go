/*
File   : cloudy/function/function_test.go
Package: function
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandu-not-bot/cloudy/value"
)

func TestNewFunctionCapturesNameAndArgs(t *testing.T) {
	ctx := value.NewContext("<test>", nil, nil)
	fn := NewFunction("add", nil, []string{"a", "b"}, true, ctx)

	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.ArgNames)
	assert.True(t, fn.ShouldAutoReturn)
	assert.Same(t, ctx, fn.CapturedContext)
	assert.Equal(t, value.TypeFunction, fn.Type())
}

func TestFunctionStringUsesAnonymousForEmptyName(t *testing.T) {
	fn := NewFunction("", nil, nil, false, nil)
	assert.Equal(t, "", fn.Copy().(*Function).Name)
	assert.Contains(t, fn.String(), "<anonymous>")
}

func TestFunctionCopyIsIndependentValue(t *testing.T) {
	fn := NewFunction("f", nil, []string{"x"}, false, nil)
	cp := fn.Copy()
	assert.NotSame(t, fn, cp)
	assert.Equal(t, fn.Name, cp.(*Function).Name)
}

func TestFunctionSetContext(t *testing.T) {
	fn := NewFunction("f", nil, nil, false, nil)
	ctx := value.NewContext("<test>", nil, nil)
	fn.SetContext(ctx)
	assert.Same(t, ctx, fn.Ctx())
}

func TestBuiltinFunctionStringIncludesName(t *testing.T) {
	b := NewBuiltinFunction("len")
	assert.Contains(t, b.String(), "len")
	assert.Equal(t, value.TypeFunction, b.Type())
	assert.True(t, b.IsTrue())
}

func TestBuiltinFunctionCopyPreservesName(t *testing.T) {
	b := NewBuiltinFunction("type")
	cp := b.Copy().(*BuiltinFunction)
	assert.Equal(t, "type", cp.Name)
	assert.NotSame(t, b, cp)
}
