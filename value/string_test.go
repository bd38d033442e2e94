/*
File   : cloudy/value/string_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringConcatAndRepeat(t *testing.T) {
	sum, err := NewString("foo").Add(NewString("bar"))
	require.Nil(t, err)
	assert.Equal(t, "foobar", sum.(*String).Val)

	rep, err := NewString("ab").Mul(NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, "ababab", rep.(*String).Val)
}

func TestStringNegativeIndex(t *testing.T) {
	v, err := NewString("hello").Index(-1)
	require.Nil(t, err)
	assert.Equal(t, "o", v.(*String).Val)
}

func TestStringContainsSubstring(t *testing.T) {
	v, err := NewString("hello world").Contains(NewString("wor"))
	require.Nil(t, err)
	assert.True(t, v.IsTrue())
}

func TestStringOrdering(t *testing.T) {
	v, err := NewString("abc").Lt(NewString("abd"))
	require.Nil(t, err)
	assert.True(t, v.IsTrue())
}
