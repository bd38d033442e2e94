/*
File   : cloudy/value/list_dict_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intsOf extracts the plain int64 contents of a List of Ints, so
// structural comparisons don't trip over the embedded Context/Position
// pointers that assert.Equal would otherwise have to traverse.
func intsOf(l *List) []int64 {
	out := make([]int64, l.Len())
	for i, v := range *l.Elements {
		out[i] = v.(*Int).Val
	}
	return out
}

func TestListConcatProducesExpectedElementOrder(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewInt(3)})

	sum, err := a.Add(b)
	require.Nil(t, err)

	if diff := cmp.Diff([]int64{1, 2, 3}, intsOf(sum.(*List))); diff != "" {
		t.Errorf("concatenated list mismatch (-want +got):\n%s", diff)
	}
}

func TestListCopySharesBackingStorage(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2)})
	cp := l.Copy().(*List)

	cp.Append(NewInt(3))

	assert.Equal(t, 3, l.Len(), "append through a copy must be visible on the original")
}

func TestListAppendPopExtend(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2)})
	l.Append(NewInt(3))
	assert.Equal(t, 3, l.Len())

	v, err := l.Pop(0)
	require.Nil(t, err)
	assert.Equal(t, int64(1), v.(*Int).Val)
	assert.Equal(t, 2, l.Len())

	other := NewList([]Value{NewInt(9)})
	l.Extend(other)
	assert.Equal(t, 3, l.Len())
}

func TestListNegativeIndex(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})
	v, err := l.Get(-1)
	require.Nil(t, err)
	assert.Equal(t, int64(3), v.(*Int).Val)
}

func TestListOutOfRange(t *testing.T) {
	l := NewList([]Value{NewInt(1)})
	_, err := l.Get(5)
	require.NotNil(t, err)
}

func TestListConcatAndRepeat(t *testing.T) {
	a := NewList([]Value{NewInt(1)})
	b := NewList([]Value{NewInt(2)})
	sum, err := a.Add(b)
	require.Nil(t, err)
	assert.Equal(t, 2, sum.(*List).Len())

	rep, err := a.Mul(NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, 3, rep.(*List).Len())
}

func TestDictSetGetPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", NewInt(2))
	d.Set("a", NewInt(1))

	assert.Equal(t, []string{"b", "a"}, *d.Keys)

	v, err := d.Get("a")
	require.Nil(t, err)
	assert.Equal(t, int64(1), v.(*Int).Val)
}

func TestDictMissingKeyErrors(t *testing.T) {
	d := NewDict()
	_, err := d.Get("missing")
	require.NotNil(t, err)

	err2 := d.Delete("missing")
	require.NotNil(t, err2)
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.Set("x", NewInt(1))
	require.Nil(t, d.Delete("x"))
	assert.Equal(t, 0, d.Len())
	_, err := d.Get("x")
	require.NotNil(t, err)
}
