/*
File   : cloudy/value/number_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArithmetic(t *testing.T) {
	sum, err := NewInt(2).Add(NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, int64(5), sum.(*Int).Val)

	diff, err := NewInt(10).Sub(NewInt(4))
	require.Nil(t, err)
	assert.Equal(t, int64(6), diff.(*Int).Val)

	prod, err := NewInt(6).Mul(NewFloat(0.5))
	require.Nil(t, err)
	assert.Equal(t, 3.0, prod.(*Float).Val)
}

func TestDivisionAlwaysFloat(t *testing.T) {
	result, err := NewInt(7).Div(NewInt(2))
	require.Nil(t, err)
	assert.IsType(t, &Float{}, result)
	assert.Equal(t, 3.5, result.(*Float).Val)
}

func TestFloorDivAndModNegativeAware(t *testing.T) {
	q, err := NewInt(-7).FloorDiv(NewInt(2))
	require.Nil(t, err)
	assert.Equal(t, int64(-4), q.(*Int).Val)

	m, err := NewInt(-7).Mod(NewInt(2))
	require.Nil(t, err)
	assert.Equal(t, int64(1), m.(*Int).Val)
}

func TestDivisionByZero(t *testing.T) {
	_, err := NewInt(1).Div(NewInt(0))
	require.NotNil(t, err)
}

func TestBoolCoercesToNumberInArithmetic(t *testing.T) {
	sum, err := NewBool(true).Add(NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, int64(2), sum.(*Int).Val)

	sum2, err := NewInt(1).Add(NewBool(true))
	require.Nil(t, err)
	assert.Equal(t, int64(2), sum2.(*Int).Val)

	prod, err := NewBool(false).Mul(NewFloat(3.5))
	require.Nil(t, err)
	assert.Equal(t, 0.0, prod.(*Float).Val)
}

func TestCrossTypeNotEqualIsTolerant(t *testing.T) {
	ne := NewInt(1).Ne(NewString("1"))
	assert.True(t, ne.IsTrue())

	eq := NewInt(1).Eq(NewString("1"))
	assert.False(t, eq.IsTrue())
}

func TestOrderedComparisonRejectsNonNumeric(t *testing.T) {
	_, err := NewInt(1).Lt(NewString("x"))
	require.NotNil(t, err)
}
