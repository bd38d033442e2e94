/*
File   : cloudy/builtins/builtins_test.go
Package: builtins
*/
package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-not-bot/cloudy/value"
)

func ctxWith(args map[string]value.Value) *value.Context {
	ctx := value.NewContext("<test>", nil, nil)
	ctx.SymbolTable = value.NewSymbolTable(nil)
	for k, v := range args {
		ctx.SymbolTable.Set(k, v)
	}
	return ctx
}

func TestLenAcrossTypes(t *testing.T) {
	spec := Registry["len"]
	require.NotNil(t, spec)

	cases := []struct {
		val  value.Value
		want int64
	}{
		{value.NewString("hello"), 5},
		{value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)}), 2},
	}
	for _, c := range cases {
		result, err := spec.Fn(ctxWith(map[string]value.Value{"value": c.val}))
		require.Nil(t, err)
		assert.Equal(t, c.want, result.(*value.Int).Val)
	}
}

func TestTypeBuiltin(t *testing.T) {
	spec := Registry["type"]
	require.NotNil(t, spec)

	result, err := spec.Fn(ctxWith(map[string]value.Value{"value": value.NewInt(1)}))
	require.Nil(t, err)
	assert.Equal(t, "int", result.(*value.String).Val)
}

func TestAppendPop(t *testing.T) {
	list := value.NewList([]value.Value{value.NewInt(1)})

	appendSpec := Registry["append"]
	_, err := appendSpec.Fn(ctxWith(map[string]value.Value{"list": list, "value": value.NewInt(2)}))
	require.Nil(t, err)
	assert.Equal(t, 2, list.Len())

	popSpec := Registry["pop"]
	popped, err := popSpec.Fn(ctxWith(map[string]value.Value{"list": list, "index": value.NewInt(0)}))
	require.Nil(t, err)
	assert.Equal(t, int64(1), popped.(*value.Int).Val)
	assert.Equal(t, 1, list.Len())
}

func TestStrUpperLowerSplitJoin(t *testing.T) {
	upper := Registry["str_upper"]
	result, err := upper.Fn(ctxWith(map[string]value.Value{"value": value.NewString("ab")}))
	require.Nil(t, err)
	assert.Equal(t, "AB", result.(*value.String).Val)

	split := Registry["str_split"]
	parts, err := split.Fn(ctxWith(map[string]value.Value{"value": value.NewString("a,b,c"), "sep": value.NewString(",")}))
	require.Nil(t, err)
	assert.Equal(t, 3, parts.(*value.List).Len())

	join := Registry["str_join"]
	joined, err := join.Fn(ctxWith(map[string]value.Value{"sep": value.NewString("-"), "list": parts}))
	require.Nil(t, err)
	assert.Equal(t, "a-b-c", joined.(*value.String).Val)
}

func TestJSONRoundTrip(t *testing.T) {
	encode := Registry["json_encode"]
	decode := Registry["json_decode"]

	d := value.NewDict()
	d.Set("x", value.NewInt(1))

	encoded, err := encode.Fn(ctxWith(map[string]value.Value{"value": d}))
	require.Nil(t, err)

	decoded, err := decode.Fn(ctxWith(map[string]value.Value{"value": encoded}))
	require.Nil(t, err)

	roundTripped := decoded.(*value.Dict)
	v, err := roundTripped.Get("x")
	require.Nil(t, err)
	assert.Equal(t, int64(1), v.(*value.Int).Val)
}

func TestMathBuiltins(t *testing.T) {
	sqrt := Registry["math_sqrt"]
	result, err := sqrt.Fn(ctxWith(map[string]value.Value{"value": value.NewInt(9)}))
	require.Nil(t, err)
	assert.Equal(t, 3.0, result.(*value.Float).Val)

	floor := Registry["math_floor"]
	f, err := floor.Fn(ctxWith(map[string]value.Value{"value": value.NewFloat(3.7)}))
	require.Nil(t, err)
	assert.Equal(t, int64(3), f.(*value.Int).Val)
}
