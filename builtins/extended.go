/*
File   : cloudy/builtins/extended.go
Package: builtins
*/
package builtins

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/value"
)

func init() {
	register(&Spec{Name: "str_upper", ArgNames: []string{"value"}, Fn: strCase(strings.ToUpper)})
	register(&Spec{Name: "str_lower", ArgNames: []string{"value"}, Fn: strCase(strings.ToLower)})
	register(&Spec{Name: "str_split", ArgNames: []string{"value", "sep"}, Fn: builtinStrSplit})
	register(&Spec{Name: "str_join", ArgNames: []string{"sep", "list"}, Fn: builtinStrJoin})
	register(&Spec{Name: "math_sqrt", ArgNames: []string{"value"}, Fn: mathUnary(math.Sqrt)})
	register(&Spec{Name: "math_floor", ArgNames: []string{"value"}, Fn: mathUnaryInt(math.Floor)})
	register(&Spec{Name: "math_ceil", ArgNames: []string{"value"}, Fn: mathUnaryInt(math.Ceil)})
	register(&Spec{Name: "json_encode", ArgNames: []string{"value"}, Fn: builtinJSONEncode})
	register(&Spec{Name: "json_decode", ArgNames: []string{"value"}, Fn: builtinJSONDecode})
}

func strCase(f func(string) string) func(ctx *value.Context) (value.Value, *cerr.Error) {
	return func(ctx *value.Context) (value.Value, *cerr.Error) {
		s, ok := arg(ctx, "value").(*value.String)
		if !ok {
			return nil, typeMismatch(arg(ctx, "value"), "a string argument")
		}
		return value.NewString(f(s.Val)), nil
	}
}

func builtinStrSplit(ctx *value.Context) (value.Value, *cerr.Error) {
	s, ok := arg(ctx, "value").(*value.String)
	if !ok {
		return nil, typeMismatch(arg(ctx, "value"), "a string as first argument")
	}
	sep, ok := arg(ctx, "sep").(*value.String)
	if !ok {
		return nil, typeMismatch(arg(ctx, "sep"), "a string separator as second argument")
	}
	parts := strings.Split(s.Val, sep.Val)
	elements := make([]value.Value, len(parts))
	for i, p := range parts {
		elements[i] = value.NewString(p)
	}
	return value.NewList(elements), nil
}

func builtinStrJoin(ctx *value.Context) (value.Value, *cerr.Error) {
	sep, ok := arg(ctx, "sep").(*value.String)
	if !ok {
		return nil, typeMismatch(arg(ctx, "sep"), "a string separator as first argument")
	}
	l, ok := arg(ctx, "list").(*value.List)
	if !ok {
		return nil, typeMismatch(arg(ctx, "list"), "a list as second argument")
	}
	parts := make([]string, l.Len())
	for i := 0; i < l.Len(); i++ {
		el, _ := l.Get(i)
		s, ok := el.(*value.String)
		if !ok {
			return nil, typeMismatch(el, "a list of strings")
		}
		parts[i] = s.Val
	}
	return value.NewString(strings.Join(parts, sep.Val)), nil
}

func numericArg(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case *value.Int:
		return float64(n.Val), true
	case *value.Float:
		return n.Val, true
	default:
		return 0, false
	}
}

func mathUnary(f func(float64) float64) func(ctx *value.Context) (value.Value, *cerr.Error) {
	return func(ctx *value.Context) (value.Value, *cerr.Error) {
		n, ok := numericArg(arg(ctx, "value"))
		if !ok {
			return nil, typeMismatch(arg(ctx, "value"), "a number argument")
		}
		return value.NewFloat(f(n)), nil
	}
}

func mathUnaryInt(f func(float64) float64) func(ctx *value.Context) (value.Value, *cerr.Error) {
	return func(ctx *value.Context) (value.Value, *cerr.Error) {
		n, ok := numericArg(arg(ctx, "value"))
		if !ok {
			return nil, typeMismatch(arg(ctx, "value"), "a number argument")
		}
		return value.NewInt(int64(f(n))), nil
	}
}

// builtinJSONEncode renders a value to a JSON string via an
// intermediate json.Marshal of a generic Go representation.
func builtinJSONEncode(ctx *value.Context) (value.Value, *cerr.Error) {
	v := arg(ctx, "value")
	native, err := toNative(v)
	if err != nil {
		return nil, err
	}
	out, encErr := json.Marshal(native)
	if encErr != nil {
		return nil, typeMismatch(v, "a JSON-encodable value")
	}
	return value.NewString(string(out)), nil
}

func builtinJSONDecode(ctx *value.Context) (value.Value, *cerr.Error) {
	s, ok := arg(ctx, "value").(*value.String)
	if !ok {
		return nil, typeMismatch(arg(ctx, "value"), "a string argument")
	}
	var native interface{}
	if decErr := json.Unmarshal([]byte(s.Val), &native); decErr != nil {
		return nil, typeMismatch(s, "valid JSON text")
	}
	return fromNative(native), nil
}

func toNative(v value.Value) (interface{}, *cerr.Error) {
	switch val := v.(type) {
	case *value.Int:
		return val.Val, nil
	case *value.Float:
		return val.Val, nil
	case *value.Bool:
		return val.Val, nil
	case *value.String:
		return val.Val, nil
	case *value.Null:
		return nil, nil
	case *value.List:
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			el, _ := val.Get(i)
			n, err := toNative(el)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case *value.Dict:
		out := map[string]interface{}{}
		for _, k := range *val.Keys {
			el, _ := val.Get(k)
			n, err := toNative(el)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	default:
		return nil, typeMismatch(v, "a JSON-encodable value")
	}
}

func fromNative(v interface{}) value.Value {
	switch val := v.(type) {
	case nil:
		return value.NewNull()
	case bool:
		return value.NewBool(val)
	case float64:
		if val == math.Trunc(val) {
			return value.NewInt(int64(val))
		}
		return value.NewFloat(val)
	case string:
		return value.NewString(val)
	case []interface{}:
		elements := make([]value.Value, len(val))
		for i, el := range val {
			elements[i] = fromNative(el)
		}
		return value.NewList(elements)
	case map[string]interface{}:
		d := value.NewDict()
		for k, el := range val {
			d.Set(k, fromNative(el))
		}
		return d
	default:
		return value.NewNull()
	}
}
