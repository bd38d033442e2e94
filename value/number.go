/*
File   : cloudy/value/number.go
Package: value
*/
package value

import (
	"fmt"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// Int is a Cloudy integer.
type Int struct {
	base
	Val int64
}

func NewInt(v int64) *Int { return &Int{Val: v} }

func (n *Int) Type() string   { return TypeInt }
func (n *Int) String() string { return fmt.Sprintf("%d", n.Val) }
func (n *Int) IsTrue() bool   { return n.Val != 0 }
func (n *Int) Copy() Value {
	cp := &Int{Val: n.Val}
	cp.posStart, cp.posEnd, cp.context = n.posStart, n.posEnd, n.context
	return cp
}
func (n *Int) SetPos(start, end *lexer.Position) Value { n.setPos(start, end); return n }
func (n *Int) SetContext(ctx *Context) Value            { n.setContext(ctx); return n }

// Float is a Cloudy floating-point number.
type Float struct {
	base
	Val float64
}

func NewFloat(v float64) *Float { return &Float{Val: v} }

func (n *Float) Type() string   { return TypeFloat }
func (n *Float) String() string { return fmt.Sprintf("%g", n.Val) }
func (n *Float) IsTrue() bool   { return n.Val != 0 }
func (n *Float) Copy() Value {
	cp := &Float{Val: n.Val}
	cp.posStart, cp.posEnd, cp.context = n.posStart, n.posEnd, n.context
	return cp
}
func (n *Float) SetPos(start, end *lexer.Position) Value { n.setPos(start, end); return n }
func (n *Float) SetContext(ctx *Context) Value            { n.setContext(ctx); return n }

// asFloat64 reports the numeric value of a Value as a float64, and
// whether v itself is a Float (callers check this for both operands of
// a binary op to decide whether the result should be widened).
func asFloat64(v Value) (float64, bool) {
	switch n := v.(type) {
	case *Int:
		return float64(n.Val), false
	case *Float:
		return n.Val, true
	case *Bool:
		if n.Val {
			return 1, false
		}
		return 0, false
	default:
		return 0, false
	}
}

// isNumber reports whether v participates in arithmetic as a number.
// Bool is interoperable in arithmetic (coerces to 0/1), per the
// language's documented Int/Bool arithmetic interop.
func isNumber(v Value) bool {
	switch v.(type) {
	case *Int, *Float, *Bool:
		return true
	default:
		return false
	}
}

// numericBinOp implements the shared Int/Float arithmetic dispatch: if
// either operand is a Float the result is a Float, otherwise an Int.
// opName names the operator at the call site; it does not appear in the
// IllegalOperation error returned for a non-numeric right operand.
func numericBinOp(left Value, right Value, opName string,
	intOp func(a, b int64) (int64, *cerr.Error),
	floatOp func(a, b float64) (float64, *cerr.Error),
) (Value, *cerr.Error) {
	if !isNumber(right) {
		return nil, illegalOp(left, right)
	}

	lf, leftIsFloat := asFloat64(left)
	rf, rightIsFloat := asFloat64(right)

	if leftIsFloat || rightIsFloat {
		res, err := floatOp(lf, rf)
		if err != nil {
			return nil, err
		}
		return NewFloat(res), nil
	}

	res, err := intOp(asInt64(left), asInt64(right))
	if err != nil {
		return nil, err
	}
	return NewInt(res), nil
}

// asInt64 reports the integer value of a non-Float number (Int or
// Bool, coerced 0/1); only called once Float-ness has already been
// ruled out by the caller.
func asInt64(v Value) int64 {
	switch n := v.(type) {
	case *Int:
		return n.Val
	case *Bool:
		if n.Val {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func illegalOp(left, right Value) *cerr.Error {
	start, _ := left.Pos()
	_, end := right.Pos()
	return cerr.New(cerr.IllegalOperation, start, end, "Illegal operation")
}

// addInt/addFloat and friends are the primitive operations shared by
// Int, Float and Bool's arithmetic methods via numericBinOp.
func addInt(a, b int64) (int64, *cerr.Error)     { return a + b, nil }
func addFloat(a, b float64) (float64, *cerr.Error) { return a + b, nil }
func subInt(a, b int64) (int64, *cerr.Error)     { return a - b, nil }
func subFloat(a, b float64) (float64, *cerr.Error) { return a - b, nil }
func mulInt(a, b int64) (int64, *cerr.Error)     { return a * b, nil }
func mulFloat(a, b float64) (float64, *cerr.Error) { return a * b, nil }

func ltCmp(a, b float64) bool  { return a < b }
func gtCmp(a, b float64) bool  { return a > b }
func lteCmp(a, b float64) bool { return a <= b }
func gteCmp(a, b float64) bool { return a >= b }

// Add implements `+` for numbers; String/List implement their own Add
// for concatenation.
func (n *Int) Add(other Value) (Value, *cerr.Error) {
	return numericBinOp(n, other, "+", addInt, addFloat)
}
func (n *Float) Add(other Value) (Value, *cerr.Error) {
	return numericBinOp(n, other, "+", addInt, addFloat)
}

func (n *Int) Sub(other Value) (Value, *cerr.Error) {
	return numericBinOp(n, other, "-", subInt, subFloat)
}
func (n *Float) Sub(other Value) (Value, *cerr.Error) {
	return numericBinOp(n, other, "-", subInt, subFloat)
}

func (n *Int) Mul(other Value) (Value, *cerr.Error) {
	return numericBinOp(n, other, "*", mulInt, mulFloat)
}
func (n *Float) Mul(other Value) (Value, *cerr.Error) {
	return numericBinOp(n, other, "*", mulInt, mulFloat)
}

func divByZeroErr(left, right Value) *cerr.Error {
	start, _ := left.Pos()
	_, end := right.Pos()
	return cerr.New(cerr.DivisionByZero, start, end, "Division by zero")
}

// Div always produces a Float (true division), matching the reference
// language's `/` semantics — use `//` (FloorDiv) for integer division.
func (n *Int) Div(other Value) (Value, *cerr.Error) { return numDiv(n, other) }
func (n *Float) Div(other Value) (Value, *cerr.Error) { return numDiv(n, other) }

func numDiv(left, right Value) (Value, *cerr.Error) {
	if !isNumber(right) {
		return nil, illegalOp(left, right)
	}
	rf, _ := asFloat64(right)
	if rf == 0 {
		return nil, divByZeroErr(left, right)
	}
	lf, _ := asFloat64(left)
	return NewFloat(lf / rf), nil
}

func (n *Int) FloorDiv(other Value) (Value, *cerr.Error) { return numFloorDiv(n, other) }
func (n *Float) FloorDiv(other Value) (Value, *cerr.Error) { return numFloorDiv(n, other) }

func numFloorDiv(left, right Value) (Value, *cerr.Error) {
	return numericBinOp(left, right, "//",
		func(a, b int64) (int64, *cerr.Error) {
			if b == 0 {
				return 0, divByZeroErr(left, right)
			}
			q := a / b
			if (a%b != 0) && ((a < 0) != (b < 0)) {
				q--
			}
			return q, nil
		},
		func(a, b float64) (float64, *cerr.Error) {
			if b == 0 {
				return 0, divByZeroErr(left, right)
			}
			return floorFloat(a / b), nil
		})
}

func floorFloat(f float64) float64 {
	i := int64(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return float64(i)
}

func (n *Int) Mod(other Value) (Value, *cerr.Error) { return numMod(n, other) }
func (n *Float) Mod(other Value) (Value, *cerr.Error) { return numMod(n, other) }

func numMod(left, right Value) (Value, *cerr.Error) {
	return numericBinOp(left, right, "%",
		func(a, b int64) (int64, *cerr.Error) {
			if b == 0 {
				return 0, divByZeroErr(left, right)
			}
			m := a % b
			if m != 0 && ((m < 0) != (b < 0)) {
				m += b
			}
			return m, nil
		},
		func(a, b float64) (float64, *cerr.Error) {
			if b == 0 {
				return 0, divByZeroErr(left, right)
			}
			m := a - floorFloat(a/b)*b
			return m, nil
		})
}

func (n *Int) Pow(other Value) (Value, *cerr.Error) { return numPow(n, other) }
func (n *Float) Pow(other Value) (Value, *cerr.Error) { return numPow(n, other) }

func numPow(left, right Value) (Value, *cerr.Error) {
	if !isNumber(right) {
		return nil, illegalOp(left, right)
	}
	lf, leftIsFloat := asFloat64(left)
	rf, rightIsFloat := asFloat64(right)
	result := powFloat(lf, rf)
	if !leftIsFloat && !rightIsFloat && rf >= 0 {
		return NewInt(int64(result)), nil
	}
	return NewFloat(result), nil
}

func powFloat(base, exp float64) float64 {
	if exp == 0 {
		return 1
	}
	result := 1.0
	neg := exp < 0
	n := exp
	if neg {
		n = -n
	}
	for i := 0.0; i < n; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// comparison helpers shared by every pair of number variants.
func numCompare(left, right Value) (lf, rf float64, ok bool) {
	if !isNumber(left) || !isNumber(right) {
		return 0, 0, false
	}
	lf, _ = asFloat64(left)
	rf, _ = asFloat64(right)
	return lf, rf, true
}

func (n *Int) Eq(other Value) Value   { return numEq(n, other) }
func (n *Float) Eq(other Value) Value { return numEq(n, other) }

func numEq(left, right Value) Value {
	lf, rf, ok := numCompare(left, right)
	if !ok {
		return NewBool(false)
	}
	return NewBool(lf == rf)
}

func (n *Int) Ne(other Value) Value   { return numNe(n, other) }
func (n *Float) Ne(other Value) Value { return numNe(n, other) }

// numNe implements the cross-type-tolerant `!=`: comparing a number
// against an incompatible type is simply true, not a type error.
func numNe(left, right Value) Value {
	lf, rf, ok := numCompare(left, right)
	if !ok {
		return NewBool(true)
	}
	return NewBool(lf != rf)
}

func (n *Int) Lt(other Value) (Value, *cerr.Error)  { return numOrdered(n, other, func(a, b float64) bool { return a < b }) }
func (n *Float) Lt(other Value) (Value, *cerr.Error) { return numOrdered(n, other, func(a, b float64) bool { return a < b }) }
func (n *Int) Gt(other Value) (Value, *cerr.Error)  { return numOrdered(n, other, func(a, b float64) bool { return a > b }) }
func (n *Float) Gt(other Value) (Value, *cerr.Error) { return numOrdered(n, other, func(a, b float64) bool { return a > b }) }
func (n *Int) Lte(other Value) (Value, *cerr.Error) { return numOrdered(n, other, func(a, b float64) bool { return a <= b }) }
func (n *Float) Lte(other Value) (Value, *cerr.Error) { return numOrdered(n, other, func(a, b float64) bool { return a <= b }) }
func (n *Int) Gte(other Value) (Value, *cerr.Error) { return numOrdered(n, other, func(a, b float64) bool { return a >= b }) }
func (n *Float) Gte(other Value) (Value, *cerr.Error) { return numOrdered(n, other, func(a, b float64) bool { return a >= b }) }

func numOrdered(left, right Value, cmp func(a, b float64) bool) (Value, *cerr.Error) {
	lf, rf, ok := numCompare(left, right)
	if !ok {
		return nil, illegalOp(left, right)
	}
	return NewBool(cmp(lf, rf)), nil
}
