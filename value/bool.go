/*
File   : cloudy/value/bool.go
Package: value
*/
package value

import (
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// Bool is a Cloudy boolean.
type Bool struct {
	base
	Val bool
}

func NewBool(v bool) *Bool { return &Bool{Val: v} }

func (b *Bool) Type() string { return TypeBool }
func (b *Bool) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}
func (b *Bool) IsTrue() bool { return b.Val }
func (b *Bool) Copy() Value {
	cp := &Bool{Val: b.Val}
	cp.posStart, cp.posEnd, cp.context = b.posStart, b.posEnd, b.context
	return cp
}
func (b *Bool) SetPos(start, end *lexer.Position) Value { b.setPos(start, end); return b }
func (b *Bool) SetContext(ctx *Context) Value            { b.setContext(ctx); return b }

func (b *Bool) Eq(other Value) Value {
	ob, ok := other.(*Bool)
	if !ok {
		return NewBool(false)
	}
	return NewBool(b.Val == ob.Val)
}

// Ne follows the same cross-type-tolerant rule as the numeric variants:
// comparing against an incompatible type is true, not an error.
func (b *Bool) Ne(other Value) Value {
	ob, ok := other.(*Bool)
	if !ok {
		return NewBool(true)
	}
	return NewBool(b.Val != ob.Val)
}

// Arithmetic on a Bool left operand coerces it to 0/1 and defers to the
// shared numeric dispatch, per the language's Int/Bool arithmetic
// interop.
func (b *Bool) Add(other Value) (Value, *cerr.Error)      { return numericBinOp(b, other, "+", addInt, addFloat) }
func (b *Bool) Sub(other Value) (Value, *cerr.Error)      { return numericBinOp(b, other, "-", subInt, subFloat) }
func (b *Bool) Mul(other Value) (Value, *cerr.Error)      { return numericBinOp(b, other, "*", mulInt, mulFloat) }
func (b *Bool) Div(other Value) (Value, *cerr.Error)      { return numDiv(b, other) }
func (b *Bool) FloorDiv(other Value) (Value, *cerr.Error) { return numFloorDiv(b, other) }
func (b *Bool) Mod(other Value) (Value, *cerr.Error)      { return numMod(b, other) }
func (b *Bool) Pow(other Value) (Value, *cerr.Error)      { return numPow(b, other) }
func (b *Bool) Lt(other Value) (Value, *cerr.Error)       { return numOrdered(b, other, ltCmp) }
func (b *Bool) Gt(other Value) (Value, *cerr.Error)       { return numOrdered(b, other, gtCmp) }
func (b *Bool) Lte(other Value) (Value, *cerr.Error)      { return numOrdered(b, other, lteCmp) }
func (b *Bool) Gte(other Value) (Value, *cerr.Error)      { return numOrdered(b, other, gteCmp) }

// And, Or and Not are free functions rather than methods: per the
// language's boolean semantics, `and`/`or`/`not` always produce a Bool
// regardless of either operand's concrete type, so there is no
// per-variant dispatch table to build — only each operand's IsTrue.
func And(left, right Value) Value { return NewBool(left.IsTrue() && right.IsTrue()) }
func Or(left, right Value) Value  { return NewBool(left.IsTrue() || right.IsTrue()) }
func Not(operand Value) Value     { return NewBool(!operand.IsTrue()) }
