/*
File   : cloudy/value/null.go
Package: value
*/
package value

import "github.com/nandu-not-bot/cloudy/lexer"

// Null is the singleton absence-of-value. NewNull allocates a fresh
// instance each call since position/context are per-use, not shared
// global state.
type Null struct {
	base
}

func NewNull() *Null { return &Null{} }

func (n *Null) Type() string            { return TypeNull }
func (n *Null) String() string          { return "null" }
func (n *Null) IsTrue() bool            { return false }
func (n *Null) Copy() Value {
	cp := &Null{}
	cp.posStart, cp.posEnd, cp.context = n.posStart, n.posEnd, n.context
	return cp
}
func (n *Null) SetPos(start, end *lexer.Position) Value { n.setPos(start, end); return n }
func (n *Null) SetContext(ctx *Context) Value            { n.setContext(ctx); return n }

func (n *Null) Eq(other Value) Value {
	_, ok := other.(*Null)
	return NewBool(ok)
}

func (n *Null) Ne(other Value) Value {
	_, ok := other.(*Null)
	return NewBool(!ok)
}
