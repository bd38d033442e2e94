/*
File   : cloudy/value/list.go
Package: value
*/
package value

import (
	"strconv"
	"strings"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// List is Cloudy's mutable, ordered collection. Elements is a pointer
// to the backing slice so that Copy (used whenever a value is passed
// around or bound to a new name) produces a new wrapper sharing the
// same underlying storage — append/pop through any copy is visible to
// every other holder of the same List, matching the reference
// semantics user code expects from built-ins like `append`.
type List struct {
	base
	Elements *[]Value
}

func NewList(elements []Value) *List {
	return &List{Elements: &elements}
}

func (l *List) Type() string { return TypeList }

func (l *List) String() string {
	parts := make([]string, len(*l.Elements))
	for i, el := range *l.Elements {
		parts[i] = reprOf(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) IsTrue() bool { return len(*l.Elements) > 0 }

func (l *List) Copy() Value {
	cp := &List{Elements: l.Elements}
	cp.posStart, cp.posEnd, cp.context = l.posStart, l.posEnd, l.context
	return cp
}

func (l *List) SetPos(start, end *lexer.Position) Value { l.setPos(start, end); return l }
func (l *List) SetContext(ctx *Context) Value            { l.setContext(ctx); return l }

// Add implements list concatenation: a new List with a fresh backing
// slice, leaving both operands untouched.
func (l *List) Add(other Value) (Value, *cerr.Error) {
	ol, ok := other.(*List)
	if !ok {
		return nil, illegalOp(l, other)
	}
	combined := make([]Value, 0, len(*l.Elements)+len(*ol.Elements))
	combined = append(combined, *l.Elements...)
	combined = append(combined, *ol.Elements...)
	return NewList(combined), nil
}

// Mul implements list repetition: [1,2] * 3 == [1,2,1,2,1,2].
func (l *List) Mul(other Value) (Value, *cerr.Error) {
	oi, ok := other.(*Int)
	if !ok || oi.Val < 0 {
		return nil, illegalOp(l, other)
	}
	var out []Value
	for i := int64(0); i < oi.Val; i++ {
		out = append(out, *l.Elements...)
	}
	return NewList(out), nil
}

func (l *List) normIndex(i int) int {
	if i < 0 {
		return i + len(*l.Elements)
	}
	return i
}

// Get returns the element at index i (Python-style negative indices
// allowed).
func (l *List) Get(i int) (Value, *cerr.Error) {
	n := l.normIndex(i)
	if n < 0 || n >= len(*l.Elements) {
		return nil, cerr.New(cerr.IndexOutOfRange, l.posStart, l.posEnd, "List index "+strconv.Itoa(i)+" out of range")
	}
	return (*l.Elements)[n], nil
}

// Set replaces the element at index i in place.
func (l *List) Set(i int, v Value) *cerr.Error {
	n := l.normIndex(i)
	if n < 0 || n >= len(*l.Elements) {
		return cerr.New(cerr.IndexOutOfRange, l.posStart, l.posEnd, "List index "+strconv.Itoa(i)+" out of range")
	}
	(*l.Elements)[n] = v
	return nil
}

// Append adds v to the end of the list, mutating the shared backing
// slice in place.
func (l *List) Append(v Value) {
	*l.Elements = append(*l.Elements, v)
}

// Pop removes and returns the element at index i.
func (l *List) Pop(i int) (Value, *cerr.Error) {
	n := l.normIndex(i)
	if n < 0 || n >= len(*l.Elements) {
		return nil, cerr.New(cerr.IndexOutOfRange, l.posStart, l.posEnd, "List index "+strconv.Itoa(i)+" out of range")
	}
	v := (*l.Elements)[n]
	*l.Elements = append((*l.Elements)[:n], (*l.Elements)[n+1:]...)
	return v, nil
}

// Extend appends every element of other's list to l, in place.
func (l *List) Extend(other *List) {
	*l.Elements = append(*l.Elements, *other.Elements...)
}

func (l *List) Len() int { return len(*l.Elements) }

// Contains implements the `in` membership test: whether v equals (by
// Eq) any element.
func (l *List) Contains(v Value) Value {
	for _, el := range *l.Elements {
		if eq, ok := el.(interface{ Eq(Value) Value }); ok {
			if b, ok := eq.Eq(v).(*Bool); ok && b.Val {
				return NewBool(true)
			}
		}
	}
	return NewBool(false)
}

func (l *List) Eq(other Value) Value {
	ol, ok := other.(*List)
	if !ok || len(*l.Elements) != len(*ol.Elements) {
		return NewBool(false)
	}
	for i, el := range *l.Elements {
		eq, ok := el.(interface{ Eq(Value) Value })
		if !ok {
			return NewBool(false)
		}
		b, ok := eq.Eq((*ol.Elements)[i]).(*Bool)
		if !ok || !b.Val {
			return NewBool(false)
		}
	}
	return NewBool(true)
}

func (l *List) Ne(other Value) Value {
	eq := l.Eq(other).(*Bool)
	return NewBool(!eq.Val)
}

// reprOf renders a value the way it should look nested inside a
// List/Dict's own String: strings get quoted, everything else uses its
// normal String form.
func reprOf(v Value) string {
	if s, ok := v.(*String); ok {
		return strconv.Quote(s.Val)
	}
	return v.String()
}
