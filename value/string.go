/*
File   : cloudy/value/string.go
Package: value
*/
package value

import (
	"strconv"
	"strings"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// String is a Cloudy string: immutable, UTF-8 text.
type String struct {
	base
	Val string
}

func NewString(v string) *String { return &String{Val: v} }

func (s *String) Type() string   { return TypeString }
func (s *String) String() string { return s.Val }
func (s *String) IsTrue() bool   { return len(s.Val) > 0 }
func (s *String) Copy() Value {
	cp := &String{Val: s.Val}
	cp.posStart, cp.posEnd, cp.context = s.posStart, s.posEnd, s.context
	return cp
}
func (s *String) SetPos(start, end *lexer.Position) Value { s.setPos(start, end); return s }
func (s *String) SetContext(ctx *Context) Value            { s.setContext(ctx); return s }

// Add implements string concatenation; the right operand must also be a
// String.
func (s *String) Add(other Value) (Value, *cerr.Error) {
	os, ok := other.(*String)
	if !ok {
		return nil, illegalOp(s, other)
	}
	return NewString(s.Val + os.Val), nil
}

// Mul implements string repetition: "ab" * 3 == "ababab".
func (s *String) Mul(other Value) (Value, *cerr.Error) {
	oi, ok := other.(*Int)
	if !ok {
		return nil, illegalOp(s, other)
	}
	if oi.Val < 0 {
		return nil, illegalOp(s, other)
	}
	return NewString(strings.Repeat(s.Val, int(oi.Val))), nil
}

func (s *String) Eq(other Value) Value {
	os, ok := other.(*String)
	if !ok {
		return NewBool(false)
	}
	return NewBool(s.Val == os.Val)
}

func (s *String) Ne(other Value) Value {
	os, ok := other.(*String)
	if !ok {
		return NewBool(true)
	}
	return NewBool(s.Val != os.Val)
}

func (s *String) Lt(other Value) (Value, *cerr.Error)  { return s.ordered(other, func(a, b string) bool { return a < b }) }
func (s *String) Gt(other Value) (Value, *cerr.Error)  { return s.ordered(other, func(a, b string) bool { return a > b }) }
func (s *String) Lte(other Value) (Value, *cerr.Error) { return s.ordered(other, func(a, b string) bool { return a <= b }) }
func (s *String) Gte(other Value) (Value, *cerr.Error) { return s.ordered(other, func(a, b string) bool { return a >= b }) }

func (s *String) ordered(other Value, cmp func(a, b string) bool) (Value, *cerr.Error) {
	os, ok := other.(*String)
	if !ok {
		return nil, illegalOp(s, other)
	}
	return NewBool(cmp(s.Val, os.Val)), nil
}

// Contains implements the `in` membership test: substring containment.
func (s *String) Contains(other Value) (Value, *cerr.Error) {
	os, ok := other.(*String)
	if !ok {
		return nil, illegalOp(other, s)
	}
	return NewBool(strings.Contains(s.Val, os.Val)), nil
}

// Len is exposed for the `len()` builtin and list/dict parity.
func (s *String) Len() int { return len([]rune(s.Val)) }

// Index returns the single-character substring at a (possibly
// negative, Python-style) index.
func (s *String) Index(i int) (Value, *cerr.Error) {
	runes := []rune(s.Val)
	norm := i
	if norm < 0 {
		norm += len(runes)
	}
	if norm < 0 || norm >= len(runes) {
		return nil, cerr.New(cerr.IndexOutOfRange, s.posStart, s.posEnd, "String index "+strconv.Itoa(i)+" out of range")
	}
	return NewString(string(runes[norm])), nil
}
