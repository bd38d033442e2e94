/*
File   : cloudy/value/value.go
Package: value
*/

// Package value implements Cloudy's runtime value model: every value a
// program can hold (numbers, booleans, strings, lists, dicts, the null
// singleton, and — via the function package — user and builtin
// functions) plus the lexical scoping machinery (Context, SymbolTable)
// those values are produced and looked up in.
//
// Context and SymbolTable live here rather than in a separate package
// because every Value must carry a pointer back to the Context it was
// produced in, and a Context's SymbolTable stores Values — a genuine
// mutual dependency that a one-directional Go import cannot express
// across two packages without an interface{} escape hatch.
package value

import "github.com/nandu-not-bot/cloudy/lexer"

// Value is implemented by every Cloudy runtime value.
type Value interface {
	Type() string
	String() string
	IsTrue() bool
	Copy() Value

	Pos() (start, end *lexer.Position)
	SetPos(start, end *lexer.Position) Value

	Ctx() *Context
	SetContext(ctx *Context) Value
}

// base is embedded by every concrete Value to provide the position and
// context bookkeeping uniformly, so each variant only implements the
// handful of methods that give it its actual identity.
type base struct {
	posStart, posEnd *lexer.Position
	context          *Context
}

func (b *base) Pos() (*lexer.Position, *lexer.Position) { return b.posStart, b.posEnd }

func (b *base) setPos(start, end *lexer.Position) {
	b.posStart, b.posEnd = start, end
}

func (b *base) Ctx() *Context { return b.context }

func (b *base) setContext(ctx *Context) { b.context = ctx }

// Type name constants, returned by each variant's Type method and used
// in type-mismatch error messages and the `type()` builtin.
const (
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeString   = "string"
	TypeNull     = "null"
	TypeList     = "list"
	TypeDict     = "dict"
	TypeFunction = "function"
)
