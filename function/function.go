/*
File   : cloudy/function/function.go
Package: function
*/

// Package function holds Cloudy's two callable value kinds, Function
// (user-defined, via `func`) and BuiltinFunction (implemented in Go,
// registered by the builtins package). Both are plain data satisfying
// value.Value; the actual call protocol — arity check, new Context,
// argument binding, body evaluation — lives in the interp package so
// that neither function nor value needs to import interp (which must
// import both of them).
package function

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/lexer"
	"github.com/nandu-not-bot/cloudy/value"
)

// Function is a user-defined function: its body AST, parameter names,
// and the context it closed over at definition time.
type Function struct {
	posStart, posEnd *lexer.Position
	context          *value.Context

	Name             string
	Body             ast.Node
	ArgNames         []string
	ShouldAutoReturn bool
	CapturedContext  *value.Context
}

// NewFunction builds a Function value. name may be "" for an anonymous
// function expression.
func NewFunction(name string, body ast.Node, argNames []string, shouldAutoReturn bool, capturedContext *value.Context) *Function {
	return &Function{Name: name, Body: body, ArgNames: argNames, ShouldAutoReturn: shouldAutoReturn, CapturedContext: capturedContext}
}

func (f *Function) Type() string { return value.TypeFunction }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return "<function " + name + ">"
}

func (f *Function) IsTrue() bool { return true }

func (f *Function) Copy() Value {
	cp := &Function{
		Name: f.Name, Body: f.Body, ArgNames: f.ArgNames,
		ShouldAutoReturn: f.ShouldAutoReturn, CapturedContext: f.CapturedContext,
	}
	cp.posStart, cp.posEnd, cp.context = f.posStart, f.posEnd, f.context
	return cp
}

func (f *Function) Pos() (*lexer.Position, *lexer.Position) { return f.posStart, f.posEnd }
func (f *Function) SetPos(start, end *lexer.Position) Value {
	f.posStart, f.posEnd = start, end
	return f
}

func (f *Function) Ctx() *value.Context { return f.context }
func (f *Function) SetContext(ctx *value.Context) Value {
	f.context = ctx
	return f
}

// BuiltinFunction is a callable implemented in Go. The builtins
// package registers each by name; the interp package looks the name
// back up via the Name field to find and invoke the matching Go
// implementation (kept out of this package to avoid function needing
// to import interp).
type BuiltinFunction struct {
	posStart, posEnd *lexer.Position
	context          *value.Context

	Name string
}

func NewBuiltinFunction(name string) *BuiltinFunction {
	return &BuiltinFunction{Name: name}
}

func (f *BuiltinFunction) Type() string   { return value.TypeFunction }
func (f *BuiltinFunction) String() string { return "<builtin function " + f.Name + ">" }
func (f *BuiltinFunction) IsTrue() bool   { return true }

func (f *BuiltinFunction) Copy() Value {
	cp := &BuiltinFunction{Name: f.Name}
	cp.posStart, cp.posEnd, cp.context = f.posStart, f.posEnd, f.context
	return cp
}

func (f *BuiltinFunction) Pos() (*lexer.Position, *lexer.Position) { return f.posStart, f.posEnd }
func (f *BuiltinFunction) SetPos(start, end *lexer.Position) Value {
	f.posStart, f.posEnd = start, end
	return f
}

func (f *BuiltinFunction) Ctx() *value.Context { return f.context }
func (f *BuiltinFunction) SetContext(ctx *value.Context) Value {
	f.context = ctx
	return f
}

// Value is a local alias for value.Value so this file's method
// receivers read naturally; both Function and BuiltinFunction satisfy
// value.Value.
type Value = value.Value
