/*
File   : cloudy/cloudy.go
Package: cloudy
*/

// Package cloudy wires the lexer, parser, and interpreter into the
// single entry point every other surface (REPL, CLI, the `run`
// builtin) drives a script through.
package cloudy

import (
	"os"

	"github.com/nandu-not-bot/cloudy/builtins"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/function"
	"github.com/nandu-not-bot/cloudy/interp"
	"github.com/nandu-not-bot/cloudy/lexer"
	"github.com/nandu-not-bot/cloudy/parser"
	"github.com/nandu-not-bot/cloudy/value"
)

func init() {
	builtins.RunCallback = RunFile
}

// NewGlobalContext builds a fresh top-level Context with every builtin
// bound by name, plus the `null` constant — the starting environment
// every REPL session and script execution runs against.
func NewGlobalContext() *value.Context {
	ctx := value.NewContext("<program>", nil, nil)
	ctx.SymbolTable = value.NewSymbolTable(nil)
	for _, name := range builtins.Names() {
		ctx.SymbolTable.Set(name, function.NewBuiltinFunction(name).SetContext(ctx))
	}
	ctx.SymbolTable.Set("null", value.NewNull())
	ctx.SymbolTable.Set("true", value.NewBool(true))
	ctx.SymbolTable.Set("false", value.NewBool(false))
	return ctx
}

// Run lexes, parses, and interprets source text under filename, against
// ctx. A nil ctx gets a fresh global context.
func Run(filename, source string, ctx *value.Context) (value.Value, *cerr.Error) {
	if ctx == nil {
		ctx = NewGlobalContext()
	}

	lex := lexer.NewLexer(filename, source)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}

	// Empty source lexes to a lone EOF token; the reference interpreter
	// special-cases this to an empty string rather than running an empty
	// program through the parser.
	if len(tokens) == 1 && tokens[0].Kind == lexer.EOF {
		return value.NewString(""), nil
	}

	p := parser.NewParser(tokens)
	res := p.Parse()
	if res.Error != nil {
		return nil, res.Error
	}

	interpreter := interp.NewInterpreter()
	rt := interpreter.VisitProgram(res.Node, ctx)
	if rt.Error != nil {
		return nil, rt.Error
	}
	return rt.Value, nil
}

// RunFile reads filename off disk and runs it against a fresh global
// context — the implementation behind the `run` builtin, wired in via
// builtins.RunCallback at package init so builtins need not import this
// package back.
func RunFile(filename string) (value.Value, *cerr.Error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, cerr.New(cerr.Runtime, nil, nil, "Failed to load script \""+filename+"\": "+err.Error())
	}
	return Run(filename, string(data), nil)
}
