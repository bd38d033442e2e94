/*
File   : cloudy/interp/call.go
Package: interp
*/
package interp

import (
	"strconv"

	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/builtins"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/function"
	"github.com/nandu-not-bot/cloudy/lexer"
	"github.com/nandu-not-bot/cloudy/value"
)

func (in *Interpreter) visitFuncDefNode(n *ast.FuncDefNode, ctx *value.Context) *RTResult {
	res := NewRTResult()

	name := ""
	if n.NameTok != nil {
		name = n.NameTok.Value.(string)
	}

	argNames := make([]string, len(n.ArgNameToks))
	for i, tok := range n.ArgNameToks {
		argNames[i] = tok.Value.(string)
	}

	fn := function.NewFunction(name, n.Body, argNames, n.ShouldAutoReturn, ctx)
	start, end := n.Span()
	if n.PosStartOverride != nil {
		start = n.PosStartOverride
	}
	v := fn.SetPos(start, end).SetContext(ctx)

	if n.NameTok != nil {
		ctx.SymbolTable.Set(name, v)
	}
	return res.Success(v)
}

func (in *Interpreter) visitCallNode(n *ast.CallNode, ctx *value.Context) *RTResult {
	res := NewRTResult()

	callee := res.Register(in.Visit(n.Callee, ctx))
	if res.ShouldReturn() {
		return res
	}

	args := make([]value.Value, len(n.Args))
	for i, argNode := range n.Args {
		v := res.Register(in.Visit(argNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		args[i] = v
	}

	start, end := n.Span()
	callee = callee.Copy().SetPos(start, end)

	var result value.Value
	var err *cerr.Error

	switch fn := callee.(type) {
	case *function.Function:
		result, err = in.executeFunction(fn, args, start)
	case *function.BuiltinFunction:
		result, err = in.executeBuiltin(fn, args, start)
	default:
		err = in.runtimeError(ctx, start, end, "Value is not callable").WithKind(cerr.IllegalOperation)
	}
	if err != nil {
		return res.Failure(err)
	}
	return res.Success(result.SetContext(ctx).SetPos(start, end))
}

// executeFunction runs a user-defined function: arity check, a fresh
// Context scoped inside the function's captured (lexical) context, one
// argument binding per name, then the body. An auto-return function's
// result is its body's plain value; otherwise it is whatever value an
// explicit `return` produced, or null if the body never returned.
func (in *Interpreter) executeFunction(fn *function.Function, args []value.Value, callPos *lexer.Position) (value.Value, *cerr.Error) {
	res := NewRTResult()

	if len(args) != len(fn.ArgNames) {
		return nil, in.runtimeError(fn.CapturedContext, callPos, callPos,
			argCountMessage(fn.Name, len(fn.ArgNames), len(args))).WithKind(cerr.ArgumentCount)
	}

	execCtx := value.NewContext(displayName(fn.Name), fn.CapturedContext, callPos)
	execCtx.SymbolTable = value.NewSymbolTable(fn.CapturedContext.SymbolTable)

	for i, argName := range fn.ArgNames {
		argVal := args[i].Copy().SetContext(execCtx)
		execCtx.SymbolTable.Set(argName, argVal)
	}

	bodyVal := res.Register(in.Visit(fn.Body, execCtx))
	if res.Error != nil {
		return nil, res.Error
	}

	if fn.ShouldAutoReturn {
		return bodyVal, nil
	}
	if res.FuncReturnValue != nil {
		return res.FuncReturnValue, nil
	}
	return value.NewNull(), nil
}

// executeBuiltin binds args to the builtin's declared parameter names in
// a fresh Context, exactly as executeFunction does for a user-defined
// Function, then invokes the Go implementation.
func (in *Interpreter) executeBuiltin(fn *function.BuiltinFunction, args []value.Value, callPos *lexer.Position) (value.Value, *cerr.Error) {
	spec, ok := builtins.Registry[fn.Name]
	if !ok {
		return nil, in.runtimeError(fn.Ctx(), callPos, callPos, "'"+fn.Name+"' is not a recognized builtin").WithKind(cerr.UndefinedName)
	}
	if len(args) != len(spec.ArgNames) {
		return nil, in.runtimeError(fn.Ctx(), callPos, callPos,
			argCountMessage(fn.Name, len(spec.ArgNames), len(args))).WithKind(cerr.ArgumentCount)
	}

	execCtx := value.NewContext(displayName(fn.Name), fn.Ctx(), callPos)
	execCtx.SymbolTable = value.NewSymbolTable(nil)
	for i, argName := range spec.ArgNames {
		execCtx.SymbolTable.Set(argName, args[i].Copy().SetContext(execCtx))
	}

	return spec.Fn(execCtx)
}

func displayName(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}

func argCountMessage(name string, want, got int) string {
	return "'" + displayName(name) + "' expected " + strconv.Itoa(want) + " argument(s), got " + strconv.Itoa(got)
}
