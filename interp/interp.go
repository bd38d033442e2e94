/*
File   : cloudy/interp/interp.go
Package: interp
*/
package interp

import (
	"fmt"

	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
	"github.com/nandu-not-bot/cloudy/value"
)

// Interpreter walks an AST and evaluates it against a Context. It is
// stateless — all mutable state lives in the Context chain — so a
// single instance can be reused across a REPL session's many parses.
type Interpreter struct{}

func NewInterpreter() *Interpreter { return &Interpreter{} }

// Visit dispatches on node's concrete type, mirroring the reference
// interpreter's visit_<NodeType> method-per-node-kind structure.
func (in *Interpreter) Visit(node ast.Node, ctx *value.Context) *RTResult {
	switch n := node.(type) {
	case *ast.NumberNode:
		return in.visitNumberNode(n, ctx)
	case *ast.BoolNode:
		return in.visitBoolNode(n, ctx)
	case *ast.StringNode:
		return in.visitStringNode(n, ctx)
	case *ast.ListNode:
		return in.visitListNode(n, ctx)
	case *ast.DictNode:
		return in.visitDictNode(n, ctx)
	case *ast.VarAccessNode:
		return in.visitVarAccessNode(n, ctx)
	case *ast.VarAssignNode:
		return in.visitVarAssignNode(n, ctx)
	case *ast.IndexNode:
		return in.visitIndexNode(n, ctx)
	case *ast.IndexAssignNode:
		return in.visitIndexAssignNode(n, ctx)
	case *ast.DelNode:
		return in.visitDelNode(n, ctx)
	case *ast.BinOpNode:
		return in.visitBinOpNode(n, ctx)
	case *ast.UnaryOpNode:
		return in.visitUnaryOpNode(n, ctx)
	case *ast.IfNode:
		return in.visitIfNode(n, ctx)
	case *ast.ForNode:
		return in.visitForNode(n, ctx)
	case *ast.WhileNode:
		return in.visitWhileNode(n, ctx)
	case *ast.FuncDefNode:
		return in.visitFuncDefNode(n, ctx)
	case *ast.CallNode:
		return in.visitCallNode(n, ctx)
	case *ast.ReturnNode:
		return in.visitReturnNode(n, ctx)
	case *ast.BreakNode:
		return NewRTResult().SuccessBreak()
	case *ast.ContinueNode:
		return NewRTResult().SuccessContinue()
	default:
		res := NewRTResult()
		return res.Failure(cerr.New(cerr.Runtime, nil, nil, fmt.Sprintf("no visit method for %T", node)))
	}
}

// VisitProgram evaluates a parsed program — the top-level sequence of
// statements the parser hands back as a single *ast.ListNode — and
// yields the last statement's value, not a list wrapping every
// statement's value. This is distinct from Visit's generic handling of
// *ast.ListNode (shared with `[...]` literals and with if/for/while/func
// block bodies, which already force their own value via ShouldReturnNull
// or ShouldAutoReturn): the program root has no such override, so
// without this the result of running a script would always be a
// one-element-per-statement list instead of its trailing expression.
func (in *Interpreter) VisitProgram(node ast.Node, ctx *value.Context) *RTResult {
	res := NewRTResult()
	list, ok := node.(*ast.ListNode)
	if !ok {
		return in.Visit(node, ctx)
	}

	var last value.Value = value.NewNull()
	for _, stmt := range list.Elements {
		v := res.Register(in.Visit(stmt, ctx))
		if res.ShouldReturn() {
			return res
		}
		last = v
	}
	return res.Success(last)
}

func (in *Interpreter) visitNumberNode(n *ast.NumberNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	var v value.Value
	switch val := n.Tok.Value.(type) {
	case int64:
		v = value.NewInt(val)
	case float64:
		v = value.NewFloat(val)
	default:
		v = value.NewInt(0)
	}
	return res.Success(v.SetContext(ctx).SetPos(n.Tok.PosStart, n.Tok.PosEnd))
}

func (in *Interpreter) visitBoolNode(n *ast.BoolNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	b, _ := n.Tok.Value.(bool)
	v := value.NewBool(b)
	return res.Success(v.SetContext(ctx).SetPos(n.Tok.PosStart, n.Tok.PosEnd))
}

func (in *Interpreter) visitStringNode(n *ast.StringNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	s, _ := n.Tok.Value.(string)
	v := value.NewString(s)
	return res.Success(v.SetContext(ctx).SetPos(n.Tok.PosStart, n.Tok.PosEnd))
}

// visitListNode also serves as the evaluator for a parsed statement
// block (the parser represents both a `[...]` literal and a sequence
// of statements as an ast.ListNode): it evaluates every element in
// order, bailing out as soon as any signals return/break/continue/error.
func (in *Interpreter) visitListNode(n *ast.ListNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	var elements []value.Value
	for _, elNode := range n.Elements {
		v := res.Register(in.Visit(elNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		elements = append(elements, v)
	}
	return res.Success(value.NewList(elements).SetContext(ctx).SetPos(n.PosStart, n.PosEnd))
}

func (in *Interpreter) visitDictNode(n *ast.DictNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	d := value.NewDict()
	for _, pair := range n.Pairs {
		keyVal := res.Register(in.Visit(pair.Key, ctx))
		if res.ShouldReturn() {
			return res
		}
		keyStr, ok := keyVal.(*value.String)
		if !ok {
			start, end := pair.Key.Span()
			return res.Failure(in.runtimeError(ctx, start, end, "Dict keys must be strings"))
		}
		val := res.Register(in.Visit(pair.Value, ctx))
		if res.ShouldReturn() {
			return res
		}
		d.Set(keyStr.Val, val)
	}
	return res.Success(d.SetContext(ctx).SetPos(n.PosStart, n.PosEnd))
}

func (in *Interpreter) visitVarAccessNode(n *ast.VarAccessNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	name := n.NameTok.Value.(string)
	v, ok := ctx.SymbolTable.Get(name)
	if !ok {
		return res.Failure(in.runtimeError(ctx, n.NameTok.PosStart, n.NameTok.PosEnd, "'"+name+"' is not defined").WithKind(cerr.UndefinedName))
	}
	return res.Success(v.Copy().SetPos(n.NameTok.PosStart, n.NameTok.PosEnd).SetContext(ctx))
}

func (in *Interpreter) visitVarAssignNode(n *ast.VarAssignNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	name := n.NameTok.Value.(string)
	v := res.Register(in.Visit(n.ValueNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	ctx.SymbolTable.Set(name, v)
	return res.Success(v)
}

func (in *Interpreter) visitIndexNode(n *ast.IndexNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	data := res.Register(in.Visit(n.DataNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	idxVal := res.Register(in.Visit(n.IndexNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	start, end := n.Span()

	switch container := data.(type) {
	case *value.List:
		idx, ok := idxVal.(*value.Int)
		if !ok {
			return res.Failure(in.runtimeError(ctx, start, end, "List index must be an int"))
		}
		v, err := container.Get(int(idx.Val))
		if err != nil {
			return res.Failure(in.attachTrace(err, ctx))
		}
		return res.Success(v.Copy().SetPos(start, end).SetContext(ctx))
	case *value.Dict:
		key, ok := idxVal.(*value.String)
		if !ok {
			return res.Failure(in.runtimeError(ctx, start, end, "Dict key must be a string"))
		}
		v, err := container.Get(key.Val)
		if err != nil {
			return res.Failure(in.attachTrace(err, ctx))
		}
		return res.Success(v.Copy().SetPos(start, end).SetContext(ctx))
	case *value.String:
		idx, ok := idxVal.(*value.Int)
		if !ok {
			return res.Failure(in.runtimeError(ctx, start, end, "String index must be an int"))
		}
		v, err := container.Index(int(idx.Val))
		if err != nil {
			return res.Failure(in.attachTrace(err, ctx))
		}
		return res.Success(v.SetPos(start, end).SetContext(ctx))
	default:
		return res.Failure(in.runtimeError(ctx, start, end, "Value is not indexable").WithKind(cerr.IllegalOperation))
	}
}

func (in *Interpreter) visitIndexAssignNode(n *ast.IndexAssignNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	name := n.NameTok.Value.(string)
	target, ok := ctx.SymbolTable.Get(name)
	if !ok {
		return res.Failure(in.runtimeError(ctx, n.NameTok.PosStart, n.NameTok.PosEnd, "'"+name+"' is not defined").WithKind(cerr.UndefinedName))
	}

	idxVal := res.Register(in.Visit(n.IndexExpr, ctx))
	if res.ShouldReturn() {
		return res
	}
	newVal := res.Register(in.Visit(n.ValueNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	start, end := n.Span()

	switch container := target.(type) {
	case *value.List:
		idx, ok := idxVal.(*value.Int)
		if !ok {
			return res.Failure(in.runtimeError(ctx, start, end, "List index must be an int"))
		}
		if err := container.Set(int(idx.Val), newVal); err != nil {
			return res.Failure(in.attachTrace(err, ctx))
		}
	case *value.Dict:
		key, ok := idxVal.(*value.String)
		if !ok {
			return res.Failure(in.runtimeError(ctx, start, end, "Dict key must be a string"))
		}
		container.Set(key.Val, newVal)
	default:
		return res.Failure(in.runtimeError(ctx, start, end, "Value does not support index assignment").WithKind(cerr.IllegalOperation))
	}
	return res.Success(newVal)
}

// visitDelNode supports deleting a plain variable (VarAccessNode) or a
// single list/dict element (IndexNode); anything else is an error.
func (in *Interpreter) visitDelNode(n *ast.DelNode, ctx *value.Context) *RTResult {
	res := NewRTResult()

	switch target := n.Target.(type) {
	case *ast.VarAccessNode:
		name := target.NameTok.Value.(string)
		if !ctx.SymbolTable.Remove(name) {
			return res.Failure(in.runtimeError(ctx, n.PosStart, n.PosEnd, "'"+name+"' is not defined").WithKind(cerr.UndefinedName))
		}
		return res.Success(value.NewNull())

	case *ast.IndexNode:
		data := res.Register(in.Visit(target.DataNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		idxVal := res.Register(in.Visit(target.IndexNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		switch container := data.(type) {
		case *value.List:
			idx, ok := idxVal.(*value.Int)
			if !ok {
				return res.Failure(in.runtimeError(ctx, n.PosStart, n.PosEnd, "List index must be an int"))
			}
			if _, err := container.Pop(int(idx.Val)); err != nil {
				return res.Failure(in.attachTrace(err, ctx))
			}
			return res.Success(value.NewNull())
		case *value.Dict:
			key, ok := idxVal.(*value.String)
			if !ok {
				return res.Failure(in.runtimeError(ctx, n.PosStart, n.PosEnd, "Dict key must be a string"))
			}
			if err := container.Delete(key.Val); err != nil {
				return res.Failure(in.attachTrace(err, ctx))
			}
			return res.Success(value.NewNull())
		default:
			return res.Failure(in.runtimeError(ctx, n.PosStart, n.PosEnd, "Value does not support deletion").WithKind(cerr.IllegalOperation))
		}

	default:
		return res.Failure(in.runtimeError(ctx, n.PosStart, n.PosEnd, "Invalid deletion target").WithKind(cerr.IllegalOperation))
	}
}

func (in *Interpreter) visitReturnNode(n *ast.ReturnNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	var v value.Value = value.NewNull()
	if n.Value != nil {
		v = res.Register(in.Visit(n.Value, ctx))
		if res.ShouldReturn() {
			return res
		}
	}
	return res.SuccessReturn(v)
}

// runtimeError builds a Runtime-kind error with a traceback derived
// from ctx's enclosing call chain.
func (in *Interpreter) runtimeError(ctx *value.Context, start, end *lexer.Position, details string) *cerr.Error {
	return cerr.NewRuntime(start, end, details, in.traceback(ctx))
}

// attachTrace re-stamps an error produced by a value-package operator
// method (which has no context of its own) with the calling context's
// traceback, without mutating the original.
func (in *Interpreter) attachTrace(err *cerr.Error, ctx *value.Context) *cerr.Error {
	cp := *err
	cp.Trace = in.traceback(ctx)
	return &cp
}

// traceback walks ctx's Parent chain, producing one frame per
// enclosing call, innermost first.
func (in *Interpreter) traceback(ctx *value.Context) []cerr.TraceFrame {
	var frames []cerr.TraceFrame
	for ctx != nil {
		frames = append(frames, cerr.TraceFrame{Pos: ctx.ParentEntryPos, DisplayName: ctx.DisplayName})
		ctx = ctx.Parent
	}
	return frames
}
