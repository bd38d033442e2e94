/*
File   : cloudy/interp/control.go
Package: interp
*/
package interp

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/value"
)

func (in *Interpreter) visitIfNode(n *ast.IfNode, ctx *value.Context) *RTResult {
	res := NewRTResult()

	for _, c := range n.Cases {
		condVal := res.Register(in.Visit(c.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}

		if condVal.IsTrue() {
			bodyVal := res.Register(in.Visit(c.Body, ctx))
			if res.ShouldReturn() {
				return res
			}
			if c.ShouldReturnNull {
				return res.Success(value.NewNull())
			}
			return res.Success(bodyVal)
		}
	}

	if n.ElseCase != nil {
		elseVal := res.Register(in.Visit(n.ElseCase.Body, ctx))
		if res.ShouldReturn() {
			return res
		}
		if n.ElseCase.ShouldReturnNull {
			return res.Success(value.NewNull())
		}
		return res.Success(elseVal)
	}

	return res.Success(value.NewNull())
}

func (in *Interpreter) visitForNode(n *ast.ForNode, ctx *value.Context) *RTResult {
	res := NewRTResult()

	startVal := res.Register(in.Visit(n.StartNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	startInt, ok := startVal.(*value.Int)
	if !ok {
		start, end := n.Span()
		return res.Failure(in.runtimeError(ctx, start, end, "For loop start value must be an int"))
	}

	endVal := res.Register(in.Visit(n.EndNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	endInt, ok := endVal.(*value.Int)
	if !ok {
		start, end := n.Span()
		return res.Failure(in.runtimeError(ctx, start, end, "For loop end value must be an int"))
	}

	step := int64(1)
	if n.StepNode != nil {
		stepVal := res.Register(in.Visit(n.StepNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		stepInt, ok := stepVal.(*value.Int)
		if !ok {
			start, end := n.Span()
			return res.Failure(in.runtimeError(ctx, start, end, "For loop step value must be an int"))
		}
		step = stepInt.Val
	}
	if step == 0 {
		start, end := n.Span()
		return res.Failure(in.runtimeError(ctx, start, end, "For loop step must not be zero").WithKind(cerr.IllegalOperation))
	}

	name := n.VarTok.Value.(string)
	var elements []value.Value

	i := startInt.Val
	cond := func() bool {
		if step > 0 {
			return i < endInt.Val
		}
		return i > endInt.Val
	}

	for cond() {
		ctx.SymbolTable.Set(name, value.NewInt(i))
		i += step

		v := res.Register(in.Visit(n.Body, ctx))
		if res.ShouldReturn() && !res.LoopShouldContinue && !res.LoopShouldBreak {
			return res
		}
		if res.LoopShouldBreak {
			break
		}
		if res.LoopShouldContinue {
			continue
		}
		elements = append(elements, v)
	}

	if n.ShouldReturnNull {
		return res.Success(value.NewNull())
	}
	return res.Success(value.NewList(elements).SetContext(ctx))
}

func (in *Interpreter) visitWhileNode(n *ast.WhileNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	var elements []value.Value

	for {
		condVal := res.Register(in.Visit(n.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if !condVal.IsTrue() {
			break
		}

		v := res.Register(in.Visit(n.Body, ctx))
		if res.ShouldReturn() && !res.LoopShouldContinue && !res.LoopShouldBreak {
			return res
		}
		if res.LoopShouldBreak {
			break
		}
		if res.LoopShouldContinue {
			continue
		}
		elements = append(elements, v)
	}

	if n.ShouldReturnNull {
		return res.Success(value.NewNull())
	}
	return res.Success(value.NewList(elements).SetContext(ctx))
}
