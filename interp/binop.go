/*
File   : cloudy/interp/binop.go
Package: interp
*/
package interp

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
	"github.com/nandu-not-bot/cloudy/value"
)

// Operator interfaces a Value variant may implement; dispatch always
// happens on the left operand, per the language's operator semantics.
type adder interface {
	Add(value.Value) (value.Value, *cerr.Error)
}
type suber interface {
	Sub(value.Value) (value.Value, *cerr.Error)
}
type muler interface {
	Mul(value.Value) (value.Value, *cerr.Error)
}
type divider interface {
	Div(value.Value) (value.Value, *cerr.Error)
}
type floorDivider interface {
	FloorDiv(value.Value) (value.Value, *cerr.Error)
}
type moder interface {
	Mod(value.Value) (value.Value, *cerr.Error)
}
type power interface {
	Pow(value.Value) (value.Value, *cerr.Error)
}
type equaler interface {
	Eq(value.Value) value.Value
}
type notEqualer interface {
	Ne(value.Value) value.Value
}
type lter interface {
	Lt(value.Value) (value.Value, *cerr.Error)
}
type gter interface {
	Gt(value.Value) (value.Value, *cerr.Error)
}
type lteer interface {
	Lte(value.Value) (value.Value, *cerr.Error)
}
type gteer interface {
	Gte(value.Value) (value.Value, *cerr.Error)
}

func (in *Interpreter) visitBinOpNode(n *ast.BinOpNode, ctx *value.Context) *RTResult {
	res := NewRTResult()

	left := res.Register(in.Visit(n.Left, ctx))
	if res.ShouldReturn() {
		return res
	}
	// Both operands are always evaluated — and/or do not short-circuit
	// in this language.
	right := res.Register(in.Visit(n.Right, ctx))
	if res.ShouldReturn() {
		return res
	}

	start, end := n.Span()
	result, err := applyBinOp(n.OpTok, left, right)
	if err != nil {
		return res.Failure(in.attachTrace(err, ctx))
	}
	return res.Success(result.SetPos(start, end).SetContext(ctx))
}

func applyBinOp(opTok *lexer.Token, left, right value.Value) (value.Value, *cerr.Error) {
	if opTok.Kind == lexer.KEYWORD {
		switch opTok.Value {
		case "and":
			return value.And(left, right), nil
		case "or":
			return value.Or(left, right), nil
		case "in":
			return membership(left, right)
		case "not_in":
			v, err := membership(left, right)
			if err != nil {
				return nil, err
			}
			return value.Not(v), nil
		}
	}

	switch opTok.Kind {
	case lexer.PLUS:
		return dispatch1(left, right, func(a adder) (value.Value, *cerr.Error) { return a.Add(right) })
	case lexer.MINUS:
		return dispatch1(left, right, func(a suber) (value.Value, *cerr.Error) { return a.Sub(right) })
	case lexer.MULT:
		return dispatch1(left, right, func(a muler) (value.Value, *cerr.Error) { return a.Mul(right) })
	case lexer.DIV:
		return dispatch1(left, right, func(a divider) (value.Value, *cerr.Error) { return a.Div(right) })
	case lexer.FDIV:
		return dispatch1(left, right, func(a floorDivider) (value.Value, *cerr.Error) { return a.FloorDiv(right) })
	case lexer.MODU:
		return dispatch1(left, right, func(a moder) (value.Value, *cerr.Error) { return a.Mod(right) })
	case lexer.POW:
		return dispatch1(left, right, func(a power) (value.Value, *cerr.Error) { return a.Pow(right) })
	case lexer.EE:
		if a, ok := left.(equaler); ok {
			return a.Eq(right), nil
		}
		return value.NewBool(false), nil
	case lexer.NE:
		if a, ok := left.(notEqualer); ok {
			return a.Ne(right), nil
		}
		return value.NewBool(true), nil
	case lexer.LT:
		return dispatch1(left, right, func(a lter) (value.Value, *cerr.Error) { return a.Lt(right) })
	case lexer.GT:
		return dispatch1(left, right, func(a gter) (value.Value, *cerr.Error) { return a.Gt(right) })
	case lexer.LTE:
		return dispatch1(left, right, func(a lteer) (value.Value, *cerr.Error) { return a.Lte(right) })
	case lexer.GTE:
		return dispatch1(left, right, func(a gteer) (value.Value, *cerr.Error) { return a.Gte(right) })
	}

	return nil, illegalOperation(left, right)
}

// dispatch1 type-asserts left against the operator interface I and, if
// it implements it, invokes op; otherwise reports an illegal operation.
// Go generics let one helper serve every binary operator's dispatch
// without repeating the type switch per operator.
func dispatch1[I any](left, right value.Value, op func(I) (value.Value, *cerr.Error)) (value.Value, *cerr.Error) {
	impl, ok := left.(I)
	if !ok {
		return nil, illegalOperation(left, right)
	}
	return op(impl)
}

func illegalOperation(left, right value.Value) *cerr.Error {
	start, _ := left.Pos()
	_, end := right.Pos()
	return cerr.New(cerr.IllegalOperation, start, end, "Illegal operation")
}

// membership implements `in`: String substring, List element, or Dict
// key containment, chosen by the right operand's type.
func membership(left, right value.Value) (value.Value, *cerr.Error) {
	switch container := right.(type) {
	case *value.List:
		return container.Contains(left), nil
	case *value.Dict:
		key, ok := left.(*value.String)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return container.Contains(key.Val), nil
	case *value.String:
		return container.Contains(left)
	default:
		return nil, illegalOperation(left, right)
	}
}

func (in *Interpreter) visitUnaryOpNode(n *ast.UnaryOpNode, ctx *value.Context) *RTResult {
	res := NewRTResult()
	operand := res.Register(in.Visit(n.Node, ctx))
	if res.ShouldReturn() {
		return res
	}

	start, end := n.Span()

	if n.OpTok.Kind == lexer.KEYWORD && n.OpTok.Value == "not" {
		return res.Success(value.Not(operand).SetPos(start, end).SetContext(ctx))
	}

	if n.OpTok.Kind == lexer.MINUS {
		result, err := dispatch1(operand, value.NewInt(-1), func(m muler) (value.Value, *cerr.Error) {
			return m.Mul(value.NewInt(-1))
		})
		if err != nil {
			return res.Failure(in.attachTrace(err, ctx))
		}
		return res.Success(result.SetPos(start, end).SetContext(ctx))
	}

	// Unary plus: identity.
	return res.Success(operand.SetPos(start, end).SetContext(ctx))
}
