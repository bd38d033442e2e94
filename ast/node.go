/*
File   : cloudy/ast/node.go
Package: ast
*/

// Package ast defines Cloudy's abstract syntax tree: one struct per
// grammar production, each carrying the source span it was parsed from
// so the interpreter can attach positions to the values it produces.
package ast

import "github.com/nandu-not-bot/cloudy/lexer"

// Node is implemented by every AST node. Span returns the node's source
// extent, used for error reporting and for deriving a parent node's own
// span from its children.
type Node interface {
	Span() (start, end *lexer.Position)
}

// NumberNode wraps an INT or FLOAT token.
type NumberNode struct {
	Tok *lexer.Token
}

func (n *NumberNode) Span() (*lexer.Position, *lexer.Position) { return n.Tok.PosStart, n.Tok.PosEnd }

// BoolNode wraps a BOOL token.
type BoolNode struct {
	Tok *lexer.Token
}

func (n *BoolNode) Span() (*lexer.Position, *lexer.Position) { return n.Tok.PosStart, n.Tok.PosEnd }

// StringNode wraps a STRING token.
type StringNode struct {
	Tok *lexer.Token
}

func (n *StringNode) Span() (*lexer.Position, *lexer.Position) { return n.Tok.PosStart, n.Tok.PosEnd }

// ListNode is a `[elem, elem, ...]` literal.
type ListNode struct {
	Elements       []Node
	PosStart, PosEnd *lexer.Position
}

func (n *ListNode) Span() (*lexer.Position, *lexer.Position) { return n.PosStart, n.PosEnd }

// DictPair is one `key: value` entry of a DictNode.
type DictPair struct {
	Key   Node
	Value Node
}

// DictNode is a `{key: value, ...}` literal.
type DictNode struct {
	Pairs            []DictPair
	PosStart, PosEnd *lexer.Position
}

func (n *DictNode) Span() (*lexer.Position, *lexer.Position) { return n.PosStart, n.PosEnd }

// VarAccessNode reads a variable by name.
type VarAccessNode struct {
	NameTok *lexer.Token
}

func (n *VarAccessNode) Span() (*lexer.Position, *lexer.Position) {
	return n.NameTok.PosStart, n.NameTok.PosEnd
}

// VarAssignNode assigns the value of ValueNode to NameTok's identifier,
// in the current scope (no separate declaration form).
type VarAssignNode struct {
	NameTok   *lexer.Token
	ValueNode Node
}

func (n *VarAssignNode) Span() (*lexer.Position, *lexer.Position) {
	_, end := n.ValueNode.Span()
	return n.NameTok.PosStart, end
}

// IndexNode reads DataNode[IndexNode] — chained indexing is built by
// nesting IndexNode around another IndexNode as DataNode.
type IndexNode struct {
	DataNode  Node
	IndexNode Node
}

func (n *IndexNode) Span() (*lexer.Position, *lexer.Position) {
	start, _ := n.DataNode.Span()
	_, end := n.IndexNode.Span()
	return start, end
}

// IndexAssignNode assigns to NameTok[IndexExpr] — a single, non-chained
// index only (spec.md §4.2).
type IndexAssignNode struct {
	NameTok   *lexer.Token
	IndexExpr Node
	ValueNode Node
}

func (n *IndexAssignNode) Span() (*lexer.Position, *lexer.Position) {
	_, end := n.ValueNode.Span()
	return n.NameTok.PosStart, end
}

// DelNode removes a variable or a single list/dict element.
type DelNode struct {
	Target           Node
	PosStart, PosEnd *lexer.Position
}

func (n *DelNode) Span() (*lexer.Position, *lexer.Position) { return n.PosStart, n.PosEnd }

// BinOpNode is a left OpTok right expression.
type BinOpNode struct {
	Left  Node
	OpTok *lexer.Token
	Right Node
}

func (n *BinOpNode) Span() (*lexer.Position, *lexer.Position) {
	start, _ := n.Left.Span()
	_, end := n.Right.Span()
	return start, end
}

// UnaryOpNode is OpTok applied to a single operand (unary -, or `not`).
type UnaryOpNode struct {
	OpTok *lexer.Token
	Node  Node
}

func (n *UnaryOpNode) Span() (*lexer.Position, *lexer.Position) {
	_, end := n.Node.Span()
	return n.OpTok.PosStart, end
}

// IfCase is one `cond: body` arm of an if/elif chain.
type IfCase struct {
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

// IfElseCase is the trailing `else: body`, if present.
type IfElseCase struct {
	Body             Node
	ShouldReturnNull bool
}

// IfNode is the full if/elif/.../else chain.
type IfNode struct {
	Cases    []IfCase
	ElseCase *IfElseCase
}

func (n *IfNode) Span() (*lexer.Position, *lexer.Position) {
	start, _ := n.Cases[0].Condition.Span()
	var end *lexer.Position
	if n.ElseCase != nil {
		_, end = n.ElseCase.Body.Span()
	} else {
		_, end = n.Cases[len(n.Cases)-1].Body.Span()
	}
	return start, end
}

// ForNode is `for Var = Start to End [step Step]: Body`.
type ForNode struct {
	VarTok           *lexer.Token
	StartNode        Node
	EndNode          Node
	StepNode         Node // nil => default step of 1
	Body             Node
	ShouldReturnNull bool
}

func (n *ForNode) Span() (*lexer.Position, *lexer.Position) {
	_, end := n.Body.Span()
	return n.VarTok.PosStart, end
}

// WhileNode is `while Condition: Body`.
type WhileNode struct {
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

func (n *WhileNode) Span() (*lexer.Position, *lexer.Position) {
	start, _ := n.Condition.Span()
	_, end := n.Body.Span()
	return start, end
}

// FuncDefNode is `func [Name]? (arg, ...): Body`. NameTok is nil for an
// anonymous function expression.
type FuncDefNode struct {
	NameTok          *lexer.Token
	ArgNameToks      []*lexer.Token
	Body             Node
	ShouldAutoReturn bool
	PosStartOverride *lexer.Position
}

func (n *FuncDefNode) Span() (*lexer.Position, *lexer.Position) {
	_, end := n.Body.Span()
	if n.NameTok != nil {
		return n.NameTok.PosStart, end
	}
	if len(n.ArgNameToks) > 0 {
		return n.ArgNameToks[0].PosStart, end
	}
	start, _ := n.Body.Span()
	return start, end
}

// CallNode is `Callee(Args...)`.
type CallNode struct {
	Callee Node
	Args   []Node
}

func (n *CallNode) Span() (*lexer.Position, *lexer.Position) {
	start, calleeEnd := n.Callee.Span()
	if len(n.Args) > 0 {
		_, end := n.Args[len(n.Args)-1].Span()
		return start, end
	}
	return start, calleeEnd
}

// ReturnNode is `return [Value]?`.
type ReturnNode struct {
	Value            Node // nil => return null
	PosStart, PosEnd *lexer.Position
}

func (n *ReturnNode) Span() (*lexer.Position, *lexer.Position) { return n.PosStart, n.PosEnd }

// BreakNode is the `break` statement.
type BreakNode struct {
	PosStart, PosEnd *lexer.Position
}

func (n *BreakNode) Span() (*lexer.Position, *lexer.Position) { return n.PosStart, n.PosEnd }

// ContinueNode is the `continue` statement.
type ContinueNode struct {
	PosStart, PosEnd *lexer.Position
}

func (n *ContinueNode) Span() (*lexer.Position, *lexer.Position) { return n.PosStart, n.PosEnd }
