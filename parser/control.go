/*
File   : cloudy/parser/control.go
Package: parser
*/
package parser

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// ifExpr parses `if cond: body` followed by any number of `elif` arms
// and an optional trailing `else`.
func (p *Parser) ifExpr() *ParseResult {
	return p.ifExprCases("if")
}

// ifExprCases parses `<keyword> cond: body` and then dispatches to
// elif/else via ifExprBOrC. keyword is "if" for the top-level call and
// "elif" when re-entered for a chained elif arm. The result's Node is
// always an *ast.IfNode.
func (p *Parser) ifExprCases(keyword string) *ParseResult {
	res := NewParseResult()
	var cases []ast.IfCase

	if !(p.current.Kind == lexer.KEYWORD && p.current.Value == keyword) {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected '"+keyword+"'"))
	}
	res.RegisterAdvancement()
	p.advance()

	condition := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if p.current.Kind != lexer.COLON {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		cases = append(cases, ast.IfCase{Condition: condition, Body: body, ShouldReturnNull: true})

		rest := res.Register(p.ifExprBOrC())
		if res.Error != nil {
			return res
		}
		restNode := rest.(*ast.IfNode)
		cases = append(cases, restNode.Cases...)
		return res.Success(&ast.IfNode{Cases: cases, ElseCase: restNode.ElseCase})
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	cases = append(cases, ast.IfCase{Condition: condition, Body: body, ShouldReturnNull: false})

	rest := res.Register(p.ifExprBOrC())
	if res.Error != nil {
		return res
	}
	restNode := rest.(*ast.IfNode)
	cases = append(cases, restNode.Cases...)
	return res.Success(&ast.IfNode{Cases: cases, ElseCase: restNode.ElseCase})
}

// ifExprB parses a chained `elif`.
func (p *Parser) ifExprB() *ParseResult {
	return p.ifExprCases("elif")
}

// ifExprC parses an optional trailing `else: body`, on its own line or
// inline. Its result's Node is always an *ast.IfNode with no Cases, only
// (possibly) an ElseCase, so it composes uniformly with ifExprB's result
// via ifExprBOrC.
func (p *Parser) ifExprC() *ParseResult {
	res := NewParseResult()

	if !(p.current.Kind == lexer.KEYWORD && p.current.Value == "else") {
		return res.Success(&ast.IfNode{})
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind != lexer.COLON {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()
		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		return res.Success(&ast.IfNode{ElseCase: &ast.IfElseCase{Body: body, ShouldReturnNull: true}})
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(&ast.IfNode{ElseCase: &ast.IfElseCase{Body: body, ShouldReturnNull: false}})
}

// ifExprBOrC dispatches between a further elif and a final else. An
// elif/else that opens the next line at the enclosing block's indent
// continues the chain; the NEWLINE (and SPACE) before it is consumed.
func (p *Parser) ifExprBOrC() *ParseResult {
	skip := 0
	if next := p.peek(); p.current.Kind == lexer.NEWLINE && p.IndentLevel == 0 {
		skip = 1
	} else if p.current.Kind == lexer.NEWLINE && next.Kind == lexer.SPACE && next.Value.(int) == p.IndentLevel {
		skip = 2
	}
	if t := p.tokens[p.tokIdx+skip]; skip > 0 && t.Kind == lexer.KEYWORD && (t.Value == "elif" || t.Value == "else") {
		p.tokIdx += skip
		p.updateCurrent()
		res := p.ifExprBOrC()
		res.AdvanceCount += skip
		return res
	}
	if p.current.Kind == lexer.KEYWORD && p.current.Value == "elif" {
		return p.ifExprB()
	}
	return p.ifExprC()
}

// forExpr parses `for name = start to end [step step]: body`.
func (p *Parser) forExpr() *ParseResult {
	res := NewParseResult()

	if !(p.current.Kind == lexer.KEYWORD && p.current.Value == "for") {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected 'for'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind != lexer.IDENTIFIER {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected identifier"))
	}
	varTok := p.current
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind != lexer.EQ {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected '='"))
	}
	res.RegisterAdvancement()
	p.advance()

	startNode := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if !(p.current.Kind == lexer.KEYWORD && p.current.Value == "to") {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected 'to'"))
	}
	res.RegisterAdvancement()
	p.advance()

	endNode := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	var stepNode ast.Node
	if p.current.Kind == lexer.KEYWORD && p.current.Value == "step" {
		res.RegisterAdvancement()
		p.advance()
		stepNode = res.Register(p.expr())
		if res.Error != nil {
			return res
		}
	}

	if p.current.Kind != lexer.COLON {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		return res.Success(&ast.ForNode{
			VarTok: varTok, StartNode: startNode, EndNode: endNode, StepNode: stepNode,
			Body: body, ShouldReturnNull: true,
		})
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(&ast.ForNode{
		VarTok: varTok, StartNode: startNode, EndNode: endNode, StepNode: stepNode,
		Body: body, ShouldReturnNull: false,
	})
}

// whileExpr parses `while cond: body`.
func (p *Parser) whileExpr() *ParseResult {
	res := NewParseResult()

	if !(p.current.Kind == lexer.KEYWORD && p.current.Value == "while") {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected 'while'"))
	}
	res.RegisterAdvancement()
	p.advance()

	condition := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if p.current.Kind != lexer.COLON {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		return res.Success(&ast.WhileNode{Condition: condition, Body: body, ShouldReturnNull: true})
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(&ast.WhileNode{Condition: condition, Body: body, ShouldReturnNull: false})
}

// funcDefExpr parses `func [name]? (arg, ...): body`. An unnamed
// definition is a function expression usable anywhere a value is
// expected; a named one also binds the name in the enclosing scope.
func (p *Parser) funcDefExpr() *ParseResult {
	res := NewParseResult()
	posStart := p.current.PosStart

	if !(p.current.Kind == lexer.KEYWORD && p.current.Value == "func") {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected 'func'"))
	}
	res.RegisterAdvancement()
	p.advance()

	var nameTok *lexer.Token
	if p.current.Kind == lexer.IDENTIFIER {
		nameTok = p.current
		res.RegisterAdvancement()
		p.advance()

		if p.current.Kind != lexer.LPAR {
			return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected '('"))
		}
	} else if p.current.Kind != lexer.LPAR {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected identifier or '('"))
	}
	res.RegisterAdvancement()
	p.advance()

	var argNameToks []*lexer.Token
	if p.current.Kind == lexer.IDENTIFIER {
		argNameToks = append(argNameToks, p.current)
		res.RegisterAdvancement()
		p.advance()

		for p.current.Kind == lexer.COMMA {
			res.RegisterAdvancement()
			p.advance()
			if p.current.Kind != lexer.IDENTIFIER {
				return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected identifier"))
			}
			argNameToks = append(argNameToks, p.current)
			res.RegisterAdvancement()
			p.advance()
		}
	}

	if p.current.Kind != lexer.RPAR {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ',' or ')'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind != lexer.COLON {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.current.Kind != lexer.NEWLINE {
		body := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		return res.Success(&ast.FuncDefNode{
			NameTok: nameTok, ArgNameToks: argNameToks, Body: body,
			ShouldAutoReturn: true, PosStartOverride: posStart,
		})
	}
	res.RegisterAdvancement()
	p.advance()

	body := res.Register(p.statements())
	if res.Error != nil {
		return res
	}
	return res.Success(&ast.FuncDefNode{
		NameTok: nameTok, ArgNameToks: argNameToks, Body: body,
		ShouldAutoReturn: false, PosStartOverride: posStart,
	})
}
