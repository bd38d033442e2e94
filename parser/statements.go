/*
File   : cloudy/parser/statements.go
Package: parser
*/
package parser

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// statement parses one statement: return/continue/break, or a dispatch
// to if/for/while/func/del, falling through to varAssignStatement for
// everything else (plain expressions and `name = expr` / `name[i] = expr`
// assignment forms).
func (p *Parser) statement() *ParseResult {
	res := NewParseResult()
	posStart := p.current.PosStart

	if p.current.Kind == lexer.KEYWORD {
		switch p.current.Value {
		case "return":
			res.RegisterAdvancement()
			p.advance()

			var value ast.Node
			exprRes := p.expr()
			if v := res.TryRegister(exprRes); v != nil {
				value = v
			} else {
				p.reverse(res.ToReverseCount)
			}
			return res.Success(&ast.ReturnNode{Value: value, PosStart: posStart, PosEnd: p.current.PosStart})

		case "continue":
			res.RegisterAdvancement()
			p.advance()
			return res.Success(&ast.ContinueNode{PosStart: posStart, PosEnd: p.current.PosStart})

		case "break":
			res.RegisterAdvancement()
			p.advance()
			return res.Success(&ast.BreakNode{PosStart: posStart, PosEnd: p.current.PosStart})

		case "if":
			node := res.Register(p.ifExpr())
			if res.Error != nil {
				return res
			}
			return res.Success(node)

		case "for":
			node := res.Register(p.forExpr())
			if res.Error != nil {
				return res
			}
			return res.Success(node)

		case "while":
			node := res.Register(p.whileExpr())
			if res.Error != nil {
				return res
			}
			return res.Success(node)

		case "func":
			node := res.Register(p.funcDefExpr())
			if res.Error != nil {
				return res
			}
			return res.Success(node)

		case "del":
			res.RegisterAdvancement()
			p.advance()
			target := res.Register(p.index())
			if res.Error != nil {
				return res
			}
			return res.Success(&ast.DelNode{Target: target, PosStart: posStart, PosEnd: p.current.PosStart})

		case "var":
			res.RegisterAdvancement()
			p.advance()

			if p.current.Kind != lexer.IDENTIFIER {
				return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected identifier"))
			}
			nameTok := p.current
			res.RegisterAdvancement()
			p.advance()

			if p.current.Kind != lexer.EQ {
				return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected '='"))
			}
			res.RegisterAdvancement()
			p.advance()

			value := res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			return res.Success(&ast.VarAssignNode{NameTok: nameTok, ValueNode: value})
		}
	}

	node := res.Register(p.varAssignStatement())
	if res.Error != nil {
		return res
	}
	return res.Success(node)
}

// varAssignStatement handles the two assignment shapes and falls
// through to a plain expression otherwise: `IDENTIFIER = expr`,
// `IDENTIFIER[expr] = expr`, or just `expr`. The index-assignment form
// is tried speculatively since `name[i]` alone (no trailing `=`) is a
// valid index-read expression, not an assignment.
func (p *Parser) varAssignStatement() *ParseResult {
	res := NewParseResult()

	if p.current.Kind == lexer.IDENTIFIER {
		nameTok := p.current
		startIdx := p.tokIdx

		if p.peek() != nil && p.peek().Kind == lexer.EQ {
			res.RegisterAdvancement()
			p.advance()
			res.RegisterAdvancement()
			p.advance()

			value := res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			return res.Success(&ast.VarAssignNode{NameTok: nameTok, ValueNode: value})
		}

		if p.peek() != nil && p.peek().Kind == lexer.LSQUARE {
			res.RegisterAdvancement()
			p.advance()
			res.RegisterAdvancement()
			p.advance()

			indexExpr := res.Register(p.arithExpr())
			if res.Error != nil {
				return res
			}
			if p.current.Kind != lexer.RSQUARE {
				return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ']'"))
			}
			res.RegisterAdvancement()
			p.advance()

			if p.current.Kind == lexer.EQ {
				res.RegisterAdvancement()
				p.advance()
				value := res.Register(p.expr())
				if res.Error != nil {
					return res
				}
				return res.Success(&ast.IndexAssignNode{NameTok: nameTok, IndexExpr: indexExpr, ValueNode: value})
			}

			// No trailing '=': this was just an index-read expression.
			// Rewind to the identifier and re-parse through the normal
			// expression grammar so precedence/chaining still applies.
			p.reverse(p.tokIdx - startIdx)
		}
	}

	node := res.Register(p.expr())
	if res.Error != nil {
		return res
	}
	return res.Success(node)
}
