/*
File   : cloudy/parser/parser.go
Package: parser
*/
package parser

import (
	"fmt"

	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// Parser walks a flat token slice with a single current-token cursor.
// IndentLevel is the cumulative indentation width required of the
// current block; LocalIndent is how much the current block added to
// that, used to subtract back out when the block ends.
type Parser struct {
	tokens      []*lexer.Token
	tokIdx      int
	current     *lexer.Token
	IndentLevel int
	LocalIndent int
}

// NewParser primes the cursor at the first token.
func NewParser(tokens []*lexer.Token) *Parser {
	p := &Parser{tokens: tokens, tokIdx: -1}
	p.advance()
	return p
}

func (p *Parser) advance() *lexer.Token {
	p.tokIdx++
	p.updateCurrent()
	return p.current
}

func (p *Parser) reverse(amount int) *lexer.Token {
	p.tokIdx -= amount
	p.updateCurrent()
	return p.current
}

func (p *Parser) updateCurrent() {
	if p.tokIdx >= 0 && p.tokIdx < len(p.tokens) {
		p.current = p.tokens[p.tokIdx]
	}
}

func (p *Parser) peek() *lexer.Token {
	if p.tokIdx+1 < len(p.tokens) {
		return p.tokens[p.tokIdx+1]
	}
	return nil
}

// Parse parses the whole token stream as a program: a sequence of
// statements at indent level 0. A leading SPACE token at the top level
// is always an error — a program cannot open indented.
func (p *Parser) Parse() *ParseResult {
	res := NewParseResult()

	if p.current.Kind == lexer.SPACE {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Unexpected indent"))
	}

	node := res.Register(p.statements())
	if res.Error != nil {
		return res
	}
	if p.current.Kind != lexer.EOF {
		return res.Failure(unexpectedTokenError(p.current))
	}
	return res.Success(node)
}

// statements parses a block: a run of statements separated by NEWLINEs
// and held together by indentation, per spec.md §4.2's indentation
// discipline. On entry, a SPACE token (if present) establishes this
// block's LocalIndent relative to the parser's running IndentLevel;
// subsequent lines must repeat exactly IndentLevel to continue the
// block, a smaller SPACE dedents out of it, and anything in between is
// an "Uneven indent" syntax error.
func (p *Parser) statements() *ParseResult {
	res := NewParseResult()
	var stmts []ast.Node
	posStart := p.current.PosStart

	for p.current.Kind == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()
	}

	if p.current.Kind == lexer.EOF {
		return res.Success(&ast.ListNode{Elements: stmts, PosStart: posStart, PosEnd: p.current.PosEnd})
	}

	if p.current.Kind != lexer.SPACE && p.IndentLevel > 0 {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected indent"))
	}

	localIndent := 0
	if p.current.Kind == lexer.SPACE {
		localIndent = p.current.Value.(int) - p.IndentLevel
		p.IndentLevel += localIndent
		res.RegisterAdvancement()
		p.advance()
	}
	prevLocalIndent := p.LocalIndent
	p.LocalIndent = localIndent

	first := res.Register(p.statement())
	if res.Error != nil {
		p.LocalIndent = prevLocalIndent
		return res
	}
	stmts = append(stmts, first)

	moreStatements := true
	for {
		newlineCount := 0
		for p.current.Kind == lexer.NEWLINE {
			res.RegisterAdvancement()
			p.advance()
			newlineCount++
		}
		if newlineCount == 0 {
			moreStatements = false
		}
		if !moreStatements {
			break
		}

		if p.current.Kind == lexer.SPACE {
			spaceVal := p.current.Value.(int)
			if spaceVal <= p.IndentLevel-localIndent {
				break
			}
			if spaceVal != p.IndentLevel {
				p.LocalIndent = prevLocalIndent
				return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Uneven indent"))
			}
			res.RegisterAdvancement()
			p.advance()
		} else if p.IndentLevel > 0 {
			break
		}

		startIdx := p.tokIdx
		stmtRes := p.statement()
		stmt := res.TryRegister(stmtRes)
		if stmt == nil {
			p.reverse(res.ToReverseCount)
			if p.tokIdx == startIdx {
				break
			}
			continue
		}
		stmts = append(stmts, stmt)
	}

	if p.IndentLevel > 0 && p.tokIdx > 0 && p.tokens[p.tokIdx-1].Kind == lexer.NEWLINE {
		p.reverse(1)
	}
	p.IndentLevel -= localIndent
	p.LocalIndent = prevLocalIndent

	return res.Success(&ast.ListNode{Elements: stmts, PosStart: posStart, PosEnd: p.current.PosEnd})
}

func unexpectedTokenError(tok *lexer.Token) *cerr.Error {
	var display string
	if tok.Kind == lexer.SPACE {
		display = fmt.Sprintf("indent(%v)", tok.Value)
	} else {
		display = tok.String()
	}
	return cerr.New(cerr.InvalidSyntax, tok.PosStart, tok.PosEnd, "Unexpected '"+display+"'")
}
