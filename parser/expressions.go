/*
File   : cloudy/parser/expressions.go
Package: parser
*/
package parser

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// expr is the lowest-precedence production: comp_expr chained with
// 'and'/'or'.
func (p *Parser) expr() *ParseResult {
	return p.binOpKeyword(p.compExpr, []string{"and", "or"}, p.compExpr)
}

// compExpr handles a leading 'not' specially (it recurses into itself,
// not arith_expr, so `not not x` parses), otherwise chains arith_expr
// with the comparison operators, and — as the optional membership
// extension (SPEC_FULL.md §11.1) — with `in` / `not in`.
func (p *Parser) compExpr() *ParseResult {
	res := NewParseResult()

	if p.current.Kind == lexer.KEYWORD && p.current.Value == "not" {
		opTok := p.current
		res.RegisterAdvancement()
		p.advance()

		node := res.Register(p.compExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(&ast.UnaryOpNode{OpTok: opTok, Node: node})
	}

	left := res.Register(p.arithExpr())
	if res.Error != nil {
		return res
	}

	for {
		switch p.current.Kind {
		case lexer.EE, lexer.NE, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
			opTok := p.current
			res.RegisterAdvancement()
			p.advance()
			right := res.Register(p.arithExpr())
			if res.Error != nil {
				return res
			}
			left = &ast.BinOpNode{Left: left, OpTok: opTok, Right: right}
			continue
		case lexer.KEYWORD:
			if p.current.Value == "in" {
				opTok := p.current
				res.RegisterAdvancement()
				p.advance()
				right := res.Register(p.arithExpr())
				if res.Error != nil {
					return res
				}
				left = &ast.BinOpNode{Left: left, OpTok: opTok, Right: right}
				continue
			}
			if p.current.Value == "not" && p.peek() != nil && p.peek().Kind == lexer.KEYWORD && p.peek().Value == "in" {
				opTok := lexer.NewToken(lexer.KEYWORD, "not_in", p.current.PosStart, nil)
				res.RegisterAdvancement()
				p.advance()
				res.RegisterAdvancement()
				p.advance()
				right := res.Register(p.arithExpr())
				if res.Error != nil {
					return res
				}
				left = &ast.BinOpNode{Left: left, OpTok: opTok, Right: right}
				continue
			}
		}
		break
	}

	return res.Success(left)
}

func (p *Parser) arithExpr() *ParseResult {
	return p.binOp(p.term, []lexer.Kind{lexer.PLUS, lexer.MINUS}, p.term)
}

func (p *Parser) term() *ParseResult {
	return p.binOp(p.factor, []lexer.Kind{lexer.MULT, lexer.DIV, lexer.FDIV, lexer.MODU}, p.factor)
}

// factor handles unary +/- by recursing into itself, otherwise defers
// to power.
func (p *Parser) factor() *ParseResult {
	res := NewParseResult()

	if p.current.Kind == lexer.PLUS || p.current.Kind == lexer.MINUS {
		opTok := p.current
		res.RegisterAdvancement()
		p.advance()
		node := res.Register(p.factor())
		if res.Error != nil {
			return res
		}
		return res.Success(&ast.UnaryOpNode{OpTok: opTok, Node: node})
	}

	return p.power()
}

// power is right-associative: its right operand is parsed by factor so
// that `2 ** 3 ** 2` groups as `2 ** (3 ** 2)`.
func (p *Parser) power() *ParseResult {
	return p.binOp(p.call, []lexer.Kind{lexer.POW}, p.factor)
}

func (p *Parser) call() *ParseResult {
	res := NewParseResult()

	node := res.Register(p.index())
	if res.Error != nil {
		return res
	}

	if p.current.Kind == lexer.LPAR {
		res.RegisterAdvancement()
		p.advance()

		var args []ast.Node
		if p.current.Kind != lexer.RPAR {
			first := res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			args = append(args, first)

			for p.current.Kind == lexer.COMMA {
				res.RegisterAdvancement()
				p.advance()
				arg := res.Register(p.expr())
				if res.Error != nil {
					return res
				}
				args = append(args, arg)
			}
		}

		if p.current.Kind != lexer.RPAR {
			return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ',' or ')'"))
		}
		res.RegisterAdvancement()
		p.advance()

		node = &ast.CallNode{Callee: node, Args: args}
	}

	return res.Success(node)
}

// index parses a primary atom and then any number of chained
// `[expr]` suffixes.
func (p *Parser) index() *ParseResult {
	res := NewParseResult()

	node := res.Register(p.atom())
	if res.Error != nil {
		return res
	}

	for p.current.Kind == lexer.LSQUARE {
		res.RegisterAdvancement()
		p.advance()

		idx := res.Register(p.arithExpr())
		if res.Error != nil {
			return res
		}

		if p.current.Kind != lexer.RSQUARE {
			return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ']'"))
		}
		res.RegisterAdvancement()
		p.advance()

		node = &ast.IndexNode{DataNode: node, IndexNode: idx}
	}

	return res.Success(node)
}

func (p *Parser) atom() *ParseResult {
	res := NewParseResult()
	tok := p.current

	switch tok.Kind {
	case lexer.INT, lexer.FLOAT:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.NumberNode{Tok: tok})

	case lexer.BOOL:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.BoolNode{Tok: tok})

	case lexer.STRING:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.StringNode{Tok: tok})

	case lexer.IDENTIFIER:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.VarAccessNode{NameTok: tok})

	case lexer.LPAR:
		res.RegisterAdvancement()
		p.advance()
		expr := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		if p.current.Kind != lexer.RPAR {
			return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ')'"))
		}
		res.RegisterAdvancement()
		p.advance()
		return res.Success(expr)

	case lexer.LSQUARE:
		node := res.Register(p.listExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(node)

	case lexer.LCURLY:
		node := res.Register(p.dictExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(node)

	case lexer.KEYWORD:
		if tok.Value == "func" {
			node := res.Register(p.funcDefExpr())
			if res.Error != nil {
				return res
			}
			return res.Success(node)
		}
	}

	return res.Failure(unexpectedTokenError(tok))
}

func (p *Parser) listExpr() *ParseResult {
	res := NewParseResult()
	posStart := p.current.PosStart

	res.RegisterAdvancement()
	p.advance()

	var elements []ast.Node
	if p.current.Kind != lexer.RSQUARE {
		first := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		elements = append(elements, first)

		for p.current.Kind == lexer.COMMA {
			res.RegisterAdvancement()
			p.advance()
			el := res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			elements = append(elements, el)
		}
	}

	if p.current.Kind != lexer.RSQUARE {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ',' or ']'"))
	}
	posEnd := p.current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(&ast.ListNode{Elements: elements, PosStart: posStart, PosEnd: posEnd})
}

// dictExpr tolerates NEWLINE/SPACE between entries so a dict literal may
// be spread across indented lines.
func (p *Parser) dictExpr() *ParseResult {
	res := NewParseResult()
	posStart := p.current.PosStart

	res.RegisterAdvancement()
	p.advance()
	p.skipNewlinesAndSpace(res)

	var pairs []ast.DictPair
	if p.current.Kind != lexer.RCURLY {
		pair := res.Register(p.dictPair())
		if res.Error != nil {
			return res
		}
		pairs = append(pairs, pair.(*dictPairNode).pair())
		p.skipNewlinesAndSpace(res)

		for p.current.Kind == lexer.COMMA {
			res.RegisterAdvancement()
			p.advance()
			p.skipNewlinesAndSpace(res)
			pr := res.Register(p.dictPair())
			if res.Error != nil {
				return res
			}
			pairs = append(pairs, pr.(*dictPairNode).pair())
			p.skipNewlinesAndSpace(res)
		}
	}

	if p.current.Kind != lexer.RCURLY {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ',' or '}'"))
	}
	posEnd := p.current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(&ast.DictNode{Pairs: pairs, PosStart: posStart, PosEnd: posEnd})
}

func (p *Parser) skipNewlinesAndSpace(res *ParseResult) {
	for p.current.Kind == lexer.NEWLINE || p.current.Kind == lexer.SPACE {
		res.RegisterAdvancement()
		p.advance()
	}
}

// dictPairNode is an internal carrier so dictPair can return an
// ast.Node through the same Register plumbing as everything else,
// without DictPair itself needing to satisfy ast.Node.
type dictPairNode struct {
	key, value         ast.Node
	posStart, posEnd   *lexer.Position
}

func (d *dictPairNode) Span() (*lexer.Position, *lexer.Position) { return d.posStart, d.posEnd }
func (d *dictPairNode) pair() ast.DictPair                        { return ast.DictPair{Key: d.key, Value: d.value} }

func (p *Parser) dictPair() *ParseResult {
	res := NewParseResult()

	key := res.Register(p.expr())
	if res.Error != nil {
		return res
	}
	keyStart, _ := key.Span()

	if p.current.Kind != lexer.COLON {
		return res.Failure(cerr.New(cerr.InvalidSyntax, p.current.PosStart, p.current.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	value := res.Register(p.expr())
	if res.Error != nil {
		return res
	}
	_, valueEnd := value.Span()

	return res.Success(&dictPairNode{key: key, value: value, posStart: keyStart, posEnd: valueEnd})
}

// binOp is the generic left-associative binary-operator-chain helper:
// parse funcA, then while the current token's kind is one of ops, consume
// it and parse funcB (defaulting to funcA), folding into a left-leaning
// BinOpNode chain.
func (p *Parser) binOp(funcA func() *ParseResult, ops []lexer.Kind, funcB func() *ParseResult) *ParseResult {
	res := NewParseResult()

	left := res.Register(funcA())
	if res.Error != nil {
		return res
	}

	for containsKind(ops, p.current.Kind) {
		opTok := p.current
		res.RegisterAdvancement()
		p.advance()
		right := res.Register(funcB())
		if res.Error != nil {
			return res
		}
		left = &ast.BinOpNode{Left: left, OpTok: opTok, Right: right}
	}

	return res.Success(left)
}

// binOpKeyword is binOp's counterpart for KEYWORD-valued operators
// (`and`/`or`), matched by (kind, value) rather than kind alone.
func (p *Parser) binOpKeyword(funcA func() *ParseResult, keywords []string, funcB func() *ParseResult) *ParseResult {
	res := NewParseResult()

	left := res.Register(funcA())
	if res.Error != nil {
		return res
	}

	for p.current.Kind == lexer.KEYWORD && containsString(keywords, p.current.Value.(string)) {
		opTok := p.current
		res.RegisterAdvancement()
		p.advance()
		right := res.Register(funcB())
		if res.Error != nil {
			return res
		}
		left = &ast.BinOpNode{Left: left, OpTok: opTok, Right: right}
	}

	return res.Success(left)
}

func containsKind(ks []lexer.Kind, k lexer.Kind) bool {
	for _, x := range ks {
		if x == k {
			return true
		}
	}
	return false
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
