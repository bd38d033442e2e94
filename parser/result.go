/*
File   : cloudy/parser/result.go
Package: parser
*/

// Package parser implements Cloudy's recursive-descent parser: tokens to
// AST, with a ParseResult carrying either a node or an error plus the
// bookkeeping (AdvanceCount/ToReverseCount) needed for speculative,
// backtracking parses and "longest match wins" error prioritization.
package parser

import (
	"github.com/nandu-not-bot/cloudy/ast"
	"github.com/nandu-not-bot/cloudy/cerr"
)

// ParseResult accumulates a parse outcome across a chain of Register
// calls. AdvanceCount counts how many tokens were consumed on the way to
// either a node or an error; a failed speculative parse (TryRegister)
// records how far it got in ToReverseCount so the caller can rewind.
type ParseResult struct {
	Error           *cerr.Error
	Node            ast.Node
	AdvanceCount    int
	ToReverseCount  int
}

// NewParseResult returns a zeroed ParseResult ready for use.
func NewParseResult() *ParseResult {
	return &ParseResult{}
}

// RegisterAdvancement records a single token consumption, independent of
// any sub-result — used right before calling p.advance() so the
// AdvanceCount reflects every token the production actually looked at.
func (r *ParseResult) RegisterAdvancement() {
	r.AdvanceCount++
}

// Register folds a sub-result into r: its advance count accumulates, and
// its error (if any) propagates. Returns the sub-result's node for
// convenience at call sites (`node := res.Register(p.expr())`-style).
func (r *ParseResult) Register(sub *ParseResult) ast.Node {
	r.AdvanceCount += sub.AdvanceCount
	if sub.Error != nil {
		r.Error = sub.Error
	}
	return sub.Node
}

// TryRegister folds a sub-result the same way on success, but on
// failure records ToReverseCount instead of propagating the error or
// the advance count, and returns nil — signalling the caller to reverse
// the lexer/token cursor by ToReverseCount and try an alternative
// production.
func (r *ParseResult) TryRegister(sub *ParseResult) ast.Node {
	if sub.Error != nil {
		r.ToReverseCount = sub.AdvanceCount
		return nil
	}
	return r.Register(sub)
}

// Success records a successfully parsed node.
func (r *ParseResult) Success(node ast.Node) *ParseResult {
	r.Node = node
	return r
}

// Failure records a parse error, but only if no error is already
// recorded, or if the recorded error came from a production that made
// no progress at all (AdvanceCount == 0) — implementing "longest match
// wins": a deeper, more-advanced failure is more informative than a
// shallow one and must not be overwritten by it.
func (r *ParseResult) Failure(err *cerr.Error) *ParseResult {
	if r.Error == nil || r.AdvanceCount == 0 {
		r.Error = err
	}
	return r
}
