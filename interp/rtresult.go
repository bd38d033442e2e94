/*
File   : cloudy/interp/rtresult.go
Package: interp
*/

// Package interp walks Cloudy's AST and produces runtime Values,
// carrying control-flow signals (return/break/continue) through
// RTResult rather than Go panics, so a `return` deep inside nested
// blocks unwinds cleanly back to the enclosing function call.
package interp

import (
	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/value"
)

// RTResult carries at most one live signal at a time: a plain Value, an
// Error, a FuncReturnValue (from `return`), or one of the loop flags
// (from `break`/`continue`). Success/Failure/SuccessReturn/... each
// reset all four non-Value fields before setting their own, so a
// result that has just been "consumed" (e.g. a function call
// returning its value) does not keep leaking the signal that produced
// it to its caller.
type RTResult struct {
	Value              value.Value
	Error              *cerr.Error
	FuncReturnValue    value.Value
	LoopShouldContinue bool
	LoopShouldBreak    bool
}

// NewRTResult returns a zeroed RTResult ready for use.
func NewRTResult() *RTResult {
	return &RTResult{}
}

func (r *RTResult) reset() {
	r.Value = nil
	r.Error = nil
	r.FuncReturnValue = nil
	r.LoopShouldContinue = false
	r.LoopShouldBreak = false
}

// Register folds a sub-result into r: its error (if any) carries over,
// r's return/break/continue fields are overwritten with sub's, and its
// Value is returned for convenience at call sites. r's existing error is
// kept when sub has none; Register is meant to be called in a chain
// before a final Success/Failure/SuccessReturn decides the outcome.
func (r *RTResult) Register(sub *RTResult) value.Value {
	if sub.Error != nil {
		r.Error = sub.Error
	}
	r.FuncReturnValue = sub.FuncReturnValue
	r.LoopShouldContinue = sub.LoopShouldContinue
	r.LoopShouldBreak = sub.LoopShouldBreak
	return sub.Value
}

// ShouldReturn reports whether any non-Value signal is live: an error,
// a pending function return, or a pending loop break/continue. Callers
// check this after every Register to unwind early.
func (r *RTResult) ShouldReturn() bool {
	return r.Error != nil || r.FuncReturnValue != nil || r.LoopShouldContinue || r.LoopShouldBreak
}

func (r *RTResult) Success(v value.Value) *RTResult {
	r.reset()
	r.Value = v
	return r
}

func (r *RTResult) SuccessReturn(v value.Value) *RTResult {
	r.reset()
	r.FuncReturnValue = v
	return r
}

func (r *RTResult) SuccessContinue() *RTResult {
	r.reset()
	r.LoopShouldContinue = true
	return r
}

func (r *RTResult) SuccessBreak() *RTResult {
	r.reset()
	r.LoopShouldBreak = true
	return r
}

func (r *RTResult) Failure(err *cerr.Error) *RTResult {
	r.reset()
	r.Error = err
	return r
}
