/*
File   : cloudy/cerr/error.go
Package: cerr
*/

// Package cerr implements Cloudy's error values: every lex, parse, and
// interpret failure is a *cerr.Error, never a panic or a Go error
// returned up a call chain. Errors carry enough position information to
// render a caret-underlined source excerpt, and runtime errors carry a
// context chain for a traceback.
package cerr

import (
	"fmt"
	"strings"

	"github.com/nandu-not-bot/cloudy/lexer"
)

// Kind names the taxonomy of error conditions a Cloudy program can hit.
type Kind string

const (
	IllegalChar      Kind = "Illegal Character"
	ExpectedChar     Kind = "Expected Character"
	InvalidSyntax    Kind = "Invalid Syntax"
	Runtime          Kind = "Runtime Error"
	IndexOutOfRange  Kind = "Index Error"
	DivisionByZero   Kind = "Division By Zero"
	IllegalOperation Kind = "Illegal Operation"
	UndefinedName    Kind = "Undefined Name"
	ArgumentCount    Kind = "Argument Count Error"
	TypeMismatch     Kind = "Type Mismatch"
)

// TraceFrame is one entry of a runtime error's traceback: the call-site
// position in the parent and the display name of the frame it entered.
type TraceFrame struct {
	Pos         *lexer.Position
	DisplayName string
}

// Error is the single error value used across Cloudy's lexer, parser,
// and interpreter. Context (for runtime errors) is a minimal chain of
// TraceFrames rather than a pointer back into the value package, which
// keeps cerr free of any dependency on value or the interpreter.
type Error struct {
	Kind     Kind
	PosStart *lexer.Position
	PosEnd   *lexer.Position
	Details  string
	Trace    []TraceFrame
}

// New builds a plain (non-runtime) error: lexer and parser failures have
// no call-context traceback.
func New(kind Kind, posStart, posEnd *lexer.Position, details string) *Error {
	return &Error{Kind: kind, PosStart: posStart, PosEnd: posEnd, Details: details}
}

// NewRuntime builds a runtime error carrying a traceback, walked from the
// innermost frame (trace[0]) to the outermost.
func NewRuntime(posStart, posEnd *lexer.Position, details string, trace []TraceFrame) *Error {
	return &Error{Kind: Runtime, PosStart: posStart, PosEnd: posEnd, Details: details, Trace: trace}
}

// WithKind returns a copy of a runtime-shaped error with a more specific
// kind — used by the interpreter to produce e.g. DivisionByZero or
// IndexOutOfRange while still carrying the same traceback machinery.
func (e *Error) WithKind(kind Kind) *Error {
	cp := *e
	cp.Kind = kind
	return &cp
}

// Error implements the standard error interface so *cerr.Error can be
// returned from Go functions that want to participate in normal Go error
// handling without a second parallel error type.
func (e *Error) Error() string {
	return e.String()
}

// String renders the full, human-facing error message: name, details,
// file/line, a traceback when present, and a caret-underlined excerpt.
func (e *Error) String() string {
	var b strings.Builder

	if len(e.Trace) > 0 {
		b.WriteString(e.generateTraceback())
	}

	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Details)
	if e.PosStart != nil {
		fmt.Fprintf(&b, "File %s, line %d", e.PosStart.Filename, e.PosStart.Line+1)
	}
	if e.PosStart != nil && e.PosEnd != nil {
		b.WriteString("\n\n")
		b.WriteString(StringWithArrows(e.PosStart.SourceText, e.PosStart, e.PosEnd))
	}
	return b.String()
}

func (e *Error) generateTraceback() string {
	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")
	for i := len(e.Trace) - 1; i >= 0; i-- {
		frame := e.Trace[i]
		if frame.Pos == nil {
			continue
		}
		fmt.Fprintf(&b, "  File %s, line %d, in %s\n", frame.Pos.Filename, frame.Pos.Line+1, frame.DisplayName)
	}
	return b.String()
}

// StringWithArrows renders the slice of source text spanning posStart to
// posEnd, with a caret ('^') underline beneath the erroring span. Ported
// from the reference implementation's string_with_arrows: locate the
// newline boundaries around pos_start, then walk one line at a time
// until pos_end's line is reached.
func StringWithArrows(text string, posStart, posEnd *lexer.Position) string {
	var result strings.Builder

	idxStart := lastIndexBefore(text, posStart.Idx)
	idxEnd := indexOfNewlineFrom(text, idxStart+1)

	lineCount := posEnd.Line - posStart.Line + 1
	for i := 0; i < lineCount; i++ {
		line := sliceOrEmpty(text, idxStart, idxEnd)

		colStart := posStart.Col
		if i > 0 {
			colStart = 0
		}
		colEnd := len(line)
		if i == lineCount-1 {
			colEnd = posEnd.Col
		}
		if colEnd <= colStart {
			colEnd = colStart + 1
		}

		result.WriteString(line)
		result.WriteString("\n")
		result.WriteString(strings.Repeat(" ", colStart))
		result.WriteString(strings.Repeat("^", colEnd-colStart))

		idxStart = idxEnd
		idxEnd = indexOfNewlineFrom(text, idxStart+1)
		if idxEnd == -1 {
			idxEnd = len(text)
		}
		if i < lineCount-1 {
			result.WriteString("\n")
		}
	}

	return strings.ReplaceAll(result.String(), "\t", "")
}

func lastIndexBefore(text string, idx int) int {
	if idx > len(text) {
		idx = len(text)
	}
	i := strings.LastIndex(text[:idx], "\n")
	return i
}

func indexOfNewlineFrom(text string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		return -1
	}
	rel := strings.Index(text[from:], "\n")
	if rel == -1 {
		return len(text)
	}
	return from + rel
}

func sliceOrEmpty(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		return ""
	}
	return text[start:end]
}
