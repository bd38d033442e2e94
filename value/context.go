/*
File   : cloudy/value/context.go
Package: value
*/
package value

import "github.com/nandu-not-bot/cloudy/lexer"

// Context identifies one activation: the global program, or one call
// to a function. DisplayName names the frame for tracebacks; ParentEntryPos
// is the call-site position in Parent, used to render each traceback
// line's "File f, line N, in DisplayName".
type Context struct {
	DisplayName     string
	Parent          *Context
	ParentEntryPos  *lexer.Position
	SymbolTable     *SymbolTable
}

// NewContext builds a context. For the global context, parent and
// parentEntryPos are nil.
func NewContext(displayName string, parent *Context, parentEntryPos *lexer.Position) *Context {
	return &Context{DisplayName: displayName, Parent: parent, ParentEntryPos: parentEntryPos}
}
