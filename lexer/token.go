/*
File   : cloudy/lexer/token.go
Package: lexer
*/
package lexer

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind string

// Token kinds, per the language spec. KEYWORD and IDENTIFIER share the
// same underlying shape (a string Value); the lexer reclassifies an
// identifier to KEYWORD (or BOOL, for true/false) by checking it against
// the keyword set.
const (
	INT        Kind = "INT"
	FLOAT      Kind = "FLOAT"
	BOOL       Kind = "BOOL"
	STRING     Kind = "STRING"
	IDENTIFIER Kind = "IDENTIFIER"
	KEYWORD    Kind = "KEYWORD"

	EQ   Kind = "EQ"
	PLUS Kind = "PLUS"
	MINUS Kind = "MINUS"
	MULT Kind = "MULT"
	DIV  Kind = "DIV"
	FDIV Kind = "FDIV"
	MODU Kind = "MODU"
	POW  Kind = "POW"

	LPAR    Kind = "LPAR"
	RPAR    Kind = "RPAR"
	LSQUARE Kind = "LSQUARE"
	RSQUARE Kind = "RSQUARE"
	LCURLY  Kind = "LCURLY"
	RCURLY  Kind = "RCURLY"

	EE  Kind = "EE"
	NE  Kind = "NE"
	LT  Kind = "LT"
	GT  Kind = "GT"
	LTE Kind = "LTE"
	GTE Kind = "GTE"

	COMMA   Kind = "COMMA"
	COLON   Kind = "COLON"
	NEWLINE Kind = "NEWLINE"
	SPACE   Kind = "SPACE"
	EOF     Kind = "EOF"
)

// Keywords is the fixed keyword set. "true"/"false" are deliberately
// absent: the lexer reclassifies them to BOOL rather than KEYWORD.
var Keywords = map[string]bool{
	"and": true, "or": true, "not": true,
	"if": true, "elif": true, "else": true,
	"for": true, "to": true, "step": true, "while": true,
	"func": true, "break": true, "continue": true, "return": true,
	"del": true, "var": true,
	"in": true,
}

// singleCharTokens maps a lone source character to its token kind, for
// the operators that never combine with a following character.
var singleCharTokens = map[byte]Kind{
	'+': PLUS,
	'%': MODU,
	'(': LPAR,
	')': RPAR,
	'[': LSQUARE,
	']': RSQUARE,
	'{': LCURLY,
	'}': RCURLY,
	',': COMMA,
	':': COLON,
}

// Token is a single lexical unit: its kind, an optional payload Value
// (the parsed number, the string's contents, the identifier's text, the
// SPACE token's indent width), and the source span it occupies.
type Token struct {
	Kind     Kind
	Value    interface{}
	PosStart *Position
	PosEnd   *Position
}

// NewToken builds a token with both endpoints copied from posStart
// (posEnd defaults to a one-past-the-end copy of posStart unless the
// caller passes a non-nil posEnd).
func NewToken(kind Kind, value interface{}, posStart, posEnd *Position) *Token {
	tok := &Token{Kind: kind, Value: value}
	if posStart != nil {
		tok.PosStart = posStart.Copy()
		tok.PosEnd = posStart.Copy()
		tok.PosEnd.Advance(0)
	}
	if posEnd != nil {
		tok.PosEnd = posEnd.Copy()
	}
	return tok
}

// Matches reports whether the token has the given kind and, for
// KEYWORD-shaped tokens, the given literal value — the idiom used
// throughout the parser for `op_tok.matches(KEYWORD, "and")`-style checks.
func (t *Token) Matches(kind Kind, value interface{}) bool {
	return t.Kind == kind && t.Value == value
}

// String renders the token for debugging and for "unexpected token"
// error messages.
func (t *Token) String() string {
	if t.Value != nil {
		return string(t.Kind) + ":" + toDisplayString(t.Value)
	}
	return string(t.Kind)
}

func toDisplayString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}
