/*
File   : cloudy/lexer/lexer.go
Package: lexer
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/nandu-not-bot/cloudy/cerr"
)

const digits = "0123456789"
const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
const lettersDigits = letters + digits

// Lexer turns source text into a token stream. It tracks a single
// current byte plus position, with a one-character lookahead (peek) and
// a one-character reverse; Tokenize itself never calls reverse.
type Lexer struct {
	text        string
	pos         *Position
	currentChar byte
	atEOF       bool
	foundIndent bool
}

// NewLexer primes the lexer at the first character of text.
func NewLexer(filename, text string) *Lexer {
	l := &Lexer{text: text, pos: NewPosition(filename, text)}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos.Advance(l.currentChar)
	if l.pos.Idx < len(l.text) {
		l.currentChar = l.text[l.pos.Idx]
		l.atEOF = false
	} else {
		l.currentChar = 0
		l.atEOF = true
	}
}

func (l *Lexer) reverse() {
	l.pos.Idx--
	l.pos.Col--
	if l.pos.Idx >= 0 && l.pos.Idx < len(l.text) {
		l.currentChar = l.text[l.pos.Idx]
		l.atEOF = false
	}
}

// turn reports the previously consumed character, used to detect "we
// are at the start of a line" without a dedicated state flag.
func (l *Lexer) turn() byte {
	if l.pos.Idx > 0 && l.pos.Idx-1 < len(l.text) {
		return l.text[l.pos.Idx-1]
	}
	return 0
}

func (l *Lexer) peek() byte {
	if l.pos.Idx+1 < len(l.text) {
		return l.text[l.pos.Idx+1]
	}
	return 0
}

// Tokenize consumes the whole source and returns the token stream ending
// with EOF, or the first lexical error encountered.
func (l *Lexer) Tokenize() ([]*Token, *cerr.Error) {
	var tokens []*Token

	for !l.atEOF {
		ch := l.currentChar
		switch {
		case ch == '#':
			l.skipComment()

		case ch == ' ' || ch == '\t':
			if !l.foundIndent && (l.pos.Idx == 0 || l.turn() == '\n') {
				tokens = append(tokens, l.catchIndents())
				l.foundIndent = true
			} else {
				l.advance()
			}

		case ch == '\n':
			tokens = append(tokens, NewToken(NEWLINE, "\n", l.pos.Copy(), nil))
			l.foundIndent = false
			l.advance()

		case strings.IndexByte(digits, ch) >= 0:
			l.foundIndent = false
			tok, err := l.makeNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case strings.IndexByte(letters, ch) >= 0:
			l.foundIndent = false
			tokens = append(tokens, l.makeIdentifier())

		case ch == '\'' || ch == '"':
			l.foundIndent = false
			tok, err := l.makeString(ch)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == '!':
			l.foundIndent = false
			tok, err := l.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == '*':
			l.foundIndent = false
			tokens = append(tokens, l.makeDoubleCharToken(MULT, POW, '*'))

		case ch == '-':
			l.foundIndent = false
			tokens = append(tokens, l.makeMinusOrArrow())

		case ch == '/':
			l.foundIndent = false
			tokens = append(tokens, l.makeDoubleCharToken(DIV, FDIV, '/'))

		case ch == '=':
			l.foundIndent = false
			tokens = append(tokens, l.makeDoubleCharToken(EQ, EE, '='))

		case ch == '<':
			l.foundIndent = false
			tokens = append(tokens, l.makeDoubleCharToken(LT, LTE, '='))

		case ch == '>':
			l.foundIndent = false
			tokens = append(tokens, l.makeDoubleCharToken(GT, GTE, '='))

		default:
			if kind, ok := singleCharTokens[ch]; ok {
				l.foundIndent = false
				posStart := l.pos.Copy()
				l.advance()
				tokens = append(tokens, NewToken(kind, string(ch), posStart, l.pos.Copy()))
				continue
			}
			posStart := l.pos.Copy()
			bad := string(ch)
			l.advance()
			return nil, cerr.New(cerr.IllegalChar, posStart, l.pos.Copy(), "'"+bad+"'")
		}
	}

	tokens = append(tokens, NewToken(EOF, nil, l.pos.Copy(), nil))
	return tokens, nil
}

// catchIndents sums a run of leading whitespace into a SPACE token,
// where each space is worth 1 and each tab is worth 4, per the spec.
func (l *Lexer) catchIndents() *Token {
	count := 0
	posStart := l.pos.Copy()
	for l.currentChar == ' ' || l.currentChar == '\t' {
		if l.currentChar == '\t' {
			count += 4
		} else {
			count++
		}
		l.advance()
	}
	return NewToken(SPACE, count, posStart, l.pos.Copy())
}

func (l *Lexer) skipComment() {
	for !l.atEOF && l.currentChar != '\n' {
		l.advance()
	}
}

// makeNumber scans digits with at most one '.'. A second '.' is pushed
// back (the caller may be parsing a range-like construct) rather than
// treated as part of the number.
func (l *Lexer) makeNumber() (*Token, *cerr.Error) {
	var sb strings.Builder
	dotFound := false
	posStart := l.pos.Copy()

	for !l.atEOF && (strings.IndexByte(digits, l.currentChar) >= 0 || l.currentChar == '.') {
		if l.currentChar == '.' {
			if l.peek() == '.' {
				break
			}
			if dotFound {
				break
			}
			dotFound = true
		}
		sb.WriteByte(l.currentChar)
		l.advance()
	}

	text := sb.String()
	if dotFound {
		v, _ := strconv.ParseFloat(text, 64)
		return NewToken(FLOAT, v, posStart, l.pos.Copy()), nil
	}
	v, _ := strconv.ParseInt(text, 10, 64)
	return NewToken(INT, v, posStart, l.pos.Copy()), nil
}

func (l *Lexer) makeIdentifier() *Token {
	var sb strings.Builder
	posStart := l.pos.Copy()

	for !l.atEOF && strings.IndexByte(lettersDigits, l.currentChar) >= 0 {
		sb.WriteByte(l.currentChar)
		l.advance()
	}

	text := sb.String()
	switch {
	case Keywords[text]:
		return NewToken(KEYWORD, text, posStart, l.pos.Copy())
	case text == "true":
		return NewToken(BOOL, true, posStart, l.pos.Copy())
	case text == "false":
		return NewToken(BOOL, false, posStart, l.pos.Copy())
	default:
		return NewToken(IDENTIFIER, text, posStart, l.pos.Copy())
	}
}

var escapeChars = map[byte]byte{
	'n': '\n', 't': '\t', '\'': '\'', '"': '"', '\\': '\\',
}

func (l *Lexer) makeString(quote byte) (*Token, *cerr.Error) {
	var sb strings.Builder
	posStart := l.pos.Copy()
	l.advance()

	for !l.atEOF && l.currentChar != quote {
		if l.currentChar == '\\' {
			l.advance()
			if esc, ok := escapeChars[l.currentChar]; ok {
				sb.WriteByte(esc)
			} else {
				sb.WriteByte(l.currentChar)
			}
		} else {
			sb.WriteByte(l.currentChar)
		}
		l.advance()
	}

	if l.atEOF {
		return nil, cerr.New(cerr.ExpectedChar, posStart, l.pos.Copy(), "'"+string(quote)+"'")
	}
	l.advance()
	return NewToken(STRING, sb.String(), posStart, l.pos.Copy()), nil
}

// makeNotEquals handles '!=' ; a bare '!' is a lex error.
func (l *Lexer) makeNotEquals() (*Token, *cerr.Error) {
	posStart := l.pos.Copy()
	l.advance()

	if l.currentChar == '=' {
		l.advance()
		return NewToken(NE, nil, posStart, l.pos.Copy()), nil
	}

	return nil, cerr.New(cerr.ExpectedChar, posStart, l.pos.Copy(), "'=' (after '!')")
}

// makeMinusOrArrow lexes '-' as MINUS. The '->' arrow of early language
// revisions is not recognised: Cloudy spells membership with the
// `in`/`not in` keywords instead (SPEC_FULL.md §11.1), so '-' is always
// MINUS.
func (l *Lexer) makeMinusOrArrow() *Token {
	posStart := l.pos.Copy()
	l.advance()
	return NewToken(MINUS, nil, posStart, l.pos.Copy())
}

func (l *Lexer) makeDoubleCharToken(defaultKind, doubledKind Kind, second byte) *Token {
	posStart := l.pos.Copy()
	l.advance()
	kind := defaultKind
	if l.currentChar == second {
		l.advance()
		kind = doubledKind
	}
	return NewToken(kind, nil, posStart, l.pos.Copy())
}
