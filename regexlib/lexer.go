package regexlib

import (
	"unicode/utf8"
)

type tokenType int

const (
	tEOF      tokenType = iota
	tChar               // literal rune (including backslash escapes)
	tLParen             // (
	tRParen             // )
	tStar               // *
	tPlus               // +
	tQMark              // ?
	tPipe               // |
	tLBracket           // [
	tRBracket           // ]
	tDash               // - (range operator inside [])
	tLBrace             // {
	tRBrace             // }
	tComma              // , (for {m,n})
	tDot                // . wildcard
)

// token is a single lexeme. Every token carries the raw rune it was
// scanned from, so the char-class parser can demote metacharacters to
// plain set members. pos is the byte offset in the pattern, used by
// syntax errors.
type token struct {
	typ     tokenType
	ch      rune
	pos     int
	escaped bool // produced by a backslash escape
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() token {
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: l.pos}
	}
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '(':
		return token{typ: tLParen, ch: r, pos: start}
	case ')':
		return token{typ: tRParen, ch: r, pos: start}
	case '*':
		return token{typ: tStar, ch: r, pos: start}
	case '+':
		return token{typ: tPlus, ch: r, pos: start}
	case '?':
		return token{typ: tQMark, ch: r, pos: start}
	case '|':
		return token{typ: tPipe, ch: r, pos: start}
	case '[':
		return token{typ: tLBracket, ch: r, pos: start}
	case ']':
		return token{typ: tRBracket, ch: r, pos: start}
	case '-':
		return token{typ: tDash, ch: r, pos: start}
	case '{':
		return token{typ: tLBrace, ch: r, pos: start}
	case '}':
		return token{typ: tRBrace, ch: r, pos: start}
	case ',':
		return token{typ: tComma, ch: r, pos: start}
	case '.':
		return token{typ: tDot, ch: r, pos: start}
	case '\\':
		if l.pos >= len(l.input) {
			// standalone trailing backslash => literal backslash
			return token{typ: tChar, ch: r, pos: start}
		}
		r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += s2
		return token{typ: tChar, ch: r2, pos: start, escaped: true}
	default:
		return token{typ: tChar, ch: r, pos: start}
	}
}
