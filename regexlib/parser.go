package regexlib

import (
	"fmt"
	"sort"
	"strconv"
)

// SyntaxError reports a malformed pattern. Pos is the byte offset of
// the offending character.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// parser is a recursive-descent parser over the grammar
//
//	Alternation := Concat ('|' Concat)*
//	Concat      := Repeat+
//	Repeat      := Atom ('*' | '+' | '?' | '{m}' | '{m,n}' | '{m,}')*
//	Atom        := char | '.' | '[' class ']' | '(' Alternation ')'
//
// with one token of lookahead.
type parser struct {
	lex  *lexer
	look token
}

func parsePattern(pat string) (*astNode, error) {
	if pat == "" {
		return &astNode{kind: nEmpty}, nil
	}
	p := &parser{lex: newLexer(pat)}
	p.scan()
	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	switch p.look.typ {
	case tEOF:
		return root, nil
	case tRParen:
		return nil, &SyntaxError{Pos: p.look.pos, Msg: "unmatched )"}
	case tRBracket:
		return nil, &SyntaxError{Pos: p.look.pos, Msg: "unmatched ]"}
	default:
		return nil, &SyntaxError{Pos: p.look.pos, Msg: "unexpected character"}
	}
}

func (p *parser) scan() { p.look = p.lex.next() }

func (p *parser) atomStart() bool {
	switch p.look.typ {
	case tChar, tDot, tDash, tComma, tRBrace, tLParen, tLBracket:
		return true
	}
	return false
}

func (p *parser) parseAlternation() (*astNode, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tPipe {
		pipePos := p.look.pos
		p.scan()
		switch p.look.typ {
		case tEOF, tPipe, tRParen:
			return nil, &SyntaxError{Pos: pipePos, Msg: "empty alternation branch"}
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = altNode(left, right)
	}
	return left, nil
}

func (p *parser) parseConcat() (*astNode, error) {
	left, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	for p.atomStart() {
		right, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		left = concatNode(left, right)
	}
	return left, nil
}

func (p *parser) parseRepeat() (*astNode, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.look.typ {
		case tStar:
			atom = repeatNode(atom, 0, unbounded)
			p.scan()
		case tPlus:
			atom = repeatNode(atom, 1, unbounded)
			p.scan()
		case tQMark:
			atom = repeatNode(atom, 0, 1)
			p.scan()
		case tLBrace:
			min, max, err := p.parseBounds()
			if err != nil {
				return nil, err
			}
			atom = repeatNode(atom, min, max)
		default:
			return atom, nil
		}
	}
}

func (p *parser) parseAtom() (*astNode, error) {
	tok := p.look
	switch tok.typ {
	case tChar, tDash, tComma, tRBrace:
		// '-', ',' and '}' are only special in their own contexts;
		// elsewhere they are plain literals.
		p.scan()
		return literalNode(tok.ch), nil
	case tDot:
		p.scan()
		// wildcard: the negated empty set matches any character
		return &astNode{kind: nCharSet, negated: true}, nil
	case tLParen:
		p.scan()
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "unmatched ("}
		}
		p.scan()
		return &astNode{kind: nGroup, left: inner}, nil
	case tLBracket:
		p.scan()
		return p.parseCharClass(tok.pos)
	case tStar, tPlus, tQMark, tLBrace:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "quantifier with no preceding atom"}
	case tPipe:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "empty alternation branch"}
	case tRParen:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "empty group"}
	case tRBracket:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unmatched ]"}
	default:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected end of pattern"}
	}
}

// parseCharClass consumes the body of a [...] class. The opening
// bracket is already consumed; lbPos is its offset.
func (p *parser) parseCharClass(lbPos int) (*astNode, error) {
	negated := false
	if p.look.typ == tChar && p.look.ch == '^' && !p.look.escaped {
		negated = true
		p.scan()
	}

	var set []rune
	for p.look.typ != tRBracket {
		if p.look.typ == tEOF {
			return nil, &SyntaxError{Pos: lbPos, Msg: "unmatched ["}
		}
		lo := p.look.ch
		p.scan()

		if p.look.typ == tDash && !p.look.escaped {
			dashPos := p.look.pos
			p.scan()
			if p.look.typ == tRBracket {
				// trailing '-' is a literal, as in [a-]
				set = append(set, lo, '-')
				continue
			}
			if p.look.typ == tEOF {
				return nil, &SyntaxError{Pos: lbPos, Msg: "unmatched ["}
			}
			hi := p.look.ch
			p.scan()
			if hi < lo {
				return nil, &SyntaxError{Pos: dashPos, Msg: "invalid character range"}
			}
			for r := lo; r <= hi; r++ {
				set = append(set, r)
			}
			continue
		}
		set = append(set, lo)
	}
	p.scan() // consume ']'

	return &astNode{kind: nCharSet, set: normalizeSet(set), negated: negated}, nil
}

// parseBounds consumes a {m}, {m,n} or {m,} quantifier. The '{' is the
// current token.
func (p *parser) parseBounds() (int, int, error) {
	bracePos := p.look.pos
	p.scan() // consume '{'

	min, err := p.parseBound()
	if err != nil {
		return 0, 0, err
	}
	max := min
	if p.look.typ == tComma {
		p.scan()
		if p.look.typ == tRBrace {
			max = unbounded
		} else {
			max, err = p.parseBound()
			if err != nil {
				return 0, 0, err
			}
		}
	}
	if p.look.typ != tRBrace {
		return 0, 0, &SyntaxError{Pos: bracePos, Msg: "unterminated quantifier"}
	}
	p.scan()
	if max != unbounded && max < min {
		return 0, 0, &SyntaxError{Pos: bracePos, Msg: "quantifier bound max < min"}
	}
	return min, max, nil
}

func (p *parser) parseBound() (int, error) {
	pos := p.look.pos
	digits := ""
	for p.look.typ == tChar && !p.look.escaped && p.look.ch >= '0' && p.look.ch <= '9' {
		digits += string(p.look.ch)
		p.scan()
	}
	if digits == "" {
		return 0, &SyntaxError{Pos: pos, Msg: "non-numeric quantifier bound"}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &SyntaxError{Pos: pos, Msg: "quantifier bound too large"}
	}
	return n, nil
}

func normalizeSet(set []rune) []rune {
	seen := make(map[rune]struct{}, len(set))
	out := set[:0]
	for _, r := range set {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
