package regexlib

import "strings"

// ToRegexp converts the DFA into an equivalent pattern string by
// McNaughton-Yamada state elimination. Useful mostly for tests: the
// result re-parses through Compile and must accept the same language.
func (d *DFA) ToRegexp() string {
	if d == nil || len(d.states) == 0 {
		return "∅"
	}

	// Two virtual states let the real start and finals be eliminated
	// like everything else: index n is the superstart, n+1 the
	// superfinal, joined to the automaton by ε edges (empty labels).
	n := len(d.states)
	size := n + 2
	expr := make([][]string, size)
	has := make([][]bool, size)
	for i := range expr {
		expr[i] = make([]string, size)
		has[i] = make([]bool, size)
	}
	add := func(i, j int, e string) {
		switch {
		case !has[i][j]:
			has[i][j] = true
			expr[i][j] = e
		case expr[i][j] == e:
		case e == "":
			expr[i][j] = "(" + expr[i][j] + ")?"
		case expr[i][j] == "":
			expr[i][j] = "(" + e + ")?"
		default:
			expr[i][j] += "|" + e
		}
	}

	for id, s := range d.states {
		for c, t := range s.trans {
			add(id, t, escapeRune(c))
		}
		if s.accept {
			add(id, n+1, "")
		}
	}
	add(n, d.start, "")

	// eliminate every real state; paths through state k fold into
	// direct i→j edges
	for k := 0; k < n; k++ {
		for i := 0; i < size; i++ {
			if i == k || !has[i][k] {
				continue
			}
			for j := 0; j < size; j++ {
				if j == k || !has[k][j] {
					continue
				}
				middle := ""
				if has[k][k] && expr[k][k] != "" {
					middle = "(" + expr[k][k] + ")*"
				}
				add(i, j, concatParts(regexAlt(expr[i][k]), middle, regexAlt(expr[k][j])))
			}
		}
	}

	if !has[n][n+1] {
		return "∅" // empty language
	}
	return expr[n][n+1]
}

func escapeRune(r rune) string {
	switch r {
	case '*', '+', '?', '|', '(', ')', '[', ']', '{', '}', '.', '\\', '-', ',':
		return "\\" + string(r)
	default:
		return string(r)
	}
}

func concatParts(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// regexAlt parenthesizes an alternation so concatenation binds tighter.
func regexAlt(s string) string {
	if strings.ContainsRune(s, '|') {
		return "(" + s + ")"
	}
	return s
}
