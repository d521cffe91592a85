// Package regexlib compiles textual regular expressions into
// nondeterministic finite automata and decides whole-string acceptance
// by epsilon-closure simulation, without backtracking.
package regexlib

// Regex is a compiled pattern: the parsed tree plus the Thompson NFA
// built from it. A Regex is immutable and safe for repeated matching.
type Regex struct {
	pattern string
	ast     *astNode
	nfa     *NFA
}

// Compile parses a pattern and constructs its NFA. The only possible
// failure is a *SyntaxError from the parser.
func Compile(pattern string) (*Regex, error) {
	ast, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, ast: ast, nfa: buildNFA(ast)}, nil
}

// MustCompile is Compile for patterns known good at build time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Match reports whether the pattern accepts the whole input. Greedy
// versus non-greedy is moot here: the simulation tracks every
// interleaving at once and only acceptance is reported.
func (r *Regex) Match(input string) bool { return r.nfa.Match(input) }

// Pattern returns the source text the Regex was compiled from.
func (r *Regex) Pattern() string { return r.pattern }

// NFA returns the compiled automaton.
func (r *Regex) NFA() *NFA { return r.nfa }

// DFA determinizes the NFA by subset construction over the alphabet of
// characters the pattern names. Built on demand, never cached.
func (r *Regex) DFA() *DFA { return nfaToDFA(r.nfa, patternAlphabet(r.ast)) }

// MinDFA returns the Hopcroft-minimized DFA.
func (r *Regex) MinDFA() *DFA { return Minimize(r.DFA()) }

// Match compiles pattern and tests input in one call, building a fresh
// AST and NFA each time. Callers matching many inputs against one
// pattern should Compile once instead.
func Match(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(input), nil
}
