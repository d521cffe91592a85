package regexlib

import (
	"strings"
	"testing"
)

func TestBuildLinearSize(t *testing.T) {
	// each literal contributes two states, finalization one more
	for _, pat := range []string{"a", "ab", "abcde"} {
		re := MustCompile(pat)
		want := 2*len(pat) + 1
		if got := re.NFA().NumStates(); got != want {
			t.Fatalf("%q: want %d states, got %d", pat, want, got)
		}
	}
}

func TestBuildStarShape(t *testing.T) {
	// star adds an entry and an exit around the child pair
	re := MustCompile("a*")
	if got := re.NFA().NumStates(); got != 5 {
		t.Fatalf("want 5 states, got %d", got)
	}
}

func TestHandBuiltReferenceNFA(t *testing.T) {
	// hand-wired automaton for ab|c
	n := &NFA{}
	start := n.newState()
	a1, a2 := n.newState(), n.newState()
	b1, b2 := n.newState(), n.newState()
	c1, c2 := n.newState(), n.newState()
	acc := n.newState()
	n.addEps(start, a1)
	n.addEps(start, c1)
	n.addEdge(a1, edgeLabel{runes: []rune{'a'}}, a2)
	n.addEps(a2, b1)
	n.addEdge(b1, edgeLabel{runes: []rune{'b'}}, b2)
	n.addEdge(c1, edgeLabel{runes: []rune{'c'}}, c2)
	n.addEps(b2, acc)
	n.addEps(c2, acc)
	n.states[acc].accept = true
	n.start, n.accept = start, acc

	compiled := MustCompile("ab|c")
	for _, in := range wordsOver("abc", 3) {
		if got, want := compiled.Match(in), n.Match(in); got != want {
			t.Fatalf("%q: compiled %v, reference %v", in, got, want)
		}
	}
}

func TestEpsilonCycleTermination(t *testing.T) {
	// (a*)* wires epsilon cycles; the closure's visited set must hold
	re := MustCompile("(a*)*")
	if !re.Match("") || !re.Match("aaaa") {
		t.Fatal("(a*)* must accept empty and aaaa")
	}
	if re.Match("b") {
		t.Fatal("(a*)* must reject b")
	}
}

func TestBoundedRepeat(t *testing.T) {
	cases := []struct {
		pat string
		yes []string
		no  []string
	}{
		{"a{3}", []string{"aaa"}, []string{"", "aa", "aaaa"}},
		{"a{2,4}", []string{"aa", "aaa", "aaaa"}, []string{"a", "aaaaa"}},
		{"a{2,}", []string{"aa", "aaa", strings.Repeat("a", 10)}, []string{"", "a"}},
		{"a{0,2}", []string{"", "a", "aa"}, []string{"aaa"}},
		{"a{0}", []string{""}, []string{"a"}},
		{"(ab){2,3}", []string{"abab", "ababab"}, []string{"ab", "abababab", "aba"}},
	}
	for _, c := range cases {
		re := MustCompile(c.pat)
		for _, in := range c.yes {
			if !re.Match(in) {
				t.Fatalf("%q must accept %q", c.pat, in)
			}
		}
		for _, in := range c.no {
			if re.Match(in) {
				t.Fatalf("%q must reject %q", c.pat, in)
			}
		}
	}
}

func TestEmptyPatternAutomaton(t *testing.T) {
	re := MustCompile("")
	n := re.NFA()
	if !n.states[n.start].accept {
		t.Fatal("empty pattern: start state must accept")
	}
	if !re.Match("") {
		t.Fatal("empty pattern must accept empty input")
	}
	if re.Match("a") {
		t.Fatal("empty pattern must reject non-empty input")
	}
}

func TestNegatedClassEdges(t *testing.T) {
	re := MustCompile("[^ab]")
	for in, want := range map[string]bool{"a": false, "b": false, "c": true, "z": true, "": false, "cc": false} {
		if got := re.Match(in); got != want {
			t.Fatalf("[^ab] on %q: want %v got %v", in, want, got)
		}
	}
}
