package regexlib

import "strings"

// StateID is a dense index into an NFA's state arena. IDs are stable
// for the automaton's lifetime.
type StateID int

// edgeLabel is a single-character predicate: a sorted rune set,
// complemented when negated. The '.' wildcard is the negated empty set.
type edgeLabel struct {
	runes   []rune
	negated bool
}

func (l edgeLabel) matches(r rune) bool {
	for _, c := range l.runes {
		if c == r {
			return !l.negated
		}
		if c > r { // set is sorted
			break
		}
	}
	return l.negated
}

func (l edgeLabel) String() string {
	if len(l.runes) == 1 && !l.negated {
		return string(l.runes[0])
	}
	var b strings.Builder
	b.WriteByte('[')
	if l.negated {
		b.WriteByte('^')
	}
	for _, r := range l.runes {
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

type labeledEdge struct {
	label edgeLabel
	to    StateID
}

type nfaState struct {
	eps    []StateID // epsilon-out edges
	edges  []labeledEdge
	accept bool
}

// NFA is an automaton whose states live in an append-only arena and
// reference each other by index. The epsilon back-edges created by the
// star and plus constructions make index links much easier to live with
// than pointer links, and keep the structure inspectable in tests.
type NFA struct {
	states []nfaState
	start  StateID
	accept StateID // the single accepting state wired in by finish
}

// NumStates returns the size of the state arena.
func (n *NFA) NumStates() int { return len(n.states) }

func (n *NFA) newState() StateID {
	n.states = append(n.states, nfaState{})
	return StateID(len(n.states) - 1)
}

func (n *NFA) addEps(from, to StateID) {
	n.states[from].eps = append(n.states[from].eps, to)
}

func (n *NFA) addEdge(from StateID, label edgeLabel, to StateID) {
	n.states[from].edges = append(n.states[from].edges, labeledEdge{label: label, to: to})
}

// frag is a partially built sub-automaton: one entry state plus the
// states whose outgoing epsilon edge is still dangling. Fragments are
// dead once composed into a parent.
type frag struct {
	start StateID
	outs  []StateID
}

func (n *NFA) patch(outs []StateID, to StateID) {
	for _, s := range outs {
		n.addEps(s, to)
	}
}

// buildNFA compiles a pattern tree into an NFA by Thompson
// construction: each node kind maps to exactly one structural rule, and
// composing fragments preserves the language of each subtree.
func buildNFA(root *astNode) *NFA {
	n := &NFA{}
	f := n.build(root)
	acc := n.newState()
	n.states[acc].accept = true
	n.patch(f.outs, acc)
	n.start = f.start
	n.accept = acc
	if root.kind == nEmpty {
		// degenerate empty pattern: the start state itself accepts
		n.states[n.start].accept = true
	}
	return n
}

func (n *NFA) build(node *astNode) frag {
	switch node.kind {
	case nEmpty:
		s := n.newState()
		return frag{start: s, outs: []StateID{s}}
	case nLiteral:
		s1, s2 := n.newState(), n.newState()
		n.addEdge(s1, edgeLabel{runes: []rune{node.ch}}, s2)
		return frag{start: s1, outs: []StateID{s2}}
	case nCharSet:
		s1, s2 := n.newState(), n.newState()
		n.addEdge(s1, edgeLabel{runes: node.set, negated: node.negated}, s2)
		return frag{start: s1, outs: []StateID{s2}}
	case nConcat:
		f1 := n.build(node.left)
		f2 := n.build(node.right)
		n.patch(f1.outs, f2.start)
		return frag{start: f1.start, outs: f2.outs}
	case nAlt:
		s := n.newState()
		f1 := n.build(node.left)
		f2 := n.build(node.right)
		n.addEps(s, f1.start)
		n.addEps(s, f2.start)
		return frag{start: s, outs: append(f1.outs, f2.outs...)}
	case nGroup:
		// transparent: no states of its own
		return n.build(node.left)
	case nRepeat:
		return n.buildRepeat(node)
	default:
		panic("regexlib: unknown ast node")
	}
}

func (n *NFA) buildRepeat(node *astNode) frag {
	switch {
	case node.min == 0 && node.max == unbounded:
		return n.buildStar(node.left)
	case node.min == 1 && node.max == unbounded:
		return n.buildPlus(node.left)
	case node.min == 0 && node.max == 1:
		return n.buildQuest(node.left)
	}

	// Bounded repetition desugars into composition: min required
	// copies, then either one star copy ({m,}) or max-min optional
	// copies ({m,n}).
	var f frag
	built := false
	grow := func(piece frag) {
		if !built {
			f = piece
			built = true
			return
		}
		n.patch(f.outs, piece.start)
		f.outs = piece.outs
	}
	for i := 0; i < node.min; i++ {
		grow(n.build(node.left))
	}
	if node.max == unbounded {
		grow(n.buildStar(node.left))
	} else {
		for i := node.min; i < node.max; i++ {
			grow(n.buildQuest(node.left))
		}
	}
	if !built { // {0} or {0,0}: matches only ε
		s := n.newState()
		f = frag{start: s, outs: []StateID{s}}
	}
	return f
}

// buildStar: S has epsilon edges to the child and to a fresh exit; the
// child's dangling edges loop back to S.
func (n *NFA) buildStar(child *astNode) frag {
	s := n.newState()
	f := n.build(child)
	e := n.newState()
	n.addEps(s, f.start)
	n.addEps(s, e)
	n.patch(f.outs, s)
	return frag{start: s, outs: []StateID{e}}
}

// buildPlus: the child runs once, then its dangling edges both loop
// back to the child entry and exit forward.
func (n *NFA) buildPlus(child *astNode) frag {
	f := n.build(child)
	e := n.newState()
	for _, o := range f.outs {
		n.addEps(o, f.start)
		n.addEps(o, e)
	}
	return frag{start: f.start, outs: []StateID{e}}
}

// buildQuest: S either enters the child or bypasses straight to the
// exit.
func (n *NFA) buildQuest(child *astNode) frag {
	s := n.newState()
	f := n.build(child)
	e := n.newState()
	n.addEps(s, f.start)
	n.addEps(s, e)
	n.patch(f.outs, e)
	return frag{start: s, outs: []StateID{e}}
}
