package regexlib

import (
	"fmt"
	"sort"
)

type dfaState struct {
	trans  map[rune]int
	accept bool
}

// DFA is a deterministic automaton over an explicit alphabet, produced
// from an NFA by subset construction. Like the NFA, states live in an
// arena and reference each other by index. Transitions are partial: a
// missing entry is a reject.
type DFA struct {
	states []dfaState
	start  int
	alpha  []rune
}

// NumStates returns the size of the state arena.
func (d *DFA) NumStates() int { return len(d.states) }

// Alphabet returns the alphabet the DFA was determinized over.
func (d *DFA) Alphabet() []rune { return d.alpha }

// Match reports whether the DFA accepts the whole input.
func (d *DFA) Match(input string) bool {
	cur := d.start
	for _, r := range input {
		t, ok := d.states[cur].trans[r]
		if !ok {
			return false
		}
		cur = t
	}
	return d.states[cur].accept
}

// nfaToDFA runs the subset construction: each DFA state stands for an
// epsilon-closed set of NFA states, discovered worklist-style.
func nfaToDFA(n *NFA, alpha []rune) *DFA {
	key := func(set map[StateID]struct{}) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, int(s))
		}
		sort.Ints(ids)
		return fmt.Sprint(ids)
	}
	hasAccept := func(set map[StateID]struct{}) bool {
		for s := range set {
			if n.states[s].accept {
				return true
			}
		}
		return false
	}

	d := &DFA{alpha: alpha}
	initSet := n.epsilonClosure(map[StateID]struct{}{n.start: {}})
	d.states = append(d.states, dfaState{trans: map[rune]int{}, accept: hasAccept(initSet)})
	seen := map[string]int{key(initSet): 0}
	queue := []map[StateID]struct{}{initSet}

	for len(queue) > 0 {
		curSet := queue[0]
		queue = queue[1:]
		cur := seen[key(curSet)]
		for _, sym := range alpha {
			moveSet := make(map[StateID]struct{})
			for s := range curSet {
				for _, e := range n.states[s].edges {
					if e.label.matches(sym) {
						moveSet[e.to] = struct{}{}
					}
				}
			}
			if len(moveSet) == 0 {
				continue
			}
			clo := n.epsilonClosure(moveSet)
			k := key(clo)
			id, ok := seen[k]
			if !ok {
				id = len(d.states)
				d.states = append(d.states, dfaState{trans: map[rune]int{}, accept: hasAccept(clo)})
				seen[k] = id
				queue = append(queue, clo)
			}
			d.states[cur].trans[sym] = id
		}
	}
	return d
}

// patternAlphabet collects every rune the pattern names. Negated
// classes (and the '.' wildcard) match characters the pattern never
// mentions, so their presence widens the alphabet to printable ASCII.
func patternAlphabet(root *astNode) []rune {
	set := map[rune]struct{}{}
	negSeen := false
	var walk func(*astNode)
	walk = func(node *astNode) {
		if node == nil {
			return
		}
		switch node.kind {
		case nLiteral:
			set[node.ch] = struct{}{}
		case nCharSet:
			for _, r := range node.set {
				set[r] = struct{}{}
			}
			if node.negated {
				negSeen = true
			}
		}
		walk(node.left)
		walk(node.right)
	}
	walk(root)

	if negSeen {
		for r := rune(0x20); r <= 0x7e; r++ {
			set[r] = struct{}{}
		}
	}
	alpha := make([]rune, 0, len(set))
	for r := range set {
		alpha = append(alpha, r)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	return alpha
}
