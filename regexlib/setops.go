package regexlib

import "sort"

// Language-level set operations over DFAs. All of them treat a DFA as
// the language of whole strings it accepts, relative to its alphabet.

// Complement accepts exactly the strings over d's alphabet that d
// rejects.
func Complement(d *DFA) *DFA {
	out := complete(d, d.alpha)
	for i := range out.states {
		out.states[i].accept = !out.states[i].accept
	}
	return out
}

// Intersect accepts the strings accepted by both operands.
func Intersect(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// Union accepts the strings accepted by either operand.
func Union(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x || y })
}

// product runs both automata in lockstep over the union alphabet,
// discovering reachable state pairs worklist-style. op decides
// acceptance of a pair from the operands' acceptance.
func product(a, b *DFA, op func(bool, bool) bool) *DFA {
	alpha := unionRunes(a.alpha, b.alpha)
	// totality means every pair always has a successor
	ac, bc := complete(a, alpha), complete(b, alpha)

	type pair struct{ i, j int }
	start := pair{ac.start, bc.start}
	ids := map[pair]int{start: 0}
	queue := []pair{start}
	out := &DFA{alpha: alpha}
	out.states = append(out.states, dfaState{
		trans:  map[rune]int{},
		accept: op(ac.states[ac.start].accept, bc.states[bc.start].accept),
	})

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := ids[p]
		for _, c := range alpha {
			np := pair{ac.states[p.i].trans[c], bc.states[p.j].trans[c]}
			id, ok := ids[np]
			if !ok {
				id = len(out.states)
				out.states = append(out.states, dfaState{
					trans:  map[rune]int{},
					accept: op(ac.states[np.i].accept, bc.states[np.j].accept),
				})
				ids[np] = id
				queue = append(queue, np)
			}
			out.states[cur].trans[c] = id
		}
	}
	return out
}

// Reverse accepts the reversals of d's language: edges are flipped into
// an NFA whose start branches to d's old accepting states, then the
// result is determinized again.
func Reverse(d *DFA) *DFA {
	n := &NFA{}
	nodes := make([]StateID, len(d.states))
	for i := range nodes {
		nodes[i] = n.newState()
	}
	start := n.newState()
	for i, s := range d.states {
		if s.accept {
			n.addEps(start, nodes[i])
		}
		for c, to := range s.trans {
			n.addEdge(nodes[to], edgeLabel{runes: []rune{c}}, nodes[i])
		}
	}
	n.start = start
	n.accept = nodes[d.start]
	n.states[n.accept].accept = true
	return nfaToDFA(n, d.alpha)
}

// complete clones d with a transition function total over alpha, adding
// a non-accepting sink if any transition is missing.
func complete(d *DFA, alpha []rune) *DFA {
	out := &DFA{states: make([]dfaState, len(d.states)), start: d.start, alpha: alpha}
	for i, s := range d.states {
		trans := make(map[rune]int, len(s.trans))
		for c, t := range s.trans {
			trans[c] = t
		}
		out.states[i] = dfaState{trans: trans, accept: s.accept}
	}

	sink := -1
	for i := 0; i < len(out.states); i++ {
		for _, c := range alpha {
			if _, ok := out.states[i].trans[c]; ok {
				continue
			}
			if sink < 0 {
				sink = len(out.states)
				out.states = append(out.states, dfaState{trans: map[rune]int{}})
				for _, cc := range alpha {
					out.states[sink].trans[cc] = sink
				}
			}
			out.states[i].trans[c] = sink
		}
	}
	return out
}

func unionRunes(a, b []rune) []rune {
	set := map[rune]struct{}{}
	for _, r := range a {
		set[r] = struct{}{}
	}
	for _, r := range b {
		set[r] = struct{}{}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
