package regexlib

// Match reports whether the automaton accepts the whole input. The
// simulation advances a set of active states through the input,
// breadth-first, so the runtime stays O(len(input) * NumStates())
// no matter how the pattern branches. There is no backtracking.
func (n *NFA) Match(input string) bool {
	active := make(map[StateID]struct{}, 1)
	active[n.start] = struct{}{}
	active = n.epsilonClosure(active)

	for _, r := range input {
		next := make(map[StateID]struct{}, len(active))
		for s := range active {
			for _, e := range n.states[s].edges {
				if e.label.matches(r) {
					next[e.to] = struct{}{}
				}
			}
		}
		if len(next) == 0 {
			// no state consumed this symbol; nothing can revive the run
			return false
		}
		active = n.epsilonClosure(next)
	}

	for s := range active {
		if n.states[s].accept {
			return true
		}
	}
	return false
}

// epsilonClosure extends set with every state reachable over epsilon
// edges alone. The set doubles as the visited set, so the walk
// terminates even on the epsilon cycles that star and plus introduce.
func (n *NFA) epsilonClosure(set map[StateID]struct{}) map[StateID]struct{} {
	stack := make([]StateID, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.states[s].eps {
			if _, ok := set[t]; !ok {
				set[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
	return set
}
