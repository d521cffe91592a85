package regexlib

// Minimize merges indistinguishable DFA states by Hopcroft partition
// refinement and returns the reduced automaton. The input is left
// untouched. Refinement requires a total transition function, so the
// DFA is completed with a reject sink first; the sink's block is
// stripped from the result again.
func Minimize(d *DFA) *DFA {
	if d == nil || len(d.states) == 0 {
		return d
	}

	ct := complete(d, d.alpha)
	sink := -1
	if len(ct.states) > len(d.states) {
		sink = len(d.states)
	}

	// initial split: accepting vs non-accepting
	acc, non := map[int]struct{}{}, map[int]struct{}{}
	for i, s := range ct.states {
		if s.accept {
			acc[i] = struct{}{}
		} else {
			non[i] = struct{}{}
		}
	}
	partitions := make([]map[int]struct{}, 0, 2)
	if len(acc) != 0 {
		partitions = append(partitions, acc)
	}
	if len(non) != 0 {
		partitions = append(partitions, non)
	}

	queue := make([]int, len(partitions))
	inWork := make(map[int]bool, len(partitions))
	for i := range partitions {
		queue[i] = i
		inWork[i] = true
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		inWork[idx] = false
		splitter := partitions[idx]

		for _, c := range ct.alpha {
			// preimage of the splitter under c; the function is total,
			// so "no edge" can no longer hide a distinction
			pre := make(map[int]struct{})
			for s, st := range ct.states {
				if _, in := splitter[st.trans[c]]; in {
					pre[s] = struct{}{}
				}
			}

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				block := partitions[pIdx]
				inter := make(map[int]struct{})
				diff := make(map[int]struct{})
				for s := range block {
					if _, in := pre[s]; in {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue // block did not split
				}
				partitions[pIdx] = inter
				newIdx := len(partitions)
				partitions = append(partitions, diff)
				// Hopcroft worklist rule: a queued block stands for
				// both halves, so its split must queue the other half;
				// otherwise the smaller half suffices
				switch {
				case inWork[pIdx]:
					queue = append(queue, newIdx)
					inWork[newIdx] = true
				case len(inter) < len(diff):
					queue = append(queue, pIdx)
					inWork[pIdx] = true
				default:
					queue = append(queue, newIdx)
					inWork[newIdx] = true
				}
			}
		}
	}

	// rebuild the arena, one state per block, dropping the sink's
	// block; new IDs follow the lowest old ID in each block so the
	// result is deterministic
	blockOf := make([]int, len(ct.states))
	for bi, block := range partitions {
		for s := range block {
			blockOf[s] = bi
		}
	}
	deadBlock := -1
	if sink >= 0 {
		deadBlock = blockOf[sink]
	}
	if deadBlock >= 0 && blockOf[ct.start] == deadBlock {
		// the whole language is empty
		return &DFA{states: []dfaState{{trans: map[rune]int{}}}, alpha: d.alpha}
	}

	newID := make(map[int]int, len(partitions))
	for s := 0; s < len(ct.states); s++ {
		b := blockOf[s]
		if b == deadBlock {
			continue
		}
		if _, ok := newID[b]; !ok {
			newID[b] = len(newID)
		}
	}

	out := &DFA{
		states: make([]dfaState, len(newID)),
		start:  newID[blockOf[ct.start]],
		alpha:  d.alpha,
	}
	for i := range out.states {
		out.states[i] = dfaState{trans: map[rune]int{}}
	}
	for s, st := range ct.states {
		b := blockOf[s]
		if b == deadBlock {
			continue
		}
		ns := newID[b]
		out.states[ns].accept = st.accept
		for c, t := range st.trans {
			if blockOf[t] == deadBlock {
				continue // edges into the sink stay implicit
			}
			out.states[ns].trans[c] = newID[blockOf[t]]
		}
	}
	return out
}
