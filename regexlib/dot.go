package regexlib

import (
	"fmt"
	"io"
	"sort"
)

// WriteDOT writes a Graphviz representation of the NFA to w.
func (n *NFA) WriteDOT(w io.Writer) {
	dotHeader(w)
	for id, s := range n.states {
		shape := "circle"
		if s.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)
		for _, to := range s.eps {
			fmt.Fprintf(w, "    n%d -> n%d [label=\"ε\"];\n", id, to)
		}
		for _, e := range s.edges {
			fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", id, e.to, e.label.String())
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", n.start)
	fmt.Fprintln(w, "}")
}

// WriteDOT writes a Graphviz representation of the DFA to w.
func (d *DFA) WriteDOT(w io.Writer) {
	dotHeader(w)
	for id, s := range d.states {
		shape := "circle"
		if s.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", id, shape)
		runes := make([]rune, 0, len(s.trans))
		for c := range s.trans {
			runes = append(runes, c)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		for _, c := range runes {
			fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", id, s.trans[c], string(c))
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", d.start)
	fmt.Fprintln(w, "}")
}

func dotHeader(w io.Writer) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
}
