package regexlib

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDOTNFA(t *testing.T) {
	var buf bytes.Buffer
	MustCompile("ab").NFA().WriteDOT(&buf)
	out := buf.String()
	for _, want := range []string{
		"digraph G {",
		"rankdir=LR;",
		"doublecircle",
		`label="a"`,
		`label="b"`,
		`label="ε"`,
		"_start [shape=point]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("NFA dot output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDOTDFA(t *testing.T) {
	var buf bytes.Buffer
	MustCompile("a|b").MinDFA().WriteDOT(&buf)
	out := buf.String()
	for _, want := range []string{"q0", "doublecircle", `label="a"`, `label="b"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("DFA dot output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDOTClassLabel(t *testing.T) {
	var buf bytes.Buffer
	MustCompile("[^ab]").NFA().WriteDOT(&buf)
	if !strings.Contains(buf.String(), `label="[^ab]"`) {
		t.Fatalf("negated class label missing:\n%s", buf.String())
	}
}
