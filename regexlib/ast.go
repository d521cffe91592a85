package regexlib

type nodeKind int

const (
	nEmpty   nodeKind = iota // ε, the empty pattern
	nLiteral                 // single character
	nCharSet                 // character class, possibly negated
	nConcat
	nAlt
	nRepeat // all quantifiers: * + ? {m} {m,n} {m,}
	nGroup  // ( ... )
)

// unbounded is the max of a Repeat with no upper limit.
const unbounded = -1

// astNode is the immutable tree form of a parsed pattern. Quantifiers
// are normalized to min/max pairs: * is {0,∞}, + is {1,∞}, ? is {0,1}.
type astNode struct {
	kind  nodeKind
	left  *astNode
	right *astNode

	ch       rune   // nLiteral
	set      []rune // nCharSet, sorted ascending
	negated  bool   // nCharSet; negated empty set matches any character
	min, max int    // nRepeat
}

func literalNode(r rune) *astNode { return &astNode{kind: nLiteral, ch: r} }

func concatNode(l, r *astNode) *astNode { return &astNode{kind: nConcat, left: l, right: r} }

func altNode(l, r *astNode) *astNode { return &astNode{kind: nAlt, left: l, right: r} }

func repeatNode(child *astNode, min, max int) *astNode {
	return &astNode{kind: nRepeat, left: child, min: min, max: max}
}
