package ast

import "strings"

// Sexpr renders the subtree as a compact S-expression: rules as
// "(Kind child...)", terminals as their text, synthetic terminals with a
// leading '+'. The end-of-input terminal is printed as <EOF>.
func (t *Tree) Sexpr(id NodeID) string {
	var sb strings.Builder
	t.sexpr(&sb, id)
	return sb.String()
}

func (t *Tree) sexpr(sb *strings.Builder, id NodeID) {
	n := t.Node(id)
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	if n.Kind == Terminal {
		switch l := n.Leaf.(type) {
		case SyntheticLeaf:
			sb.WriteByte('+')
			sb.WriteString(l.Text)
		default:
			if t.IsEOF(id) {
				sb.WriteString("<EOF>")
				return
			}
			sb.WriteString(n.Leaf.LeafText())
		}
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	for _, c := range n.Children {
		sb.WriteByte(' ')
		t.sexpr(sb, c)
	}
	sb.WriteByte(')')
}
