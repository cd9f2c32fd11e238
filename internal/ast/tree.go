package ast

import (
	"slices"

	"thriftfmt/internal/token"
)

// NodeID addresses a node in Tree.Nodes (1-based).
type NodeID uint32

// NoNode is the zero NodeID.
const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }

// Node is either a rule (Kind != Terminal, Children set) or a terminal
// (Kind == Terminal, Leaf set).
type Node struct {
	Kind     Kind
	Children []NodeID
	Leaf     Leaf
}

// Tree is a parsed document together with the full token stream it came from.
type Tree struct {
	Tokens []token.Token
	Nodes  *Arena[Node]
	Root   NodeID
}

// NewTree creates an empty tree over the given token stream.
func NewTree(tokens []token.Token) *Tree {
	return &Tree{
		Tokens: tokens,
		Nodes:  NewArena[Node](uint(len(tokens)) * 2),
	}
}

// Node returns the node for id, or nil for NoNode.
func (t *Tree) Node(id NodeID) *Node {
	return t.Nodes.Get(uint32(id))
}

// NewRule allocates a rule node.
func (t *Tree) NewRule(kind Kind, children ...NodeID) NodeID {
	return NodeID(t.Nodes.Allocate(Node{Kind: kind, Children: children}))
}

// NewTerminal allocates a terminal for the token at stream index idx.
func (t *Tree) NewTerminal(idx int) NodeID {
	return NodeID(t.Nodes.Allocate(Node{
		Kind: Terminal,
		Leaf: RealLeaf{Index: idx, Text: t.Tokens[idx].Text},
	}))
}

// NewSynthetic allocates a terminal that does not come from the stream.
func (t *Tree) NewSynthetic(kind token.Kind, text string) NodeID {
	return NodeID(t.Nodes.Allocate(Node{
		Kind: Terminal,
		Leaf: SyntheticLeaf{Kind: kind, Text: text},
	}))
}

// Kind returns the kind of id, KindInvalid for NoNode.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return KindInvalid
}

// Children returns the children of a rule node.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.Node(id); n != nil {
		return n.Children
	}
	return nil
}

// LeafOf returns the leaf of a terminal, nil for rules.
func (t *Tree) LeafOf(id NodeID) Leaf {
	if n := t.Node(id); n != nil && n.Kind == Terminal {
		return n.Leaf
	}
	return nil
}

// TokenKind returns the token kind behind a terminal: the stream token for
// real leaves, the recorded kind for synthetic ones, Invalid for rules.
func (t *Tree) TokenKind(id NodeID) token.Kind {
	switch l := t.LeafOf(id).(type) {
	case RealLeaf:
		return t.Tokens[l.Index].Kind
	case SyntheticLeaf:
		return l.Kind
	default:
		return token.Invalid
	}
}

// IsToken reports whether id is a terminal whose current text equals text.
func (t *Tree) IsToken(id NodeID, text string) bool {
	l := t.LeafOf(id)
	return l != nil && l.LeafText() == text
}

// IsEOF reports whether id is the end-of-input terminal.
func (t *Tree) IsEOF(id NodeID) bool {
	return t.TokenKind(id) == token.EOF
}

// Insert splices child into the children of parent at position i.
func (t *Tree) Insert(parent NodeID, i int, child NodeID) {
	n := t.Node(parent)
	n.Children = slices.Insert(n.Children, i, child)
}

// Append adds child at the end of parent's children.
func (t *Tree) Append(parent, child NodeID) {
	n := t.Node(parent)
	n.Children = append(n.Children, child)
}

// RemoveLast drops the last child of parent.
func (t *Tree) RemoveLast(parent NodeID) {
	n := t.Node(parent)
	if len(n.Children) > 0 {
		n.Children = n.Children[:len(n.Children)-1]
	}
}

// LastChild returns the last child or NoNode.
func (t *Tree) LastChild(id NodeID) NodeID {
	ch := t.Children(id)
	if len(ch) == 0 {
		return NoNode
	}
	return ch[len(ch)-1]
}

// Unwrap skips Header/Definition wrappers.
func (t *Tree) Unwrap(id NodeID) NodeID {
	for t.Kind(id).IsWrapper() && len(t.Children(id)) > 0 {
		id = t.Children(id)[0]
	}
	return id
}

// Walk visits nodes breadth-first from root. fn returning false prunes the
// subtree of that node.
func (t *Tree) Walk(root NodeID, fn func(id NodeID) bool) {
	queue := []NodeID{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !fn(id) {
			continue
		}
		queue = append(queue, t.Children(id)...)
	}
}

// Leaves returns the terminals under root in source order.
func (t *Tree) Leaves(root NodeID) []NodeID {
	var out []NodeID
	var visit func(id NodeID)
	visit = func(id NodeID) {
		n := t.Node(id)
		if n == nil {
			return
		}
		if n.Kind == Terminal {
			out = append(out, id)
			return
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(root)
	return out
}

// SetText replaces the text of a terminal, keeping its stream position.
func (t *Tree) SetText(id NodeID, text string) {
	n := t.Node(id)
	switch l := n.Leaf.(type) {
	case RealLeaf:
		l.Text = text
		n.Leaf = l
	case SyntheticLeaf:
		l.Text = text
		n.Leaf = l
	}
}
