package testkit

import (
	"fmt"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/token"
)

// CheckTreeInvariants runs a minimal set of invariants on a parsed tree:
// 1) real leaves appear in strictly increasing stream order
// 2) every visible token (EOF included) is owned by exactly one real leaf
// 3) no leaf points at a hidden (comment) token
// 4) a leaf keeps its token text, except separators rewritten to ","
//
// Synthetic leaves are ignored, so the check also holds after patching.
func CheckTreeInvariants(tr *ast.Tree) error {
	if tr == nil {
		return fmt.Errorf("nil tree")
	}
	if !tr.Root.IsValid() {
		return fmt.Errorf("tree has no root")
	}
	if k := tr.Kind(tr.Root); k != ast.Document {
		return fmt.Errorf("root is %s, want Document", k)
	}

	owned := make([]bool, len(tr.Tokens))
	last := -1
	for _, id := range tr.Leaves(tr.Root) {
		leaf, ok := tr.LeafOf(id).(ast.RealLeaf)
		if !ok {
			continue
		}
		// 1) stream order
		if leaf.Index <= last {
			return fmt.Errorf("leaf %q at index %d follows index %d", leaf.Text, leaf.Index, last)
		}
		last = leaf.Index
		if leaf.Index < 0 || leaf.Index >= len(tr.Tokens) {
			return fmt.Errorf("leaf %q index %d out of range [0, %d)", leaf.Text, leaf.Index, len(tr.Tokens))
		}
		tok := tr.Tokens[leaf.Index]
		// 3) hidden tokens are never in the tree
		if tok.Channel == token.Hidden {
			return fmt.Errorf("leaf points at hidden token %q (index %d)", tok.Text, leaf.Index)
		}
		// 4) text
		if leaf.Text != tok.Text && !(isSeparator(tok.Kind) && leaf.Text == ",") {
			return fmt.Errorf("leaf text %q differs from token %q (index %d)", leaf.Text, tok.Text, leaf.Index)
		}
		owned[leaf.Index] = true
	}

	// 2) coverage
	for i, tok := range tr.Tokens {
		if tok.Channel == token.Visible && !owned[i] {
			return fmt.Errorf("visible token %s %q (index %d, line %d) is not in the tree", tok.Kind, tok.Text, i, tok.Line)
		}
	}
	return nil
}

func isSeparator(k token.Kind) bool {
	return k == token.Comma || k == token.Semicolon
}
