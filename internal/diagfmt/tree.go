package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"thriftfmt/internal/ast"
)

// NodeOutput is the JSON shape of a tree node.
type NodeOutput struct {
	Kind      string       `json:"kind"`
	Text      string       `json:"text,omitempty"`
	Index     *int         `json:"index,omitempty"`
	Synthetic bool         `json:"synthetic,omitempty"`
	Children  []NodeOutput `json:"children,omitempty"`
}

func nodeOutput(tr *ast.Tree, id ast.NodeID) NodeOutput {
	n := tr.Node(id)
	if n == nil {
		return NodeOutput{Kind: ast.KindInvalid.String()}
	}
	out := NodeOutput{Kind: n.Kind.String()}
	switch l := n.Leaf.(type) {
	case ast.RealLeaf:
		idx := l.Index
		out.Kind = tr.Tokens[l.Index].Kind.String()
		out.Text, out.Index = l.Text, &idx
	case ast.SyntheticLeaf:
		out.Kind, out.Text, out.Synthetic = l.Kind.String(), l.Text, true
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, nodeOutput(tr, c))
	}
	return out
}

// FormatTreeJSON dumps the subtree at id as nested JSON objects.
func FormatTreeJSON(w io.Writer, tr *ast.Tree, id ast.NodeID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodeOutput(tr, id))
}

// FormatTreePretty prints one node per line with box-drawing guides.
// Synthetic terminals are marked with '+'.
func FormatTreePretty(w io.Writer, tr *ast.Tree, id ast.NodeID) error {
	var sb strings.Builder
	var visit func(id ast.NodeID, prefix string, last, root bool)
	visit = func(id ast.NodeID, prefix string, last, root bool) {
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		if root {
			branch, next = "", ""
		}
		sb.WriteString(prefix + branch + nodeLabel(tr, id) + "\n")
		kids := tr.Children(id)
		for i, c := range kids {
			visit(c, prefix+next, i == len(kids)-1, false)
		}
	}
	visit(id, "", true, true)
	_, err := io.WriteString(w, sb.String())
	return err
}

func nodeLabel(tr *ast.Tree, id ast.NodeID) string {
	switch l := tr.LeafOf(id).(type) {
	case ast.RealLeaf:
		return fmt.Sprintf("%s %q #%d", tr.Tokens[l.Index].Kind, l.Text, l.Index)
	case ast.SyntheticLeaf:
		return fmt.Sprintf("+%s %q", l.Kind, l.Text)
	default:
		return tr.Kind(id).String()
	}
}
