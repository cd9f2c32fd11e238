package ast

// Parents maps a node to its parent for one traversal. The table is a
// snapshot: rebuild it after splicing nodes in.
type Parents []NodeID

// BuildParents computes parent links for every node reachable from root.
func (t *Tree) BuildParents(root NodeID) Parents {
	p := make(Parents, t.Nodes.Len()+1)
	t.Walk(root, func(id NodeID) bool {
		for _, c := range t.Children(id) {
			p[c] = id
		}
		return true
	})
	return p
}

// Of returns the parent of id, NoNode for the root or unknown nodes.
func (p Parents) Of(id NodeID) NodeID {
	if int(id) >= len(p) {
		return NoNode
	}
	return p[id]
}
