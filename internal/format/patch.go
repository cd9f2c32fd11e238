package format

import (
	"thriftfmt/internal/ast"
	"thriftfmt/internal/token"
)

// Patch rewrites tr in place before rendering:
//
//   - fields without requiredness get a synthetic "required" in front of the type;
//   - fields, enum values and functions end in exactly one "," separator;
//   - the last parameter of a function or throws list, and the last type
//     annotation, lose their separator.
//
// Function parameters are never given requiredness. Each rewrite is
// idempotent, so patching a patched tree is a no-op.
func Patch(tr *ast.Tree, opts Options) (err error) {
	defer recoverDefect(&err)
	if tr == nil || !tr.Root.IsValid() {
		return nil
	}
	parents := tr.BuildParents(tr.Root)
	if opts.PatchRequired {
		patchRequired(tr, parents)
	}
	if opts.PatchSeparator {
		patchSeparators(tr, parents)
		dropLastSeparators(tr, parents)
	}
	return nil
}

func patchRequired(tr *ast.Tree, parents ast.Parents) {
	tr.Walk(tr.Root, func(id ast.NodeID) bool {
		if tr.Kind(id) != ast.Field || isParam(tr, parents, id) {
			return true
		}
		kids := tr.Children(id)
		if len(kids) == 0 {
			return false
		}
		at := -1
		for i, c := range kids {
			switch tr.Kind(c) {
			case ast.FieldReq:
				return false
			case ast.FieldType:
				if at < 0 {
					at = i
				}
			}
		}
		if at < 0 {
			defect("field node %d has no type", id)
		}
		req := tr.NewRule(ast.FieldReq, tr.NewSynthetic(token.KwRequired, "required"))
		tr.Insert(id, at, req)
		return false
	})
}

func patchSeparators(tr *ast.Tree, parents ast.Parents) {
	tr.Walk(tr.Root, func(id ast.NodeID) bool {
		switch tr.Kind(id) {
		case ast.EnumField, ast.Field, ast.Function:
		default:
			return true
		}
		if len(tr.Children(id)) == 0 || isParam(tr, parents, id) && isLastOfKind(tr, parents, id) {
			return false
		}
		if last := tr.LastChild(id); tr.Kind(last) == ast.ListSeparator {
			kids := tr.Children(last)
			if len(kids) != 1 {
				defect("separator node %d has %d children", last, len(kids))
			}
			tr.SetText(kids[0], ",")
		} else {
			tr.Append(id, tr.NewRule(ast.ListSeparator, tr.NewSynthetic(token.Comma, ",")))
		}
		// функции содержат параметры-поля, их тоже надо обойти
		return tr.Kind(id) == ast.Function
	})
}

func dropLastSeparators(tr *ast.Tree, parents ast.Parents) {
	tr.Walk(tr.Root, func(id ast.NodeID) bool {
		switch {
		case tr.Kind(id) == ast.TypeAnnotation:
		case isParam(tr, parents, id):
		default:
			return true
		}
		if isLastOfKind(tr, parents, id) && tr.Kind(tr.LastChild(id)) == ast.ListSeparator {
			tr.RemoveLast(id)
		}
		return false
	})
}

// isParam reports whether id is a field of a parameter or throws list.
func isParam(tr *ast.Tree, parents ast.Parents, id ast.NodeID) bool {
	if tr.Kind(id) != ast.Field {
		return false
	}
	switch tr.Kind(parents.Of(id)) {
	case ast.Function, ast.ThrowsList:
		return true
	default:
		return false
	}
}

// isLastOfKind reports whether no sibling of the same kind follows id.
func isLastOfKind(tr *ast.Tree, parents ast.Parents, id ast.NodeID) bool {
	sibs := tr.Children(parents.Of(id))
	for i, s := range sibs {
		if s != id {
			continue
		}
		return i == len(sibs)-1 || tr.Kind(sibs[i+1]) != tr.Kind(id)
	}
	return true
}
