package format

import (
	"slices"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/token"
)

// part identifies a column of part alignment: a child node kind, with '='
// told apart from the other terminals.
type part uint16

const partAssign = part(ast.KindCount)

func partOf(tr *ast.Tree, id ast.NodeID) part {
	if tr.TokenKind(id) == token.Assign {
		return partAssign
	}
	return part(tr.Kind(id))
}

// alignment computes the columns of a run of block items. indent is the
// width of the body indent, added to every column.
func (p *printer) alignment(run []ast.NodeID, item ast.Kind, indent int) columns {
	mode := p.opts.Align()
	if len(run) == 0 || (!p.opts.KeepComments && mode == AlignNone) {
		return columns{}
	}
	if item == ast.Function || mode == AlignNone {
		return p.plainColumns(run, indent)
	}
	if mode == AlignPart {
		if cols, ok := p.partColumns(run, indent); ok {
			return cols
		}
		return p.plainColumns(run, indent)
	}
	return p.assignColumns(run, indent)
}

// plainColumns only places trailing comments, one column past the widest item.
func (p *printer) plainColumns(run []ast.NodeID, indent int) columns {
	widest := 0
	for _, id := range run {
		widest = max(widest, p.measure(id))
	}
	return columns{mode: AlignNone, comment: widest + 1 + indent}
}

func (p *printer) assignColumns(run []ast.NodeID, indent int) columns {
	left, right := 0, 0
	for _, id := range run {
		kids := p.tr.Children(id)
		at := splitAt(p.tr, kids)
		kind := p.tr.Kind(id)
		left = max(left, p.measureSeq(kind, kids[:at]))
		right = max(right, p.measureSeq(kind, kids[at:]))
	}
	assign := left + 1
	comment := assign + right
	if right > 1 {
		comment++
	}
	return columns{mode: AlignAssign, assign: assign + indent, comment: comment + indent}
}

// splitAt returns the index of '=', else of a trailing separator, else len.
func splitAt(tr *ast.Tree, kids []ast.NodeID) int {
	for i, c := range kids {
		if tr.TokenKind(c) == token.Assign {
			return i
		}
	}
	if n := len(kids); n > 0 && tr.Kind(kids[n-1]) == ast.ListSeparator {
		return n - 1
	}
	return len(kids)
}

// partColumns assigns each child kind a level by the longest path over the
// "immediately followed by" relation of all items. A cycle or a gap in the
// levels disables part alignment.
func (p *printer) partColumns(run []ast.NodeID, indent int) (columns, bool) {
	succ := make(map[part][]part)
	indeg := make(map[part]int)
	var order []part
	seen := func(k part) {
		if _, ok := indeg[k]; !ok {
			indeg[k] = 0
			order = append(order, k)
		}
	}
	for _, id := range run {
		kids := p.tr.Children(id)
		for i, c := range kids {
			cur := partOf(p.tr, c)
			seen(cur)
			if i == 0 {
				continue
			}
			prev := partOf(p.tr, kids[i-1])
			if !slices.Contains(succ[prev], cur) {
				succ[prev] = append(succ[prev], cur)
				indeg[cur]++
			}
		}
	}

	level := make(map[part]int, len(order))
	queue := make([]part, 0, len(order))
	for _, k := range order {
		if indeg[k] == 0 {
			queue = append(queue, k)
		}
	}
	done := 0
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		done++
		for _, s := range succ[k] {
			level[s] = max(level[s], level[k]+1)
			indeg[s]--
			if indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	if done != len(order) {
		return columns{}, false
	}

	depth := 0
	for _, l := range level {
		depth = max(depth, l+1)
	}
	if depth == 0 {
		depth = 1
	}
	// longest-path levels are contiguous; only a cycle reaches the fallback
	present := make([]bool, depth)
	for _, k := range order {
		present[level[k]] = true
	}
	if slices.Contains(present, false) {
		return columns{}, false
	}

	widths := make([]int, depth)
	for _, id := range run {
		for _, c := range p.tr.Children(id) {
			l := level[partOf(p.tr, c)]
			widths[l] = max(widths[l], p.measure(c))
		}
	}

	sepLevel := -1
	if _, ok := indeg[part(ast.ListSeparator)]; ok {
		sepLevel = level[part(ast.ListSeparator)]
	}

	at := make([]int, depth)
	sum := 0
	for l := range depth {
		at[l] = sum + l
		if l == sepLevel && l > 0 {
			at[l]--
		}
		sum += widths[l]
	}
	comment := sum + depth
	if sepLevel > 0 {
		comment--
	}

	cols := columns{mode: AlignPart, comment: comment + indent, parts: make(map[part]int, len(order))}
	for _, k := range order {
		cols.parts[k] = at[level[k]] + indent
	}
	return cols, true
}

// alignPart queues the column for child c of a field when its block aligns.
func (p *printer) alignPart(parent ast.Kind, c ast.NodeID) {
	if parent != ast.Field && parent != ast.EnumField {
		return
	}
	switch p.cols.mode {
	case AlignAssign:
		if p.tr.TokenKind(c) == token.Assign {
			p.pad = p.cols.assign
		}
	case AlignPart:
		if col, ok := p.cols.parts[partOf(p.tr, c)]; ok {
			p.pad = col
		}
	}
}

// measure is the display width of id rendered in isolation.
func (p *printer) measure(id ast.NodeID) int {
	q := newPrinter(p.tr, p.opts.pure())
	q.render(id)
	return textWidth(q.cur.String())
}

// measureSeq renders kids as if they were all the children of a kind node.
func (p *printer) measureSeq(kind ast.Kind, kids []ast.NodeID) int {
	if len(kids) == 0 {
		return 0
	}
	q := newPrinter(p.tr, p.opts.pure())
	q.inline(kind, kids, ruleFor(kind))
	return textWidth(q.cur.String())
}
