package format

import (
	"strings"

	"thriftfmt/internal/ast"
)

// columns is the alignment state of the block being rendered.
type columns struct {
	mode    AlignMode
	assign  int
	comment int
	parts   map[part]int
}

type printer struct {
	tr   *ast.Tree
	opts Options
	cur  *cursor
	last int // индекс последнего выведенного токена потока, -1 до начала
	pad  int // колонка выравнивания для следующего терминала, -1 если нет
	cols columns
}

func newPrinter(tr *ast.Tree, opts Options) *printer {
	return &printer{
		tr:   tr,
		opts: opts,
		cur:  newCursor(),
		last: -1,
		pad:  -1,
	}
}

func (p *printer) render(id ast.NodeID) {
	n := p.tr.Node(id)
	if n == nil {
		defect("dangling node id %d", id)
	}
	r := ruleFor(n.Kind)
	switch r.strategy {
	case stratTerminal:
		p.terminal(id, n.Leaf)
	case stratWrapper:
		if len(n.Children) == 0 {
			defect("empty %s node", n.Kind)
		}
		p.render(n.Children[0])
	case stratDocument:
		p.items(n.Children, p.cur.indent)
	case stratInline:
		p.inline(n.Kind, n.Children, r)
	case stratBlock:
		p.block(n, r.start, r.item)
	case stratService:
		start := 3
		if len(n.Children) > 2 && p.tr.IsToken(n.Children[2], "extends") {
			start = 5
		}
		p.block(n, start, r.item)
	case stratSkip:
	}
}

func (p *printer) terminal(id ast.NodeID, leaf ast.Leaf) {
	if leaf == nil {
		defect("terminal %d without a leaf", id)
	}
	if rl, ok := leaf.(ast.RealLeaf); ok {
		if p.cur.newlines > 0 {
			p.tailComment()
		}
		p.leadingComments(rl.Index)
		p.last = rl.Index
	}
	if p.tr.IsEOF(id) {
		p.pad = -1
		return
	}
	if p.pad >= 0 {
		p.cur.padTo(p.pad)
		p.pad = -1
	}
	p.cur.push(leaf.LeafText())
}

// inline lays the children out on one line using the joins of r.
func (p *printer) inline(kind ast.Kind, kids []ast.NodeID, r rule) {
	for i, c := range kids {
		if i > 0 {
			p.cur.setJoin(r.sep(p.tr, kids, i))
		}
		p.alignPart(kind, c)
		p.render(c)
		p.pad = -1
	}
}

// items renders a vertical run: blank line between different kinds and
// around braced definitions, single newline otherwise.
func (p *printer) items(nodes []ast.NodeID, indent string) {
	var prev ast.Kind
	for i, id := range nodes {
		id = p.tr.Unwrap(id)
		kind := p.tr.Kind(id)
		if i > 0 {
			if kind != prev || kind.IsBlockDefinition() {
				p.cur.newline(2)
			} else {
				p.cur.newline(1)
			}
		}
		p.cur.indent = indent
		p.render(id)
		p.tailComment()
		prev = kind
	}
}

// block renders prefix, the indented run of items, then the remainder.
func (p *printer) block(n *ast.Node, start int, item ast.Kind) {
	kids := n.Children
	if len(kids) < start {
		defect("%s has %d children, body starts at %d", n.Kind, len(kids), start)
	}
	outer := p.cur.indent
	inner := outer + strings.Repeat(" ", p.opts.IndentWidth)

	p.inline(n.Kind, kids[:start], rule{join: " "})
	p.tailComment()
	p.cur.newline(1)

	end := start
	for end < len(kids) && p.tr.Kind(kids[end]) == item {
		end++
	}
	run, rest := kids[start:end], kids[end:]

	saved := p.cols
	p.cols = p.alignment(run, item, len(inner))
	p.items(run, inner)
	p.cur.newline(1)
	p.cur.indent = inner
	if len(rest) > 0 {
		if idx, ok := p.firstStreamIndex(rest[0]); ok {
			p.commentsBefore(idx)
		}
	}
	p.cols = saved
	p.cur.indent = outer
	p.inline(n.Kind, rest, rule{join: " "})
}

// firstStreamIndex finds the stream index of the first real token under id.
func (p *printer) firstStreamIndex(id ast.NodeID) (int, bool) {
	for _, leaf := range p.tr.Leaves(id) {
		if rl, ok := p.tr.LeafOf(leaf).(ast.RealLeaf); ok {
			return rl.Index, true
		}
	}
	return 0, false
}
