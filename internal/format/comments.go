package format

import (
	"strings"

	"thriftfmt/internal/token"
)

// leadingComments emits hidden-channel tokens between the last emitted
// token and the stream index upTo, each on its own line.
func (p *printer) leadingComments(upTo int) {
	if !p.opts.KeepComments {
		return
	}
	toks := p.tr.Tokens
	next := toks[upTo]
	for j := p.last + 1; j < upTo; j++ {
		t := toks[j]
		if t.Channel != token.Hidden {
			continue
		}
		if t.Kind == token.BlockComment && t.Index > 0 {
			p.cur.newline(2)
		}
		p.cur.separate()
		p.cur.push(strings.TrimSpace(t.Text))

		gap := int(next.Line) - int(t.Line+t.LineSpan())
		if t.Kind == token.LineComment || next.Kind == token.EOF || gap <= 1 {
			p.cur.newline(1)
		} else {
			p.cur.newline(2)
		}
	}
}

// commentsBefore flushes comments preceding upTo at the current indent
// without emitting the token itself.
func (p *printer) commentsBefore(upTo int) {
	if upTo <= p.last {
		return
	}
	p.leadingComments(upTo)
	p.last = upTo - 1
}

// tailComment appends the comment that shares a line with the last emitted
// token, padded to the comment column of the current block.
func (p *printer) tailComment() {
	if !p.opts.KeepComments || p.last < 0 {
		return
	}
	toks := p.tr.Tokens
	last := toks[p.last]
	line := last.Line + last.LineSpan()

	var found []token.Token
	for _, t := range toks[p.last+1:] {
		if t.Line != line || t.Channel != token.Hidden {
			break
		}
		found = append(found, t)
	}
	switch len(found) {
	case 0:
		return
	case 1:
	default:
		defect("%d trailing comments after token %d on line %d", len(found), p.last, line)
	}
	p.cur.appendTail(p.cols.comment, strings.TrimSpace(found[0].Text))
	p.last = found[0].Index
}
