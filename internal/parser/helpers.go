package parser

import (
	"strconv"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

// skipHidden переводит pos на ближайший значимый токен.
func (p *Parser) skipHidden() {
	for p.pos < len(p.toks)-1 && p.toks[p.pos].Channel == token.Hidden {
		p.pos++
	}
}

// advance — съедает текущий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return tok
	}
	p.lastSpan = tok.Span
	p.pos++
	p.skipHidden()
	return tok
}

// term создаёт терминал для текущего токена и съедает его.
func (p *Parser) term() ast.NodeID {
	id := p.tree.NewTerminal(p.pos)
	p.advance()
	return id
}

// optional съедает токен вида k, если он есть.
func (p *Parser) optional(k token.Kind) (ast.NodeID, bool) {
	if p.at(k) {
		return p.term(), true
	}
	return ast.NoNode, false
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (NoNode,false).
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (ast.NodeID, bool) {
	if p.at(k) {
		return p.term(), true
	}
	p.err(code, "expected "+what+", got "+describe(p.peek()))
	return ast.NoNode, false
}

func (p *Parser) expectIdent() (ast.NodeID, bool) {
	return p.expect(token.Ident, diag.SynExpectIdentifier, "identifier")
}

// getDiagnosticSpan — лучший span для диагностики: на EOF указываем
// сразу за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError && p.opts.MaxErrors > 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false // достигли максимального количества ошибок
	}
	diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg).Emit()
	return true
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return strconv.Quote(tok.Text)
}

// rule собирает узел из необязательных детей, пропуская NoNode.
func (p *Parser) rule(kind ast.Kind, children ...ast.NodeID) ast.NodeID {
	kids := children[:0]
	for _, c := range children {
		if c.IsValid() {
			kids = append(kids, c)
		}
	}
	return p.tree.NewRule(kind, kids...)
}
