package parser

import (
	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// const_value: integer | DOUBLE | LITERAL | IDENT | const_list | const_map
func (p *Parser) parseConstValue() (ast.NodeID, bool) {
	var inner ast.NodeID
	switch {
	case p.atInteger():
		inner = p.rule(ast.Integer, p.term())
	case p.atAny(token.DoubleLit, token.Literal, token.Ident):
		inner = p.term()
	case p.at(token.LBracket):
		var ok bool
		if inner, ok = p.parseConstList(); !ok {
			return ast.NoNode, false
		}
	case p.at(token.LBrace):
		var ok bool
		if inner, ok = p.parseConstMap(); !ok {
			return ast.NoNode, false
		}
	default:
		p.err(diag.SynExpectConstValue, "expected constant value, got "+describe(p.peek()))
		return ast.NoNode, false
	}
	return p.rule(ast.ConstValue, inner), true
}

// const_list: '[' (const_value list_separator?)* ']'
func (p *Parser) parseConstList() (ast.NodeID, bool) {
	kids := []ast.NodeID{p.term()}
	for !p.at(token.RBracket) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBracket, "missing ']' before end of file")
			return ast.NoNode, false
		}
		v, ok := p.parseConstValue()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, v)
		if sep := p.parseListSeparator(); sep.IsValid() {
			kids = append(kids, sep)
		}
	}
	kids = append(kids, p.term())
	return p.rule(ast.ConstList, kids...), true
}

// const_map: '{' const_map_entry* '}'
// const_map_entry: const_value ':' const_value list_separator?
func (p *Parser) parseConstMap() (ast.NodeID, bool) {
	kids := []ast.NodeID{p.term()}
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "missing '}' before end of file")
			return ast.NoNode, false
		}
		key, ok := p.parseConstValue()
		if !ok {
			return ast.NoNode, false
		}
		colon, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':' in constant map")
		if !ok {
			return ast.NoNode, false
		}
		val, ok := p.parseConstValue()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, p.rule(ast.ConstMapEntry, key, colon, val, p.parseListSeparator()))
	}
	kids = append(kids, p.term())
	return p.rule(ast.ConstMap, kids...), true
}
