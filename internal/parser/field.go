package parser

import (
	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// field: field_id? field_req? field_type IDENT ('=' const_value)? type_annotations? list_separator?
func (p *Parser) parseField() (ast.NodeID, bool) {
	var kids []ast.NodeID
	if p.atInteger() {
		num := p.rule(ast.Integer, p.term())
		colon, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':' after field id")
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, p.rule(ast.FieldID, num, colon))
	}
	if p.atAny(token.KwRequired, token.KwOptional) {
		kids = append(kids, p.rule(ast.FieldReq, p.term()))
	}
	typ, ok := p.parseFieldType()
	if !ok {
		return ast.NoNode, false
	}
	name, ok := p.expectIdent()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, typ, name)
	if p.at(token.Assign) {
		kids = append(kids, p.term())
		val, ok := p.parseConstValue()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, val)
	}
	annos, ok := p.parseOptionalAnnotations()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, annos, p.parseListSeparator())
	return p.rule(ast.Field, kids...), true
}

// function_: oneway? function_type IDENT '(' field* ')' throws_list? type_annotations? list_separator?
func (p *Parser) parseFunction() (ast.NodeID, bool) {
	var kids []ast.NodeID
	if p.atAny(token.KwOneway, token.KwAsync) {
		kids = append(kids, p.rule(ast.Oneway, p.term()))
	}
	var ftype ast.NodeID
	if p.at(token.KwVoid) {
		ftype = p.rule(ast.FunctionType, p.term())
	} else {
		typ, ok := p.parseFieldType()
		if !ok {
			return ast.NoNode, false
		}
		ftype = p.rule(ast.FunctionType, typ)
	}
	name, ok := p.expectIdent()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, ftype, name)
	params, ok := p.parseParenFields()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, params...)
	if p.at(token.KwThrows) {
		kw := p.term()
		fields, ok := p.parseParenFields()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, p.rule(ast.ThrowsList, append([]ast.NodeID{kw}, fields...)...))
	}
	annos, ok := p.parseOptionalAnnotations()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, annos, p.parseListSeparator())
	return p.rule(ast.Function, kids...), true
}

// parseParenFields: '(' field* ')' — возвращает скобки и поля плоским списком.
func (p *Parser) parseParenFields() ([]ast.NodeID, bool) {
	lparen, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "'('")
	if !ok {
		return nil, false
	}
	kids := []ast.NodeID{lparen}
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, "missing ')' before end of file")
			return nil, false
		}
		f, ok := p.parseField()
		if !ok {
			return nil, false
		}
		kids = append(kids, f)
	}
	return append(kids, p.term()), true
}
