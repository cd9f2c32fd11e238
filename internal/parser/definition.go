package parser

import (
	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// const_rule: 'const' field_type IDENT ('=' const_value)? list_separator?
func (p *Parser) parseConst() (ast.NodeID, bool) {
	kw := p.term()
	typ, ok := p.parseFieldType()
	if !ok {
		return ast.NoNode, false
	}
	name, ok := p.expectIdent()
	if !ok {
		return ast.NoNode, false
	}
	kids := []ast.NodeID{kw, typ, name}
	if p.at(token.Assign) {
		kids = append(kids, p.term())
		val, ok := p.parseConstValue()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, val)
	}
	kids = append(kids, p.parseListSeparator())
	return p.rule(ast.Const, kids...), true
}

// typedef_: 'typedef' field_type IDENT type_annotations? list_separator?
func (p *Parser) parseTypedef() (ast.NodeID, bool) {
	kw := p.term()
	typ, ok := p.parseFieldType()
	if !ok {
		return ast.NoNode, false
	}
	name, ok := p.expectIdent()
	if !ok {
		return ast.NoNode, false
	}
	annos, ok := p.parseOptionalAnnotations()
	if !ok {
		return ast.NoNode, false
	}
	return p.rule(ast.Typedef, kw, typ, name, annos, p.parseListSeparator()), true
}

// enum_rule: 'enum' IDENT '{' enum_field* '}' type_annotations?
func (p *Parser) parseEnum() (ast.NodeID, bool) {
	return p.parseBlock(ast.Enum, false, p.parseEnumField)
}

// enum_field: IDENT ('=' integer)? type_annotations? list_separator?
func (p *Parser) parseEnumField() (ast.NodeID, bool) {
	name, ok := p.expectIdent()
	if !ok {
		return ast.NoNode, false
	}
	kids := []ast.NodeID{name}
	if p.at(token.Assign) {
		kids = append(kids, p.term())
		if !p.atInteger() {
			p.err(diag.SynExpectConstValue, "expected integer enum value, got "+describe(p.peek()))
			return ast.NoNode, false
		}
		kids = append(kids, p.rule(ast.Integer, p.term()))
	}
	annos, ok := p.parseOptionalAnnotations()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, annos, p.parseListSeparator())
	return p.rule(ast.EnumField, kids...), true
}

// senum: 'senum' IDENT '{' (LITERAL list_separator?)* '}' type_annotations?
func (p *Parser) parseSenum() (ast.NodeID, bool) {
	return p.parseBlock(ast.Senum, false, func() (ast.NodeID, bool) {
		return p.expect(token.Literal, diag.SynExpectLiteral, "string literal")
	})
}

// struct_/union_/exception: kw IDENT '{' field* '}' type_annotations?
func (p *Parser) parseFieldBlock(kind ast.Kind) (ast.NodeID, bool) {
	return p.parseBlock(kind, false, p.parseField)
}

// service: 'service' IDENT ('extends' IDENT)? '{' function_* '}' type_annotations?
func (p *Parser) parseService() (ast.NodeID, bool) {
	return p.parseBlock(ast.Service, true, p.parseFunction)
}

// parseBlock разбирает общий каркас определения с телом в фигурных скобках.
// Для senum элементы тела — литералы, за которыми может идти разделитель.
func (p *Parser) parseBlock(kind ast.Kind, extends bool, item func() (ast.NodeID, bool)) (ast.NodeID, bool) {
	kids := []ast.NodeID{p.term()}
	name, ok := p.expectIdent()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, name)
	if extends && p.at(token.KwExtends) {
		kids = append(kids, p.term())
		base, ok := p.expectIdent()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, base)
	}
	lbrace, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, lbrace)
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "missing '}' before end of file")
			return ast.NoNode, false
		}
		id, ok := item()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, id)
		if kind == ast.Senum {
			if sep := p.parseListSeparator(); sep.IsValid() {
				kids = append(kids, sep)
			}
		}
	}
	kids = append(kids, p.term())
	annos, ok := p.parseOptionalAnnotations()
	if !ok {
		return ast.NoNode, false
	}
	return p.rule(kind, append(kids, annos)...), true
}

// list_separator: ',' | ';'. Возвращает NoNode, если разделителя нет.
func (p *Parser) parseListSeparator() ast.NodeID {
	if p.atAny(token.Comma, token.Semicolon) {
		return p.rule(ast.ListSeparator, p.term())
	}
	return ast.NoNode
}
