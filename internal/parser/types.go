package parser

import (
	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// field_type: base_type | IDENT | container_type
func (p *Parser) parseFieldType() (ast.NodeID, bool) {
	tok := p.peek()
	switch {
	case tok.IsBaseType():
		base := p.rule(ast.RealBaseType, p.term())
		annos, ok := p.parseOptionalAnnotations()
		if !ok {
			return ast.NoNode, false
		}
		return p.rule(ast.FieldType, p.rule(ast.BaseType, base, annos)), true
	case tok.Kind == token.KwMap || tok.Kind == token.KwSet || tok.Kind == token.KwList:
		inner, ok := p.parseContainer()
		if !ok {
			return ast.NoNode, false
		}
		annos, ok := p.parseOptionalAnnotations()
		if !ok {
			return ast.NoNode, false
		}
		return p.rule(ast.FieldType, p.rule(ast.ContainerType, inner, annos)), true
	case tok.Kind == token.Ident:
		return p.rule(ast.FieldType, p.term()), true
	default:
		p.err(diag.SynExpectType, "expected type, got "+describe(tok))
		return ast.NoNode, false
	}
}

// map_type: 'map' cpp_type? '<' field_type ',' field_type '>'
// set_type: 'set' cpp_type? '<' field_type '>'
// list_type: 'list' '<' field_type '>' cpp_type?
func (p *Parser) parseContainer() (ast.NodeID, bool) {
	kwKind := p.peek().Kind
	kids := []ast.NodeID{p.term()}
	if kwKind != token.KwList && p.at(token.KwCppType) {
		cpp, ok := p.parseCppType()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, cpp)
	}
	lt, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "'<'")
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, lt)
	elem, ok := p.parseFieldType()
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, elem)
	if kwKind == token.KwMap {
		comma, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "',' between map key and value types")
		if !ok {
			return ast.NoNode, false
		}
		val, ok := p.parseFieldType()
		if !ok {
			return ast.NoNode, false
		}
		kids = append(kids, comma, val)
	}
	gt, ok := p.expect(token.Gt, diag.SynUnclosedAngle, "'>'")
	if !ok {
		return ast.NoNode, false
	}
	kids = append(kids, gt)

	kind := ast.SetType
	switch kwKind {
	case token.KwMap:
		kind = ast.MapType
	case token.KwList:
		kind = ast.ListType
		if p.at(token.KwCppType) {
			cpp, ok := p.parseCppType()
			if !ok {
				return ast.NoNode, false
			}
			kids = append(kids, cpp)
		}
	}
	return p.rule(kind, kids...), true
}

// cpp_type: 'cpp_type' LITERAL
func (p *Parser) parseCppType() (ast.NodeID, bool) {
	kw := p.term()
	lit, ok := p.expect(token.Literal, diag.SynExpectLiteral, "string literal after cpp_type")
	if !ok {
		return ast.NoNode, false
	}
	return p.rule(ast.CppType, kw, lit), true
}

// parseOptionalAnnotations разбирает type_annotations, если дальше '('.
func (p *Parser) parseOptionalAnnotations() (ast.NodeID, bool) {
	if !p.at(token.LParen) {
		return ast.NoNode, true
	}
	return p.parseTypeAnnotations()
}

// type_annotations: '(' type_annotation* ')'
// type_annotation: IDENT ('=' annotation_value)? list_separator?
func (p *Parser) parseTypeAnnotations() (ast.NodeID, bool) {
	kids := []ast.NodeID{p.term()}
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, "missing ')' before end of file")
			return ast.NoNode, false
		}
		name, ok := p.expectIdent()
		if !ok {
			return ast.NoNode, false
		}
		anno := []ast.NodeID{name}
		if p.at(token.Assign) {
			anno = append(anno, p.term())
			var val ast.NodeID
			switch {
			case p.atInteger():
				val = p.rule(ast.AnnotationValue, p.rule(ast.Integer, p.term()))
			case p.at(token.Literal):
				val = p.rule(ast.AnnotationValue, p.term())
			default:
				p.err(diag.SynExpectConstValue, "expected annotation value, got "+describe(p.peek()))
				return ast.NoNode, false
			}
			anno = append(anno, val)
		}
		anno = append(anno, p.parseListSeparator())
		kids = append(kids, p.rule(ast.TypeAnnotation, anno...))
	}
	kids = append(kids, p.term())
	return p.rule(ast.TypeAnnotations, kids...), true
}
