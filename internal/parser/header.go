package parser

import (
	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// include_: 'include' LITERAL ; cpp_include: 'cpp_include' LITERAL
func (p *Parser) parseInclude(kw token.Kind, kind ast.Kind) (ast.NodeID, bool) {
	k, _ := p.expect(kw, diag.SynUnexpectedToken, kw.String())
	lit, ok := p.expect(token.Literal, diag.SynExpectLiteral, "string literal")
	if !ok {
		return ast.NoNode, false
	}
	return p.rule(kind, k, lit), true
}

// namespace_: 'namespace' '*' (IDENT | LITERAL)
//
//	| 'namespace' IDENT (IDENT | LITERAL) type_annotations?
//	| 'cpp_namespace' IDENT
//	| 'php_namespace' IDENT
func (p *Parser) parseNamespace() (ast.NodeID, bool) {
	if p.atAny(token.KwCppNamespace, token.KwPhpNamespace) {
		kw := p.term()
		name, ok := p.expectIdent()
		if !ok {
			return ast.NoNode, false
		}
		return p.rule(ast.Namespace, kw, name), true
	}

	kw := p.term()
	var scope ast.NodeID
	if p.at(token.Star) {
		scope = p.term()
	} else {
		var ok bool
		if scope, ok = p.expectIdent(); !ok {
			return ast.NoNode, false
		}
	}
	if !p.atAny(token.Ident, token.Literal) {
		p.err(diag.SynExpectIdentifier, "expected namespace name, got "+describe(p.peek()))
		return ast.NoNode, false
	}
	name := p.term()
	var annos ast.NodeID
	if p.at(token.LParen) && !p.tree.IsToken(scope, "*") {
		var ok bool
		if annos, ok = p.parseTypeAnnotations(); !ok {
			return ast.NoNode, false
		}
	}
	return p.rule(ast.Namespace, kw, scope, name, annos), true
}
