package format

import (
	"fmt"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/token"
)

type strategy uint8

const (
	stratNone strategy = iota
	stratTerminal
	stratWrapper
	stratDocument
	stratInline
	stratBlock
	stratService
	stratSkip
)

// adjacency decides the separator written before kids[i] of an inline rule.
type adjacency func(tr *ast.Tree, kids []ast.NodeID, i int) bool

// rule is the layout of one node kind.
type rule struct {
	strategy strategy
	join     string
	tight    adjacency // suppresses join
	spaced   adjacency // forces a single space over join
	start    int       // block: first child of the repeated run
	item     ast.Kind  // block: kind of the repeated run
}

func (r rule) sep(tr *ast.Tree, kids []ast.NodeID, i int) string {
	if r.spaced != nil && r.spaced(tr, kids, i) {
		return " "
	}
	if r.tight != nil && r.tight(tr, kids, i) {
		return ""
	}
	return r.join
}

func inline(join string, tight adjacency) rule {
	return rule{strategy: stratInline, join: join, tight: tight}
}

func block(item ast.Kind) rule {
	return rule{strategy: stratBlock, start: 3, item: item}
}

// rules is indexed by node kind; init refuses to start with a kind left out.
var rules = [ast.KindCount]rule{
	ast.Terminal:   {strategy: stratTerminal},
	ast.Document:   {strategy: stratDocument},
	ast.Header:     {strategy: stratWrapper},
	ast.Definition: {strategy: stratWrapper},

	ast.Include:    inline(" ", nil),
	ast.CppInclude: inline(" ", nil),
	ast.Namespace:  inline(" ", nil),
	ast.Const:      inline(" ", beforeSeparator),
	ast.Typedef:    inline(" ", beforeSeparator),

	ast.Enum:      block(ast.EnumField),
	ast.EnumField: inline(" ", beforeSeparator),
	ast.Senum:     {strategy: stratSkip},
	ast.Struct:    block(ast.Field),
	ast.Union:     block(ast.Field),
	ast.Exception: block(ast.Field),
	ast.Service:   {strategy: stratService, item: ast.Function},

	ast.Field:        inline(" ", beforeSeparator),
	ast.FieldID:      inline("", nil),
	ast.FieldReq:     inline(" ", nil),
	ast.Function:     inline(" ", insideParens),
	ast.Oneway:       inline(" ", nil),
	ast.FunctionType: inline(" ", nil),
	ast.ThrowsList:   inline(" ", throwsParens),

	ast.TypeAnnotations: inline(" ", insideBrackets("(", ")")),
	ast.TypeAnnotation:  inline(" ", beforeSeparator),
	ast.AnnotationValue: inline(" ", nil),

	ast.FieldType:     inline(" ", nil),
	ast.BaseType:      inline(" ", nil),
	ast.RealBaseType:  inline(" ", nil),
	ast.ContainerType: inline(" ", nil),
	ast.MapType:       inline(" ", mapAngles),
	ast.SetType:       {strategy: stratInline, join: "", spaced: aroundCppType},
	ast.ListType:      {strategy: stratInline, join: "", spaced: aroundCppType},
	ast.CppType:       inline(" ", nil),

	ast.ConstValue:    inline(" ", nil),
	ast.Integer:       inline(" ", nil),
	ast.ConstList:     inline(" ", either(beforeSeparator, insideBrackets("[", "]"))),
	ast.ConstMapEntry: inline(" ", either(beforeSeparator, before(":"))),
	ast.ConstMap:      inline(" ", insideBrackets("{", "}")),
	ast.ListSeparator: inline(" ", nil),
}

func init() {
	for k := ast.KindInvalid + 1; k < ast.KindCount; k++ {
		if rules[k].strategy == stratNone {
			panic(fmt.Sprintf("format: no layout rule for node kind %s", k))
		}
	}
}

func ruleFor(k ast.Kind) rule {
	if k <= ast.KindInvalid || k >= ast.KindCount || rules[k].strategy == stratNone {
		defect("no layout rule for node kind %s", k)
	}
	return rules[k]
}

func isTok(tr *ast.Tree, kids []ast.NodeID, i int, text string) bool {
	return i >= 0 && i < len(kids) && tr.IsToken(kids[i], text)
}

func beforeSeparator(tr *ast.Tree, kids []ast.NodeID, i int) bool {
	return tr.Kind(kids[i]) == ast.ListSeparator
}

func before(text string) adjacency {
	return func(tr *ast.Tree, kids []ast.NodeID, i int) bool {
		return isTok(tr, kids, i, text)
	}
}

// insideBrackets keeps the content tight against open and close.
func insideBrackets(open, closing string) adjacency {
	return func(tr *ast.Tree, kids []ast.NodeID, i int) bool {
		return isTok(tr, kids, i-1, open) || isTok(tr, kids, i, closing)
	}
}

func either(a, b adjacency) adjacency {
	return func(tr *ast.Tree, kids []ast.NodeID, i int) bool {
		return a(tr, kids, i) || b(tr, kids, i)
	}
}

// insideParens: name(args), the argument list tight on both ends.
func insideParens(tr *ast.Tree, kids []ast.NodeID, i int) bool {
	return isTok(tr, kids, i, "(") || insideBrackets("(", ")")(tr, kids, i) || beforeSeparator(tr, kids, i)
}

// throwsParens differs from insideParens only by "throws (".
func throwsParens(tr *ast.Tree, kids []ast.NodeID, i int) bool {
	if isTok(tr, kids, i, "(") && isTok(tr, kids, i-1, "throws") {
		return false
	}
	return insideParens(tr, kids, i)
}

// mapAngles: map<K, V>.
func mapAngles(tr *ast.Tree, kids []ast.NodeID, i int) bool {
	if aroundCppType(tr, kids, i) {
		return false
	}
	return tr.TokenKind(kids[i-1]) != token.Comma
}

func aroundCppType(tr *ast.Tree, kids []ast.NodeID, i int) bool {
	return tr.Kind(kids[i]) == ast.CppType || tr.Kind(kids[i-1]) == ast.CppType
}
