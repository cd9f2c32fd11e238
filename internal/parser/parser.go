package parser

import (
	"slices"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/lexer"
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree   *ast.Tree
	Errors uint
}

// OK reports whether the document parsed without errors. Trees with errors
// must not be formatted.
func (r Result) OK() bool {
	return r.Errors == 0
}

// Parser — состояние парсера на один файл
type Parser struct {
	toks     []token.Token
	pos      int // индекс текущего значимого токена в toks
	tree     *ast.Tree
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile лексит и разбирает файл. Лексические ошибки идут в тот же Reporter.
func ParseFile(file *source.File, opts Options) Result {
	counter := &countingReporter{next: opts.Reporter}
	toks := lexer.Tokenize(file, lexer.Options{Reporter: counter})
	res := ParseTokens(toks, opts)
	res.Errors += counter.errors
	return res
}

// ParseTokens разбирает уже готовый поток токенов (последний — EOF).
func ParseTokens(toks []token.Token, opts Options) Result {
	p := Parser{
		toks: toks,
		tree: ast.NewTree(toks),
		opts: opts,
	}
	p.skipHidden()
	p.tree.Root = p.parseDocument()
	return Result{Tree: p.tree, Errors: p.opts.CurrentErrors}
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) atInteger() bool {
	return p.atAny(token.IntLit, token.HexLit)
}

var headerStarters = []token.Kind{
	token.KwInclude, token.KwCppInclude, token.KwNamespace, token.KwCppNamespace, token.KwPhpNamespace,
}

var definitionStarters = []token.Kind{
	token.KwConst, token.KwTypedef, token.KwEnum, token.KwSenum,
	token.KwStruct, token.KwUnion, token.KwException, token.KwService,
}

func isTopLevelStarter(k token.Kind) bool {
	return slices.Contains(headerStarters, k) || slices.Contains(definitionStarters, k)
}

// parseDocument: header* definition* EOF
func (p *Parser) parseDocument() ast.NodeID {
	var kids []ast.NodeID
	seenDefinition := false
	for !p.at(token.EOF) && !p.opts.Enough() {
		var (
			id ast.NodeID
			ok bool
		)
		switch k := p.peek().Kind; {
		case slices.Contains(headerStarters, k):
			if seenDefinition {
				p.err(diag.SynHeaderAfterDef, "include and namespace declarations must precede definitions")
			}
			id, ok = p.parseHeader()
			if ok {
				id = p.tree.NewRule(ast.Header, id)
			}
		case slices.Contains(definitionStarters, k):
			seenDefinition = true
			id, ok = p.parseDefinition()
			if ok {
				id = p.tree.NewRule(ast.Definition, id)
			}
		default:
			p.err(diag.SynUnexpectedTopLevel, "unexpected "+describe(p.peek())+" at top level")
			p.advance()
		}
		if !ok {
			p.resyncTop()
			continue
		}
		kids = append(kids, id)
	}
	for !p.at(token.EOF) {
		p.advance()
	}
	kids = append(kids, p.term()) // EOF
	return p.tree.NewRule(ast.Document, kids...)
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующего определения или EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) && !isTopLevelStarter(p.peek().Kind) {
		p.advance()
	}
}

func (p *Parser) parseHeader() (ast.NodeID, bool) {
	switch p.peek().Kind {
	case token.KwInclude:
		return p.parseInclude(token.KwInclude, ast.Include)
	case token.KwCppInclude:
		return p.parseInclude(token.KwCppInclude, ast.CppInclude)
	default:
		return p.parseNamespace()
	}
}

func (p *Parser) parseDefinition() (ast.NodeID, bool) {
	switch p.peek().Kind {
	case token.KwConst:
		return p.parseConst()
	case token.KwTypedef:
		return p.parseTypedef()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwSenum:
		return p.parseSenum()
	case token.KwStruct:
		return p.parseFieldBlock(ast.Struct)
	case token.KwUnion:
		return p.parseFieldBlock(ast.Union)
	case token.KwException:
		return p.parseFieldBlock(ast.Exception)
	default:
		return p.parseService()
	}
}

// countingReporter forwards diagnostics and counts errors.
type countingReporter struct {
	next   diag.Reporter
	errors uint
}

func (r *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		r.errors++
	}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
