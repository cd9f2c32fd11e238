package format

import (
	"fmt"
	"slices"
	"strings"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/parser"
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

// Format patches tr in place and renders it. Non-empty output ends with a
// single newline; a document without definitions or comments renders to "".
func Format(tr *ast.Tree, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if err := Patch(tr, opts); err != nil {
		return "", err
	}
	return Render(tr, opts)
}

// Render lays out an already patched tree.
func Render(tr *ast.Tree, opts Options) (out string, err error) {
	defer recoverDefect(&err)
	if tr == nil || !tr.Root.IsValid() {
		return "", nil
	}
	p := newPrinter(tr, opts)
	p.render(tr.Root)
	out = p.cur.String()
	if out != "" {
		out += "\n"
	}
	return out, nil
}

// RenderNode prints a single subtree without comments or alignment and
// without a trailing newline. The tree is not modified.
func RenderNode(tr *ast.Tree, id ast.NodeID) (out string, err error) {
	defer recoverDefect(&err)
	p := newPrinter(tr, DefaultOptions().pure())
	p.render(id)
	return p.cur.String(), nil
}

// FormatFile parses file and formats it. Syntax errors are sent to rep and
// turn into ErrSyntax.
func FormatFile(file *source.File, opts Options, rep diag.Reporter) (string, error) {
	res := parser.ParseFile(file, parser.Options{Reporter: rep})
	if !res.OK() {
		return "", fmt.Errorf("%w: %s: %d error(s)", ErrSyntax, file.Path, res.Errors)
	}
	return Format(res.Tree, opts)
}

// Source formats in-memory text.
func Source(name string, src []byte, opts Options) (string, error) {
	fs := source.NewFileSet()
	return FormatFile(fs.Get(fs.AddVirtual(name, src)), opts, nil)
}

// CheckRoundTrip formats the file, re-parses the output and formats it again.
// The second pass must reproduce the first byte for byte and keep the same
// definitions and comments.
func CheckRoundTrip(sf *source.File, opts Options, maxDiag int) error {
	origBag := diag.NewBag(maxDiag)
	orig := parseOnce(sf, origBag)
	if !orig.OK() {
		return fmt.Errorf("%w: %s: initial parse has errors", ErrSyntax, sf.Path)
	}
	kinds, comments := topItemKinds(orig.Tree), countComments(orig.Tree)

	first, err := Format(orig.Tree, opts)
	if err != nil {
		return err
	}

	fs2 := source.NewFileSet()
	rebuilt := fs2.Get(fs2.AddVirtual(sf.Path, []byte(first)))
	again := parseOnce(rebuilt, diag.NewBag(maxDiag))
	if !again.OK() {
		return fmt.Errorf("%w: %s: formatted output does not parse", ErrShapeChanged, sf.Path)
	}
	if !slices.Equal(kinds, topItemKinds(again.Tree)) {
		return fmt.Errorf("%w: %s: top-level definitions differ after round-trip", ErrShapeChanged, sf.Path)
	}
	if opts.KeepComments && comments != countComments(again.Tree) {
		return fmt.Errorf("%w: %s: comments lost after round-trip", ErrShapeChanged, sf.Path)
	}

	second, err := Format(again.Tree, opts)
	if err != nil {
		return err
	}
	if first != second {
		return fmt.Errorf("%w: %s: first difference at line %d", ErrNotIdempotent, sf.Path, firstDiffLine(first, second))
	}
	return nil
}

func parseOnce(sf *source.File, bag *diag.Bag) parser.Result {
	opts := parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: uint(bag.Cap())}
	return parser.ParseFile(sf, opts)
}

func topItemKinds(tr *ast.Tree) []ast.Kind {
	kids := tr.Children(tr.Root)
	kinds := make([]ast.Kind, 0, len(kids))
	for _, id := range kids {
		if tr.IsEOF(id) {
			continue
		}
		kinds = append(kinds, tr.Kind(tr.Unwrap(id)))
	}
	return kinds
}

func countComments(tr *ast.Tree) int {
	n := 0
	for _, t := range tr.Tokens {
		if t.Channel == token.Hidden {
			n++
		}
	}
	return n
}

func firstDiffLine(a, b string) int {
	la, lb := strings.Split(a, "\n"), strings.Split(b, "\n")
	for i := range min(len(la), len(lb)) {
		if la[i] != lb[i] {
			return i + 1
		}
	}
	return min(len(la), len(lb)) + 1
}
