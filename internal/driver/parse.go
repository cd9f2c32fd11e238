package driver

import (
	"fortio.org/safecast"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/format"
	"thriftfmt/internal/parser"
	"thriftfmt/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
	Errors  uint
}

// OK reports whether the file parsed without errors.
func (r *ParseResult) OK() bool {
	return r.Errors == 0 && !r.Bag.HasErrors()
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	maxDiagnostics = maxDiagnosticsOrDefault(maxDiagnostics)
	bag := diag.NewBag(maxDiagnostics)

	var maxErrors uint
	maxErrors, err = safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	opts := parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	}
	result := parser.ParseFile(file, opts)
	bag.Sort()

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    result.Tree,
		Bag:     bag,
		Errors:  result.Errors,
	}, nil
}

// Patch applies the tree rewrites that formatting would apply, so that
// `parse --patched` shows the tree the printer actually sees.
func (r *ParseResult) Patch(opts format.Options) error {
	if !r.OK() {
		return &ParseError{Path: r.File.Path, Bag: r.Bag, FileSet: r.FileSet}
	}
	return format.Patch(r.Tree, opts)
}
