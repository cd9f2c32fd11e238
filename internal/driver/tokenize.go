package driver

import (
	"thriftfmt/internal/diag"
	"thriftfmt/internal/lexer"
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file, keeping comments on the hidden channel.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnosticsOrDefault(maxDiagnostics))
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

func maxDiagnosticsOrDefault(n int) int {
	if n <= 0 {
		return defaultMaxDiagnostics
	}
	return n
}
