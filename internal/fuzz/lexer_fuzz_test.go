package fuzztests

import (
	"testing"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/lexer"
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.thrift", input))

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(toks) == 0 {
			t.Fatalf("empty token stream")
		}
		for i, tok := range toks {
			if tok.Index != i {
				t.Fatalf("token %d has index %d", i, tok.Index)
			}
			if tok.Span.End < tok.Span.Start || int(tok.Span.End) > len(input) {
				t.Fatalf("token %d span %d..%d out of input (%d bytes)", i, tok.Span.Start, tok.Span.End, len(input))
			}
		}
		if last := toks[len(toks)-1]; last.Kind != token.EOF {
			t.Fatalf("stream ends with %s, want EOF", last.Kind)
		}
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
