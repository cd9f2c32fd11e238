package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/format"
	"thriftfmt/internal/parser"
	"thriftfmt/internal/source"
	"thriftfmt/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang tests that the parser terminates on any input and that
// a successful parse yields a well-formed tree.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// recovery edge cases
	f.Add([]byte("struct A { 1: i32 a struct B {}"))
	f.Add([]byte("service S { void f(1: i32 a,, ) throws }"))
	f.Add([]byte("const list<list<list<i32>>> X = [[[[[]]]]]"))
	f.Add([]byte("enum E { A = , B = 0x }"))
	f.Add([]byte("typedef map<string Ok"))
	f.Add([]byte("/* unterminated"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.thrift", input))
			bag := diag.NewBag(128)
			res := parser.ParseFile(file, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				MaxErrors: 128,
			})
			if !res.OK() {
				done <- nil
				return
			}
			done <- testkit.CheckTreeInvariants(res.Tree)
		}()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("tree invariant violated: %v\ninput: %q", err, truncateForLog(input, 200))
			}
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzFormatStable formats every parseable input twice and expects the
// second pass to change nothing.
func FuzzFormatStable(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.thrift", input))
		err := format.CheckRoundTrip(file, format.DefaultOptions(), 128)
		if err == nil || errors.Is(err, format.ErrSyntax) {
			return
		}
		t.Fatalf("round-trip failed: %v\ninput: %q", err, truncateForLog(input, 200))
	})
}

func truncateForLog(b []byte, limit int) []byte {
	if len(b) <= limit {
		return b
	}
	return b[:limit]
}
