package testkit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/format"
	"thriftfmt/internal/parser"
	"thriftfmt/internal/source"
	"thriftfmt/internal/testkit"
)

func parse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	fs := source.NewFileSet()
	res := parser.ParseFile(fs.Get(fs.AddVirtual("t.thrift", []byte(src))), parser.Options{})
	if !res.OK() {
		t.Fatalf("parse failed for %q", src)
	}
	return res.Tree
}

func TestInvariantsHoldBeforeAndAfterPatch(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "format", "testdata", "*.thrift"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no corpus files: %v", err)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		tr := parse(t, string(src))
		if err := testkit.CheckTreeInvariants(tr); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if err := format.Patch(tr, format.DefaultOptions()); err != nil {
			t.Fatalf("%s: patch: %v", path, err)
		}
		if err := testkit.CheckTreeInvariants(tr); err != nil {
			t.Fatalf("%s after patch: %v", path, err)
		}
	}
}

func TestInvariantsDetectBrokenTrees(t *testing.T) {
	tr := parse(t, "struct A { 1: i32 a; }")
	// меняем текст листа — проверка должна это заметить
	leaves := tr.Leaves(tr.Root)
	tr.SetText(leaves[1], "B")
	err := testkit.CheckTreeInvariants(tr)
	if err == nil || !strings.Contains(err.Error(), `"B"`) {
		t.Fatalf("expected text mismatch, got %v", err)
	}

	tr = parse(t, "struct A { 1: i32 a; }")
	var sep ast.NodeID
	for _, id := range tr.Leaves(tr.Root) {
		if tr.IsToken(id, ";") {
			sep = id
		}
	}
	tr.SetText(sep, ",")
	if err := testkit.CheckTreeInvariants(tr); err != nil {
		t.Fatalf("separator rewrite must be allowed: %v", err)
	}

	if err := testkit.CheckTreeInvariants(nil); err == nil {
		t.Fatalf("nil tree must be rejected")
	}
}
