package format

import (
	"errors"
	"testing"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/token"
)

func TestPatchParameters(t *testing.T) {
	src := "service S {\n" +
		"  void ping(1: i32 a; 2: i32 b;)\n" +
		"  i32 add(1: i32 a, 2: i32 b) throws (1: Err e,)\n" +
		"}\n"
	want := "service S {\n" +
		"    void ping(1: i32 a, 2: i32 b),\n" +
		"    i32 add(1: i32 a, 2: i32 b) throws (1: Err e),\n" +
		"}\n"
	if got := mustFormat(t, src, DefaultOptions()); got != want {
		t.Fatalf("unexpected output:\n%s", diff(want, got))
	}
}

func TestPatchAnnotations(t *testing.T) {
	src := `struct A { 1: i32 a (x = "1", y = "2",) } (z = "3";)`
	want := "struct A {\n    1: required i32 a (x = \"1\", y = \"2\"),\n} (z = \"3\")\n"
	if got := mustFormat(t, src, DefaultOptions()); got != want {
		t.Fatalf("unexpected output:\n%s", diff(want, got))
	}
}

func TestPatchKeepsExplicitRequiredness(t *testing.T) {
	src := "struct A {\n1: optional i32 a\n2: required i32 b\n}\n"
	want := "struct A {\n    1: optional i32 a,\n    2: required i32 b,\n}\n"
	if got := mustFormat(t, src, DefaultOptions()); got != want {
		t.Fatalf("unexpected output:\n%s", diff(want, got))
	}
}

func TestPatchIsIdempotent(t *testing.T) {
	tr := parseTree(t, "struct A { 1: i32 a; 2: i32 b }\nservice S { void f(1: i32 x, 2: i32 y,) }\nenum E { A; B }\n")
	opts := DefaultOptions()
	if err := Patch(tr, opts); err != nil {
		t.Fatalf("patch: %v", err)
	}
	once := tr.Sexpr(tr.Root)
	if err := Patch(tr, opts); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if twice := tr.Sexpr(tr.Root); twice != once {
		t.Fatalf("second patch changed the tree:\n%s\n%s", once, twice)
	}
}

func TestPatchFieldWithoutChildren(t *testing.T) {
	tr := ast.NewTree([]token.Token{{Kind: token.EOF}})
	tr.Root = tr.NewRule(ast.Document, tr.NewRule(ast.Field))
	if err := Patch(tr, DefaultOptions()); err != nil {
		t.Fatalf("empty field must be left alone, got %v", err)
	}
}

func TestPatchFieldWithoutTypeIsDefect(t *testing.T) {
	tr := ast.NewTree([]token.Token{{Kind: token.EOF}})
	tr.Root = tr.NewRule(ast.Document, tr.NewRule(ast.Field, tr.NewSynthetic(token.Ident, "x")))
	if err := Patch(tr, DefaultOptions()); !errors.Is(err, ErrDefect) {
		t.Fatalf("expected ErrDefect, got %v", err)
	}
}
