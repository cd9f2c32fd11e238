package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"thriftfmt/internal/ast"
	"thriftfmt/internal/diag"
	"thriftfmt/internal/parser"
	"thriftfmt/internal/source"
	"thriftfmt/internal/testkit"
)

func parse(t *testing.T, src string) (parser.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.thrift", []byte(src))
	bag := diag.NewBag(32)
	res := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return res, bag
}

func mustParse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	res, bag := parse(t, src)
	if !res.OK() {
		t.Fatalf("unexpected errors for %q: %v", src, bag.Err())
	}
	if err := testkit.CheckTreeInvariants(res.Tree); err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return res.Tree
}

// definitions возвращает S-выражения детей документа без обёрток и EOF.
func definitions(tr *ast.Tree) []string {
	var out []string
	for _, c := range tr.Children(tr.Root) {
		if tr.IsEOF(c) {
			continue
		}
		out = append(out, tr.Sexpr(tr.Unwrap(c)))
	}
	return out
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "headers",
			src:  "include \"shared.thrift\"\ncpp_include \"<map>\"\nnamespace * tut\nnamespace py.twisted tutorial\nphp_namespace tut",
			want: []string{
				`(Include include "shared.thrift")`,
				`(CppInclude cpp_include "<map>")`,
				`(Namespace namespace * tut)`,
				`(Namespace namespace py.twisted tutorial)`,
				`(Namespace php_namespace tut)`,
			},
		},
		{
			name: "struct",
			src:  "struct Work { 1: i32 num1 = 0, 2: required i32 num2; 3: Operation op }",
			want: []string{
				"(Struct struct Work { " +
					"(Field (FieldID (Integer 1) :) (FieldType (BaseType (RealBaseType i32))) num1 = (ConstValue (Integer 0)) (ListSeparator ,)) " +
					"(Field (FieldID (Integer 2) :) (FieldReq required) (FieldType (BaseType (RealBaseType i32))) num2 (ListSeparator ;)) " +
					"(Field (FieldID (Integer 3) :) (FieldType Operation) op) })",
			},
		},
		{
			name: "enum",
			src:  "enum Op { ADD = 1, SUB, MUL = 0x3 }",
			want: []string{
				"(Enum enum Op { (EnumField ADD = (Integer 1) (ListSeparator ,)) (EnumField SUB (ListSeparator ,)) (EnumField MUL = (Integer 0x3)) })",
			},
		},
		{
			name: "service",
			src:  "service Calc extends shared.Base { oneway void zip(), i32 calc(1:i32 logid, 2:Work w) throws (1:InvalidOperation ouch) }",
			want: []string{
				"(Service service Calc extends shared.Base { " +
					"(Function (Oneway oneway) (FunctionType void) zip ( ) (ListSeparator ,)) " +
					"(Function (FunctionType (FieldType (BaseType (RealBaseType i32)))) calc ( " +
					"(Field (FieldID (Integer 1) :) (FieldType (BaseType (RealBaseType i32))) logid (ListSeparator ,)) " +
					"(Field (FieldID (Integer 2) :) (FieldType Work) w) ) " +
					"(ThrowsList throws ( (Field (FieldID (Integer 1) :) (FieldType InvalidOperation) ouch) ))) })",
			},
		},
		{
			name: "containers",
			src:  "typedef map<string, list<i32>> M (a = \"1\";)",
			want: []string{
				"(Typedef typedef (FieldType (ContainerType (MapType map < (FieldType (BaseType (RealBaseType string))) , " +
					"(FieldType (ContainerType (ListType list < (FieldType (BaseType (RealBaseType i32))) >))) >))) M " +
					`(TypeAnnotations ( (TypeAnnotation a = (AnnotationValue "1") (ListSeparator ;)) )))`,
			},
		},
		{
			name: "const values",
			src:  "const list<double> L = [1.5, -2;]\nconst map<string,i32> M = {'a': 1, \"b\": X}",
			want: []string{
				"(Const const (FieldType (ContainerType (ListType list < (FieldType (BaseType (RealBaseType double))) >))) L = " +
					"(ConstValue (ConstList [ (ConstValue 1.5) (ListSeparator ,) (ConstValue (Integer -2)) (ListSeparator ;) ])))",
				"(Const const (FieldType (ContainerType (MapType map < (FieldType (BaseType (RealBaseType string))) , " +
					"(FieldType (BaseType (RealBaseType i32))) >))) M = (ConstValue (ConstMap { " +
					"(ConstMapEntry (ConstValue 'a') : (ConstValue (Integer 1)) (ListSeparator ,)) " +
					`(ConstMapEntry (ConstValue "b") : (ConstValue X)) })))`,
			},
		},
		{
			name: "senum and cpp_type",
			src:  "senum S { \"a\", \"b\" }\ntypedef set cpp_type \"std::set\" <i8> T",
			want: []string{
				`(Senum senum S { "a" (ListSeparator ,) "b" })`,
				`(Typedef typedef (FieldType (ContainerType (SetType set (CppType cpp_type "std::set") < (FieldType (BaseType (RealBaseType i8))) >))) T)`,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := definitions(mustParse(t, tc.src))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocumentWrappersAndEOF(t *testing.T) {
	tr := mustParse(t, "include \"a.thrift\"\nstruct A {}")
	kids := tr.Children(tr.Root)
	if len(kids) != 3 {
		t.Fatalf("expected header, definition and EOF, got %s", tr.Sexpr(tr.Root))
	}
	if tr.Kind(kids[0]) != ast.Header || tr.Kind(kids[1]) != ast.Definition || !tr.IsEOF(kids[2]) {
		t.Fatalf("unexpected document shape %s", tr.Sexpr(tr.Root))
	}
}

func TestEmptyDocument(t *testing.T) {
	tr := mustParse(t, "// only a comment\n")
	if got := tr.Sexpr(tr.Root); got != "(Document <EOF>)" {
		t.Fatalf("empty document = %q", got)
	}
}

func TestCommentsStayInStream(t *testing.T) {
	tr := mustParse(t, "/* head */\nstruct A { 1: i32 a, // tail\n}")
	comments := 0
	for _, tk := range tr.Tokens {
		if tk.IsComment() {
			comments++
		}
	}
	if comments != 2 {
		t.Fatalf("expected 2 comments in the token stream, got %d", comments)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"struct A { 1: i32 }", diag.SynExpectIdentifier},
		{"struct A { 1: i32 a", diag.SynUnclosedBrace},
		{"foo bar", diag.SynUnexpectedTopLevel},
		{"const i32 X = ", diag.SynExpectConstValue},
		{"typedef map<i32 i32> M", diag.SynUnexpectedToken},
		{"struct A {}\ninclude \"late.thrift\"", diag.SynHeaderAfterDef},
		{"struct A { 1: i32 a = \"x }", diag.LexUnterminatedString},
	}
	for _, tc := range cases {
		res, bag := parse(t, tc.src)
		if res.OK() {
			t.Fatalf("%q: expected errors", tc.src)
		}
		found := false
		for _, d := range bag.Items() {
			if d.Code == tc.code {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q: expected %s, got %v", tc.src, tc.code.ID(), bag.Err())
		}
	}
}

func TestRecoveryContinuesWithNextDefinition(t *testing.T) {
	res, bag := parse(t, "struct A { 1: }\nstruct B { 1: i32 b }")
	if res.OK() {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(res.Tree.Sexpr(res.Tree.Root), "(Struct struct B") {
		t.Fatalf("parser did not recover: %s (%v)", res.Tree.Sexpr(res.Tree.Root), bag.Err())
	}
}

func TestMaxErrors(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.thrift", []byte("struct struct struct struct"))
	bag := diag.NewBag(32)
	res := parser.ParseFile(fs.Get(id), parser.Options{MaxErrors: 2, Reporter: diag.BagReporter{Bag: bag}})
	if res.OK() || bag.Len() != 2 {
		t.Fatalf("expected exactly 2 reported errors, got %d", bag.Len())
	}
}
