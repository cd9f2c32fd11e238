package token_test

import (
	"testing"

	"thriftfmt/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.Literal, token.IntLit, token.HexLit, token.DoubleLit} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.KwConst, token.Comma} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKeywordRanges(t *testing.T) {
	for text, want := range map[string]bool{"struct": false, "i32": true, "uuid": true, "map": false} {
		k, ok := token.LookupKeyword(text)
		if !ok {
			t.Fatalf("%q should be a keyword", text)
		}
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should report IsKeyword", k)
		}
		if got := tok(k).IsBaseType(); got != want {
			t.Fatalf("%v IsBaseType = %v, want %v", k, got, want)
		}
	}
	if _, ok := token.LookupKeyword("Struct"); ok {
		t.Fatalf("keywords are case sensitive")
	}
}

func TestIsPunct(t *testing.T) {
	for _, k := range []token.Kind{token.LBrace, token.RBrace, token.Lt, token.Gt, token.Comma, token.Semicolon, token.Assign, token.Star} {
		if !tok(k).IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	if tok(token.LineComment).IsPunct() {
		t.Fatalf("comments are not punct")
	}
}

func TestKindString(t *testing.T) {
	if token.KwI32.String() != "KwI32" || token.BlockComment.String() != "BlockComment" {
		t.Fatalf("unexpected names: %s %s", token.KwI32, token.BlockComment)
	}
}

func TestLineSpan(t *testing.T) {
	c := token.Token{Kind: token.BlockComment, Text: "/* a\n * b\n */"}
	if got := c.LineSpan(); got != 2 {
		t.Fatalf("LineSpan = %d, want 2", got)
	}
}
