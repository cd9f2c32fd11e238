package token

import (
	"thriftfmt/internal/source"
)

// Channel separates grammar tokens from tokens the parser never sees.
type Channel uint8

const (
	// Visible tokens are consumed by the grammar.
	Visible Channel = iota
	// Hidden tokens are comments; only the formatter looks at them.
	Hidden
)

func (c Channel) String() string {
	if c == Hidden {
		return "hidden"
	}
	return "visible"
}

// Token represents a single source token with its position in the stream.
type Token struct {
	Kind    Kind
	Channel Channel
	Index   int    // позиция в общем потоке токенов (включая комментарии)
	Line    uint32 // 1-based строка первого байта
	Span    source.Span
	Text    string
}

// IsComment reports whether the token is a comment of any style.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Literal, IntLit, HexLit, DoubleLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LParen, RParen, LBracket, RBracket, Lt, Gt,
		Comma, Semicolon, Colon, Assign, Star:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind > keywordBegin && t.Kind < keywordEnd
}

// IsBaseType reports whether the token names a builtin scalar type.
func (t Token) IsBaseType() bool {
	return t.Kind > baseTypeBegin && t.Kind < baseTypeEnd
}

// LineSpan returns how many source lines the token text covers beyond its first one.
func (t Token) LineSpan() uint32 {
	var n uint32
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			n++
		}
	}
	return n
}
