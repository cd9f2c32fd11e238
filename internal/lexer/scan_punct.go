package lexer

import (
	"fmt"
	"unicode/utf8"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

var punct = [256]token.Kind{
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'<': token.Lt,
	'>': token.Gt,
	',': token.Comma,
	';': token.Semicolon,
	':': token.Colon,
	'=': token.Assign,
	'*': token.Star,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	if k := punct[b]; k != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}

	// неизвестный символ: съедаем целую руну, чтобы не резать UTF-8
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	for range max(size, 1) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unexpected character %q", r))
	return tok
}
