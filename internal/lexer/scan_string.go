package lexer

import (
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// Литерал: "..." или '...'. Escape-последовательностей в грамматике нет:
// строка заканчивается на первой такой же кавычке, переводы строк допустимы.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			return lx.emit(token.Literal, start)
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}
