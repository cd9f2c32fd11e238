package lexer

import (
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

func isCommentStart(b0, b1 byte) bool {
	return b0 == '#' || (b0 == '/' && (b1 == '/' || b1 == '*'))
}

// scanComment: "//..." и "#..." до конца строки (перевод строки не входит
// в текст), "/* ... */" без вложенности.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) == '*' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.emit(token.BlockComment, start)
			}
			lx.cursor.Bump()
		}
		tok := lx.emit(token.BlockComment, start)
		lx.errLex(diag.LexUnterminatedBlockComment, tok.Span, "unterminated block comment")
		return tok
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || (b == '\r' && lx.cursor.PeekAt(1) == '\n') {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.LineComment, start)
}
