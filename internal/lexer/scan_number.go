package lexer

import (
	"thriftfmt/internal/diag"
	"thriftfmt/internal/token"
)

// Поддержка: 12, +12, -12, 0x1F, -0x1F, 1.5, .5, 1e9, 1.5E-3.
// Целое без дробной части и экспоненты → IntLit; 0x → HexLit; иначе DoubleLit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexBadNumber, tok.Span, "expected hex digit after '0x'")
			return tok
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.HexLit, start)
	}

	kind := token.IntLit
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть только если за точкой цифра
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.DoubleLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" без цифр — не экспонента; 'e' уйдёт в следующий токен
			lx.cursor.Reset(mark)
			return lx.emit(kind, start)
		}
		kind = token.DoubleLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.emit(kind, start)
}

// isNumberAhead: знак или точка, за которыми начинается число.
func (lx *Lexer) isNumberAhead() bool {
	b0 := lx.cursor.Peek()
	b1 := lx.cursor.PeekAt(1)
	switch b0 {
	case '.':
		return isDec(b1)
	case '+', '-':
		return isDec(b1) || (b1 == '.' && isDec(lx.cursor.PeekAt(2)))
	}
	return false
}
