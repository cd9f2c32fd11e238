package lexer

import (
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

// Lexer выдаёт полный поток токенов: значимые токены и комментарии
// (на скрытом канале). Пробелы токенов не порождают.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	index  int          // индекс следующего токена в потоке
	look   *token.Token // 1 элементный буфер для токена
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен потока, включая комментарии.
// После EOF всегда возвращает тот же EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipSpace()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		lx.stamp(&tok)
		if !lx.done {
			lx.done = true
			lx.index++
		}
		tok.Index = lx.index - 1
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isCommentStart(ch, lx.cursor.PeekAt(1)):
		tok = lx.scanComment()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case (ch == '+' || ch == '-' || ch == '.') && lx.isNumberAhead():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanPunct()
	}

	lx.stamp(&tok)
	tok.Index = lx.index
	lx.index++
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All лексит файл целиком; последний элемент всегда EOF.
func (lx *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// Tokenize is a convenience wrapper around New(...).All().
func Tokenize(file *source.File, opts Options) []token.Token {
	return New(file, opts).All()
}

func (lx *Lexer) stamp(tok *token.Token) {
	if tok.IsComment() {
		tok.Channel = token.Hidden
	}
	tok.Line = lx.file.Position(tok.Span.Start).Line
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
