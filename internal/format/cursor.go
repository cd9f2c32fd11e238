package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cursor accumulates output. Newline requests are coalesced to the largest
// pending count and written lazily, together with the indent, right before
// the next text; a pending join is dropped when a newline comes first.
type cursor struct {
	buf       strings.Builder
	newlines  int    // ожидающие переводы строки
	join      string // ожидающий разделитель inline-правила
	indent    string // отступ текущего уровня, пишется в начале строки
	width     int    // ширина текущей строки (в колонках терминала)
	lineStart bool
}

func newCursor() *cursor {
	return &cursor{lineStart: true}
}

func (c *cursor) String() string {
	return c.buf.String()
}

// newline requests at least n line breaks before the next text.
func (c *cursor) newline(n int) {
	if n > c.newlines {
		c.newlines = n
	}
}

// setJoin queues the separator between two inline children.
func (c *cursor) setJoin(s string) {
	c.join = s
}

// flush writes pending newlines (or the pending join) and the indent.
func (c *cursor) flush() {
	if c.newlines > 0 {
		if c.buf.Len() > 0 {
			c.raw(strings.Repeat("\n", c.newlines))
		}
		c.newlines = 0
		c.join = ""
	}
	if c.join != "" {
		c.raw(c.join)
		c.join = ""
	}
	if c.lineStart && c.indent != "" {
		c.raw(c.indent)
		c.lineStart = false
	}
}

// push writes text after flushing pending layout.
func (c *cursor) push(text string) {
	if text == "" {
		return
	}
	c.flush()
	c.raw(text)
}

// separate queues a single space when text would otherwise be glued to
// the end of a non-empty line.
func (c *cursor) separate() {
	if c.newlines == 0 && c.join == "" && c.width > runewidth.StringWidth(c.indent) {
		c.join = " "
	}
}

// padTo pads the current line with spaces up to column col.
func (c *cursor) padTo(col int) {
	c.flush()
	if c.width < col {
		c.raw(strings.Repeat(" ", col-c.width))
	}
}

// appendTail writes a trailing comment on the current line without flushing
// pending newlines: at column col, or one space after the text when the line
// is already that wide.
func (c *cursor) appendTail(col int, text string) {
	if c.width < col {
		c.raw(strings.Repeat(" ", col-c.width))
	} else {
		c.raw(" ")
	}
	c.raw(text)
}

func (c *cursor) raw(s string) {
	if s == "" {
		return
	}
	c.buf.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		c.width = runewidth.StringWidth(s[i+1:])
		c.lineStart = i == len(s)-1
		return
	}
	c.width += runewidth.StringWidth(s)
	c.lineStart = false
}

// textWidth is the display width of a single-line fragment.
func textWidth(s string) int {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return runewidth.StringWidth(s)
}
