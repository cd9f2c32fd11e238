package format

import "testing"

func TestCursorCoalescesNewlines(t *testing.T) {
	c := newCursor()
	c.newline(2) // в начале буфера переводы строк не пишутся
	c.push("a")
	c.newline(1)
	c.newline(2)
	c.newline(1)
	c.push("b")
	if got := c.String(); got != "a\n\nb" {
		t.Fatalf("expected %q, got %q", "a\n\nb", got)
	}
}

func TestCursorIndentAndJoin(t *testing.T) {
	c := newCursor()
	c.indent = "  "
	c.push("x")
	c.setJoin(" ")
	c.newline(1)
	c.push("y")
	c.setJoin(" ")
	c.push("z")
	if got := c.String(); got != "  x\n  y z" {
		t.Fatalf("join must be dropped at a line break, got %q", got)
	}
}

func TestCursorPaddingUsesDisplayWidth(t *testing.T) {
	c := newCursor()
	c.push("日本")
	if c.width != 4 {
		t.Fatalf("expected width 4, got %d", c.width)
	}
	c.padTo(6)
	c.push("=")
	if got := c.String(); got != "日本  =" {
		t.Fatalf("unexpected padding: %q", got)
	}
	c.appendTail(0, "// c")
	if got := c.String(); got != "日本  = // c" {
		t.Fatalf("unexpected tail: %q", got)
	}
}

func TestCursorTailKeepsPendingNewline(t *testing.T) {
	c := newCursor()
	c.push("a,")
	c.newline(1)
	c.appendTail(5, "# t")
	c.push("b")
	if got := c.String(); got != "a,   # t\nb" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestCursorSeparate(t *testing.T) {
	c := newCursor()
	c.indent = "    "
	c.separate() // пустая строка: пробел не нужен
	c.push("b")
	c.separate()
	c.push("// c")
	c.newline(1)
	c.separate()
	c.push("x")
	if got := c.String(); got != "    b // c\n    x" {
		t.Fatalf("unexpected output: %q", got)
	}
}
