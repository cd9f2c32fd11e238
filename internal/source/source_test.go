package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.thrift", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.thrift", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.thrift")
	if !exists || latestID != id2 {
		t.Fatalf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first version content = %q", got)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.thrift", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3} // позиции символов \n
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nx")
	idx := buildLineIndex(content)
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.thrift", []byte("first\nsecond\nthird")))
	for n, want := range map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""} {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Run("crlf and utf8 bom", func(t *testing.T) {
		in := append([]byte{0xEF, 0xBB, 0xBF}, "a\r\nb\r\n"...)
		out, flags, err := Normalize(in)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != "a\nb\n" {
			t.Fatalf("got %q", out)
		}
		if flags&FileHadBOM == 0 || flags&FileNormalizedCRLF == 0 {
			t.Fatalf("unexpected flags %b", flags)
		}
	})
	t.Run("utf16 little endian", func(t *testing.T) {
		in := []byte{0xFF, 0xFE, 'e', 0, 'n', 0, 'u', 0, 'm', 0}
		out, flags, err := Normalize(in)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != "enum" {
			t.Fatalf("got %q", out)
		}
		if flags&FileDecodedUTF16 == 0 {
			t.Fatalf("expected FileDecodedUTF16 flag, got %b", flags)
		}
	})
	t.Run("plain", func(t *testing.T) {
		out, flags, err := Normalize([]byte("struct A {}"))
		if err != nil || flags != 0 || string(out) != "struct A {}" {
			t.Fatalf("got %q flags=%b err=%v", out, flags, err)
		}
	})
}
