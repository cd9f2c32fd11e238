package diag_test

import (
	"errors"
	"sync"
	"testing"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := diag.NewBag(2)
	sp := source.Span{File: 0, Start: 1, End: 2}
	if !bag.Add(diag.New(diag.SevWarning, diag.FmtInfo, sp, "w")) {
		t.Fatalf("first add should succeed")
	}
	if bag.HasErrors() {
		t.Fatalf("warning must not count as error")
	}
	bag.Add(diag.NewError(diag.SynUnexpectedToken, sp, "boom"))
	if bag.Add(diag.NewError(diag.SynUnexpectedToken, sp, "dropped")) {
		t.Fatalf("bag limit not enforced")
	}
	err := bag.Err()
	var be *diag.BagError
	if !errors.As(err, &be) || be.Count != 1 {
		t.Fatalf("unexpected Err(): %v", err)
	}
	if be.Error() != "SYN2001: boom" {
		t.Fatalf("unexpected message %q", be.Error())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}
	r.Report(diag.LexBadNumber, diag.SevError, source.Span{Start: 9, End: 10}, "late", nil)
	r.Report(diag.LexUnknownChar, diag.SevError, source.Span{Start: 1, End: 2}, "early", nil)
	r.Report(diag.LexUnknownChar, diag.SevError, source.Span{Start: 1, End: 2}, "early again", nil)
	bag.Sort()
	bag.Dedup()
	items := bag.Items()
	if len(items) != 2 || items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	for range 3 {
		diag.ReportError(r, diag.SynExpectType, sp, "expected type").Emit()
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
}

func TestBagConcurrentAdd(t *testing.T) {
	bag := diag.NewBag(1000)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				bag.Add(diag.NewError(diag.FmtDefect, source.Span{Start: uint32(i), End: uint32(j)}, "x"))
			}
		}()
	}
	wg.Wait()
	if bag.Len() != 400 {
		t.Fatalf("expected 400 diagnostics, got %d", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexBadNumber:    "LEX1004",
		diag.SynExpectType:   "SYN2003",
		diag.IOLoadFileError: "IO4001",
		diag.FmtDefect:       "FMT7001",
	}
	for c, want := range cases {
		if c.ID() != want {
			t.Fatalf("%v.ID() = %q, want %q", c, c.ID(), want)
		}
	}
}
