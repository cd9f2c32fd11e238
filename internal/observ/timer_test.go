package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerFoldsConcurrentPhases(t *testing.T) {
	tm := NewTimer()
	run := tm.Begin("fmt")
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
		}()
	}
	wg.Wait()
	tm.End(run, "8 files")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %+v", rep.Phases)
	}
	parse := rep.Phases[1]
	if parse.Name != "parse" || parse.Count != 8 || parse.DurationMS != 8 {
		t.Fatalf("unexpected parse phase: %+v", parse)
	}
	if rep.TotalMS != rep.Phases[0].DurationMS {
		t.Fatalf("per-file sums must not count into the total: %+v", rep)
	}
	if s := tm.Summary(); !strings.Contains(s, "x8") || !strings.Contains(s, "// 8 files") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("y", time.Second)
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}
