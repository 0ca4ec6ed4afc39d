package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()

	idx := timer.Begin("parse")
	timer.End(idx, "3 files")
	idx2 := timer.Begin("analyze")
	timer.End(idx2, "")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "parse" || report.Phases[0].Note != "3 files" {
		t.Errorf("first phase = %+v", report.Phases[0])
	}
	if report.TotalMS < 0 {
		t.Errorf("TotalMS = %f, want non-negative", report.TotalMS)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	timer := NewTimer()
	timer.End(-1, "ignored")
	timer.End(5, "ignored")
	if got := timer.Report(); len(got.Phases) != 0 {
		t.Errorf("stray End calls should not create phases, got %+v", got)
	}
}

func TestTimerSummaryFormat(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("discover")
	time.Sleep(time.Millisecond)
	timer.End(idx, "12 files")

	out := timer.Summary()
	if !strings.HasPrefix(out, "timings:\n") {
		t.Errorf("Summary should start with a timings header, got %q", out)
	}
	if !strings.Contains(out, "discover") || !strings.Contains(out, "// 12 files") {
		t.Errorf("Summary missing phase line: %q", out)
	}
	if !strings.Contains(out, "total") {
		t.Errorf("Summary missing total line: %q", out)
	}
}

func TestEmptyTimerReport(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Errorf("empty timer report = %+v", report)
	}
}
