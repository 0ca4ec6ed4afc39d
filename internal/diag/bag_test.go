package diag

import (
	"testing"

	"github.com/eleventy7/jruff/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(New("A", span(0, 1), "first")) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(New("A", span(1, 2), "second")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(New("A", span(2, 3), "third")) {
		t.Fatal("third add should hit the limit")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagUnlimited(t *testing.T) {
	bag := NewBag(0)
	for i := 0; i < 100; i++ {
		if !bag.Add(New("A", span(uint32(i), uint32(i+1)), "msg")) {
			t.Fatalf("add %d rejected with no limit", i)
		}
	}
	if bag.Len() != 100 {
		t.Fatalf("Len = %d, want 100", bag.Len())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(0)

	late := New("B", span(20, 21), "late")
	late.Order = 1
	earlySecondRule := New("B", span(5, 6), "same start, later rule")
	earlySecondRule.Order = 1
	earlyFirstRule := New("A", span(5, 6), "same start, earlier rule")
	earlyFirstRule.Order = 0

	bag.Add(late)
	bag.Add(earlySecondRule)
	bag.Add(earlyFirstRule)
	bag.Sort()

	items := bag.Items()
	if items[0].Rule != "A" || items[0].Span.Start != 5 {
		t.Fatalf("items[0] = %+v, want rule A at 5", items[0])
	}
	if items[1].Rule != "B" || items[1].Span.Start != 5 {
		t.Fatalf("items[1] = %+v, want rule B at 5", items[1])
	}
	if items[2].Message != "late" {
		t.Fatalf("items[2] = %+v, want the latest span", items[2])
	}
}

func TestBagSortStable(t *testing.T) {
	bag := NewBag(0)
	first := New("A", span(3, 4), "inserted first")
	second := New("A", span(3, 4), "inserted second")
	bag.Add(first)
	bag.Add(second)
	bag.Sort()

	if bag.Items()[0].Message != "inserted first" {
		t.Fatal("equal keys must keep insertion order")
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(New("A", span(0, 1), "a"))
	b := NewBag(1)
	b.Add(New("B", span(1, 2), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len = %d after merge, want 2", a.Len())
	}
}

func TestWithFixCopies(t *testing.T) {
	base := New("A", span(0, 4), "msg")
	fixed := base.WithFix(FixAlways, TextEdit{Span: span(0, 4), NewText: "x"})

	if base.Fix != nil {
		t.Fatal("WithFix mutated the receiver")
	}
	if fixed.Fix == nil || fixed.Fix.Applicability != FixAlways || len(fixed.Fix.Edits) != 1 {
		t.Fatalf("fix not attached: %+v", fixed.Fix)
	}
}
