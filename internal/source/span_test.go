package source

import (
	"testing"
)

func TestSpanBasics(t *testing.T) {
	s := Span{File: 3, Start: 10, End: 25}
	if s.Empty() {
		t.Error("non-zero-length span reported Empty")
	}
	if s.Len() != 15 {
		t.Errorf("Len() = %d, want 15", s.Len())
	}
	if got := s.String(); got != "3:10-25" {
		t.Errorf("String() = %q, want 3:10-25", got)
	}
	if !(Span{Start: 7, End: 7}).Empty() {
		t.Error("zero-length span should be Empty")
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 10, End: 20}

	tests := []struct {
		name string
		off  uint32
		want bool
	}{
		{"before start", 9, false},
		{"at start", 10, true},
		{"inside", 15, true},
		{"last covered byte", 19, true},
		{"at end is exclusive", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.off); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.off, got, tt.want)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{
			name: "disjoint later span extends end",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 20, End: 30},
			want: Span{File: 1, Start: 5, End: 30},
		},
		{
			name: "earlier span extends start",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 0, End: 3},
			want: Span{File: 1, Start: 0, End: 10},
		},
		{
			name: "contained span changes nothing",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 6, End: 8},
			want: Span{File: 1, Start: 5, End: 10},
		},
		{
			name: "different file is ignored",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 2, Start: 0, End: 99},
			want: Span{File: 1, Start: 5, End: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpanShift(t *testing.T) {
	s := Span{File: 1, Start: 10, End: 20}

	if got := s.ShiftLeft(4); got != (Span{File: 1, Start: 6, End: 16}) {
		t.Errorf("ShiftLeft(4) = %+v", got)
	}
	if got := s.ShiftLeft(10); got != (Span{File: 1, Start: 0, End: 10}) {
		t.Errorf("ShiftLeft to offset zero = %+v", got)
	}
	if got := s.ShiftLeft(11); got != s {
		t.Errorf("ShiftLeft past zero should be a no-op, got %+v", got)
	}

	if got := s.ShiftRight(5); got != (Span{File: 1, Start: 15, End: 25}) {
		t.Errorf("ShiftRight(5) = %+v", got)
	}
	if got := s.ShiftRight(11); got != s {
		t.Errorf("ShiftRight beyond length should be a no-op, got %+v", got)
	}
}

func TestSpanZeroide(t *testing.T) {
	s := Span{File: 2, Start: 10, End: 20}

	start := s.ZeroideToStart()
	if start != (Span{File: 2, Start: 10, End: 10}) || !start.Empty() {
		t.Errorf("ZeroideToStart = %+v", start)
	}

	end := s.ZeroideToEnd()
	if end != (Span{File: 2, Start: 20, End: 20}) || !end.Empty() {
		t.Errorf("ZeroideToEnd = %+v", end)
	}
}
