package diagfmt

import (
	"strings"
	"testing"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("class T {\n  int a = 0;\n}\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New("FinalLocalVariable",
		source.Span{File: id, Start: 16, End: 17},
		"Variable 'a' should be declared final."))
	bag.Sort()
	return bag, fs, id
}

func TestPrettyBasicLine(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	got := sb.String()
	want := "Test.java:2:7: warning FinalLocalVariable: Variable 'a' should be declared final.\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyContextUnderline(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowContext: true})
	got := sb.String()
	if !strings.Contains(got, "  int a = 0;\n") {
		t.Fatalf("missing source line in output:\n%s", got)
	}
	if !strings.Contains(got, "^") {
		t.Fatalf("missing caret in output:\n%s", got)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d:\n%s", len(lines), got)
	}
	caretLine := lines[2]
	if idx := strings.IndexByte(caretLine, '^'); idx != 8 {
		// Two leading spaces of the printout plus six characters of the
		// source line put the caret under column 7.
		t.Fatalf("caret at byte %d, line %q", idx, caretLine)
	}
}

func TestPrettyFixAvailability(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("int a=1;\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New("WhitespaceAround",
		source.Span{File: id, Start: 5, End: 6},
		"Missing whitespace before '='.").
		WithFix(diag.FixAlways, diag.TextEdit{
			Span:    source.Span{File: id, Start: 5, End: 5},
			NewText: " ",
		}))
	bag.Sort()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowFixes: true})
	if !strings.Contains(sb.String(), "fix available (always)") {
		t.Fatalf("missing fix note:\n%s", sb.String())
	}
}
