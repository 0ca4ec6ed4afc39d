package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

func TestJSONShape(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Rule != "FinalLocalVariable" {
		t.Errorf("rule = %q", d.Rule)
	}
	if d.Location.Line != 2 || d.Location.Column != 7 {
		t.Errorf("position = %d:%d, want 2:7", d.Location.Line, d.Location.Column)
	}
	if d.Fix != nil {
		t.Errorf("unexpected fix in output")
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("a b c\n"))
	bag := diag.NewBag(0)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.New("RuleA", source.Span{File: id, Start: i, End: i + 1}, "m"))
	}
	bag.Sort()

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
}

func TestJSONIncludesFixEdits(t *testing.T) {
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

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeFixes: true})
	d := out.Diagnostics[0]
	if d.Fix == nil {
		t.Fatal("fix missing")
	}
	if d.Fix.Applicability != "always" {
		t.Errorf("applicability = %q", d.Fix.Applicability)
	}
	if len(d.Fix.Edits) != 1 || d.Fix.Edits[0].NewText != " " {
		t.Errorf("edits = %+v", d.Fix.Edits)
	}
}

func TestSarifShape(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	err := Sarif(&sb, bag, fs, SarifRunMeta{ToolName: "jruff", ToolVersion: "0.1.0"})
	if err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	var log map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &log); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if log["version"] != "2.1.0" {
		t.Errorf("version = %v", log["version"])
	}
	if !strings.Contains(sb.String(), `"ruleId": "FinalLocalVariable"`) {
		t.Errorf("missing result:\n%s", sb.String())
	}
	if !strings.Contains(sb.String(), `"level": "warning"`) {
		t.Errorf("missing level:\n%s", sb.String())
	}
}

func TestSummaryCounts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("a b c d\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New("RuleB", source.Span{File: id, Start: 0, End: 1}, "m"))
	bag.Add(diag.New("RuleA", source.Span{File: id, Start: 2, End: 3}, "m"))
	bag.Add(diag.New("RuleA", source.Span{File: id, Start: 4, End: 5}, "m"))
	bag.Sort()

	var sb strings.Builder
	Summary(&sb, bag)
	got := sb.String()
	if !strings.Contains(got, "RuleA") || !strings.Contains(got, "RuleB") {
		t.Fatalf("missing rules:\n%s", got)
	}
	if strings.Index(got, "RuleA") > strings.Index(got, "RuleB") {
		t.Errorf("rules not alphabetical:\n%s", got)
	}
}
