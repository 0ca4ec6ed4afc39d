package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

// LocationJSON is a resolved position range inside one file.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line"`
	Column    uint32 `json:"column"`
	EndLine   uint32 `json:"end_line"`
	EndColumn uint32 `json:"end_column"`
}

// FixEditJSON is one text edit of a fix.
type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

// FixJSON is a machine-readable fix suggestion.
type FixJSON struct {
	Applicability string        `json:"applicability"`
	Edits         []FixEditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON is one rendered diagnostic.
type DiagnosticJSON struct {
	Rule     string       `json:"rule"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Fix      *FixJSON     `json:"fix,omitempty"`
}

// DiagnosticsOutput is the root of the JSON report.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode) LocationJSON {
	f := fs.Get(span.File)
	var path string
	if f != nil {
		baseDir := ""
		if pathMode == PathModeRelative {
			baseDir = fs.BaseDir()
		}
		path = f.FormatPath(formatMode(pathMode), baseDir)
	}
	start, end := fs.Resolve(span)
	return LocationJSON{
		File:      path,
		StartByte: span.Start,
		EndByte:   span.End,
		Line:      start.Line,
		Column:    start.Col,
		EndLine:   end.Line,
		EndColumn: end.Col,
	}
}

// BuildDiagnosticsOutput assembles the JSON report without serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		rendered := DiagnosticJSON{
			Rule:     d.Rule,
			Message:  d.Message,
			Location: makeLocation(d.Span, fs, opts.PathMode),
		}
		if opts.IncludeFixes && d.Fix != nil {
			fixJSON := &FixJSON{
				Applicability: d.Fix.Applicability.String(),
				Edits:         make([]FixEditJSON, len(d.Fix.Edits)),
			}
			for k, edit := range d.Fix.Edits {
				editJSON := FixEditJSON{
					Location: makeLocation(edit.Span, fs, opts.PathMode),
					NewText:  edit.NewText,
					OldText:  edit.OldText,
				}
				if opts.IncludePreviews {
					if preview, err := buildFixEditPreview(fs, edit); err == nil {
						editJSON.BeforeLines = append([]string(nil), preview.before...)
						editJSON.AfterLines = append([]string(nil), preview.after...)
					}
				}
				fixJSON.Edits[k] = editJSON
			}
			rendered.Fix = fixJSON
		}
		diagnostics = append(diagnostics, rendered)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
