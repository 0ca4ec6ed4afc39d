package driver

import (
	"strings"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/rules"
	"github.com/eleventy7/jruff/internal/source"
	"github.com/eleventy7/jruff/internal/version"
)

// filePayload is the cached analysis outcome for one file. Spans are
// stored as byte offsets only: on restore they are rebound to the current
// FileID, so payloads survive FileSet reordering between runs.
type filePayload struct {
	Schema       uint16
	Unanalyzable bool
	Diags        []cachedDiag
}

type cachedDiag struct {
	Rule    string
	Message string
	Start   uint32
	End     uint32
	Order   int
	Fix     *cachedFix
}

type cachedFix struct {
	Applicability uint8
	Edits         []cachedEdit
}

type cachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
	OldText string
}

func buildFilePayload(result FileResult) *filePayload {
	payload := &filePayload{
		Schema:       fileCacheSchemaVersion,
		Unanalyzable: result.Unanalyzable,
		Diags:        make([]cachedDiag, 0, len(result.Diags)),
	}
	for _, d := range result.Diags {
		cached := cachedDiag{
			Rule:    d.Rule,
			Message: d.Message,
			Start:   d.Span.Start,
			End:     d.Span.End,
			Order:   d.Order,
		}
		if d.Fix != nil {
			fix := &cachedFix{
				Applicability: uint8(d.Fix.Applicability),
				Edits:         make([]cachedEdit, len(d.Fix.Edits)),
			}
			for i, edit := range d.Fix.Edits {
				fix.Edits[i] = cachedEdit{
					Start:   edit.Span.Start,
					End:     edit.Span.End,
					NewText: edit.NewText,
					OldText: edit.OldText,
				}
			}
			cached.Fix = fix
		}
		payload.Diags = append(payload.Diags, cached)
	}
	return payload
}

// restore rebuilds diagnostics against the FileID the file has in this
// run's FileSet.
func (p *filePayload) restore(fileID source.FileID) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(p.Diags))
	for _, cached := range p.Diags {
		d := diag.Diagnostic{
			Rule:    cached.Rule,
			Message: cached.Message,
			Span:    source.Span{File: fileID, Start: cached.Start, End: cached.End},
			Order:   cached.Order,
		}
		if cached.Fix != nil {
			fix := &diag.Fix{
				Applicability: diag.FixAvailability(cached.Fix.Applicability),
				Edits:         make([]diag.TextEdit, len(cached.Fix.Edits)),
			}
			for i, edit := range cached.Fix.Edits {
				fix.Edits[i] = diag.TextEdit{
					Span:    source.Span{File: fileID, Start: edit.Start, End: edit.End},
					NewText: edit.NewText,
					OldText: edit.OldText,
				}
			}
			d.Fix = fix
		}
		out = append(out, d)
	}
	return out
}

// rulesFingerprint identifies the rule catalog build: names in
// registration order plus the binary version, so a jruff upgrade or a
// catalog change invalidates cached results.
func rulesFingerprint() string {
	return version.Version + "/" + strings.Join(rules.Names(), ",")
}
