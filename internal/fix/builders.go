package fix

import (
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

// InsertText builds an edit inserting text at a position (Start == End).
func InsertText(at source.Span, text string) diag.TextEdit {
	return diag.TextEdit{
		Span:    at.ZeroideToStart(),
		NewText: text,
	}
}

// DeleteSpan builds an edit removing the text covered by span. The expect
// string guards against the file having changed since analysis.
func DeleteSpan(span source.Span, expect string) diag.TextEdit {
	return diag.TextEdit{
		Span:    span,
		OldText: expect,
	}
}

// ReplaceSpan builds an edit replacing the text covered by span.
func ReplaceSpan(span source.Span, newText, expect string) diag.TextEdit {
	return diag.TextEdit{
		Span:    span,
		NewText: newText,
		OldText: expect,
	}
}

// WrapWith builds a pair of insertions surrounding a span.
func WrapWith(span source.Span, prefix, suffix string) []diag.TextEdit {
	return []diag.TextEdit{
		{Span: source.Span{File: span.File, Start: span.Start, End: span.Start}, NewText: prefix},
		{Span: source.Span{File: span.File, Start: span.End, End: span.End}, NewText: suffix},
	}
}
