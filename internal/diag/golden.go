package diag

import (
	"fmt"
	"strings"

	"github.com/eleventy7/jruff/internal/source"
)

// FormatShortDiagnostics renders diagnostics into a stable, one-line-per-entry
// representation used by the CLI short format and by golden tests.
// Each line reads "path:line:col RuleName message". The input is expected to
// be sorted already (Bag.Sort); no reordering happens here.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range diags {
		file := fs.Get(d.Span.File)
		start := fs.ResolveStart(d.Span)
		path := file.FormatPath("relative", fs.BaseDir())
		fmt.Fprintf(&b, "%s:%d:%d %s %s", path, start.Line, start.Col, d.Rule, sanitizeMessage(d.Message))
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
