package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

// Pretty formats diagnostics for a terminal. The bag is expected to be
// sorted already. Each diagnostic prints as
//
//	<path>:<line>:<col>: warning <Rule>: <message>
//
// followed, when ShowContext is on, by the source line and a caret
// underline covering the span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	bold := color.New(color.Bold)
	warn := color.New(color.FgYellow, color.Bold)
	ruleCol := color.New(color.FgCyan)
	caretCol := color.New(color.FgGreen, color.Bold)
	if !opts.Color {
		for _, c := range []*color.Color{bold, warn, ruleCol, caretCol} {
			c.DisableColor()
		}
	}

	baseDir := fs.BaseDir()
	for _, d := range bag.Items() {
		file := fs.Get(d.Span.File)
		if file == nil {
			continue
		}
		start, _ := fs.Resolve(d.Span)
		path := file.FormatPath(formatMode(opts.PathMode), baseDir)

		fmt.Fprintf(w, "%s %s %s %s\n",
			bold.Sprintf("%s:%d:%d:", path, start.Line, start.Col),
			warn.Sprint("warning"),
			ruleCol.Sprintf("%s:", d.Rule),
			d.Message)

		if opts.ShowFixes && d.Fix != nil {
			fmt.Fprintf(w, "  fix available (%s)\n", d.Fix.Applicability)
		}

		if !opts.ShowContext {
			continue
		}
		line := file.GetLine(start.Line)
		if line == "" {
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
		fmt.Fprintf(w, "  %s\n", caretCol.Sprint(underline(line, start.Col, d.Span.Len())))
	}
}

// underline builds a ^~~~ marker aligned under the span, using display
// widths so tabs and wide runes keep the caret in place.
func underline(line string, col uint32, spanLen uint32) string {
	var sb strings.Builder
	runes := []rune(line)
	idx := int(col) - 1
	for i := 0; i < idx && i < len(runes); i++ {
		if runes[i] == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(runes[i])))
	}
	sb.WriteByte('^')
	width := 0
	for i := idx; i < len(runes) && uint32(i-idx) < spanLen; i++ {
		width += runewidth.RuneWidth(runes[i])
	}
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}
