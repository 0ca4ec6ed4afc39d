package whitespace

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/source"
)

// ParenPad forbids horizontal padding inside parentheses: nothing after
// `(` and nothing before `)`. Parens split across lines pass, and an
// empty padded pair `( )` reports once, against the opening paren.
type ParenPad struct{}

func NewParenPad(props lint.Properties) lint.Rule {
	return &ParenPad{}
}

func (r *ParenPad) Name() string { return "ParenPad" }

func (r *ParenPad) Kinds() []string { return []string{"(", ")"} }

func (r *ParenPad) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	src := ctx.Src()
	switch n.Kind() {
	case "(":
		end := n.EndByte()
		run := horizontalRunAfter(src, end)
		if run == 0 {
			return nil
		}
		if int(end+run) >= len(src) || src[end+run] == '\n' || src[end+run] == '\r' {
			return nil
		}
		gap := source.Span{File: ctx.Tree.File(), Start: end, End: end + run}
		return []diag.Diagnostic{
			diag.New(r.Name(), n.Span(), "Unexpected whitespace after '('.").
				WithFix(diag.FixAlways, diag.TextEdit{Span: gap, OldText: string(src[end : end+run])}),
		}
	case ")":
		start := n.StartByte()
		run := horizontalRunBefore(src, start)
		if run == 0 {
			return nil
		}
		if start-run == 0 || src[start-run-1] == '\n' || src[start-run-1] == '\r' {
			return nil
		}
		// `( )` already reported on the opening side.
		if src[start-run-1] == '(' {
			return nil
		}
		gap := source.Span{File: ctx.Tree.File(), Start: start - run, End: start}
		return []diag.Diagnostic{
			diag.New(r.Name(), n.Span(), "Unexpected whitespace before ')'.").
				WithFix(diag.FixAlways, diag.TextEdit{Span: gap, OldText: string(src[start-run : start])}),
		}
	}
	return nil
}
