package whitespace

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/source"
)

// NoWhitespaceAfter forbids horizontal whitespace after annotation `@`,
// unary operators, prefix increment and decrement, and member-access dots.
// A line break after the token passes; wrapping is not this rule's
// business.
type NoWhitespaceAfter struct{}

func NewNoWhitespaceAfter(props lint.Properties) lint.Rule {
	return &NoWhitespaceAfter{}
}

func (r *NoWhitespaceAfter) Name() string { return "NoWhitespaceAfter" }

func (r *NoWhitespaceAfter) Kinds() []string {
	return []string{"@", "-", "+", "!", "~", "++", "--", "."}
}

func (r *NoWhitespaceAfter) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	parent, ok := n.Parent()
	if !ok {
		return nil
	}
	switch n.Kind() {
	case "@":
		switch parent.Kind() {
		case "annotation", "marker_annotation":
		default:
			return nil
		}
	case "-", "+", "!", "~":
		if parent.Kind() != "unary_expression" {
			return nil
		}
	case "++", "--":
		// Only the prefix form: the token opens its parent.
		if parent.Kind() != "update_expression" || n.StartByte() != parent.StartByte() {
			return nil
		}
	case ".":
		switch parent.Kind() {
		case "field_access", "method_invocation":
		default:
			return nil
		}
	}

	src := ctx.Src()
	end := n.EndByte()
	run := horizontalRunAfter(src, end)
	if run == 0 {
		return nil
	}
	// A break after the token is line wrapping, not padding.
	if int(end+run) >= len(src) || src[end+run] == '\n' || src[end+run] == '\r' {
		return nil
	}
	gap := source.Span{File: ctx.Tree.File(), Start: end, End: end + run}
	return []diag.Diagnostic{
		diag.New(r.Name(), n.Span(),
			fmt.Sprintf("Unexpected whitespace after '%s'.", n.Text())).
			WithFix(diag.FixAlways, diag.TextEdit{Span: gap, OldText: string(src[end : end+run])}),
	}
}
