package whitespace

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// WhitespaceAfter requires a space after commas, statement semicolons, and
// the closing parenthesis of a cast.
type WhitespaceAfter struct{}

func NewWhitespaceAfter(props lint.Properties) lint.Rule {
	return &WhitespaceAfter{}
}

func (r *WhitespaceAfter) Name() string { return "WhitespaceAfter" }

func (r *WhitespaceAfter) Kinds() []string { return []string{",", ";", ")"} }

func (r *WhitespaceAfter) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	src := ctx.Src()
	end := n.EndByte()
	switch n.Kind() {
	case ")":
		parent, ok := n.Parent()
		if !ok || parent.Kind() != "cast_expression" {
			return nil
		}
	case ";":
		if atLineEnd(src, end) {
			return nil
		}
		// The trailing `;` of a for header sits right before `)`.
		if int(end) < len(src) && src[end] == ')' {
			return nil
		}
	case ",":
		if atLineEnd(src, end) {
			return nil
		}
	}
	if wsAfter(src, end) {
		return nil
	}
	return []diag.Diagnostic{
		diag.New(r.Name(), n.Span(),
			fmt.Sprintf("Missing whitespace after '%s'.", n.Text())).
			WithFix(diag.FixAlways, diag.TextEdit{Span: n.Span().ZeroideToEnd(), NewText: " "}),
	}
}
