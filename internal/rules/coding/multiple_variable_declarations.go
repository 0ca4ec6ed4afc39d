// Package coding holds statement-shape rules: one declaration per
// statement and one statement per line.
package coding

import (
	"strings"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/common"
	"github.com/eleventy7/jruff/internal/source"
)

const (
	msgOwnStatement = "Each variable declaration must be in its own statement."
	msgOnePerLine   = "Only one variable definition per line allowed."
)

// MultipleVariableDeclarations reports comma-joined declarators in one
// statement and declaration statements sharing a line. Declarations in a
// for initializer are exempt from both.
type MultipleVariableDeclarations struct{}

// NewMultipleVariableDeclarations constructs the rule; it has no
// recognized properties.
func NewMultipleVariableDeclarations(lint.Properties) lint.Rule {
	return &MultipleVariableDeclarations{}
}

func (r *MultipleVariableDeclarations) Name() string {
	return "MultipleVariableDeclarations"
}

func (r *MultipleVariableDeclarations) Kinds() []string {
	return []string{"local_variable_declaration", "field_declaration"}
}

func (r *MultipleVariableDeclarations) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	if parent, ok := n.Parent(); ok && parent.Kind() == "for_statement" {
		return nil
	}

	var out []diag.Diagnostic
	declarators := common.Declarators(n)
	if len(declarators) > 1 {
		out = append(out, r.splitViolation(ctx, n, declarators))
	}
	if d, ok := r.sameLineViolation(ctx, n); ok {
		out = append(out, d)
	}
	return out
}

// splitViolation flags the whole statement and offers a fix that rewrites
// it into one statement per declarator, reusing the modifiers/type text and
// the statement's line indentation.
func (r *MultipleVariableDeclarations) splitViolation(ctx *lint.Context, n cst.Node, declarators []cst.Node) diag.Diagnostic {
	d := diag.New(r.Name(), n.Span(), msgOwnStatement)

	src := ctx.Src()
	start := n.StartByte()
	prefix := string(src[start:declarators[0].StartByte()])
	indent := ctx.Indent(start)

	pieces := make([]string, 0, len(declarators))
	for _, declarator := range declarators {
		pieces = append(pieces, prefix+declarator.Text()+";")
	}
	return d.WithFix(diag.FixAlways, diag.TextEdit{
		Span:    n.Span(),
		NewText: strings.Join(pieces, "\n"+indent),
		OldText: n.Text(),
	})
}

// sameLineViolation flags a declaration statement that begins on the line
// where the previous declaration sibling ended.
func (r *MultipleVariableDeclarations) sameLineViolation(ctx *lint.Context, n cst.Node) (diag.Diagnostic, bool) {
	prev, ok := n.PrevNamedSibling()
	if !ok || prev.Kind() != n.Kind() {
		return diag.Diagnostic{}, false
	}
	if prev.EndByte() == 0 || ctx.Line(prev.EndByte()-1) != ctx.Line(n.StartByte()) {
		return diag.Diagnostic{}, false
	}

	d := diag.New(r.Name(), n.Span(), msgOnePerLine)
	indent := ctx.Indent(prev.StartByte())
	between := string(ctx.Src()[prev.EndByte():n.StartByte()])
	if strings.Trim(between, " \t") == "" {
		gap := source.Span{File: ctx.Tree.File(), Start: prev.EndByte(), End: n.StartByte()}
		return d.WithFix(diag.FixAlways, diag.TextEdit{
			Span:    gap,
			NewText: "\n" + indent,
			OldText: between,
		}), true
	}
	// Comments between the statements: insert instead of replacing.
	at := n.Span().ZeroideToStart()
	return d.WithFix(diag.FixAlways, diag.TextEdit{Span: at, NewText: "\n" + indent}), true
}
