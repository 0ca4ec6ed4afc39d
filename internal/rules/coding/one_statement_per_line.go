package coding

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

const msgOneStatement = "Only one statement per line allowed."

// simpleStatementKinds are the statements the rule counts. Compound
// statements (if, loops, blocks) are exempt; only their simple parts are.
var simpleStatementKinds = map[string]bool{
	"local_variable_declaration": true,
	"field_declaration":          true,
	"expression_statement":       true,
	"return_statement":           true,
	"throw_statement":            true,
	"break_statement":            true,
	"continue_statement":         true,
	"assert_statement":           true,
	"yield_statement":            true,
	"do_statement":               true,
}

// OneStatementPerLine reports a simple statement that begins on the line
// where the previous simple-statement sibling ended. Statements in a for
// header are exempt. With treatTryResourcesAsStatement, two resources of
// one resource specification on one line violate the same way.
type OneStatementPerLine struct {
	treatTryResourcesAsStatement bool
}

// NewOneStatementPerLine constructs the rule from configuration
// properties. Recognized: treatTryResourcesAsStatement (bool, default
// false).
func NewOneStatementPerLine(props lint.Properties) lint.Rule {
	return &OneStatementPerLine{
		treatTryResourcesAsStatement: props.Bool("treatTryResourcesAsStatement", false),
	}
}

func (r *OneStatementPerLine) Name() string {
	return "OneStatementPerLine"
}

func (r *OneStatementPerLine) Kinds() []string {
	return []string{
		"local_variable_declaration",
		"field_declaration",
		"expression_statement",
		"return_statement",
		"throw_statement",
		"break_statement",
		"continue_statement",
		"assert_statement",
		"yield_statement",
		"do_statement",
		"resource",
	}
}

func (r *OneStatementPerLine) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	if n.Kind() == "resource" {
		if !r.treatTryResourcesAsStatement {
			return nil
		}
		return r.checkAgainstPrev(ctx, n, func(prev cst.Node) bool {
			return prev.Kind() == "resource"
		})
	}

	if parent, ok := n.Parent(); ok && parent.Kind() == "for_statement" {
		return nil
	}
	return r.checkAgainstPrev(ctx, n, func(prev cst.Node) bool {
		return simpleStatementKinds[prev.Kind()]
	})
}

func (r *OneStatementPerLine) checkAgainstPrev(ctx *lint.Context, n cst.Node, accept func(cst.Node) bool) []diag.Diagnostic {
	prev, ok := n.PrevNamedSibling()
	if !ok || !accept(prev) {
		return nil
	}
	if prev.EndByte() == 0 || ctx.Line(prev.EndByte()-1) != ctx.Line(n.StartByte()) {
		return nil
	}

	d := diag.New(r.Name(), n.Span(), msgOneStatement)
	// Break the line before the second statement, keeping the previous
	// statement's indentation.
	at := n.Span().ZeroideToStart()
	return []diag.Diagnostic{d.WithFix(diag.FixAlways, diag.TextEdit{
		Span:    at,
		NewText: "\n" + ctx.Indent(prev.StartByte()),
	})}
}
