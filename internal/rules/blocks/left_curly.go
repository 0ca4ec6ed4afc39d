package blocks

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/source"
)

// LeftCurly checks where the opening brace of a body lands. The "option"
// property picks the style: "eol" (default) wants the brace at the end of
// the line that introduces the body, "nl" wants it alone on the next line.
type LeftCurly struct {
	requireNewline bool
}

func NewLeftCurly(props lint.Properties) lint.Rule {
	return &LeftCurly{
		requireNewline: props.String("option", "eol") == "nl",
	}
}

func (r *LeftCurly) Name() string { return "LeftCurly" }

func (r *LeftCurly) Kinds() []string {
	return []string{
		"class_body",
		"interface_body",
		"enum_body",
		"annotation_type_body",
		"constructor_body",
		"switch_block",
		"block",
	}
}

func (r *LeftCurly) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	if n.Kind() == "block" && !attachedBlock(n) {
		return nil
	}
	brace, ok := openBrace(n)
	if !ok {
		return nil
	}
	src := ctx.Src()
	start := brace.StartByte()
	onOwnLine := isAtLineStart(src, start)
	col := ctx.LineCol(start).Col

	if r.requireNewline {
		if onOwnLine {
			return nil
		}
		return []diag.Diagnostic{diag.New(r.Name(), brace.Span(),
			fmt.Sprintf("'{' at column %d should be on a new line.", col))}
	}

	if !onOwnLine {
		return nil
	}
	msg := fmt.Sprintf("'{' at column %d should be on the previous line.", col)
	d := diag.New(r.Name(), brace.Span(), msg)
	// Joining the brace up is safe only when nothing but whitespace sits
	// between it and the previous line's last token.
	gapStart := start
	clean := true
	for gapStart > 0 {
		b := src[gapStart-1]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			gapStart--
			continue
		}
		break
	}
	if gapStart == 0 {
		clean = false
	}
	if clean {
		gap := source.Span{File: ctx.Tree.File(), Start: gapStart, End: start}
		d = d.WithFix(diag.FixSometimes, diag.TextEdit{
			Span:    gap,
			NewText: " ",
			OldText: string(src[gapStart:start]),
		})
	}
	return []diag.Diagnostic{d}
}

// attachedBlock reports whether a statement block hangs off a construct
// that expects an attached brace. Free-standing blocks and lambda bodies
// can put their brace wherever they like.
func attachedBlock(n cst.Node) bool {
	parent, ok := n.Parent()
	if !ok {
		return false
	}
	switch parent.Kind() {
	case "method_declaration",
		"if_statement",
		"for_statement",
		"enhanced_for_statement",
		"while_statement",
		"do_statement",
		"try_statement",
		"try_with_resources_statement",
		"catch_clause",
		"finally_clause",
		"synchronized_statement",
		"labeled_statement":
		return true
	}
	return false
}

// isAtLineStart reports whether only indentation precedes off on its line.
func isAtLineStart(src []byte, off uint32) bool {
	for off > 0 {
		b := src[off-1]
		if b == '\n' || b == '\r' {
			return true
		}
		if b != ' ' && b != '\t' {
			return false
		}
		off--
	}
	return true
}
