package whitespace

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// WhitespaceAround requires a space on both sides of binary and assignment
// operators, ternary tokens, block braces, and statement keywords. A token
// at the start or end of its line passes on that side, since the newline
// is whitespace.
type WhitespaceAround struct{}

func NewWhitespaceAround(props lint.Properties) lint.Rule {
	return &WhitespaceAround{}
}

func (r *WhitespaceAround) Name() string { return "WhitespaceAround" }

var assignOps = []string{
	"=", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<=", ">>=", ">>>=",
}

var binaryOps = []string{
	"+", "-", "*", "/", "%",
	"<", ">", "<=", ">=", "==", "!=",
	"&&", "||", "&", "|", "^",
	"<<", ">>", ">>>",
}

var aroundKeywords = []string{
	"if", "else", "try", "catch", "finally", "synchronized",
	"return", "assert", "do", "while", "for", "switch",
}

func (r *WhitespaceAround) Kinds() []string {
	kinds := make([]string, 0, len(assignOps)+len(binaryOps)+len(aroundKeywords)+4)
	kinds = append(kinds, assignOps...)
	kinds = append(kinds, binaryOps...)
	kinds = append(kinds, "?", ":", "{", "}")
	kinds = append(kinds, aroundKeywords...)
	return kinds
}

func (r *WhitespaceAround) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	if !r.inScope(n) {
		return nil
	}
	src := ctx.Src()
	start, end := n.StartByte(), n.EndByte()

	// Adjacent brace pairs stay quiet: an empty body is not a spacing
	// problem this rule should flood with two reports.
	if n.Kind() == "{" && int(end) < len(src) && src[end] == '}' {
		return nil
	}
	if n.Kind() == "}" {
		if start > 0 && src[start-1] == '{' {
			return nil
		}
		// A closing brace glued to statement punctuation is fine:
		// `new Runnable(){};` and `}.run()` read as intended.
		if int(end) < len(src) {
			switch src[end] {
			case ';', ')', ',', '.':
				return nil
			}
		}
	}

	tok := n.Text()
	var out []diag.Diagnostic
	if !wsBefore(src, start) {
		out = append(out, diag.New(r.Name(), n.Span(),
			fmt.Sprintf("Missing whitespace before '%s'.", tok)).
			WithFix(diag.FixAlways, diag.TextEdit{Span: n.Span().ZeroideToStart(), NewText: " "}))
	}
	if !wsAfter(src, end) {
		out = append(out, diag.New(r.Name(), n.Span(),
			fmt.Sprintf("Missing whitespace after '%s'.", tok)).
			WithFix(diag.FixAlways, diag.TextEdit{Span: n.Span().ZeroideToEnd(), NewText: " "}))
	}
	return out
}

// inScope filters tokens by their parent so that, for example, the "<" of
// a generic argument list or the "*" of a wildcard import never count as
// operators.
func (r *WhitespaceAround) inScope(n cst.Node) bool {
	parent, ok := n.Parent()
	if !ok {
		return false
	}
	pk := parent.Kind()
	switch n.Kind() {
	case "=":
		return pk == "assignment_expression" || pk == "variable_declarator"
	case "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", ">>>=":
		return pk == "assignment_expression"
	case "+", "-", "*", "/", "%", "<", ">", "<=", ">=", "==", "!=",
		"&&", "||", "&", "|", "^", "<<", ">>", ">>>":
		return pk == "binary_expression"
	case "?":
		return pk == "ternary_expression"
	case ":":
		return pk == "ternary_expression" || pk == "assert_statement"
	case "{", "}":
		return blockBodyKind(pk)
	case "return":
		// A bare `return;` has nothing to separate from.
		return len(parent.NamedChildren()) > 0
	default:
		return true
	}
}

// blockBodyKind reports whether a parent kind is a statement or
// declaration body whose braces this rule polices. Array and annotation
// value initializers are deliberately not in the list.
func blockBodyKind(kind string) bool {
	switch kind {
	case "block", "constructor_body", "class_body", "interface_body",
		"enum_body", "enum_body_declarations", "annotation_type_body",
		"static_initializer", "switch_block":
		return true
	}
	return false
}
