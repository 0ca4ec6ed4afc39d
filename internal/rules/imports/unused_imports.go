package imports

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/source"
)

// Javadoc references that keep an import alive: {@link Foo}, {@linkplain
// Foo}, {@value Foo}, and the @see/@throws/@exception block tags.
var (
	javadocInlineRe = regexp.MustCompile(`\{@(?:link|linkplain|value)\s+#?([A-Za-z_$][A-Za-z0-9_$]*)`)
	javadocBlockRe  = regexp.MustCompile(`@(?:see|throws|exception)\s+#?([A-Za-z_$][A-Za-z0-9_$]*)`)
)

// UnusedImports reports non-wildcard imports whose simple name is never
// referenced in the file. Wildcard imports are never reported: whether
// they are used cannot be decided without cross-file resolution.
type UnusedImports struct {
	processJavadoc bool
}

// NewUnusedImports constructs the rule from configuration properties.
// Recognized: processJavadoc (bool, default true).
func NewUnusedImports(props lint.Properties) lint.Rule {
	return &UnusedImports{
		processJavadoc: props.Bool("processJavadoc", true),
	}
}

func (r *UnusedImports) Name() string {
	return "UnusedImports"
}

// Kinds: the rule runs once per file, at the root.
func (r *UnusedImports) Kinds() []string {
	return []string{"program"}
}

func (r *UnusedImports) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	imports := collectImports(n)
	if len(imports) == 0 {
		return nil
	}

	refs := make(map[string]bool)
	collectReferences(n, refs)
	if r.processJavadoc {
		collectJavadocReferences(n, refs)
	}

	var out []diag.Diagnostic
	for _, imp := range imports {
		if imp.isWildcard || refs[imp.simpleName] {
			continue
		}
		d := diag.New(r.Name(), imp.span, fmt.Sprintf("Unused import - %s.", imp.path))
		out = append(out, d.WithFix(diag.FixAlways, deleteLineEdit(ctx, imp.span)))
	}
	return out
}

// collectJavadocReferences scans documentation comments for names used by
// javadoc tags.
func collectJavadocReferences(program cst.Node, refs map[string]bool) {
	cst.Walk(program, func(n cst.Node) bool {
		switch n.Kind() {
		case "block_comment", "comment":
		default:
			return true
		}
		text := n.Text()
		if !strings.HasPrefix(text, "/**") {
			return false
		}
		for _, m := range javadocInlineRe.FindAllStringSubmatch(text, -1) {
			refs[m[1]] = true
		}
		for _, m := range javadocBlockRe.FindAllStringSubmatch(text, -1) {
			refs[m[1]] = true
		}
		return false
	})
}

// deleteLineEdit removes the declaration's whole line, trailing newline
// included.
func deleteLineEdit(ctx *lint.Context, span source.Span) diag.TextEdit {
	src := ctx.Src()
	start := ctx.LineStart(span.Start)
	end := span.End
	for end < uint32(len(src)) && src[end] != '\n' {
		end++
	}
	if end < uint32(len(src)) {
		end++ // eat the newline
	}
	lineSpan := source.Span{File: span.File, Start: start, End: end}
	return diag.TextEdit{Span: lineSpan, OldText: string(src[start:end])}
}
