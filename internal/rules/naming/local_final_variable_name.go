package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/common"
)

// LocalFinalVariableName checks local variables declared final, plus
// final enhanced-for variables and try-with-resources resources.
type LocalFinalVariableName struct {
	match   func(string) bool
	pattern string
}

func NewLocalFinalVariableName(props lint.Properties) lint.Rule {
	r := &LocalFinalVariableName{}
	r.match, r.pattern = formatOf(props, defaultCamelFormat)
	return r
}

func (r *LocalFinalVariableName) Name() string { return "LocalFinalVariableName" }

func (r *LocalFinalVariableName) Kinds() []string {
	return []string{"local_variable_declaration", "enhanced_for_statement", "resource"}
}

func (r *LocalFinalVariableName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	switch n.Kind() {
	case "enhanced_for_statement":
		if !common.HasModifier(n, "final") {
			return nil
		}
		name, ok := n.ChildByFieldName("name")
		if !ok || name.Kind() != "identifier" {
			return nil
		}
		if r.match(name.Text()) {
			return nil
		}
		return []diag.Diagnostic{nameViolation(r.Name(), name, r.pattern)}
	case "resource":
		name, ok := n.ChildByFieldName("name")
		if !ok || name.Kind() != "identifier" {
			return nil
		}
		if r.match(name.Text()) {
			return nil
		}
		return []diag.Diagnostic{nameViolation(r.Name(), name, r.pattern)}
	}
	if !common.HasModifier(n, "final") {
		return nil
	}
	return declaratorViolations(r.Name(), n, r.match, r.pattern)
}
