package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/common"
)

// LocalVariableName checks non-final local variables, including for-loop
// initializers and enhanced-for variables.
type LocalVariableName struct {
	match   func(string) bool
	pattern string
}

func NewLocalVariableName(props lint.Properties) lint.Rule {
	r := &LocalVariableName{}
	r.match, r.pattern = formatOf(props, defaultCamelFormat)
	return r
}

func (r *LocalVariableName) Name() string { return "LocalVariableName" }

func (r *LocalVariableName) Kinds() []string {
	return []string{"local_variable_declaration", "enhanced_for_statement"}
}

func (r *LocalVariableName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	if n.Kind() == "enhanced_for_statement" {
		if common.HasModifier(n, "final") {
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
	}
	if common.HasModifier(n, "final") {
		return nil
	}
	return declaratorViolations(r.Name(), n, r.match, r.pattern)
}
