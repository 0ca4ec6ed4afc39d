package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// MethodName checks method names. Constructors are a separate node kind
// and never reach this rule.
type MethodName struct {
	match   func(string) bool
	pattern string
}

func NewMethodName(props lint.Properties) lint.Rule {
	r := &MethodName{}
	r.match, r.pattern = formatOf(props, defaultCamelFormat)
	return r
}

func (r *MethodName) Name() string { return "MethodName" }

func (r *MethodName) Kinds() []string { return []string{"method_declaration"} }

func (r *MethodName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	name, ok := n.ChildByFieldName("name")
	if !ok {
		return nil
	}
	if r.match(name.Text()) {
		return nil
	}
	return []diag.Diagnostic{nameViolation(r.Name(), name, r.pattern)}
}
