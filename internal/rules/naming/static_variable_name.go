package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// StaticVariableName checks static non-final fields. Static final fields
// are constants and go to ConstantName.
type StaticVariableName struct {
	match   func(string) bool
	pattern string
}

func NewStaticVariableName(props lint.Properties) lint.Rule {
	r := &StaticVariableName{}
	r.match, r.pattern = formatOf(props, defaultCamelFormat)
	return r
}

func (r *StaticVariableName) Name() string { return "StaticVariableName" }

func (r *StaticVariableName) Kinds() []string { return []string{"field_declaration"} }

func (r *StaticVariableName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	isStatic, isFinal, isInterfaceConst := fieldClass(n)
	if !isStatic || isFinal || isInterfaceConst {
		return nil
	}
	return declaratorViolations(r.Name(), n, r.match, r.pattern)
}
