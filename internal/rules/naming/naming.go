// Package naming holds the identifier convention rules. Every rule is a
// regex match over one identifier class, configured through a single
// "format" property with a documented default pattern.
package naming

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/common"
)

// Default patterns, matching checkstyle's.
const (
	defaultPackageFormat  = `^[a-z]+(\.[a-zA-Z_]\w*)*$`
	defaultCamelFormat    = `^[a-z][a-zA-Z0-9]*$`
	defaultTypeFormat     = `^[A-Z][a-zA-Z0-9]*$`
	defaultConstantFormat = `^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`
)

// formatOf resolves the format property against a default pattern. A
// format that does not compile falls back to the rule's default.
func formatOf(props lint.Properties, def string) (match func(string) bool, pattern string) {
	re, str := props.Pattern("format", def)
	return re.MatchString, str
}

// nameViolation builds the standard naming diagnostic at the offending
// identifier. Naming rules carry no fixes: renaming needs cross-reference
// knowledge the linter does not have.
func nameViolation(rule string, name cst.Node, pattern string) diag.Diagnostic {
	return diag.New(rule, name.Span(),
		fmt.Sprintf("Name '%s' must match pattern '%s'.", name.Text(), pattern))
}

// fieldClass classifies a field-like declaration for the
// member/static/constant split. Interface and annotation fields are
// implicitly static final constants whether or not the modifiers are
// spelled out.
func fieldClass(n cst.Node) (isStatic, isFinal, isInterfaceConst bool) {
	isStatic = common.HasModifier(n, "static")
	isFinal = common.HasModifier(n, "final")
	if parent, ok := n.Parent(); ok {
		switch parent.Kind() {
		case "interface_body", "annotation_type_body":
			isInterfaceConst = true
		}
	}
	return isStatic, isFinal, isInterfaceConst
}

// declaratorViolations applies the pattern to every declarator name of a
// field or local declaration.
func declaratorViolations(rule string, n cst.Node, match func(string) bool, pattern string) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, declarator := range common.Declarators(n) {
		name, ok := common.DeclaratorName(declarator)
		if !ok {
			continue
		}
		// An unnamed variable has no name to hold to a convention.
		if name.Kind() == "underscore_pattern" {
			continue
		}
		if !match(name.Text()) {
			out = append(out, nameViolation(rule, name, pattern))
		}
	}
	return out
}
