package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// PackageName checks the package declaration against the format pattern.
// The whole dotted name is matched as one string.
type PackageName struct {
	match   func(string) bool
	pattern string
}

func NewPackageName(props lint.Properties) lint.Rule {
	r := &PackageName{}
	r.match, r.pattern = formatOf(props, defaultPackageFormat)
	return r
}

func (r *PackageName) Name() string { return "PackageName" }

func (r *PackageName) Kinds() []string { return []string{"package_declaration"} }

func (r *PackageName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	for _, child := range n.NamedChildren() {
		switch child.Kind() {
		case "identifier", "scoped_identifier":
			if !r.match(child.Text()) {
				return []diag.Diagnostic{nameViolation(r.Name(), child, r.pattern)}
			}
			return nil
		}
	}
	return nil
}
