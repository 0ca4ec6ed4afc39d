package imports_test

import (
	"reflect"
	"testing"

	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/imports"
	"github.com/eleventy7/jruff/internal/testkit"
)

func check(t *testing.T, src string, props lint.Properties) []string {
	t.Helper()
	bag, _, err := testkit.Analyze(src, imports.NewUnusedImports(props))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Message)
	}
	return out
}

func TestUnusedImports(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "used import clean",
			src:  "import java.util.List;\nclass T {\n  List<String> xs;\n}\n",
			want: nil,
		},
		{
			name: "unused import reported",
			src:  "import java.util.Map;\nclass T {\n}\n",
			want: []string{"Unused import - java.util.Map."},
		},
		{
			name: "wildcard never reported",
			src:  "import java.util.*;\nclass T {\n}\n",
			want: nil,
		},
		{
			name: "static import used",
			src:  "import static java.lang.Math.max;\nclass T {\n  int m() {\n    return max(1, 2);\n  }\n}\n",
			want: nil,
		},
		{
			name: "static import unused",
			src:  "import static java.lang.Math.min;\nclass T {\n}\n",
			want: []string{"Unused import - java.lang.Math.min."},
		},
		{
			name: "mixed reports only the dead ones",
			src: `import java.util.List;
import java.util.Map;
import java.util.Set;
class T {
  List<String> a;
  Set<String> b;
}
`,
			want: []string{"Unused import - java.util.Map."},
		},
		{
			name: "name in import path alone does not count as use",
			src:  "import java.util.List;\nclass T {\n  int util;\n}\n",
			want: []string{"Unused import - java.util.List."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := check(t, tt.src, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diagnostics:\n got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestUnusedImportsJavadoc(t *testing.T) {
	src := `import java.util.List;

/**
 * Builds things.
 *
 * @see List
 */
class T {
}
`
	if got := check(t, src, nil); got != nil {
		t.Errorf("javadoc reference reported: %v", got)
	}

	props := lint.Properties{"processJavadoc": "false"}
	want := []string{"Unused import - java.util.List."}
	if got := check(t, src, props); !reflect.DeepEqual(got, want) {
		t.Errorf("javadoc disabled:\n got %v\nwant %v", got, want)
	}
}

func TestUnusedImportsInlineLink(t *testing.T) {
	src := `import java.util.Map;

/** Returns a {@link Map} of results. */
class T {
}
`
	if got := check(t, src, nil); got != nil {
		t.Errorf("inline link reference reported: %v", got)
	}
}

func TestUnusedImportsFixDeletesLine(t *testing.T) {
	src := "import java.util.Map;\nclass T {\n}\n"
	bag, _, err := testkit.Analyze(src, imports.NewUnusedImports(nil))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Fix == nil {
		t.Fatalf("expected one fixable diagnostic, got %v", items)
	}
	edit := items[0].Fix.Edits[0]
	if edit.NewText != "" {
		t.Errorf("fix inserts %q, want deletion", edit.NewText)
	}
	if edit.OldText != "import java.util.Map;\n" {
		t.Errorf("fix removes %q, want the whole line", edit.OldText)
	}
}
