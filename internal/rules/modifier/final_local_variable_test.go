package modifier_test

import (
	"reflect"
	"testing"

	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/modifier"
	"github.com/eleventy7/jruff/internal/testkit"
)

func finality(t *testing.T, src string, props lint.Properties) []string {
	t.Helper()
	bag, _, err := testkit.Analyze(src, modifier.NewFinalLocalVariable(props))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Message)
	}
	return out
}

func inMethod(body string) string {
	return "class T {\n  void m() {\n" + body + "\n  }\n}\n"
}

func TestFinalLocalVariable(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "initialized never reassigned",
			src:  inMethod("int a = 0;"),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "declared never assigned",
			src:  inMethod("int a;"),
			want: nil,
		},
		{
			name: "declared then assigned once",
			src:  inMethod("int a;\na = 1;"),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "initialized then reassigned",
			src:  inMethod("int a = 0;\na = 1;"),
			want: nil,
		},
		{
			name: "assigned twice without initializer",
			src:  inMethod("int a;\na = 1;\na = 2;"),
			want: nil,
		},
		{
			name: "already final",
			src:  inMethod("final int a = 0;"),
			want: nil,
		},
		{
			name: "compound assignment counts",
			src:  inMethod("int a = 0;\na += 1;"),
			want: nil,
		},
		{
			name: "increment counts",
			src:  inMethod("int a = 0;\na++;"),
			want: nil,
		},
		{
			name: "prefix decrement counts",
			src:  inMethod("int a = 0;\n--a;"),
			want: nil,
		},
		{
			name: "field target does not count",
			src:  inMethod("int a = 0;\nthis.a = 1;"),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "array element target does not count",
			src:  inMethod("int[] a = new int[2];\na[0] = 1;"),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "multiple declarators reported independently",
			src:  inMethod("int a = 1, b;\nb = 2;"),
			want: []string{
				"Variable 'a' should be declared final.",
				"Variable 'b' should be declared final.",
			},
		},
		{
			name: "for initializer excluded",
			src:  inMethod("for (int i = 0; i < 3; i++) {\n}"),
			want: nil,
		},
		{
			name: "method parameter not a candidate",
			src:  "class T {\n  void m(int p) {\n    p = 1;\n  }\n}\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finality(t, tt.src, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diagnostics:\n got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestFinalLocalVariableMergeOrderIsDeterministic(t *testing.T) {
	// Many candidates all touched inside the same pair of alternatives,
	// so the branch merge processes a full set every run.
	src := inMethod(`int a; int b; int c; int d; int e; int f;
    if (cond()) {
      a = 1; b = 1; c = 1; d = 1; e = 1; f = 1;
    } else {
      a = 2; b = 2; c = 2; d = 2; e = 2; f = 2;
    }`)

	first := finality(t, src, nil)
	if len(first) != 6 {
		t.Fatalf("got %d diagnostics, want all six variables reported: %v", len(first), first)
	}
	for run := 0; run < 5; run++ {
		if got := finality(t, src, nil); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged:\n got %v\nwant %v", run, got, first)
		}
	}
}

func TestFinalLocalVariableBranching(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "if else assign once each merges to single",
			src: inMethod(`int a;
if (x()) {
  a = 1;
} else {
  a = 2;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "if without else assigns once",
			src: inMethod(`int a;
if (x()) {
  a = 1;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "branch assignment then unconditional assignment",
			src: inMethod(`int a;
if (x()) {
  a = 1;
}
a = 2;`),
			want: nil,
		},
		{
			name: "double assignment inside one branch disqualifies",
			src: inMethod(`int a;
if (x()) {
  a = 1;
  a = 2;
}`),
			want: nil,
		},
		{
			name: "else if chain assigning once per arm",
			src: inMethod(`int a;
if (x()) {
  a = 1;
} else if (y()) {
  a = 2;
} else {
  a = 3;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "switch groups assign once each",
			src: inMethod(`int a;
switch (k()) {
case 1:
  a = 1;
  break;
default:
  a = 2;
  break;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "switch rule arms assign once each",
			src: inMethod(`int a;
switch (k()) {
case 1 -> a = 1;
default -> a = 2;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "try body and catch both assign",
			src: inMethod(`int a;
try {
  a = 1;
} catch (Exception e) {
  a = 2;
}`),
			want: nil,
		},
		{
			name: "assignment only in catch clauses merges to single",
			src: inMethod(`int a;
try {
  x();
} catch (Exception e) {
  a = 1;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "finally assignment after branch assignment disqualifies",
			src: inMethod(`int a;
try {
  a = 1;
} finally {
  a = 2;
}`),
			want: nil,
		},
		{
			name: "loop body single assignment stays single",
			src: inMethod(`int a;
while (x()) {
  a = 1;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finality(t, tt.src, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diagnostics:\n got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestFinalLocalVariableScopes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "inner declaration shadows outer",
			src: inMethod(`int a = 0;
{
  int a = 1;
  a = 2;
}`),
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "inner assignment reaches outer candidate",
			src: inMethod(`int a = 0;
{
  a = 1;
}`),
			want: nil,
		},
		{
			name: "lambda body assignment reaches outer candidate",
			src: inMethod("int a = 0;\nRunnable r = () -> {\n  a = 1;\n};"),
			want: []string{"Variable 'r' should be declared final."},
		},
		{
			name: "lambda parameter is not a candidate",
			src:  inMethod("java.util.function.IntUnaryOperator f = a -> a + 1;"),
			want: []string{"Variable 'f' should be declared final."},
		},
		{
			name: "catch parameter is not a candidate",
			src: inMethod(`try {
  x();
} catch (Exception e) {
  y(e);
}`),
			want: nil,
		},
		{
			name: "try with resources variable is not a candidate",
			src: inMethod(`try (java.io.Reader r = open()) {
  y(r);
}`),
			want: nil,
		},
		{
			name: "anonymous class body analyzed on its own",
			src: inMethod(`Runnable r = new Runnable() {
  public void run() {
    int b = 1;
  }
};`),
			want: []string{
				"Variable 'r' should be declared final.",
				"Variable 'b' should be declared final.",
			},
		},
		{
			name: "constructor body analyzed",
			src:  "class T {\n  T() {\n    int a = 0;\n  }\n}\n",
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "static initializer analyzed",
			src:  "class T {\n  static {\n    int a = 0;\n  }\n}\n",
			want: []string{"Variable 'a' should be declared final."},
		},
		{
			name: "instance initializer analyzed",
			src:  "class T {\n  {\n    int a = 0;\n  }\n}\n",
			want: []string{"Variable 'a' should be declared final."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finality(t, tt.src, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diagnostics:\n got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestFinalLocalVariableEnhancedForProperty(t *testing.T) {
	loop := inMethod(`for (String s : items()) {
  use(s);
}`)
	loopReassign := inMethod(`for (String s : items()) {
  s = "";
}`)

	if got := finality(t, loop, nil); got != nil {
		t.Errorf("default config reported loop variable: %v", got)
	}

	props := lint.Properties{"validateEnhancedForLoopVariable": "true"}
	want := []string{"Variable 's' should be declared final."}
	if got := finality(t, loop, props); !reflect.DeepEqual(got, want) {
		t.Errorf("opted in:\n got %v\nwant %v", got, want)
	}
	if got := finality(t, loopReassign, props); got != nil {
		t.Errorf("reassigned loop variable reported: %v", got)
	}
}

func TestFinalLocalVariableBrokenDeclarator(t *testing.T) {
	// The parser recovers `int = 5;` by inserting a zero-width name node.
	// A declarator without a real name never becomes a candidate.
	src := inMethod("int = 5;\nint ok = 1;")
	want := []string{"Variable 'ok' should be declared final."}
	if got := finality(t, src, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("diagnostics:\n got %v\nwant %v", got, want)
	}
}

func TestFinalLocalVariableUnnamedProperty(t *testing.T) {
	src := inMethod("int _ = compute();")

	if got := finality(t, src, nil); got != nil {
		t.Errorf("default config reported unnamed variable: %v", got)
	}

	props := lint.Properties{"validateUnnamedVariables": "true"}
	want := []string{"Variable '_' should be declared final."}
	if got := finality(t, src, props); !reflect.DeepEqual(got, want) {
		t.Errorf("opted in:\n got %v\nwant %v", got, want)
	}
}
