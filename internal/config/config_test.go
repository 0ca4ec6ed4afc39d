package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[files]
include = ["src/**/*.java"]
exclude = ["**/generated/**"]
charset = "ISO-8859-1"

[rules.MethodName]
format = "^m[A-Z][a-zA-Z0-9]*$"

[rules.FinalLocalVariable]
validateEnhancedForLoopVariable = true

[rules.LeftCurly]
enabled = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Files.Include; len(got) != 1 || got[0] != "src/**/*.java" {
		t.Errorf("include = %v", got)
	}
	if cfg.Files.Charset != "ISO-8859-1" {
		t.Errorf("charset = %q", cfg.Files.Charset)
	}

	props, on := cfg.RuleSettings("MethodName")
	if !on || props["format"] != "^m[A-Z][a-zA-Z0-9]*$" {
		t.Errorf("MethodName settings = %v, %v", props, on)
	}
	props, on = cfg.RuleSettings("FinalLocalVariable")
	if !on || props["validateEnhancedForLoopVariable"] != "true" {
		t.Errorf("FinalLocalVariable settings = %v, %v", props, on)
	}
	if _, on := cfg.RuleSettings("LeftCurly"); on {
		t.Error("LeftCurly should be disabled")
	}
	if _, on := cfg.RuleSettings("TypeName"); !on {
		t.Error("untabled rule should run with defaults")
	}
	if len(cfg.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", cfg.Warnings)
	}
}

func TestLoadNumericAndQuotedValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[rules.OneStatementPerLine]
treatTryResourcesAsStatement = "true"

[rules.SomeRule]
limit = 42
ratio = 1.5
nested = [1, 2]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	props, on := cfg.RuleSettings("OneStatementPerLine")
	if !on || props["treatTryResourcesAsStatement"] != "true" {
		t.Errorf("quoted bool = %v", props)
	}
	props, _ = cfg.RuleSettings("SomeRule")
	if props["limit"] != "42" {
		t.Errorf("limit = %q", props["limit"])
	}
	if props["ratio"] != "1.5" {
		t.Errorf("ratio = %q", props["ratio"])
	}
	if _, ok := props["nested"]; ok {
		t.Error("array value should be dropped")
	}
	if len(cfg.Warnings) != 1 {
		t.Errorf("warnings = %v, want one for the array", cfg.Warnings)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[rules\nbroken")
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML loaded without error")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[rules.TypeName]\nenabled = false\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if _, on := cfg.RuleSettings("TypeName"); on {
		t.Error("config from ancestor directory not applied")
	}
}

func TestDiscoverFallsBackToDefault(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("default config has path %q", cfg.Path)
	}
	if _, on := cfg.RuleSettings("TypeName"); !on {
		t.Error("defaults should enable every rule")
	}
}

func TestDigestIsStableAndSensitive(t *testing.T) {
	build := func(format string) *Config {
		cfg := Default()
		cfg.Rules["MethodName"] = RuleSection{
			Enabled: true,
			Props:   map[string]string{"format": format},
		}
		return cfg
	}

	a := build("^m")
	if a.Digest() != a.Digest() {
		t.Error("digest is not deterministic")
	}
	if a.Digest() != build("^m").Digest() {
		t.Error("equal configs produced different digests")
	}
	if a.Digest() == build("^x").Digest() {
		t.Error("property change did not change the digest")
	}

	off := Default()
	off.Rules["MethodName"] = RuleSection{Enabled: false}
	if a.Digest() == off.Digest() {
		t.Error("disabling a rule did not change the digest")
	}
}

func TestExcluded(t *testing.T) {
	cfg := Default()
	cfg.Files.Exclude = []string{"**/generated/**", "build/*.java", "Legacy?.java"}

	tests := []struct {
		path string
		want bool
	}{
		{"src/generated/Foo.java", true},
		{"generated/Foo.java", true},
		{"src/main/Foo.java", false},
		{"build/Foo.java", true},
		{"build/sub/Foo.java", false},
		{"Legacy1.java", true},
		{"Legacy12.java", false},
	}
	for _, tt := range tests {
		if got := cfg.Excluded(tt.path); got != tt.want {
			t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.java", "a/b/C.java", true},
		{"**/*.java", "C.java", true},
		{"*.java", "C.java", true},
		{"*.java", "a/C.java", false},
		{"a/**", "a/b/c", true},
		{"a/**", "b/c", false},
		{"?.java", "A.java", true},
		{"?.java", "AB.java", false},
	}
	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
