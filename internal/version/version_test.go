package version

import (
	"strings"
	"testing"
)

func TestColoredKeepsAllComponents(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-rc.1"
	got := Colored()
	for _, part := range []string{"1", "2", "3-rc.1"} {
		if !strings.Contains(got, part) {
			t.Errorf("Colored() = %q, missing component %q", got, part)
		}
	}
}

func TestColoredFallsBackOnUnexpectedShape(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "dev"
	if got := Colored(); got != "dev" {
		t.Errorf("Colored() = %q, want %q", got, "dev")
	}
}
