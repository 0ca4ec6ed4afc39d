package diag

import (
	"github.com/eleventy7/jruff/internal/source"
)

// FixAvailability classifies how reliably a rule can repair its own
// violations. Rules declare it per violation kind; the fix engine uses it
// to decide which fixes are safe to apply unattended.
type FixAvailability uint8

const (
	// FixNone means the rule never attaches a fix.
	FixNone FixAvailability = iota
	// FixSometimes means a fix is attached only when the rule is certain
	// the rewrite preserves behaviour.
	FixSometimes
	// FixAlways means every violation carries an applicable fix.
	FixAlways
)

func (a FixAvailability) String() string {
	switch a {
	case FixAlways:
		return "always"
	case FixSometimes:
		return "sometimes"
	default:
		return "none"
	}
}

// TextEdit replaces the text covered by Span with NewText. OldText, when
// non-empty, is a guard: the fix engine refuses the edit if the current
// buffer content differs from it.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is a set of edits that, applied together, resolves a diagnostic.
type Fix struct {
	Edits         []TextEdit
	Applicability FixAvailability
}

// Diagnostic is one reported violation. Order carries the producing rule's
// registration index and exists only to make output ordering total; it is
// assigned by the dispatcher, not by rules.
type Diagnostic struct {
	Rule    string
	Message string
	Span    source.Span
	Fix     *Fix
	Order   int
}

// New constructs a diagnostic without a fix.
func New(rule string, span source.Span, msg string) Diagnostic {
	return Diagnostic{Rule: rule, Message: msg, Span: span}
}

// WithFix returns a copy of the diagnostic carrying the given fix.
func (d Diagnostic) WithFix(applicability FixAvailability, edits ...TextEdit) Diagnostic {
	d.Fix = &Fix{Edits: edits, Applicability: applicability}
	return d
}
