// Package diag defines the diagnostic model shared by every rule and by the
// batch driver.
//
// Diagnostic is the central record: the producing rule's name, a short
// human-oriented message, the primary source.Span, and an optional Fix. A Fix
// is data only (a set of TextEdits plus a FixAvailability classification) and
// is materialised into file changes by internal/fix, never here.
//
// Determinism is a hard requirement: diagnostics are value types, Bag.Sort
// orders them by (file, span start, rule registration order) with insertion
// order as the stable tie-break, and nothing in this package touches the
// clock, randomness, or map iteration order. Rendering lives in
// internal/diagfmt; this package performs no formatting beyond the short
// single-line form used by golden tests.
package diag
