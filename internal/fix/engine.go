package fix

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Options configures fix selection and application.
type Options struct {
	// IncludeSometimes admits FixSometimes fixes in addition to the
	// always-safe ones.
	IncludeSometimes bool

	// DryRun stages all edits in memory without touching disk. The
	// resulting buffers are kept on the Result for diff reporting.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Rule          string
	Message       string
	Applicability diag.FixAvailability
	Path          string
	EditCount     int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Rule    string
	Message string
	Reason  string
}

// FileChange summarises modifications performed on one file.
type FileChange struct {
	File      source.FileID
	Path      string
	EditCount int
}

// Result aggregates applied fixes, skipped ones, and file changes. After
// a dry run, Buffers holds the would-be content of each changed file.
type Result struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
	Buffers     map[source.FileID][]byte
}

type candidate struct {
	d     diag.Diagnostic
	order int
}

// Apply selects fixes from diagnostics by applicability, drops the ones
// whose edits conflict with already-accepted edits, and applies the rest
// file by file. Edits are verified against the original file content
// before being committed, so a stale diagnostic skips rather than
// corrupts.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	result := &Result{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]SkippedFix, 0),
		FileChanges: make([]FileChange, 0),
		Buffers:     make(map[source.FileID][]byte),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, selectionSkips := gatherCandidates(diagnostics, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	sortCandidates(candidates)

	applied, applySkips, changes, buffers, err := applyCandidates(fs, candidates)
	result.Applied = append(result.Applied, applied...)
	result.Skipped = append(result.Skipped, applySkips...)
	result.FileChanges = append(result.FileChanges, changes...)
	result.Buffers = buffers
	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	if opts.DryRun {
		return result, nil
	}
	if err := writeBuffers(fs, result); err != nil {
		return result, err
	}
	return result, nil
}

// gatherCandidates filters diagnostics down to the ones carrying an
// admissible fix, preserving insertion order for the stable sort.
func gatherCandidates(diagnostics []diag.Diagnostic, opts Options) ([]candidate, []SkippedFix) {
	cands := make([]candidate, 0)
	skips := make([]SkippedFix, 0)
	for i, d := range diagnostics {
		if d.Fix == nil || len(d.Fix.Edits) == 0 {
			continue
		}
		switch d.Fix.Applicability {
		case diag.FixAlways:
		case diag.FixSometimes:
			if !opts.IncludeSometimes {
				skips = append(skips, SkippedFix{
					Rule:    d.Rule,
					Message: d.Message,
					Reason:  "applicability is sometimes-safe, rerun with --unsafe to include it",
				})
				continue
			}
		default:
			skips = append(skips, SkippedFix{
				Rule:    d.Rule,
				Message: d.Message,
				Reason:  "fix is not automatically applicable",
			})
			continue
		}
		cands = append(cands, candidate{d: d, order: i})
	}
	return cands, skips
}

// sortCandidates orders candidates by (file, span start, span end, rule
// registration order, insertion order) so the apply pipeline is
// deterministic regardless of how diagnostics were collected.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].d, candidates[j].d
		if di.Span.File != dj.Span.File {
			return di.Span.File < dj.Span.File
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}
		if di.Order != dj.Order {
			return di.Order < dj.Order
		}
		return candidates[i].order < candidates[j].order
	})
}

func applyCandidates(fs *source.FileSet, selected []candidate) ([]AppliedFix, []SkippedFix, []FileChange, map[source.FileID][]byte, error) {
	buffers := make(map[source.FileID][]byte)
	appliedEdits := make(map[source.FileID][]diag.TextEdit)
	fileEditCount := make(map[source.FileID]int)

	applied := make([]AppliedFix, 0, len(selected))
	skipped := make([]SkippedFix, 0)

	baseDir := fs.BaseDir()

	for _, cand := range selected {
		buckets := groupEditsByFile(cand.d.Fix.Edits)
		stagedBuffers := make(map[source.FileID][]byte)
		stagedApplied := make(map[source.FileID][]diag.TextEdit)
		totalEdits := 0
		var skipReason string

		for fileID, edits := range buckets {
			file := fs.Get(fileID)
			if file == nil {
				skipReason = "target file not loaded"
				break
			}
			if file.Flags&source.FileVirtual != 0 {
				skipReason = "target file is virtual"
				break
			}
			if file.Flags&source.FileTranscoded != 0 {
				skipReason = "target file was decoded from a non-UTF-8 charset and cannot be written back faithfully"
				break
			}
			if conflictsWithExisting(appliedEdits[fileID], edits) {
				skipReason = fmt.Sprintf("conflicts with previously applied edits in %s", file.FormatPath("auto", baseDir))
				break
			}

			working := buffers[fileID]
			if working == nil {
				working = append([]byte(nil), file.Content...)
			} else {
				working = append([]byte(nil), working...)
			}

			sort.SliceStable(edits, func(i, j int) bool {
				if edits[i].Span.Start == edits[j].Span.Start {
					return edits[i].Span.End > edits[j].Span.End
				}
				return edits[i].Span.Start > edits[j].Span.Start
			})

			existingApplied := append([]diag.TextEdit(nil), appliedEdits[fileID]...)

			for _, edit := range edits {
				start := int(edit.Span.Start) + cumulativeDelta(existingApplied, int(edit.Span.Start))
				end := int(edit.Span.End) + cumulativeDelta(existingApplied, int(edit.Span.End))
				if start < 0 || end < start || end > len(working) {
					skipReason = "edit span out of range"
					break
				}
				if edit.OldText != "" && string(working[start:end]) != edit.OldText {
					skipReason = "existing text does not match expected content"
					break
				}
				suffix := append([]byte(nil), working[end:]...)
				working = append(append(working[:start], []byte(edit.NewText)...), suffix...)
				existingApplied = insertEditSorted(existingApplied, edit)
			}
			if skipReason != "" {
				break
			}
			stagedBuffers[fileID] = working
			stagedApplied[fileID] = existingApplied
			totalEdits += len(edits)
		}

		if skipReason != "" {
			skipped = append(skipped, SkippedFix{
				Rule:    cand.d.Rule,
				Message: cand.d.Message,
				Reason:  skipReason,
			})
			continue
		}

		for fileID, buf := range stagedBuffers {
			buffers[fileID] = buf
			appliedEdits[fileID] = stagedApplied[fileID]
			fileEditCount[fileID] += len(buckets[fileID])
		}

		applied = append(applied, AppliedFix{
			Rule:          cand.d.Rule,
			Message:       cand.d.Message,
			Applicability: cand.d.Fix.Applicability,
			Path:          formatFilePath(fs, cand.d.Span.File),
			EditCount:     totalEdits,
		})
	}

	fileChanges := make([]FileChange, 0, len(buffers))
	for fileID := range buffers {
		file := fs.Get(fileID)
		fileChanges = append(fileChanges, FileChange{
			File:      fileID,
			Path:      file.FormatPath("relative", baseDir),
			EditCount: fileEditCount[fileID],
		})
	}
	sort.SliceStable(fileChanges, func(i, j int) bool {
		return fileChanges[i].Path < fileChanges[j].Path
	})

	return applied, skipped, fileChanges, buffers, nil
}

// writeBuffers flushes every changed buffer to disk, preserving the file
// mode of the original and undoing the load-time normalizations so a fix
// touches nothing beyond its own edits.
func writeBuffers(fs *source.FileSet, result *Result) error {
	for _, change := range result.FileChanges {
		file := fs.Get(change.File)
		buf := denormalize(file, result.Buffers[change.File])

		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, buf, mode); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}
	}
	return nil
}

// denormalize reverses the CRLF and BOM normalization recorded on the
// file's flags. A file loaded with mixed line endings comes back uniformly
// CRLF.
func denormalize(file *source.File, buf []byte) []byte {
	if file.Flags&source.FileNormalizedCRLF != 0 {
		buf = bytes.ReplaceAll(buf, []byte("\n"), []byte("\r\n"))
	}
	if file.Flags&source.FileHadBOM != 0 {
		buf = append([]byte{0xEF, 0xBB, 0xBF}, buf...)
	}
	return buf
}

func conflictsWithExisting(existing []diag.TextEdit, edits []diag.TextEdit) bool {
	for _, prev := range existing {
		for _, cand := range edits {
			if spansConflict(prev, cand) {
				return true
			}
		}
	}
	return false
}

// spansConflict reports whether two text edits' spans overlap.
// Spans are treated as half-open intervals [Start, End). Two zero-length
// edits never conflict with each other. A zero-length edit conflicts with
// a non-zero span when its position falls inside it.
func spansConflict(a, b diag.TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

func groupEditsByFile(edits []diag.TextEdit) map[source.FileID][]diag.TextEdit {
	buckets := make(map[source.FileID][]diag.TextEdit)
	for _, edit := range edits {
		buckets[edit.Span.File] = append(buckets[edit.Span.File], edit)
	}
	return buckets
}

// cumulativeDelta maps an offset in the original file to the shift
// produced by the already-applied edits before it.
func cumulativeDelta(edits []diag.TextEdit, pos int) int {
	delta := 0
	for _, e := range edits {
		eStart := int(e.Span.Start)
		if eStart > pos {
			break
		}
		eEnd := int(e.Span.End)
		length := eEnd - eStart
		change := len(e.NewText) - length
		if eEnd <= pos {
			delta += change
		}
	}
	return delta
}

func insertEditSorted(edits []diag.TextEdit, edit diag.TextEdit) []diag.TextEdit {
	insertIdx := sort.Search(len(edits), func(i int) bool {
		if edits[i].Span.Start == edit.Span.Start {
			return edits[i].Span.End >= edit.Span.End
		}
		return edits[i].Span.Start > edit.Span.Start
	})
	edits = append(edits, diag.TextEdit{})
	copy(edits[insertIdx+1:], edits[insertIdx:])
	edits[insertIdx] = edit
	return edits
}

func formatFilePath(fs *source.FileSet, fileID source.FileID) string {
	file := fs.Get(fileID)
	if file == nil {
		return ""
	}
	return file.FormatPath("auto", fs.BaseDir())
}
