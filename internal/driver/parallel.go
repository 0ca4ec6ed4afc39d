package driver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/javaparse"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/source"
)

type checkBatch struct {
	files      []string
	fileSet    *source.FileSet
	fileIDs    map[string]source.FileID
	loadErrors map[string]error
	runner     *lint.Runner
	cache      *DiskCache
	cacheSalt  [32]byte
	jobs       int
	logger     *zap.Logger
	events     chan<- Event
}

// checkFiles analyzes every file of the batch in parallel. Result slots
// are indexed by file position, so no locking is needed and the output
// order matches the sorted input regardless of scheduling.
func checkFiles(ctx context.Context, batch checkBatch) ([]FileResult, error) {
	results := make([]FileResult, len(batch.files))

	limit := batch.jobs
	if limit > len(batch.files) {
		limit = len(batch.files)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range batch.files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = checkOneFile(gctx, batch, path)
				emit(batch.events, Event{
					Kind:  EventFileDone,
					Path:  path,
					Diags: len(results[i].Diags),
				})
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOneFile(ctx context.Context, batch checkBatch, path string) FileResult {
	if loadErr, failed := batch.loadErrors[path]; failed {
		return FileResult{Path: path, LoadError: loadErr}
	}

	fileID := batch.fileIDs[path]
	file := batch.fileSet.Get(fileID)
	key := fileCacheKey(batch.cacheSalt, file.Hash)

	if batch.cache != nil {
		var payload filePayload
		if hit, err := batch.cache.Get(key, &payload); err == nil && hit {
			if payload.Schema == fileCacheSchemaVersion {
				batch.logger.Debug("cache hit", zap.String("path", path))
				return FileResult{
					Path:         path,
					FileID:       fileID,
					Diags:        payload.restore(fileID),
					Unanalyzable: payload.Unanalyzable,
					FromCache:    true,
				}
			}
		} else if err != nil {
			batch.logger.Debug("cache read failed", zap.String("path", path), zap.Error(err))
		}
	}

	result := analyzeFile(ctx, batch, path, fileID, file)

	if batch.cache != nil {
		payload := buildFilePayload(result)
		if err := batch.cache.Put(key, payload); err != nil {
			batch.logger.Debug("cache write failed", zap.String("path", path), zap.Error(err))
		}
	}
	return result
}

// analyzeFile runs the parse-then-lint pipeline for one file. The parser
// is created per file: tree-sitter parsers are not safe for concurrent
// use, and construction is cheap next to a parse.
func analyzeFile(ctx context.Context, batch checkBatch, path string, fileID source.FileID, file *source.File) FileResult {
	parser := javaparse.NewParser()
	defer parser.Close()

	tree, err := parser.Parse(ctx, file.Content, fileID)
	if err != nil {
		if !errors.Is(err, javaparse.ErrUnanalyzable) {
			batch.logger.Warn("parse failed", zap.String("path", path), zap.Error(err))
		}
		return FileResult{Path: path, FileID: fileID, Unanalyzable: true}
	}
	defer tree.Close()

	bag := diag.NewBag(0)
	lintCtx := lint.NewContext(file, tree)
	batch.runner.Run(lintCtx, tree, bag)
	bag.Sort()

	return FileResult{
		Path:   path,
		FileID: fileID,
		Diags:  append([]diag.Diagnostic(nil), bag.Items()...),
	}
}

// Event reports batch progress to an optional consumer (the progress UI).
type Event struct {
	Kind  EventKind
	Path  string
	Diags int
}

// EventKind discriminates progress events.
type EventKind uint8

const (
	// EventFileDone fires after each file finishes, from cache or not.
	EventFileDone EventKind = iota
)

// emit sends without blocking; a slow or absent consumer never stalls the
// batch.
func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
	}
}
