// Package driver orchestrates batch linting: file discovery, parallel
// per-file analysis, the on-disk result cache, and aggregation into one
// deterministic diagnostic bag.
package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/eleventy7/jruff/internal/config"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/observ"
	"github.com/eleventy7/jruff/internal/rules"
	"github.com/eleventy7/jruff/internal/source"
)

// ErrNoFiles is returned when path expansion finds nothing to lint.
var ErrNoFiles = errors.New("no Java files found")

// Options configures a batch run.
type Options struct {
	Config         *config.Config
	Jobs           int // 0 means GOMAXPROCS
	MaxDiagnostics int // per run, 0 unlimited
	NoCache        bool
	Logger         *zap.Logger
	Timer          *observ.Timer
	Events         chan<- Event // optional progress sink, may be nil
}

// FileResult is the per-file outcome, kept in input order.
type FileResult struct {
	Path         string
	FileID       source.FileID
	Diags        []diag.Diagnostic
	Unanalyzable bool
	FromCache    bool
	LoadError    error
}

// Result aggregates a batch run.
type Result struct {
	FileSet      *source.FileSet
	Bag          *diag.Bag
	Files        []FileResult
	Unanalyzable int
}

// Check lints every Java file reachable from paths and returns the sorted
// diagnostic bag plus per-file results.
func Check(ctx context.Context, paths []string, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timer := opts.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}

	for _, warning := range cfg.Warnings {
		logger.Warn("config", zap.String("problem", warning))
	}

	phase := timer.Begin("discover")
	files, err := listJavaFiles(paths, cfg)
	timer.End(phase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	phase = timer.Begin("load")
	fileSet := source.NewFileSet()
	if err := fileSet.SetCharset(cfg.Files.Charset); err != nil {
		return nil, fmt.Errorf("charset %q: %w", cfg.Files.Charset, err)
	}
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			logger.Warn("load failed", zap.String("path", path), zap.Error(err))
			continue
		}
		fileIDs[path] = id
	}
	timer.End(phase, "")

	ruleSet := buildRules(cfg)
	runner := lint.NewRunner(ruleSet)

	var cache *DiskCache
	if !opts.NoCache {
		cache, err = OpenDiskCache("jruff")
		if err != nil {
			logger.Warn("cache unavailable", zap.Error(err))
			cache = nil
		}
	}
	cacheSalt := cacheKeySalt(cfg)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	phase = timer.Begin("analyze")
	results, err := checkFiles(ctx, checkBatch{
		files:      files,
		fileSet:    fileSet,
		fileIDs:    fileIDs,
		loadErrors: loadErrors,
		runner:     runner,
		cache:      cache,
		cacheSalt:  cacheSalt,
		jobs:       jobs,
		logger:     logger,
		events:     opts.Events,
	})
	timer.End(phase, "")
	if err != nil {
		return nil, err
	}

	phase = timer.Begin("aggregate")
	bag := diag.NewBag(opts.MaxDiagnostics)
	result := &Result{
		FileSet: fileSet,
		Bag:     bag,
		Files:   results,
	}
	for _, fr := range results {
		if fr.Unanalyzable || fr.LoadError != nil {
			result.Unanalyzable++
			continue
		}
		for _, d := range fr.Diags {
			bag.Add(d)
		}
	}
	bag.Sort()
	timer.End(phase, fmt.Sprintf("%d diagnostics", bag.Len()))

	return result, nil
}

// buildRules instantiates the enabled catalog subset for this config.
func buildRules(cfg *config.Config) []lint.Rule {
	return rules.Build(func(name string) (lint.Properties, bool) {
		return cfg.RuleSettings(name)
	})
}
