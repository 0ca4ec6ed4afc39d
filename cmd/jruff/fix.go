package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eleventy7/jruff/internal/driver"
	"github.com/eleventy7/jruff/internal/fix"
	"github.com/eleventy7/jruff/internal/observ"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [path...]",
	Short: "Apply safe fixes to Java sources",
	Long:  "Run the configured rules and rewrite files with the automatic fixes that apply cleanly. Only always-safe fixes are applied unless --unsafe is given.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	fixCmd.Flags().Bool("unsafe", false, "also apply fixes that may change behavior in edge cases")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fixCmd.Flags().String("config", "", "path to jruff.toml (default: discovered upward from cwd)")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	unsafeFixes, err := cmd.Flags().GetBool("unsafe")
	if err != nil {
		return fmt.Errorf("failed to get unsafe flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	timer := observ.NewTimer()
	result, err := driver.Check(cmd.Context(), args, driver.Options{
		Config: cfg,
		Jobs:   jobs,
		Logger: zap.NewNop(),
		Timer:  timer,
		// Fixes rewrite files, so stale cached spans are not acceptable.
		NoCache: true,
	})
	if err != nil {
		return err
	}

	applied, err := fix.Apply(result.FileSet, result.Bag.Items(), fix.Options{
		IncludeSometimes: unsafeFixes,
		DryRun:           dryRun,
	})
	if errors.Is(err, fix.ErrNoFixes) {
		if !quiet {
			fmt.Fprintln(os.Stdout, "no applicable fixes")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}

	if dryRun {
		printFixDiff(result, applied)
	}
	if !quiet {
		printFixReport(applied, dryRun)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

func printFixReport(res *fix.Result, dryRun bool) {
	verb := "applied"
	if dryRun {
		verb = "would apply"
	}
	fmt.Fprintf(os.Stdout, "%s %d fix(es) across %d file(s)\n", verb, len(res.Applied), len(res.FileChanges))
	for _, skipped := range res.Skipped {
		fmt.Fprintf(os.Stdout, "skipped %s: %s\n", skipped.Rule, skipped.Reason)
	}
}

// printFixDiff renders a minimal line diff between each file and its fixed
// buffer. Only the changed region is shown; unchanged prefix and suffix
// lines are elided.
func printFixDiff(result *driver.Result, res *fix.Result) {
	for _, change := range res.FileChanges {
		file := result.FileSet.Get(change.File)
		buffer, ok := res.Buffers[change.File]
		if file == nil || !ok {
			continue
		}
		before := strings.Split(string(file.Content), "\n")
		after := strings.Split(string(buffer), "\n")

		prefix := 0
		for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
			prefix++
		}
		suffix := 0
		for suffix < len(before)-prefix && suffix < len(after)-prefix &&
			before[len(before)-1-suffix] == after[len(after)-1-suffix] {
			suffix++
		}

		fmt.Fprintf(os.Stdout, "--- %s\n+++ %s\n", change.Path, change.Path)
		for _, line := range before[prefix : len(before)-suffix] {
			fmt.Fprintf(os.Stdout, "-%s\n", line)
		}
		for _, line := range after[prefix : len(after)-suffix] {
			fmt.Fprintf(os.Stdout, "+%s\n", line)
		}
	}
}
