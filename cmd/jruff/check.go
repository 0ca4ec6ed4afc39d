package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eleventy7/jruff/internal/config"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/diagfmt"
	"github.com/eleventy7/jruff/internal/driver"
	"github.com/eleventy7/jruff/internal/observ"
	"github.com/eleventy7/jruff/internal/ui"
	"github.com/eleventy7/jruff/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Lint Java sources and report violations",
	Long:  "Run the configured rules over the given files or directories and report violations. With no paths the current directory is scanned.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("summary", false, "print a per-rule violation summary")
	checkCmd.Flags().Bool("ui", false, "show interactive progress while checking")
	checkCmd.Flags().Bool("fix-preview", false, "mention fix availability next to each violation")
	checkCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().String("config", "", "path to jruff.toml (default: discovered upward from cwd)")
	checkCmd.Flags().Bool("verbose", false, "enable debug logging to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showSummary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return fmt.Errorf("failed to get summary flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	fixPreview, err := cmd.Flags().GetBool("fix-preview")
	if err != nil {
		return fmt.Errorf("failed to get fix-preview flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	color, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	switch format {
	case "pretty", "json", "sarif", "short":
	default:
		return fmt.Errorf("invalid --format value %q (expected pretty|json|sarif|short)", format)
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

	logger := zap.NewNop()
	if verbose {
		devLogger, logErr := zap.NewDevelopment()
		if logErr != nil {
			return fmt.Errorf("failed to build logger: %w", logErr)
		}
		logger = devLogger
		defer func() { _ = logger.Sync() }()
	}

	timer := observ.NewTimer()
	opts := driver.Options{
		Config:         cfg,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		NoCache:        noCache,
		Logger:         logger,
		Timer:          timer,
	}

	var result *driver.Result
	if withUI && isTerminal(os.Stdout) {
		result, err = checkWithUI(cmd, args, opts, cfg)
	} else {
		result, err = driver.Check(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:       color,
			PathMode:    pathMode,
			ShowContext: !quiet,
			ShowFixes:   fixPreview,
		})
	case "short":
		if output := diag.FormatShortDiagnostics(result.Bag.Items(), result.FileSet); output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
			PathMode:        pathMode,
			Max:             maxDiagnostics,
			IncludeFixes:    fixPreview,
			IncludePreviews: fixPreview,
		}); err != nil {
			return fmt.Errorf("failed to encode json output: %w", err)
		}
	case "sarif":
		if err := diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "jruff",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args,
		}); err != nil {
			return fmt.Errorf("failed to encode sarif output: %w", err)
		}
	}

	if showSummary && format == "pretty" {
		fmt.Fprintln(os.Stdout)
		diagfmt.Summary(os.Stdout, result.Bag)
	}
	if result.Unanalyzable > 0 && !quiet {
		fmt.Fprintf(os.Stderr, "jruff: %d file(s) could not be parsed\n", result.Unanalyzable)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if result.Bag.Len() > 0 {
		return errViolations
	}
	return nil
}

// checkWithUI runs the driver in the background while a progress view
// consumes its file events on the terminal.
func checkWithUI(cmd *cobra.Command, args []string, opts driver.Options, cfg *config.Config) (*driver.Result, error) {
	files, err := driver.ListJavaFiles(args, cfg)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	opts.Events = events

	type checkOutcome struct {
		result *driver.Result
		err    error
	}
	outcomeCh := make(chan checkOutcome, 1)
	go func() {
		res, runErr := driver.Check(cmd.Context(), args, opts)
		outcomeCh <- checkOutcome{result: res, err: runErr}
		close(events)
	}()

	model := ui.NewProgressModel("jruff check", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

// loadConfig resolves the effective configuration for a command run.
// An explicit --config path must load; otherwise the config is discovered
// upward from the working directory, falling back to defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, loadErr := config.Load(path)
		if loadErr != nil {
			return nil, fmt.Errorf("failed to load config: %w", loadErr)
		}
		return cfg, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg, err := config.Discover(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
