// cmd/dirstructure/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// reportedError marks a failure already shown to the user.
type reportedError struct{ error }

// NewRootCommand creates the dirstructure command.
func NewRootCommand() *cobra.Command {
	flags := &cliFlags{}
	cmd := &cobra.Command{
		Use:   "dirstructure --path <dir> [flags]",
		Short: "Generate a directory structure report",
		Long: `dirstructure walks a directory and reports its tree, per-directory
file counts, the filtered contents of selected files and their character
counts.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, time.Now)
		},
	}
	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

// --- Main Execution ---
func main() {
	if err := NewRootCommand().Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f *cliFlags, now func() time.Time) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	started := now()

	// Config is read before the real logger exists; only its warnings surface.
	bootstrap := newLogger(stderr, slog.LevelWarn)
	cfg, err := loadConfig(f.configFile, bootstrap)
	if err != nil {
		if f.configFile != "" {
			return err
		}
		bootstrap.Warn("Failed to load configuration, using defaults.", "error", err)
		cfg = defaultConfig
	}

	s, err := resolveSettings(cfg, f, cmd.Flags())
	if err != nil {
		return err
	}
	if s.levelErr != nil {
		fmt.Fprintf(stderr, "Invalid log level, defaulting to INFO: %v\n", s.levelErr)
	}

	logFile := f.logFile
	if logFile == autoValue {
		logFile = defaultLogPath(logDirectory(f.path), started)
	}
	sink, err := openLogSink(logFile, s.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v; logging to console.\n", err)
		sink, _ = openLogSink("", s.logLevel, stderr)
	}
	logger := sink.logger

	// --- Teardown ---
	defer func() {
		logger.Info("Script has finished execution.")
		if sink.absPath != "" {
			fmt.Fprintf(stdout, "Log file saved to %s\n", sink.absPath)
		}
		if errClose := sink.Close(); errClose != nil {
			fmt.Fprintf(stderr, "Error closing log file: %v\n", errClose)
		}
	}()

	logger.Info("Selected path for scanning.", "path", f.path)
	if len(s.opts.FileNames) > 0 {
		logger.Info("File names or extensions to include.", "patterns", s.opts.FileNames)
	}
	if len(s.opts.ExcludeStrings) > 0 {
		logger.Info("Substrings to exclude from file contents.", "substrings", s.opts.ExcludeStrings)
	}

	// Invalid root: no report, but not a process failure.
	if info, statErr := os.Stat(f.path); statErr != nil || !info.IsDir() {
		logger.Error("Path is not a valid directory.", "path", f.path, "error", statErr)
		errorColor.Fprintf(stdout, "Error: %s is not a valid directory.\n", f.path)
		printLogHint(stdout, sink)
		return nil
	}

	if err := generate(stdout, s.opts, f.outputFile, started, logger); err != nil {
		logger.Error("An error occurred.", "error", err)
		errorColor.Fprintln(stdout, "An error occurred.")
		printLogHint(stdout, sink)
		return reportedError{err}
	}
	return nil
}

// generate builds the report and sends it to stdout or the output file.
// A panic anywhere below is turned into an error.
func generate(stdout io.Writer, opts Options, outputFlag string, started time.Time, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during report generation: %v", r)
		}
	}()

	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("could not determine absolute path for '%s': %w", opts.Path, err)
	}
	opts.Path = absPath

	var gitignore *GitignoreMatcher
	if opts.UseGitignore {
		gitignore, err = NewGitignoreMatcher(absPath, logger)
		if err != nil {
			logger.Warn("Continuing without .gitignore rules.", "error", err)
			gitignore = nil
		}
	}
	excluder := NewDefaultExcluder(CompilePatterns(opts.ExcludePatterns, logger), gitignore, logger)
	scanner := NewScanner(absPath, excluder, logger)
	report := NewReport(opts, scanner, CompilePatterns(opts.FileNames, logger), logger)

	if outputFlag == "" {
		_, err = fmt.Fprintln(stdout, report.Build())
		return err
	}

	outPath, err := resolveOutputPath(outputFlag, absPath, started)
	if err != nil {
		return err
	}
	if err := writeReportFile(outPath, report, logger); err != nil {
		return err
	}
	successColor.Fprintf(stdout, "Output saved to %s\n", outPath)
	return nil
}

func printLogHint(w io.Writer, sink *logSink) {
	if sink.absPath != "" {
		fmt.Fprintf(w, "Please check the log file at %s for more details.\n", sink.absPath)
	}
}
