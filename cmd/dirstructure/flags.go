// cmd/dirstructure/flags.go
package main

import (
	"fmt"
	"log/slog"

	pflag "github.com/spf13/pflag"
)

// autoValue is what an optional-value flag holds when given without "=value".
const autoValue = "auto"

// cliFlags holds raw command-line values before they are merged with config.
type cliFlags struct {
	path           string
	exclude        []string
	fileNames      []string
	excludeStrings []string
	logFile        string
	logLevel       string
	outputFile     string
	display        string
	gitignore      bool
	configFile     string
}

func (f *cliFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.path, "path", "p", "", "Path to the directory to analyze (required).")
	fs.StringSliceVarP(&f.exclude, "exclude", "x", []string{}, "Comma-separated patterns to exclude directories/files (adds to config).")
	fs.StringSliceVarP(&f.fileNames, "file-names", "f", []string{}, "Comma-separated file names or glob patterns to include content from (overrides config).")
	fs.StringArrayVarP(&f.excludeStrings, "exclude-strings", "s", []string{}, "Drop content lines containing this substring (repeatable, adds to config).")
	fs.StringVar(&f.logFile, "log-file", "", "Log to this file; without a value, log to a timestamped file in the scanned directory.")
	fs.Lookup("log-file").NoOptDefVal = autoValue
	fs.StringVar(&f.logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARNING, ERROR, CRITICAL).")
	fs.StringVar(&f.outputFile, "output-file", "", "Save the report to this file; without a value, to a timestamped file in the scanned directory.")
	fs.Lookup("output-file").NoOptDefVal = autoValue
	fs.StringVar(&f.display, "display", string(DisplayAll), "Sections to display: structure, count, content or all.")
	fs.BoolVar(&f.gitignore, "gitignore", false, "Also exclude paths matched by the root .gitignore.")
	fs.StringVarP(&f.configFile, "config", "c", "", "Path to a custom configuration file.")
}

// settings is the merged result of config and flags.
type settings struct {
	opts     Options
	logLevel slog.Level
	// levelErr is set when the requested level was invalid and INFO is used.
	levelErr error
}

// resolveSettings merges flags over cfg. Flags that were not set on the
// command line fall back to config values; --exclude and --exclude-strings
// add to the config lists instead of replacing them.
func resolveSettings(cfg Config, f *cliFlags, fs *pflag.FlagSet) (settings, error) {
	var s settings

	displayStr := *cfg.Display
	if fs.Changed("display") {
		displayStr = f.display
	}
	display, err := parseDisplayMode(displayStr)
	if err != nil {
		return s, err
	}

	levelStr := *cfg.LogLevel
	if fs.Changed("log-level") {
		levelStr = f.logLevel
	}
	s.logLevel, s.levelErr = parseLogLevel(levelStr)

	excludes := append([]string{}, cfg.ExcludePatterns...)
	if fs.Changed("exclude") {
		excludes = append(excludes, f.exclude...)
	}

	fileNames := cfg.FileNames
	if fs.Changed("file-names") {
		fileNames = f.fileNames
	}

	excludeStrings := append([]string{}, cfg.ExcludeStrings...)
	if fs.Changed("exclude-strings") {
		excludeStrings = append(excludeStrings, f.excludeStrings...)
	}

	useGitignore := *cfg.UseGitignore
	if fs.Changed("gitignore") {
		useGitignore = f.gitignore
	}

	if f.path == "" {
		return s, fmt.Errorf("--path must not be empty")
	}

	s.opts = Options{
		Path:            f.path,
		Display:         display,
		Title:           *cfg.ReportTitle,
		ExcludePatterns: excludes,
		FileNames:       append([]string{}, fileNames...),
		ExcludeStrings:  excludeStrings,
		UseGitignore:    useGitignore,
	}
	return s, nil
}
