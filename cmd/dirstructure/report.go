// cmd/dirstructure/report.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

const (
	defaultReportTitle = "DIRECTORY STRUCTURE ANALYSIS REPORT"
	treeIndent         = "    "
	noMatchesNotice    = "No files matched the specified file names or extensions."
)

// DisplayMode selects which report sections run.
type DisplayMode string

const (
	DisplayStructure DisplayMode = "structure"
	DisplayCount     DisplayMode = "count"
	DisplayContent   DisplayMode = "content"
	DisplayAll       DisplayMode = "all"
)

var displayModes = []DisplayMode{DisplayStructure, DisplayCount, DisplayContent, DisplayAll}

// parseDisplayMode accepts one of the display mode names, case-insensitively.
func parseDisplayMode(s string) (DisplayMode, error) {
	for _, m := range displayModes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid display mode %q (choose from structure, count, content, all)", s)
}

func (m DisplayMode) includes(section DisplayMode) bool {
	return m == DisplayAll || m == section
}

// Options holds everything the report needs from the command line and config.
type Options struct {
	Path            string // absolute scanned directory
	Display         DisplayMode
	Title           string
	ExcludePatterns []string
	FileNames       []string
	ExcludeStrings  []string
	UseGitignore    bool
}

// Report assembles the sections selected by the display mode.
type Report struct {
	opts    Options
	scanner *Scanner
	names   PatternSet
	logger  *slog.Logger
	now     func() time.Time
}

// NewReport wires a report for opts. names are the compiled FileNames.
func NewReport(opts Options, scanner *Scanner, names PatternSet, logger *slog.Logger) *Report {
	if opts.Title == "" {
		opts.Title = defaultReportTitle
	}
	return &Report{opts: opts, scanner: scanner, names: names, logger: logger, now: time.Now}
}

// Build runs every selected section and returns the complete report text.
func (r *Report) Build() string {
	blocks := []string{r.header()}

	var content ContentResult
	if r.opts.Display.includes(DisplayStructure) {
		r.logger.Info("Generating directory structure.", "path", r.opts.Path)
		blocks = append(blocks, r.structureSection())
	}
	if r.opts.Display.includes(DisplayContent) && r.names.Len() > 0 {
		r.logger.Info("Reading files with specified names or extensions.")
		content = r.scanner.ReadMatching(r.opts.Path, r.names, r.opts.ExcludeStrings)
		blocks = append(blocks, r.contentSection(content))
	}
	if r.opts.Display.includes(DisplayCount) {
		r.logger.Info("Counting files per directory.")
		blocks = append(blocks, r.countSection())
	}
	if r.opts.Display == DisplayAll {
		blocks = append(blocks, r.characterSection(content))
	}

	blocks = append(blocks, fmt.Sprintf("\nANALYSIS COMPLETED: %s\n", r.now().Format(displayTimeLayout)))
	return strings.Join(blocks, "")
}

// WriteTo builds the report and writes it to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Build())
	return int64(n), err
}

func (r *Report) header() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", r.opts.Title)
	fmt.Fprintf(&b, "Generated: %s\n", r.now().Format(displayTimeLayout))
	fmt.Fprintf(&b, "Analysis Path: %s\n", r.opts.Path)
	fmt.Fprintf(&b, "Display Mode: %s\n", r.opts.Display)
	if len(r.opts.FileNames) > 0 {
		fmt.Fprintf(&b, "File Patterns: %s\n", strings.Join(r.opts.FileNames, ", "))
	}
	if len(r.opts.ExcludePatterns) > 0 {
		fmt.Fprintf(&b, "Excluded Patterns: %s\n", strings.Join(r.opts.ExcludePatterns, ", "))
	}
	if len(r.opts.ExcludeStrings) > 0 {
		fmt.Fprintf(&b, "Content Filters: %s\n", strings.Join(r.opts.ExcludeStrings, ", "))
	}
	if r.opts.UseGitignore {
		b.WriteString("Gitignore: enabled\n")
	}
	b.WriteString("\n")
	return b.String()
}

func sectionDivider(title string) string {
	return "\n\n" + strings.ToUpper(title) + "\n"
}

func (r *Report) structureSection() string {
	return sectionDivider("Directory Structure") +
		rootLabel(r.opts.Path) + "/\n" +
		r.scanner.RenderTree(r.opts.Path, treeIndent)
}

func (r *Report) contentSection(content ContentResult) string {
	var b strings.Builder
	b.WriteString(sectionDivider("Files Content"))
	b.WriteString(content.Text)

	binary := make(map[string]struct{}, len(content.SkippedBinary))
	for _, p := range content.SkippedBinary {
		binary[p] = struct{}{}
	}
	writeListSection(&b, "\nSkipped binary files (%d):\n", binary,
		func(path string) string { return path }, nil)
	writeListSection(&b, "\nErrors encountered (%d):\n", content.Errors,
		func(path string) string { return path },
		func(_ string, err error) string { return err.Error() })
	return b.String()
}

func (r *Report) countSection() string {
	counts, total := r.scanner.DirectoryCounts()
	return sectionDivider(fmt.Sprintf("Directory File Count (Total: %d)", total)) +
		directoryCountTable(counts) + "\n"
}

// characterSection covers exactly the files processed by the content step.
// Without any it states that nothing matched rather than printing an empty table.
func (r *Report) characterSection(content ContentResult) string {
	if len(content.Processed) == 0 {
		r.logger.Info("No files processed for character counts.")
		return sectionDivider("File Character Counts") + "\n" + noMatchesNotice
	}
	r.logger.Info("Generating file character count table.", "files", len(content.Processed))
	title := fmt.Sprintf("File Character Counts (Total: %s characters)", formatThousands(content.TotalCharacters()))
	return sectionDivider(title) + characterCountTable(content.Processed) + "\n"
}
