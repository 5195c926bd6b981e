// cmd/dirstructure/content.go
package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	blockRule        = "========================================"
	summaryRule      = "----------------------------------------"
	emptyPlaceholder = "[empty after filtering]"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FileRecord describes one file whose content made it into the report.
type FileRecord struct {
	AbsPath       string
	RelPath       string
	OriginalLines int
	FilteredLines int
	Characters    int   // code points in the filtered content
	Size          int64 // bytes on disk
}

// ContentResult is what the content reader hands to the report.
type ContentResult struct {
	Text          string
	Processed     []FileRecord
	SkippedBinary []string
	Errors        map[string]error // keyed by relative path
}

// ProcessedPaths returns the absolute paths of the processed files.
func (r ContentResult) ProcessedPaths() []string {
	paths := make([]string, len(r.Processed))
	for i, rec := range r.Processed {
		paths[i] = rec.AbsPath
	}
	return paths
}

// TotalCharacters sums the filtered character counts of the processed files.
func (r ContentResult) TotalCharacters() int {
	total := 0
	for _, rec := range r.Processed {
		total += rec.Characters
	}
	return total
}

// isBinary reports content that cannot be shown as UTF-8 text.
func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data)
}

// filterLines normalises line endings, splits text into lines and drops every
// line containing one of excludes. It returns the kept lines re-joined with
// newlines and both line counts.
func filterLines(text string, excludes []string) (filtered string, original, kept int) {
	text = lineEndings.Replace(text)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return "", 0, 0
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if containsAny(line, excludes) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n"), len(lines), len(out)
}

func containsAny(line string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

// ReadMatching reads every non-excluded file under basePath whose base name
// matches namePatterns, drops lines containing any of excludeSubstrings and
// formats one block per file, sorted by relative path, followed by a summary.
// Binary files and read errors are recorded and skipped.
func (s *Scanner) ReadMatching(basePath string, namePatterns PatternSet, excludeSubstrings []string) ContentResult {
	result := ContentResult{
		Processed:     make([]FileRecord, 0),
		SkippedBinary: make([]string, 0),
		Errors:        make(map[string]error),
	}
	if namePatterns.Len() == 0 {
		s.logger.Debug("No file name patterns, content reading skipped.")
		return result
	}

	substrings := make([]string, 0, len(excludeSubstrings))
	for _, sub := range excludeSubstrings {
		if sub == "" {
			s.logger.Warn("Ignoring empty exclude string.")
			continue
		}
		substrings = append(substrings, sub)
	}

	var candidates []dirEntry
	s.walk(basePath, func(e dirEntry) {
		if !e.isDir && namePatterns.Matches(e.name) {
			candidates = append(candidates, e)
		}
	})
	sort.Slice(candidates, func(i, j int) bool {
		return s.relPath(candidates[i].path) < s.relPath(candidates[j].path)
	})

	var b strings.Builder
	totalLines := 0
	for _, c := range candidates {
		rel := s.relPath(c.path)
		s.logger.Debug("Reading file content.", "path", c.path)

		data, err := os.ReadFile(c.path)
		if err != nil {
			s.logger.Error("Failed to read file.", "path", c.path, "error", err)
			result.Errors[rel] = err
			fmt.Fprintf(&b, "\n%s\nFile: %s\nPath: %s\nError: %v\n%s\n", blockRule, rel, c.path, err, blockRule)
			continue
		}
		if isBinary(data) {
			s.logger.Warn("Skipping binary or non-UTF-8 file.", "path", c.path)
			result.SkippedBinary = append(result.SkippedBinary, rel)
			continue
		}

		filtered, original, kept := filterLines(string(data), substrings)
		rec := FileRecord{
			AbsPath:       c.path,
			RelPath:       rel,
			OriginalLines: original,
			FilteredLines: kept,
			Characters:    utf8.RuneCountInString(filtered),
			Size:          int64(len(data)),
		}
		result.Processed = append(result.Processed, rec)
		totalLines += kept

		writeFileBlock(&b, rec, filtered)
	}

	contentChars := utf8.RuneCountInString(b.String())
	fmt.Fprintf(&b, "\n%s\nFiles processed: %d\nTotal lines: %d\nTotal characters: %s\n",
		summaryRule, len(result.Processed), totalLines, formatThousands(contentChars))
	if len(result.SkippedBinary) > 0 {
		fmt.Fprintf(&b, "Skipped binary files: %d\n", len(result.SkippedBinary))
	}
	if len(result.Errors) > 0 {
		fmt.Fprintf(&b, "Files with errors: %d\n", len(result.Errors))
	}
	b.WriteString(summaryRule + "\n")

	result.Text = b.String()
	s.logger.Info("Content reading finished.",
		"processed", len(result.Processed), "binary", len(result.SkippedBinary), "errors", len(result.Errors))
	return result
}

func writeFileBlock(b *strings.Builder, rec FileRecord, filtered string) {
	fmt.Fprintf(b, "\n%s\nFile: %s\nPath: %s\n", blockRule, rec.RelPath, rec.AbsPath)
	if rec.FilteredLines != rec.OriginalLines {
		fmt.Fprintf(b, "Lines: %d (%d before filtering)\n", rec.FilteredLines, rec.OriginalLines)
	} else {
		fmt.Fprintf(b, "Lines: %d\n", rec.FilteredLines)
	}
	fmt.Fprintf(b, "Size: %s characters (%s on disk)\n", formatThousands(rec.Characters), formatBytes(rec.Size))
	b.WriteString(blockRule + "\n")
	if filtered == "" {
		b.WriteString(emptyPlaceholder + "\n")
		return
	}
	b.WriteString(filtered + "\n")
}
