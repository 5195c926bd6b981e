// cmd/dirstructure/output.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// resolveOutputPath maps the --output-file value to an absolute path.
// autoValue selects a timestamped default in the scanned directory; a
// relative value is taken relative to the scanned directory.
func resolveOutputPath(flagValue, scanDir string, now time.Time) (string, error) {
	name := flagValue
	if name == autoValue || name == "" {
		name = timestampedName("directory_structure", ".txt", now)
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(scanDir, name)
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("invalid output file path '%s': %w", name, err)
	}
	return abs, nil
}

// writeReportFile creates or truncates path and writes report to it.
func writeReportFile(path string, report *Report, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file '%s': %w", path, err)
	}
	if _, err := report.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing output file '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing output file '%s': %w", path, err)
	}
	logger.Info("Output saved.", "path", path)
	return nil
}
