// cmd/dirstructure/logging.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LevelCritical sits above slog's error level.
const LevelCritical = slog.LevelError + 4

// parseLogLevel maps DEBUG, INFO, WARNING (or WARN), ERROR and CRITICAL,
// in any case, to slog levels.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
}

// levelName renders a level the way the CLI spells it.
func levelName(l slog.Level) string {
	switch {
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func replaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(levelName(lvl))
		}
	}
	return a
}

// newLogger builds a text logger writing to w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	logOpts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: replaceLevelAttr,
	}
	return slog.New(slog.NewTextHandler(w, logOpts))
}

// defaultLogPath is the log file used when --log-file is given without a value.
func defaultLogPath(dir string, now time.Time) string {
	return filepath.Join(dir, timestampedName("directory_structure_log", ".log", now))
}

// logDirectory is where a default log file goes: the scanned path when it
// is a directory, else its parent.
func logDirectory(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// logSink is the destination chosen for logging.
type logSink struct {
	logger  *slog.Logger
	absPath string // empty when logging to the console
	file    *os.File
}

// Close releases the log file, if any.
func (s *logSink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// openLogSink logs to console when logFile is empty, otherwise creates or
// truncates logFile.
func openLogSink(logFile string, level slog.Level, console io.Writer) (*logSink, error) {
	if logFile == "" {
		return &logSink{logger: newLogger(console, level)}, nil
	}
	absPath, err := filepath.Abs(logFile)
	if err != nil {
		return nil, fmt.Errorf("invalid log file path '%s': %w", logFile, err)
	}
	f, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot create log file '%s': %w", absPath, err)
	}
	return &logSink{logger: newLogger(f, level), absPath: absPath, file: f}, nil
}
