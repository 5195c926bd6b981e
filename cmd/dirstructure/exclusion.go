// cmd/dirstructure/exclusion.go
package main

import (
	"log/slog"
	"path/filepath"
)

// PathInfo holds information about a path being considered for exclusion.
type PathInfo struct {
	AbsPath  string // Joined path as walked (root is absolute)
	RelPath  string // Path relative to the scanned root, using slashes
	BaseName string // Final component of the path
	IsDir    bool
}

// newPathInfo fills a PathInfo for path under root.
func newPathInfo(root, path string, isDir bool) PathInfo {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return PathInfo{
		AbsPath:  path,
		RelPath:  filepath.ToSlash(rel),
		BaseName: filepath.Base(path),
		IsDir:    isDir,
	}
}

// Excluder defines the interface for checking if a path should be excluded.
// Every report section consults the same Excluder, so a path hidden from one
// section is hidden from all of them.
type Excluder interface {
	IsExcluded(info PathInfo) (excluded bool, reason string, pattern string)
}

// DefaultExcluder applies exclude patterns to the full joined path and,
// when configured, the scanned root's .gitignore.
type DefaultExcluder struct {
	patterns  PatternSet
	gitignore *GitignoreMatcher
	logger    *slog.Logger
}

// NewDefaultExcluder creates a DefaultExcluder. gitignore may be nil.
func NewDefaultExcluder(patterns PatternSet, gitignore *GitignoreMatcher, logger *slog.Logger) *DefaultExcluder {
	return &DefaultExcluder{patterns: patterns, gitignore: gitignore, logger: logger}
}

// IsExcluded implements the Excluder interface.
func (e *DefaultExcluder) IsExcluded(info PathInfo) (excluded bool, reason string, pattern string) {
	if p, ok := e.patterns.FirstMatch(info.AbsPath); ok {
		reason = tern(p.Strategy == StrategyGlob, "glob match", "basename match")
		e.logger.Debug("Exclusion check: path excluded by pattern",
			"path", info.AbsPath, "reason", reason, "pattern", p.Raw)
		return true, reason, p.Raw
	}

	if e.gitignore != nil {
		if info.IsDir && info.BaseName == ".git" {
			e.logger.Debug("Exclusion check: skipping .git directory", "path", info.AbsPath)
			return true, "git metadata", ".git"
		}
		if ignored, line := e.gitignore.Match(info.RelPath, info.IsDir); ignored {
			e.logger.Debug("Exclusion check: path excluded by .gitignore",
				"path", info.RelPath, "pattern", line)
			return true, "gitignore match", line
		}
	}

	return false, "", ""
}

// nopExcluder excludes nothing.
type nopExcluder struct{}

func (nopExcluder) IsExcluded(PathInfo) (bool, string, string) { return false, "", "" }
