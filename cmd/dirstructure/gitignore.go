// cmd/dirstructure/gitignore.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gitignorelib "github.com/sabhiram/go-gitignore"
)

// GitignoreMatcher wraps the rules of the scanned root's .gitignore.
type GitignoreMatcher struct {
	matcher *gitignorelib.GitIgnore
	root    string
}

// NewGitignoreMatcher compiles <root>/.gitignore. A missing file yields a
// matcher that ignores nothing.
func NewGitignoreMatcher(root string, logger *slog.Logger) (*GitignoreMatcher, error) {
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, statErr := os.Stat(gitignorePath); errors.Is(statErr, fs.ErrNotExist) {
		logger.Debug("No .gitignore file found at root.", "directory", root)
		return &GitignoreMatcher{root: root}, nil
	} else if statErr != nil {
		return nil, fmt.Errorf("error stating .gitignore file %s: %w", gitignorePath, statErr)
	}

	matcher, err := gitignorelib.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("error compiling gitignore file %s: %w", gitignorePath, err)
	}
	logger.Debug("Compiled gitignore file.", "path", gitignorePath)
	return &GitignoreMatcher{matcher: matcher, root: root}, nil
}

// Match reports whether relativePath (slash separated, relative to root) is
// ignored, and the .gitignore line responsible.
func (g *GitignoreMatcher) Match(relativePath string, isDir bool) (bool, string) {
	if g == nil || g.matcher == nil || relativePath == "." || relativePath == "" {
		return false, ""
	}
	candidate := relativePath
	// Directory-only rules ("build/") only match with a trailing slash.
	if isDir && !strings.HasSuffix(candidate, "/") {
		candidate += "/"
	}
	ignored, how := g.matcher.MatchesPathHow(candidate)
	if !ignored || how == nil {
		return ignored, ""
	}
	return true, how.Line
}
