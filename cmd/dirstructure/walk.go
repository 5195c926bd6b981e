// cmd/dirstructure/walk.go
package main

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// dirEntry is one child of a directory as seen during traversal.
type dirEntry struct {
	name      string
	path      string // joined path: parent path + name
	isDir     bool   // true for directories and symlinks that resolve to one
	isSymlink bool
}

// Scanner performs the traversals behind every report section. All sections
// share one Scanner, and so one Excluder.
type Scanner struct {
	root     string
	excluder Excluder
	logger   *slog.Logger
}

// NewScanner creates a Scanner for root, which should be absolute.
func NewScanner(root string, excluder Excluder, logger *slog.Logger) *Scanner {
	if excluder == nil {
		excluder = nopExcluder{}
	}
	return &Scanner{root: root, excluder: excluder, logger: logger}
}

// listDir returns the children of dir sorted by name in byte order.
// Symlinks are resolved to decide whether they count as directories; a
// dangling link is treated as a file.
func (s *Scanner) listDir(dir string) ([]dirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]dirEntry, 0, len(entries))
	for _, e := range entries {
		de := dirEntry{
			name:      e.Name(),
			path:      filepath.Join(dir, e.Name()),
			isDir:     e.IsDir(),
			isSymlink: e.Type()&fs.ModeSymlink != 0,
		}
		if de.isSymlink {
			target, statErr := os.Stat(de.path)
			if statErr != nil {
				s.logger.Debug("Cannot resolve symlink, treating it as a file.", "path", de.path, "error", statErr)
			} else {
				de.isDir = target.IsDir()
			}
		}
		out = append(out, de)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// visibleChildren lists dir and drops every excluded child. A listing
// failure is logged and yields no children.
func (s *Scanner) visibleChildren(dir string) []dirEntry {
	entries, err := s.listDir(dir)
	if err != nil {
		s.logger.Error("Cannot list directory.", "path", dir, "error", err)
		return nil
	}
	visible := entries[:0]
	for _, e := range entries {
		if excluded, reason, pattern := s.excluder.IsExcluded(newPathInfo(s.root, e.path, e.isDir)); excluded {
			logMsg := tern(e.isDir, "Excluding directory and its contents.", "Excluding file.")
			s.logger.Debug(logMsg, "path", e.path, "reason", reason, "pattern", pattern)
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// ancestry tracks the canonical identities of the directories on the current
// descent path, so a symlink back into an ancestor is not followed forever.
type ancestry map[string]struct{}

func canonicalDir(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

// enter records dir on the path. It returns false when dir is already an
// ancestor of itself; otherwise the returned func removes it again.
func (a ancestry) enter(dir string) (leave func(), ok bool) {
	id := canonicalDir(dir)
	if _, seen := a[id]; seen {
		return func() {}, false
	}
	a[id] = struct{}{}
	return func() { delete(a, id) }, true
}

// walk visits every non-excluded entry below dir depth first in sorted
// order. Directories are visited before their contents. A symlinked
// directory that loops back into its own ancestry is visited but not
// descended into.
func (s *Scanner) walk(dir string, visit func(e dirEntry)) {
	s.walkWithin(dir, ancestry{}, visit)
}

func (s *Scanner) walkWithin(dir string, seen ancestry, visit func(e dirEntry)) {
	leave, ok := seen.enter(dir)
	if !ok {
		s.logger.Warn("Symlink cycle detected, not descending.", "path", dir)
		return
	}
	defer leave()

	for _, e := range s.visibleChildren(dir) {
		visit(e)
		if e.isDir {
			s.walkWithin(e.path, seen, visit)
		}
	}
}

// relPath returns path relative to the scanned root with slash separators.
func (s *Scanner) relPath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
