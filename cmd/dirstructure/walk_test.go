// cmd/dirstructure/walk_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir_SortedAndTyped(t *testing.T) {
	assertions := assert.New(t)
	tempDir := setupTestDir(t, map[string]string{
		"b.txt":  "b",
		"A.txt":  "a",
		"c/":     "",
		"a.txt":  "a",
		"_x.txt": "x",
	})
	scanner, _ := newTestScanner(t, tempDir)

	entries, err := scanner.listDir(tempDir)

	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	assertions.Equal([]string{"A.txt", "_x.txt", "a.txt", "b.txt", "c"}, names)
	assertions.True(entries[4].isDir)
	assertions.False(entries[0].isDir)
	assertions.Equal(filepath.Join(tempDir, "c"), entries[4].path)
}

func TestListDir_Symlinks(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{"real/f.txt": "f"})
	if err := os.Symlink(filepath.Join(tempDir, "real"), filepath.Join(tempDir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(tempDir, "nowhere"), filepath.Join(tempDir, "broken")))
	scanner, logBuf := newTestScanner(t, tempDir)

	entries, err := scanner.listDir(tempDir)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	byName := map[string]dirEntry{}
	for _, e := range entries {
		byName[e.name] = e
	}
	assert.True(t, byName["link"].isSymlink)
	assert.True(t, byName["link"].isDir, "symlink to a directory is walked as one")
	assert.True(t, byName["broken"].isSymlink)
	assert.False(t, byName["broken"].isDir)
	assert.Contains(t, logBuf.String(), "Cannot resolve symlink, treating it as a file.")
}

func TestWalk_DepthFirstAndPruned(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{
		"a/1.txt":      "1",
		"a/b/2.txt":    "2",
		"c.txt":        "c",
		"skip/3.txt":   "3",
		"a/skip/4.txt": "4",
	})
	scanner, _ := newTestScanner(t, tempDir, "skip")

	var visited []string
	scanner.walk(tempDir, func(e dirEntry) {
		visited = append(visited, scanner.relPath(e.path))
	})

	assert.Equal(t, []string{"a", "a/1.txt", "a/b", "a/b/2.txt", "c.txt"}, visited)
}

func TestWalk_FollowsSymlinkWithoutLooping(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{
		"data/x.txt": "x",
	})
	if err := os.Symlink(filepath.Join(tempDir, "data"), filepath.Join(tempDir, "alias")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(tempDir, filepath.Join(tempDir, "data", "up")))
	scanner, _ := newTestScanner(t, tempDir)

	files := 0
	scanner.walk(tempDir, func(e dirEntry) {
		if !e.isDir {
			files++
		}
	})

	// alias/x.txt and data/x.txt; data/up and alias/up point back at the root.
	assert.Equal(t, 2, files)
}

func TestAncestry(t *testing.T) {
	dir := t.TempDir()
	seen := ancestry{}

	leave, ok := seen.enter(dir)
	require.True(t, ok)

	_, again := seen.enter(dir)
	assert.False(t, again, "a directory cannot be entered twice on one path")

	leave()
	_, ok = seen.enter(dir)
	assert.True(t, ok, "siblings may revisit a directory once it is left")
}

func TestRelPath(t *testing.T) {
	scanner, _ := newTestScanner(t, "/scan/root")
	assert.Equal(t, "a/b.txt", scanner.relPath("/scan/root/a/b.txt"))
	assert.Equal(t, ".", scanner.relPath("/scan/root"))
}
