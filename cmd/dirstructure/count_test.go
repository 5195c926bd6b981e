// cmd/dirstructure/count_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFiles(t *testing.T) {
	assertions := assert.New(t)
	tempDir := setupTestDir(t, map[string]string{"empty/": ""})
	scanner, _ := newTestScanner(t, tempDir, "*.log")

	emptyDir := filepath.Join(tempDir, "empty")
	assertions.Equal(0, scanner.CountFiles(emptyDir))

	require.NoError(t, os.WriteFile(filepath.Join(emptyDir, "one.txt"), []byte("1"), 0644))
	assertions.Equal(1, scanner.CountFiles(emptyDir))

	require.NoError(t, os.WriteFile(filepath.Join(emptyDir, "skip.log"), []byte("x"), 0644))
	assertions.Equal(1, scanner.CountFiles(emptyDir), "excluded file must not change the count")

	require.NoError(t, os.MkdirAll(filepath.Join(emptyDir, "nested", "deeper"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(emptyDir, "nested", "deeper", "two.txt"), []byte("2"), 0644))
	assertions.Equal(2, scanner.CountFiles(emptyDir), "directories are not counted, nested files are")
}

func TestCountFiles_ExcludedDirectoryNotEntered(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{
		"src/a.go":              "package a",
		"node_modules/x/y.js":   "y",
		"node_modules/x/z.js":   "z",
		"src/node_modules/q.js": "q",
	})
	scanner, _ := newTestScanner(t, tempDir, "node_modules")

	assert.Equal(t, 1, scanner.CountFiles(tempDir))
}

func TestDirectoryCounts(t *testing.T) {
	assertions := assert.New(t)
	tempDir := setupTestDir(t, map[string]string{
		"root.txt":     "r",
		"a/":           "",
		"b/1.txt":      "1",
		"c/1.txt":      "1",
		"c/2.txt":      "2",
		"c/d/3.txt":    "3",
		"skip/4.txt":   "4",
		"c/d/skip.log": "x",
	})
	scanner, _ := newTestScanner(t, tempDir, "skip", "*.log")

	counts, total := scanner.DirectoryCounts()

	assertions.Equal(5, total, "total covers every non-excluded file under the root")
	assertions.Equal([]DirectoryCount{
		{Path: "c", FileCount: 3},
		{Path: "b", FileCount: 1},
		{Path: "c/d", FileCount: 1},
		{Path: "a", FileCount: 0},
	}, counts)
}

func TestDirectoryCounts_ExcludedDirectoryAbsent(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{
		"a.txt":   "a",
		"b/c.txt": "c",
	})
	scanner, _ := newTestScanner(t, tempDir, "b")

	counts, total := scanner.DirectoryCounts()

	assert.Empty(t, counts)
	assert.Equal(t, 1, total)
}
