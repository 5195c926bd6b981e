// cmd/dirstructure/pattern_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternSet_Matches(t *testing.T) {
	logger, _ := setupTestLogger(t)
	testCases := []struct {
		name      string
		patterns  []string
		candidate string
		expected  bool
	}{
		{"Empty list never matches", []string{}, "/root/a.txt", false},
		{"Exact basename match", []string{"node_modules"}, "/root/web/node_modules", true},
		{"Exact does not match full path", []string{"/root/web"}, "/root/web", false},
		{"Exact does not match substring", []string{"mod"}, "/root/modules", false},
		{"Exact match with trailing slash", []string{"build"}, "/root/build/", true},
		{"Glob matches full string", []string{"*.txt"}, "/root/b/c.txt", true},
		{"Glob star crosses separators", []string{"*/b/*"}, "/root/b/c.txt", true},
		{"Glob is anchored", []string{"*.tx"}, "/root/a.txt", false},
		{"Glob case sensitive", []string{"*.TXT"}, "/root/a.txt", false},
		{"Glob star matches empty run", []string{"a*.txt"}, "a.txt", true},
		{"Glob question mark", []string{"*/?.go"}, "/root/x.go", true},
		{"OR semantics", []string{"nomatch", "*.py"}, "/root/s.py", true},
		{"Empty pattern ignored", []string{""}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set := CompilePatterns(tc.patterns, logger)
			assert.Equal(t, tc.expected, set.Matches(tc.candidate))
		})
	}
}

func TestCompilePatterns_Strategies(t *testing.T) {
	logger, _ := setupTestLogger(t)
	set := CompilePatterns([]string{"vendor", "*.log", ""}, logger)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"vendor", "*.log"}, set.Raw())
	assert.Equal(t, StrategyExactBasename, set.patterns[0].Strategy)
	assert.Equal(t, StrategyGlob, set.patterns[1].Strategy)
	assert.Equal(t, "exact", StrategyExactBasename.String())
	assert.Equal(t, "glob", StrategyGlob.String())
}

func TestCompilePatterns_InvalidGlobFallsBackToLiteral(t *testing.T) {
	assertions := assert.New(t)
	logger, logBuf := setupTestLogger(t)

	set := CompilePatterns([]string{"[*"}, logger)

	assertions.Equal(1, set.Len())
	assertions.True(set.Matches("[*"))
	assertions.False(set.Matches("/root/a.txt"))
	assertions.Contains(logBuf.String(), "Invalid glob pattern, matching it literally.")
}

func TestPatternSet_FirstMatch(t *testing.T) {
	logger, _ := setupTestLogger(t)
	set := CompilePatterns([]string{"*.md", "README.md"}, logger)

	p, ok := set.FirstMatch("/root/README.md")
	assert.True(t, ok)
	assert.Equal(t, "*.md", p.Raw)

	_, ok = set.FirstMatch("/root/main.go")
	assert.False(t, ok)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "c.txt", baseName("/root/b/c.txt"))
	assert.Equal(t, "b", baseName("/root/b/"))
	assert.Equal(t, "c.txt", baseName("b/c.txt"))
	assert.Equal(t, "file", baseName("file"))
}
