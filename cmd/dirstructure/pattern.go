// cmd/dirstructure/pattern.go
package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// wildcard is the character that switches a pattern from basename equality to glob matching.
const wildcard = "*"

// MatchStrategy tags how a single pattern is applied to a candidate path.
type MatchStrategy int

const (
	// StrategyExactBasename compares the pattern to the final path segment.
	StrategyExactBasename MatchStrategy = iota
	// StrategyGlob matches the pattern against the whole candidate string.
	StrategyGlob
)

func (s MatchStrategy) String() string {
	return tern(s == StrategyGlob, "glob", "exact")
}

// Pattern is one compiled exclude or name pattern.
type Pattern struct {
	Raw      string
	Strategy MatchStrategy
	g        glob.Glob // nil for exact patterns and for globs that failed to compile
}

// Match reports whether candidate matches this single pattern.
func (p Pattern) Match(candidate string) bool {
	switch p.Strategy {
	case StrategyGlob:
		if p.g == nil {
			return candidate == p.Raw
		}
		return p.g.Match(candidate)
	default:
		return baseName(candidate) == p.Raw
	}
}

// PatternSet is an ordered list of patterns with OR semantics.
type PatternSet struct {
	patterns []Pattern
}

// CompilePatterns builds a PatternSet. Empty strings are dropped. A glob that
// does not compile is logged and falls back to literal comparison with the
// full candidate, so a bad pattern never aborts a run.
func CompilePatterns(raw []string, logger *slog.Logger) PatternSet {
	set := PatternSet{patterns: make([]Pattern, 0, len(raw))}
	for _, r := range raw {
		if r == "" {
			continue
		}
		if !strings.Contains(r, wildcard) {
			set.patterns = append(set.patterns, Pattern{Raw: r, Strategy: StrategyExactBasename})
			continue
		}
		// No separators: '*' also crosses '/' like fnmatch does.
		g, err := glob.Compile(r)
		if err != nil {
			logger.Warn("Invalid glob pattern, matching it literally.", "pattern", r, "error", err)
			g = nil
		}
		set.patterns = append(set.patterns, Pattern{Raw: r, Strategy: StrategyGlob, g: g})
	}
	return set
}

// Matches reports whether any pattern in the set matches candidate.
// An empty set never matches.
func (s PatternSet) Matches(candidate string) bool {
	_, ok := s.FirstMatch(candidate)
	return ok
}

// FirstMatch returns the first pattern matching candidate, for logging.
func (s PatternSet) FirstMatch(candidate string) (Pattern, bool) {
	for _, p := range s.patterns {
		if p.Match(candidate) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Len returns the number of compiled patterns.
func (s PatternSet) Len() int {
	return len(s.patterns)
}

// Raw returns the source strings in their original order.
func (s PatternSet) Raw() []string {
	out := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.Raw
	}
	return out
}

// baseName returns the final segment of either an OS or a slash separated path.
func baseName(p string) string {
	p = strings.TrimRight(filepath.ToSlash(p), "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
