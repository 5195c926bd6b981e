// cmd/dirstructure/count.go
package main

import "sort"

// DirectoryCount pairs a directory, relative to the scanned root, with the
// number of non-excluded files at any depth below it.
type DirectoryCount struct {
	Path      string
	FileCount int
}

// CountFiles returns the number of non-excluded files under path.
// Directories are not counted, and excluded directories are not entered.
func (s *Scanner) CountFiles(path string) int {
	count := 0
	s.walk(path, func(e dirEntry) {
		if !e.isDir {
			count++
		}
	})
	s.logger.Debug("Counted files.", "path", path, "count", count)
	return count
}

// DirectoryCounts walks the root once and counts files for every
// non-excluded directory found below it, highest count first. Directories
// with equal counts keep walk order. total is the number of non-excluded
// files anywhere under the root, including files directly in it.
func (s *Scanner) DirectoryCounts() (counts []DirectoryCount, total int) {
	counts = make([]DirectoryCount, 0)
	s.walk(s.root, func(e dirEntry) {
		if e.isDir {
			counts = append(counts, DirectoryCount{Path: s.relPath(e.path), FileCount: s.CountFiles(e.path)})
			return
		}
		total++
	})
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].FileCount > counts[j].FileCount })
	return counts, total
}
