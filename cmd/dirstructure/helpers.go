// cmd/dirstructure/helpers.go
package main

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	// displayTimeLayout is used in the report header and footer.
	displayTimeLayout = "2006-01-02 15:04:05"
	// fileTimeLayout is used in generated log and report file names.
	fileTimeLayout = "20060102_150405"
)

// tern returns a if cond holds, b otherwise.
func tern[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// formatBytes formats bytes into human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	val := float64(b) / float64(div)
	unitPrefix := "KMGTPE"[exp]
	if val == float64(int64(val)) {
		return fmt.Sprintf("%d %ciB", int64(val), unitPrefix)
	}
	return fmt.Sprintf("%.1f %ciB", val, unitPrefix)
}

// formatThousands renders n with comma grouping, e.g. 1234567 -> "1,234,567".
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return tern(neg, "-", "") + string(out)
}

// timestampedName builds "<prefix>_<YYYYMMDD_HHMMSS><ext>".
func timestampedName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s%s", prefix, now.Format(fileTimeLayout), ext)
}

// rootLabel is the name printed above the tree: the last element of the cleaned path.
func rootLabel(path string) string {
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == string(filepath.Separator) {
		return path
	}
	return base
}
