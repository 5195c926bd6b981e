// cmd/dirstructure/table.go
package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newReportTable returns a plain ASCII table with the given headers, the
// first column right-aligned and the second left-aligned.
func newReportTable(numberHeader, pathHeader string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{numberHeader, pathHeader})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return t
}

// directoryCountTable renders counts in the order given.
func directoryCountTable(counts []DirectoryCount) string {
	t := newReportTable("File Count", "Directory")
	for _, c := range counts {
		t.AppendRow(table.Row{c.FileCount, c.Path})
	}
	return t.Render()
}

// characterCountTable renders one row per record, highest character count
// first. Equal counts keep their input order.
func characterCountTable(records []FileRecord) string {
	sorted := append([]FileRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Characters > sorted[j].Characters })

	t := newReportTable("Character Count", "File Path")
	for _, r := range sorted {
		t.AppendRow(table.Row{r.Characters, r.RelPath})
	}
	return t.Render()
}

// writeListSection writes a titled, path-sorted list of items. Nothing is
// written for an empty map.
func writeListSection[K comparable, V any](
	w io.Writer,
	titleFormat string,
	items map[K]V,
	getPath func(K) string,
	getDetails func(K, V) string,
) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, titleFormat, len(items))
	keys := make([]K, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return getPath(keys[i]) < getPath(keys[j]) })
	for _, k := range keys {
		pathStr := getPath(k)
		detailsStr := ""
		if getDetails != nil {
			detailsStr = getDetails(k, items[k])
		}
		if detailsStr != "" {
			fmt.Fprintf(w, "- %s: %s\n", pathStr, detailsStr)
		} else {
			fmt.Fprintf(w, "- %s\n", pathStr)
		}
	}
}
