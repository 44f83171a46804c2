// Package ingest builds the content tree from the two spreadsheet sources:
// the video catalog and the assessment banks. Both were authored
// independently, so everything funnels through the same normalization and
// key derivation before touching the tree.
package ingest

import (
	"fmt"
	"strings"

	"github.com/p-n-ai/content-chef/internal/sheet"
)

// Sentinel link value marking catalog rows without content.
const noContentLink = "N/A"

// Column name variants across source files. The catalogs and the
// assessment banks were exported by different teams and disagree on
// header spelling.
var (
	linkColumns          = []string{"Branded video link", "Branded video", "Link to Content"}
	gradeColumns         = []string{"Grade", "Class"}
	languageColumns      = []string{"Language", "Medium"}
	chapterNumberColumns = []string{"Chapter No", "ChapterNo", "Chapter Number"}
	titleColumns         = []string{"Video/Assessment Title", "Video topic as per Youtube"}
)

// Fold normalizes a key string: trimmed and lower-cased. Hierarchy keys in
// the tree are always folded; display titles are not (they are title-cased
// at render time instead).
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalSubject folds a subject name, mapping the "Math"/"Maths"
// spellings used by the assessment banks onto the video catalog's
// "mathematics".
func CanonicalSubject(s string) string {
	switch Fold(s) {
	case "math", "maths":
		return "mathematics"
	default:
		return Fold(s)
	}
}

// resolveLink picks the content link for a catalog row: the branded link
// columns win over the generic one, first non-blank value taken.
func resolveLink(row sheet.Row) string {
	return row.First(linkColumns...)
}

// skipVideoRow reports whether a catalog row carries nothing for the video
// pass: no usable link, or assessment content that the dedicated banks
// cover.
func skipVideoRow(row sheet.Row) bool {
	link := resolveLink(row)
	if link == "" || link == noContentLink {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(row.Get("Content Type")), "Assessment")
}

// requireAny verifies that the table has at least one column from each
// variant group. A missing group is fatal for the run, same as a missing
// exact column.
func requireAny(table *sheet.Table, groups ...[]string) error {
	present := make(map[string]bool, len(table.Columns))
	for _, c := range table.Columns {
		present[c] = true
	}

	for _, group := range groups {
		found := false
		for _, c := range group {
			if present[c] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: missing required column (any of %s)", table.Path, strings.Join(group, ", "))
		}
	}
	return nil
}
