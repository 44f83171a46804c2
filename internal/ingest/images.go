package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/p-n-ai/content-chef/internal/ledger"
)

// Resolver maps spreadsheet image references onto paths under the local
// files root. References whose file is missing on disk are recorded in the
// ledger; the path is returned either way so the markdown reference stays
// embedded in the question record.
type Resolver struct {
	Root   string
	Ledger *ledger.Ledger
}

// Resolve converts a reference like "Math/Grade5/Chapter1/circle.png"
// into a path under Root. Spaces are stripped before splitting, matching
// how the assessment banks quote paths. The grade and chapter segments of
// the reference key the ledger entry when the file is missing.
func (r *Resolver) Resolve(ref string) string {
	parts := strings.Split(strings.ReplaceAll(ref, " ", ""), "/")
	path := filepath.Join(append([]string{r.Root}, parts...)...)

	if _, err := os.Stat(path); err != nil {
		grade, chapter := "unknown", "unknown"
		if len(parts) >= 4 {
			grade, chapter = parts[1], parts[2]
		}
		r.Ledger.Record(grade, chapter, parts[len(parts)-1])
	}
	return path
}

// Markdown resolves a reference and wraps it as a markdown image.
func (r *Resolver) Markdown(ref string) string {
	return fmt.Sprintf("![](%s)", r.Resolve(ref))
}
