package ingest

import (
	"log/slog"

	"github.com/p-n-ai/content-chef/internal/sheet"
	"github.com/p-n-ai/content-chef/internal/tree"
)

// VideoStats summarizes one pass over a video catalog.
type VideoStats struct {
	Inserted int
	Skipped  int
}

// IngestVideos walks a video catalog table row by row and inserts a video
// record under language > grade > subject > chapter > topic. Rows without
// a usable link and assessment rows are skipped silently; assessments are
// ingested from their dedicated banks instead.
func IngestVideos(t *tree.Tree, table *sheet.Table) (VideoStats, error) {
	var stats VideoStats

	err := requireAny(table,
		languageColumns,
		gradeColumns,
		[]string{"Subject"},
		chapterNumberColumns,
		[]string{"Chapter Name"},
		[]string{"Topic Name"},
		linkColumns,
	)
	if err != nil {
		return stats, err
	}

	for _, row := range table.Rows {
		if skipVideoRow(row) {
			stats.Skipped++
			continue
		}

		language := Fold(row.First(languageColumns...))
		grade := Fold(row.First(gradeColumns...))
		subject := CanonicalSubject(row.Get("Subject"))
		chapter := ChapterKey(row.First(chapterNumberColumns...), row.Get("Chapter Name"))
		topic := Fold(row.Get("Topic Name"))

		node := t.EnsurePath(language, grade, subject, chapter, topic)
		node.PutVideo(tree.VideoRecord{
			Title:     row.First(titleColumns...),
			Link:      Fold(resolveLink(row)),
			Copyright: row.Get("Copyright"),
			License:   row.Get("License"),
			Icon:      row.Get("Icon"),
		})
		stats.Inserted++
	}

	slog.Info("video catalog ingested",
		"path", table.Path,
		"inserted", stats.Inserted,
		"skipped", stats.Skipped,
	)
	return stats, nil
}
