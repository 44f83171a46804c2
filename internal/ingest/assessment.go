package ingest

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/p-n-ai/content-chef/internal/sheet"
	"github.com/p-n-ai/content-chef/internal/tree"
)

// AssessmentStats summarizes one pass over an assessment bank.
type AssessmentStats struct {
	Inserted  int
	Malformed int
}

// IngestAssessments walks an assessment bank table and inserts question
// records into the tree. Chapters and topics named only by the bank are
// created on demand: the banks routinely reference chapters absent from
// the video catalog. Rows with an unparseable question set name or
// question id are logged and skipped; nothing aborts the pass.
func IngestAssessments(t *tree.Tree, table *sheet.Table, images *Resolver) (AssessmentStats, error) {
	var stats AssessmentStats

	err := requireAny(table,
		[]string{"Question Set Name"},
		[]string{"QuestionId"},
		languageColumns,
		gradeColumns,
		[]string{"Subject"},
		chapterNumberColumns,
		[]string{"AnswerNo"},
	)
	if err != nil {
		return stats, err
	}

	for _, row := range table.Rows {
		setName, err := ParseQuestionSetName(row.Get("Question Set Name"))
		if err != nil {
			slog.Warn("skipping assessment row", "path", table.Path, "error", err)
			stats.Malformed++
			continue
		}

		id, err := strconv.Atoi(row.Get("QuestionId"))
		if err != nil {
			slog.Warn("skipping assessment row: bad question id",
				"path", table.Path, "question_id", row.Get("QuestionId"))
			stats.Malformed++
			continue
		}

		language := Fold(row.First(languageColumns...))
		grade := Fold(row.First(gradeColumns...))
		subject := CanonicalSubject(row.Get("Subject"))
		chapter := ChapterKey(row.First(chapterNumberColumns...), setName.ChapterTitle)

		q := buildQuestion(id, row, images)
		if q.CorrectAnswer == nil {
			slog.Warn("answer index points at an absent option",
				"path", table.Path, "question_id", id, "answer_no", row.Get("AnswerNo"))
		}

		if setName.Topic != "" {
			t.EnsurePath(language, grade, subject, chapter, setName.Topic).PutQuestion(q)
		} else {
			t.EnsurePath(language, grade, subject, chapter, tree.ChapterAssessmentKey).PutQuestion(q)
		}
		stats.Inserted++
	}

	slog.Info("assessment bank ingested",
		"path", table.Path,
		"inserted", stats.Inserted,
		"malformed", stats.Malformed,
	)
	return stats, nil
}

// buildQuestion extracts the question text/image and up to four options.
// An option exists iff its text or image cell is non-null; image-only
// cells become markdown references. AllAnswers holds only present options,
// so yes/no questions come out with two entries, not four. CorrectAnswer
// indexes the four option slots 1-based by AnswerNo and stays nil when the
// slot is absent — the source data is preserved as-is rather than repaired.
func buildQuestion(id int, row sheet.Row, images *Resolver) tree.QuestionRecord {
	q := tree.QuestionRecord{ID: id}

	if !row.IsNull("QuestionText") {
		text := row.Get("QuestionText")
		q.Text = &text
	}
	if !row.IsNull("QuestionImage") {
		img := images.Markdown(row.Get("QuestionImage"))
		q.Image = &img
	}

	var slots [4]*string
	for i := range slots {
		textCol := fmt.Sprintf("Option%d", i+1)
		imageCol := fmt.Sprintf("Option%dImage", i+1)

		switch {
		case !row.IsNull(textCol):
			v := row.Get(textCol)
			slots[i] = &v
		case !row.IsNull(imageCol):
			v := images.Markdown(row.Get(imageCol))
			slots[i] = &v
		}
		if slots[i] != nil {
			q.AllAnswers = append(q.AllAnswers, *slots[i])
		}
	}

	if no, err := strconv.Atoi(row.Get("AnswerNo")); err == nil && no >= 1 && no <= len(slots) {
		q.CorrectAnswer = slots[no-1]
	}
	return q
}
