package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// SetName is the structural key parsed from an assessment bank's
// pipe-delimited "Question Set Name" field. Topic is empty for chapter
// assessments.
type SetName struct {
	Topic        string
	ChapterTitle string
}

// ParseError reports a question set name whose segment count matches no
// known format. Rows carrying one are logged and skipped, never inserted.
type ParseError struct {
	Raw      string
	Segments int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("question set name %q: %d segments, want 4-7", e.Raw, e.Segments)
}

// ParseQuestionSetName splits a question set name on "|" and assigns the
// segments positionally:
//
//	4 segments          Chapter | Grade | Subject | Language  (chapter assessment)
//	5 to 7 segments     Topic | Chapter | Grade | Subject | Language [| ...]
//
// Anything else is a ParseError. Segments past the chapter title carry
// grade/subject/language already present in dedicated columns, so they are
// ignored here.
func ParseQuestionSetName(s string) (SetName, error) {
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 4:
		return SetName{ChapterTitle: parts[0]}, nil
	case 5, 6, 7:
		return SetName{Topic: Fold(parts[0]), ChapterTitle: parts[1]}, nil
	default:
		return SetName{}, &ParseError{Raw: s, Segments: len(parts)}
	}
}

// ChapterKey derives the canonical tree key correlating chapters across
// the two source files: "{number} - {title}", folded. Both ingestion
// passes must use this exact derivation: chapters merge only on string
// equality of the result, so any drift in either source splits a chapter
// in two. Some assessment banks already embed the number prefix in the
// chapter title segment; the prefix is not applied twice.
func ChapterKey(number, title string) string {
	number = strings.TrimSpace(number)
	folded := Fold(title)
	if prefix := Fold(number) + " - "; strings.HasPrefix(folded, prefix) {
		return folded
	}
	return Fold(fmt.Sprintf("%s - %s", number, folded))
}

// ChapterSlug is the render-time identifier form of a chapter:
// "{number}_{TITLE}" with the title upper-cased and spaces replaced by
// underscores.
func ChapterSlug(number, title string) string {
	t := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(title)), " ", "_")
	return fmt.Sprintf("%s_%s", strings.TrimSpace(number), t)
}

// GradeLabel formats a numeric grade as "Grade_{roman}", e.g. 5 -> Grade_V.
// A grade that does not parse as a positive integer is kept verbatim.
func GradeLabel(grade string) string {
	n, err := strconv.Atoi(strings.TrimSpace(grade))
	if err != nil || n <= 0 {
		return fmt.Sprintf("Grade_%s", strings.TrimSpace(grade))
	}
	return fmt.Sprintf("Grade_%s", roman(n))
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}
