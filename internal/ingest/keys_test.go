package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestParseQuestionSetName_SegmentCounts(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTopic   string
		wantChapter string
		wantErr     bool
	}{
		{
			name:        "four segments is a chapter assessment",
			input:       "Shapes | 5 | Maths | English",
			wantChapter: "Shapes",
		},
		{
			name:        "five segments is a topic assessment",
			input:       "Circles | Shapes | 5 | Maths | English",
			wantTopic:   "circles",
			wantChapter: "Shapes",
		},
		{
			name:        "six segments keeps topic and chapter positions",
			input:       "Circles | Shapes | 5 | Maths | English | Term 1",
			wantTopic:   "circles",
			wantChapter: "Shapes",
		},
		{
			name:        "seven segments keeps topic and chapter positions",
			input:       "Circles | Shapes | 5 | Maths | English | Term 1 | v2",
			wantTopic:   "circles",
			wantChapter: "Shapes",
		},
		{
			name:    "three segments is malformed",
			input:   "Shapes | 5 | Maths",
			wantErr: true,
		},
		{
			name:    "eight segments is malformed",
			input:   "a|b|c|d|e|f|g|h",
			wantErr: true,
		},
		{
			name:    "empty string is malformed",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuestionSetName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQuestionSetName(%q) error = nil, want ParseError", tt.input)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("error = %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuestionSetName(%q) error = %v", tt.input, err)
			}
			if got.Topic != tt.wantTopic {
				t.Errorf("Topic = %q, want %q", got.Topic, tt.wantTopic)
			}
			if got.ChapterTitle != tt.wantChapter {
				t.Errorf("ChapterTitle = %q, want %q", got.ChapterTitle, tt.wantChapter)
			}
		})
	}
}

func TestChapterKey_NormalizationEquivalence(t *testing.T) {
	a := ChapterKey("1", "Fractions")
	b := ChapterKey("1", " fractions ")
	if a != b {
		t.Errorf("ChapterKey mismatch: %q vs %q", a, b)
	}
	if a != "1 - fractions" {
		t.Errorf("ChapterKey = %q, want %q", a, "1 - fractions")
	}
}

func TestChapterKey_NumberAlreadyInTitle(t *testing.T) {
	// Assessment banks sometimes carry "1 - Shapes" as the chapter title
	// segment while ChapterNo is also 1. The prefix must not double up,
	// or the chapter splits away from its video catalog twin.
	if got := ChapterKey("1", "1 - Shapes"); got != "1 - shapes" {
		t.Errorf("ChapterKey = %q, want %q", got, "1 - shapes")
	}
	if got := ChapterKey("1", "Shapes"); got != "1 - shapes" {
		t.Errorf("ChapterKey = %q, want %q", got, "1 - shapes")
	}
}

func TestChapterSlug(t *testing.T) {
	if got := ChapterSlug("1", "basic shapes"); got != "1_BASIC_SHAPES" {
		t.Errorf("ChapterSlug = %q, want %q", got, "1_BASIC_SHAPES")
	}
}

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		grade string
		want  string
	}{
		{"1", "Grade_I"},
		{"4", "Grade_IV"},
		{"5", "Grade_V"},
		{"9", "Grade_IX"},
		{"10", "Grade_X"},
		{"14", "Grade_XIV"},
		{"nursery", "Grade_nursery"},
	}
	for _, tt := range tests {
		if got := GradeLabel(tt.grade); got != tt.want {
			t.Errorf("GradeLabel(%q) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestCanonicalSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Math", "mathematics"},
		{"Maths", "mathematics"},
		{" maths ", "mathematics"},
		{"Mathematics", "mathematics"},
		{"Science", "science"},
	}
	for _, tt := range tests {
		if got := CanonicalSubject(tt.in); got != tt.want {
			t.Errorf("CanonicalSubject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoman_Sequence(t *testing.T) {
	want := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}
	for i, w := range want {
		if got := roman(i + 1); got != w {
			t.Errorf("roman(%d) = %q, want %q", i+1, got, w)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("  English "); got != "english" {
		t.Errorf("Fold = %q, want %q", got, "english")
	}
	if got := Fold(strings.ToUpper("hindi")); got != "hindi" {
		t.Errorf("Fold = %q, want %q", got, "hindi")
	}
}
