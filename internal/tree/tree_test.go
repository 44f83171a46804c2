package tree

import "testing"

func TestEnsurePath_Idempotent(t *testing.T) {
	tr := New()

	first := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")
	second := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")

	if first != second {
		t.Error("EnsurePath returned a different node for the same keys")
	}
	if first.Level != LevelTopic {
		t.Errorf("Level = %d, want %d", first.Level, LevelTopic)
	}
	if first.Key != "circles" {
		t.Errorf("Key = %q, want %q", first.Key, "circles")
	}
}

func TestEnsurePath_PrefixSharesNodes(t *testing.T) {
	tr := New()

	topic := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")
	chapter := tr.EnsurePath("english", "5", "mathematics", "1 - shapes")

	got, ok := chapter.Child("circles")
	if !ok {
		t.Fatal("chapter has no child circles")
	}
	if got != topic {
		t.Error("chapter child is not the node EnsurePath returned earlier")
	}
}

func TestEnsurePath_SiblingsDoNotCollide(t *testing.T) {
	tr := New()

	a := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")
	b := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "squares")

	if a == b {
		t.Error("distinct sibling keys resolved to the same node")
	}

	chapter := tr.EnsurePath("english", "5", "mathematics", "1 - shapes")
	if n := len(chapter.Children()); n != 2 {
		t.Errorf("chapter has %d children, want 2", n)
	}
}

func TestChildren_InsertionOrder(t *testing.T) {
	tr := New()

	tr.EnsurePath("english", "5")
	tr.EnsurePath("english", "3")
	tr.EnsurePath("english", "10")
	tr.EnsurePath("english", "3") // revisit must not reorder

	lang, _ := tr.Language("english")
	want := []string{"5", "3", "10"}
	children := lang.Children()
	if len(children) != len(want) {
		t.Fatalf("len(children) = %d, want %d", len(children), len(want))
	}
	for i, c := range children {
		if c.Key != want[i] {
			t.Errorf("children[%d].Key = %q, want %q", i, c.Key, want[i])
		}
	}
}

func TestPutVideo_DuplicateLinkOverwrites(t *testing.T) {
	tr := New()
	topic := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")

	topic.PutVideo(VideoRecord{Link: "http://x/a.mp4", Title: "first"})
	topic.PutVideo(VideoRecord{Link: "http://x/b.mp4", Title: "other"})
	topic.PutVideo(VideoRecord{Link: "http://x/a.mp4", Title: "second"})

	videos := topic.Videos()
	if len(videos) != 2 {
		t.Fatalf("len(videos) = %d, want 2", len(videos))
	}
	if videos[0].Title != "second" {
		t.Errorf("videos[0].Title = %q, want %q (overwrite keeps position)", videos[0].Title, "second")
	}
	if videos[1].Link != "http://x/b.mp4" {
		t.Errorf("videos[1].Link = %q, want %q", videos[1].Link, "http://x/b.mp4")
	}
}

func TestPutQuestion_DuplicateIDOverwrites(t *testing.T) {
	tr := New()
	topic := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")

	topic.PutQuestion(QuestionRecord{ID: 101, AllAnswers: []string{"A", "B"}})
	topic.PutQuestion(QuestionRecord{ID: 101, AllAnswers: []string{"C", "D"}})

	questions := topic.Questions()
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}
	if questions[0].AllAnswers[0] != "C" {
		t.Errorf("AllAnswers[0] = %q, want %q", questions[0].AllAnswers[0], "C")
	}
}

func TestRecords_VideosThenQuestions(t *testing.T) {
	tr := New()
	topic := tr.EnsurePath("english", "5", "mathematics", "1 - shapes", "circles")

	topic.PutQuestion(QuestionRecord{ID: 7, AllAnswers: []string{"A", "B"}})
	topic.PutVideo(VideoRecord{Link: "http://x/a.mp4"})

	records := topic.Records()
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Kind() != KindVideo {
		t.Errorf("records[0].Kind() = %d, want KindVideo", records[0].Kind())
	}
	if records[1].Kind() != KindQuestion {
		t.Errorf("records[1].Kind() = %d, want KindQuestion", records[1].Kind())
	}
}
