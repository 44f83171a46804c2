// Package render walks a completed content tree and emits the channel
// node hierarchy consumed by the content repository. Tree keys are folded
// strings; display titles are produced here by title-casing.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/p-n-ai/content-chef/internal/ingest"
	"github.com/p-n-ai/content-chef/internal/manifest"
	"github.com/p-n-ai/content-chef/internal/tree"
)

// License is the content license attached to published nodes.
type License struct {
	ID              string `json:"license_id"`
	CopyrightHolder string `json:"copyright_holder"`
}

// NewLicense returns the channel's CC BY license descriptor for holder.
func NewLicense(holder string) License {
	return License{ID: "CC BY", CopyrightHolder: holder}
}

// Channel is the root node of an assembled channel.
type Channel struct {
	SourceDomain string       `json:"source_domain"`
	SourceID     string       `json:"source_id"`
	Title        string       `json:"title"`
	Language     string       `json:"language"`
	Description  string       `json:"description,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty"`
	Children     []*TopicNode `json:"children"`
}

// TopicNode is a grouping node: language, grade, subject, chapter or topic.
type TopicNode struct {
	SourceID  string         `json:"source_id"`
	Title     string         `json:"title"`
	Topics    []*TopicNode   `json:"topics,omitempty"`
	Videos    []VideoNode    `json:"videos,omitempty"`
	Exercises []ExerciseNode `json:"exercises,omitempty"`
}

// VideoNode is a publishable video leaf.
type VideoNode struct {
	SourceID  string  `json:"source_id"`
	Title     string  `json:"title"`
	File      string  `json:"file"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	License   License `json:"license"`
}

// ExerciseNode is a publishable assessment leaf holding its questions.
type ExerciseNode struct {
	SourceID  string     `json:"source_id"`
	Title     string     `json:"title"`
	License   License    `json:"license"`
	Questions []Question `json:"questions"`
}

// Question is one multiple-choice question inside an exercise.
type Question struct {
	ID            int      `json:"id"`
	Text          *string  `json:"text,omitempty"`
	Image         *string  `json:"image,omitempty"`
	CorrectAnswer *string  `json:"correct_answer"`
	AllAnswers    []string `json:"all_answers"`
}

// Renderer turns a content tree into channel nodes.
type Renderer struct {
	title   cases.Caser
	license License
}

// New creates a renderer licensing all content to holder.
func New(copyrightHolder string) *Renderer {
	return &Renderer{
		title:   cases.Title(language.English),
		license: NewLicense(copyrightHolder),
	}
}

// Channel renders the whole tree under the manifest's channel metadata.
func (r *Renderer) Channel(ch manifest.Channel, t *tree.Tree) *Channel {
	out := &Channel{
		SourceDomain: ch.Domain,
		SourceID:     ch.SourceID,
		Title:        ch.Name,
		Language:     LanguageCode(ch.Language),
		Description:  ch.Description,
		Thumbnail:    ch.Thumbnail,
	}
	for _, lang := range t.Languages() {
		out.Children = append(out.Children, r.languageNode(lang))
	}
	return out
}

func (r *Renderer) languageNode(n *tree.Node) *TopicNode {
	node := &TopicNode{SourceID: n.Key, Title: r.title.String(n.Key)}
	for _, grade := range n.Children() {
		node.Topics = append(node.Topics, r.gradeNode(node.SourceID, grade))
	}
	return node
}

func (r *Renderer) gradeNode(parentID string, n *tree.Node) *TopicNode {
	label := ingest.GradeLabel(n.Key)
	node := &TopicNode{
		SourceID: fmt.Sprintf("%s-%s", parentID, label),
		Title:    strings.ReplaceAll(label, "_", " "),
	}
	for _, subject := range n.Children() {
		node.Topics = append(node.Topics, r.subjectNode(node.SourceID, subject))
	}
	return node
}

func (r *Renderer) subjectNode(parentID string, n *tree.Node) *TopicNode {
	node := &TopicNode{
		SourceID: fmt.Sprintf("%s-%s", parentID, n.Key),
		Title:    r.title.String(n.Key),
	}
	for _, chapter := range n.Children() {
		node.Topics = append(node.Topics, r.chapterNode(node.SourceID, chapter))
	}
	return node
}

func (r *Renderer) chapterNode(parentID string, n *tree.Node) *TopicNode {
	number, title := splitChapterKey(n.Key)
	display := r.title.String(title)
	slug := strings.ReplaceAll(strings.ToUpper(title), " ", "_")
	if number != "" {
		display = fmt.Sprintf("%s - %s", number, display)
		slug = ingest.ChapterSlug(number, title)
	}
	node := &TopicNode{
		SourceID: fmt.Sprintf("%s-%s", parentID, slug),
		Title:    display,
	}
	for _, child := range n.Children() {
		if child.Key == tree.ChapterAssessmentKey {
			node.Exercises = append(node.Exercises, r.exercise(node.SourceID, tree.ChapterAssessmentKey, child))
			continue
		}
		node.Topics = append(node.Topics, r.topicNode(node.SourceID, child))
	}
	return node
}

func (r *Renderer) topicNode(parentID string, n *tree.Node) *TopicNode {
	node := &TopicNode{
		SourceID: fmt.Sprintf("%s-%s", parentID, n.Key),
		Title:    r.title.String(n.Key),
	}
	for _, v := range n.Videos() {
		node.Videos = append(node.Videos, VideoNode{
			SourceID:  fmt.Sprintf("%s-%s", node.SourceID, v.Link),
			Title:     v.Title,
			File:      v.Link,
			Thumbnail: v.Icon,
			License:   r.license,
		})
	}
	if questions := n.Questions(); len(questions) > 0 {
		node.Exercises = append(node.Exercises, r.exercise(node.SourceID, r.title.String(n.Key)+" Assessment", n))
	}
	return node
}

func (r *Renderer) exercise(parentID, title string, n *tree.Node) ExerciseNode {
	ex := ExerciseNode{
		SourceID: fmt.Sprintf("%s-assessment", parentID),
		Title:    title,
		License:  r.license,
	}
	for _, q := range n.Questions() {
		ex.Questions = append(ex.Questions, Question{
			ID:            q.ID,
			Text:          q.Text,
			Image:         q.Image,
			CorrectAnswer: q.CorrectAnswer,
			AllAnswers:    q.AllAnswers,
		})
	}
	return ex
}

// splitChapterKey splits a "{number} - {title}" chapter key back into its
// parts. A key without the separator comes back with an empty number.
func splitChapterKey(key string) (number, title string) {
	parts := strings.SplitN(key, " - ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", key
}

// Language name to BCP-47 code for the names observed in the source
// catalogs. Unknown names fall through to language.Parse.
var languageCodes = map[string]string{
	"english":  "en",
	"hindi":    "hi",
	"marathi":  "mr",
	"telugu":   "te",
	"kannada":  "kn",
	"tamil":    "ta",
	"gujarati": "gu",
	"bengali":  "bn",
	"punjabi":  "pa",
	"odia":     "or",
	"urdu":     "ur",
}

// LanguageCode resolves a catalog language name to a BCP-47 tag string.
// Names that resolve to nothing come back as "und".
func LanguageCode(name string) string {
	folded := ingest.Fold(name)
	if code, ok := languageCodes[folded]; ok {
		return code
	}
	tag, err := language.Parse(folded)
	if err != nil {
		return "und"
	}
	return tag.String()
}
