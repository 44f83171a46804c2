// Package tree holds the hierarchical content model built from the source
// spreadsheets: language > grade > subject > chapter > topic, with video and
// assessment content hanging off topic-level nodes.
package tree

// Level identifies a node's depth in the hierarchy.
type Level int

const (
	LevelRoot Level = iota
	LevelLanguage
	LevelGrade
	LevelSubject
	LevelChapter
	LevelTopic
)

// ChapterAssessmentKey is the synthetic topic-level key that collects
// questions belonging to a whole chapter rather than a single topic.
const ChapterAssessmentKey = "Chapter Assessment"

// Kind tags a content record variant.
type Kind int

const (
	KindVideo Kind = iota
	KindQuestion
)

// Record is a content leaf attached to a topic-level node.
type Record interface {
	Kind() Kind
}

// VideoRecord describes one video entry from the video catalog.
type VideoRecord struct {
	Title     string
	Link      string
	Copyright string
	License   string
	Icon      string
}

func (VideoRecord) Kind() Kind { return KindVideo }

// QuestionRecord describes one multiple-choice question from an assessment
// bank. Text, Image and CorrectAnswer are nil when the source cell is null;
// a nil CorrectAnswer means the answer index pointed at an absent option.
type QuestionRecord struct {
	ID            int
	Text          *string
	Image         *string
	CorrectAnswer *string
	AllAnswers    []string
}

func (QuestionRecord) Kind() Kind { return KindQuestion }

// Node is one level of the content hierarchy. Children and content buckets
// preserve insertion order; keys are expected to be normalized by callers.
type Node struct {
	Level Level
	Key   string

	children   map[string]*Node
	childOrder []string

	videos     map[string]VideoRecord
	videoOrder []string

	questions     map[int]QuestionRecord
	questionOrder []int
}

// Tree is the root of the content hierarchy for one ingestion run.
type Tree struct {
	root *Node
}

// New creates an empty content tree.
func New() *Tree {
	return &Tree{root: newNode(LevelRoot, "")}
}

func newNode(level Level, key string) *Node {
	return &Node{
		Level:     level,
		Key:       key,
		children:  make(map[string]*Node),
		videos:    make(map[string]VideoRecord),
		questions: make(map[int]QuestionRecord),
	}
}

// EnsurePath walks from the root creating any missing node along keys and
// returns the node at the final key. Calling it again with the same keys
// returns the same node; existing siblings are never touched.
func (t *Tree) EnsurePath(keys ...string) *Node {
	n := t.root
	for _, key := range keys {
		n = n.child(key)
	}
	return n
}

func (n *Node) child(key string) *Node {
	if c, ok := n.children[key]; ok {
		return c
	}
	c := newNode(n.Level+1, key)
	n.children[key] = c
	n.childOrder = append(n.childOrder, key)
	return c
}

// Child returns the named child node, if present.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Children returns child nodes in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.childOrder))
	for _, key := range n.childOrder {
		out = append(out, n.children[key])
	}
	return out
}

// Languages returns the top-level language nodes in insertion order.
func (t *Tree) Languages() []*Node {
	return t.root.Children()
}

// Language returns one top-level language node, if present.
func (t *Tree) Language(key string) (*Node, bool) {
	return t.root.Child(key)
}

// PutVideo inserts a video keyed by its link. A duplicate link overwrites
// the existing record in place without changing its position.
func (n *Node) PutVideo(v VideoRecord) {
	if _, ok := n.videos[v.Link]; !ok {
		n.videoOrder = append(n.videoOrder, v.Link)
	}
	n.videos[v.Link] = v
}

// Videos returns this node's videos in insertion order.
func (n *Node) Videos() []VideoRecord {
	out := make([]VideoRecord, 0, len(n.videoOrder))
	for _, link := range n.videoOrder {
		out = append(out, n.videos[link])
	}
	return out
}

// Video returns the video with the given link, if present.
func (n *Node) Video(link string) (VideoRecord, bool) {
	v, ok := n.videos[link]
	return v, ok
}

// PutQuestion inserts a question keyed by its id. A duplicate id overwrites
// the existing record in place without changing its position.
func (n *Node) PutQuestion(q QuestionRecord) {
	if _, ok := n.questions[q.ID]; !ok {
		n.questionOrder = append(n.questionOrder, q.ID)
	}
	n.questions[q.ID] = q
}

// Questions returns this node's questions in insertion order.
func (n *Node) Questions() []QuestionRecord {
	out := make([]QuestionRecord, 0, len(n.questionOrder))
	for _, id := range n.questionOrder {
		out = append(out, n.questions[id])
	}
	return out
}

// Question returns the question with the given id, if present.
func (n *Node) Question(id int) (QuestionRecord, bool) {
	q, ok := n.questions[id]
	return q, ok
}

// Records returns all content on this node, videos first, in insertion order.
func (n *Node) Records() []Record {
	out := make([]Record, 0, len(n.videoOrder)+len(n.questionOrder))
	for _, v := range n.Videos() {
		out = append(out, v)
	}
	for _, q := range n.Questions() {
		out = append(out, q)
	}
	return out
}
