package types

// FindingKind discriminates the concrete variant of a Finding
type FindingKind string

const (
	KindAIPhrase         FindingKind = "ai_phrase"
	KindLongCommentBlock FindingKind = "long_comment_block"
)

// Finding is one detected issue in a scanned file.
// The set of variants is closed: AIPhraseFinding, LongCommentBlockFinding,
// and UnknownFinding for kinds this build does not know how to render.
type Finding interface {
	File() string
	Kind() FindingKind
	isFinding()
}

// AIPhraseFinding records a configured phrase appearing on a line.
type AIPhraseFinding struct {
	Path   string
	Line   int    // 1-based
	Phrase string // the configured phrase, lowercase
}

func (f AIPhraseFinding) File() string      { return f.Path }
func (f AIPhraseFinding) Kind() FindingKind { return KindAIPhrase }
func (AIPhraseFinding) isFinding()          {}

// LongCommentBlockFinding records a run of consecutive comment lines
// longer than the configured limit.
type LongCommentBlockFinding struct {
	Path      string
	StartLine int // 1-based, inclusive
	EndLine   int // 1-based, inclusive
	Lines     int
	Preview   string
}

func (f LongCommentBlockFinding) File() string      { return f.Path }
func (f LongCommentBlockFinding) Kind() FindingKind { return KindLongCommentBlock }
func (LongCommentBlockFinding) isFinding()          {}

// UnknownFinding carries a finding kind that has no dedicated variant.
// Renderers fall back to a generic line for it.
type UnknownFinding struct {
	Path     string
	KindName FindingKind
}

func (f UnknownFinding) File() string      { return f.Path }
func (f UnknownFinding) Kind() FindingKind { return f.KindName }
func (UnknownFinding) isFinding()          {}
