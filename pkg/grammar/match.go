package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// Span is a token-index half-open interval [Start, End) into the token
// slice a match was attempted against. It is distinct from token.Range,
// which is a byte range.
type Span struct {
	Start int
	End   int
}

// Len reports the number of tokens spanned.
func (s Span) Len() int { return s.End - s.Start }

// MatchedTag distinguishes what a MatchedSpan represents.
type MatchedTag int

const (
	// MatchedNode marks a span of tokens as a named interior node.
	MatchedNode MatchedTag = iota
	// MatchedNewline marks a single newline token.
	MatchedNewline
	// MatchedMeta marks a zero-width meta segment (Indent/Dedent/Implicit)
	// inserted by a Sequence.
	MatchedMeta
)

// Matched is either SyntaxKind(k) marking a span as a named node, or
// Newline/Meta(kind) for inserted meta-segments.
type Matched struct {
	Tag  MatchedTag
	Kind token.SyntaxKind
}

// Node builds a Matched tagging a span as a named node of kind k.
func Node(k token.SyntaxKind) Matched { return Matched{Tag: MatchedNode, Kind: k} }

// NewlineMatch builds a Matched tagging a single newline token.
func NewlineMatch() Matched { return Matched{Tag: MatchedNewline} }

// MetaMatch builds a Matched tagging a zero-width meta segment.
func MetaMatch(k token.SyntaxKind) Matched { return Matched{Tag: MatchedMeta, Kind: k} }

// MatchedSpan pairs a token-index range with what it was matched as.
type MatchedSpan struct {
	Range   Span
	Matched Matched
}

// MatchResult is the outcome of a Matchable.MatchSegments call.
type MatchResult struct {
	Ok      bool
	Span    Span
	Matched []MatchedSpan
}

// EmptyAt returns a successful, zero-width match at idx (used by
// optional/repeatable matchers and by NonCodeMatcher when the cursor is
// already on a code token).
func EmptyAt(idx int) MatchResult {
	return MatchResult{Ok: true, Span: Span{Start: idx, End: idx}}
}

// Failed is the canonical unsuccessful match result.
func Failed() MatchResult {
	return MatchResult{Ok: false}
}

// Matches reports whether this result represents a successful match
// (including a zero-width one).
func (r MatchResult) Matches() bool { return r.Ok }
