// Package segment implements the concrete syntax tree the parser builds:
// Token leaves carrying dual source/templated spans, and named Node
// segments grouping them. Every segment in a given parse gets a stable
// id from a per-parse Tables arena, used later to anchor LintFix edits.
package segment

import (
	"strings"

	"github.com/tentacle-scylla/scql/pkg/token"
)

// Id is a stable, per-parse identifier for one segment. Fix anchors refer
// to segments by Id rather than by pointer so that anchor aggregation
// can use Id as a map key.
type Id uint32

// Tables is the per-parse id generator. Every segment built by one
// parser.Parse call shares one Tables so ids are unique within that
// parse.
type Tables struct {
	next Id
}

// NewTables starts a fresh id generator at 1 (0 is reserved, meaning "no
// anchor").
func NewTables() *Tables { return &Tables{next: 1} }

// NextId hands out the next unique id.
func (t *Tables) NextId() Id {
	id := t.next
	t.next++
	return id
}

// Segment is either a Token leaf (Children == nil) or an interior Node
// (Children non-nil, possibly empty for a matched-but-vacuous node).
type Segment struct {
	Id       Id
	Kind     token.SyntaxKind
	Raw      string     // only meaningful for leaves; interior nodes compute it from children
	Span     token.Span // only meaningful for leaves
	Children []*Segment
}

// IsLeaf reports whether this segment is a Token leaf.
func (s *Segment) IsLeaf() bool { return s.Children == nil }

// IsCode reports whether this segment counts as code (a non-code leaf, or
// any node whose own raw content is entirely non-code, is excluded).
func (s *Segment) IsCode() bool {
	if s.IsLeaf() {
		return s.Kind.IsCode()
	}
	for _, c := range s.Children {
		if c.IsCode() {
			return true
		}
	}
	return false
}

// IsType reports whether this segment's Kind is k.
func (s *Segment) IsType(k token.SyntaxKind) bool { return s.Kind == k }

// RawText concatenates this segment's templated text. For a leaf this is its
// own Raw; for a node it is every child's Raw concatenated in order.
func (s *Segment) RawText() string {
	if s.IsLeaf() {
		return s.Raw
	}
	var b strings.Builder
	for _, c := range s.Children {
		b.WriteString(c.RawText())
	}
	return b.String()
}

// SourceRange returns the segment's span in source-string coordinates: a
// leaf's own Span.Source, or the union of its first and last child's
// source ranges for a node.
func (s *Segment) SourceRange() token.Range {
	if s.IsLeaf() {
		return s.Span.Source
	}
	if len(s.Children) == 0 {
		return token.Range{}
	}
	first := s.Children[0].SourceRange()
	last := s.Children[len(s.Children)-1].SourceRange()
	return token.Range{Start: first.Start, End: last.End}
}

// TemplatedRange is the templated-space analogue of SourceRange.
func (s *Segment) TemplatedRange() token.Range {
	if s.IsLeaf() {
		return s.Span.Templated
	}
	if len(s.Children) == 0 {
		return token.Range{}
	}
	first := s.Children[0].TemplatedRange()
	last := s.Children[len(s.Children)-1].TemplatedRange()
	return token.Range{Start: first.Start, End: last.End}
}

// RecursiveCrawl walks the tree in document order, calling visit for
// every segment (leaf or node) whose Kind is in kinds. Matches nested
// inside a matching segment are still visited (no early return), mirroring
// the original's unrestricted recursive_crawl.
func (s *Segment) RecursiveCrawl(kinds token.KindSet, visit func(*Segment)) {
	if kinds.Has(s.Kind) {
		visit(s)
	}
	for _, c := range s.Children {
		c.RecursiveCrawl(kinds, visit)
	}
}

// Leaves returns every Token leaf under s, in document order.
func (s *Segment) Leaves() []*Segment {
	if s.IsLeaf() {
		return []*Segment{s}
	}
	var out []*Segment
	for _, c := range s.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}
