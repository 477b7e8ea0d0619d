package segment

import (
	"github.com/tentacle-scylla/scql/pkg/grammar"
	"github.com/tentacle-scylla/scql/pkg/token"
)

// Build converts a token stream and the flat, range-nested MatchedSpan
// list a top-level grammar.MatchResult produced into a Segment tree. The
// Matched list is a preorder stream (a node's own tag precedes every tag
// nested inside it, per the bubble-up convention every combinator in
// pkg/grammar follows), so it can be consumed with a single cursor and a
// recursion keyed on token-index range containment, the same technique
// an XML/SAX-style reader uses to reconstruct nesting from a flat event
// stream.
func Build(tables *Tables, tokens []token.Token, result grammar.MatchResult) []*Segment {
	b := &builder{tables: tables, tokens: tokens, entries: result.Matched}
	children, _ := b.consume(0, result.Span)
	return children
}

type builder struct {
	tables  *Tables
	tokens  []token.Token
	entries []grammar.MatchedSpan
}

// consume builds the ordered list of child segments lying within bound,
// starting at entries[idx], stopping at the first entry outside bound (or
// end of entries). It returns the children and the index just past the
// last entry it consumed (including nested ones, since nested entries are
// consumed by the recursive call for their own parent).
func (b *builder) consume(idx int, bound grammar.Span) ([]*Segment, int) {
	var children []*Segment
	pos := bound.Start

	for idx < len(b.entries) {
		e := b.entries[idx]
		if e.Range.Start < pos || e.Range.End > bound.End {
			break
		}

		if e.Range.Start > pos {
			children = append(children, b.leaves(pos, e.Range.Start)...)
		}

		switch e.Matched.Tag {
		case grammar.MatchedMeta:
			children = append(children, &Segment{
				Id:   b.tables.NextId(),
				Kind: e.Matched.Kind,
			})
			pos = e.Range.End
			idx++

		case grammar.MatchedNewline:
			children = append(children, b.leaves(e.Range.Start, e.Range.End)...)
			pos = e.Range.End
			idx++

		default: // MatchedNode
			idx++
			grandchildren, next := b.consume(idx, e.Range)
			idx = next
			node := collapse(&Segment{
				Id:       b.tables.NextId(),
				Kind:     e.Matched.Kind,
				Children: grandchildren,
			})
			children = append(children, node)
			pos = e.Range.End
		}
	}

	if bound.End > pos {
		children = append(children, b.leaves(pos, bound.End)...)
	}
	return children, idx
}

// leaves emits one Segment per token in [start, end), preserving non-code
// tokens (whitespace, comments) exactly as the lexer produced them -
// gaps in the Matched list are precisely where non-code tokens live, since
// no combinator tags them.
func (b *builder) leaves(start, end int) []*Segment {
	out := make([]*Segment, 0, end-start)
	for i := start; i < end && i < len(b.tokens); i++ {
		tok := b.tokens[i]
		out = append(out, &Segment{
			Id:   b.tables.NextId(),
			Kind: tok.Kind,
			Raw:  tok.Raw,
			Span: tok.Span,
		})
	}
	return out
}

// collapse replaces a node with exactly one leaf child of the same Kind
// spanning the node's entire range with that leaf directly: a retagging
// combinator (StringParser/RegexParser with ResultAs==Kind) produces a
// Node entry wrapping a single token it does not actually need to
// distinguish from the token itself.
func collapse(n *Segment) *Segment {
	if len(n.Children) == 1 && n.Children[0].IsLeaf() && n.Children[0].Kind == n.Kind {
		return n.Children[0]
	}
	return n
}
