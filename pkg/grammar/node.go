package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// NodeMatcher wraps an inner grammar and, when it matches, retags the
// matched span as a single named node of Kind. This is how dialect
// grammars turn "Sequence(...)" into a concrete "select_statement" node
// in the segment tree: the inner grammar describes the shape, NodeMatcher
// gives it identity.
type NodeMatcher struct {
	Kind    token.SyntaxKind
	Grammar Matchable

	cacheKey CacheKey
}

// NewNodeMatcher builds a NodeMatcher with a fresh cache key.
func NewNodeMatcher(kind token.SyntaxKind, grammar Matchable) *NodeMatcher {
	return &NodeMatcher{Kind: kind, Grammar: grammar, cacheKey: NextCacheKey()}
}

func (n *NodeMatcher) Simple(d Dialect, crumbs []string) (SimpleHint, bool) {
	return n.Grammar.Simple(d, crumbs)
}

func (n *NodeMatcher) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	if startIdx >= len(tokens) {
		return Failed(), nil
	}
	inner, err := n.Grammar.MatchSegments(tokens, startIdx, ctx)
	if err != nil || !inner.Matches() || inner.Span.Len() == 0 {
		return Failed(), err
	}
	// Flatten: this node's own tag, followed by every nested node/meta
	// tag bubbled up from the inner match. The tree builder reconstructs
	// nesting purely from Range containment.
	matched := make([]MatchedSpan, 0, len(inner.Matched)+1)
	matched = append(matched, MatchedSpan{Range: inner.Span, Matched: Node(n.Kind)})
	matched = append(matched, inner.Matched...)
	return MatchResult{
		Ok:      true,
		Span:    inner.Span,
		Matched: matched,
	}, nil
}

func (n *NodeMatcher) CacheKey() CacheKey { return n.cacheKey }
func (n *NodeMatcher) IsOptional() bool   { return n.Grammar.IsOptional() }
