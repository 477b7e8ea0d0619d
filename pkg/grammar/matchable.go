// Package grammar implements the combinator alphabet that dialect
// grammars are built from: Ref, Sequence, OneOf, AnyNumberOf,
// Delimited, Bracketed, Anything, Nothing, NonCodeMatcher,
// LookaheadExclude and MetaSegment, plus the StringParser/RegexParser
// token-kind assertions that sit at the leaves of a grammar graph.
package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// SimpleHint is the first-set pruning hint a Matchable may offer: the set
// of raw-upper keyword strings and the set of token kinds that could
// possibly start a match. A matcher with no useful hint returns
// (SimpleHint{}, false), disabling pruning for it.
type SimpleHint struct {
	Keywords map[string]struct{}
	Kinds    token.KindSet
}

// Dialect is the minimal grammar-lookup surface a Matchable needs. It is
// implemented by pkg/dialect.Dialect; grammar does not import dialect
// (dialect imports grammar) to avoid a cycle.
type Dialect interface {
	// Grammar resolves a named grammar reference (Ref target).
	Grammar(name string) (Matchable, bool)
	// Keywords returns the named keyword set (e.g. "reserved_keywords",
	// "unreserved_keywords").
	Keywords(setName string) map[string]struct{}
	// CaseSensitive reports whether raw token comparisons should be
	// case-sensitive for this dialect (false for all known SQL dialects).
	CaseSensitive() bool
}

// Matchable is a composable grammar fragment: the parser's public
// surface.
type Matchable interface {
	// Simple returns a first-set pruning hint, or ok=false if this
	// matcher is too complex to summarize (disabling pruning for it).
	// crumbs carries the chain of Ref names currently being resolved, to
	// detect grammar cycles.
	Simple(d Dialect, crumbs []string) (hint SimpleHint, ok bool)

	// MatchSegments attempts to match starting at tokens[startIdx:].
	MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error)

	// CacheKey identifies this matcher instance for memoization.
	CacheKey() CacheKey

	// IsOptional reports whether this matcher may legally match nothing.
	IsOptional() bool
}
