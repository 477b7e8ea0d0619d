package grammar

import (
	"regexp"
	"strings"

	"github.com/tentacle-scylla/scql/pkg/token"
)

// StringParser asserts that the current token has a given Kind and,
// optionally, a specific raw value (compared case-insensitively, since
// every SQL dialect this engine targets folds keyword case).
type StringParser struct {
	Kind     token.SyntaxKind
	Value    string // empty means "any raw value of this Kind"
	ResultAs token.SyntaxKind // the kind to tag the matched leaf as; defaults to Kind

	cacheKey CacheKey
}

// NewStringParser builds a StringParser, assigning it a fresh cache key.
func NewStringParser(kind token.SyntaxKind, value string, resultAs token.SyntaxKind) *StringParser {
	return &StringParser{Kind: kind, Value: value, ResultAs: resultAs, cacheKey: NextCacheKey()}
}

func (p *StringParser) resultKind() token.SyntaxKind {
	if p.ResultAs != token.Unknown {
		return p.ResultAs
	}
	return p.Kind
}

func (p *StringParser) Simple(Dialect, []string) (SimpleHint, bool) {
	hint := SimpleHint{Kinds: token.NewKindSet(p.Kind)}
	if p.Value != "" {
		hint.Keywords = map[string]struct{}{strings.ToUpper(p.Value): {}}
	}
	return hint, true
}

func (p *StringParser) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	if startIdx >= len(tokens) {
		return Failed(), nil
	}
	tok := tokens[startIdx]
	if tok.Kind != p.Kind {
		return Failed(), nil
	}
	if p.Value != "" && !strings.EqualFold(tok.Raw, p.Value) {
		return Failed(), nil
	}
	return MatchResult{
		Ok:   true,
		Span: Span{Start: startIdx, End: startIdx + 1},
		Matched: []MatchedSpan{{
			Range:   Span{Start: startIdx, End: startIdx + 1},
			Matched: Node(p.resultKind()),
		}},
	}, nil
}

func (p *StringParser) CacheKey() CacheKey { return p.cacheKey }
func (p *StringParser) IsOptional() bool   { return false }

// RegexParser asserts that the current token's raw text matches a
// regular expression, re-tagging it as ResultAs.
type RegexParser struct {
	Kind     token.SyntaxKind
	Pattern  *regexp.Regexp
	ResultAs token.SyntaxKind

	cacheKey CacheKey
}

func NewRegexParser(kind token.SyntaxKind, pattern *regexp.Regexp, resultAs token.SyntaxKind) *RegexParser {
	return &RegexParser{Kind: kind, Pattern: pattern, ResultAs: resultAs, cacheKey: NextCacheKey()}
}

func (p *RegexParser) resultKind() token.SyntaxKind {
	if p.ResultAs != token.Unknown {
		return p.ResultAs
	}
	return p.Kind
}

func (p *RegexParser) Simple(Dialect, []string) (SimpleHint, bool) {
	return SimpleHint{Kinds: token.NewKindSet(p.Kind)}, true
}

func (p *RegexParser) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	if startIdx >= len(tokens) {
		return Failed(), nil
	}
	tok := tokens[startIdx]
	if tok.Kind != p.Kind || !p.Pattern.MatchString(tok.Raw) {
		return Failed(), nil
	}
	return MatchResult{
		Ok:   true,
		Span: Span{Start: startIdx, End: startIdx + 1},
		Matched: []MatchedSpan{{
			Range:   Span{Start: startIdx, End: startIdx + 1},
			Matched: Node(p.resultKind()),
		}},
	}, nil
}

func (p *RegexParser) CacheKey() CacheKey { return p.cacheKey }
func (p *RegexParser) IsOptional() bool   { return false }

// Anything matches every remaining token up to (but not including) the
// first terminator match, or to the end of input if no terminator fires.
type Anything struct {
	cacheKey CacheKey
}

func NewAnything() *Anything { return &Anything{cacheKey: NextCacheKey()} }

func (a *Anything) Simple(Dialect, []string) (SimpleHint, bool) { return SimpleHint{}, false }

func (a *Anything) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	end := len(tokens)
	for i := startIdx; i < len(tokens); i++ {
		if terminatorMatches(tokens, i, ctx) {
			end = i
			break
		}
	}
	if end == startIdx {
		return EmptyAt(startIdx), nil
	}
	return MatchResult{Ok: true, Span: Span{Start: startIdx, End: end}}, nil
}

func (a *Anything) CacheKey() CacheKey { return a.cacheKey }
func (a *Anything) IsOptional() bool   { return false }

func terminatorMatches(tokens []token.Token, idx int, ctx *ParseContext) bool {
	for _, term := range ctx.Terminators {
		r, err := term.MatchSegments(tokens, idx, ctx)
		if err == nil && r.Matches() && r.Span.Len() > 0 {
			return true
		}
	}
	return false
}

// Nothing never matches.
type Nothing struct {
	cacheKey CacheKey
}

func NewNothing() *Nothing { return &Nothing{cacheKey: NextCacheKey()} }

func (n *Nothing) Simple(Dialect, []string) (SimpleHint, bool) { return SimpleHint{}, false }
func (n *Nothing) MatchSegments([]token.Token, int, *ParseContext) (MatchResult, error) {
	return Failed(), nil
}
func (n *Nothing) CacheKey() CacheKey { return n.cacheKey }
func (n *Nothing) IsOptional() bool   { return false }

// NonCodeMatcher advances across whitespace/comments without consuming
// code. It is a process-wide singleton with the reserved cache key 0.
type NonCodeMatcher struct{}

// NonCode is the singleton instance dialect grammars should reference.
var NonCode = &NonCodeMatcher{}

func (n *NonCodeMatcher) Simple(Dialect, []string) (SimpleHint, bool) { return SimpleHint{}, false }

func (n *NonCodeMatcher) MatchSegments(tokens []token.Token, idx int, ctx *ParseContext) (MatchResult, error) {
	matchedIdx := idx
	for i := idx; i < len(tokens); i++ {
		if tokens[i].IsCode() {
			matchedIdx = i
			break
		}
		matchedIdx = i + 1
	}
	if matchedIdx > idx {
		return MatchResult{Ok: true, Span: Span{Start: idx, End: matchedIdx}}, nil
	}
	return EmptyAt(idx), nil
}

func (n *NonCodeMatcher) CacheKey() CacheKey { return NonCodeCacheKey }
func (n *NonCodeMatcher) IsOptional() bool   { return false }

// MetaSegment injects a zero-width Indent/Dedent/Implicit segment. It is
// only meaningful as a Sequence element; calling MatchSegments directly on
// it is a programmer error.
type MetaSegment struct {
	Kind token.SyntaxKind
}

func Indent() MetaSegment         { return MetaSegment{Kind: token.Indent} }
func Dedent() MetaSegment         { return MetaSegment{Kind: token.Dedent} }
func ImplicitIndent() MetaSegment { return MetaSegment{Kind: token.Implicit} }

func (m MetaSegment) Simple(Dialect, []string) (SimpleHint, bool) { return SimpleHint{}, false }

func (m MetaSegment) MatchSegments([]token.Token, int, *ParseContext) (MatchResult, error) {
	panic("MetaSegment has no match method, it should only be used in a Sequence")
}

func (m MetaSegment) CacheKey() CacheKey { return NonCodeCacheKey }
func (m MetaSegment) IsOptional() bool   { return false }

// LookaheadExclude matches the first token only when, skipping any
// intervening non-code tokens, the next code token is not lookaheadToken.
type LookaheadExclude struct {
	FirstToken     string
	LookaheadToken string

	cacheKey CacheKey
}

func NewLookaheadExclude(first, lookahead string) *LookaheadExclude {
	return &LookaheadExclude{FirstToken: first, LookaheadToken: lookahead, cacheKey: NextCacheKey()}
}

func (l *LookaheadExclude) Simple(Dialect, []string) (SimpleHint, bool) { return SimpleHint{}, false }

func (l *LookaheadExclude) MatchSegments(tokens []token.Token, idx int, ctx *ParseContext) (MatchResult, error) {
	if idx >= len(tokens) || !strings.EqualFold(tokens[idx].Raw, l.FirstToken) {
		return Failed(), nil
	}
	next := idx + 1
	for next < len(tokens) && !tokens[next].IsCode() {
		next++
	}
	if next < len(tokens) && strings.EqualFold(tokens[next].Raw, l.LookaheadToken) {
		return Failed(), nil
	}
	return MatchResult{Ok: true, Span: Span{Start: idx, End: idx + 1}}, nil
}

func (l *LookaheadExclude) CacheKey() CacheKey { return l.cacheKey }
func (l *LookaheadExclude) IsOptional() bool   { return false }
