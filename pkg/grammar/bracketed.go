package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// Bracketed matches an opening bracket, Content (matched against exactly
// the tokens strictly between the brackets), and the matching closing
// bracket. There is no separate bracket pre-lexing pass in this engine
// (unlike the ANTLR-generated parser this replaces), so Bracketed finds
// its own matching close bracket by tracking nesting depth over the
// OpenKind/CloseKind pair directly.
type Bracketed struct {
	OpenKind  token.SyntaxKind
	CloseKind token.SyntaxKind
	Content   Matchable

	cacheKey CacheKey
}

func NewBracketed(openKind, closeKind token.SyntaxKind, content Matchable) *Bracketed {
	return &Bracketed{OpenKind: openKind, CloseKind: closeKind, Content: content, cacheKey: NextCacheKey()}
}

func (b *Bracketed) Simple(Dialect, []string) (SimpleHint, bool) {
	return SimpleHint{Kinds: token.NewKindSet(b.OpenKind)}, true
}

// findClose returns the token index of the close bracket matching the
// open bracket at openIdx, or -1 if unbalanced before end of input.
func (b *Bracketed) findClose(tokens []token.Token, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case b.OpenKind:
			depth++
		case b.CloseKind:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (b *Bracketed) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	if startIdx >= len(tokens) || tokens[startIdx].Kind != b.OpenKind {
		return Failed(), nil
	}
	closeIdx := b.findClose(tokens, startIdx)
	if closeIdx < 0 {
		return Failed(), nil
	}

	matched := []MatchedSpan{{
		Range:   Span{Start: startIdx, End: startIdx + 1},
		Matched: Node(b.OpenKind),
	}}

	innerStart := startIdx + 1
	ncStart, _ := NonCode.MatchSegments(tokens, innerStart, ctx)
	if ncStart.Matches() && ncStart.Span.Len() > 0 {
		innerStart = ncStart.Span.End
	}

	if b.Content != nil && innerStart < closeIdx {
		contentResult, err := ctx.DeeperMatch([]Matchable{closeBracketMatcher{kind: b.CloseKind}}, func(c *ParseContext) (MatchResult, error) {
			return b.Content.MatchSegments(tokens, innerStart, c)
		})
		if err != nil {
			return MatchResult{}, err
		}
		if contentResult.Matches() {
			matched = append(matched, contentResult.Matched...)
			if contentResult.Span.End != closeIdx && contentResult.Span.Len() > 0 {
				matched = append(matched, MatchedSpan{
					Range:   Span{Start: contentResult.Span.End, End: closeIdx},
					Matched: Node(token.Unparsable),
				})
			}
		} else if closeIdx > innerStart {
			matched = append(matched, MatchedSpan{
				Range:   Span{Start: innerStart, End: closeIdx},
				Matched: Node(token.Unparsable),
			})
		}
	}

	matched = append(matched, MatchedSpan{
		Range:   Span{Start: closeIdx, End: closeIdx + 1},
		Matched: Node(b.CloseKind),
	})

	return MatchResult{Ok: true, Span: Span{Start: startIdx, End: closeIdx + 1}, Matched: matched}, nil
}

func (b *Bracketed) CacheKey() CacheKey { return b.cacheKey }
func (b *Bracketed) IsOptional() bool   { return false }

// closeBracketMatcher is an internal terminator used while matching
// Bracketed content, so Anything/Greedy sequences inside brackets stop at
// the bracket's own close token instead of consuming past it.
type closeBracketMatcher struct {
	kind token.SyntaxKind
}

func (c closeBracketMatcher) Simple(Dialect, []string) (SimpleHint, bool) {
	return SimpleHint{Kinds: token.NewKindSet(c.kind)}, true
}

func (c closeBracketMatcher) MatchSegments(tokens []token.Token, idx int, _ *ParseContext) (MatchResult, error) {
	if idx < len(tokens) && tokens[idx].Kind == c.kind {
		return MatchResult{Ok: true, Span: Span{Start: idx, End: idx}}, nil
	}
	return Failed(), nil
}

func (c closeBracketMatcher) CacheKey() CacheKey { return closeBracketCacheKey }
func (c closeBracketMatcher) IsOptional() bool   { return false }
