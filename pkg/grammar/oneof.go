package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// OneOf tries each alternative and keeps the longest match, breaking ties
// by declaration order (the first-declared alternative wins on an exact
// tie in matched length). Alternatives whose Simple() hint can be proven
// disjoint from the current token are skipped without a full match
// attempt.
type OneOf struct {
	Alternatives []Matchable

	cacheKey CacheKey
}

func NewOneOf(alts ...Matchable) *OneOf {
	return &OneOf{Alternatives: alts, cacheKey: NextCacheKey()}
}

func (o *OneOf) Simple(d Dialect, crumbs []string) (SimpleHint, bool) {
	combined := SimpleHint{Keywords: map[string]struct{}{}, Kinds: token.KindSet{}}
	anyRaw := false
	for _, alt := range o.Alternatives {
		hint, ok := alt.Simple(d, crumbs)
		if !ok {
			return SimpleHint{}, false
		}
		if len(hint.Keywords) == 0 {
			// This alternative accepts any raw value of its kinds, so the
			// union cannot be narrowed by keyword.
			anyRaw = true
		}
		for kw := range hint.Keywords {
			combined.Keywords[kw] = struct{}{}
		}
		for k := range hint.Kinds {
			combined.Kinds[k] = struct{}{}
		}
	}
	if anyRaw {
		combined.Keywords = nil
	}
	return combined, true
}

// prune reports whether alt can be skipped for the current lookahead
// token because its Simple() hint is known and disjoint from it.
func prune(alt Matchable, d Dialect, crumbs []string, tok token.Token) bool {
	hint, ok := alt.Simple(d, crumbs)
	if !ok {
		return false // no hint available, must attempt a full match
	}
	if len(hint.Kinds) > 0 {
		if !hint.Kinds.Has(tok.Kind) {
			return true
		}
	}
	if len(hint.Keywords) > 0 {
		if _, isKeyword := hint.Keywords[upper(tok.Raw)]; !isKeyword {
			return true
		}
	}
	return false
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func (o *OneOf) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	if startIdx >= len(tokens) {
		return Failed(), nil
	}
	tok := tokens[startIdx]
	crumbs := ctx.Crumbs()

	var best MatchResult
	found := false
	for _, alt := range o.Alternatives {
		if prune(alt, ctx.Dialect, crumbs, tok) {
			continue
		}
		result, err := alt.MatchSegments(tokens, startIdx, ctx)
		if err != nil {
			return MatchResult{}, err
		}
		if !result.Matches() {
			continue
		}
		if !found || result.Span.Len() > best.Span.Len() {
			best = result
			found = true
		}
	}
	if !found {
		return Failed(), nil
	}
	return best, nil
}

func (o *OneOf) CacheKey() CacheKey { return o.cacheKey }
func (o *OneOf) IsOptional() bool   { return false }
