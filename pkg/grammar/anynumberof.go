package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// AnyNumberOf matches its Elements repeatedly, in any order, between Min
// and Max times (Max<=0 means unbounded), skipping non-code between
// repetitions. Each repetition tries every element and takes the longest
// match, the same way OneOf does, so overlapping alternatives never
// starve one another.
type AnyNumberOf struct {
	Elements []Matchable
	Min      int
	Max      int // 0 means unbounded

	cacheKey CacheKey
}

func NewAnyNumberOf(min, max int, elements ...Matchable) *AnyNumberOf {
	return &AnyNumberOf{Elements: elements, Min: min, Max: max, cacheKey: NextCacheKey()}
}

func (a *AnyNumberOf) Simple(d Dialect, crumbs []string) (SimpleHint, bool) {
	if a.Min > 0 {
		return (&OneOf{Alternatives: a.Elements}).Simple(d, crumbs)
	}
	return SimpleHint{}, false
}

func (a *AnyNumberOf) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	idx := startIdx
	var matched []MatchedSpan
	count := 0

	for a.Max <= 0 || count < a.Max {
		// Skip non-code between repetitions (but don't commit to it
		// unless a following repetition actually matches).
		probe := idx
		ncResult, _ := NonCode.MatchSegments(tokens, probe, ctx)
		if ncResult.Matches() && ncResult.Span.Len() > 0 {
			probe = ncResult.Span.End
		}

		var best MatchResult
		found := false
		for _, el := range a.Elements {
			result, err := el.MatchSegments(tokens, probe, ctx)
			if err != nil {
				return MatchResult{}, err
			}
			if result.Matches() && (!found || result.Span.Len() > best.Span.Len()) {
				best = result
				found = true
			}
		}
		if !found || best.Span.Len() == 0 {
			break
		}

		// Non-code between repetitions carries no Matched tag; the tree
		// builder treats gaps in the Matched list as implicit non-code
		// leaves, so there is nothing to record here beyond advancing idx.
		matched = append(matched, best.Matched...)
		idx = best.Span.End
		count++
	}

	if count < a.Min {
		return Failed(), nil
	}
	if count == 0 {
		return EmptyAt(startIdx), nil
	}
	return MatchResult{Ok: true, Span: Span{Start: startIdx, End: idx}, Matched: matched}, nil
}

func (a *AnyNumberOf) CacheKey() CacheKey { return a.cacheKey }
func (a *AnyNumberOf) IsOptional() bool   { return a.Min == 0 }

// Delimited matches Content repeated with Delimiter between occurrences.
// MinDelimiters requires at least that many delimiter occurrences (and
// therefore that many+1 content matches); AllowTrailing permits (but does
// not require) a final dangling delimiter.
type Delimited struct {
	Content        Matchable
	Delimiter      Matchable
	MinDelimiters  int
	AllowTrailing  bool

	cacheKey CacheKey
}

func NewDelimited(content, delimiter Matchable, minDelimiters int, allowTrailing bool) *Delimited {
	return &Delimited{
		Content:       content,
		Delimiter:     delimiter,
		MinDelimiters: minDelimiters,
		AllowTrailing: allowTrailing,
		cacheKey:      NextCacheKey(),
	}
}

func (d *Delimited) Simple(dia Dialect, crumbs []string) (SimpleHint, bool) {
	return d.Content.Simple(dia, crumbs)
}

func (d *Delimited) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	idx := startIdx
	var matched []MatchedSpan
	delimCount := 0

	first, err := d.Content.MatchSegments(tokens, idx, ctx)
	if err != nil {
		return MatchResult{}, err
	}
	if !first.Matches() {
		if d.MinDelimiters == 0 {
			return EmptyAt(startIdx), nil
		}
		return Failed(), nil
	}
	matched = append(matched, first.Matched...)
	idx = first.Span.End

	for {
		probe := idx
		ncResult, _ := NonCode.MatchSegments(tokens, probe, ctx)
		if ncResult.Matches() && ncResult.Span.Len() > 0 {
			probe = ncResult.Span.End
		}

		delimResult, err := d.Delimiter.MatchSegments(tokens, probe, ctx)
		if err != nil {
			return MatchResult{}, err
		}
		if !delimResult.Matches() || delimResult.Span.Len() == 0 {
			break
		}

		contentProbe := delimResult.Span.End
		ncResult2, _ := NonCode.MatchSegments(tokens, contentProbe, ctx)
		if ncResult2.Matches() && ncResult2.Span.Len() > 0 {
			contentProbe = ncResult2.Span.End
		}

		contentResult, err := d.Content.MatchSegments(tokens, contentProbe, ctx)
		if err != nil {
			return MatchResult{}, err
		}
		if !contentResult.Matches() {
			if d.AllowTrailing {
				matched = append(matched, delimResult.Matched...)
				idx = delimResult.Span.End
				delimCount++
			}
			break
		}

		matched = append(matched, delimResult.Matched...)
		matched = append(matched, contentResult.Matched...)
		idx = contentResult.Span.End
		delimCount++
	}

	if delimCount < d.MinDelimiters {
		return Failed(), nil
	}
	return MatchResult{Ok: true, Span: Span{Start: startIdx, End: idx}, Matched: matched}, nil
}

func (d *Delimited) CacheKey() CacheKey { return d.cacheKey }
func (d *Delimited) IsOptional() bool   { return d.MinDelimiters == 0 }
