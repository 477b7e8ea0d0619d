package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// ParseMode controls how a Sequence behaves when one of its elements
// fails to match.
type ParseMode int

const (
	// Strict aborts on the first element failure.
	Strict ParseMode = iota
	// Greedy commits once any prefix has matched and collects subsequent
	// non-matching input into an Unparsable node, up to a terminator.
	Greedy
	// GreedyOnceStarted behaves Strict until the first element matches,
	// then behaves Greedy.
	GreedyOnceStarted
)

// SequenceElement is either a regular Matchable or a MetaSegment. Meta
// elements never consume input; they are inserted into the matched
// stream at their position in the sequence.
type SequenceElement struct {
	Matcher Matchable
	Meta    *MetaSegment
}

// El wraps a regular Matchable as a SequenceElement.
func El(m Matchable) SequenceElement { return SequenceElement{Matcher: m} }

// MetaEl wraps a MetaSegment as a SequenceElement.
func MetaEl(m MetaSegment) SequenceElement { return SequenceElement{Meta: &m} }

// Sequence matches its elements left to right.
type Sequence struct {
	Elements    []SequenceElement
	Mode        ParseMode
	Terminators []Matchable // extends the inherited terminator set for Greedy modes

	cacheKey CacheKey
}

// NewSequence builds a Strict-mode Sequence.
func NewSequence(elements ...SequenceElement) *Sequence {
	return &Sequence{Elements: elements, cacheKey: NextCacheKey()}
}

// WithMode returns a copy of s using the given ParseMode.
func (s *Sequence) WithMode(mode ParseMode) *Sequence {
	cp := *s
	cp.Mode = mode
	cp.cacheKey = NextCacheKey()
	return &cp
}

// WithTerminators returns a copy of s that pushes additional terminators
// while matching (used by Greedy/GreedyOnceStarted).
func (s *Sequence) WithTerminators(terms ...Matchable) *Sequence {
	cp := *s
	cp.Terminators = terms
	cp.cacheKey = NextCacheKey()
	return &cp
}

func (s *Sequence) Simple(d Dialect, crumbs []string) (SimpleHint, bool) {
	for _, el := range s.Elements {
		if el.Meta != nil {
			continue
		}
		hint, ok := el.Matcher.Simple(d, crumbs)
		if !el.Matcher.IsOptional() {
			return hint, ok
		}
		// An optional leading element doesn't narrow the first set by
		// itself; keep scanning for the first non-optional element.
		if !ok {
			return SimpleHint{}, false
		}
	}
	return SimpleHint{}, false
}

func (s *Sequence) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	run := func(c *ParseContext) (MatchResult, error) {
		return s.matchStrictPrefix(tokens, startIdx, c)
	}

	if s.Mode == Strict {
		return run(ctx)
	}

	if len(s.Terminators) == 0 {
		return run(ctx)
	}
	return ctx.DeeperMatch(s.Terminators, run)
}

// matchStrictPrefix matches elements left to right. On the first element
// failure: Strict aborts the whole match; Greedy (or GreedyOnceStarted
// once a prefix has matched) commits to what matched and wraps the
// remaining tokens up to the next terminator (or EOF) in an Unparsable
// node.
func (s *Sequence) matchStrictPrefix(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	idx := startIdx
	var matched []MatchedSpan
	anyMatched := false

	for i, el := range s.Elements {
		if el.Meta != nil {
			matched = append(matched, MatchedSpan{
				Range:   Span{Start: idx, End: idx},
				Matched: MetaMatch(el.Meta.Kind),
			})
			continue
		}

		// Skip non-code between elements.
		ncResult, _ := NonCode.MatchSegments(tokens, idx, ctx)
		if ncResult.Matches() && ncResult.Span.Len() > 0 {
			idx = ncResult.Span.End
		}

		result, err := el.Matcher.MatchSegments(tokens, idx, ctx)
		if err != nil {
			return MatchResult{}, err
		}
		if !result.Matches() {
			if el.Matcher.IsOptional() {
				continue
			}
			committed := s.Mode == Greedy || (s.Mode == GreedyOnceStarted && anyMatched)
			if !committed {
				return Failed(), nil
			}
			return s.wrapUnparsable(tokens, startIdx, idx, matched, ctx)
		}

		anyMatched = anyMatched || result.Span.Len() > 0
		matched = append(matched, result.Matched...)
		idx = result.Span.End
		_ = i
	}

	return MatchResult{Ok: true, Span: Span{Start: startIdx, End: idx}, Matched: matched}, nil
}

// wrapUnparsable collects tokens from idx up to the next terminator (or
// end of input) into a single Unparsable node and returns the sequence's
// overall match as everything matched so far plus that trailing node.
func (s *Sequence) wrapUnparsable(tokens []token.Token, startIdx, idx int, matched []MatchedSpan, ctx *ParseContext) (MatchResult, error) {
	end := len(tokens)
	for i := idx; i < len(tokens); i++ {
		if tokens[i].Kind == token.EndOfFile {
			end = i
			break
		}
		if terminatorMatches(tokens, i, ctx) {
			end = i
			break
		}
	}
	if end > idx {
		matched = append(matched, MatchedSpan{
			Range:   Span{Start: idx, End: end},
			Matched: Node(token.Unparsable),
		})
	}
	return MatchResult{Ok: true, Span: Span{Start: startIdx, End: end}, Matched: matched}, nil
}

func (s *Sequence) CacheKey() CacheKey { return s.cacheKey }
func (s *Sequence) IsOptional() bool   { return false }
