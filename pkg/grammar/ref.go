package grammar

import "github.com/tentacle-scylla/scql/pkg/token"

// Ref resolves a named grammar lazily via the dialect table, by name.
// This avoids cyclic construction at grammar-build time and is what lets
// dialect inheritance patch a single named grammar without rebuilding the
// whole graph.
type Ref struct {
	Name     string
	Exclude  []string // excluded alternative names, for Ref(X, exclude=[Y])
	Optional bool

	cacheKey CacheKey
}

// NewRef builds a Ref to the named grammar.
func NewRef(name string) *Ref {
	return &Ref{Name: name, cacheKey: NextCacheKey()}
}

// AsOptional returns a copy of r marked optional.
func (r *Ref) AsOptional() *Ref {
	cp := *r
	cp.Optional = true
	cp.cacheKey = NextCacheKey()
	return &cp
}

func (r *Ref) resolve(d Dialect) (Matchable, bool) {
	target, ok := d.Grammar(r.Name)
	if !ok {
		return nil, false
	}
	for _, ex := range r.Exclude {
		if ex == r.Name {
			return nil, false
		}
	}
	return target, true
}

func (r *Ref) Simple(d Dialect, crumbs []string) (SimpleHint, bool) {
	if HasCrumb(crumbs, r.Name) {
		// Cycle: disable pruning for this branch.
		return SimpleHint{}, false
	}
	target, ok := r.resolve(d)
	if !ok {
		return SimpleHint{}, false
	}
	return target.Simple(d, append(crumbs, r.Name))
}

func (r *Ref) MatchSegments(tokens []token.Token, startIdx int, ctx *ParseContext) (MatchResult, error) {
	target, ok := r.resolve(ctx.Dialect)
	if !ok {
		if r.Optional {
			return EmptyAt(startIdx), nil
		}
		return Failed(), nil
	}

	if cached, found := ctx.Lookup(target.CacheKey(), startIdx); found {
		return cached, nil
	}
	result, err := target.MatchSegments(tokens, startIdx, ctx)
	if err != nil {
		return MatchResult{}, err
	}
	ctx.Store(target.CacheKey(), startIdx, result)
	if !result.Matches() && r.Optional {
		return EmptyAt(startIdx), nil
	}
	return result, nil
}

func (r *Ref) CacheKey() CacheKey { return r.cacheKey }
func (r *Ref) IsOptional() bool   { return r.Optional }
