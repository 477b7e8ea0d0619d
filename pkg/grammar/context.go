package grammar

// ParseContext threads the dialect, the current terminator set, and the
// memoization cache through a parse. Match results are memoised on
// (cache_key, start_idx) for the duration of one parse; the cache is
// invalidated at each recursion into DeeperMatch that pushes new
// terminators.
type ParseContext struct {
	Dialect     Dialect
	Terminators []Matchable
	crumbs      []string

	cache    map[cacheEntry]MatchResult
	cacheGen int
	nextGenP *int
}

type cacheEntry struct {
	gen   int
	key   CacheKey
	start int
}

// NewParseContext builds a root ParseContext for one parse invocation.
func NewParseContext(d Dialect) *ParseContext {
	gen := 0
	return &ParseContext{
		Dialect:  d,
		cache:    make(map[cacheEntry]MatchResult),
		nextGenP: &gen,
	}
}

// Crumbs returns the current Ref-name resolution chain (for cycle
// detection in Simple()).
func (c *ParseContext) Crumbs() []string { return c.crumbs }

// WithCrumb returns a new copy of c's crumb trail with name appended, for
// passing down into Simple(); c itself is not modified.
func (c *ParseContext) WithCrumb(name string) []string {
	next := make([]string, len(c.crumbs)+1)
	copy(next, c.crumbs)
	next[len(c.crumbs)] = name
	return next
}

// HasCrumb reports whether name is already on the crumb trail (a cycle).
func HasCrumb(crumbs []string, name string) bool {
	for _, c := range crumbs {
		if c == name {
			return true
		}
	}
	return false
}

// Lookup returns a memoised match result for (key, startIdx) in the
// current cache generation, if present.
func (c *ParseContext) Lookup(key CacheKey, startIdx int) (MatchResult, bool) {
	r, ok := c.cache[cacheEntry{gen: c.cacheGen, key: key, start: startIdx}]
	return r, ok
}

// Store memoises a match result for (key, startIdx) in the current cache
// generation.
func (c *ParseContext) Store(key CacheKey, startIdx int, result MatchResult) {
	c.cache[cacheEntry{gen: c.cacheGen, key: key, start: startIdx}] = result
}

// DeeperMatch runs fn with pushTerminators appended to the terminator
// stack, in a fresh cache generation (so memoised results computed under
// a different terminator set never leak into this one).
func (c *ParseContext) DeeperMatch(pushTerminators []Matchable, fn func(*ParseContext) (MatchResult, error)) (MatchResult, error) {
	child := &ParseContext{
		Dialect:     c.Dialect,
		Terminators: append(append([]Matchable{}, c.Terminators...), pushTerminators...),
		crumbs:      c.crumbs,
		cache:       c.cache,
		nextGenP:    c.nextGenP,
	}
	*child.nextGenP++
	child.cacheGen = *child.nextGenP
	return fn(child)
}
