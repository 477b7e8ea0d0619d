package grammar

import "sync/atomic"

// CacheKey identifies a Matchable instance for memoization purposes.
// Equality of matcher instances is by cache key, not structural equality.
// 0 is reserved for the singleton NonCodeMatcher.
type CacheKey uint64

var cacheKeyCounter uint64 = 0

// NextCacheKey hands out the next process-wide monotonic cache key.
func NextCacheKey() CacheKey {
	return CacheKey(atomic.AddUint64(&cacheKeyCounter, 1))
}

// NonCodeCacheKey is the reserved cache key of the singleton
// NonCodeMatcher.
const NonCodeCacheKey CacheKey = 0

// closeBracketCacheKey is the cache key of the internal
// closeBracketMatcher terminator Bracketed pushes while matching content.
// It is not reserved: NextCacheKey also hands out 1 first. It is never
// memoised via ParseContext.Lookup/Store (terminators are checked
// directly), so sharing that value is safe.
const closeBracketCacheKey CacheKey = 1
