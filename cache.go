package capglob

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the capacity of the process-wide matcher cache, and the
// default for caches made with NewMatcherCache.
const DefaultCacheSize = 256

type matcherKey struct {
	pattern       string
	caseSensitive bool
}

// MatcherCache memoises compiled segment matchers, so that repeated directory
// visits don't re-translate the same wildcard segment. Entries are keyed by
// (segment, case sensitivity) and evicted least-recently-used once the cache
// is full. It is safe for concurrent use.
//
// Globbers share a process-wide cache unless one is supplied with
// WithMatcherCache - handy for tests wanting isolation, or hosts wanting
// different bounds.
type MatcherCache struct {
	c *lru.Cache[matcherKey, *matcher]
}

// NewMatcherCache creates a cache holding up to size compiled matchers.
func NewMatcherCache(size int) (*MatcherCache, error) {
	c, err := lru.New[matcherKey, *matcher](size)
	if err != nil {
		return nil, fmt.Errorf("creating matcher cache: %w", err)
	}
	return &MatcherCache{c: c}, nil
}

// compile returns the matcher for the segment pattern, compiling and storing
// it on first use.
func (mc *MatcherCache) compile(pat string, caseSensitive bool) *matcher {
	key := matcherKey{pat, caseSensitive}
	if m, ok := mc.c.Get(key); ok {
		return m
	}
	m := newMatcher(pat, caseSensitive)
	mc.c.Add(key, m)
	return m
}

// Len reports how many compiled matchers the cache currently holds.
func (mc *MatcherCache) Len() int { return mc.c.Len() }

// Purge drops every cached matcher.
func (mc *MatcherCache) Purge() { mc.c.Purge() }

var defaultCache = func() *MatcherCache {
	mc, err := NewMatcherCache(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return mc
}()
