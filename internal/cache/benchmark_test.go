package cache_test

import (
	"fmt"
	"testing"

	"github.com/Sumatoshi-tech/coalesce/internal/cache"
)

const (
	// benchCacheSize is the cache budget for benchmarks (4 MB).
	benchCacheSize = 4 * 1024 * 1024

	// benchPreloadCount is the number of trees preloaded for benchmarks.
	benchPreloadCount = 10_000

	// benchMissRatio80 is the fraction of lookups targeting absent keys (80%).
	benchMissRatio80 = 80

	// benchPercentDivisor converts a percentage to a modular threshold.
	benchPercentDivisor = 100

	// benchTreeSize is the serialized tree size used in benchmarks.
	benchTreeSize = 256
)

// benchKeys precomputes cache keys for synthetic source files so digest
// computation stays out of the timed loops.
func benchKeys(n int) []cache.Key {
	keys := make([]cache.Key, n)
	for i := range keys {
		keys[i] = cache.KeyOf(fmt.Appendf(nil, "source file %d", i))
	}

	return keys
}

// preload inserts the first benchPreloadCount keys into the cache.
func preload(b *testing.B, c *cache.ParseCache, keys []cache.Key) {
	b.Helper()

	tree := make([]byte, benchTreeSize)

	for i := range benchPreloadCount {
		c.Put(keys[i], tree)
	}
}

// BenchmarkGet_MissHeavy measures Get with 80% of lookups on absent keys.
// The pre-filter short-circuits most misses without lock acquisition.
func BenchmarkGet_MissHeavy(b *testing.B) {
	keys := benchKeys(2 * benchPreloadCount)
	c := cache.NewParseCache(benchCacheSize)
	preload(b, c, keys)

	b.ResetTimer()

	for i := range b.N {
		idx := i % benchPreloadCount
		if i%benchPercentDivisor < benchMissRatio80 {
			idx += benchPreloadCount
		}

		c.Get(keys[idx])
	}
}

// BenchmarkGet_HitHeavy measures Get with every lookup a hit, which is the
// pre-filter's overhead case.
func BenchmarkGet_HitHeavy(b *testing.B) {
	keys := benchKeys(benchPreloadCount)
	c := cache.NewParseCache(benchCacheSize)
	preload(b, c, keys)

	b.ResetTimer()

	for i := range b.N {
		c.Get(keys[i%benchPreloadCount])
	}
}

// BenchmarkPut measures insertion throughput including the filter update.
func BenchmarkPut(b *testing.B) {
	keys := benchKeys(benchPreloadCount)
	c := cache.NewParseCache(benchCacheSize)
	tree := make([]byte, benchTreeSize)

	b.ResetTimer()

	for i := range b.N {
		c.Put(keys[i%benchPreloadCount], tree)
	}
}
