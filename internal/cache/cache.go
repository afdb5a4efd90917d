// Package cache provides a content-addressed store for serialized
// representation trees. Parsing is the dominant cost of a translation run;
// caching by source digest lets repeated runs over unchanged files skip the
// parser entirely.
//
// Entries are evicted least-recently-used within a byte budget, with
// cost-aware sampling so large cold trees go before small hot ones. A Bloom
// pre-filter answers definite misses without taking the cache lock.
package cache

import (
	"crypto/sha256"
	"sync"
	"sync/atomic"
)

// DefaultMaxSize is the default memory budget for the parse cache (256 MB).
const DefaultMaxSize = 256 * 1024 * 1024

// averageTreeEstimate is the serialized tree size assumed when sizing the
// pre-filter. Trees for typical source files run ~16 KB; underestimating
// only inflates the filter, which keeps the false-positive rate low.
const averageTreeEstimate = 16 * 1024

// minExpectedTrees floors the pre-filter size estimate so very small
// budgets do not produce a degenerate filter.
const minExpectedTrees = 64

// evictionSampleSize is the number of recency-tail candidates examined per
// eviction, trading an O(n) scan for O(k).
const evictionSampleSize = 5

// bytesPerKB is the number of bytes in a kilobyte.
const bytesPerKB = 1024.0

// Key identifies source content by its SHA-256 digest. Files with equal
// bytes share one entry regardless of path or parse order.
type Key [sha256.Size]byte

// KeyOf returns the cache key for the given source content.
func KeyOf(content []byte) Key {
	return sha256.Sum256(content)
}

// entry is a node of the recency list.
type entry struct {
	key      Key
	tree     []byte
	accesses int64
	prev     *entry
	next     *entry
}

// cost scores an entry for eviction; the lowest-cost entry goes first.
// Dividing accesses by size in KB makes large rarely-hit trees cheap to
// evict while small hot ones stay.
func (e *entry) cost() float64 {
	sizeKB := float64(len(e.tree)) / bytesPerKB
	if sizeKB < 1 {
		sizeKB = 1
	}

	return float64(e.accesses) / sizeKB
}

// ParseCache stores serialized representation trees keyed by source content
// digest.
//
// Trees are copied on insertion; bytes returned by Get are shared with the
// cache and must be treated as read-only.
type ParseCache struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	head    *entry // Most recently used.
	tail    *entry // Least recently used.
	filter  *digestFilter
	maxSize int64
	curSize int64

	// Counters are atomic so Stats can read them without the write lock.
	hits     atomic.Int64
	misses   atomic.Int64
	filtered atomic.Int64
}

// NewParseCache creates a parse cache with the given memory budget in bytes.
// A non-positive budget selects DefaultMaxSize.
func NewParseCache(maxSize int64) *ParseCache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	expected := max(uint64(maxSize/averageTreeEstimate), minExpectedTrees)

	return &ParseCache{
		entries: make(map[Key]*entry),
		filter:  newDigestFilter(expected),
		maxSize: maxSize,
	}
}

// Get retrieves the serialized tree for a key. Returns false on a miss.
func (c *ParseCache) Get(key Key) ([]byte, bool) {
	if !c.filter.test(key) {
		c.filtered.Add(1)
		c.misses.Add(1)

		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)

		return nil, false
	}

	c.hits.Add(1)

	ent.accesses++
	c.moveToFront(ent)

	return ent.tree, true
}

// Put stores a private copy of tree under key. Keys are content digests, so
// an existing entry is only touched, never replaced. Trees larger than the
// entire budget are silently skipped.
func (c *ParseCache) Put(key Key, tree []byte) {
	size := int64(len(tree))
	if size > c.maxSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[key]; ok {
		ent.accesses++
		c.moveToFront(ent)

		return
	}

	for c.curSize+size > c.maxSize && c.tail != nil {
		c.evictColdest()
	}

	// Still no room after draining the tail; skip before cloning.
	if c.curSize+size > c.maxSize {
		return
	}

	cp := make([]byte, len(tree))
	copy(cp, tree)

	ent := &entry{key: key, tree: cp, accesses: 1}
	c.entries[key] = ent
	c.curSize += size
	c.addToFront(ent)
	c.filter.add(key)
}

// Len returns the number of cached trees.
func (c *ParseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear removes all entries and resets the pre-filter.
func (c *ParseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.head = nil
	c.tail = nil
	c.curSize = 0
	c.filter.reset()
}

// Stats holds cache performance counters.
type Stats struct {
	Hits          int64
	Misses        int64
	BloomFiltered int64 // Lookups short-circuited by the pre-filter.
	Entries       int
	CurrentSize   int64
	MaxSize       int64
}

// HitRate returns the cache hit rate as a fraction (0.0 to 1.0).
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// Stats returns current cache statistics.
func (c *ParseCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		BloomFiltered: c.filtered.Load(),
		Entries:       len(c.entries),
		CurrentSize:   c.curSize,
		MaxSize:       c.maxSize,
	}
}

// evictColdest removes the lowest-cost entry among a sample taken from the
// recency tail.
func (c *ParseCache) evictColdest() {
	victim := c.tail
	if victim == nil {
		return
	}

	lowest := victim.cost()
	sampled := 1

	for ent := victim.prev; ent != nil && sampled < evictionSampleSize; ent = ent.prev {
		if cost := ent.cost(); cost < lowest {
			lowest, victim = cost, ent
		}

		sampled++
	}

	c.removeFromList(victim)
	delete(c.entries, victim.key)
	c.curSize -= int64(len(victim.tree))
}

// moveToFront marks an entry most recently used.
func (c *ParseCache) moveToFront(ent *entry) {
	if ent == c.head {
		return
	}

	c.removeFromList(ent)
	c.addToFront(ent)
}

// addToFront links an entry at the head of the recency list.
func (c *ParseCache) addToFront(ent *entry) {
	ent.prev = nil
	ent.next = c.head

	if c.head != nil {
		c.head.prev = ent
	}

	c.head = ent

	if c.tail == nil {
		c.tail = ent
	}
}

// removeFromList unlinks an entry from the recency list.
func (c *ParseCache) removeFromList(ent *entry) {
	if ent.prev != nil {
		ent.prev.next = ent.next
	} else {
		c.head = ent.next
	}

	if ent.next != nil {
		ent.next.prev = ent.prev
	} else {
		c.tail = ent.prev
	}
}
