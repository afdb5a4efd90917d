package cache

import (
	"encoding/binary"
	"math"
	"sync"
)

// filterFPRate is the target false-positive rate for the pre-filter. At 1%,
// almost every definite miss skips the cache lock.
const filterFPRate = 0.01

// bitsPerWord is the number of bits in each uint64 word.
const bitsPerWord = 64

// ln2Squared is ln(2) squared, from the optimal bit-array size formula.
const ln2Squared = math.Ln2 * math.Ln2

// digestFilter is a Bloom filter over content digests. Cache keys are
// SHA-256 digests and already uniformly distributed, so the probe positions
// come straight from the digest bytes instead of rehashing: the first two
// 8-byte words seed a double-hashing sequence h(i) = h1 + i*h2 mod m.
//
// The filter carries its own lock so Get can consult it before deciding
// whether to take the cache lock at all.
type digestFilter struct {
	mu    sync.RWMutex
	words []uint64
	m     uint64 // Total bits.
	k     uint64 // Probes per key.
}

// newDigestFilter sizes a filter for the expected number of keys at
// filterFPRate. expected must be positive.
func newDigestFilter(expected uint64) *digestFilter {
	m := optimalBits(expected, filterFPRate)
	k := optimalProbes(m, expected)

	return &digestFilter{
		words: make([]uint64, (m+bitsPerWord-1)/bitsPerWord),
		m:     m,
		k:     k,
	}
}

// probes returns the double-hashing seeds for key. The step is forced odd
// so it cycles through any even m.
func probes(key Key) (h1, h2 uint64) {
	h1 = binary.BigEndian.Uint64(key[:8])
	h2 = binary.BigEndian.Uint64(key[8:16]) | 1

	return h1, h2
}

// add marks key as present.
func (f *digestFilter) add(key Key) {
	h1, h2 := probes(key)

	f.mu.Lock()
	for i := range f.k {
		pos := (h1 + i*h2) % f.m
		f.words[pos/bitsPerWord] |= 1 << (pos % bitsPerWord)
	}
	f.mu.Unlock()
}

// test reports whether key is possibly present. False guarantees the key
// was never added.
func (f *digestFilter) test(key Key) bool {
	h1, h2 := probes(key)

	f.mu.RLock()
	defer f.mu.RUnlock()

	for i := range f.k {
		pos := (h1 + i*h2) % f.m
		if f.words[pos/bitsPerWord]&(1<<(pos%bitsPerWord)) == 0 {
			return false
		}
	}

	return true
}

// reset clears the filter without reallocating the bit array.
func (f *digestFilter) reset() {
	f.mu.Lock()
	for i := range f.words {
		f.words[i] = 0
	}
	f.mu.Unlock()
}

// optimalBits returns the bit-array size for n keys at false-positive rate
// fp: m = ceil(-n * ln(fp) / ln(2)^2).
func optimalBits(n uint64, fp float64) uint64 {
	return uint64(math.Ceil(-float64(n) * math.Log(fp) / ln2Squared))
}

// optimalProbes returns the probe count k = round(m/n * ln 2), at least 1.
func optimalProbes(m, n uint64) uint64 {
	k := uint64(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		return 1
	}

	return k
}
