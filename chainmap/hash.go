package chainmap

import "github.com/dolthub/maphash"

// The hasher is seeded once per map, so bucket indices are stable for the
// lifetime of a map but not across maps or processes.
func newHasher[K comparable]() maphash.Hasher[K] {
	return maphash.NewHasher[K]()
}

// Reduces a signed hash into [0, buckets).
func bucketIndex(hash int64, buckets int) int {
	idx := int(hash % int64(buckets))

	if idx < 0 {
		idx += buckets
	}

	return idx
}
