package chainmap

// Iterator visits every entry, bucket by bucket and head to tail within a
// bucket. The map must not be modified while iterating.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	link   *link[K, V]
	bucket int
	next   *link[K, V]
}

func (iter *Iterator[K, V]) Next() bool {
	for iter.next == nil {
		if iter.bucket >= len(iter.m.buckets)-1 {
			return false
		}

		iter.bucket++
		iter.next = iter.m.buckets[iter.bucket]
	}

	iter.link = iter.next
	iter.next = iter.link.next

	return true
}

func (iter *Iterator[K, V]) Key() K {
	return iter.link.key
}

func (iter *Iterator[K, V]) Val() V {
	return iter.link.val
}

// Bucket returns the bucket index of the current entry.
func (iter *Iterator[K, V]) Bucket() int {
	return iter.bucket
}
