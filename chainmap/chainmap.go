package chainmap

import (
	"fmt"
	"strings"

	"github.com/dolthub/maphash"
)

const DefaultCapacity = 10

// Initialize a new hashmap with a fixed number of buckets. If capacity is
// left out, DefaultCapacity is used. A capacity below 1 is rejected with
// ErrInvalidCapacity. The number of buckets never changes afterwards; chains
// just grow longer as more keys are added.
func New[K comparable, V any](capacity ...int) (m *Map[K, V], err error) {
	buckets := DefaultCapacity

	if capacity != nil {
		if capacity[0] <= 0 {
			return nil, ErrInvalidCapacity
		}

		buckets = capacity[0]
	}

	m = &Map[K, V]{
		buckets: make([]*link[K, V], buckets),
		hasher:  newHasher[K](),
	}

	return
}

// Fixed-size hashmap with separate chaining. Not safe for concurrent use.
type Map[K comparable, V any] struct {
	buckets []*link[K, V]
	hasher  maphash.Hasher[K]
	length  int
}

func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

func (m *Map[K, V]) Len() int {
	return m.length
}

// Put inserts the value, or replaces it in place if the key already exists.
// New keys become the head of their bucket's chain.
func (m *Map[K, V]) Put(key K, val V) {
	bucket := m.bucket(key)
	f := m.find(bucket, key)

	if f.Next() {
		f.link().val = val
		return
	}

	m.buckets[bucket] = &link[K, V]{
		next: m.buckets[bucket],
		key:  key,
		val:  val,
	}
	m.length++
}

func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	f := m.find(m.bucket(key), key)

	if ok = f.Next(); ok {
		val = f.link().val
	}

	return
}

// Remove reports whether the key was present.
func (m *Map[K, V]) Remove(key K) bool {
	f := m.find(m.bucket(key), key)

	if !f.Next() {
		return false
	}

	f.unlink()
	m.length--

	return true
}

func (m *Map[K, V]) Iterate() Iterator[K, V] {
	return Iterator[K, V]{
		m:      m,
		bucket: 0,
		next:   m.buckets[0],
	}
}

// String dumps every bucket on its own line, e.g.
//
//	Bucket 0: Empty
//	Bucket 1: grape: 30 -> apple: 15
func (m *Map[K, V]) String() string {
	var b strings.Builder

	for i, head := range m.buckets {
		if i > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "Bucket %d: ", i)

		if head == nil {
			b.WriteString("Empty")
			continue
		}

		for l := head; l != nil; l = l.next {
			if l != head {
				b.WriteString(" -> ")
			}

			fmt.Fprintf(&b, "%v: %v", l.key, l.val)
		}
	}

	return b.String()
}

func (m *Map[K, V]) bucket(key K) int {
	return bucketIndex(int64(m.hasher.Hash(key)), len(m.buckets))
}

func (m *Map[K, V]) find(bucket int, key K) finder[K, V] {
	return finder[K, V]{
		slot: &m.buckets[bucket],
		key:  key,
	}
}
