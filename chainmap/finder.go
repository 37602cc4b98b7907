package chainmap

// Walks one chain. The slot is whatever points at the current link: the
// bucket itself for the head, otherwise the predecessor's next field.
type finder[K comparable, V any] struct {
	slot **link[K, V]
	key  K
}

// Advances until the slot holds a link with the searched key, or the end of
// the chain (nil) is reached.
func (f *finder[K, V]) Next() bool {
	for *f.slot != nil {
		if (*f.slot).key == f.key {
			return true
		}

		f.slot = &(*f.slot).next
	}

	return false
}

func (f *finder[K, V]) link() *link[K, V] {
	return *f.slot
}

// Unlinks the current link by pointing its slot at its successor.
func (f *finder[K, V]) unlink() {
	l := *f.slot
	*f.slot = l.next
	l.next = nil
}
