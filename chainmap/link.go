package chainmap

// A link owns the next link in its bucket's chain.
type link[K comparable, V any] struct {
	next *link[K, V]
	key  K
	val  V
}
