package seqstore

// Equal reports whether a and b hold equal elements in the same order.
// Comparison checks lengths first and short-circuits on the first
// mismatching pair.
func Equal[T comparable](a, b *Store[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element predicate, for element
// types that are not comparable.
func EqualFunc[T any](a, b *Store[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}
