package seqstore

import (
	"fmt"
	"unsafe"
)

// ExtentLen is the number of element slots in one extent, the unit of
// allocation granularity.
const ExtentLen = 16

// Store is a growable contiguous sequence of T backed by a manually
// managed block sized in whole extents. Not goroutine-safe; the backing
// block is exclusively owned by one store at a time.
type Store[T any] struct {
	buf      *T
	extents  int
	length   int
	released bool
}

// New creates an empty store with a single pre-allocated extent.
func New[T any]() *Store[T] {
	return &Store[T]{buf: allocBlock[T](1), extents: 1}
}

// WithCapacity creates an empty store pre-sized to hold at least n
// elements, rounded up to a whole number of extents. Panics if n is
// negative or the resulting block cannot be laid out in the address space.
func WithCapacity[T any](n int) *Store[T] {
	if n < 0 {
		panic(fmt.Sprintf("seqstore: negative capacity %d", n))
	}
	extents := requiredExtents(n)
	return &Store[T]{buf: allocBlock[T](extents), extents: extents}
}

// FromSlice creates a store holding a copy of xs, in order. The store is
// pre-sized to len(xs), so construction reallocates at most once.
func FromSlice[T any](xs []T) *Store[T] {
	s := WithCapacity[T](len(xs))
	for _, x := range xs {
		s.Push(x)
	}
	return s
}

// Len returns the number of elements currently in the store.
func (s *Store[T]) Len() int { return s.length }

// Cap returns the number of slots currently allocated.
func (s *Store[T]) Cap() int { return s.extents * ExtentLen }

// Get returns the element at index i. Panics when i is out of range.
func (s *Store[T]) Get(i int) T {
	s.check(i)
	return *slot(s.buf, i)
}

// Set overwrites the element at index i. Panics when i is out of range.
// The previous occupant is overwritten without its Release hook running;
// use Remove first if it owns resources.
func (s *Store[T]) Set(i int, v T) {
	s.check(i)
	*slot(s.buf, i) = v
}

// Push appends v at the end of the store. Amortized O(1); a reallocation
// is paid only when the length crosses an extent boundary.
func (s *Store[T]) Push(v T) {
	s.panicIfReleased()
	s.grow(1)
	*slot(s.buf, s.length-1) = v
}

// Insert places v at index i, shifting the elements at [i, Len()) one slot
// to the right. i == Len() is valid and appends. Panics when i is outside
// [0, Len()].
func (s *Store[T]) Insert(i int, v T) {
	s.panicIfReleased()
	if i < 0 || i > s.length {
		panic(fmt.Sprintf("seqstore: insert index %d out of range [0, %d]", i, s.length))
	}
	s.grow(1)
	view := unsafe.Slice(s.buf, s.length)
	copy(view[i+1:], view[i:s.length-1])
	view[i] = v
}

// Remove takes the element at index i out of the store, shifting the
// elements at [i+1, Len()) one slot left, and returns it. Ownership moves
// to the caller: the element's Release hook is not invoked. Panics when i
// is out of range.
func (s *Store[T]) Remove(i int) T {
	s.check(i)
	view := unsafe.Slice(s.buf, s.length)
	v := view[i]
	copy(view[i:], view[i+1:])
	// The vacated last slot must not keep a stale copy alive.
	var zero T
	view[s.length-1] = zero
	s.shrink(1)
	return v
}

// Clear releases every element in index order and shrinks the store to
// zero length, freeing the backing block entirely. The store remains
// usable afterwards.
func (s *Store[T]) Clear() {
	s.panicIfReleased()
	view := unsafe.Slice(s.buf, s.length)
	for i := range view {
		releaseElem(view[i])
	}
	s.shrink(s.length)
}

// Release clears the store and drops the backing block for good. Any
// subsequent mutation or element access panics; read-only diagnostics
// (Len, Cap, String, Metrics) keep working and report an empty store.
// Element Release hooks run exactly once per element across the store's
// lifetime, and the block is dropped exactly once.
func (s *Store[T]) Release() {
	s.Clear()
	s.buf = nil
	s.extents = 0
	s.released = true
}

// grow extends the logical length by count slots, reallocating at most
// once, to the exact extent count the new length requires. Only the slots
// initialized before the grow are carried over: reading past the old
// block, even transiently, is out of bounds.
func (s *Store[T]) grow(count int) {
	keep := s.length
	s.length += count
	if want := requiredExtents(s.length); want > s.extents {
		s.reallocExtents(want, keep)
	}
}

// shrink trims the logical length by count slots, reallocating down as
// soon as the new length fits in fewer extents. At zero extents the block
// is freed outright rather than kept as an empty buffer.
func (s *Store[T]) shrink(count int) {
	s.length -= count
	if want := requiredExtents(s.length); want < s.extents {
		s.reallocExtents(want, s.length)
	}
}

// reallocExtents moves the store onto a block of exactly extents chunks,
// carrying over the first keep slots. The caller guarantees keep fits in
// both the old and the new block.
func (s *Store[T]) reallocExtents(extents, keep int) {
	s.buf = reallocBlock(s.buf, keep, extents)
	s.extents = extents
}

// requiredExtents is the single source of truth for the chunked-exact
// policy: the minimum whole number of extents covering n slots.
func requiredExtents(n int) int {
	extents := n / ExtentLen
	if n%ExtentLen > 0 {
		extents++
	}
	return extents
}

// check validates an element index against [0, length). Runs before any
// destructive write on every access path.
func (s *Store[T]) check(i int) {
	s.panicIfReleased()
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("seqstore: index %d out of range [0, %d)", i, s.length))
	}
}

// panicIfReleased panics if the store has been released.
func (s *Store[T]) panicIfReleased() {
	if s.released {
		panic("seqstore: use after Release()")
	}
}
