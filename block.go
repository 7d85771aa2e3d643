package seqstore

import (
	"math"
	"unsafe"
)

// allocBlock allocates a block of extents whole chunks and returns a
// pointer to its first slot, or nil when extents is 0. Slots start zeroed;
// the store treats everything past its logical length as uninitialized and
// never reads it.
func allocBlock[T any](extents int) *T {
	if extents == 0 {
		return nil
	}
	checkLayout[T](extents)
	block := make([]T, extents*ExtentLen)
	return &block[0]
}

// reallocBlock moves the first keep slots of old onto a fresh block of
// newExtents chunks. One allocation and one copy regardless of how many
// extents the size changes by.
func reallocBlock[T any](old *T, keep int, newExtents int) *T {
	buf := allocBlock[T](newExtents)
	if buf == nil || old == nil {
		return buf
	}
	copy(unsafe.Slice(buf, keep), unsafe.Slice(old, keep))
	return buf
}

// checkLayout panics when a block of the given extent count cannot be laid
// out in the address space. Detected before any slot is touched, so a
// failed growth never moves or drops an element.
func checkLayout[T any](extents int) {
	if extents > math.MaxInt/ExtentLen {
		panic("seqstore: capacity overflows address space")
	}
	elemSize := unsafe.Sizeof(*new(T))
	if elemSize > 0 && uintptr(extents*ExtentLen) > math.MaxInt/elemSize {
		panic("seqstore: capacity overflows address space")
	}
}

// slot returns a pointer to the i'th slot of buf. The caller guarantees i
// is inside the allocated block.
func slot[T any](buf *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(buf), uintptr(i)*unsafe.Sizeof(*buf)))
}
