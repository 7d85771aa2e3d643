// Package seqstore implements a chunk-granular growable sequence store
// (a dynamic array) backed by a manually managed memory block.
//
// # Overview
//
// A Store[T] owns one contiguous block of element slots, sized in whole
// extents of ExtentLen (16) slots each. Unlike the doubling policy used by
// built-in slices, the store follows a chunked-exact policy: the block
// always spans the minimum number of extents covering the current length.
// This is useful for:
//
//   - Workloads where allocated capacity must track logical size tightly
//   - Containers holding resource-owning elements that need explicit,
//     exactly-once cleanup
//   - Code that wants allocation granularity as a visible, testable contract
//
// # Basic Usage
//
//	s := seqstore.FromSlice([]int{4, 2, 0, 69})
//	defer s.Release() // Clean up when done
//
//	s.Push(-5)
//	s.Insert(3, 1337)
//	v := s.Remove(1)
//
//	fmt.Println(s.Get(0), s.Len(), s.Cap())
//
// # Memory Layout
//
// Storage grows and shrinks one reallocation at a time, always to exactly
// ceil(len/ExtentLen) extents. A reallocation is paid only when the length
// crosses an extent boundary. The flip side of the exact policy is that a
// push/pop sequence straddling a boundary reallocates on every crossing;
// this is an accepted trade-off of tight capacity tracking, not a bug.
//
// # Element Cleanup
//
// Element types that implement Releaser get their Release method invoked
// exactly once per element by Clear and Release, in index order. Remove
// hands the element to the caller without invoking it.
//
// # Thread Safety
//
// A Store is not goroutine-safe and is exclusively owned: one owner at a
// time, no sharing, no aliasing views of the backing block.
//
// # Error Model
//
// There are no recoverable errors. Out-of-range indexes, negative
// capacities and use after Release are programmer errors and panic with a
// "seqstore:" prefixed message before any destructive write happens.
// Allocation failure is process-fatal.
package seqstore
