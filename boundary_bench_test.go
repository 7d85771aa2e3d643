package seqstore

import "testing"

// BenchmarkBoundaryThrash measures the reallocation cost of repeated
// push/pop exactly at an extent boundary, the documented worst case of the
// chunked-exact policy.
func BenchmarkBoundaryThrash(b *testing.B) {
	b.Run("AtBoundary", func(b *testing.B) {
		s := New[int]()
		for i := 0; i < ExtentLen; i++ {
			s.Push(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Push(i)             // crosses into a second extent
			s.Remove(s.Len() - 1) // and right back out of it
		}
	})

	b.Run("MidExtent", func(b *testing.B) {
		s := New[int]()
		for i := 0; i < ExtentLen/2; i++ {
			s.Push(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Push(i)
			s.Remove(s.Len() - 1)
		}
	})
}

// BenchmarkGrowth compares chunked-exact growth against the built-in
// slice's doubling policy for a straight append workload.
func BenchmarkGrowth(b *testing.B) {
	const n = 1024

	b.Run("Store", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for j := 0; j < n; j++ {
				s.Push(j)
			}
			s.Release()
		}
	})

	b.Run("StorePresized", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := WithCapacity[int](n)
			for j := 0; j < n; j++ {
				s.Push(j)
			}
			s.Release()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var xs []int
			for j := 0; j < n; j++ {
				xs = append(xs, j)
			}
			_ = xs
		}
	})
}
