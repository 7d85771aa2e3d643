package seqstore

import "unsafe"

// SizeInUse returns the number of bytes occupied by initialized elements.
func (s *Store[T]) SizeInUse() int {
	return s.length * int(unsafe.Sizeof(*new(T)))
}

// Extents returns the number of extents currently allocated.
func (s *Store[T]) Extents() int {
	return s.extents
}

// CapacityBytes returns the total size of the backing block in bytes.
func (s *Store[T]) CapacityBytes() int {
	return s.Cap() * int(unsafe.Sizeof(*new(T)))
}

// Utilization returns the ratio of slots in use to allocated slots
// (0.0 to 1.0). Returns 0.0 when no block is allocated.
func (s *Store[T]) Utilization() float64 {
	capacity := s.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(s.length) / float64(capacity)
}

// Metrics returns a snapshot of store statistics.
func (s *Store[T]) Metrics() StoreMetrics {
	return StoreMetrics{
		Len:           s.length,
		Capacity:      s.Cap(),
		Extents:       s.extents,
		SizeInUse:     s.SizeInUse(),
		CapacityBytes: s.CapacityBytes(),
		Utilization:   s.Utilization(),
	}
}

// StoreMetrics contains statistical information about a store.
type StoreMetrics struct {
	Len           int     // Elements currently present
	Capacity      int     // Allocated slots
	Extents       int     // Allocated extents
	SizeInUse     int     // Bytes occupied by present elements
	CapacityBytes int     // Total block size in bytes
	Utilization   float64 // Ratio of used to allocated slots (0.0-1.0)
}
