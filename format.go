package seqstore

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// String renders a diagnostic view of the store: element type name,
// current length, current extent count, and the contained elements in
// order.
//
//	Store[int]{len: 4, extents: 1} [4 2 0 69]
//
// Safe to call on a released store, which renders as empty.
func (s *Store[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Store[%s]{len: %d, extents: %d} [", reflect.TypeOf((*T)(nil)).Elem(), s.length, s.extents)
	for i, v := range unsafe.Slice(s.buf, s.length) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
