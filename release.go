package seqstore

// Releaser is implemented by element types that own resources needing
// explicit cleanup. Clear and Release invoke it exactly once per contained
// element, in index order. Remove does not: the removed element's
// ownership, and with it the cleanup obligation, passes to the caller.
type Releaser interface {
	Release()
}

// releaseElem invokes v's Release hook when its type has one.
func releaseElem[T any](v T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}
