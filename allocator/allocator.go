// Package allocator provides fixed-capacity memory pools for the numeric
// containers in package numeric. Allocators hand out slices ([]V) instead of
// raw pointers; a slice header already carries length and capacity, so it
// doubles as the "handle" a caller must present back to Deallocate.
package allocator

// Allocator hands out and reclaims storage for a single element type V. All
// implementations in this package are single-goroutine: there is no internal
// locking, matching the rest of this module's concurrency model.
type Allocator[V any] interface {
	// Allocate returns a slice of length n backed by the allocator's region
	// when room remains, or a freshly heap-allocated slice otherwise.
	Allocate(n int) []V
	// Deallocate releases a slice previously returned by Allocate. Passing a
	// slice this allocator did not hand out is a no-op.
	Deallocate(s []V)
	// MaxSize reports the capacity of the allocator's backing region. A
	// request larger than MaxSize always falls back to the heap (Bump) or is
	// fatal (Monotonic).
	MaxSize() int
	// Used reports how many elements of the region are currently checked out
	// from its bump cursor (heap fallback allocations do not count).
	Used() int
	// Available reports MaxSize()-Used().
	Available() int
	// Reset rewinds the allocator to its empty state, invalidating every
	// slice it has handed out. Callers must not dereference previously
	// allocated slices after calling Reset.
	Reset()
}
