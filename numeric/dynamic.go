package numeric

import "github.com/soypat/rksolve/allocator"

// Dynamic is an allocator-backed container whose length can change over its
// lifetime via Resize or LeakyResize. Unlike the original's dynamic array,
// Dynamic borrows its allocator per-instance (passed to NewDynamic) rather
// than through a process-wide static binding: that avoids an initialization-
// order hazard between translation units that has no clean Go equivalent,
// at the cost of one extra field per container.
type Dynamic[V any] struct {
	alloc allocator.Allocator[V]
	v     []V
}

// NewDynamic returns an empty Dynamic container borrowing alloc for all of
// its storage.
func NewDynamic[V any](alloc allocator.Allocator[V]) *Dynamic[V] {
	return &Dynamic[V]{alloc: alloc}
}

// NewDynamicSize returns a Dynamic container of length n, zero-initialized,
// borrowing alloc for its storage.
func NewDynamicSize[V any](alloc allocator.Allocator[V], n int) *Dynamic[V] {
	d := &Dynamic[V]{alloc: alloc}
	d.Resize(n)
	return d
}

func (d *Dynamic[V]) Len() int       { return len(d.v) }
func (d *Dynamic[V]) At(i int) V     { return d.v[i] }
func (d *Dynamic[V]) Set(i int, v V) { d.v[i] = v }
func (d *Dynamic[V]) Slice() []V     { return d.v }

// Resize releases the current storage and allocates a fresh, zeroed region
// of length n. Existing contents are discarded: this mirrors the original's
// resize(n), which reallocates rather than grows-in-place. A request for the
// current length is a no-op - no release, no reallocation, no lost contents.
func (d *Dynamic[V]) Resize(n int) {
	if len(d.v) == n {
		return
	}
	if d.v != nil {
		d.alloc.Deallocate(d.v)
	}
	d.v = d.alloc.Allocate(n)
	clear(d.v)
}

// LeakyResize shrinks the container in place by narrowing its slice when
// n is smaller than the current length, avoiding a reallocation; growing
// still falls back to Resize. The released tail is not returned to the
// allocator, which is the "leak" the name advertises - acceptable for a
// scratch buffer about to be reset wholesale by its owner.
func (d *Dynamic[V]) LeakyResize(n int) {
	if n <= len(d.v) {
		d.v = d.v[:n]
		return
	}
	d.Resize(n)
}

// Clone returns an independent copy of d backed by the same allocator.
func (d *Dynamic[V]) Clone() *Dynamic[V] {
	cp := d.alloc.Allocate(len(d.v))
	copy(cp, d.v)
	return &Dynamic[V]{alloc: d.alloc, v: cp}
}

// Detach re-homes d's storage to target: its contents are copied into
// storage owned by target, the old storage is released back to d's current
// allocator, and d continues life bound to target. Detaching to d's own
// current allocator is a no-op. This is how a scratch Dynamic built against
// a short-lived bump region survives that region's Reset.
func (d *Dynamic[V]) Detach(target allocator.Allocator[V]) {
	if target == d.alloc {
		return
	}
	next := target.Allocate(len(d.v))
	copy(next, d.v)
	if d.v != nil {
		d.alloc.Deallocate(d.v)
	}
	d.alloc = target
	d.v = next
}
