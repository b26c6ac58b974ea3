// Package numeric provides allocation-aware containers that back the lazy
// expression evaluator in package expr and the Runge-Kutta steppers in
// package rk. Every container exposes its shape through small capability
// interfaces rather than a single monolithic container type, so algorithms
// can ask only for the capability they need (read, read+write, resizable).
package numeric

// Sized reports a container's element count.
type Sized interface {
	Len() int
}

// Indexable is a read-only, randomly addressable sequence of V. Scalars used
// inside an expression tree are broadcast against it: see package expr.
type Indexable[V any] interface {
	Sized
	At(i int) V
}

// Settable is a container that can also be written element-by-element. Every
// concrete container in this package implements Settable.
type Settable[V any] interface {
	Indexable[V]
	Set(i int, v V)
}

// Resizable is implemented by containers whose length can change after
// construction (Dynamic). Fixed and Buffer deliberately do not implement it:
// their length is part of their identity once built, standing in for the
// original's compile-time array length where Go generics have no equivalent
// non-type parameter.
type Resizable interface {
	Resize(n int)
}

// CopyInto overwrites dst element-by-element with src. It is the assignment
// primitive every stepper uses to seed scratch storage from a container
// (e.g. x_tmp <- y) - a single pass over the target, no intermediate
// allocation.
func CopyInto[V any](dst Settable[V], src Indexable[V]) {
	n := src.Len()
	if dst.Len() != n {
		panic("numeric: CopyInto size mismatch")
	}
	for i := 0; i < n; i++ {
		dst.Set(i, src.At(i))
	}
}

// Equal reports whether a and b have the same length and elementwise equal
// values.
func Equal[V comparable](a, b Indexable[V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}
