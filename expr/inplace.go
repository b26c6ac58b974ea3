package expr

import "github.com/soypat/rksolve/numeric"

// In-place operators (+=, -=, *=, /= in the original) are implemented here by
// taking the right-hand side directly as an operand rather than first
// building an Expr and then assigning it: there is nothing to gain from
// constructing a tree node just to walk it once, and skipping that
// indirection is also the one case where Go's lack of operator overloading
// costs nothing, since these are already ordinary function calls.

// AddInPlace sets dst[i] += rhs[i] for every i, in one pass over dst.
func AddInPlace[V Number](dst numeric.Settable[V], rhs numeric.Indexable[V]) {
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.Set(i, dst.At(i)+rhs.At(i))
	}
}

// SubInPlace sets dst[i] -= rhs[i] for every i.
func SubInPlace[V Number](dst numeric.Settable[V], rhs numeric.Indexable[V]) {
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.Set(i, dst.At(i)-rhs.At(i))
	}
}

// ScaleInPlace sets dst[i] *= s for every i.
func ScaleInPlace[V Number](dst numeric.Settable[V], s V) {
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.Set(i, dst.At(i)*s)
	}
}

// AddScaledInPlace sets dst[i] += rhs[i]*s for every i. This is the fused
// accumulate every fixed and adaptive stepper stage uses to fold a derivative
// evaluation into the running stage sum: x_tmp <- x_tmp + k[i]*(a(j,i)*h).
func AddScaledInPlace[V Number](dst numeric.Settable[V], rhs numeric.Indexable[V], s V) {
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.Set(i, dst.At(i)+rhs.At(i)*s)
	}
}
