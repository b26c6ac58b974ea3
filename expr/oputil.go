package expr

import (
	"math"

	"github.com/soypat/rksolve/numeric"
)

// L2NormSq returns the squared Euclidean norm of v.
func L2NormSq[V Number](v numeric.Indexable[V]) V {
	var acc V
	for i := 0; i < v.Len(); i++ {
		x := v.At(i)
		acc += x * x
	}
	return acc
}

// L2Norm returns the Euclidean norm of v.
func L2Norm[V Number](v numeric.Indexable[V]) V {
	return V(math.Sqrt(float64(L2NormSq(v))))
}

// LInfNorm returns the maximum absolute value among v's elements, the
// normalization the adaptive stepper in package rk uses for its error
// control: a single outlier component dominates the accept/reject decision
// rather than being diluted across every state variable.
func LInfNorm[V Number](v numeric.Indexable[V]) V {
	var m V
	for i := 0; i < v.Len(); i++ {
		x := v.At(i)
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return m
}

// Distance returns the Euclidean distance between a and b.
func Distance[V Number](a, b numeric.Indexable[V]) V {
	return L2Norm[V](Sub(a, b))
}

// Normalize divides v in place by its L2 norm and returns the norm that was
// divided out. A zero-norm v is a programming error (dividing by zero would
// silently produce Inf/NaN in every element) and panics rather than limping
// on with a garbage result.
func Normalize[V Number](v numeric.Settable[V]) V {
	norm := L2Norm[V](v)
	if norm == 0 {
		panic("expr: Normalize of zero-norm vector")
	}
	ScaleInPlace[V](v, 1/norm)
	return norm
}
