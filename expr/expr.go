package expr

import "github.com/soypat/rksolve/numeric"

// Expr is a lazily evaluated elementwise expression over one or more
// numeric.Indexable operands. Calling At(i) evaluates the whole subtree at
// index i on demand; nothing is computed until something actually indexes
// into the expression, which happens exactly once per element at the
// evaluation site (see Reduce and the in-place helpers).
type Expr[V Number] struct {
	n  int
	fn func(i int) V
}

func (e Expr[V]) Len() int   { return e.n }
func (e Expr[V]) At(i int) V { return e.fn(i) }

// scalar wraps a bare V so it can be mixed into an expression tree: every
// index broadcasts to the same value, mirroring how the original's
// subscript() utility treats a non-range operand.
type scalar[V Number] struct{ v V }

func (s scalar[V]) Len() int   { return -1 } // broadcasts; never the deciding operand for Len
func (s scalar[V]) At(int) V   { return s.v }

// Const lifts a bare scalar into an Indexable[V] so it can be passed anywhere
// an operand is expected.
func Const[V Number](v V) numeric.Indexable[V] { return scalar[V]{v} }

func operandLen[V Number](a, b numeric.Indexable[V]) int {
	if n := a.Len(); n >= 0 {
		return n
	}
	return b.Len()
}

// Add returns a lazy elementwise sum a+b. Either operand may be a Const
// broadcast scalar.
func Add[V Number](a, b numeric.Indexable[V]) Expr[V] {
	return Expr[V]{n: operandLen(a, b), fn: func(i int) V { return a.At(i) + b.At(i) }}
}

// Sub returns a lazy elementwise difference a-b.
func Sub[V Number](a, b numeric.Indexable[V]) Expr[V] {
	return Expr[V]{n: operandLen(a, b), fn: func(i int) V { return a.At(i) - b.At(i) }}
}

// Mul returns a lazy elementwise product a*b.
func Mul[V Number](a, b numeric.Indexable[V]) Expr[V] {
	return Expr[V]{n: operandLen(a, b), fn: func(i int) V { return a.At(i) * b.At(i) }}
}

// Div returns a lazy elementwise quotient a/b.
func Div[V Number](a, b numeric.Indexable[V]) Expr[V] {
	return Expr[V]{n: operandLen(a, b), fn: func(i int) V { return a.At(i) / b.At(i) }}
}

// MulScalar returns a lazy elementwise product of a and the scalar s.
func MulScalar[V Number](a numeric.Indexable[V], s V) Expr[V] {
	return Expr[V]{n: a.Len(), fn: func(i int) V { return a.At(i) * s }}
}

// Reduce returns the lazy weighted linear combination sum_i weights[i]*terms[i].
// This is the single primitive every Runge-Kutta stage in package rk uses to
// combine its derivative evaluations: a fixed-step method forms
// Reduce(k, tableau.B()), an adaptive one additionally forms
// Reduce(k, tableau.BDiff()) for its embedded error estimate.
func Reduce[V Number](terms []numeric.Indexable[V], weights []V) Expr[V] {
	if len(terms) != len(weights) {
		panic("expr: Reduce terms/weights length mismatch")
	}
	n := -1
	for _, t := range terms {
		if l := t.Len(); l >= 0 {
			n = l
			break
		}
	}
	return Expr[V]{n: n, fn: func(i int) V {
		var acc V
		for j := range terms {
			acc += weights[j] * terms[j].At(i)
		}
		return acc
	}}
}
