// Package expr implements a lazy arithmetic evaluator over numeric
// containers. Go has no operator overloading, so where the original builds
// expression trees from operator+/-/*// overloads, this package builds them
// from ordinary functions (Add, Sub, Mul, Div) returning a small closure-based
// Expr node. An Expr is only ever walked element-by-element at the single
// point it gets assigned into a concrete container (numeric.CopyInto or the
// in-place helpers in this package) - nothing is materialized before then.
package expr

// Number is the set of scalar types an expression tree can operate over.
type Number interface {
	~float32 | ~float64
}
