// Package rk implements explicit Runge-Kutta time stepping over the
// container and expression abstractions in packages numeric and expr: a
// fixed-step stepper for a single Butcher tableau, and an adaptive,
// embedded-error stepper for an extended tableau carrying two orders at
// once.
package rk

import "github.com/soypat/rksolve/expr"

// Tableau holds an explicit Runge-Kutta method's coefficients in flat,
// lower-triangular form. a is indexed by flatIndex(j, i) for 0 <= i < j < s;
// b and c each have length s, the stage count.
type Tableau[V expr.Number] struct {
	s int
	a []V
	b []V
	c []V
}

// NewTableau builds a Tableau from its stage count and flattened a/b/c
// arrays. len(a) must equal s*(s-1)/2, len(b) and len(c) must equal s.
func NewTableau[V expr.Number](s int, a, b, c []V) Tableau[V] {
	if len(a) != s*(s-1)/2 {
		panic("rk: tableau a has wrong length for stage count")
	}
	if len(b) != s || len(c) != s {
		panic("rk: tableau b/c has wrong length for stage count")
	}
	return Tableau[V]{s: s, a: a, b: b, c: c}
}

// StageCount returns the number of stages s.
func (t Tableau[V]) StageCount() int { return t.s }

func flatIndex(j, i int) int { return (j-1)*j/2 + i }

// A returns a(j,i) for 0 <= i < j < s.
func (t Tableau[V]) A(j, i int) V {
	if i < 0 || i >= j || j <= 0 || j >= t.s {
		panic("rk: tableau A index out of range")
	}
	return t.a[flatIndex(j, i)]
}

// B returns the stage weights used to combine k into the step update.
func (t Tableau[V]) B() []V { return t.b }

// C returns the stage time fractions.
func (t Tableau[V]) C(j int) V { return t.c[j] }

// ExtendedTableau augments a Tableau with a second set of weights bErr for
// an embedded lower (or higher) order estimate, used to drive adaptive step
// size control. bDiff[i] = b[i]-bErr[i] is precomputed once at construction,
// matching the original's extended_butcher_tableau constructor.
type ExtendedTableau[V expr.Number] struct {
	Tableau[V]
	bErr  []V
	bDiff []V
}

// NewExtendedTableau builds an ExtendedTableau from a base Tableau and a
// second weight vector bErr of the embedded estimate.
func NewExtendedTableau[V expr.Number](base Tableau[V], bErr []V) ExtendedTableau[V] {
	if len(bErr) != base.s {
		panic("rk: tableau bErr has wrong length for stage count")
	}
	bDiff := make([]V, base.s)
	for i := range bDiff {
		bDiff[i] = base.b[i] - bErr[i]
	}
	return ExtendedTableau[V]{Tableau: base, bErr: bErr, bDiff: bDiff}
}

// BErr returns the embedded estimate's stage weights.
func (t ExtendedTableau[V]) BErr() []V { return t.bErr }

// BDiff returns b[i]-bErr[i], the weights used to form the error estimate
// directly from the same stage derivatives as the primary solution, without
// recomputing anything.
func (t ExtendedTableau[V]) BDiff() []V { return t.bDiff }
