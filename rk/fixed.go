package rk

import (
	"math"

	"github.com/soypat/rksolve/expr"
	"github.com/soypat/rksolve/numeric"
)

// System evaluates a first-order ODE's right-hand side dy/dt at time t,
// writing the result into dyOut. y must not be mutated.
type System[V expr.Number, C numeric.Settable[V]] func(y, dyOut C, t V)

// Factory returns a freshly constructed, appropriately sized container of
// type C. Steppers call it once per internal scratch buffer they need at
// construction time, mirroring the original's resize_internals: shape is
// fixed once and reused for every step afterwards.
type Factory[C any] func() C

// epsilon below which a tableau coefficient is treated as exactly zero and
// its stage contribution skipped entirely, avoiding a wasted AddScaledInPlace
// pass over an already-sparse row.
const coefficientEpsilon = 1e-300

// FixedStepper advances a state by one fixed-size step of an explicit
// Runge-Kutta method described by a Tableau.
type FixedStepper[V expr.Number, C numeric.Settable[V]] struct {
	tableau Tableau[V]
	xTmp    C
	k       []C
	terms   []numeric.Indexable[V]
}

// NewFixedStepper builds a FixedStepper for tableau, using newC to construct
// its internal scratch containers.
func NewFixedStepper[V expr.Number, C numeric.Settable[V]](tableau Tableau[V], newC Factory[C]) *FixedStepper[V, C] {
	s := &FixedStepper[V, C]{tableau: tableau}
	s.xTmp = newC()
	s.k = make([]C, tableau.StageCount())
	s.terms = make([]numeric.Indexable[V], tableau.StageCount())
	for i := range s.k {
		s.k[i] = newC()
		s.terms[i] = s.k[i]
	}
	return s
}

// Step advances y in place from time t by step size h, evaluating sys at
// each stage.
func (s *FixedStepper[V, C]) Step(sys System[V, C], y C, t, h V) {
	stages := s.tableau.StageCount()
	sys(y, s.k[0], t)
	for j := 1; j < stages; j++ {
		tj := t + s.tableau.C(j)*h
		numeric.CopyInto[V](s.xTmp, y)
		for i := 0; i < j; i++ {
			a := s.tableau.A(j, i)
			if math.Abs(float64(a)) < coefficientEpsilon {
				continue
			}
			expr.AddScaledInPlace[V](s.xTmp, s.k[i], a*h)
		}
		sys(s.xTmp, s.k[j], tj)
	}
	combo := expr.Reduce[V](s.terms, s.tableau.B())
	expr.AddScaledInPlace[V](y, combo, h)
}
