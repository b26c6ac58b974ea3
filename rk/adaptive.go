package rk

import (
	"math"

	"github.com/soypat/rksolve/expr"
	"github.com/soypat/rksolve/numeric"
)

// Controller holds the normalized-error step-size control constants for an
// AdaptiveStepper: EpsAbs and EpsRel form a per-component error scale
// (EpsAbs + EpsRel*(AX*|y|+AK*|dy|)) against which the embedded pair's raw
// error estimate is normalized before taking its L-infinity norm. Order is
// the error estimator's order p: shrinking a rejected step uses exponent
// -1/(p-1), growing an amply-accepted step uses -1/p.
type Controller[V expr.Number] struct {
	EpsAbs, EpsRel V
	AX, AK         V
	Order          float64
}

// DefaultController returns the reference tolerances (EpsAbs=1e-5,
// EpsRel=1e-7, AX=AK=1) for an embedded pair whose error estimator has the
// given order.
func DefaultController[V expr.Number](order float64) Controller[V] {
	return Controller[V]{EpsAbs: 1e-5, EpsRel: 1e-7, AX: 1, AK: 1, Order: order}
}

// Fixed safety and clamp constants of the step-size formula: a shrink never
// cuts h by more than 5x in one retry, a growth never multiplies it by more
// than 5x in one accept, and the 0.9 factor keeps both away from the exact
// error==1 cliff edge.
const (
	stepSafetyFactor = 0.9
	stepShrinkFloor  = 0.2
	stepGrowCeiling  = 5.0
)

// AdaptiveStepper advances a state by an embedded Runge-Kutta pair, retrying
// a step at a shrunk size until its normalized L-infinity error estimate
// falls to 1 or below. It owns its step size h internally across calls,
// starting at 0.1, exactly as a fresh stepper never having taken a step.
type AdaptiveStepper[V expr.Number, C numeric.Settable[V]] struct {
	tableau ExtendedTableau[V]
	ctrl    Controller[V]
	h       V

	xTmp       C
	kErr, kTmp C
	k          []C
	terms      []numeric.Indexable[V]
}

// NewAdaptiveStepper builds an AdaptiveStepper for tableau and ctrl, using
// newC to construct its internal scratch containers.
func NewAdaptiveStepper[V expr.Number, C numeric.Settable[V]](tableau ExtendedTableau[V], ctrl Controller[V], newC Factory[C]) *AdaptiveStepper[V, C] {
	s := &AdaptiveStepper[V, C]{tableau: tableau, ctrl: ctrl, h: V(0.1)}
	s.xTmp = newC()
	s.kErr = newC()
	s.kTmp = newC()
	s.k = make([]C, tableau.StageCount())
	s.terms = make([]numeric.Indexable[V], tableau.StageCount())
	for i := range s.k {
		s.k[i] = newC()
		s.terms[i] = s.k[i]
	}
	return s
}

// H returns the step size the stepper will attempt on its next Step call.
func (s *AdaptiveStepper[V, C]) H() V { return s.h }

// SetH overrides the stepper's internal step size, e.g. to seed the very
// first call with something other than the 0.1 default.
func (s *AdaptiveStepper[V, C]) SetH(h V) { s.h = h }

// tryStep evaluates stages 1..s-1 into s.k, exactly as FixedStepper.Step
// does for a non-adaptive tableau; s.k[0] must already hold f(y, t).
func (s *AdaptiveStepper[V, C]) tryStep(sys System[V, C], y C, t V) {
	stages := s.tableau.StageCount()
	for j := 1; j < stages; j++ {
		tj := t + s.tableau.C(j)*s.h
		numeric.CopyInto[V](s.xTmp, y)
		for i := 0; i < j; i++ {
			a := s.tableau.A(j, i)
			if math.Abs(float64(a)) < coefficientEpsilon {
				continue
			}
			expr.AddScaledInPlace[V](s.xTmp, s.k[i], a*s.h)
		}
		sys(s.xTmp, s.k[j], tj)
	}
}

func absV[V expr.Number](v V) V {
	if v < 0 {
		return -v
	}
	return v
}

// Step advances y in place by one accepted step and returns the new time.
// k[0] is evaluated once per call and shared across retries; each retried
// trial re-evaluates stages 1..s-1 (matching the Evaluating-k0 -> Trying ->
// ... state machine: only Trying is repeated on rejection).
func (s *AdaptiveStepper[V, C]) Step(sys System[V, C], y C, t V) V {
	n := y.Len()
	sys(y, s.k[0], t)
	for {
		s.tryStep(sys, y, t)

		numeric.CopyInto[V](s.kErr, expr.Reduce[V](s.terms, s.tableau.BDiff()))
		numeric.CopyInto[V](s.kTmp, expr.Reduce[V](s.terms, s.tableau.B()))

		for i := 0; i < n; i++ {
			scale := s.ctrl.EpsAbs + s.ctrl.EpsRel*(s.ctrl.AX*absV(y.At(i))+s.ctrl.AK*absV(s.kTmp.At(i)))
			s.kErr.Set(i, s.kErr.At(i)/scale)
		}
		e := expr.LInfNorm[V](s.kErr)

		switch {
		case e > 1:
			factor := math.Max(stepSafetyFactor*math.Pow(float64(e), -1/(s.ctrl.Order-1)), stepShrinkFloor)
			s.h = s.h * V(factor)
			continue
		case e < 0.5:
			factor := math.Min(stepSafetyFactor*math.Pow(float64(e), -1/s.ctrl.Order), stepGrowCeiling)
			s.h = s.h * V(factor)
		}
		break
	}
	expr.AddScaledInPlace[V](y, expr.Reduce[V](s.terms, s.tableau.B()), s.h)
	t += s.h
	return t
}
