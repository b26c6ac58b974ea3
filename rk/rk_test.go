package rk_test

import (
	"math"
	"testing"

	"github.com/soypat/rksolve/allocator"
	"github.com/soypat/rksolve/numeric"
	"github.com/soypat/rksolve/rk"
)

func newFixed2() *numeric.Fixed[float64] { return numeric.NewFixed[float64](2) }

func harmonicOscillator(y, dy *numeric.Fixed[float64], t float64) {
	dy.Set(0, y.At(1))
	dy.Set(1, -y.At(0))
}

func TestRK4HarmonicOscillator(t *testing.T) {
	stepper := rk.NewFixedStepper[float64](rk.RK4, newFixed2)
	y := newFixed2()
	y.Set(0, 1)
	y.Set(1, 0)
	const h = 0.01
	steps := int(math.Round((2 * math.Pi) / h))
	tt := 0.0
	for i := 0; i < steps; i++ {
		stepper.Step(harmonicOscillator, y, tt, h)
		tt += h
	}
	want := math.Cos(tt)
	if diff := math.Abs(y.At(0) - want); diff > 1e-6 {
		t.Fatalf("RK4 drifted from analytic solution: got %v want %v (diff %v)", y.At(0), want, diff)
	}
}

func explicitEuler(y, dy *numeric.Fixed[float64], t float64) {
	harmonicOscillator(y, dy, t)
}

var eulerTableau = rk.NewTableau(1, nil, []float64{1}, []float64{0})

func TestExplicitEulerLooserTolerance(t *testing.T) {
	stepper := rk.NewFixedStepper[float64](eulerTableau, newFixed2)
	y := newFixed2()
	y.Set(0, 1)
	y.Set(1, 0)
	const h = 0.001
	steps := int(math.Round((2 * math.Pi) / h))
	tt := 0.0
	for i := 0; i < steps; i++ {
		stepper.Step(explicitEuler, y, tt, h)
		tt += h
	}
	want := math.Cos(tt)
	if diff := math.Abs(y.At(0) - want); diff > 1e-1 {
		t.Fatalf("explicit Euler error should be small for a fine step, got diff %v", diff)
	}
}

func TestTableauIndexMapping(t *testing.T) {
	if rk.RK4.StageCount() != 4 {
		t.Fatalf("want stage count 4, got %d", rk.RK4.StageCount())
	}
	cases := []struct {
		j, i int
		want float64
	}{
		{1, 0, 0.5},
		{2, 0, 0},
		{2, 1, 0.5},
		{3, 0, 0},
		{3, 1, 0},
		{3, 2, 1},
	}
	for _, c := range cases {
		if got := rk.RK4.A(c.j, c.i); got != c.want {
			t.Fatalf("A(%d,%d): want %v got %v", c.j, c.i, c.want, got)
		}
	}
}

func TestAdaptiveStepperAcceptsAndShrinks(t *testing.T) {
	ctrl := rk.DefaultController[float64](4)
	stepper := rk.NewAdaptiveStepper[float64](rk.Fehlberg45, ctrl, newFixed2)
	stepper.SetH(0.5)
	y := newFixed2()
	y.Set(0, 1)
	y.Set(1, 0)
	tt := 0.0
	totalSteps := 0
	shrank := false
	for tt < 2*math.Pi {
		hBefore := stepper.H()
		tt = stepper.Step(harmonicOscillator, y, tt)
		if stepper.H() <= 0 {
			t.Fatalf("step size must stay positive, got %v", stepper.H())
		}
		if stepper.H() < hBefore {
			shrank = true
		}
		totalSteps++
		if totalSteps > 100000 {
			t.Fatal("adaptive stepper failed to converge on a reasonable step count")
		}
	}
	if !shrank {
		t.Fatal("starting from h=0.5 the controller should shrink the step at least once")
	}
	want := math.Cos(tt)
	if diff := math.Abs(y.At(0) - want); diff > 1e-3 {
		t.Fatalf("adaptive RKF45 drifted from analytic solution: got %v want %v (diff %v)", y.At(0), want, diff)
	}
}

func TestAdaptiveStepperRejectShrinksStep(t *testing.T) {
	// A deliberately tight tolerance at a large initial step on a smooth
	// system should reject and shrink h strictly, exercising the
	// Evaluating-error -> Rejected-shrink -> Trying loop.
	ctrl := rk.Controller[float64]{EpsAbs: 1e-10, EpsRel: 1e-10, AX: 1, AK: 1, Order: 4}
	stepper := rk.NewAdaptiveStepper[float64](rk.Fehlberg45, ctrl, newFixed2)
	stepper.SetH(1.0)
	y := newFixed2()
	y.Set(0, 1)
	y.Set(1, 0)
	hBefore := stepper.H()
	stepper.Step(harmonicOscillator, y, 0)
	if stepper.H() >= hBefore {
		t.Fatalf("tight tolerance at a large initial h should shrink: before %v after %v", hBefore, stepper.H())
	}
}

// BenchmarkFixedStepperAllocs exercises spec.md §8 testable property #4: once
// a FixedStepper is constructed over a bump-allocator-backed Dynamic
// container, repeated Step calls must not move the allocator's Used() cursor
// - everything the stepper needs was reserved up front.
func BenchmarkFixedStepperAllocs(b *testing.B) {
	const n = 1000
	alloc := allocator.NewBump[float64](10 * n)
	newVec := func() *numeric.Dynamic[float64] { return numeric.NewDynamicSize[float64](alloc, n) }
	stepper := rk.NewFixedStepper[float64](rk.RK4, newVec)
	y := newVec()
	sys := func(y, dy *numeric.Dynamic[float64], t float64) {
		for i := 0; i < y.Len(); i++ {
			dy.Set(i, -y.At(i))
		}
	}
	usedAfterSetup := alloc.Used()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stepper.Step(sys, y, 0, 1e-3)
	}
	b.StopTimer()
	if alloc.Used() != usedAfterSetup {
		b.Fatalf("stepper steps should not move the allocator cursor: setup used %d, now %d", usedAfterSetup, alloc.Used())
	}
}
