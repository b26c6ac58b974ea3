package expr_test

import (
	"math"
	"testing"

	"github.com/soypat/rksolve/expr"
	"github.com/soypat/rksolve/numeric"
)

func TestAddBroadcastScalar(t *testing.T) {
	a := numeric.FilledFunc(4, func(i int) float64 { return float64(i) })
	e := expr.Add[float64](a, expr.Const[float64](10))
	for i := 0; i < 4; i++ {
		want := float64(i) + 10
		if got := e.At(i); got != want {
			t.Fatalf("index %d: want %v got %v", i, want, got)
		}
	}
}

func TestAddCommutative(t *testing.T) {
	a := numeric.FilledFunc(5, func(i int) float64 { return float64(i) })
	b := numeric.FilledFunc(5, func(i int) float64 { return float64(i) * float64(i) })
	e1 := expr.Add[float64](a, b)
	e2 := expr.Add[float64](b, a)
	for i := 0; i < 5; i++ {
		if e1.At(i) != e2.At(i) {
			t.Fatalf("index %d: addition should commute, got %v vs %v", i, e1.At(i), e2.At(i))
		}
	}
}

func TestReduceLinearCombination(t *testing.T) {
	a := numeric.FilledFunc(3, func(i int) float64 { return 1 })
	b := numeric.FilledFunc(3, func(i int) float64 { return 2 })
	c := numeric.FilledFunc(3, func(i int) float64 { return 3 })
	terms := []numeric.Indexable[float64]{a, b, c}
	weights := []float64{1, 0.5, 2}
	e := expr.Reduce(terms, weights)
	want := 1*1 + 0.5*2 + 2*3
	for i := 0; i < 3; i++ {
		if e.At(i) != want {
			t.Fatalf("index %d: want %v got %v", i, want, e.At(i))
		}
	}
}

func TestAddScaledInPlace(t *testing.T) {
	dst := numeric.FilledFunc(3, func(i int) float64 { return float64(i) })
	rhs := numeric.Filled(3, 2.0)
	expr.AddScaledInPlace[float64](dst, rhs, 0.5)
	for i := 0; i < 3; i++ {
		want := float64(i) + 1
		if dst.At(i) != want {
			t.Fatalf("index %d: want %v got %v", i, want, dst.At(i))
		}
	}
}

func TestLInfNorm(t *testing.T) {
	v := numeric.FromSlice([]float64{-3, 1, 2, -7, 5})
	if got := expr.LInfNorm[float64](v); got != 7 {
		t.Fatalf("want 7, got %v", got)
	}
}

func TestL2Norm(t *testing.T) {
	v := numeric.FromSlice([]float64{3, 4})
	if got := expr.L2Norm[float64](v); got != 5 {
		t.Fatalf("want 5, got %v", got)
	}
}

func TestNormalizeUnitNorm(t *testing.T) {
	v := numeric.FromSlice([]float64{3, 4})
	norm := expr.Normalize[float64](v)
	if norm != 5 {
		t.Fatalf("want returned norm 5, got %v", norm)
	}
	got := expr.L2Norm[float64](v)
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("normalized vector should have unit norm, got %v", got)
	}
}

func TestNormalizeZeroNormPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Normalize of a zero-norm vector should panic")
		}
	}()
	v := numeric.FromSlice([]float64{0, 0})
	expr.Normalize[float64](v)
}

func TestDistance(t *testing.T) {
	a := numeric.FromSlice([]float64{0, 0})
	b := numeric.FromSlice([]float64{3, 4})
	if got := expr.Distance[float64](a, b); got != 5 {
		t.Fatalf("want 5, got %v", got)
	}
}
