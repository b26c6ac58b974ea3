package allocator_test

import (
	"testing"

	"github.com/soypat/rksolve/allocator"
)

func TestBumpReleaseAtTop(t *testing.T) {
	b := allocator.NewBump[float64](8)
	a := b.Allocate(3)
	c := b.Allocate(3)
	if b.Used() != 6 {
		t.Fatalf("want used=6, got %d", b.Used())
	}
	b.Deallocate(c)
	if b.Used() != 3 {
		t.Fatalf("releasing top allocation should retract cursor, want 3 got %d", b.Used())
	}
	b.Deallocate(a)
	if b.Used() != 0 {
		t.Fatalf("releasing remaining top allocation should retract cursor, want 0 got %d", b.Used())
	}
}

func TestBumpInteriorReleaseIsInert(t *testing.T) {
	b := allocator.NewBump[float64](8)
	a := b.Allocate(3)
	_ = b.Allocate(3)
	b.Deallocate(a) // a sits below the cursor; release must not retract it
	if b.Used() != 6 {
		t.Fatalf("interior release must be inert, want used=6 got %d", b.Used())
	}
}

func TestBumpHeapFallback(t *testing.T) {
	b := allocator.NewBump[float64](2)
	s := b.Allocate(10)
	if len(s) != 10 {
		t.Fatalf("want len 10, got %d", len(s))
	}
	if b.Used() != 0 {
		t.Fatalf("heap fallback must not move the bump cursor, got used=%d", b.Used())
	}
	b.Deallocate(s) // heap slice; must be inert, must not panic
}

func TestBumpReset(t *testing.T) {
	b := allocator.NewBump[float64](4)
	b.Allocate(4)
	if b.Available() != 0 {
		t.Fatalf("want 0 available, got %d", b.Available())
	}
	b.Reset()
	if b.Available() != 4 {
		t.Fatalf("reset should restore full capacity, got %d", b.Available())
	}
}

func TestMonotonicDeallocateIsNoop(t *testing.T) {
	m := allocator.NewMonotonic[float64](4)
	s := m.Allocate(4)
	m.Deallocate(s)
	if m.Used() != 4 {
		t.Fatalf("monotonic deallocate must be a no-op, want used=4 got %d", m.Used())
	}
	m.Reset()
	if m.Used() != 0 {
		t.Fatalf("reset should reclaim all storage, got %d", m.Used())
	}
}

func TestMonotonicExhaustionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on monotonic overflow")
		}
	}()
	m := allocator.NewMonotonic[float64](2)
	m.Allocate(3)
}
