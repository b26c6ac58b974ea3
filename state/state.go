// Package state implements a Symbol-keyed ergonomic state vector: a small
// map from human-readable names to indices into a flat []float64, so a
// system of differential equations can be written in terms of "theta" or
// "velocity" rather than raw slice offsets. It also implements the
// numeric.Settable[float64] capability package rk's steppers require, so a
// *State can be advanced directly by a rk.FixedStepper or
// rk.AdaptiveStepper without an intermediate conversion.
package state

// Symbol names a variable in a state vector. It should be unique within a
// single State.
type Symbol string

// State holds the named variables of a system at a single instant.
type State struct {
	varmap map[Symbol]int
	x      []float64
	time   float64
}

// Diff represents a single differential equation governing the rate of
// change of one variable.
type Diff func(State) float64

// Diffs represents a coupled system of differential equations, one per
// variable, keyed by the variable it governs.
type Diffs map[Symbol]Diff

// Eval assembles the derivative of every variable d governs, evaluated at
// s, into a new State sharing s's variable layout. Panics if d names a
// variable not present in s.
func (d Diffs) Eval(s State) State {
	out := s.CloneBlank(s.time)
	for sym, f := range d {
		out.XSet(sym, f(s))
	}
	return out
}

// New creates an empty state.
func New() State {
	return State{varmap: make(map[Symbol]int)}
}

// NewFromXMap creates a new state from a symbol-to-value map.
func NewFromXMap(xm map[Symbol]float64) State {
	s := New()
	for sym, v := range xm {
		s.XEqual(sym, v)
	}
	return s
}

// X returns the value of a variable. Panics if sym does not exist.
func (s State) X(sym Symbol) float64 {
	idx, ok := s.varmap[sym]
	if !ok {
		throwf("%v Symbol does not exist in State", sym)
	}
	return s.x[idx]
}

// XEqual sets a variable to val, creating it if it does not yet exist.
func (s *State) XEqual(sym Symbol, val float64) {
	s.xCreateIfNotExist(sym)
	s.x[s.varmap[sym]] = val
}

// XSet sets an existing variable to val. Panics if sym does not exist.
func (s *State) XSet(sym Symbol, val float64) {
	if !s.has(sym) {
		throwf("%v Symbol does not exist in State", sym)
	}
	s.XEqual(sym, val)
}

// Time returns the state's instant.
func (s State) Time() float64 { return s.time }

// SetTime sets the state's instant.
func (s *State) SetTime(t float64) { s.time = t }

// Clone returns a duplicate of s, including a copy of its variable vector.
func (s State) Clone() State {
	return State{
		varmap: s.varmap,
		x:      s.XVector(),
		time:   s.time,
	}
}

// CloneBlank returns a duplicate of s sharing its variable layout, with
// the vector zeroed and time set to t. This is the factory a
// rk.FixedStepper/AdaptiveStepper uses to build its scratch state and
// derivative buffers, so a *State can serve as the stepper's container
// type C directly.
func (s State) CloneBlank(t float64) State {
	return State{
		varmap: s.varmap,
		x:      make([]float64, len(s.x)),
		time:   t,
	}
}

// XVector returns a copy of the state's variable vector, ordered per
// XSymbols.
func (s State) XVector() []float64 {
	cp := make([]float64, len(s.x))
	copy(cp, s.x)
	return cp
}

// SetAllX overwrites the entire variable vector from src, which must be
// the same length as the state's current vector.
func (s *State) SetAllX(src []float64) {
	if len(src) != len(s.x) {
		throwf("SetAllX length mismatch: have %d want %d", len(src), len(s.x))
	}
	copy(s.x, src)
}

// XSymbols returns the state's variable names, ordered by their index
// into the variable vector.
func (s State) XSymbols() []Symbol {
	syms := make([]Symbol, len(s.varmap))
	for sym, idx := range s.varmap {
		syms[idx] = sym
	}
	return syms
}

// numeric.Settable[float64] implementation: At/Set/Len address the
// variable vector directly, so a *State can be stepped by package rk's
// steppers without any adapter type.

// Len returns the number of variables, satisfying numeric.Sized.
func (s *State) Len() int { return len(s.x) }

// At returns the i-th variable's value, satisfying numeric.Indexable.
func (s *State) At(i int) float64 { return s.x[i] }

// Set assigns the i-th variable's value, satisfying numeric.Settable.
func (s *State) Set(i int, v float64) { s.x[i] = v }
