package numeric

// Fixed is a slice-backed container whose length is set once at construction
// and never changes afterwards. It stands in for the original's
// compile-time-sized array: Go generics have no non-type (const) parameter,
// so the length becomes a runtime invariant enforced by never exposing a
// Resize method, instead of a type parameter enforced by the compiler.
type Fixed[V any] struct {
	v []V
}

// NewFixed returns a Fixed container of length n, zero-initialized.
func NewFixed[V any](n int) *Fixed[V] {
	return &Fixed[V]{v: make([]V, n)}
}

// Filled returns a Fixed container of length n with every element set to
// value.
func Filled[V any](n int, value V) *Fixed[V] {
	f := NewFixed[V](n)
	for i := range f.v {
		f.v[i] = value
	}
	return f
}

// FilledFunc returns a Fixed container of length n with element i set to
// fn(i).
func FilledFunc[V any](n int, fn func(i int) V) *Fixed[V] {
	f := NewFixed[V](n)
	for i := range f.v {
		f.v[i] = fn(i)
	}
	return f
}

// FromSlice wraps an existing slice without copying it.
func FromSlice[V any](s []V) *Fixed[V] {
	return &Fixed[V]{v: s}
}

func (f *Fixed[V]) Len() int        { return len(f.v) }
func (f *Fixed[V]) At(i int) V      { return f.v[i] }
func (f *Fixed[V]) Set(i int, v V)  { f.v[i] = v }
func (f *Fixed[V]) Slice() []V      { return f.v }
func (f *Fixed[V]) Clone() *Fixed[V] {
	cp := make([]V, len(f.v))
	copy(cp, f.v)
	return &Fixed[V]{v: cp}
}
