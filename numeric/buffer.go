package numeric

import "github.com/soypat/rksolve/allocator"

// Layout selects how a Buffer's two dimensions map onto its flat backing
// storage.
type Layout int

const (
	// RowMajor stores X as the contiguous (minor) axis: row y occupies a
	// contiguous run of MinorStride elements starting at y*MinorStride.
	RowMajor Layout = iota
	// ColumnMajor stores Y as the contiguous (minor) axis: column x occupies
	// a contiguous run of MinorStride elements starting at x*MinorStride.
	ColumnMajor
)

// Buffer is a row/column addressed 2-D container. Its minor axis may carry
// padding beyond the logical dimension (MinorStride > logical minor size),
// which lets a caller align rows or columns to a cache-friendly stride
// without changing the logical shape the algorithm sees.
type Buffer[V any] struct {
	alloc        allocator.Allocator[V]
	sizeY, sizeX int
	layout       Layout
	minorStride  int
	data         []V
}

// NewBuffer returns a Buffer of logical shape (sizeY, sizeX) using layout,
// borrowing alloc for storage. minorStride pads the contiguous axis; pass
// the natural minor-axis size (sizeX for RowMajor, sizeY for ColumnMajor) for
// an unpadded buffer.
func NewBuffer[V any](alloc allocator.Allocator[V], sizeY, sizeX int, layout Layout, minorStride int) *Buffer[V] {
	b := &Buffer[V]{alloc: alloc, sizeY: sizeY, sizeX: sizeX, layout: layout}
	b.setStride(minorStride)
	b.data = alloc.Allocate(b.majorAxisSize() * b.minorStride)
	return b
}

func (b *Buffer[V]) setStride(minorStride int) {
	natural := b.sizeX
	if b.layout == ColumnMajor {
		natural = b.sizeY
	}
	if minorStride == 0 {
		// 0 means "no padding": use the natural minor-axis size.
		minorStride = natural
	}
	if minorStride < natural {
		panic("numeric: buffer minor stride smaller than logical minor axis")
	}
	b.minorStride = minorStride
}

func (b *Buffer[V]) majorAxisSize() int {
	if b.layout == ColumnMajor {
		return b.sizeX
	}
	return b.sizeY
}

func (b *Buffer[V]) SizeY() int     { return b.sizeY }
func (b *Buffer[V]) SizeX() int     { return b.sizeX }
func (b *Buffer[V]) Layout() Layout { return b.layout }
func (b *Buffer[V]) Len() int       { return b.sizeY * b.sizeX }

// Flat maps logical coordinates (y, x) to an offset into the backing slice,
// accounting for layout and any minor-axis padding.
func (b *Buffer[V]) Flat(y, x int) int {
	if y < 0 || y >= b.sizeY || x < 0 || x >= b.sizeX {
		panic("numeric: buffer index out of range")
	}
	if b.layout == ColumnMajor {
		return x*b.minorStride + y
	}
	return y*b.minorStride + x
}

// At2 reads the element at logical coordinates (y, x).
func (b *Buffer[V]) At2(y, x int) V { return b.data[b.Flat(y, x)] }

// Set2 writes the element at logical coordinates (y, x).
func (b *Buffer[V]) Set2(y, x int, v V) { b.data[b.Flat(y, x)] = v }

// At implements Indexable over the buffer's logical row-major flat index
// space, independent of the buffer's physical layout or padding: idx maps to
// (idx/sizeX, idx%sizeX) and then through Flat. This gives every Buffer a
// stable linear view regardless of storage layout, which is what the lazy
// evaluator in package expr needs to treat a Buffer like any other
// Indexable[V].
func (b *Buffer[V]) At(idx int) V {
	y, x := idx/b.sizeX, idx%b.sizeX
	return b.At2(y, x)
}

// Set writes through the same logical row-major flat index space as At.
func (b *Buffer[V]) Set(idx int, v V) {
	y, x := idx/b.sizeX, idx%b.sizeX
	b.Set2(y, x, v)
}

// Detach releases the buffer's storage back to its allocator.
func (b *Buffer[V]) Detach() {
	if b.data != nil {
		b.alloc.Deallocate(b.data)
		b.data = nil
	}
}
