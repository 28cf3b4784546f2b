// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Walk any variant, contiguous or strided, in row-major order with one cursor type.
//
// Implementation:
//   - The cursor keeps the slice that starts at the first aliased element, the
//     view column count, the source column count and a flat view index i.
//   - Element i lives at data[(i / viewCols) * srcCols + i % viewCols]; for owning
//     storage viewCols == srcCols and the formula collapses to data[i].
//   - Equality compares the resolved element address, so two cursors over the same
//     elements are equal even when obtained from different facades.
//
// Notes:
//   - Value/Set panic on a cursor outside [begin, end) exactly like slice indexing;
//     compare against End()/CEnd() before dereferencing.
//   - There is no conversion from ConstIterator back to Iterator.

package matrix

import (
	"unsafe"

	"github.com/katalvlaran/matview/numeric"
)

// cursor is the shared state of Iterator and ConstIterator.
type cursor[T numeric.Number] struct {
	data     []T // from the first aliased element
	viewCols int // columns of the iterated region
	srcCols  int // columns of the owning storage (the stride)
	index    int // flat row-major position inside the region
}

func newCursor[T numeric.Number](w window[T], index int) cursor[T] {
	return cursor[T]{data: w.data, viewCols: w.cols, srcCols: w.srcCols, index: index}
}

// position maps the flat index to a data offset.
func (c cursor[T]) position() int {
	if c.viewCols == 0 {
		return c.index
	}

	return (c.index/c.viewCols)*c.srcCols + c.index%c.viewCols
}

// address is the resolved element address (one past the end for End()).
func (c cursor[T]) address() uintptr {
	var zero T
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.data)))

	return base + uintptr(c.position())*unsafe.Sizeof(zero)
}

// Iterator is a mutable row-major cursor obtained from Begin/End.
type Iterator[T numeric.Number] struct {
	cursor[T]
}

// Next advances by one element.
func (it *Iterator[T]) Next() { it.index++ }

// Prev steps back by one element.
func (it *Iterator[T]) Prev() { it.index-- }

// Advance moves by n elements (n may be negative).
func (it *Iterator[T]) Advance(n int) { it.index += n }

// Offset returns a copy moved by n elements; it is left untouched.
func (it Iterator[T]) Offset(n int) Iterator[T] {
	it.index += n

	return it
}

// Index returns the flat row-major position inside the iterated region.
func (it Iterator[T]) Index() int { return it.index }

// Distance returns it.Index() - other.Index(); both must come from the same range.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.index - other.index }

// Value dereferences the cursor.
func (it Iterator[T]) Value() T { return it.data[it.position()] }

// Set writes v through the cursor into the aliased storage.
func (it Iterator[T]) Set(v T) { it.data[it.position()] = v }

// Equal reports whether both cursors resolve to the same element address.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.address() == other.address() }

// ReadOnly converts the cursor to a ConstIterator at the same position.
func (it Iterator[T]) ReadOnly() ConstIterator[T] { return ConstIterator[T](it) }

// ConstIterator is a read-only row-major cursor obtained from CBegin/CEnd or
// Iterator.ReadOnly.
type ConstIterator[T numeric.Number] struct {
	cursor[T]
}

// Next advances by one element.
func (it *ConstIterator[T]) Next() { it.index++ }

// Prev steps back by one element.
func (it *ConstIterator[T]) Prev() { it.index-- }

// Advance moves by n elements (n may be negative).
func (it *ConstIterator[T]) Advance(n int) { it.index += n }

// Offset returns a copy moved by n elements; it is left untouched.
func (it ConstIterator[T]) Offset(n int) ConstIterator[T] {
	it.index += n

	return it
}

// Index returns the flat row-major position inside the iterated region.
func (it ConstIterator[T]) Index() int { return it.index }

// Distance returns it.Index() - other.Index(); both must come from the same range.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int { return it.index - other.index }

// Value dereferences the cursor.
func (it ConstIterator[T]) Value() T { return it.data[it.position()] }

// Equal reports whether both cursors resolve to the same element address.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.address() == other.address()
}

// begin/end helpers shared by the facades.

func beginOf[T numeric.Number](w window[T]) Iterator[T] {
	return Iterator[T]{newCursor(w, 0)}
}

func endOf[T numeric.Number](w window[T]) Iterator[T] {
	return Iterator[T]{newCursor(w, w.size())}
}

func cbeginOf[T numeric.Number](w window[T]) ConstIterator[T] {
	return ConstIterator[T]{newCursor(w, 0)}
}

func cendOf[T numeric.Number](w window[T]) ConstIterator[T] {
	return ConstIterator[T]{newCursor(w, w.size())}
}
