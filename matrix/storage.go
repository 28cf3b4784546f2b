// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Define the four storage variants (Inline, Heap, MutableView, ReadOnlyView)
//     behind one primitive surface (storage[T]).
//   - Own the inline-vs-heap footprint policy (StorageFor).
//   - Provide window[T], the raw strided descriptor every kernel walks, and the
//     generation lease that lets views detect a moved or resized owner.
//
// Contract:
//   - unsafe* primitives do NOT bounds-check; facades check first.
//   - Owning variants are contiguous row-major (stride == cols).
//   - A view element (r, c) lives at data[r*srcCols + c], data starting at the
//     first aliased element.

package matrix

import (
	"unsafe"

	"github.com/katalvlaran/matview/numeric"
)

// StorageKind names a storage variant.
type StorageKind uint8

const (
	// StorageInline owns a fixed-capacity block embedded in the matrix value.
	StorageInline StorageKind = iota
	// StorageHeap owns a resizable slice.
	StorageHeap
	// StorageMutableView aliases another variant's elements; writes go through.
	StorageMutableView
	// StorageReadOnlyView aliases another variant's elements; no write surface.
	StorageReadOnlyView
)

// String implements fmt.Stringer.
func (k StorageKind) String() string {
	switch k {
	case StorageInline:
		return "inline"
	case StorageHeap:
		return "heap"
	case StorageMutableView:
		return "mutable-view"
	case StorageReadOnlyView:
		return "read-only-view"
	default:
		return "unknown"
	}
}

// IsView reports whether k is a non-owning variant.
func (k StorageKind) IsView() bool { return k == StorageMutableView || k == StorageReadOnlyView }

// Inline storage thresholds.
const (
	// InlineCapacity is the element capacity of the inline block.
	InlineCapacity = 8
	// InlineBytes is the largest footprint (rows*cols*sizeof(T)) stored inline.
	InlineBytes = 32
)

// StorageFor returns the variant the automatic policy picks for an owning
// matrix of declared shape s: inline iff both dimensions are static and the
// footprint fits InlineCapacity elements and InlineBytes bytes; heap otherwise.
// Complexity: O(1).
func StorageFor[T numeric.Number](s Shape) StorageKind {
	if !s.IsStatic() || s.Rows < 0 || s.Cols < 0 {
		return StorageHeap
	}
	var zero T
	n := int(s.Rows) * int(s.Cols)
	if n <= InlineCapacity && uintptr(n)*unsafe.Sizeof(zero) <= InlineBytes {
		return StorageInline
	}

	return StorageHeap
}

// resolveStorage applies the forced option (if any) over the policy and checks
// that the chosen variant can hold rows×cols.
func resolveStorage[T numeric.Number](o Options, decl Shape, rows, cols int) (StorageKind, error) {
	kind := StorageFor[T](decl)
	if o.forced {
		kind = o.storage
	}
	if kind == StorageInline && (!decl.IsStatic() || rows*cols > InlineCapacity) {
		return 0, matrixErrorf("resolveStorage: inline "+decl.String(), ErrStorageStrategy)
	}

	return kind, nil
}

// ---------- Raw strided descriptor ----------

// window is the raw view of a (sub-)matrix: data begins at element (0,0) of the
// window; consecutive rows are srcCols apart.
type window[T numeric.Number] struct {
	data    []T // from the first aliased element to the end of the source
	rows    int // window rows
	cols    int // window columns
	srcRows int // rows of the owning storage
	srcCols int // columns of the owning storage (the stride)
}

// offset maps (row, col) to a data index.
func (w window[T]) offset(row, col int) int { return row*w.srcCols + col }

// offsetOf maps a row-major window index to a data index.
func (w window[T]) offsetOf(i int) int {
	if w.cols == 0 {
		return i
	}

	return (i/w.cols)*w.srcCols + i%w.cols
}

// size is the number of addressable elements.
func (w window[T]) size() int { return w.rows * w.cols }

// contiguous reports whether the window is one dense run (no row gaps).
func (w window[T]) contiguous() bool { return w.cols == w.srcCols || w.rows <= 1 }

// sub narrows w to the rows×cols region starting at (r0, c0). Bounds are the
// caller's responsibility.
func (w window[T]) sub(r0, c0, rows, cols int) window[T] {
	return window[T]{
		data:    w.data[w.offset(r0, c0):],
		rows:    rows,
		cols:    cols,
		srcRows: w.srcRows,
		srcCols: w.srcCols,
	}
}

// row returns the cols elements of window row r as one slice.
func (w window[T]) row(r int) []T {
	start := w.offset(r, 0)

	return w.data[start : start+w.cols]
}

// span returns the [lo, hi) byte addresses touched by w (lo == hi when empty).
func (w window[T]) span() (lo, hi uintptr) {
	if w.size() == 0 {
		return 0, 0
	}
	var zero T
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(w.data)))
	last := w.offset(w.rows-1, w.cols-1)

	return lo, lo + uintptr(last+1)*unsafe.Sizeof(zero)
}

// overlaps reports whether a and b touch common memory.
func overlaps[T numeric.Number](a, b window[T]) bool {
	alo, ahi := a.span()
	blo, bhi := b.span()

	return alo < bhi && blo < ahi
}

// sameLayout reports whether a and b address exactly the same elements in the
// same order, so element i of one is element i of the other.
func sameLayout[T numeric.Number](a, b window[T]) bool {
	alo, _ := a.span()
	blo, _ := b.span()

	return alo == blo && a.rows == b.rows && a.cols == b.cols && a.srcCols == b.srcCols
}

// ---------- Generation lease ----------

// lease is embedded in every owning matrix. Moving, resizing or releasing the
// owner bumps gen, which invalidates every leaseRef taken before.
type lease struct {
	gen uint64
}

func (l *lease) bump() { l.gen++ }

func (l *lease) ref() leaseRef { return leaseRef{l: l, gen: l.gen} }

// leaseRef is the view-side half of the lease.
type leaseRef struct {
	l   *lease
	gen uint64
}

// check returns ErrStaleView once the owner's generation moved on.
func (r leaseRef) check() error {
	if r.l != nil && r.l.gen != r.gen {
		return ErrStaleView
	}

	return nil
}

// backing is a window together with the lease it was taken under.
type backing[T numeric.Number] struct {
	window[T]
	ref  leaseRef
	decl Shape // declared shape of the facade the window came from
}

// resolved returns the resolved shape as a static Shape.
func (b backing[T]) resolved() Shape { return FixedShape(b.rows, b.cols) }

// ---------- Primitive surface ----------

// storage is the primitive surface every variant exposes. Facades validate
// indices and staleness before calling the unsafe* methods.
type storage[T numeric.Number] interface {
	kind() StorageKind
	rowCount() int
	columnCount() int
	sourceRowCount() int
	sourceColumnCount() int
	unsafeAt(row, col int) T
	unsafeAtIndex(i int) T
	unsafeSet(row, col int, v T)
	unsafeSetIndex(i int, v T)
	window() window[T]
	valid() error
}

// ownedStorage is the extra surface of the two owning variants.
type ownedStorage[T numeric.Number] interface {
	storage[T]
	// elems returns the contiguous row-major elements.
	elems() []T
	// reset zero-fills the storage for rows×cols.
	reset(rows, cols int)
}
