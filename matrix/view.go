// SPDX-License-Identifier: MIT

// Package matrix - non-owning strided views.
//
// Purpose:
//   - View[T] aliases a rectangular region of another variant; writes go through.
//   - ConstView[T] aliases the same way but has no write method at all, so a
//     read-only view can never be turned into a mutable one.
//
// Implementation:
//   - Both keep the window (first aliased element, view rows/cols, source
//     rows/cols) and the lease of the owning matrix. Every access checks the
//     lease first; a moved or resized owner yields ErrStaleView.
//   - A view of a view keeps the original source stride.
//
// Complexity quicksheet:
//   - Construction O(1); At/Set O(1); CopyFrom/Materialize O(rows*cols).

package matrix

import (
	"iter"

	"github.com/katalvlaran/matview/numeric"
)

const (
	ctxAsView      = "AsView"
	ctxAsConstView = "AsConstView"
)

// viewCore carries the read surface shared by View and ConstView.
type viewCore[T numeric.Number] struct {
	decl Shape
	st   viewStorage[T]
}

// Rows returns the view's row count.
func (v *viewCore[T]) Rows() int { return v.st.rowCount() }

// Cols returns the view's column count.
func (v *viewCore[T]) Cols() int { return v.st.columnCount() }

// Shape returns the view's (rows, cols).
func (v *viewCore[T]) Shape() (rows, cols int) { return v.st.rowCount(), v.st.columnCount() }

// SourceShape returns the (rows, cols) of the owning storage; cols is the stride.
func (v *viewCore[T]) SourceShape() (rows, cols int) {
	return v.st.sourceRowCount(), v.st.sourceColumnCount()
}

// Declared returns the declared shape.
func (v *viewCore[T]) Declared() Shape { return v.decl }

// Kind reports StorageMutableView or StorageReadOnlyView.
func (v *viewCore[T]) Kind() StorageKind { return v.st.kind() }

// Valid returns ErrStaleView once the owning storage was moved or resized.
func (v *viewCore[T]) Valid() error { return v.st.valid() }

// At returns element (row, col) of the view.
func (v *viewCore[T]) At(row, col int) (T, error) { return checkedAt[T](ctxAt, &v.st, row, col) }

// AtIndex returns element i of a vector view.
func (v *viewCore[T]) AtIndex(i int) (T, error) { return checkedAtIndex[T](ctxAtIndex, v.decl, &v.st, i) }

// X returns vector component 0.
func (v *viewCore[T]) X() (T, error) { return component[T](v.decl, &v.st, 0) }

// Y returns vector component 1.
func (v *viewCore[T]) Y() (T, error) { return component[T](v.decl, &v.st, 1) }

// Z returns vector component 2.
func (v *viewCore[T]) Z() (T, error) { return component[T](v.decl, &v.st, 2) }

// W returns vector component 3.
func (v *viewCore[T]) W() (T, error) { return component[T](v.decl, &v.st, 3) }

// Length returns the element count of a vector view.
func (v *viewCore[T]) Length() (int, error) { return vectorLength[T](v.decl, &v.st) }

// CBegin returns a read-only cursor at the first element (empty range when stale).
func (v *viewCore[T]) CBegin() ConstIterator[T] { return cbeginOf(liveWindow[T](&v.st)) }

// CEnd returns the read-only cursor one past the last element.
func (v *viewCore[T]) CEnd() ConstIterator[T] { return cendOf(liveWindow[T](&v.st)) }

// Values yields every element in row-major order (nothing when stale).
func (v *viewCore[T]) Values() iter.Seq[T] { return values(liveWindow[T](&v.st)) }

// All yields (row-major index, element) pairs (nothing when stale).
func (v *viewCore[T]) All() iter.Seq2[int, T] { return indexed(liveWindow[T](&v.st)) }

// Do visits elements in row-major order until f returns false.
func (v *viewCore[T]) Do(f func(row, col int, val T) bool) { visit(liveWindow[T](&v.st), f) }

// String renders the view as "{{a, b}, {c, d}}".
func (v *viewCore[T]) String() string { return formatWindow(liveWindow[T](&v.st)) }

func (v *viewCore[T]) load() (backing[T], error) {
	if err := v.st.valid(); err != nil {
		return backing[T]{}, err
	}

	return backing[T]{window: v.st.w, ref: v.st.ref, decl: v.decl}, nil
}

// View is a mutable, non-owning window into another matrix.
type View[T numeric.Number] struct {
	viewCore[T]
}

func newView[T numeric.Number](w window[T], ref leaseRef, decl Shape) *View[T] {
	return &View[T]{viewCore[T]{decl: decl, st: viewStorage[T]{w: w, ref: ref}}}
}

// AsView re-aliases src (an owning matrix or a mutable view) as a mutable view
// declared as decl.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch.
// Complexity: O(1).
func AsView[T numeric.Number](decl Shape, src Mutable[T]) (*View[T], error) {
	b, err := writeBacking(ctxAsView, src)
	if err != nil {
		return nil, err
	}
	if err = checkAlias(ctxAsView, decl, b); err != nil {
		return nil, err
	}

	return newView(b.window, b.ref, decl), nil
}

func (v *View[T]) backing() (backing[T], error) {
	if v == nil {
		return backing[T]{}, ErrNilMatrix
	}

	return v.load()
}

func (v *View[T]) mutableBacking() (backing[T], error) { return v.backing() }

// Set writes v at (row, col) of the aliased storage.
func (v *View[T]) Set(row, col int, val T) error { return checkedSet[T](ctxSet, &v.st, row, col, val) }

// SetIndex writes element i of a vector view.
func (v *View[T]) SetIndex(i int, val T) error {
	return checkedSetIndex[T](ctxSetIndex, v.decl, &v.st, i, val)
}

// SetX assigns vector component 0.
func (v *View[T]) SetX(val T) error { return setComponent[T](v.decl, &v.st, 0, val) }

// SetY assigns vector component 1.
func (v *View[T]) SetY(val T) error { return setComponent[T](v.decl, &v.st, 1, val) }

// SetZ assigns vector component 2.
func (v *View[T]) SetZ(val T) error { return setComponent[T](v.decl, &v.st, 2, val) }

// SetW assigns vector component 3.
func (v *View[T]) SetW(val T) error { return setComponent[T](v.decl, &v.st, 3, val) }

// Begin returns a mutable cursor at the first element (empty range when stale).
func (v *View[T]) Begin() Iterator[T] { return beginOf(liveWindow[T](&v.st)) }

// End returns the mutable cursor one past the last element.
func (v *View[T]) End() Iterator[T] { return endOf(liveWindow[T](&v.st)) }

// Apply replaces every element with f(row, col, v), writing through the view.
func (v *View[T]) Apply(f func(row, col int, val T) T) error { return apply[T](&v.st, f) }

// CopyFrom deep-copies src into the aliased region. src may overlap the view.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch.
// Complexity: O(rows*cols).
func (v *View[T]) CopyFrom(src Reader[T]) error {
	dst, err := v.backing()
	if err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}

	return copyInto(ctxCopyFrom, dst, src)
}

// ReadOnly returns a read-only view of the same region.
// Complexity: O(1).
func (v *View[T]) ReadOnly() *ConstView[T] {
	return newConstView(v.st.w, v.st.ref, v.decl)
}

// As re-aliases the view under another compatible declared shape.
func (v *View[T]) As(decl Shape) (*View[T], error) { return AsView[T](decl, v) }

// Materialize deep-copies the view into a new owning matrix of the same declared shape.
func (v *View[T]) Materialize(opts ...Option) (*Matrix[T], error) {
	return Convert[T](v.decl, v, opts...)
}

// ConstView is a read-only, non-owning window into another matrix.
type ConstView[T numeric.Number] struct {
	viewCore[T]
}

func newConstView[T numeric.Number](w window[T], ref leaseRef, decl Shape) *ConstView[T] {
	return &ConstView[T]{viewCore[T]{decl: decl, st: viewStorage[T]{w: w, ref: ref, readOnly: true}}}
}

// AsConstView aliases any variant as a read-only view declared as decl.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch.
// Complexity: O(1).
func AsConstView[T numeric.Number](decl Shape, src Reader[T]) (*ConstView[T], error) {
	b, err := readBacking(ctxAsConstView, src)
	if err != nil {
		return nil, err
	}
	if err = checkAlias(ctxAsConstView, decl, b); err != nil {
		return nil, err
	}

	return newConstView(b.window, b.ref, decl), nil
}

func (v *ConstView[T]) backing() (backing[T], error) {
	if v == nil {
		return backing[T]{}, ErrNilMatrix
	}

	return v.load()
}

// As re-aliases the view under another compatible declared shape.
func (v *ConstView[T]) As(decl Shape) (*ConstView[T], error) { return AsConstView[T](decl, v) }

// Materialize deep-copies the view into a new owning matrix of the same declared shape.
func (v *ConstView[T]) Materialize(opts ...Option) (*Matrix[T], error) {
	return Convert[T](v.decl, v, opts...)
}

// checkAlias verifies that decl can describe the aliased window.
func checkAlias[T numeric.Number](tag string, decl Shape, b backing[T]) error {
	if err := validateDeclared(tag, decl); err != nil {
		return err
	}
	if !ShapeCompatible(decl, b.decl) || !ShapeCompatible(decl, b.resolved()) {
		return shapeErrorf(tag, decl, b.resolved(), ErrShapeMismatch)
	}

	return nil
}
