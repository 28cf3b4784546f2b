// SPDX-License-Identifier: MIT

// Package matrix - owning matrices (inline or heap storage) & constructors.
//
// Purpose:
//   - Provide *Matrix[T], the owning facade. Its storage is either an inline block
//     embedded in the value (small static shapes) or a heap slice (everything else).
//   - Offer every construction form: zero-filled, filled with explicit counts, flat
//     literal, nested literal, sequence, and checked conversion from any Reader.
//   - Own the generation lease that views consult: Move and Resize invalidate
//     every view taken before them.
//
// AI-Hints:
//   - Use FromRows for literals, FromSeq to stream values, Convert to materialize a view.
//   - Clone is a deep copy; Move transfers the storage and leaves the source 0x0.
//
// Complexity quicksheet:
//   - New/NewFilled/FromFlat/FromRows/FromSeq/Convert/Clone: O(rows*cols); Move: O(1)
//     (O(InlineCapacity) for inline); At/Set: O(1).

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/matview/numeric"
)

// ---------- constructor tags ----------

const (
	ctxNew      = "New"
	ctxFilled   = "NewFilled"
	ctxFromFlat = "FromFlat"
	ctxFromRows = "FromRows"
	ctxFromSeq  = "FromSeq"
	ctxConvert  = "Convert"
	ctxResize   = "Resize"
	ctxCopyFrom = "CopyFrom"
)

// Matrix is an owning row-major matrix of T.
//   - decl is the declared shape; the resolved extent lives in the storage.
//   - kind selects which of inline/heap is live; the other stays empty.
//   - lease is bumped whenever the live storage stops backing earlier views.
//
// A Matrix must not be copied by value; use Clone.
type Matrix[T numeric.Number] struct {
	decl   Shape
	kind   StorageKind
	inline inlineStorage[T]
	heap   heapStorage[T]
	lease  lease
}

// owned returns the live storage.
func (m *Matrix[T]) owned() ownedStorage[T] {
	if m.kind == StorageInline {
		return &m.inline
	}

	return &m.heap
}

// newMatrix validates the request and returns a zero-filled rows×cols matrix.
// Stage 1 (Validate): declared and resolved shapes (ErrInvalidShape).
// Stage 2 (Prepare): pick the storage variant (ErrStorageStrategy).
// Stage 3 (Finalize): zero-fill.
func newMatrix[T numeric.Number](tag string, decl Shape, rows, cols int, opts []Option) (*Matrix[T], error) {
	if err := validateResolved(tag, decl, rows, cols); err != nil {
		return nil, err
	}
	kind, err := resolveStorage[T](gatherOptions(opts...), decl, rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	m := &Matrix[T]{decl: decl, kind: kind}
	m.owned().reset(rows, cols)

	return m, nil
}

// New returns a zero-filled matrix of the declared shape.
// A fully static shape is allocated at its declared extent, a fully dynamic one
// starts 0x0. A partially dynamic shape whose static side is non-zero cannot be
// resolved without counts: ErrInvalidShape (use NewFilled).
// Complexity: O(rows*cols).
func New[T numeric.Number](decl Shape, opts ...Option) (*Matrix[T], error) {
	rows, _ := decl.Rows.Value()
	cols, _ := decl.Cols.Value()

	return newMatrix[T](ctxNew, decl, rows, cols, opts)
}

// NewFilled returns a rows×cols matrix with every element set to fill.
// Errors: ErrInvalidShape for negative counts, rows==0 xor cols==0, or counts
// that contradict a static dimension.
// Complexity: O(rows*cols).
func NewFilled[T numeric.Number](decl Shape, rows, cols int, fill T, opts ...Option) (*Matrix[T], error) {
	m, err := newMatrix[T](ctxFilled, decl, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	if fill != 0 {
		data := m.owned().elems()
		for i := range data {
			data[i] = fill
		}
	}

	return m, nil
}

// FromFlat builds a vector from a flat literal.
// Resolution: a declared single row (or a dynamic row count against a static
// column count equal to len(values)) yields a 1×L row vector; anything else a
// L×1 column vector. An empty literal yields 0x0.
// Errors: ErrInvalidShape when the declared shape cannot be a vector of len(values).
// Complexity: O(L).
func FromFlat[T numeric.Number](decl Shape, values []T, opts ...Option) (*Matrix[T], error) {
	n := len(values)
	if n > 0 && !IsVectorOfLength(decl.Rows, decl.Cols, n) {
		return nil, matrixErrorf(ctxFromFlat+": "+decl.String()+" is not a vector of that length", ErrInvalidShape)
	}
	rows, cols := n, 1
	if n == 0 {
		rows, cols = 0, 0
	} else if decl.Rows == 1 || (decl.Rows == Dynamic && decl.Cols == Dim(n)) {
		rows, cols = 1, n
	}
	m, err := newMatrix[T](ctxFromFlat, decl, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	copy(m.owned().elems(), values)

	return m, nil
}

// FromRows builds a matrix from a nested literal, one inner slice per row.
// Errors: ErrInvalidShape for ragged or empty inner rows, or when the literal's
// extent contradicts a static dimension.
// Complexity: O(rows*cols).
func FromRows[T numeric.Number](decl Shape, rows [][]T, opts ...Option) (*Matrix[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != c {
			return nil, matrixErrorf(fmt.Sprintf("%s: row %d has %d elements, want %d", ctxFromRows, i, len(rows[i]), c), ErrInvalidShape)
		}
	}
	m, err := newMatrix[T](ctxFromRows, decl, r, c, opts)
	if err != nil {
		return nil, err
	}
	data := m.owned().elems()
	for i := range rows {
		copy(data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// FromSeq fills a rows×cols matrix in row-major order from seq.
// Errors: ErrInvalidShape as NewFilled; ErrSourceUnderflow when seq ends early;
// ErrSourceOverflow when seq yields more than rows*cols values.
// Complexity: O(rows*cols).
func FromSeq[T numeric.Number](decl Shape, rows, cols int, seq iter.Seq[T], opts ...Option) (*Matrix[T], error) {
	m, err := newMatrix[T](ctxFromSeq, decl, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	data := m.owned().elems()
	n, overflow := 0, false
	for v := range seq {
		if n == len(data) {
			overflow = true
			break
		}
		data[n] = v
		n++
	}
	switch {
	case overflow:
		return nil, matrixErrorf(ctxFromSeq, ErrSourceOverflow)
	case n < len(data):
		return nil, matrixErrorf(ctxFromSeq, ErrSourceUnderflow)
	}

	return m, nil
}

// Convert deep-copies src (any variant) into a new owning matrix declared as decl.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch (*ShapeError) when src's
// shape is not compatible with decl.
// Complexity: O(rows*cols).
func Convert[T numeric.Number](decl Shape, src Reader[T], opts ...Option) (*Matrix[T], error) {
	b, err := readBacking(ctxConvert, src)
	if err != nil {
		return nil, err
	}
	if !ShapeCompatible(decl, b.decl) || !ShapeCompatible(decl, b.resolved()) {
		return nil, shapeErrorf(ctxConvert, decl, b.resolved(), ErrShapeMismatch)
	}
	m, err := newMatrix[T](ctxConvert, decl, b.rows, b.cols, opts)
	if err != nil {
		return nil, err
	}
	copyWindow(m.owned().window(), b.window)

	return m, nil
}

// ---------- shape & kind ----------

// Rows returns the resolved number of rows.
func (m *Matrix[T]) Rows() int { return m.owned().rowCount() }

// Cols returns the resolved number of columns.
func (m *Matrix[T]) Cols() int { return m.owned().columnCount() }

// Shape returns the resolved (rows, cols).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Declared returns the declared shape.
func (m *Matrix[T]) Declared() Shape { return m.decl }

// Kind reports StorageInline or StorageHeap.
func (m *Matrix[T]) Kind() StorageKind { return m.kind }

// Len returns rows*cols.
func (m *Matrix[T]) Len() int { return m.Rows() * m.Cols() }

// Data exposes the contiguous row-major buffer. Writes go straight into the
// matrix; the slice stops aliasing it after Move or Resize.
func (m *Matrix[T]) Data() []T { return m.owned().elems() }

func (m *Matrix[T]) backing() (backing[T], error) {
	if m == nil {
		return backing[T]{}, ErrNilMatrix
	}

	return backing[T]{window: m.owned().window(), ref: m.lease.ref(), decl: m.decl}, nil
}

func (m *Matrix[T]) mutableBacking() (backing[T], error) { return m.backing() }

// ---------- element access ----------

// At returns element (row, col).
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) { return checkedAt[T](ctxAt, m.owned(), row, col) }

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error { return checkedSet[T](ctxSet, m.owned(), row, col, v) }

// AtIndex returns element i of a vector.
func (m *Matrix[T]) AtIndex(i int) (T, error) { return checkedAtIndex[T](ctxAtIndex, m.decl, m.owned(), i) }

// SetIndex assigns element i of a vector.
func (m *Matrix[T]) SetIndex(i int, v T) error {
	return checkedSetIndex[T](ctxSetIndex, m.decl, m.owned(), i, v)
}

// X returns vector component 0.
func (m *Matrix[T]) X() (T, error) { return component[T](m.decl, m.owned(), 0) }

// Y returns vector component 1.
func (m *Matrix[T]) Y() (T, error) { return component[T](m.decl, m.owned(), 1) }

// Z returns vector component 2.
func (m *Matrix[T]) Z() (T, error) { return component[T](m.decl, m.owned(), 2) }

// W returns vector component 3.
func (m *Matrix[T]) W() (T, error) { return component[T](m.decl, m.owned(), 3) }

// SetX assigns vector component 0.
func (m *Matrix[T]) SetX(v T) error { return setComponent[T](m.decl, m.owned(), 0, v) }

// SetY assigns vector component 1.
func (m *Matrix[T]) SetY(v T) error { return setComponent[T](m.decl, m.owned(), 1, v) }

// SetZ assigns vector component 2.
func (m *Matrix[T]) SetZ(v T) error { return setComponent[T](m.decl, m.owned(), 2, v) }

// SetW assigns vector component 3.
func (m *Matrix[T]) SetW(v T) error { return setComponent[T](m.decl, m.owned(), 3, v) }

// Length returns the element count of a vector, ErrNonVector otherwise.
func (m *Matrix[T]) Length() (int, error) { return vectorLength[T](m.decl, m.owned()) }

// ---------- iteration ----------

// Begin returns a mutable cursor at the first element.
func (m *Matrix[T]) Begin() Iterator[T] { return beginOf(m.owned().window()) }

// End returns the mutable cursor one past the last element.
func (m *Matrix[T]) End() Iterator[T] { return endOf(m.owned().window()) }

// CBegin returns a read-only cursor at the first element.
func (m *Matrix[T]) CBegin() ConstIterator[T] { return cbeginOf(m.owned().window()) }

// CEnd returns the read-only cursor one past the last element.
func (m *Matrix[T]) CEnd() ConstIterator[T] { return cendOf(m.owned().window()) }

// Values yields every element in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] { return values(m.owned().window()) }

// All yields (row-major index, element) pairs.
func (m *Matrix[T]) All() iter.Seq2[int, T] { return indexed(m.owned().window()) }

// Do visits elements in row-major order until f returns false.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Do(f func(row, col int, v T) bool) { visit(m.owned().window(), f) }

// Apply replaces every element with f(row, col, v).
// Complexity: O(rows*cols).
func (m *Matrix[T]) Apply(f func(row, col int, v T) T) error { return apply[T](m.owned(), f) }

// ---------- value semantics ----------

// Clone returns a deep copy with the same declared shape and storage variant.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{decl: m.decl, kind: m.kind}
	if m.kind == StorageInline {
		out.inline = m.inline // value copy of the block
	} else {
		out.heap = m.heap.clone()
	}

	return out
}

// Move transfers the storage into a new Matrix and leaves m an empty, fully
// dynamic 0x0 heap matrix. Views taken from m before the call report ErrStaleView.
// Complexity: O(1) for heap, O(InlineCapacity) for inline.
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{decl: m.decl, kind: m.kind, inline: m.inline, heap: m.heap}
	m.decl, m.kind = DynamicShape, StorageHeap
	m.inline, m.heap = inlineStorage[T]{}, heapStorage[T]{}
	m.lease.bump()

	return out
}

// Resize changes the extent of a heap matrix, keeping the overlapping top-left
// block and zero-filling new elements. Views taken before the call report
// ErrStaleView afterwards.
// Errors: ErrStorageStrategy for inline storage; ErrInvalidShape as NewFilled.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Resize(rows, cols int) error {
	if m.kind != StorageHeap {
		return matrixErrorf(ctxResize, ErrStorageStrategy)
	}
	if err := validateResolved(ctxResize, m.decl, rows, cols); err != nil {
		return err
	}
	m.heap.resize(rows, cols)
	m.lease.bump()

	return nil
}

// CopyFrom deep-copies src into m element by element. src may alias m.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch.
// Complexity: O(rows*cols).
func (m *Matrix[T]) CopyFrom(src Reader[T]) error {
	dst, err := m.backing()
	if err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}

	return copyInto(ctxCopyFrom, dst, src)
}

// View aliases the whole matrix as a mutable view with the same declared shape.
// Complexity: O(1).
func (m *Matrix[T]) View() *View[T] {
	return newView(m.owned().window(), m.lease.ref(), m.decl)
}

// ConstView aliases the whole matrix as a read-only view.
// Complexity: O(1).
func (m *Matrix[T]) ConstView() *ConstView[T] {
	return newConstView(m.owned().window(), m.lease.ref(), m.decl)
}

// String renders the matrix as "{{a, b}, {c, d}}".
func (m *Matrix[T]) String() string { return formatWindow(m.owned().window()) }
