// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Derive rectangular sub-views from any variant without copying.
//   - Mutability follows the source: Slice needs a Mutable source and returns a
//     *View; SliceConst accepts any Reader and returns a *ConstView.
//
// Implementation:
//   - Stage 1: static check. Every static member of the Slicer is validated
//     against the declared source shape with SubintervalValid.
//   - Stage 2: arity. Exactly the Dynamic members must be supplied, in
//     (beginRow, beginCol, rows, cols) order.
//   - Stage 3: run-time check on resolved numbers: 0 <= start, 1 <= span,
//     start+span <= extent.
//   - Stage 4: narrow the source window. The view keeps the source stride, so a
//     slice of a slice still addresses the original storage.
//
// Complexity:
//   - O(1) time and memory.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matview/numeric"
)

const (
	ctxSlice      = "Slice"
	ctxSliceConst = "SliceConst"
)

// Slicer describes a rectangular region. Any member may be Dynamic; dynamic
// members are supplied as run-time arguments when slicing.
type Slicer struct {
	BeginRow Dim // first row of the region
	BeginCol Dim // first column of the region
	Rows     Dim // row span (>= 1)
	Cols     Dim // column span (>= 1)
}

// NewSlicer builds a Slicer.
func NewSlicer(beginRow, beginCol, rows, cols Dim) Slicer {
	return Slicer{BeginRow: beginRow, BeginCol: beginCol, Rows: rows, Cols: cols}
}

// DynamicSlicer is a Slicer whose four members are all supplied at run time.
var DynamicSlicer = Slicer{BeginRow: Dynamic, BeginCol: Dynamic, Rows: Dynamic, Cols: Dynamic}

// Arity returns the number of run-time arguments the Slicer expects.
func (s Slicer) Arity() int { return DynamicCount(s.BeginRow, s.BeginCol, s.Rows, s.Cols) }

// Shape returns the declared shape of the views the Slicer produces.
func (s Slicer) Shape() Shape { return Shape{Rows: s.Rows, Cols: s.Cols} }

// String renders "[r0:rows, c0:cols]" with "?" for Dynamic members.
func (s Slicer) String() string {
	return fmt.Sprintf("[%s:%s, %s:%s]", s.BeginRow, s.Rows, s.BeginCol, s.Cols)
}

// resolveRegion runs Stages 1–3 and returns the resolved region.
func resolveRegion[T numeric.Number](tag string, s Slicer, src backing[T], args []int) (r0, c0, rows, cols int, err error) {
	// Stage 1: static members against the declared source shape.
	if !SubintervalValid(s.BeginRow, s.Rows, src.decl.Rows) || !SubintervalValid(s.BeginCol, s.Cols, src.decl.Cols) {
		return 0, 0, 0, 0, matrixErrorf(fmt.Sprintf("%s: %s of %s", tag, s, src.decl), ErrSliceOutOfBounds)
	}
	// Stage 2: arity.
	if len(args) != s.Arity() {
		return 0, 0, 0, 0, matrixErrorf(fmt.Sprintf("%s: %s takes %d arguments, got %d", tag, s, s.Arity(), len(args)), ErrSliceArity)
	}
	next := func(d Dim) int {
		if d != Dynamic {
			return int(d)
		}
		v := args[0]
		args = args[1:]

		return v
	}
	r0, c0, rows, cols = next(s.BeginRow), next(s.BeginCol), next(s.Rows), next(s.Cols)
	// Stage 3: resolved numbers.
	if !spanInside(r0, rows, src.rows) || !spanInside(c0, cols, src.cols) {
		return 0, 0, 0, 0, matrixErrorf(fmt.Sprintf("%s: [%d:%d, %d:%d] of %dx%d", tag, r0, rows, c0, cols, src.rows, src.cols), ErrSliceOutOfBounds)
	}

	return r0, c0, rows, cols, nil
}

// spanInside reports 0 <= start, 1 <= span and start+span <= extent.
func spanInside(start, span, extent int) bool {
	return start >= 0 && span >= 1 && start <= extent-span
}

// Slice returns a mutable view of the region s of src.
// Errors: ErrNilMatrix, ErrStaleView, ErrSliceOutOfBounds, ErrSliceArity.
// Complexity: O(1).
func Slice[T numeric.Number](src Mutable[T], s Slicer, args ...int) (*View[T], error) {
	b, err := writeBacking(ctxSlice, src)
	if err != nil {
		return nil, err
	}
	r0, c0, rows, cols, err := resolveRegion(ctxSlice, s, b, args)
	if err != nil {
		return nil, err
	}

	return newView(b.sub(r0, c0, rows, cols), b.ref, s.Shape()), nil
}

// SliceConst returns a read-only view of the region s of src.
// Errors: as Slice.
// Complexity: O(1).
func SliceConst[T numeric.Number](src Reader[T], s Slicer, args ...int) (*ConstView[T], error) {
	b, err := readBacking(ctxSliceConst, src)
	if err != nil {
		return nil, err
	}
	r0, c0, rows, cols, err := resolveRegion(ctxSliceConst, s, b, args)
	if err != nil {
		return nil, err
	}

	return newConstView(b.sub(r0, c0, rows, cols), b.ref, s.Shape()), nil
}

// SliceRow returns row i of src as a mutable 1×cols view.
// Complexity: O(1).
func SliceRow[T numeric.Number](src Mutable[T], i int) (*View[T], error) {
	s, args := lineArgs[T](src, i, true)

	return Slice(src, s, args...)
}

// SliceColumn returns column j of src as a mutable rows×1 view.
// Complexity: O(1).
func SliceColumn[T numeric.Number](src Mutable[T], j int) (*View[T], error) {
	s, args := lineArgs[T](src, j, false)

	return Slice(src, s, args...)
}

// SliceRowConst returns row i of src as a read-only 1×cols view.
// Complexity: O(1).
func SliceRowConst[T numeric.Number](src Reader[T], i int) (*ConstView[T], error) {
	s, args := lineArgs[T](src, i, true)

	return SliceConst(src, s, args...)
}

// SliceColumnConst returns column j of src as a read-only rows×1 view.
// Complexity: O(1).
func SliceColumnConst[T numeric.Number](src Reader[T], j int) (*ConstView[T], error) {
	s, args := lineArgs[T](src, j, false)

	return SliceConst(src, s, args...)
}

// lineArgs builds the Slicer and arguments selecting one full row (or column).
// A nil or stale src yields a fully dynamic Slicer; Slice then reports the error.
func lineArgs[T numeric.Number](src Reader[T], i int, row bool) (Slicer, []int) {
	b, err := readBacking("", src)
	if err != nil {
		return DynamicSlicer, []int{i, 0, 1, 1}
	}
	if row {
		s := Slicer{BeginRow: Dynamic, BeginCol: 0, Rows: 1, Cols: b.decl.Cols}
		if s.Cols == Dynamic {
			return s, []int{i, b.cols}
		}

		return s, []int{i}
	}
	s := Slicer{BeginRow: 0, BeginCol: Dynamic, Rows: b.decl.Rows, Cols: 1}
	if s.Rows == Dynamic {
		return s, []int{i, b.rows}
	}

	return s, []int{i}
}
