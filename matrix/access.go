// SPDX-License-Identifier: MIT

// Package matrix - checked element access shared by every facade.
//
// Purpose:
//   - Implement bounds/staleness checks once over the storage[T] primitive surface;
//     Matrix, View and ConstView only forward to these helpers.
//
// Contract:
//   - Order of checks: declared (static) shape -> staleness -> resolved bounds.
//   - Nothing here panics on user input; the unsafe* primitives run only after checks.
//
// Complexity quicksheet:
//   - Element access O(1); visitors O(rows*cols).

package matrix

import (
	"iter"

	"github.com/katalvlaran/matview/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSetIndex = "SetIndex" // method tag used in error wrappers
	ctxLength   = "Length"   // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
)

// componentNames maps a named accessor to its linear index.
var componentNames = [...]string{"X", "Y", "Z", "W"}

// liveWindow returns the storage window, or an empty one when the storage is a
// stale view (so iteration over it yields nothing).
func liveWindow[T numeric.Number](st storage[T]) window[T] {
	if st.valid() != nil {
		return window[T]{}
	}

	return st.window()
}

// checkedAt reads (row, col) after staleness and bounds checks.
// Complexity: O(1).
func checkedAt[T numeric.Number](tag string, st storage[T], row, col int) (T, error) {
	var zero T
	if err := st.valid(); err != nil {
		return zero, matrixErrorf(tag, err)
	}
	if !CanSubscript(st.rowCount(), st.columnCount(), row, col) {
		return zero, indexErrorf(tag, row, col, st.rowCount(), st.columnCount())
	}

	return st.unsafeAt(row, col), nil
}

// checkedSet writes v at (row, col) after staleness and bounds checks.
// Complexity: O(1).
func checkedSet[T numeric.Number](tag string, st storage[T], row, col int, v T) error {
	if err := st.valid(); err != nil {
		return matrixErrorf(tag, err)
	}
	if !CanSubscript(st.rowCount(), st.columnCount(), row, col) {
		return indexErrorf(tag, row, col, st.rowCount(), st.columnCount())
	}
	st.unsafeSet(row, col, v)

	return nil
}

// vectorIndex validates a linear index against a vector facade.
// Stage 1: the declared shape must admit a vector (ErrNonVector).
// Stage 2: the storage must be live (ErrStaleView).
// Stage 3: the resolved shape must be a vector (ErrNonVector) long enough (ErrOutOfRange).
func vectorIndex[T numeric.Number](tag string, decl Shape, st storage[T], i int) error {
	if !IsVector(decl.Rows, decl.Cols) {
		return matrixErrorf(tag+" on "+decl.String(), ErrNonVector)
	}
	if err := st.valid(); err != nil {
		return matrixErrorf(tag, err)
	}
	rows, cols := st.rowCount(), st.columnCount()
	if rows != 1 && cols != 1 {
		return matrixErrorf(tag+" on "+FixedShape(rows, cols).String(), ErrNonVector)
	}
	if !CanSubscriptIndex(rows, cols, i) {
		return indexErrorf(tag, i, 0, rows*cols, 1)
	}

	return nil
}

// checkedAtIndex reads element i of a vector.
// Complexity: O(1).
func checkedAtIndex[T numeric.Number](tag string, decl Shape, st storage[T], i int) (T, error) {
	if err := vectorIndex[T](tag, decl, st, i); err != nil {
		var zero T
		return zero, err
	}

	return st.unsafeAtIndex(i), nil
}

// checkedSetIndex writes element i of a vector.
// Complexity: O(1).
func checkedSetIndex[T numeric.Number](tag string, decl Shape, st storage[T], i int, v T) error {
	if err := vectorIndex[T](tag, decl, st, i); err != nil {
		return err
	}
	st.unsafeSetIndex(i, v)

	return nil
}

// componentCheck rejects X/Y/Z/W on a shape that cannot hold component i.
func componentCheck(decl Shape, i int) error {
	if !IsVectorOfMinimumLength(decl.Rows, decl.Cols, i+1) {
		return matrixErrorf(componentNames[i]+" on "+decl.String(), ErrOutOfRange)
	}

	return nil
}

// component reads the named component i (0 = X ... 3 = W).
func component[T numeric.Number](decl Shape, st storage[T], i int) (T, error) {
	if err := componentCheck(decl, i); err != nil {
		var zero T
		return zero, err
	}

	return checkedAtIndex[T](componentNames[i], decl, st, i)
}

// setComponent writes the named component i (0 = X ... 3 = W).
func setComponent[T numeric.Number](decl Shape, st storage[T], i int, v T) error {
	if err := componentCheck(decl, i); err != nil {
		return err
	}

	return checkedSetIndex[T](componentNames[i], decl, st, i, v)
}

// vectorLength returns the element count of a vector facade.
// Complexity: O(1).
func vectorLength[T numeric.Number](decl Shape, st storage[T]) (int, error) {
	if err := vectorIndex[T](ctxLength, decl, st, 0); err != nil {
		// An empty vector cannot exist (rows==0 iff cols==0), so index 0 only
		// fails for a non-vector or a stale view.
		return 0, err
	}

	return st.rowCount() * st.columnCount(), nil
}

// visit walks w in row-major order until f returns false.
// Complexity: O(rows*cols).
func visit[T numeric.Number](w window[T], f func(row, col int, v T) bool) {
	for r := 0; r < w.rows; r++ {
		for c, v := range w.row(r) {
			if !f(r, c, v) {
				return
			}
		}
	}
}

// apply replaces every element with f(row, col, v).
// Complexity: O(rows*cols).
func apply[T numeric.Number](st storage[T], f func(row, col int, v T) T) error {
	if err := st.valid(); err != nil {
		return matrixErrorf(ctxApply, err)
	}
	w := st.window()
	for r := 0; r < w.rows; r++ {
		row := w.row(r)
		for c := range row {
			row[c] = f(r, c, row[c])
		}
	}

	return nil
}

// values adapts a window to iter.Seq.
func values[T numeric.Number](w window[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := 0; r < w.rows; r++ {
			for _, v := range w.row(r) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// indexed adapts a window to iter.Seq2 keyed by the row-major index.
func indexed[T numeric.Number](w window[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for r := 0; r < w.rows; r++ {
			for _, v := range w.row(r) {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
	}
}
