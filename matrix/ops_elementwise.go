// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) over raw windows so every
//     facade (owning or view, contiguous or strided) shares the same tight loops.
//   - Expose the arithmetic-assignment operators (AddInPlace, SubInPlace,
//     ScaleInPlace, DivideInPlace) of *Matrix and *View on top of them.
//
// Design:
//   - Shapes are checked before the first write: a failed operator leaves the
//     destination untouched.
//   - A source that partially overlaps the destination (e.g. two slices of one
//     matrix shifted by a row) is detached into a temporary first, so the result
//     never depends on loop order. Identical layouts need no copy.
//
// Determinism & Performance:
//   - Fixed loop orders (row → column, or flat 0..n-1 for contiguous windows).
//   - Contiguous fast-path walks one flat run; strided windows go row by row.

package matrix

import "github.com/katalvlaran/matview/numeric"

const (
	ctxAddInPlace    = "AddInPlace"
	ctxSubInPlace    = "SubInPlace"
	ctxScaleInPlace  = "ScaleInPlace"
	ctxDivideInPlace = "DivideInPlace"
)

// flat returns the contiguous element run of w (only valid when w.contiguous()).
func (w window[T]) flat() []T {
	if w.size() == 0 {
		return nil
	}

	return w.data[:w.size()]
}

// copyWindow copies src into dst element by element; shapes must match.
// Time: O(r*c).
func copyWindow[T numeric.Number](dst, src window[T]) {
	if dst.contiguous() && src.contiguous() {
		copy(dst.flat(), src.flat())

		return
	}
	for r := 0; r < dst.rows; r++ {
		copy(dst.row(r), src.row(r)) // copy is memmove-safe for overlapping rows
	}
}

// detach returns src unchanged, or a private contiguous copy of it when it
// partially overlaps dst.
func detach[T numeric.Number](dst, src window[T]) window[T] {
	if !overlaps(dst, src) || sameLayout(dst, src) {
		return src
	}
	tmp := make([]T, src.size())
	i := 0
	for r := 0; r < src.rows; r++ {
		i += copy(tmp[i:], src.row(r))
	}

	return window[T]{data: tmp, rows: src.rows, cols: src.cols, srcRows: src.rows, srcCols: src.cols}
}

// copyInto implements CopyFrom for any destination backing.
func copyInto[T numeric.Number](tag string, dst backing[T], src Reader[T]) error {
	sb, err := readBacking(tag, src)
	if err != nil {
		return err
	}
	if err = sameShape(tag, dst, sb); err != nil {
		return err
	}
	copyWindow(dst.window, detach(dst.window, sb.window))

	return nil
}

// ewBinaryInPlace computes dst[i,j] = f(dst[i,j], src[i,j]).
// Time: O(r*c). Space: O(1), or O(r*c) for a partially overlapping src.
func ewBinaryInPlace[T numeric.Number](tag string, dst backing[T], src Reader[T], f numeric.Binary[T]) error {
	sb, err := readBacking(tag, src)
	if err != nil {
		return err
	}
	if err = sameShape(tag, dst, sb); err != nil {
		return err
	}
	s := detach(dst.window, sb.window)
	if dst.contiguous() && s.contiguous() {
		d, v := dst.flat(), s.flat()
		for i := range d {
			d[i] = f(d[i], v[i])
		}

		return nil
	}
	for r := 0; r < dst.rows; r++ {
		d, v := dst.row(r), s.row(r)
		for c := range d {
			d[c] = f(d[c], v[c])
		}
	}

	return nil
}

// ewUnaryInPlace computes w[i,j] = f(w[i,j]).
// Time: O(r*c). Space: O(1).
func ewUnaryInPlace[T numeric.Number](w window[T], f numeric.Unary[T]) {
	if w.contiguous() {
		d := w.flat()
		for i := range d {
			d[i] = f(d[i])
		}

		return
	}
	for r := 0; r < w.rows; r++ {
		d := w.row(r)
		for c := range d {
			d[c] = f(d[c])
		}
	}
}

// isIntegral reports whether T truncates division (an integer type).
func isIntegral[T numeric.Number]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}

// divideInPlace guards integer division by zero, then divides every element.
func divideInPlace[T numeric.Number](tag string, w window[T], scalar T) error {
	if scalar == 0 && isIntegral[T]() {
		return matrixErrorf(tag, ErrDivisionByZero)
	}
	ewUnaryInPlace(w, numeric.DivideBy(scalar))

	return nil
}

// ---------- *Matrix operators ----------

// AddInPlace performs m += other element-wise.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch; m is untouched on error.
// Complexity: O(rows*cols).
func (m *Matrix[T]) AddInPlace(other Reader[T]) error {
	dst, err := writeBacking[T](ctxAddInPlace, m)
	if err != nil {
		return err
	}

	return ewBinaryInPlace(ctxAddInPlace, dst, other, numeric.Add[T])
}

// SubInPlace performs m -= other element-wise.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch; m is untouched on error.
// Complexity: O(rows*cols).
func (m *Matrix[T]) SubInPlace(other Reader[T]) error {
	dst, err := writeBacking[T](ctxSubInPlace, m)
	if err != nil {
		return err
	}

	return ewBinaryInPlace(ctxSubInPlace, dst, other, numeric.Subtract[T])
}

// ScaleInPlace performs m *= scalar.
// Complexity: O(rows*cols).
func (m *Matrix[T]) ScaleInPlace(scalar T) error {
	dst, err := writeBacking[T](ctxScaleInPlace, m)
	if err != nil {
		return err
	}
	ewUnaryInPlace(dst.window, numeric.MultiplyBy(scalar))

	return nil
}

// DivideInPlace performs m /= scalar.
// Errors: ErrDivisionByZero for integer T and scalar == 0.
// Complexity: O(rows*cols).
func (m *Matrix[T]) DivideInPlace(scalar T) error {
	dst, err := writeBacking[T](ctxDivideInPlace, m)
	if err != nil {
		return err
	}

	return divideInPlace(ctxDivideInPlace, dst.window, scalar)
}

// ---------- *View operators ----------

// AddInPlace performs v += other, writing through to the aliased storage.
// Errors: ErrNilMatrix, ErrStaleView, ErrShapeMismatch; nothing is written on error.
// Complexity: O(rows*cols).
func (v *View[T]) AddInPlace(other Reader[T]) error {
	dst, err := writeBacking[T](ctxAddInPlace, v)
	if err != nil {
		return err
	}

	return ewBinaryInPlace(ctxAddInPlace, dst, other, numeric.Add[T])
}

// SubInPlace performs v -= other, writing through to the aliased storage.
// Complexity: O(rows*cols).
func (v *View[T]) SubInPlace(other Reader[T]) error {
	dst, err := writeBacking[T](ctxSubInPlace, v)
	if err != nil {
		return err
	}

	return ewBinaryInPlace(ctxSubInPlace, dst, other, numeric.Subtract[T])
}

// ScaleInPlace performs v *= scalar.
// Complexity: O(rows*cols).
func (v *View[T]) ScaleInPlace(scalar T) error {
	dst, err := writeBacking[T](ctxScaleInPlace, v)
	if err != nil {
		return err
	}
	ewUnaryInPlace(dst.window, numeric.MultiplyBy(scalar))

	return nil
}

// DivideInPlace performs v /= scalar.
// Errors: ErrDivisionByZero for integer T and scalar == 0.
// Complexity: O(rows*cols).
func (v *View[T]) DivideInPlace(scalar T) error {
	dst, err := writeBacking[T](ctxDivideInPlace, v)
	if err != nil {
		return err
	}

	return divideInPlace(ctxDivideInPlace, dst.window, scalar)
}
