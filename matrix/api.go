// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or shape checks of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use RowVector/ColumnVector for geometry, Zeros/ZerosLike for accumulators.
//   - Induced copies a row/column selection (e.g. a permutation of rows); use
//     Slice when a contiguous region without copying is enough.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matview/numeric"
)

// ---------- Constructors & Utilities ----------

// Zeros returns a rows×cols zero matrix declared fully dynamic (heap storage).
// Complexity: O(rc).
func Zeros[T numeric.Number](rows, cols int) (*Matrix[T], error) {
	return NewFilled[T](DynamicShape, rows, cols, 0)
}

// RowVector returns a 1×n vector holding values (0x0 when empty).
// Complexity: O(n).
func RowVector[T numeric.Number](values ...T) (*Matrix[T], error) {
	return FromFlat(RowVectorShape(Dynamic), values)
}

// ColumnVector returns an n×1 vector holding values (0x0 when empty).
// Complexity: O(n).
func ColumnVector[T numeric.Number](values ...T) (*Matrix[T], error) {
	return FromFlat(ColumnVectorShape(Dynamic), values)
}

// ZerosLike returns a zero matrix with m's declared and resolved shape.
// Complexity: O(rc).
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike[T numeric.Number](m Reader[T]) (*Matrix[T], error) {
	b, err := readBacking("ZerosLike", m)
	if err != nil {
		return nil, err
	}

	return newMatrix[T]("ZerosLike", b.decl, b.rows, b.cols, nil)
}

// IdentityLike returns the identity with m's resolved shape.
// Complexity: O(rc).
func IdentityLike[T numeric.Number](m Reader[T]) (*Matrix[T], error) {
	b, err := readBacking("IdentityLike", m)
	if err != nil {
		return nil, err
	}

	return Identity[T](b.rows, b.cols)
}

// Induced materializes the submatrix of src selected by rowsIdx × colsIdx, in
// the given order (indices may repeat). A nil selector selects every index.
// Errors: ErrOutOfRange for an index outside src; ErrInvalidShape for an empty selection.
// Complexity: O(len(rowsIdx)·len(colsIdx)).
func Induced[T numeric.Number](src Reader[T], rowsIdx, colsIdx []int) (*Matrix[T], error) {
	const tag = "Induced"
	b, err := readBacking(tag, src)
	if err != nil {
		return nil, err
	}
	rowsIdx, colsIdx = allIfNil(rowsIdx, b.rows), allIfNil(colsIdx, b.cols)
	for _, r := range rowsIdx {
		if r < 0 || r >= b.rows {
			return nil, indexErrorf(tag, r, 0, b.rows, b.cols)
		}
	}
	for _, c := range colsIdx {
		if c < 0 || c >= b.cols {
			return nil, indexErrorf(tag, 0, c, b.rows, b.cols)
		}
	}
	res, err := newMatrix[T](tag, DynamicShape, len(rowsIdx), len(colsIdx), nil)
	if err != nil {
		return nil, err
	}
	out := res.owned().window()
	for i, r := range rowsIdx {
		from, dst := b.row(r), out.row(i)
		for j, c := range colsIdx {
			dst[j] = from[c]
		}
	}

	return res, nil
}

func allIfNil(idx []int, n int) []int {
	if idx != nil {
		return idx
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	return all
}

// Hadamard returns the element-wise product a ⊙ b.
// Complexity: O(rc).
func Hadamard[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) {
	return combine("Hadamard", a, b, numeric.Multiply[T])
}

// RowSums returns Σⱼ m[i,j] for every row i.
// Complexity: O(rc).
func RowSums[T numeric.Number](m Reader[T]) ([]T, error) {
	b, err := readBacking("RowSums", m)
	if err != nil {
		return nil, err
	}
	out := make([]T, b.rows)
	for i := range out {
		for _, v := range b.row(i) {
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns Σᵢ m[i,j] for every column j.
// Complexity: O(rc).
func ColSums[T numeric.Number](m Reader[T]) ([]T, error) {
	b, err := readBacking("ColSums", m)
	if err != nil {
		return nil, err
	}
	out := make([]T, b.cols)
	for i := 0; i < b.rows; i++ {
		for j, v := range b.row(i) {
			out[j] += v
		}
	}

	return out, nil
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) { return Mul(a, b) }

// MustFromRows is FromRows for literals known to be valid; it panics on error.
// Intended for tests, examples and package-level tables.
func MustFromRows[T numeric.Number](decl Shape, rows [][]T, opts ...Option) *Matrix[T] {
	m, err := FromRows(decl, rows, opts...)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustFromRows: %v", err))
	}

	return m
}
