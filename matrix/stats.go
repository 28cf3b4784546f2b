// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over sample matrices (one sample per row): column means,
//     column centering, L2 row normalization and the sample covariance.
//   - Compositions over the canonical kernels (Transposed, Mul, Scale) and the
//     ew* micro-kernels; no loop here is duplicated elsewhere.
//
// Determinism & Performance:
//   - Fixed i→j traversal; sums accumulate in T in row order.
//   - Degenerate rows (L2 norm 0) are left unchanged by NormalizeRowsL2.

package matrix

import (
	"math"

	"github.com/katalvlaran/matview/numeric"
)

const (
	opColumnMeans     = "ColumnMeans"
	opCenterColumns   = "CenterColumns"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
)

// ColumnMeans returns Σᵢ X[i,j] / r for every column j.
// An empty matrix yields an empty slice.
// Complexity: O(r·c).
func ColumnMeans[T numeric.Float](X Reader[T]) ([]T, error) {
	sums, err := ColSums(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	if r := X.Rows(); r > 0 {
		for j := range sums {
			sums[j] /= T(r)
		}
	}

	return sums, nil
}

// CenterColumns subtracts the per-column mean from every element and returns
// the centered copy together with the means (len = c), so callers can
// un-center later.
// Complexity: O(r·c) time and memory.
func CenterColumns[T numeric.Float](X Reader[T]) (*Matrix[T], []T, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := Convert(X.Declared(), X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	w := Xc.owned().window()
	for i := 0; i < w.rows; i++ {
		row := w.row(i)
		for j := range row {
			row[j] -= means[j]
		}
	}

	return Xc, means, nil
}

// NormalizeRowsL2 scales every row to unit Euclidean norm and returns the
// normalized copy together with the original row norms (len = r).
// Rows with norm 0 are copied unchanged.
// Complexity: O(r·c) time and memory.
func NormalizeRowsL2[T numeric.Float](X Reader[T]) (*Matrix[T], []T, error) {
	Y, err := Convert(X.Declared(), X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	w := Y.owned().window()
	norms := make([]T, w.rows)
	for i := 0; i < w.rows; i++ {
		row := w.row(i)
		sum := 0.0
		for _, v := range row {
			sum += float64(v) * float64(v)
		}
		norms[i] = T(math.Sqrt(sum))
		if norms[i] == 0 {
			continue // degenerate row stays as is
		}
		for j := range row {
			row[j] /= norms[i]
		}
	}

	return Y, norms, nil
}

// Covariance returns the c×c sample covariance of the columns of X,
// (Xcᵀ·Xc)/(r−1), and the column means.
// Errors: ErrInvalidShape when X has fewer than two rows.
// Complexity: O(r·c²).
func Covariance[T numeric.Float](X Reader[T]) (*Matrix[T], []T, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrInvalidShape)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transposed[T](Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul[T](Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if err = G.DivideInPlace(T(r - 1)); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return G, means, nil
}
