// SPDX-License-Identifier: MIT

// Package gonumx bridges matview matrices and gonum's mat package.
//
// Purpose:
//   - Hand any matview variant (owning matrix, strided view, read-only view) to
//     gonum routines that are out of scope here (decompositions, solvers).
//   - Bring gonum results back as owning matrices or write them into views.
//
// Contract:
//   - Every conversion copies; no gonum value ever aliases matview storage.
//   - gonum works in float64: elements are converted with Go's numeric
//     conversion rules (integers truncate toward zero on the way back).
//
// AI-Hints:
//   - Use CopyInto to write a gonum result straight into a slice of a larger
//     matrix instead of materializing it first.
package gonumx

import (
	"errors"
	"fmt"
	"iter"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matview/matrix"
	"github.com/katalvlaran/matview/numeric"
)

// ErrNilSource indicates a nil gonum matrix argument.
var ErrNilSource = errors.New("gonumx: nil gonum matrix")

// ToDense copies src into a new *mat.Dense. An empty src yields an empty
// (zero-value) Dense, which gonum reports through IsEmpty.
// Errors: matrix.ErrNilMatrix, matrix.ErrStaleView.
// Complexity: O(r·c).
func ToDense[T numeric.Number](src matrix.Reader[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	r, c := src.Shape()
	if r == 0 {
		return &mat.Dense{}, nil
	}
	data := make([]float64, 0, r*c)
	for v := range src.Values() {
		data = append(data, float64(v))
	}

	return mat.NewDense(r, c, data), nil
}

// FromMatrix copies a gonum matrix into a new owning matrix declared as decl.
// Errors: ErrNilSource; matrix.ErrInvalidShape when src's extent contradicts decl.
// Complexity: O(r·c).
func FromMatrix[T numeric.Number](decl matrix.Shape, src mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	if src == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilSource)
	}
	r, c := src.Dims()
	m, err := matrix.FromSeq(decl, r, c, elements[T](src, r, c), opts...)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return m, nil
}

// CopyInto writes src into dst element by element. dst may be a strided view.
// Errors: ErrNilSource, matrix.ErrNilMatrix, matrix.ErrStaleView,
// matrix.ErrShapeMismatch.
// Complexity: O(r·c).
func CopyInto[T numeric.Number](dst matrix.Mutable[T], src mat.Matrix) error {
	if src == nil {
		return fmt.Errorf("CopyInto: %w", ErrNilSource)
	}
	if err := matrix.ValidateNotNil[T](dst); err != nil {
		return fmt.Errorf("CopyInto: %w", err)
	}
	r, c := src.Dims()
	if dr, dc := dst.Shape(); dr != r || dc != c {
		return &matrix.ShapeError{Op: "CopyInto", Left: matrix.FixedShape(dr, dc), Right: matrix.FixedShape(r, c), Err: matrix.ErrShapeMismatch}
	}
	next := elements[T](src, r, c)
	it := dst.Begin()
	next(func(v T) bool {
		it.Set(v)
		it.Next()

		return true
	})

	return nil
}

// elements yields src row by row converted to T.
func elements[T numeric.Number](src mat.Matrix, r, c int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if !yield(T(src.At(i, j))) {
					return
				}
			}
		}
	}
}
