// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matview/numeric"

const (
	ctxEqual = "Equal"
	ctxClose = "Close"
)

// Equal reports whether a and b hold identical elements. It is defined for
// integer element types only; compare floats with Close.
// Declared shapes that can never match are an error (*ShapeError wrapping
// ErrShapeMismatch); resolved shapes that differ simply compare unequal.
// Complexity: O(r·c), early exit on the first difference.
func Equal[T numeric.Integer](a, b Reader[T]) (bool, error) {
	return compareWith(ctxEqual, a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal with the same error contract.
func NotEqual[T numeric.Integer](a, b Reader[T]) (bool, error) {
	eq, err := Equal(a, b)

	return !eq && err == nil, err
}

// Close reports whether every pair of elements satisfies |a - b| <= eps.
// A negative eps is used by magnitude; NaN elements never compare close.
// Shape contract as Equal.
// Complexity: O(r·c), early exit on the first difference.
func Close[T numeric.Float](a, b Reader[T], eps T) (bool, error) {
	tol := numeric.Abs(eps)

	return compareWith(ctxClose, a, b, func(x, y T) bool { return numeric.Abs(x-y) <= tol })
}

func compareWith[T numeric.Number](tag string, a, b Reader[T], same func(x, y T) bool) (bool, error) {
	ab, err := readBacking(tag, a)
	if err != nil {
		return false, err
	}
	bb, err := readBacking(tag, b)
	if err != nil {
		return false, err
	}
	if !ShapeCompatible(ab.decl, bb.decl) {
		return false, shapeErrorf(tag, ab.decl, bb.decl, ErrShapeMismatch)
	}
	if ab.rows != bb.rows || ab.cols != bb.cols {
		return false, nil
	}
	for r := 0; r < ab.rows; r++ {
		x, y := ab.row(r), bb.row(r)
		for c := range x {
			if !same(x[c], y[c]) {
				return false, nil
			}
		}
	}

	return true, nil
}
