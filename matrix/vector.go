// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector geometry over any variant: Magnitude, Normalized, Dot, Cross, Distance.
//   - A "vector" is any 1×n or n×1 matrix; row and column vectors mix freely.
//
// Contract:
//   - Declared shapes are checked first: a shape that can never be a vector (or,
//     for Cross, never a 3-vector) fails with ErrNonVector before any element is read.
//   - Two vectors of different resolved lengths fail with *ShapeError(ErrShapeMismatch).
//
// Determinism & Performance:
//   - Magnitude and Distance accumulate in float64 regardless of T, so integer
//     vectors do not overflow on squares and the result is always real.

package matrix

import (
	"math"

	"github.com/katalvlaran/matview/numeric"
)

const (
	opMagnitude  = "Magnitude"
	opNormalized = "Normalized"
	opDot        = "Dot"
	opCross      = "Cross"
	opDistance   = "Distance"
)

// elem returns element i of a vector backing.
func (b backing[T]) elem(i int) T { return b.data[b.offsetOf(i)] }

// vectorOperand resolves one vector operand.
func vectorOperand[T numeric.Number](op string, v Reader[T]) (backing[T], error) {
	b, err := readBacking(op, v)
	if err != nil {
		return backing[T]{}, err
	}
	if err = vectorOf(op, b); err != nil {
		return backing[T]{}, err
	}

	return b, nil
}

// vectorPair resolves two vector operands of equal length.
func vectorPair[T numeric.Number](op string, a, b Reader[T]) (backing[T], backing[T], error) {
	ab, err := readBacking(op, a)
	if err != nil {
		return ab, ab, err
	}
	bb, err := readBacking(op, b)
	if err != nil {
		return ab, bb, err
	}
	if !IsVector(ab.decl.Rows, ab.decl.Cols) || !IsVector(bb.decl.Rows, bb.decl.Cols) {
		return ab, bb, shapeErrorf(op, ab.decl, bb.decl, ErrNonVector)
	}
	if !VectorsOfEqualLength(ab.decl.Rows, ab.decl.Cols, bb.decl.Rows, bb.decl.Cols) {
		return ab, bb, shapeErrorf(op, ab.decl, bb.decl, ErrShapeMismatch)
	}
	if err = vectorOf(op, ab); err != nil {
		return ab, bb, err
	}
	if err = vectorOf(op, bb); err != nil {
		return ab, bb, err
	}
	if ab.size() != bb.size() {
		return ab, bb, shapeErrorf(op, ab.resolved(), bb.resolved(), ErrShapeMismatch)
	}

	return ab, bb, nil
}

// Magnitude returns the Euclidean norm √(Σ vᵢ²) of a vector.
// Errors: ErrNilMatrix, ErrStaleView, ErrNonVector.
// Complexity: O(n).
func Magnitude[T numeric.Number](v Reader[T]) (float64, error) {
	b, err := vectorOperand(opMagnitude, v)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < b.size(); i++ {
		x := float64(b.elem(i))
		sum += x * x
	}

	return math.Sqrt(sum), nil
}

// Normalized returns v / |v| with v's declared shape. The zero vector has no
// direction and is returned as a zero copy instead of NaNs.
// Errors: as Magnitude.
// Complexity: O(n).
func Normalized[T numeric.Float](v Reader[T]) (*Matrix[T], error) {
	mag, err := Magnitude(v)
	if err != nil {
		return nil, matrixErrorf(opNormalized, err)
	}
	res, err := Convert(v.Declared(), v)
	if err != nil {
		return nil, matrixErrorf(opNormalized, err)
	}
	if mag != 0 {
		ewUnaryInPlace(res.owned().window(), numeric.DivideBy(T(mag)))
	}

	return res, nil
}

// Dot returns Σ aᵢ·bᵢ accumulated in T.
// Errors: ErrNilMatrix, ErrStaleView, ErrNonVector, ErrShapeMismatch.
// Complexity: O(n).
func Dot[T numeric.Number](a, b Reader[T]) (T, error) {
	ab, bb, err := vectorPair(opDot, a, b)
	if err != nil {
		return 0, err
	}
	var sum T
	for i := 0; i < ab.size(); i++ {
		sum += ab.elem(i) * bb.elem(i)
	}

	return sum, nil
}

// Cross returns the 3×1 cross product a × b of two 3-vectors.
// Errors: ErrNilMatrix, ErrStaleView, ErrNonVector (not a vector, or length != 3).
// Complexity: O(1).
func Cross[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) {
	ab, err := readBacking(opCross, a)
	if err != nil {
		return nil, err
	}
	bb, err := readBacking(opCross, b)
	if err != nil {
		return nil, err
	}
	if !VectorsOfLength3(ab.decl.Rows, ab.decl.Cols, bb.decl.Rows, bb.decl.Cols) {
		return nil, shapeErrorf(opCross, ab.decl, bb.decl, ErrNonVector)
	}
	if vectorOf(opCross, ab) != nil || vectorOf(opCross, bb) != nil || ab.size() != 3 || bb.size() != 3 {
		return nil, shapeErrorf(opCross, ab.resolved(), bb.resolved(), ErrNonVector)
	}
	a0, a1, a2 := ab.elem(0), ab.elem(1), ab.elem(2)
	b0, b1, b2 := bb.elem(0), bb.elem(1), bb.elem(2)

	return FromFlat(FixedShape(3, 1), []T{
		a1*b2 - b1*a2,
		b0*a2 - a0*b2,
		a0*b1 - b0*a1,
	})
}

// Distance returns the Euclidean distance |a - b| between two vectors of equal length.
// Errors: as Dot.
// Complexity: O(n).
func Distance[T numeric.Number](a, b Reader[T]) (float64, error) {
	ab, bb, err := vectorPair(opDistance, a, b)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < ab.size(); i++ {
		d := float64(ab.elem(i)) - float64(bb.elem(i))
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
