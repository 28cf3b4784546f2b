// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/stale/shape checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on the success path.
//
// AI-Hints:
//  - Each binary operator runs the declared-shape check first (statically decidable
//    failures never depend on element data), then the resolved-shape check.
//  - Use ValidateSameShape / ValidateMulCompatible / ValidateVector from callers
//    that want to fail fast before building operands.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Stale → Declared → Resolved).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matview/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDeclared checks that every static dimension is non-negative and that a
// fully static shape honours rows==0 iff cols==0.
// Complexity: O(1).
func validateDeclared(tag string, decl Shape) error {
	if decl.Rows < Dynamic || decl.Cols < Dynamic {
		return validatorErrorf(tag+": declared "+decl.String(), ErrInvalidShape)
	}
	if decl.IsStatic() && (decl.Rows == 0) != (decl.Cols == 0) {
		return validatorErrorf(tag+": declared "+decl.String(), ErrInvalidShape)
	}

	return nil
}

// validateResolved checks resolved counts against the declared shape.
// Stage 1: declared shape is well-formed.
// Stage 2: counts are non-negative and rows==0 iff cols==0.
// Stage 3: counts agree with every static dimension.
// Complexity: O(1).
func validateResolved(tag string, decl Shape, rows, cols int) error {
	if err := validateDeclared(tag, decl); err != nil {
		return err
	}
	if rows < 0 || cols < 0 || (rows == 0) != (cols == 0) {
		return validatorErrorf(fmt.Sprintf("%s: counts %dx%d", tag, rows, cols), ErrInvalidShape)
	}
	if !ShapeCompatible(decl, FixedShape(rows, cols)) {
		return validatorErrorf(fmt.Sprintf("%s: counts %dx%d vs declared %s", tag, rows, cols, decl), ErrInvalidShape)
	}

	return nil
}

// readBacking resolves a Reader operand: nil → ErrNilMatrix, stale → ErrStaleView.
func readBacking[T numeric.Number](tag string, r Reader[T]) (backing[T], error) {
	if r == nil {
		return backing[T]{}, validatorErrorf(tag, ErrNilMatrix)
	}
	b, err := r.backing()
	if err != nil {
		return backing[T]{}, validatorErrorf(tag, err)
	}

	return b, nil
}

// writeBacking resolves a Mutable operand the same way.
func writeBacking[T numeric.Number](tag string, m Mutable[T]) (backing[T], error) {
	if m == nil {
		return backing[T]{}, validatorErrorf(tag, ErrNilMatrix)
	}
	b, err := m.mutableBacking()
	if err != nil {
		return backing[T]{}, validatorErrorf(tag, err)
	}

	return b, nil
}

// sameShape checks two resolved operands: declared shapes first, then counts.
func sameShape[T numeric.Number](tag string, a, b backing[T]) error {
	if !ShapeCompatible(a.decl, b.decl) {
		return shapeErrorf(tag, a.decl, b.decl, ErrShapeMismatch)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return shapeErrorf(tag, a.resolved(), b.resolved(), ErrShapeMismatch)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil and, for views, live.
//
// Returns ErrNilMatrix or ErrStaleView.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T numeric.Number](m Reader[T]) error {
	_, err := readBacking("ValidateNotNil", m)

	return err
}

// ValidateSameShape – Ensures a and b may be combined element-wise.
//
// Return: nil, ErrNilMatrix, ErrStaleView or *ShapeError(ErrShapeMismatch).
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels and compatibility guards.
func ValidateSameShape[T numeric.Number](a, b Reader[T]) error {
	const tag = "ValidateSameShape"
	ab, err := readBacking(tag, a)
	if err != nil {
		return err
	}
	bb, err := readBacking(tag, b)
	if err != nil {
		return err
	}

	return sameShape(tag, ab, bb)
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows (declared, then resolved).
//
// Return: nil, ErrNilMatrix, ErrStaleView or *ShapeError(ErrIncompatibleProduct).
// Complexity: O(1).
func ValidateMulCompatible[T numeric.Number](a, b Reader[T]) error {
	const tag = "ValidateMulCompatible"
	ab, err := readBacking(tag, a)
	if err != nil {
		return err
	}
	bb, err := readBacking(tag, b)
	if err != nil {
		return err
	}

	return mulCompatible(tag, ab, bb)
}

func mulCompatible[T numeric.Number](tag string, a, b backing[T]) error {
	if !ShapesCompatible(a.decl.Cols, Dynamic, b.decl.Rows, Dynamic) {
		return shapeErrorf(tag, a.decl, b.decl, ErrIncompatibleProduct)
	}
	if a.cols != b.rows {
		return shapeErrorf(tag, a.resolved(), b.resolved(), ErrIncompatibleProduct)
	}

	return nil
}

// ValidateVector – Ensures m is (declared and resolved) a row or column vector.
//
// Return: nil, ErrNilMatrix, ErrStaleView or ErrNonVector.
// Complexity: O(1).
func ValidateVector[T numeric.Number](m Reader[T]) error {
	b, err := readBacking("ValidateVector", m)
	if err != nil {
		return err
	}

	return vectorOf("ValidateVector", b)
}

func vectorOf[T numeric.Number](tag string, b backing[T]) error {
	if !IsVector(b.decl.Rows, b.decl.Cols) {
		return validatorErrorf(tag+" on "+b.decl.String(), ErrNonVector)
	}
	if b.rows != 1 && b.cols != 1 {
		return validatorErrorf(tag+" on "+b.resolved().String(), ErrNonVector)
	}

	return nil
}
