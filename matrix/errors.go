// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the matrix
// package plus ShapeError, the structured carrier for shape failures.
// All operations MUST return these sentinels (possibly wrapped) and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors in functional options.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so logs stay greppable.
// Call sites add context with fmt.Errorf("Op: %w", ErrX) (see matrixErrorf);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> stale view -> declared (static) shape -> resolved shape -> index.

var (
	// ErrShapeMismatch indicates two operands whose shapes are not compatible,
	// e.g. Add/Sub of different extents or a checked conversion to a wrong shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIncompatibleProduct indicates a matrix product where left.Cols != right.Rows.
	ErrIncompatibleProduct = errors.New("matrix: incompatible product dimensions")

	// ErrOutOfRange indicates an index (row, column, linear or named component)
	// outside the valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidShape indicates a construction request whose counts are negative,
	// violate rows==0 iff cols==0, or disagree with the declared static shape.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrSliceOutOfBounds indicates a slice region outside its source extent.
	ErrSliceOutOfBounds = errors.New("matrix: slice exceeds source bounds")

	// ErrSliceArity indicates that the number of run-time slice arguments differs
	// from the number of Dynamic members of the Slicer.
	ErrSliceArity = errors.New("matrix: wrong number of slice arguments")

	// ErrSourceUnderflow indicates that a sequence ran dry before the matrix was full.
	ErrSourceUnderflow = errors.New("matrix: source underflows matrix")

	// ErrSourceOverflow indicates that a sequence kept yielding after the matrix was full.
	ErrSourceOverflow = errors.New("matrix: source overflows matrix")

	// ErrNonVector indicates a vector-only operation on a non-vector, or Cross on
	// a vector whose length is not 3.
	ErrNonVector = errors.New("matrix: operation requires a vector")

	// ErrStaleView indicates a view whose source storage was moved, resized or
	// released after the view was taken.
	ErrStaleView = errors.New("matrix: view outlived its source storage")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrStorageStrategy indicates a forced storage variant that cannot hold the
	// requested shape (e.g. inline storage for a dynamic or oversized shape), or
	// an operation the current variant does not support (Resize on inline storage).
	ErrStorageStrategy = errors.New("matrix: storage strategy not applicable")

	// ErrDivisionByZero indicates an integer matrix divided by a zero scalar.
	// Floating-point division follows IEEE-754 and never reports it.
	ErrDivisionByZero = errors.New("matrix: integer division by zero")
)

// ShapeError carries the operation and both operands' resolved shapes for a
// shape-related failure. It unwraps to its sentinel (Err).
type ShapeError struct {
	Op    string // public operation name, e.g. "Add"
	Left  Shape  // resolved (or declared, for static failures) left operand shape
	Right Shape  // resolved (or declared) right operand shape
	Err   error  // one of ErrShapeMismatch, ErrIncompatibleProduct, ErrNonVector
}

// Error renders "Op: LxC vs LxC: matrix: ...".
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s vs %s: %v", e.Op, e.Left, e.Right, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }

// shapeErrorf builds a *ShapeError for op.
func shapeErrorf(op string, left, right Shape, err error) error {
	return &ShapeError{Op: op, Left: left, Right: right, Err: err}
}

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf reports an out-of-range (row, col) against the resolved extent.
func indexErrorf(tag string, row, col, rows, cols int) error {
	return fmt.Errorf("%s: (%d,%d) not in %dx%d: %w", tag, row, col, rows, cols, ErrOutOfRange)
}
