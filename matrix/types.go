// SPDX-License-Identifier: MIT

// Package matrix: the public facade contracts.
// Reader is the read surface shared by all four storage variants; Mutable adds
// the write surface and is satisfied only by *Matrix and *View. *ConstView
// implements Reader alone, so passing it where a Mutable is required (Slice,
// AddInPlace targets, AsView) fails to compile.
//
// Both interfaces are sealed by an unexported method: the package relies on
// reaching the raw strided window of every operand.
package matrix

import (
	"iter"

	"github.com/katalvlaran/matview/numeric"
)

// Reader is the read-only matrix surface.
//
// Complexity notes: all methods are O(1) except Values/Do/String (O(rows*cols)).
type Reader[T numeric.Number] interface {
	// Rows returns the resolved number of rows.
	Rows() int

	// Cols returns the resolved number of columns.
	Cols() int

	// Shape returns the resolved (rows, cols).
	Shape() (rows, cols int)

	// Declared returns the declared shape (static dimensions or Dynamic).
	Declared() Shape

	// Kind reports the storage variant behind the value.
	Kind() StorageKind

	// At returns element (row, col) or ErrOutOfRange / ErrStaleView.
	At(row, col int) (T, error)

	// CBegin and CEnd delimit the row-major read-only iteration range.
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]

	// Values yields every element in row-major order.
	Values() iter.Seq[T]

	// Do visits elements in row-major order until f returns false.
	Do(f func(row, col int, v T) bool)

	// String renders "{{a, b}, {c, d}}".
	String() string

	backing() (backing[T], error)
}

// Mutable is a Reader that can be written through.
type Mutable[T numeric.Number] interface {
	Reader[T]

	// Set assigns v at (row, col) or returns ErrOutOfRange / ErrStaleView.
	Set(row, col int, v T) error

	// Begin and End delimit the row-major mutable iteration range.
	Begin() Iterator[T]
	End() Iterator[T]

	mutableBacking() (backing[T], error)
}

// Compile-time conformance.
var (
	_ Mutable[float64] = (*Matrix[float64])(nil)
	_ Mutable[float64] = (*View[float64])(nil)
	_ Reader[float64]  = (*ConstView[float64])(nil)
)
