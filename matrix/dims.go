// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the dimension algebra: pure predicates over (rows, cols) descriptors
//     where each dimension is either a concrete count (Fixed) or Dynamic.
//   - Keep every shape decision in one place so constructors, operators and the
//     slicer consult identical rules.
//
// Contract:
//   - When every input is static the predicate alone decides whether an operation is
//     expressible for that pair of declared shapes (no instance is touched).
//   - When any input is Dynamic the predicate answers "could be valid"; the caller
//     MUST repeat the equivalent check on resolved counts before touching memory.
//
// Determinism & Performance:
//   - All predicates are allocation-free and O(1) (DynamicCount is O(k)).
//
// AI-Hints:
//   - Think of Dynamic as "unknown until a value exists": every predicate treats it
//     as a wildcard that matches anything compatible.

package matrix

import "strconv"

// Dim is one declared dimension: a non-negative count or Dynamic.
type Dim int

// Dynamic marks a dimension that is resolved when a value is constructed.
const Dynamic Dim = -1

// Fixed returns n as a static dimension. Negative n yields an invalid Dim that
// every constructor rejects with ErrInvalidShape.
func Fixed(n int) Dim { return Dim(n) }

// IsDynamic reports whether d is resolved at value-construction time.
func (d Dim) IsDynamic() bool { return d == Dynamic }

// Value returns the static count and true, or (0, false) for Dynamic.
func (d Dim) Value() (int, bool) {
	if d == Dynamic {
		return 0, false
	}

	return int(d), true
}

// String renders Dynamic as "?" and static counts as decimals.
func (d Dim) String() string {
	if d == Dynamic {
		return "?"
	}

	return strconv.Itoa(int(d))
}

// Shape is a declared (rows, cols) pair. A Shape built from resolved counts via
// FixedShape is fully static.
type Shape struct {
	Rows Dim // declared row count or Dynamic
	Cols Dim // declared column count or Dynamic
}

// DynamicShape declares both dimensions as resolved at construction time.
var DynamicShape = Shape{Rows: Dynamic, Cols: Dynamic}

// FixedShape declares a fully static rows×cols shape.
func FixedShape(rows, cols int) Shape { return Shape{Rows: Fixed(rows), Cols: Fixed(cols)} }

// RowVectorShape declares a 1×n shape (n may be Dynamic).
func RowVectorShape(n Dim) Shape { return Shape{Rows: Fixed(1), Cols: n} }

// ColumnVectorShape declares an n×1 shape (n may be Dynamic).
func ColumnVectorShape(n Dim) Shape { return Shape{Rows: n, Cols: Fixed(1)} }

// IsStatic reports whether both dimensions are fixed.
func (s Shape) IsStatic() bool { return s.Rows != Dynamic && s.Cols != Dynamic }

// Transposed swaps the declared dimensions.
func (s Shape) Transposed() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// String renders the shape as "RxC", using "?" for Dynamic dimensions.
func (s Shape) String() string { return s.Rows.String() + "x" + s.Cols.String() }

// ShapesCompatible reports whether m×n and mm×nn may describe the same extent:
// dimension-wise, either side is Dynamic or both counts are equal.
// Gates every binary operator and every cross-variant conversion.
// Complexity: O(1).
func ShapesCompatible(m, n, mm, nn Dim) bool {
	return (m == mm || m == Dynamic || mm == Dynamic) && (n == nn || n == Dynamic || nn == Dynamic)
}

// ShapeCompatible is ShapesCompatible over two Shape values.
func ShapeCompatible(a, b Shape) bool { return ShapesCompatible(a.Rows, a.Cols, b.Rows, b.Cols) }

// IsVector reports whether m×n is, or may dynamically turn out to be, a row or
// column vector.
// Complexity: O(1).
func IsVector(m, n Dim) bool {
	return m == Dynamic || m == 1 || n == Dynamic || n == 1
}

// IsVectorOfLength reports whether m×n is, or may turn out to be, a vector of
// exactly l elements. Guards flat-literal construction.
// Complexity: O(1).
func IsVectorOfLength(m, n Dim, l int) bool {
	L := Dim(l)

	return (m == L && n == 1) || (m == 1 && n == L) ||
		(m == Dynamic && n == 1) || (m == 1 && n == Dynamic) ||
		(m == Dynamic && n == L) || (m == L && n == Dynamic) ||
		(m == Dynamic && n == Dynamic)
}

// IsVectorOfMinimumLength reports whether m×n is, or may turn out to be, a vector
// with at least l elements. Guards the named accessors X/Y/Z/W.
// Complexity: O(1).
func IsVectorOfMinimumLength(m, n Dim, l int) bool {
	L := Dim(l)

	return ((m == 1 || m == Dynamic) && (n == Dynamic || n >= L)) ||
		((m == Dynamic || m >= L) && (n == 1 || n == Dynamic))
}

// staticVectorLength returns the element count a vector shape must have, or
// Dynamic when it is only known at run time. Assumes IsVector(m, n).
func staticVectorLength(m, n Dim) Dim {
	switch {
	case m == 1 && n != Dynamic:
		return n
	case n == 1 && m != Dynamic:
		return m
	case m == Dynamic && n != Dynamic && n != 1:
		return n // only a 1×n row vector qualifies
	case n == Dynamic && m != Dynamic && m != 1:
		return m // only an m×1 column vector qualifies
	default:
		return Dynamic
	}
}

// VectorsOfEqualLength reports whether both shapes may be vectors of the same
// length. Gates Dot and Distance.
// Complexity: O(1).
func VectorsOfEqualLength(m, n, mm, nn Dim) bool {
	if !IsVector(m, n) || !IsVector(mm, nn) {
		return false
	}
	la, lb := staticVectorLength(m, n), staticVectorLength(mm, nn)

	return la == Dynamic || lb == Dynamic || la == lb
}

// VectorsOfLength3 reports whether both shapes may be 3-element vectors.
// Gates Cross.
// Complexity: O(1).
func VectorsOfLength3(m, n, mm, nn Dim) bool {
	return IsVectorOfLength(m, n, 3) && IsVectorOfLength(mm, nn, 3)
}

// SubintervalValid reports whether [start, start+span) may lie inside [0, extent).
// Any Dynamic input defers the corresponding part of the check to run time.
// Complexity: O(1).
func SubintervalValid(start, span, extent Dim) bool {
	return (start == Dynamic || start >= 0) &&
		(span == Dynamic || span >= 1) &&
		(extent == Dynamic || start == Dynamic || start <= extent) &&
		(extent == Dynamic || span == Dynamic || span <= extent) &&
		(extent == Dynamic || start == Dynamic || span == Dynamic || start+span <= extent)
}

// CanSubscript reports whether (row, col) addresses an element of a rows×cols matrix.
// Complexity: O(1).
func CanSubscript(rows, cols, row, col int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// CanSubscriptIndex reports whether the linear index i addresses an element of a
// rows×cols vector. Non-vectors never accept a linear index.
// Complexity: O(1).
func CanSubscriptIndex(rows, cols, i int) bool {
	return i >= 0 && ((rows == 1 && i < cols) || (cols == 1 && i < rows))
}

// DynamicCount returns how many of ds are Dynamic (the slicer's argument arity).
// Complexity: O(len(ds)).
func DynamicCount(ds ...Dim) int {
	n := 0
	for _, d := range ds {
		if d == Dynamic {
			n++
		}
	}

	return n
}

// NormalizedShape merges two compatible declared shapes, preferring the static
// side of each dimension. Used to declare the result of Add/Sub.
// Complexity: O(1).
func NormalizedShape(a, b Shape) Shape {
	out := a
	if out.Rows == Dynamic {
		out.Rows = b.Rows
	}
	if out.Cols == Dynamic {
		out.Cols = b.Cols
	}

	return out
}
