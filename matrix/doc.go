// SPDX-License-Identifier: MIT

// Package matrix offers generic, shape-checked matrices over any numeric type.
//
// The matrix package provides:
//
//   - A dimension algebra (Dim, Shape, ShapesCompatible, SubintervalValid, ...)
//     where each dimension is either fixed in the declared Shape or Dynamic and
//     resolved when a value is constructed.
//   - Four storage variants behind one interface: inline (small static shapes,
//     no separate buffer), heap (resizable), mutable view and read-only view.
//     *Matrix owns storage; *View and *ConstView alias it with a row stride.
//   - Slicing (Slice, SliceConst, SliceRow, SliceColumn) that derives sub-views
//     without copying; a slice of a slice still addresses the original storage.
//   - Strided row-major iteration (Begin/End, CBegin/CEnd, Values, All).
//   - Arithmetic (AddInPlace, Add, Sub, Mul, Scale, Transposed, Identity),
//     comparison (Equal for integers, Close for floats) and vector geometry
//     (Magnitude, Normalized, Dot, Cross, Distance).
//
// Every operation checks the declared shapes first and the resolved shapes
// second; no memory is touched before both checks pass. Views carry a lease on
// their owner: after Move or Resize they report ErrStaleView instead of
// reading memory the owner gave up.
//
// Read-only access is enforced by types: *ConstView has no Set method and does
// not satisfy Mutable, so it cannot be sliced into a mutable view.
//
// See the examples in this package for usage patterns.
package matrix
