// SPDX-License-Identifier: MIT

// Package numeric - element constraints, identity constants and scalar functors.
//
// Purpose:
//   - Define the element types a matrix may hold (Number = Integer | Float).
//   - Provide the additive/multiplicative identities and π for every supported type
//     from a single source of truth, so generic kernels never hard-code 0 or 1.
//   - Offer small scalar functors (Add, Subtract, MultiplyBy, ...) that element-wise
//     kernels compose instead of duplicating closures.
//
// AI-Hints:
//   - Use Integer when an operation must be exact (equality), Float when it needs a
//     tolerance (Close, Normalized, k-means).
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Integer is the set of exact element types (equality is defined on these only).
type Integer interface {
	constraints.Integer
}

// Float is the set of floating-point element types (compare with a tolerance).
type Float interface {
	constraints.Float
}

// Number is any element type a matrix may hold.
type Number interface {
	Integer | Float
}

// AdditiveIdentity returns 0 of type T.
// Complexity: O(1).
func AdditiveIdentity[T Number]() T { return T(0) }

// MultiplicativeIdentity returns 1 of type T.
// Complexity: O(1).
func MultiplicativeIdentity[T Number]() T { return T(1) }

// Pi returns π converted to T (truncated to 3 for integer types).
// Complexity: O(1).
func Pi[T Number]() T {
	pi := math.Pi // non-constant: integer types truncate instead of failing to compile

	return T(pi)
}

// Abs returns |v|. For the most negative signed integer the result overflows,
// exactly like the builtin negation does.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sqrt returns √v computed in float64, the precision every kernel accumulates in
// for magnitude and distance.
func Sqrt[T Number](v T) float64 { return math.Sqrt(float64(v)) }
