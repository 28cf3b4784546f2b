// SPDX-License-Identifier: MIT

package numeric

import "math"

// QuadraticEquation models a·x² + b·x + c = 0 with the discriminant computed once.
type QuadraticEquation[T Float] struct {
	a, b  T // leading and linear coefficients
	delta T // b² - 4ac
}

// NewQuadraticEquation precomputes the discriminant of a·x² + b·x + c.
// a must be non-zero for Roots to be meaningful; a == 0 yields ±Inf/NaN roots.
func NewQuadraticEquation[T Float](a, b, c T) QuadraticEquation[T] {
	return QuadraticEquation[T]{a: a, b: b, delta: b*b - 4*a*c}
}

// HasRealSolutions reports whether the discriminant is non-negative.
func (q QuadraticEquation[T]) HasRealSolutions() bool { return q.delta >= 0 }

// Roots returns (smaller, larger) for a > 0. With a negative discriminant both
// roots are NaN; check HasRealSolutions first.
func (q QuadraticEquation[T]) Roots() (T, T) {
	sq := T(math.Sqrt(float64(q.delta)))
	den := 2 * q.a

	return (-q.b - sq) / den, (-q.b + sq) / den
}
