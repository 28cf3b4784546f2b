// SPDX-License-Identifier: MIT

package numeric

// Binary is an element-wise binary kernel (a ∘ b).
type Binary[T Number] func(a, b T) T

// Unary is an element-wise unary kernel (f(a)).
type Unary[T Number] func(a T) T

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Subtract returns a - b.
func Subtract[T Number](a, b T) T { return a - b }

// Multiply returns a * b.
func Multiply[T Number](a, b T) T { return a * b }

// Divide returns a / b. Integer division by zero panics like the builtin operator;
// callers dividing by user input must guard first.
func Divide[T Number](a, b T) T { return a / b }

// MultiplyBy binds the right operand of Multiply.
func MultiplyBy[T Number](scalar T) Unary[T] {
	return func(a T) T { return a * scalar }
}

// DivideBy binds the right operand of Divide.
func DivideBy[T Number](scalar T) Unary[T] {
	return func(a T) T { return a / scalar }
}
