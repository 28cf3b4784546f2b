// SPDX-License-Identifier: MIT

// Package matrix provides value-returning operations on any Reader: element-wise
// addition and subtraction, the matrix product, transpose, negation and scalar
// scaling. All functions check declared shapes first, then resolved shapes,
// and return an owning *Matrix whose storage follows StorageFor.
package matrix

import "github.com/katalvlaran/matview/numeric"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transposed"
	opScale      = "Scale"
	opDivide     = "Divide"
	opNegated    = "Negated"
	opIdentity   = "Identity"
	opElementMap = "Map"
)

// Add returns a new matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil/stale checks, declared then resolved shape match.
// Stage 2 (Prepare): copy a into a result declared as NormalizedShape(a, b).
// Stage 3 (Execute): result += b.
// Complexity: O(r·c) time and memory.
func Add[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) {
	return combine(opAdd, a, b, numeric.Add[T])
}

// Sub returns a new matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) {
	return combine(opSub, a, b, numeric.Subtract[T])
}

func combine[T numeric.Number](op string, a, b Reader[T], f numeric.Binary[T]) (*Matrix[T], error) {
	ab, err := readBacking(op, a)
	if err != nil {
		return nil, err
	}
	bb, err := readBacking(op, b)
	if err != nil {
		return nil, err
	}
	if err = sameShape(op, ab, bb); err != nil {
		return nil, err
	}
	res, err := newMatrix[T](op, NormalizedShape(ab.decl, bb.decl), ab.rows, ab.cols, nil)
	if err != nil {
		return nil, err
	}
	out := res.owned().window()
	copyWindow(out, ab.window)
	src := bb.window
	for r := 0; r < out.rows; r++ {
		d, v := out.row(r), src.row(r)
		for c := range d {
			d[c] = f(d[c], v[c])
		}
	}

	return res, nil
}

// Mul performs the matrix product a × b.
// Stage 1 (Validate): nil/stale checks and inner-dimension match (declared, then resolved).
// Stage 2 (Prepare): allocate the (a.Rows × b.Cols) result.
// Stage 3 (Execute): i-k-j loop over row slices, skipping zero left entries.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul[T numeric.Number](a, b Reader[T]) (*Matrix[T], error) {
	ab, err := readBacking(opMul, a)
	if err != nil {
		return nil, err
	}
	bb, err := readBacking(opMul, b)
	if err != nil {
		return nil, err
	}
	if err = mulCompatible(opMul, ab, bb); err != nil {
		return nil, err
	}
	res, err := newMatrix[T](opMul, Shape{Rows: ab.decl.Rows, Cols: bb.decl.Cols}, ab.rows, bb.cols, nil)
	if err != nil {
		return nil, err
	}
	out := res.owned().window()
	var av T
	for i := 0; i < ab.rows; i++ {
		dst, left := out.row(i), ab.row(i)
		for k := 0; k < ab.cols; k++ {
			av = left[k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j, bv := range bb.row(k) {
				dst[j] += av * bv
			}
		}
	}

	return res, nil
}

// Transposed returns a new matrix with rows and columns of m swapped.
// Complexity: O(r·c) time and memory.
func Transposed[T numeric.Number](m Reader[T]) (*Matrix[T], error) {
	mb, err := readBacking(opTranspose, m)
	if err != nil {
		return nil, err
	}
	res, err := newMatrix[T](opTranspose, mb.decl.Transposed(), mb.cols, mb.rows, nil)
	if err != nil {
		return nil, err
	}
	out := res.owned().window()
	for i := 0; i < mb.rows; i++ {
		for j, v := range mb.row(i) {
			out.data[out.offset(j, i)] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix with every element of m multiplied by scalar.
// Complexity: O(r·c).
func Scale[T numeric.Number](m Reader[T], scalar T) (*Matrix[T], error) {
	return mapped(opScale, m, numeric.MultiplyBy(scalar))
}

// Divide returns a new matrix with every element of m divided by scalar.
// Errors: ErrDivisionByZero for integer T and scalar == 0.
// Complexity: O(r·c).
func Divide[T numeric.Number](m Reader[T], scalar T) (*Matrix[T], error) {
	if scalar == 0 && isIntegral[T]() {
		return nil, matrixErrorf(opDivide, ErrDivisionByZero)
	}

	return mapped(opDivide, m, numeric.DivideBy(scalar))
}

// Negated returns a new matrix holding -m.
// Complexity: O(r·c).
func Negated[T numeric.Number](m Reader[T]) (*Matrix[T], error) {
	return mapped(opNegated, m, func(v T) T { return -v })
}

// Map returns a new matrix holding f applied to every element of m.
// Complexity: O(r·c).
func Map[T numeric.Number](m Reader[T], f func(T) T) (*Matrix[T], error) {
	return mapped(opElementMap, m, f)
}

func mapped[T numeric.Number](op string, m Reader[T], f numeric.Unary[T]) (*Matrix[T], error) {
	mb, err := readBacking(op, m)
	if err != nil {
		return nil, err
	}
	res, err := newMatrix[T](op, mb.decl, mb.rows, mb.cols, nil)
	if err != nil {
		return nil, err
	}
	out := res.owned().window()
	copyWindow(out, mb.window)
	ewUnaryInPlace(out, f)

	return res, nil
}

// Identity returns a rows×cols matrix with ones on the main diagonal and zeros
// elsewhere (rectangular shapes allowed). The result is declared static.
// Errors: ErrInvalidShape for negative counts or rows==0 xor cols==0.
// Complexity: O(r·c).
func Identity[T numeric.Number](rows, cols int) (*Matrix[T], error) {
	res, err := newMatrix[T](opIdentity, FixedShape(rows, cols), rows, cols, nil)
	if err != nil {
		return nil, err
	}
	one := numeric.MultiplicativeIdentity[T]()
	for i := 0; i < min(rows, cols); i++ {
		res.owned().unsafeSet(i, i, one)
	}

	return res, nil
}
