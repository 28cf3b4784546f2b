// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matview/matrix"
	"github.com/stretchr/testify/require"
)

func TestConstructorsFacades(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zeros[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, make([]int, 6), z.Data())

	rv, err := matrix.RowVector(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1, rv.Rows())
	cv, err := matrix.ColumnVector(1.5, 2.5)
	require.NoError(t, err)
	require.Equal(t, 2, cv.Rows())

	src := mustRows(t, matrix.FixedShape(2, 2), [][]float64{{1, 2}, {3, 4}})
	zl, err := matrix.ZerosLike[float64](src)
	require.NoError(t, err)
	require.Equal(t, matrix.StorageInline, zl.Kind())
	require.Equal(t, src.Declared(), zl.Declared())
	require.Equal(t, []float64{0, 0, 0, 0}, zl.Data())

	il, err := matrix.IdentityLike[float64](src)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1}, il.Data())

	require.Equal(t, "{{1, 2}}", matrix.MustFromRows(matrix.DynamicShape, [][]int{{1, 2}}).String())
	require.Panics(t, func() { matrix.MustFromRows(matrix.DynamicShape, [][]int{{1, 2}, {3}}) })
}

func TestInduced(t *testing.T) {
	t.Parallel()

	m := counting(t, 3, 3)
	sel, err := matrix.Induced[int](m, []int{2, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, "{{6, 7, 8}, {0, 1, 2}}", sel.String())

	perm, err := matrix.Induced[int](m, nil, []int{1, 1})
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 4, 4, 7, 7}, perm.Data())

	_, err = matrix.Induced[int](m, []int{3}, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Induced[int](m, []int{}, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestHadamardAndSums(t *testing.T) {
	t.Parallel()

	m := counting(t, 2, 3)
	h, err := matrix.Hadamard[int](m, m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 4, 9, 16, 25}, h.Data())

	rs, err := matrix.RowSums[int](m)
	require.NoError(t, err)
	require.Equal(t, []int{3, 12}, rs)
	cs, err := matrix.ColSums[int](m)
	require.NoError(t, err)
	require.Equal(t, []int{3, 5, 7}, cs)

	s, err := matrix.Sum[int](m, m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 6, 8, 10}, s.Data())
}

func TestValidators(t *testing.T) {
	t.Parallel()

	m := counting(t, 2, 3)
	require.NoError(t, matrix.ValidateNotNil[int](m))
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape[int](m, counting(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape[int](m, counting(t, 3, 2)), matrix.ErrShapeMismatch)

	require.NoError(t, matrix.ValidateMulCompatible[int](m, counting(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible[int](m, m), matrix.ErrIncompatibleProduct)

	require.ErrorIs(t, matrix.ValidateVector[int](m), matrix.ErrNonVector)
	col, err := matrix.SliceColumnConst[int](m, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateVector[int](col))

	stale := m.View()
	m.Move()
	require.ErrorIs(t, matrix.ValidateNotNil[int](stale), matrix.ErrStaleView)
}
